// Package web serves the portfolio site: the landing page, the blog and the
// fixed portfolio pages.
//
// Feature modules own their routes; this package only builds the root
// handler and runs the HTTP server lifecycle.
package web
