// Package routepath stores canonical HTTP paths for web modules.
package routepath

import "strconv"

const (
	Root          = "/"
	RootExact     = "/{$}"
	Health        = "/healthz"
	StaticPrefix  = "/static/"
	About         = "/about"
	Experience    = "/experience"
	Projects      = "/projects"
	Contact       = "/contact"
	OldHome       = "/old-home"
	Blog          = "/blog"
	BlogNew       = "/blog/new"
	BlogPrefix    = "/blog/"
	BlogPostParam = "postID"
	BlogPost      = BlogPrefix + "{" + BlogPostParam + "}"
)

// BlogPostURL returns the detail path for a post id.
func BlogPostURL(id int64) string {
	return BlogPrefix + strconv.FormatInt(id, 10)
}
