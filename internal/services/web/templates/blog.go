package templates

import (
	"github.com/a-h/templ"
	"github.com/manishyadav/portfolio/internal/services/web/routepath"
)

// PostSummary is one post in a listing.
type PostSummary struct {
	Title      string
	Excerpt    string
	URL        string
	DatePosted string
	DateISO    string
}

// BlogIndexView is the blog listing page state.
type BlogIndexView struct {
	Posts []PostSummary
}

// PostFormView is the create form state. Values echo a rejected submission.
type PostFormView struct {
	Title   string
	Content string
}

// PostDetailView is one full post.
type PostDetailView struct {
	Title      string
	Content    string
	DatePosted string
	DateISO    string
}

// BlogIndexFragment lists every post newest first.
func BlogIndexFragment(view BlogIndexView, loc Localizer) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<section class="blog-index">`)
		h.raw(`<header class="page-header">`)
		h.element("h1", T(loc, "web.blog.title"))
		h.element("p", T(loc, "web.blog.subtitle"), "class", "page-subtitle")
		h.link(routepath.BlogNew, T(loc, "web.blog.write_post"), "class", "button")
		h.raw(`</header>`)
		if len(view.Posts) == 0 {
			h.element("p", T(loc, "web.blog.empty"), "class", "empty-state")
		} else {
			h.render(postCards(view.Posts, loc))
		}
		h.raw(`</section>`)
	})
}

func postCards(posts []PostSummary, loc Localizer) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<div class="post-list">`)
		for _, post := range posts {
			h.raw(`<article class="post-card">`)
			h.raw("<h2>")
			h.link(post.URL, post.Title)
			h.raw("</h2>")
			h.open("time", "datetime", post.DateISO)
			h.text(post.DatePosted)
			h.close("time")
			h.element("p", post.Excerpt, "class", "post-excerpt")
			h.link(post.URL, T(loc, "web.blog.read_more"), "class", "read-more")
			h.raw(`</article>`)
		}
		h.raw(`</div>`)
	})
}

// BlogNewFragment renders the create form.
func BlogNewFragment(view PostFormView, loc Localizer) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<section class="blog-new">`)
		h.element("h1", T(loc, "web.blog.new.title"))
		h.open("form", "method", "post", "action", routepath.BlogNew, "class", "post-form")

		h.element("label", T(loc, "web.blog.form.title_label"), "for", "title")
		h.open("input", "type", "text", "id", "title", "name", "title", "maxlength", "200", "required", "", "value", view.Title)

		h.element("label", T(loc, "web.blog.form.content_label"), "for", "content")
		h.open("textarea", "id", "content", "name", "content", "rows", "14", "required", "")
		h.text(view.Content)
		h.close("textarea")
		h.element("small", T(loc, "web.blog.form.content_hint"), "class", "form-hint")

		h.raw(`<div class="form-actions">`)
		h.element("button", T(loc, "web.blog.form.submit"), "type", "submit", "class", "button")
		h.link(routepath.Blog, T(loc, "web.blog.form.cancel"), "class", "button button-secondary")
		h.raw(`</div></form></section>`)
	})
}

// BlogPostFragment renders one post with its Markdown body.
func BlogPostFragment(view PostDetailView, loc Localizer) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<article class="blog-post">`)
		h.element("h1", view.Title)
		h.raw(`<p class="post-meta">`)
		h.open("time", "datetime", view.DateISO)
		h.text(T(loc, "web.blog.posted_on", view.DatePosted))
		h.close("time")
		h.raw(`</p><div class="post-body">`)
		h.render(Markdown(view.Content))
		h.raw(`</div>`)
		h.link(routepath.Blog, T(loc, "web.blog.back_to_blog"), "class", "back-link")
		h.raw(`</article>`)
	})
}
