package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Navigation and chrome
	message.SetString(lang, "web.nav.home", "Home")
	message.SetString(lang, "web.nav.about", "About")
	message.SetString(lang, "web.nav.experience", "Experience")
	message.SetString(lang, "web.nav.projects", "Projects")
	message.SetString(lang, "web.nav.blog", "Blog")
	message.SetString(lang, "web.nav.contact", "Contact")
	message.SetString(lang, "web.nav.toggle", "Toggle navigation")
	message.SetString(lang, "web.footer.copyright", "© %s %s. All rights reserved.")
	message.SetString(lang, "web.notice.dismiss", "Dismiss")

	// Landing
	message.SetString(lang, "web.home.title", "Home")
	message.SetString(lang, "web.home.greeting", "Hi, I'm %s")
	message.SetString(lang, "web.home.cta_projects", "View my work")
	message.SetString(lang, "web.home.cta_contact", "Get in touch")
	message.SetString(lang, "web.home.recent_posts", "Recent Posts")
	message.SetString(lang, "web.home.view_all_posts", "View all posts")
	message.SetString(lang, "web.home.no_posts", "No posts yet. Check back soon.")
	message.SetString(lang, "web.home.notice_load_failed", "Unable to load recent posts")

	// Blog
	message.SetString(lang, "web.blog.title", "Blog")
	message.SetString(lang, "web.blog.subtitle", "Notes on DevOps, cloud infrastructure and automation.")
	message.SetString(lang, "web.blog.write_post", "Write a post")
	message.SetString(lang, "web.blog.empty", "No blog posts yet.")
	message.SetString(lang, "web.blog.read_more", "Read more")
	message.SetString(lang, "web.blog.back_to_blog", "Back to blog")
	message.SetString(lang, "web.blog.posted_on", "Posted on %s")
	message.SetString(lang, "web.blog.new.title", "New Blog Post")
	message.SetString(lang, "web.blog.form.title_label", "Title")
	message.SetString(lang, "web.blog.form.content_label", "Content")
	message.SetString(lang, "web.blog.form.content_hint", "Markdown is supported.")
	message.SetString(lang, "web.blog.form.submit", "Publish")
	message.SetString(lang, "web.blog.form.cancel", "Cancel")
	message.SetString(lang, "web.blog.notice_load_failed", "Unable to load blog posts")
	message.SetString(lang, "web.blog.notice_post_created", "Blog post created successfully!")
	message.SetString(lang, "web.blog.notice_create_failed", "Error creating blog post. Please try again.")
	message.SetString(lang, "web.blog.notice_fill_all_fields", "Please fill in all fields")
	message.SetString(lang, "web.blog.notice_title_too_long", "Title must be 200 characters or fewer")
	message.SetString(lang, "web.blog.error.post_not_found", "Blog post not found")
	message.SetString(lang, "web.blog.error.post_unavailable", "Blog post is unavailable right now")

	// Static pages
	message.SetString(lang, "web.about.title", "About")
	message.SetString(lang, "web.about.heading", "About Me")
	message.SetString(lang, "web.about.location", "Based in %s")
	message.SetString(lang, "web.experience.title", "Experience")
	message.SetString(lang, "web.experience.heading", "Professional Experience")
	message.SetString(lang, "web.projects.title", "Projects")
	message.SetString(lang, "web.projects.heading", "Featured Projects")
	message.SetString(lang, "web.contact.title", "Contact")
	message.SetString(lang, "web.contact.heading", "Get In Touch")
	message.SetString(lang, "web.contact.intro", "Have a project in mind or want to talk infrastructure? Reach out.")
	message.SetString(lang, "web.contact.email", "Email")
	message.SetString(lang, "web.contact.phone", "Phone")
	message.SetString(lang, "web.contact.linkedin", "LinkedIn")
	message.SetString(lang, "web.contact.github", "GitHub")
	message.SetString(lang, "web.contact.location", "Location")
	message.SetString(lang, "web.old_home.title", "Welcome")

	// Errors
	message.SetString(lang, "web.error.not_found.title", "Page not found")
	message.SetString(lang, "web.error.not_found.message", "The page you are looking for does not exist.")
	message.SetString(lang, "web.error.server.title", "Something went wrong")
	message.SetString(lang, "web.error.server.message", "An unexpected error occurred. Please try again later.")
	message.SetString(lang, "web.error.back_home", "Back to home")
}
