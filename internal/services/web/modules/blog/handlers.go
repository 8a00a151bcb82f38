package blog

import (
	"log"
	"net/http"

	"github.com/manishyadav/portfolio/internal/platform/branding"
	apperrors "github.com/manishyadav/portfolio/internal/services/web/platform/errors"
	"github.com/manishyadav/portfolio/internal/services/web/platform/flash"
	"github.com/manishyadav/portfolio/internal/services/web/platform/httpx"
	"github.com/manishyadav/portfolio/internal/services/web/platform/modulehandler"
	"github.com/manishyadav/portfolio/internal/services/web/routepath"
	webtemplates "github.com/manishyadav/portfolio/internal/services/web/templates"
)

// maxFormBytes bounds the create-form body.
const maxFormBytes = 1 << 20

const (
	keyHomeTitle        = "web.home.title"
	keyHomeLoadFailed   = "web.home.notice_load_failed"
	keyBlogTitle        = "web.blog.title"
	keyBlogLoadFailed   = "web.blog.notice_load_failed"
	keyNewPostTitle     = "web.blog.new.title"
	keyPostCreated      = "web.blog.notice_post_created"
	keyPostCreateFailed = "web.blog.notice_create_failed"
)

type handlers struct {
	modulehandler.Base
	service service
}

func newHandlers(s service, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s}
}

func (h handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.listRecent(r.Context())
	if err != nil {
		log.Printf("blog: load recent posts: request_id=%s: %v", httpx.RequestIDFrom(r), err)
	}
	var notices []webtemplates.Notice
	if list.Unavailable {
		notices = append(notices, h.Notice(r, webtemplates.NoticeWarning, keyHomeLoadFailed))
	}
	loc := h.PageLocalizer(r)
	h.WritePage(w, r, webtemplates.T(loc, keyHomeTitle), http.StatusOK, notices, webtemplates.HomeFragment(webtemplates.HomeView{
		Owner:       branding.Owner,
		RecentPosts: mapPostSummaries(list.Posts),
	}, loc))
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.listAll(r.Context())
	if err != nil {
		log.Printf("blog: load posts: request_id=%s: %v", httpx.RequestIDFrom(r), err)
	}
	var notices []webtemplates.Notice
	if list.Unavailable {
		notices = append(notices, h.Notice(r, webtemplates.NoticeWarning, keyBlogLoadFailed))
	}
	loc := h.PageLocalizer(r)
	h.WritePage(w, r, webtemplates.T(loc, keyBlogTitle), http.StatusOK, notices, webtemplates.BlogIndexFragment(webtemplates.BlogIndexView{
		Posts: mapPostSummaries(list.Posts),
	}, loc))
}

func (h handlers) handleNewForm(w http.ResponseWriter, r *http.Request) {
	h.writeForm(w, r, postForm{}, nil)
}

func (h handlers) handleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, "", err))
		return
	}
	form := newPostForm(r.PostForm.Get("title"), r.PostForm.Get("content"))

	if _, err := h.service.createPost(r.Context(), form); err != nil {
		if apperrors.KindOf(err) == apperrors.KindInvalidInput {
			h.writeForm(w, r, form, []webtemplates.Notice{
				h.Notice(r, webtemplates.NoticeWarning, apperrors.LocalizationKey(err)),
			})
			return
		}
		log.Printf("blog: create post: request_id=%s: %v", httpx.RequestIDFrom(r), err)
		h.writeForm(w, r, form, []webtemplates.Notice{
			h.Notice(r, webtemplates.NoticeError, keyPostCreateFailed),
		})
		return
	}
	h.RedirectWithNotice(w, r, routepath.Blog, flash.Success(keyPostCreated))
}

func (h handlers) handlePost(w http.ResponseWriter, r *http.Request) {
	post, err := h.service.getPost(r.Context(), r.PathValue(routepath.BlogPostParam))
	if err != nil {
		if apperrors.KindOf(err) != apperrors.KindNotFound {
			log.Printf("blog: load post: request_id=%s: %v", httpx.RequestIDFrom(r), err)
		}
		h.WriteError(w, r, err)
		return
	}
	loc := h.PageLocalizer(r)
	h.WritePage(w, r, post.Title, http.StatusOK, nil, webtemplates.BlogPostFragment(mapPostDetail(post), loc))
}

func (h handlers) writeForm(w http.ResponseWriter, r *http.Request, form postForm, notices []webtemplates.Notice) {
	loc := h.PageLocalizer(r)
	h.WritePage(w, r, webtemplates.T(loc, keyNewPostTitle), http.StatusOK, notices, webtemplates.BlogNewFragment(webtemplates.PostFormView{
		Title:   form.Title,
		Content: form.Content,
	}, loc))
}
