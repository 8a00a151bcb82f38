package blog

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/manishyadav/portfolio/internal/services/blog/storage"
	apperrors "github.com/manishyadav/portfolio/internal/services/web/platform/errors"
)

const recentPostLimit = 3

const (
	keyFillAllFields = "web.blog.notice_fill_all_fields"
	keyTitleTooLong  = "web.blog.notice_title_too_long"
	keyPostNotFound  = "web.blog.error.post_not_found"
)

var errStoreUnavailable = apperrors.EK(apperrors.KindUnavailable, "", "post store is not configured")

// postList is a listing read result. Unavailable separates a failed read
// from an empty table; Posts is empty in both cases.
type postList struct {
	Posts       []storage.Post
	Unavailable bool
}

// postForm is the trimmed create-form submission.
type postForm struct {
	Title   string `validate:"required,max=200"`
	Content string `validate:"required"`
}

func newPostForm(title string, content string) postForm {
	return postForm{Title: strings.TrimSpace(title), Content: strings.TrimSpace(content)}
}

type service struct {
	store    PostStore
	validate *validator.Validate
}

func newService(store PostStore) service {
	return service{store: store, validate: validator.New(validator.WithRequiredStructEnabled())}
}

// listRecent returns the newest posts for the landing page. A read failure
// yields an unavailable list together with the cause.
func (s service) listRecent(ctx context.Context) (postList, error) {
	if s.store == nil {
		return postList{Posts: []storage.Post{}, Unavailable: true}, errStoreUnavailable
	}
	posts, err := s.store.ListRecentPosts(ctx, recentPostLimit)
	if err != nil {
		return postList{Posts: []storage.Post{}, Unavailable: true}, fmt.Errorf("load recent posts: %w", err)
	}
	return postList{Posts: posts}, nil
}

// listAll returns every post for the blog index.
func (s service) listAll(ctx context.Context) (postList, error) {
	if s.store == nil {
		return postList{Posts: []storage.Post{}, Unavailable: true}, errStoreUnavailable
	}
	posts, err := s.store.ListPosts(ctx)
	if err != nil {
		return postList{Posts: []storage.Post{}, Unavailable: true}, fmt.Errorf("load all posts: %w", err)
	}
	return postList{Posts: posts}, nil
}

// validateForm returns an invalid-input error keyed to the notice the form
// should show, or nil.
func (s service) validateForm(form postForm) error {
	err := s.validate.Struct(form)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.Wrap(apperrors.KindInvalidInput, keyFillAllFields, err)
	}
	for _, fieldErr := range fieldErrs {
		if fieldErr.Tag() == "required" {
			return apperrors.EK(apperrors.KindInvalidInput, keyFillAllFields, "title and content are required")
		}
	}
	return apperrors.EK(apperrors.KindInvalidInput, keyTitleTooLong, "title is too long")
}

// createPost validates and stores form. Validation failures are
// invalid-input errors; anything else is a storage failure.
func (s service) createPost(ctx context.Context, form postForm) (storage.Post, error) {
	if err := s.validateForm(form); err != nil {
		return storage.Post{}, err
	}
	if s.store == nil {
		return storage.Post{}, errStoreUnavailable
	}
	post, err := s.store.InsertPost(ctx, storage.NewPost{Title: form.Title, Content: form.Content})
	if err != nil {
		return storage.Post{}, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

// getPost loads one post by its path id. Malformed and unknown ids are
// not-found errors.
func (s service) getPost(ctx context.Context, rawID string) (storage.Post, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(rawID), 10, 64)
	if err != nil || id <= 0 {
		return storage.Post{}, apperrors.EK(apperrors.KindNotFound, keyPostNotFound, "invalid post id")
	}
	if s.store == nil {
		return storage.Post{}, errStoreUnavailable
	}
	post, err := s.store.GetPost(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return storage.Post{}, apperrors.EK(apperrors.KindNotFound, keyPostNotFound, "post not found")
	}
	if err != nil {
		return storage.Post{}, fmt.Errorf("load post %d: %w", id, err)
	}
	return post, nil
}
