// Package storage defines persistence contracts for blog posts.
package storage

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	// ErrNotFound indicates a requested post is missing.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidPost indicates the post violates a storage constraint, such
	// as an empty title or content.
	ErrInvalidPost = errors.New("invalid post")
)

// MaxTitleLength bounds post titles at the storage layer.
const MaxTitleLength = 200

// Post is one stored blog post. ID and DatePosted are assigned on insert and
// never change afterwards.
type Post struct {
	ID         int64
	Title      string
	Content    string
	DatePosted time.Time
}

// NewPost carries the caller-provided fields of a post to insert. A zero
// DatePosted means "now".
type NewPost struct {
	Title      string
	Content    string
	DatePosted time.Time
}

// PostStore persists blog posts. Listings are ordered newest first by
// DatePosted, with ties broken by descending ID.
type PostStore interface {
	InsertPost(ctx context.Context, post NewPost) (Post, error)
	ListRecentPosts(ctx context.Context, limit int) ([]Post, error)
	ListPosts(ctx context.Context) ([]Post, error)
	GetPost(ctx context.Context, id int64) (Post, error)
	GetPostByTitle(ctx context.Context, title string) (Post, error)
}

// Normalize trims the post fields, fills a missing DatePosted with now and
// rejects posts that would violate the table constraints.
func Normalize(post NewPost, now func() time.Time) (NewPost, error) {
	post.Title = strings.TrimSpace(post.Title)
	post.Content = strings.TrimSpace(post.Content)
	if post.Title == "" || post.Content == "" {
		return NewPost{}, ErrInvalidPost
	}
	if len([]rune(post.Title)) > MaxTitleLength {
		return NewPost{}, ErrInvalidPost
	}
	if post.DatePosted.IsZero() {
		if now == nil {
			now = time.Now
		}
		post.DatePosted = now()
	}
	post.DatePosted = post.DatePosted.UTC()
	return post, nil
}
