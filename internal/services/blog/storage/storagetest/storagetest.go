// Package storagetest holds behavior tests shared by every PostStore
// implementation.
package storagetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/manishyadav/portfolio/internal/services/blog/storage"
)

// OpenFunc returns an empty store for one test. Implementations register
// their own cleanup on t.
type OpenFunc func(t *testing.T) storage.PostStore

// Run exercises the PostStore contract against stores returned by open.
// Subtests run sequentially so backends may share one database.
func Run(t *testing.T, open OpenFunc) {
	t.Helper()

	t.Run("insert assigns distinct ids and defaults date", func(t *testing.T) {
		store := open(t)
		ctx := context.Background()

		before := time.Now().UTC()
		first, err := store.InsertPost(ctx, storage.NewPost{Title: "T", Content: "C"})
		if err != nil {
			t.Fatalf("insert post: %v", err)
		}
		second, err := store.InsertPost(ctx, storage.NewPost{Title: "T", Content: "C"})
		if err != nil {
			t.Fatalf("insert second post: %v", err)
		}
		if first.ID <= 0 || second.ID <= 0 {
			t.Fatalf("ids = %d, %d, want positive", first.ID, second.ID)
		}
		if first.ID == second.ID {
			t.Fatalf("ids must be distinct, both %d", first.ID)
		}
		if drift := first.DatePosted.Sub(before); drift < -time.Second || drift > 5*time.Second {
			t.Fatalf("date posted %v not within seconds of %v", first.DatePosted, before)
		}
		if first.DatePosted.Location() != time.UTC {
			t.Fatalf("date posted location = %v, want UTC", first.DatePosted.Location())
		}
	})

	t.Run("insert keeps explicit date", func(t *testing.T) {
		store := open(t)
		ctx := context.Background()

		posted := time.Date(2024, time.June, 3, 10, 15, 0, 0, time.UTC)
		created, err := store.InsertPost(ctx, storage.NewPost{Title: "Dated", Content: "Body", DatePosted: posted})
		if err != nil {
			t.Fatalf("insert post: %v", err)
		}
		got, err := store.GetPost(ctx, created.ID)
		if err != nil {
			t.Fatalf("get post: %v", err)
		}
		if !got.DatePosted.Equal(posted) {
			t.Fatalf("date posted = %v, want %v", got.DatePosted, posted)
		}
		if !got.DatePosted.Equal(created.DatePosted) {
			t.Fatalf("stored date %v differs from returned %v", got.DatePosted, created.DatePosted)
		}
	})

	t.Run("insert trims and round trips", func(t *testing.T) {
		store := open(t)
		ctx := context.Background()

		created, err := store.InsertPost(ctx, storage.NewPost{Title: "  Hi  ", Content: "\n World \n"})
		if err != nil {
			t.Fatalf("insert post: %v", err)
		}
		got, err := store.GetPost(ctx, created.ID)
		if err != nil {
			t.Fatalf("get post: %v", err)
		}
		if got.Title != "Hi" || got.Content != "World" {
			t.Fatalf("post = %q/%q, want %q/%q", got.Title, got.Content, "Hi", "World")
		}
		if !SamePost(got, created) {
			t.Fatalf("get post = %+v, want %+v", got, created)
		}
	})

	t.Run("insert rejects blank fields", func(t *testing.T) {
		store := open(t)
		ctx := context.Background()

		for _, post := range []storage.NewPost{
			{Title: "", Content: "hello"},
			{Title: "Hi", Content: "   "},
		} {
			if _, err := store.InsertPost(ctx, post); !errors.Is(err, storage.ErrInvalidPost) {
				t.Fatalf("insert %+v error = %v, want %v", post, err, storage.ErrInvalidPost)
			}
		}
		posts, err := store.ListPosts(ctx)
		if err != nil {
			t.Fatalf("list posts: %v", err)
		}
		if len(posts) != 0 {
			t.Fatalf("posts len = %d, want 0", len(posts))
		}
	})

	t.Run("list posts orders newest first", func(t *testing.T) {
		store := open(t)
		ctx := context.Background()

		base := time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC)
		offsets := []time.Duration{2 * time.Hour, 0, 5 * time.Hour, 2 * time.Hour, time.Hour}
		inserted := make(map[int64]bool, len(offsets))
		for i, offset := range offsets {
			post, err := store.InsertPost(ctx, storage.NewPost{
				Title:      "Post",
				Content:    "Body",
				DatePosted: base.Add(offset),
			})
			if err != nil {
				t.Fatalf("insert post %d: %v", i, err)
			}
			inserted[post.ID] = true
		}

		posts, err := store.ListPosts(ctx)
		if err != nil {
			t.Fatalf("list posts: %v", err)
		}
		if len(posts) != len(offsets) {
			t.Fatalf("posts len = %d, want %d", len(posts), len(offsets))
		}
		seen := make(map[int64]bool, len(posts))
		for i, post := range posts {
			if !inserted[post.ID] {
				t.Fatalf("unexpected post id %d", post.ID)
			}
			if seen[post.ID] {
				t.Fatalf("post id %d listed twice", post.ID)
			}
			seen[post.ID] = true
			if i == 0 {
				continue
			}
			prev := posts[i-1]
			if prev.DatePosted.Before(post.DatePosted) {
				t.Fatalf("posts[%d] %v is older than posts[%d] %v", i-1, prev.DatePosted, i, post.DatePosted)
			}
			if prev.DatePosted.Equal(post.DatePosted) && prev.ID < post.ID {
				t.Fatalf("tie at %v not broken by id desc: %d before %d", post.DatePosted, prev.ID, post.ID)
			}
		}
	})

	t.Run("list recent posts limits to newest", func(t *testing.T) {
		store := open(t)
		ctx := context.Background()

		empty, err := store.ListRecentPosts(ctx, 3)
		if err != nil {
			t.Fatalf("list recent on empty store: %v", err)
		}
		if empty == nil || len(empty) != 0 {
			t.Fatalf("empty store recent = %#v, want empty non-nil slice", empty)
		}

		base := time.Date(2025, time.February, 1, 8, 0, 0, 0, time.UTC)
		var want []int64
		for i := 0; i < 5; i++ {
			post, err := store.InsertPost(ctx, storage.NewPost{
				Title:      "Post",
				Content:    "Body",
				DatePosted: base.Add(time.Duration(i) * time.Hour),
			})
			if err != nil {
				t.Fatalf("insert post %d: %v", i, err)
			}
			want = append([]int64{post.ID}, want...)
		}

		recent, err := store.ListRecentPosts(ctx, 3)
		if err != nil {
			t.Fatalf("list recent: %v", err)
		}
		if len(recent) != 3 {
			t.Fatalf("recent len = %d, want 3", len(recent))
		}
		for i, post := range recent {
			if post.ID != want[i] {
				t.Fatalf("recent[%d].ID = %d, want %d", i, post.ID, want[i])
			}
		}

		all, err := store.ListRecentPosts(ctx, 10)
		if err != nil {
			t.Fatalf("list recent with large limit: %v", err)
		}
		if len(all) != 5 {
			t.Fatalf("recent len = %d, want 5", len(all))
		}
	})

	t.Run("list recent rejects non-positive limit", func(t *testing.T) {
		store := open(t)
		if _, err := store.ListRecentPosts(context.Background(), 0); err == nil {
			t.Fatal("expected limit error")
		}
	})

	t.Run("get post returns not found", func(t *testing.T) {
		store := open(t)
		for _, id := range []int64{999999, 0, -1} {
			if _, err := store.GetPost(context.Background(), id); !errors.Is(err, storage.ErrNotFound) {
				t.Fatalf("get post %d error = %v, want %v", id, err, storage.ErrNotFound)
			}
		}
	})

	t.Run("get post by title", func(t *testing.T) {
		store := open(t)
		ctx := context.Background()

		if _, err := store.GetPostByTitle(ctx, "Getting Started with Kubernetes"); !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("get by title on empty store error = %v, want %v", err, storage.ErrNotFound)
		}
		created, err := store.InsertPost(ctx, storage.NewPost{Title: "Getting Started with Kubernetes", Content: "Pods first."})
		if err != nil {
			t.Fatalf("insert post: %v", err)
		}
		got, err := store.GetPostByTitle(ctx, "  Getting Started with Kubernetes ")
		if err != nil {
			t.Fatalf("get by title: %v", err)
		}
		if got.ID != created.ID {
			t.Fatalf("get by title id = %d, want %d", got.ID, created.ID)
		}
	})

	t.Run("cancelled context fails", func(t *testing.T) {
		store := open(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := store.ListPosts(ctx); err == nil {
			t.Fatal("expected cancelled context error")
		}
		if _, err := store.InsertPost(ctx, storage.NewPost{Title: "T", Content: "C"}); err == nil {
			t.Fatal("expected cancelled context error on insert")
		}
	})
}

// SamePost reports whether two posts carry the same fields, comparing
// timestamps by instant.
func SamePost(a, b storage.Post) bool {
	return a.ID == b.ID &&
		a.Title == b.Title &&
		a.Content == b.Content &&
		a.DatePosted.Equal(b.DatePosted)
}
