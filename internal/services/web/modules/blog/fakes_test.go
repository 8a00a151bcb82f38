package blog

import (
	"context"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/manishyadav/portfolio/internal/services/blog/storage"
	"github.com/manishyadav/portfolio/internal/services/web/platform/flash"
	"github.com/manishyadav/portfolio/internal/services/web/platform/modulehandler"
	"golang.org/x/net/html"
)

type fakeStore struct {
	mu        sync.Mutex
	posts     []storage.Post
	nextID    int64
	now       time.Time
	listErr   error
	insertErr error
	getErr    error
}

func newFakeStore(posts ...storage.Post) *fakeStore {
	store := &fakeStore{now: time.Date(2026, time.May, 1, 9, 0, 0, 0, time.UTC)}
	for _, post := range posts {
		store.posts = append(store.posts, post)
		if post.ID > store.nextID {
			store.nextID = post.ID
		}
	}
	return store
}

func (s *fakeStore) InsertPost(_ context.Context, post storage.NewPost) (storage.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.insertErr != nil {
		return storage.Post{}, s.insertErr
	}
	normalized, err := storage.Normalize(post, func() time.Time { return s.now })
	if err != nil {
		return storage.Post{}, err
	}
	s.nextID++
	created := storage.Post{
		ID:         s.nextID,
		Title:      normalized.Title,
		Content:    normalized.Content,
		DatePosted: normalized.DatePosted,
	}
	s.posts = append(s.posts, created)
	return created, nil
}

func (s *fakeStore) ListRecentPosts(ctx context.Context, limit int) ([]storage.Post, error) {
	posts, err := s.ListPosts(ctx)
	if err != nil {
		return nil, err
	}
	if len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

func (s *fakeStore) ListPosts(context.Context) ([]storage.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	posts := make([]storage.Post, len(s.posts))
	copy(posts, s.posts)
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].DatePosted.Equal(posts[j].DatePosted) {
			return posts[i].ID > posts[j].ID
		}
		return posts[i].DatePosted.After(posts[j].DatePosted)
	})
	return posts, nil
}

func (s *fakeStore) GetPost(_ context.Context, id int64) (storage.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return storage.Post{}, s.getErr
	}
	for _, post := range s.posts {
		if post.ID == id {
			return post, nil
		}
	}
	return storage.Post{}, storage.ErrNotFound
}

func (s *fakeStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.posts)
}

func testBase() modulehandler.Base {
	return modulehandler.NewBase(flash.Store{})
}

func parseHTML(t *testing.T, body string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func findAll(root *html.Node, match func(*html.Node) bool) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			found = append(found, n)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)
	return found
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, field := range strings.Fields(attr(n, "class")) {
		if field == class {
			return true
		}
	}
	return false
}

func byClass(class string) func(*html.Node) bool {
	return func(n *html.Node) bool { return hasClass(n, class) }
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}

// notices returns kind -> message for every rendered notice.
func notices(doc *html.Node) map[string]string {
	out := map[string]string{}
	for _, n := range findAll(doc, func(n *html.Node) bool { return attr(n, "data-notice-kind") != "" }) {
		for _, msg := range findAll(n, byClass("notice-message")) {
			out[attr(n, "data-notice-kind")] = textContent(msg)
		}
	}
	return out
}
