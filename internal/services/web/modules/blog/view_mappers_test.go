package blog

import (
	"strings"
	"testing"
	"time"

	"github.com/manishyadav/portfolio/internal/services/blog/storage"
)

func TestExcerpt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		limit   int
		want    string
	}{
		{name: "short", content: "Hello world", limit: 20, want: "Hello world"},
		{name: "collapses whitespace", content: "Hello\n\n  world\t!", limit: 20, want: "Hello world !"},
		{name: "cuts at limit", content: "abcdef", limit: 3, want: "abc..."},
		{name: "counts runes", content: "ééééé", limit: 2, want: "éé..."},
		{name: "trims before ellipsis", content: "ab cd", limit: 3, want: "ab..."},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := excerpt(tc.content, tc.limit); got != tc.want {
				t.Fatalf("excerpt(%q, %d) = %q, want %q", tc.content, tc.limit, got, tc.want)
			}
		})
	}
}

func TestMapPostSummary(t *testing.T) {
	t.Parallel()

	posted := time.Date(2026, time.March, 7, 18, 30, 0, 0, time.FixedZone("IST", 5*3600+1800))
	summary := mapPostSummary(storage.Post{ID: 12, Title: "EKS", Content: strings.Repeat("x", 300), DatePosted: posted})
	if summary.URL != "/blog/12" {
		t.Fatalf("URL = %q, want %q", summary.URL, "/blog/12")
	}
	if summary.DatePosted != "March 07, 2026" {
		t.Fatalf("DatePosted = %q, want %q", summary.DatePosted, "March 07, 2026")
	}
	if summary.DateISO != "2026-03-07T13:00:00Z" {
		t.Fatalf("DateISO = %q, want %q", summary.DateISO, "2026-03-07T13:00:00Z")
	}
	if got := len([]rune(summary.Excerpt)); got != excerptRunes+3 {
		t.Fatalf("excerpt length = %d, want %d", got, excerptRunes+3)
	}
}
