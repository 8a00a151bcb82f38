package blog

import (
	"strings"
	"time"

	"github.com/manishyadav/portfolio/internal/services/blog/storage"
	"github.com/manishyadav/portfolio/internal/services/web/routepath"
	webtemplates "github.com/manishyadav/portfolio/internal/services/web/templates"
)

const (
	excerptRunes      = 200
	displayDateLayout = "January 02, 2006"
)

func mapPostSummaries(posts []storage.Post) []webtemplates.PostSummary {
	summaries := make([]webtemplates.PostSummary, 0, len(posts))
	for _, post := range posts {
		summaries = append(summaries, mapPostSummary(post))
	}
	return summaries
}

func mapPostSummary(post storage.Post) webtemplates.PostSummary {
	return webtemplates.PostSummary{
		Title:      post.Title,
		Excerpt:    excerpt(post.Content, excerptRunes),
		URL:        routepath.BlogPostURL(post.ID),
		DatePosted: post.DatePosted.UTC().Format(displayDateLayout),
		DateISO:    post.DatePosted.UTC().Format(time.RFC3339),
	}
}

func mapPostDetail(post storage.Post) webtemplates.PostDetailView {
	return webtemplates.PostDetailView{
		Title:      post.Title,
		Content:    post.Content,
		DatePosted: post.DatePosted.UTC().Format(displayDateLayout),
		DateISO:    post.DatePosted.UTC().Format(time.RFC3339),
	}
}

// excerpt collapses whitespace and cuts content to limit runes, marking a
// cut with an ellipsis.
func excerpt(content string, limit int) string {
	text := strings.Join(strings.Fields(content), " ")
	runes := []rune(text)
	if limit <= 0 || len(runes) <= limit {
		return text
	}
	return strings.TrimSpace(string(runes[:limit])) + "..."
}
