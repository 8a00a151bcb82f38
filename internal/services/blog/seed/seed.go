// Package seed inserts the sample blog posts shipped with the site.
//
// Sample files use a small header followed by Markdown:
//
//	### Title
//	###### 5 days ago
//	---
//	Body
package seed

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/manishyadav/portfolio/internal/services/blog/storage"
)

//go:embed posts/*.md
var postsFS embed.FS

const (
	titlePrefix = "### "
	agePrefix   = "###### "
	separator   = "---"
)

// Sample is one post to seed. Age is subtracted from the seeding time to
// produce the post date.
type Sample struct {
	Title   string
	Content string
	Age     time.Duration
}

// Store is the post store surface seeding needs.
type Store interface {
	GetPostByTitle(ctx context.Context, title string) (storage.Post, error)
	InsertPost(ctx context.Context, post storage.NewPost) (storage.Post, error)
}

// Result counts what one seeding pass did.
type Result struct {
	Created int
	Skipped int
}

// Samples returns the embedded sample posts in file name order.
func Samples() ([]Sample, error) {
	return LoadSamples(postsFS, "posts")
}

// LoadSamples parses every .md file under dir in fsys.
func LoadSamples(fsys fs.FS, dir string) ([]Sample, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read samples dir: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".md") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	samples := make([]Sample, 0, len(names))
	for _, name := range names {
		data, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read sample %s: %w", name, err)
		}
		sample, err := ParseSample(data)
		if err != nil {
			return nil, fmt.Errorf("parse sample %s: %w", name, err)
		}
		samples = append(samples, sample)
	}
	return samples, nil
}

// ParseSample decodes one sample file.
func ParseSample(data []byte) (Sample, error) {
	lines := strings.Split(strings.ReplaceAll(string(data), "\r", ""), "\n")
	sepIndex := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == separator {
			sepIndex = i
			break
		}
	}
	if sepIndex < 1 {
		return Sample{}, errors.New("missing header separator")
	}

	var sample Sample
	for _, line := range lines[:sepIndex] {
		switch {
		case strings.HasPrefix(line, agePrefix):
			age, err := parseAge(strings.TrimPrefix(line, agePrefix))
			if err != nil {
				return Sample{}, err
			}
			sample.Age = age
		case strings.HasPrefix(line, titlePrefix):
			sample.Title = strings.TrimSpace(strings.TrimPrefix(line, titlePrefix))
		}
	}
	sample.Content = strings.TrimSpace(strings.Join(lines[sepIndex+1:], "\n"))
	if sample.Title == "" {
		return Sample{}, errors.New("missing title")
	}
	if sample.Content == "" {
		return Sample{}, errors.New("missing content")
	}
	return sample, nil
}

func parseAge(value string) (time.Duration, error) {
	var days int
	if _, err := fmt.Sscanf(strings.TrimSpace(value), "%d days ago", &days); err != nil {
		return 0, fmt.Errorf("parse age %q: %w", value, err)
	}
	if days < 0 {
		return 0, fmt.Errorf("age %q is negative", value)
	}
	return time.Duration(days) * 24 * time.Hour, nil
}

// Run inserts each sample whose title is not already stored. Posts are
// dated now minus the sample age.
func Run(ctx context.Context, store Store, samples []Sample, now time.Time) (Result, error) {
	if store == nil {
		return Result{}, errors.New("post store is required")
	}
	var result Result
	for _, sample := range samples {
		_, err := store.GetPostByTitle(ctx, sample.Title)
		switch {
		case err == nil:
			result.Skipped++
			continue
		case !errors.Is(err, storage.ErrNotFound):
			return result, fmt.Errorf("look up %q: %w", sample.Title, err)
		}
		if _, err := store.InsertPost(ctx, storage.NewPost{
			Title:      sample.Title,
			Content:    sample.Content,
			DatePosted: now.Add(-sample.Age).UTC(),
		}); err != nil {
			return result, fmt.Errorf("insert %q: %w", sample.Title, err)
		}
		result.Created++
	}
	return result, nil
}
