// Package sqlite provides a SQLite-backed blog post storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/manishyadav/portfolio/internal/platform/storage/sqlmigrate"
	"github.com/manishyadav/portfolio/internal/services/blog/storage"
	"github.com/manishyadav/portfolio/internal/services/blog/storage/sqlite/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

const backendName = "sqlite"

const selectPostColumns = `SELECT id, title, content, date_posted FROM blog_post`

// Store persists blog posts in SQLite.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite post store at path, creating parent directories as
// needed, and applies embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	dsn := cleanPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlmigrate.Apply(ctx, sqlmigrate.FromSQL(sqlDB), sqlmigrate.SQLite, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// InsertPost inserts one post and returns it with its assigned id.
func (s *Store) InsertPost(ctx context.Context, post storage.NewPost) (_ storage.Post, err error) {
	ctx, finish := storage.StartSpan(ctx, backendName, "InsertPost")
	defer func() { finish(err) }()

	if err := ctx.Err(); err != nil {
		return storage.Post{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Post{}, fmt.Errorf("storage is not configured")
	}
	post, err = storage.Normalize(post, s.now)
	if err != nil {
		return storage.Post{}, err
	}
	datePosted := post.DatePosted.Truncate(time.Millisecond)

	result, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO blog_post (title, content, date_posted) VALUES (?, ?, ?)`,
		post.Title,
		post.Content,
		toMillis(datePosted),
	)
	if err != nil {
		if isConstraintViolation(err) {
			return storage.Post{}, fmt.Errorf("%w: %v", storage.ErrInvalidPost, err)
		}
		return storage.Post{}, fmt.Errorf("insert post: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return storage.Post{}, fmt.Errorf("insert post id: %w", err)
	}
	return storage.Post{
		ID:         id,
		Title:      post.Title,
		Content:    post.Content,
		DatePosted: datePosted,
	}, nil
}

// ListRecentPosts returns up to limit posts, newest first.
func (s *Store) ListRecentPosts(ctx context.Context, limit int) (_ []storage.Post, err error) {
	ctx, finish := storage.StartSpan(ctx, backendName, "ListRecentPosts")
	defer func() { finish(err) }()

	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than zero")
	}
	return s.queryPosts(ctx, selectPostColumns+` ORDER BY date_posted DESC, id DESC LIMIT ?`, limit)
}

// ListPosts returns every post, newest first.
func (s *Store) ListPosts(ctx context.Context) (_ []storage.Post, err error) {
	ctx, finish := storage.StartSpan(ctx, backendName, "ListPosts")
	defer func() { finish(err) }()

	return s.queryPosts(ctx, selectPostColumns+` ORDER BY date_posted DESC, id DESC`)
}

// GetPost returns one post by id.
func (s *Store) GetPost(ctx context.Context, id int64) (_ storage.Post, err error) {
	ctx, finish := storage.StartSpan(ctx, backendName, "GetPost")
	defer func() { finish(err) }()

	if id <= 0 {
		return storage.Post{}, storage.ErrNotFound
	}
	return s.queryPost(ctx, selectPostColumns+` WHERE id = ?`, id)
}

// GetPostByTitle returns the newest post with exactly this (trimmed) title.
func (s *Store) GetPostByTitle(ctx context.Context, title string) (_ storage.Post, err error) {
	ctx, finish := storage.StartSpan(ctx, backendName, "GetPostByTitle")
	defer func() { finish(err) }()

	title = strings.TrimSpace(title)
	if title == "" {
		return storage.Post{}, storage.ErrNotFound
	}
	return s.queryPost(ctx, selectPostColumns+` WHERE title = ? ORDER BY date_posted DESC, id DESC LIMIT 1`, title)
}

func (s *Store) queryPost(ctx context.Context, query string, args ...any) (storage.Post, error) {
	if err := ctx.Err(); err != nil {
		return storage.Post{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Post{}, fmt.Errorf("storage is not configured")
	}
	post, err := scanPost(s.sqlDB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Post{}, storage.ErrNotFound
		}
		return storage.Post{}, fmt.Errorf("get post: %w", err)
	}
	return post, nil
}

func (s *Store) queryPosts(ctx context.Context, query string, args ...any) ([]storage.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	posts := make([]storage.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("list posts: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (storage.Post, error) {
	var post storage.Post
	var datePosted int64
	if err := row.Scan(&post.ID, &post.Title, &post.Content, &datePosted); err != nil {
		return storage.Post{}, err
	}
	post.DatePosted = fromMillis(datePosted)
	return post, nil
}

func isConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_CHECK, sqlite3lib.SQLITE_CONSTRAINT_NOTNULL:
			return true
		}
	}
	message := strings.ToLower(err.Error())
	return strings.Contains(message, "check constraint failed") || strings.Contains(message, "not null constraint failed")
}

var _ storage.PostStore = (*Store)(nil)
