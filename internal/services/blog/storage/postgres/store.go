// Package postgres provides a Postgres-backed blog post storage
// implementation on top of pgxpool.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/manishyadav/portfolio/internal/platform/storage/sqlmigrate"
	"github.com/manishyadav/portfolio/internal/services/blog/storage"
	"github.com/manishyadav/portfolio/internal/services/blog/storage/postgres/migrations"
)

const backendName = "postgresql"

const selectPostColumns = `SELECT id, title, content, date_posted FROM blog_post`

// Postgres SQLSTATE codes that mean the row itself was rejected.
const (
	codeNotNullViolation = "23502"
	codeCheckViolation   = "23514"
	codeStringTooLong    = "22001"
)

const maxConns = 10

// Store persists blog posts in Postgres.
type Store struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

// Open connects to the database at dsn and applies embedded migrations.
func Open(ctx context.Context, dsn string) (*Store, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("database url is required")
	}
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	if cfg.MaxConns > maxConns {
		cfg.MaxConns = maxConns
	}
	cfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeCacheStatement

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if err := sqlmigrate.Apply(ctx, poolConn{pool: pool}, sqlmigrate.Postgres, migrations.FS, ""); err != nil {
		pool.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{pool: pool, now: time.Now}, nil
}

// Close releases every pooled connection.
func (s *Store) Close() error {
	if s == nil || s.pool == nil {
		return nil
	}
	s.pool.Close()
	return nil
}

// InsertPost inserts one post and returns it with its assigned id.
func (s *Store) InsertPost(ctx context.Context, post storage.NewPost) (_ storage.Post, err error) {
	ctx, finish := storage.StartSpan(ctx, backendName, "InsertPost")
	defer func() { finish(err) }()

	if err := ctx.Err(); err != nil {
		return storage.Post{}, err
	}
	if s == nil || s.pool == nil {
		return storage.Post{}, fmt.Errorf("storage is not configured")
	}
	post, err = storage.Normalize(post, s.now)
	if err != nil {
		return storage.Post{}, err
	}
	// TIMESTAMPTZ keeps microseconds.
	datePosted := post.DatePosted.Truncate(time.Microsecond)

	var id int64
	err = s.pool.QueryRow(
		ctx,
		`INSERT INTO blog_post (title, content, date_posted) VALUES ($1, $2, $3) RETURNING id`,
		post.Title,
		post.Content,
		datePosted,
	).Scan(&id)
	if err != nil {
		if isConstraintViolation(err) {
			return storage.Post{}, fmt.Errorf("%w: %v", storage.ErrInvalidPost, err)
		}
		return storage.Post{}, fmt.Errorf("insert post: %w", err)
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
	return s.queryPosts(ctx, selectPostColumns+` ORDER BY date_posted DESC, id DESC LIMIT $1`, limit)
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
	return s.queryPost(ctx, selectPostColumns+` WHERE id = $1`, id)
}

// GetPostByTitle returns the newest post with exactly this (trimmed) title.
func (s *Store) GetPostByTitle(ctx context.Context, title string) (_ storage.Post, err error) {
	ctx, finish := storage.StartSpan(ctx, backendName, "GetPostByTitle")
	defer func() { finish(err) }()

	title = strings.TrimSpace(title)
	if title == "" {
		return storage.Post{}, storage.ErrNotFound
	}
	return s.queryPost(ctx, selectPostColumns+` WHERE title = $1 ORDER BY date_posted DESC, id DESC LIMIT 1`, title)
}

func (s *Store) queryPost(ctx context.Context, query string, args ...any) (storage.Post, error) {
	if err := ctx.Err(); err != nil {
		return storage.Post{}, err
	}
	if s == nil || s.pool == nil {
		return storage.Post{}, fmt.Errorf("storage is not configured")
	}
	post, err := scanPost(s.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
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
	if s == nil || s.pool == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	rows, err := s.pool.Query(ctx, query, args...)
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

func scanPost(row pgx.Row) (storage.Post, error) {
	var post storage.Post
	if err := row.Scan(&post.ID, &post.Title, &post.Content, &post.DatePosted); err != nil {
		return storage.Post{}, err
	}
	post.DatePosted = post.DatePosted.UTC()
	return post, nil
}

func isConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case codeNotNullViolation, codeCheckViolation, codeStringTooLong:
		return true
	}
	return false
}

// poolConn adapts a pgx pool to the migration runner.
type poolConn struct {
	pool *pgxpool.Pool
}

func (c poolConn) Exec(ctx context.Context, query string, args ...any) error {
	_, err := c.pool.Exec(ctx, query, args...)
	return err
}

func (c poolConn) Exists(ctx context.Context, query string, args ...any) (bool, error) {
	var found int
	err := c.pool.QueryRow(ctx, query, args...).Scan(&found)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (c poolConn) Begin(ctx context.Context) (sqlmigrate.Tx, error) {
	tx, err := c.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return poolTx{tx: tx}, nil
}

type poolTx struct {
	tx pgx.Tx
}

func (t poolTx) Exec(ctx context.Context, query string, args ...any) error {
	_, err := t.tx.Exec(ctx, query, args...)
	return err
}

func (t poolTx) Commit(ctx context.Context) error   { return t.tx.Commit(ctx) }
func (t poolTx) Rollback(ctx context.Context) error { return t.tx.Rollback(ctx) }

var _ storage.PostStore = (*Store)(nil)
