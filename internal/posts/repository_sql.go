package posts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// SchemaSQLite is the canonical posts table. Migrations are a deliberate
// non-feature: this is the only table, created once by an operator.
const SchemaSQLite = `CREATE TABLE IF NOT EXISTS posts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	content TEXT NOT NULL,
	image_url TEXT,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
)`

var _ Repository = (*sqlRepository)(nil)

type sqlRepository struct {
	db     *sql.DB
	driver string
}

// NewSQLRepository wraps a database handle. driver is "postgres" or
// "sqlite"; it decides placeholder style and how inserted ids come back.
func NewSQLRepository(db *sql.DB, driver string) Repository {
	return &sqlRepository{db: db, driver: driver}
}

func (r *sqlRepository) List(ctx context.Context) ([]*Post, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, content, image_url, created_at, updated_at
		 FROM posts ORDER BY created_at DESC, id ASC`)
	if err != nil {
		// A missing table is first-run state, not a failure: the feed is
		// simply empty until the schema exists.
		if isMissingTable(err) {
			return []*Post{}, nil
		}
		return nil, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close()

	result := []*Post{}
	for rows.Next() {
		var p Post
		var imageURL sql.NullString
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &imageURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		if imageURL.Valid {
			p.ImageURL = &imageURL.String
		}
		result = append(result, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}
	return result, nil
}

func (r *sqlRepository) Create(ctx context.Context, title, content string, imageURL *string) (*Post, error) {
	now := NowUTC()
	post := &Post{
		Title:     title,
		Content:   content,
		ImageURL:  imageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}

	var img sql.NullString
	if imageURL != nil {
		img = sql.NullString{String: *imageURL, Valid: true}
	}

	if r.driver == "postgres" {
		err := r.db.QueryRowContext(ctx,
			`INSERT INTO posts (title, content, image_url, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			title, content, img, now, now).Scan(&post.ID)
		if err != nil {
			return nil, fmt.Errorf("insert post: %w", err)
		}
		return post, nil
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO posts (title, content, image_url, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		title, content, img, now, now)
	if err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("read inserted id: %w", err)
	}
	post.ID = id
	return post, nil
}

// isMissingTable recognizes "the posts table does not exist yet" across
// both drivers: undefined_table for Postgres, a message match for SQLite.
func isMissingTable(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "42P01"
	}
	msg := err.Error()
	return strings.Contains(msg, "no such table") || strings.Contains(msg, "does not exist")
}
