package main

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"inkpost/views"
)

// errNotFound is returned when a requested post does not exist.
var errNotFound = sql.ErrNoRows

// errDuplicateTitle is returned when a write would violate the unique
// constraint on post titles.
var errDuplicateTitle = errors.New("a post with this title already exists")

// store wraps a SQLite database and provides CRUD operations for blog posts.
type store struct {
	db *sql.DB
}

// newStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and creates the posts table on first startup.
func newStore(path string) (*store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL allows concurrent readers while a writer is active; the busy
	// timeout makes writers wait instead of returning SQLITE_BUSY.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *store) Close() error {
	return s.db.Close()
}

func (s *store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS posts (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL UNIQUE,
    subtitle TEXT NOT NULL,
    date TEXT NOT NULL,
    body TEXT NOT NULL,
    author TEXT NOT NULL,
    img_url TEXT NOT NULL
);
`)
	return err
}

// isUniqueTitleErr reports whether err is the SQLite unique-constraint
// violation on posts.title. The driver exposes constraint failures only
// through the error text.
func isUniqueTitleErr(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed: posts.title")
}

func scanPost(row interface{ Scan(...any) error }) (views.BlogPost, error) {
	var p views.BlogPost
	if err := row.Scan(&p.ID, &p.Title, &p.Subtitle, &p.Date, &p.Body, &p.Author, &p.ImgURL); err != nil {
		return views.BlogPost{}, err
	}
	p.Link = postLink(p.ID)
	return p, nil
}

// ListPosts returns all posts in ascending id order.
func (s *store) ListPosts() ([]views.BlogPost, error) {
	rows, err := s.db.Query(`SELECT id, title, subtitle, date, body, author, img_url FROM posts ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []views.BlogPost
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// GetPost returns a single post by id, or errNotFound.
func (s *store) GetPost(id int64) (views.BlogPost, error) {
	row := s.db.QueryRow(`SELECT id, title, subtitle, date, body, author, img_url FROM posts WHERE id = ?`, id)
	return scanPost(row)
}

// InsertPost persists a new post, assigning its id. Date must already be set
// by the caller. Returns errDuplicateTitle on a title collision.
func (s *store) InsertPost(p views.BlogPost) (views.BlogPost, error) {
	res, err := s.db.Exec(`INSERT INTO posts (title, subtitle, date, body, author, img_url) VALUES (?, ?, ?, ?, ?, ?)`,
		p.Title, p.Subtitle, p.Date, p.Body, p.Author, p.ImgURL)
	if err != nil {
		if isUniqueTitleErr(err) {
			return views.BlogPost{}, errDuplicateTitle
		}
		return views.BlogPost{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return views.BlogPost{}, err
	}
	p.ID = id
	p.Link = postLink(id)
	return p, nil
}

// UpdatePost replaces every field of the row except id and date. Returns
// errNotFound when the id is absent and errDuplicateTitle when the new title
// collides with a different row.
func (s *store) UpdatePost(id int64, p views.BlogPost) (views.BlogPost, error) {
	res, err := s.db.Exec(`UPDATE posts SET title = ?, subtitle = ?, body = ?, author = ?, img_url = ? WHERE id = ?`,
		p.Title, p.Subtitle, p.Body, p.Author, p.ImgURL, id)
	if err != nil {
		if isUniqueTitleErr(err) {
			return views.BlogPost{}, errDuplicateTitle
		}
		return views.BlogPost{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return views.BlogPost{}, err
	}
	if n == 0 {
		return views.BlogPost{}, errNotFound
	}
	return s.GetPost(id)
}

// DeletePost removes a post by id, or returns errNotFound.
func (s *store) DeletePost(id int64) error {
	res, err := s.db.Exec(`DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errNotFound
	}
	return nil
}
