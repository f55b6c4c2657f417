package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/The-Blind-Code/Blog-Post/internal/models"
)

type PostRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) *PostRepository {
	return &PostRepository{db: db}
}

var _ Posts = (*PostRepository)(nil)

const (
	insertPostSQL = `INSERT INTO blog_posts (title, subtitle, date, body, img_url, author_id) VALUES (?, ?, ?, ?, ?, ?)`

	selectPostByIDSQL = `SELECT p.id, p.title, p.subtitle, p.date, p.body, p.img_url, p.author_id, u.username
FROM blog_posts p JOIN users u ON u.id = p.author_id WHERE p.id = ?`

	selectPostByTitleSQL = `SELECT p.id, p.title, p.subtitle, p.date, p.body, p.img_url, p.author_id, u.username
FROM blog_posts p JOIN users u ON u.id = p.author_id WHERE p.title = ?`

	// Listing order is insertion (primary-key) order.
	selectAllPostsSQL = `SELECT p.id, p.title, p.subtitle, p.date, p.body, p.img_url, p.author_id, u.username
FROM blog_posts p JOIN users u ON u.id = p.author_id ORDER BY p.id`

	updatePostSQL = `UPDATE blog_posts SET title = ?, subtitle = ?, body = ?, img_url = ? WHERE id = ?`

	deletePostSQL = `DELETE FROM blog_posts WHERE id = ?`
)

func scanPost(row *sql.Row) (*models.Post, error) {
	var p models.Post
	err := row.Scan(&p.ID, &p.Title, &p.Subtitle, &p.Date, &p.Body, &p.ImgURL, &p.AuthorID, &p.AuthorName)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new post and returns its ID.
func (r *PostRepository) Create(p models.Post) (int, error) {
	res, err := r.db.Exec(insertPostSQL, p.Title, p.Subtitle, p.Date, p.Body, p.ImgURL, p.AuthorID)
	if err != nil {
		return 0, fmt.Errorf("insert post %q: %w", p.Title, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for post %q: %w", p.Title, err)
	}
	return int(lastID), nil
}

// GetByID fetches a post with its author name. Returns (nil, nil) if not found.
func (r *PostRepository) GetByID(id int) (*models.Post, error) {
	p, err := scanPost(r.db.QueryRow(selectPostByIDSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select post id=%d: %w", id, err)
	}
	return p, nil
}

// GetByTitle fetches a post by its unique title. Returns (nil, nil) if not found.
func (r *PostRepository) GetByTitle(title string) (*models.Post, error) {
	p, err := scanPost(r.db.QueryRow(selectPostByTitleSQL, title))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select post %q: %w", title, err)
	}
	return p, nil
}

// List returns all posts in insertion order.
func (r *PostRepository) List() ([]models.Post, error) {
	rows, err := r.db.Query(selectAllPostsSQL)
	if err != nil {
		return nil, fmt.Errorf("select posts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var posts []models.Post
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Subtitle, &p.Date, &p.Body, &p.ImgURL, &p.AuthorID, &p.AuthorName); err != nil {
			return nil, fmt.Errorf("scan post row: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate post rows: %w", err)
	}
	return posts, nil
}

// Update rewrites the editable fields of an existing post. Date and author
// are stamped at creation and never change.
func (r *PostRepository) Update(p models.Post) error {
	res, err := r.db.Exec(updatePostSQL, p.Title, p.Subtitle, p.Body, p.ImgURL, p.ID)
	if err != nil {
		return fmt.Errorf("update post id=%d: %w", p.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for post id=%d: %w", p.ID, err)
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a post. Returns sql.ErrNoRows if no row matched.
func (r *PostRepository) Delete(id int) error {
	res, err := r.db.Exec(deletePostSQL, id)
	if err != nil {
		return fmt.Errorf("delete post id=%d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for post id=%d: %w", id, err)
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
