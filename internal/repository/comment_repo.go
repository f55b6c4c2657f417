package repository

import (
	"database/sql"
	"fmt"

	"github.com/The-Blind-Code/Blog-Post/internal/models"
)

type CommentRepository struct {
	db *sql.DB
}

func NewCommentRepository(db *sql.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

var _ Comments = (*CommentRepository)(nil)

const (
	insertCommentSQL = `INSERT INTO comments (text, author_id, post_id) VALUES (?, ?, ?)`

	selectCommentsForPostSQL = `SELECT c.id, c.text, c.author_id, c.post_id, u.username, u.email
FROM comments c JOIN users u ON u.id = c.author_id WHERE c.post_id = ? ORDER BY c.id`
)

// Create inserts a new comment and returns its ID.
func (r *CommentRepository) Create(c models.Comment) (int, error) {
	res, err := r.db.Exec(insertCommentSQL, c.Text, c.AuthorID, c.PostID)
	if err != nil {
		return 0, fmt.Errorf("insert comment on post %d: %w", c.PostID, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for comment on post %d: %w", c.PostID, err)
	}
	return int(lastID), nil
}

// ListForPost returns the comments on one post in insertion order, with
// author name and email materialized for rendering.
func (r *CommentRepository) ListForPost(postID int) ([]models.Comment, error) {
	rows, err := r.db.Query(selectCommentsForPostSQL, postID)
	if err != nil {
		return nil, fmt.Errorf("select comments for post %d: %w", postID, err)
	}
	defer func() { _ = rows.Close() }()

	var comments []models.Comment
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.Text, &c.AuthorID, &c.PostID, &c.AuthorName, &c.AuthorEmail); err != nil {
			return nil, fmt.Errorf("scan comment row: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comment rows: %w", err)
	}
	return comments, nil
}
