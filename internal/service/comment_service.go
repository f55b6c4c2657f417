package service

import (
	"errors"
	"strings"

	"github.com/The-Blind-Code/Blog-Post/internal/models"
	"github.com/The-Blind-Code/Blog-Post/internal/repository"
)

var errEmptyComment = errors.New("comment text is empty")

// CommentService appends comments to posts and lists them per post.
type CommentService struct {
	comments repository.Comments
}

func NewCommentService(comments repository.Comments) *CommentService {
	return &CommentService{comments: comments}
}

// AddComment persists a comment tied to the given author and post.
func (s *CommentService) AddComment(text string, authorID, postID int) (int, error) {
	if strings.TrimSpace(text) == "" {
		return 0, errEmptyComment
	}
	return s.comments.Create(models.Comment{
		Text:     text,
		AuthorID: authorID,
		PostID:   postID,
	})
}

// ListForPost returns only the comments belonging to the given post,
// in insertion order.
func (s *CommentService) ListForPost(postID int) ([]models.Comment, error) {
	return s.comments.ListForPost(postID)
}
