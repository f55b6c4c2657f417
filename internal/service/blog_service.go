package service

import (
	"errors"
	"time"

	"github.com/The-Blind-Code/Blog-Post/internal/models"
	"github.com/The-Blind-Code/Blog-Post/internal/repository"
)

// dateLayout is the display format stamped onto posts at creation,
// e.g. "August 31, 2026".
const dateLayout = "January 2, 2006"

var (
	ErrPostNotFound = errors.New("post not found")
	ErrTitleTaken   = errors.New("a post with that title already exists")
)

// PostInput carries the author-editable fields of a post.
type PostInput struct {
	Title    string
	Subtitle string
	Body     string
	ImgURL   string
}

// BlogService owns the post lifecycle rules: unique titles and the
// creation-date stamp.
type BlogService struct {
	posts repository.Posts
	now   func() time.Time
}

func NewBlogService(posts repository.Posts) *BlogService {
	return &BlogService{posts: posts, now: time.Now}
}

// ListPosts returns every post in insertion order.
func (s *BlogService) ListPosts() ([]models.Post, error) {
	return s.posts.List()
}

// GetPost fetches one post or ErrPostNotFound.
func (s *BlogService) GetPost(id int) (*models.Post, error) {
	p, err := s.posts.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPostNotFound
	}
	return p, nil
}

// CreatePost stamps today's date and persists a new post for the author.
// Titles are globally unique; collisions return ErrTitleTaken.
func (s *BlogService) CreatePost(in PostInput, authorID int) (int, error) {
	clash, err := s.posts.GetByTitle(in.Title)
	if err != nil {
		return 0, err
	}
	if clash != nil {
		return 0, ErrTitleTaken
	}
	return s.posts.Create(models.Post{
		Title:    in.Title,
		Subtitle: in.Subtitle,
		Date:     s.now().Format(dateLayout),
		Body:     in.Body,
		ImgURL:   in.ImgURL,
		AuthorID: authorID,
	})
}

// UpdatePost rewrites the editable fields of an existing post. The original
// creation date and author are preserved.
func (s *BlogService) UpdatePost(id int, in PostInput) error {
	existing, err := s.posts.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrPostNotFound
	}
	if in.Title != existing.Title {
		clash, err := s.posts.GetByTitle(in.Title)
		if err != nil {
			return err
		}
		if clash != nil {
			return ErrTitleTaken
		}
	}
	return s.posts.Update(models.Post{
		ID:       id,
		Title:    in.Title,
		Subtitle: in.Subtitle,
		Body:     in.Body,
		ImgURL:   in.ImgURL,
	})
}

// DeletePost removes a post or returns ErrPostNotFound.
func (s *BlogService) DeletePost(id int) error {
	existing, err := s.posts.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrPostNotFound
	}
	return s.posts.Delete(id)
}
