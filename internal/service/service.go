package service

import (
	"github.com/The-Blind-Code/Blog-Post/internal/models"
	"github.com/The-Blind-Code/Blog-Post/internal/repository"
)

type Authorization interface {
	SignUp(username, email, password string) (int, error)
	Authenticate(email, password string) (*models.User, error)
	IssueSession(userID int) (string, error)
	ParseSession(token string) (int, error)
	UserByID(id int) (*models.User, error)
	IsAdmin(userID int) bool
}

// Blog exposes the post lifecycle: listing, reading and the admin-only
// create/edit/delete mutations.
type Blog interface {
	ListPosts() ([]models.Post, error)
	GetPost(id int) (*models.Post, error)
	CreatePost(in PostInput, authorID int) (int, error)
	UpdatePost(id int, in PostInput) error
	DeletePost(id int) error
}

// Comments exposes append-only comments scoped to a post.
type Comments interface {
	AddComment(text string, authorID, postID int) (int, error)
	ListForPost(postID int) ([]models.Comment, error)
}

type Service struct {
	Authorization
	Blog
	Comments
}

// NewService wires the repository layer into concrete services.
// sessionSecret signs the session tokens handed to browsers.
func NewService(repos *repository.Repository, sessionSecret string) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, sessionSecret),
		Blog:          NewBlogService(repos.Posts),
		Comments:      NewCommentService(repos.Comments),
	}
}
