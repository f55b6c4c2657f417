package repository

import (
	"database/sql"

	"github.com/The-Blind-Code/Blog-Post/internal/models"
	"github.com/The-Blind-Code/Blog-Post/internal/repository/db"
)

type Users interface {
	Create(username, email, passwordHash string) (int, error)
	GetByEmail(email string) (*models.User, error)
	GetByID(id int) (*models.User, error)
}

type Posts interface {
	Create(p models.Post) (int, error)
	GetByID(id int) (*models.Post, error)
	GetByTitle(title string) (*models.Post, error)
	List() ([]models.Post, error)
	Update(p models.Post) error
	Delete(id int) error
}

type Comments interface {
	Create(c models.Comment) (int, error)
	ListForPost(postID int) ([]models.Comment, error)
}

type Repository struct {
	Users    Users
	Posts    Posts
	Comments Comments
}

func NewRepository(sqlDB *sql.DB) *Repository {
	return &Repository{
		Users:    NewUserRepository(sqlDB),
		Posts:    NewPostRepository(sqlDB),
		Comments: NewCommentRepository(sqlDB),
	}
}

// InitDB re-exports the db subpackage opener so main only imports repository.
func InitDB(path string) (*sql.DB, error) {
	return db.InitDB(path)
}
