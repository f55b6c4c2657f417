package service

import (
	"errors"
	"testing"
	"time"

	"github.com/The-Blind-Code/Blog-Post/internal/models"
)

// mockPostRepo is a lightweight in-test mock for repository.Posts.
type mockPostRepo struct {
	CreateFn     func(p models.Post) (int, error)
	GetByIDFn    func(id int) (*models.Post, error)
	GetByTitleFn func(title string) (*models.Post, error)
	ListFn       func() ([]models.Post, error)
	UpdateFn     func(p models.Post) error
	DeleteFn     func(id int) error

	created []models.Post
	updated []models.Post
	deleted []int
}

func (m *mockPostRepo) Create(p models.Post) (int, error) {
	m.created = append(m.created, p)
	return m.CreateFn(p)
}
func (m *mockPostRepo) GetByID(id int) (*models.Post, error)          { return m.GetByIDFn(id) }
func (m *mockPostRepo) GetByTitle(title string) (*models.Post, error) { return m.GetByTitleFn(title) }
func (m *mockPostRepo) List() ([]models.Post, error)                  { return m.ListFn() }
func (m *mockPostRepo) Update(p models.Post) error {
	m.updated = append(m.updated, p)
	return m.UpdateFn(p)
}
func (m *mockPostRepo) Delete(id int) error {
	m.deleted = append(m.deleted, id)
	return m.DeleteFn(id)
}

func TestBlogService_CreatePost_StampsDateAndAuthor(t *testing.T) {
	mock := &mockPostRepo{
		CreateFn:     func(p models.Post) (int, error) { return 5, nil },
		GetByTitleFn: func(title string) (*models.Post, error) { return nil, nil },
	}
	svc := NewBlogService(mock)
	svc.now = func() time.Time { return time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC) }

	id, err := svc.CreatePost(PostInput{Title: "T", Subtitle: "S", Body: "B", ImgURL: "U"}, 1)
	if err != nil {
		t.Fatalf("CreatePost returned error: %v", err)
	}
	if id != 5 {
		t.Fatalf("expected id 5, got %d", id)
	}
	if len(mock.created) != 1 {
		t.Fatalf("expected 1 Create call, got %d", len(mock.created))
	}
	got := mock.created[0]
	if got.Title != "T" || got.Subtitle != "S" || got.Body != "B" || got.ImgURL != "U" {
		t.Fatalf("fields not passed through: %+v", got)
	}
	if got.AuthorID != 1 {
		t.Fatalf("expected author id 1, got %d", got.AuthorID)
	}
	if got.Date != "August 31, 2026" {
		t.Fatalf("expected display date stamp, got %q", got.Date)
	}
}

func TestBlogService_CreatePost_DuplicateTitle(t *testing.T) {
	mock := &mockPostRepo{
		CreateFn: func(p models.Post) (int, error) {
			t.Fatal("Create must not be called for a taken title")
			return 0, nil
		},
		GetByTitleFn: func(title string) (*models.Post, error) {
			return &models.Post{ID: 3, Title: title}, nil
		},
	}
	svc := NewBlogService(mock)

	if _, err := svc.CreatePost(PostInput{Title: "Hello"}, 1); !errors.Is(err, ErrTitleTaken) {
		t.Fatalf("expected ErrTitleTaken, got %v", err)
	}
}

func TestBlogService_GetPost_NotFound(t *testing.T) {
	mock := &mockPostRepo{
		GetByIDFn: func(id int) (*models.Post, error) { return nil, nil },
	}
	svc := NewBlogService(mock)

	if _, err := svc.GetPost(42); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestBlogService_UpdatePost(t *testing.T) {
	existing := &models.Post{ID: 5, Title: "Old", Date: "May 1, 2026", AuthorID: 1}
	mock := &mockPostRepo{
		GetByIDFn: func(id int) (*models.Post, error) {
			if id == 5 {
				return existing, nil
			}
			return nil, nil
		},
		GetByTitleFn: func(title string) (*models.Post, error) {
			if title == "Taken" {
				return &models.Post{ID: 9, Title: title}, nil
			}
			return nil, nil
		},
		UpdateFn: func(p models.Post) error { return nil },
	}
	svc := NewBlogService(mock)

	// missing post
	err := svc.UpdatePost(42, PostInput{Title: "New"})
	if !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}

	// renaming onto an existing title
	err = svc.UpdatePost(5, PostInput{Title: "Taken"})
	if !errors.Is(err, ErrTitleTaken) {
		t.Fatalf("expected ErrTitleTaken, got %v", err)
	}

	// keeping the same title is not a collision
	if err := svc.UpdatePost(5, PostInput{Title: "Old", Subtitle: "S2", Body: "B2", ImgURL: "U2"}); err != nil {
		t.Fatalf("UpdatePost returned error: %v", err)
	}
	if len(mock.updated) != 1 {
		t.Fatalf("expected 1 Update call, got %d", len(mock.updated))
	}
	if mock.updated[0].Subtitle != "S2" {
		t.Fatalf("fields not passed through: %+v", mock.updated[0])
	}
}

func TestBlogService_DeletePost(t *testing.T) {
	mock := &mockPostRepo{
		GetByIDFn: func(id int) (*models.Post, error) {
			if id == 5 {
				return &models.Post{ID: 5}, nil
			}
			return nil, nil
		},
		DeleteFn: func(id int) error { return nil },
	}
	svc := NewBlogService(mock)

	if err := svc.DeletePost(42); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
	if err := svc.DeletePost(5); err != nil {
		t.Fatalf("DeletePost returned error: %v", err)
	}
	if len(mock.deleted) != 1 || mock.deleted[0] != 5 {
		t.Fatalf("unexpected delete calls: %v", mock.deleted)
	}
}
