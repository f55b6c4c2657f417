package service

import (
	"errors"
	"testing"

	"github.com/The-Blind-Code/Blog-Post/internal/models"

	"golang.org/x/crypto/bcrypt"
)

// mockUserRepo is a lightweight in-test mock for repository.Users.
type mockUserRepo struct {
	CreateFn     func(username, email, hash string) (int, error)
	GetByEmailFn func(email string) (*models.User, error)
	GetByIDFn    func(id int) (*models.User, error)

	createCalls []struct {
		username string
		email    string
		hash     string
	}
}

func (m *mockUserRepo) Create(username, email, hash string) (int, error) {
	m.createCalls = append(m.createCalls, struct {
		username string
		email    string
		hash     string
	}{username, email, hash})
	return m.CreateFn(username, email, hash)
}

func (m *mockUserRepo) GetByEmail(email string) (*models.User, error) {
	return m.GetByEmailFn(email)
}

func (m *mockUserRepo) GetByID(id int) (*models.User, error) {
	return m.GetByIDFn(id)
}

const testSecret = "test-signing-secret"

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(h)
}

// --- SignUp tests ---

func TestAuthService_SignUp_HashesPasswordAndCreates(t *testing.T) {
	mock := &mockUserRepo{
		CreateFn:     func(username, email, hash string) (int, error) { return 42, nil },
		GetByEmailFn: func(email string) (*models.User, error) { return nil, nil },
	}
	svc := NewAuthService(mock, testSecret)

	id, err := svc.SignUp("alice", "a@x.com", "pw1")
	if err != nil {
		t.Fatalf("SignUp returned error: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected id 42, got %d", id)
	}

	if len(mock.createCalls) != 1 {
		t.Fatalf("expected 1 Create call, got %d", len(mock.createCalls))
	}
	stored := mock.createCalls[0].hash
	if stored == "pw1" {
		t.Fatal("password stored as plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte("pw1")); err != nil {
		t.Fatalf("stored hash does not verify the original password: %v", err)
	}
}

func TestAuthService_SignUp_DuplicateEmail(t *testing.T) {
	mock := &mockUserRepo{
		CreateFn: func(username, email, hash string) (int, error) {
			t.Fatal("Create must not be called for a taken email")
			return 0, nil
		},
		GetByEmailFn: func(email string) (*models.User, error) {
			return &models.User{ID: 7, Email: email}, nil
		},
	}
	svc := NewAuthService(mock, testSecret)

	_, err := svc.SignUp("alice", "a@x.com", "pw1")
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if len(mock.createCalls) != 0 {
		t.Fatalf("user count must not increase on duplicate email")
	}
}

func TestAuthService_SignUp_EmptyPassword(t *testing.T) {
	svc := NewAuthService(&mockUserRepo{}, testSecret)
	if _, err := svc.SignUp("alice", "a@x.com", "  "); err == nil {
		t.Fatal("expected error for blank password")
	}
}

// --- Authenticate tests ---

func TestAuthService_Authenticate(t *testing.T) {
	stored := hashOf(t, "pw1")
	mock := &mockUserRepo{
		GetByEmailFn: func(email string) (*models.User, error) {
			if email == "a@x.com" {
				return &models.User{ID: 2, Email: email, PasswordHash: stored}, nil
			}
			return nil, nil
		},
	}
	svc := NewAuthService(mock, testSecret)

	u, err := svc.Authenticate("a@x.com", "pw1")
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if u.ID != 2 {
		t.Fatalf("unexpected user: %+v", u)
	}

	if _, err := svc.Authenticate("a@x.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	// Unknown email yields the same error as a wrong password.
	if _, err := svc.Authenticate("nobody@x.com", "pw1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
}

// --- Session token tests ---

func TestAuthService_SessionRoundTrip(t *testing.T) {
	svc := NewAuthService(&mockUserRepo{}, testSecret)

	token, err := svc.IssueSession(7)
	if err != nil {
		t.Fatalf("IssueSession returned error: %v", err)
	}
	id, err := svc.ParseSession(token)
	if err != nil {
		t.Fatalf("ParseSession returned error: %v", err)
	}
	if id != 7 {
		t.Fatalf("expected user id 7, got %d", id)
	}
}

func TestAuthService_ParseSession_RejectsForeignSignature(t *testing.T) {
	issuer := NewAuthService(&mockUserRepo{}, "other-secret")
	token, err := issuer.IssueSession(7)
	if err != nil {
		t.Fatalf("IssueSession returned error: %v", err)
	}

	svc := NewAuthService(&mockUserRepo{}, testSecret)
	if _, err := svc.ParseSession(token); err == nil {
		t.Fatal("expected error for token signed with a different secret")
	}
}

func TestAuthService_ParseSession_RejectsGarbage(t *testing.T) {
	svc := NewAuthService(&mockUserRepo{}, testSecret)
	if _, err := svc.ParseSession("not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

// --- Access policy ---

func TestAuthService_IsAdmin(t *testing.T) {
	svc := NewAuthService(&mockUserRepo{}, testSecret)
	if !svc.IsAdmin(AdminUserID) {
		t.Fatal("admin id must be admin")
	}
	for _, id := range []int{0, 2, 99, -1} {
		if svc.IsAdmin(id) {
			t.Fatalf("id %d must not be admin", id)
		}
	}
}
