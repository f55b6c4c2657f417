package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/The-Blind-Code/Blog-Post/internal/models"
	"github.com/The-Blind-Code/Blog-Post/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// sessionTTL bounds how long a browser session stays valid after login.
const sessionTTL = 7 * 24 * time.Hour

// AdminUserID is the reserved id of the first registered user, the only
// identity allowed to create, edit or delete posts.
const AdminUserID = 1

// Domain errors for auth flows.
var (
	ErrEmailTaken = errors.New("a user with that email already exists")
	// ErrInvalidCredentials deliberately covers both unknown email and wrong
	// password so login failures leak nothing about which field was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidSession     = errors.New("invalid session token")
)

// AuthService handles registration, credential checks and session tokens.
type AuthService struct {
	users      repository.Users
	signingKey []byte
}

func NewAuthService(users repository.Users, sessionSecret string) *AuthService {
	return &AuthService{users: users, signingKey: []byte(sessionSecret)}
}

// SignUp hashes the password and creates a new user. The email must be
// unused; the check runs before the insert rather than relying on the
// storage-level constraint error.
func (s *AuthService) SignUp(username, email, password string) (int, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("invalid password: %w", err)
	}
	existing, err := s.users.GetByEmail(email)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, ErrEmailTaken
	}
	return s.users.Create(username, email, hash)
}

// Authenticate looks a user up by email and verifies the password.
func (s *AuthService) Authenticate(email, password string) (*models.User, error) {
	u, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// sessionClaims defines the signed session token payload.
type sessionClaims struct {
	jwt.RegisteredClaims
	UserID int `json:"user_id"`
}

// IssueSession returns a signed token naming the user; the browser carries
// it in a cookie and every request is resolved back through ParseSession.
func (s *AuthService) IssueSession(userID int) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	})
	return token.SignedString(s.signingKey)
}

// ParseSession verifies a session token and returns the user id it names.
func (s *AuthService) ParseSession(tokenStr string) (int, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return 0, err
	}
	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return 0, ErrInvalidSession
	}
	return claims.UserID, nil
}

// UserByID refetches the user behind a session. Returns (nil, nil) when the
// id no longer resolves, which callers treat as an anonymous identity.
func (s *AuthService) UserByID(id int) (*models.User, error) {
	return s.users.GetByID(id)
}

// IsAdmin reports whether the given user id is the reserved admin identity.
func (s *AuthService) IsAdmin(userID int) bool {
	return userID == AdminUserID
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
