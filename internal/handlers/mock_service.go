package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/The-Blind-Code/Blog-Post/internal/models"
	"github.com/The-Blind-Code/Blog-Post/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID  int
	signUpErr error
	authUser  *models.User
	authErr   error
	token     string
	issueErr  error
	parseID   int
	parseErr  error
	users     map[int]*models.User

	lastSignUpEmail string
	lastAuthEmail   string
}

func (m *mockAuth) SignUp(username, email, password string) (int, error) {
	m.lastSignUpEmail = email
	return m.signUpID, m.signUpErr
}

func (m *mockAuth) Authenticate(email, password string) (*models.User, error) {
	m.lastAuthEmail = email
	return m.authUser, m.authErr
}

func (m *mockAuth) IssueSession(userID int) (string, error) {
	return m.token, m.issueErr
}

func (m *mockAuth) ParseSession(token string) (int, error) {
	return m.parseID, m.parseErr
}

func (m *mockAuth) UserByID(id int) (*models.User, error) {
	return m.users[id], nil
}

func (m *mockAuth) IsAdmin(userID int) bool {
	return userID == service.AdminUserID
}

type mockBlog struct {
	posts     []models.Post
	listErr   error
	byID      map[int]*models.Post
	createID  int
	createErr error
	updateErr error

	lastCreate service.PostInput
	lastAuthor int
	lastUpdate service.PostInput
	deleted    []int
}

func (m *mockBlog) ListPosts() ([]models.Post, error) {
	return m.posts, m.listErr
}

func (m *mockBlog) GetPost(id int) (*models.Post, error) {
	if p, ok := m.byID[id]; ok {
		return p, nil
	}
	return nil, service.ErrPostNotFound
}

func (m *mockBlog) CreatePost(in service.PostInput, authorID int) (int, error) {
	m.lastCreate = in
	m.lastAuthor = authorID
	return m.createID, m.createErr
}

func (m *mockBlog) UpdatePost(id int, in service.PostInput) error {
	if _, ok := m.byID[id]; !ok {
		return service.ErrPostNotFound
	}
	m.lastUpdate = in
	return m.updateErr
}

func (m *mockBlog) DeletePost(id int) error {
	if _, ok := m.byID[id]; !ok {
		return service.ErrPostNotFound
	}
	m.deleted = append(m.deleted, id)
	return nil
}

type mockComments struct {
	addID   int
	addErr  error
	list    []models.Comment
	listErr error

	added []models.Comment
}

func (m *mockComments) AddComment(text string, authorID, postID int) (int, error) {
	m.added = append(m.added, models.Comment{Text: text, AuthorID: authorID, PostID: postID})
	return m.addID, m.addErr
}

func (m *mockComments) ListForPost(postID int) ([]models.Comment, error) {
	return m.list, m.listErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

// formRequest builds an urlencoded POST the way a browser submits a form.
func formRequest(path string, fields map[string]string) *http.Request {
	vals := url.Values{}
	for k, v := range fields {
		vals.Set(k, v)
	}
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(vals.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func withSession(req *http.Request, token string) *http.Request {
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: token})
	return req
}

// setCookies joins all Set-Cookie headers for substring assertions.
func setCookies(w *httptest.ResponseRecorder) string {
	return strings.Join(w.Result().Header.Values("Set-Cookie"), "; ")
}
