package handlers

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/The-Blind-Code/Blog-Post/internal/logger"
	"github.com/The-Blind-Code/Blog-Post/internal/models"
	"github.com/The-Blind-Code/Blog-Post/internal/service"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Handler wires the HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLog, h.identity)
	router.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	// Health endpoint
	router.GET("/health", h.health)

	// Public pages
	router.GET("/", h.index)
	router.GET("/about", h.about)
	router.GET("/contact", h.contact)
	router.GET("/post/:id", h.showPost)
	router.POST("/post/:id", h.addComment)

	// Account endpoints
	h.registerAccountRoutes(router)

	// Admin authoring endpoints (gated)
	h.registerAdminRoutes(router)

	return router
}

func (h *Handler) registerAccountRoutes(r *gin.Engine) {
	r.GET("/register", h.registerForm)
	r.POST("/register", h.registerSubmit)
	r.GET("/login", h.loginForm)
	r.POST("/login", h.loginSubmit)
	r.GET("/logout", h.logout)
}

func (h *Handler) registerAdminRoutes(r *gin.Engine) {
	admin := r.Group("/", h.requireAdmin)
	{
		admin.GET("/new-post", h.newPostForm)
		admin.POST("/new-post", h.newPostSubmit)
		admin.GET("/edit-post/:id", h.editPostForm)
		admin.POST("/edit-post/:id", h.editPostSubmit)
		admin.GET("/delete/:id", h.deletePost)
	}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// viewData merges page-specific fields with the identity fields every
// template consults.
func (h *Handler) viewData(c *gin.Context, page gin.H) gin.H {
	data := gin.H{
		"LoggedIn": false,
		"IsAdmin":  false,
	}
	if u, ok := currentUser(c); ok {
		data["LoggedIn"] = true
		data["User"] = u
		data["IsAdmin"] = h.services.IsAdmin(u.ID)
	}
	if msg := takeFlash(c); msg != "" {
		data["Flash"] = msg
	}
	for k, v := range page {
		data[k] = v
	}
	return data
}

// currentUser returns the identity resolved by the identity middleware,
// or (nil, false) for an anonymous request.
func currentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*models.User)
	return u, ok && u != nil
}

// notFound terminates the request with a plain 404 page.
func (h *Handler) notFound(c *gin.Context) {
	c.String(http.StatusNotFound, "404 page not found")
	c.Abort()
}

// serverError logs the failure and terminates the request with a plain 500.
func (h *Handler) serverError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.String(http.StatusInternalServerError, "500 internal server error")
	c.Abort()
}
