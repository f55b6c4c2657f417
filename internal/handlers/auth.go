package handlers

import (
	"errors"
	"net/http"

	"github.com/The-Blind-Code/Blog-Post/internal/service"

	"github.com/gin-gonic/gin"
)

const invalidCredentialsMsg = "Invalid Email or Password"

type registerInput struct {
	Username string `form:"username" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

type loginInput struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

func (h *Handler) renderRegister(c *gin.Context, code int, errMsg string) {
	c.HTML(code, "register.html", h.viewData(c, gin.H{"Error": errMsg}))
}

func (h *Handler) renderLogin(c *gin.Context, code int, errMsg string) {
	c.HTML(code, "login.html", h.viewData(c, gin.H{"Error": errMsg}))
}

func (h *Handler) registerForm(c *gin.Context) {
	h.renderRegister(c, http.StatusOK, "")
}

func (h *Handler) registerSubmit(c *gin.Context) {
	var input registerInput
	if err := c.ShouldBind(&input); err != nil {
		h.renderRegister(c, http.StatusOK, "All fields are required and the email must be valid.")
		return
	}

	id, err := h.services.SignUp(input.Username, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			h.renderRegister(c, http.StatusOK, "The user with that email already exists")
			return
		}
		h.serverError(c, "register_failed", err, "email", input.Email)
		return
	}

	if err := h.startSession(c, id); err != nil {
		h.serverError(c, "session_issue_failed", err, "user_id", id)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) loginForm(c *gin.Context) {
	h.renderLogin(c, http.StatusOK, "")
}

func (h *Handler) loginSubmit(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBind(&input); err != nil {
		h.renderLogin(c, http.StatusOK, invalidCredentialsMsg)
		return
	}

	u, err := h.services.Authenticate(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// Same message for unknown email and wrong password.
			h.renderLogin(c, http.StatusOK, invalidCredentialsMsg)
			return
		}
		h.serverError(c, "login_failed", err, "email", input.Email)
		return
	}

	if err := h.startSession(c, u.ID); err != nil {
		h.serverError(c, "session_issue_failed", err, "user_id", u.ID)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// logout clears the session and goes home. Harmless when already anonymous.
func (h *Handler) logout(c *gin.Context) {
	endSession(c)
	c.Redirect(http.StatusFound, "/")
}
