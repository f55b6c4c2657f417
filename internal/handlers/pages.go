package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) about(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", h.viewData(c, gin.H{}))
}

func (h *Handler) contact(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", h.viewData(c, gin.H{}))
}
