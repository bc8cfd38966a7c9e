package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio/internal/transport/http/flash"
)

// PageHandler serves the static portfolio pages.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"Flashes": flash.Take(c)})
}

func (h *PageHandler) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", gin.H{"Flashes": flash.Take(c)})
}

func (h *PageHandler) Projects(c *gin.Context) {
	c.HTML(http.StatusOK, "projects.html", gin.H{"Flashes": flash.Take(c)})
}

func (h *PageHandler) Contact(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{"Flashes": flash.Take(c)})
}
