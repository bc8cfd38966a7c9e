package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio/internal/app"
	"portfolio/internal/transport/http/flash"
)

type BlogHandler struct {
	blogService *app.BlogService
}

func NewBlogHandler(blogService *app.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

func (h *BlogHandler) List(c *gin.Context) {
	posts, err := h.blogService.ListPosts()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "500.html", nil)
		return
	}
	c.HTML(http.StatusOK, "blog.html", gin.H{
		"Posts":   posts,
		"Flashes": flash.Take(c),
	})
}

func (h *BlogHandler) NewForm(c *gin.Context) {
	c.HTML(http.StatusOK, "new_post.html", gin.H{"Flashes": flash.Take(c)})
}

func (h *BlogHandler) Create(c *gin.Context) {
	_, err := h.blogService.CreatePost(app.CreatePostInput{
		Title:   c.PostForm("title"),
		Content: c.PostForm("content"),
	})
	if err != nil {
		if errors.Is(err, app.ErrInvalidInput) {
			flash.Add(c, "error", "Title and content are required!")
			c.Redirect(http.StatusFound, "/blog/new")
			return
		}
		c.HTML(http.StatusInternalServerError, "500.html", nil)
		return
	}

	flash.Add(c, "success", "Blog post created successfully!")
	c.Redirect(http.StatusFound, "/blog")
}

func (h *BlogHandler) View(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.HTML(http.StatusNotFound, "404.html", nil)
		return
	}

	post, err := h.blogService.GetPost(uint(id))
	if err != nil {
		if errors.Is(err, app.ErrPostNotFound) {
			c.HTML(http.StatusNotFound, "404.html", nil)
			return
		}
		c.HTML(http.StatusInternalServerError, "500.html", nil)
		return
	}

	c.HTML(http.StatusOK, "view_post.html", gin.H{
		"Post":    post,
		"Flashes": flash.Take(c),
	})
}

func (h *BlogHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.HTML(http.StatusNotFound, "404.html", nil)
		return
	}

	if err := h.blogService.DeletePost(uint(id)); err != nil {
		if errors.Is(err, app.ErrPostNotFound) {
			c.HTML(http.StatusNotFound, "404.html", nil)
			return
		}
		flash.Add(c, "error", "Error deleting post!")
		c.Redirect(http.StatusFound, "/blog")
		return
	}

	flash.Add(c, "success", "Post deleted successfully!")
	c.Redirect(http.StatusFound, "/blog")
}
