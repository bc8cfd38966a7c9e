package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio/internal/app"
	"portfolio/internal/transport/http/flash"
)

type ContactHandler struct {
	contactService *app.ContactService
}

func NewContactHandler(contactService *app.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

func (h *ContactHandler) SendMessage(c *gin.Context) {
	err := h.contactService.Submit(app.ContactInput{
		Name:    c.PostForm("name"),
		Email:   c.PostForm("email"),
		Subject: c.PostForm("subject"),
		Message: c.PostForm("message"),
	})
	if err != nil {
		if errors.Is(err, app.ErrInvalidInput) {
			flash.Add(c, "error", "Please fill in all fields")
		} else {
			flash.Add(c, "error", "An error occurred while sending your message. Please try again.")
		}
		c.Redirect(http.StatusFound, "/contact")
		return
	}

	flash.Add(c, "success", "Your message has been sent successfully!")
	c.Redirect(http.StatusFound, "/contact")
}
