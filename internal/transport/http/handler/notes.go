package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio/internal/app"
	"portfolio/internal/transport/http/flash"
)

type NoteHandler struct {
	noteService *app.NoteService
}

func NewNoteHandler(noteService *app.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

func (h *NoteHandler) List(c *gin.Context) {
	notes, err := h.noteService.ListNotes()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "500.html", nil)
		return
	}
	c.HTML(http.StatusOK, "notes.html", gin.H{
		"Notes":   notes,
		"Flashes": flash.Take(c),
	})
}

func (h *NoteHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		flash.Add(c, "error", "No file selected")
		c.Redirect(http.StatusFound, "/notes")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		flash.Add(c, "error", "An error occurred while uploading the file")
		c.Redirect(http.StatusFound, "/notes")
		return
	}
	defer file.Close()

	_, err = h.noteService.Upload(app.UploadNoteInput{
		OriginalName: fileHeader.Filename,
		Title:        c.PostForm("title"),
		Content:      file,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrNoFile):
			flash.Add(c, "error", "No file selected")
		case errors.Is(err, app.ErrFileType):
			flash.Add(c, "error", "Invalid file type. Only PDF and images are allowed.")
		default:
			flash.Add(c, "error", "An error occurred while uploading the file")
		}
		c.Redirect(http.StatusFound, "/notes")
		return
	}

	flash.Add(c, "success", "File uploaded successfully!")
	c.Redirect(http.StatusFound, "/notes")
}

func (h *NoteHandler) Download(c *gin.Context) {
	id, parseErr := parseID(c.Param("id"))
	if parseErr != nil {
		c.HTML(http.StatusNotFound, "404.html", nil)
		return
	}

	note, path, err := h.noteService.Resolve(id)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrNoteNotFound):
			c.HTML(http.StatusNotFound, "404.html", nil)
		case errors.Is(err, app.ErrFileMissing):
			flash.Add(c, "error", "An error occurred while downloading the file")
			c.Redirect(http.StatusFound, "/notes")
		default:
			c.HTML(http.StatusInternalServerError, "500.html", nil)
		}
		return
	}

	c.FileAttachment(path, note.Filename)
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
