package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	nethttp "net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"portfolio/internal/ai"
	"portfolio/internal/app"
	"portfolio/internal/bootstrap"
	"portfolio/internal/config"
	"portfolio/internal/mail"
	"portfolio/internal/model"
	"portfolio/internal/repository"
)

const testAdminPassword = "test-password"

type fakeCompleter struct {
	response string
	err      error
}

func (f *fakeCompleter) Complete(context.Context, ai.ChatConfig, []ai.ChatMessage) (string, error) {
	return f.response, f.err
}

type fakeSender struct {
	sent []mail.ContactMessage
	err  error
}

func (f *fakeSender) Send(msg mail.ContactMessage) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

type testEnv struct {
	router    *gin.Engine
	db        *gorm.DB
	uploadDir string
	completer *fakeCompleter
	sender    *fakeSender
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.BlogPost{}, &model.ChatMessage{}, &model.Note{}))
	t.Cleanup(func() {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
	})

	uploadDir := t.TempDir()
	completer := &fakeCompleter{response: "The owner works with Go and Python."}
	sender := &fakeSender{}

	cfg := &config.Config{
		App: config.AppConfig{
			Name:         "portfolio",
			Env:          "test",
			GinMode:      gin.TestMode,
			SecretKey:    "test-secret",
			UploadDir:    uploadDir,
			TemplatesDir: "../../../web/templates",
		},
		Admin: config.AdminConfig{
			Username:     "admin",
			PasswordHash: app.HashPassword(testAdminPassword),
			Realm:        "Login Required",
		},
		LLM: config.LLMConfig{
			Model:       "gpt-3.5-turbo",
			MaxTokens:   500,
			Temperature: 0.7,
		},
	}

	testApp := &bootstrap.App{
		Config:    cfg,
		Logger:    zap.NewNop(),
		DB:        db,
		Completer: completer,
		Sender:    sender,
		StartedAt: time.Now(),
	}

	return &testEnv{
		router:    NewRouter(testApp),
		db:        db,
		uploadDir: uploadDir,
		completer: completer,
		sender:    sender,
	}
}

func (e *testEnv) do(req *nethttp.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func multipartBody(t *testing.T, fieldFilename, title, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if fieldFilename != "" {
		part, err := writer.CreateFormFile("file", fieldFilename)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	if title != "" {
		require.NoError(t, writer.WriteField("title", title))
	}
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func TestStaticPages(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/", "/about", "/projects", "/contact", "/blog", "/notes", "/chatbot"} {
		rec := env.do(httptest.NewRequest(nethttp.MethodGet, path, nil))
		assert.Equal(t, nethttp.StatusOK, rec.Code, path)
	}
}

func TestViewMissingPostRenders404(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(httptest.NewRequest(nethttp.MethodGet, "/blog/999999", nil))
	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "404")
}

func TestUnknownRouteRenders404(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(httptest.NewRequest(nethttp.MethodGet, "/no-such-page", nil))
	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
}

func TestCreatePostAndList(t *testing.T) {
	env := newTestEnv(t)

	form := strings.NewReader("title=First+Post&content=Hello+world")
	req := httptest.NewRequest(nethttp.MethodPost, "/blog/new", form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := env.do(req)
	assert.Equal(t, nethttp.StatusFound, rec.Code)
	assert.Equal(t, "/blog", rec.Header().Get("Location"))

	rec = env.do(httptest.NewRequest(nethttp.MethodGet, "/blog", nil))
	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "First Post")
}

func TestDeletePostRequiresAuth(t *testing.T) {
	env := newTestEnv(t)
	repo := repository.NewBlogPostRepository(env.db)
	require.NoError(t, repo.Create(&model.BlogPost{Title: "keep", Content: "me"}))

	// No credentials.
	rec := env.do(httptest.NewRequest(nethttp.MethodPost, "/blog/delete/1", nil))
	assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Header().Get("WWW-Authenticate"), "Basic realm=")

	// Wrong password.
	req := httptest.NewRequest(nethttp.MethodPost, "/blog/delete/1", nil)
	req.SetBasicAuth("admin", "wrong")
	rec = env.do(req)
	assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	// Valid credentials.
	req = httptest.NewRequest(nethttp.MethodPost, "/blog/delete/1", nil)
	req.SetBasicAuth("admin", testAdminPassword)
	rec = env.do(req)
	assert.Equal(t, nethttp.StatusFound, rec.Code)

	count, err = repo.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestDeleteMissingPostRenders404(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(nethttp.MethodPost, "/blog/delete/424242", nil)
	req.SetBasicAuth("admin", testAdminPassword)
	rec := env.do(req)
	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
}

func TestChatAPI(t *testing.T) {
	env := newTestEnv(t)

	body := bytes.NewBufferString(`{"message": "What skills does the owner have?"}`)
	req := httptest.NewRequest(nethttp.MethodPost, "/api/chat", body)
	req.Header.Set("Content-Type", "application/json")
	rec := env.do(req)
	require.Equal(t, nethttp.StatusOK, rec.Code)

	var parsed struct {
		Response  string `json:"response"`
		Timestamp string `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parsed))
	assert.NotEmpty(t, parsed.Response)
	_, err := time.Parse(time.RFC3339, parsed.Timestamp)
	assert.NoError(t, err)

	count, err := repository.NewChatMessageRepository(env.db).Count()
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestChatAPIUpstreamFailure(t *testing.T) {
	env := newTestEnv(t)
	env.completer.err = errors.New("upstream down")

	body := bytes.NewBufferString(`{"message": "hello"}`)
	req := httptest.NewRequest(nethttp.MethodPost, "/api/chat", body)
	req.Header.Set("Content-Type", "application/json")
	rec := env.do(req)
	assert.Equal(t, nethttp.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")

	count, err := repository.NewChatMessageRepository(env.db).Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestChatAPIValidation(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(nethttp.MethodPost, "/api/chat", bytes.NewBufferString(`{"message": "  "}`))
	req.Header.Set("Content-Type", "application/json")
	rec := env.do(req)
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(nethttp.MethodPost, "/api/chat", bytes.NewBufferString("not json"))
	req.Header.Set("Content-Type", "application/json")
	rec = env.do(req)
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

func TestClearChatEmptiesHistory(t *testing.T) {
	env := newTestEnv(t)
	repo := repository.NewChatMessageRepository(env.db)
	require.NoError(t, repo.Create(&model.ChatMessage{UserMessage: "q", BotResponse: "a"}))

	rec := env.do(httptest.NewRequest(nethttp.MethodPost, "/clear_chat", nil))
	assert.Equal(t, nethttp.StatusOK, rec.Code)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Zero(t, count)

	rec = env.do(httptest.NewRequest(nethttp.MethodGet, "/chatbot", nil))
	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `class="exchange"`)
}

func TestUploadNote(t *testing.T) {
	env := newTestEnv(t)

	body, contentType := multipartBody(t, "lecture.pdf", "Week 1", "pdf content")
	req := httptest.NewRequest(nethttp.MethodPost, "/upload_note", body)
	req.Header.Set("Content-Type", contentType)
	rec := env.do(req)
	assert.Equal(t, nethttp.StatusFound, rec.Code)
	assert.Equal(t, "/notes", rec.Header().Get("Location"))

	notes, err := repository.NewNoteRepository(env.db).ListNewestFirst()
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "Week 1", notes[0].Title)
	assert.EqualValues(t, len("pdf content"), notes[0].FileSize)

	entries, err := os.ReadDir(env.uploadDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestUploadNoteRejectsExtension(t *testing.T) {
	env := newTestEnv(t)

	body, contentType := multipartBody(t, "evil.exe", "", "binary")
	req := httptest.NewRequest(nethttp.MethodPost, "/upload_note", body)
	req.Header.Set("Content-Type", contentType)
	rec := env.do(req)
	assert.Equal(t, nethttp.StatusFound, rec.Code)

	count, err := repository.NewNoteRepository(env.db).Count()
	require.NoError(t, err)
	assert.Zero(t, count)

	entries, err := os.ReadDir(env.uploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUploadNoteMissingFile(t *testing.T) {
	env := newTestEnv(t)

	body, contentType := multipartBody(t, "", "only a title", "")
	req := httptest.NewRequest(nethttp.MethodPost, "/upload_note", body)
	req.Header.Set("Content-Type", contentType)
	rec := env.do(req)
	assert.Equal(t, nethttp.StatusFound, rec.Code)

	count, err := repository.NewNoteRepository(env.db).Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestDownloadNote(t *testing.T) {
	env := newTestEnv(t)

	body, contentType := multipartBody(t, "photo.jpg", "", "jpeg bytes")
	req := httptest.NewRequest(nethttp.MethodPost, "/upload_note", body)
	req.Header.Set("Content-Type", contentType)
	env.do(req)

	rec := env.do(httptest.NewRequest(nethttp.MethodGet, "/download_note/1", nil))
	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.Equal(t, "jpeg bytes", rec.Body.String())
}

func TestDownloadMissingNoteRenders404(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(httptest.NewRequest(nethttp.MethodGet, "/download_note/999999", nil))
	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
}

func TestSendMessage(t *testing.T) {
	env := newTestEnv(t)

	form := strings.NewReader("name=Ada&email=ada%40example.com&subject=Hi&message=Hello")
	req := httptest.NewRequest(nethttp.MethodPost, "/send_message", form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := env.do(req)
	assert.Equal(t, nethttp.StatusFound, rec.Code)
	assert.Equal(t, "/contact", rec.Header().Get("Location"))
	require.Len(t, env.sender.sent, 1)
	assert.Equal(t, "Ada", env.sender.sent[0].Name)
}

func TestSendMessageMissingFields(t *testing.T) {
	env := newTestEnv(t)

	form := strings.NewReader("name=Ada&email=&subject=Hi&message=")
	req := httptest.NewRequest(nethttp.MethodPost, "/send_message", form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := env.do(req)
	assert.Equal(t, nethttp.StatusFound, rec.Code)
	assert.Empty(t, env.sender.sent)
}

func TestHealthz(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(httptest.NewRequest(nethttp.MethodGet, "/healthz", nil))
	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"database"`)
}
