package http

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"portfolio/internal/ai"
	appsvc "portfolio/internal/app"
	"portfolio/internal/bootstrap"
	"portfolio/internal/cache"
	"portfolio/internal/config"
	"portfolio/internal/repository"
	"portfolio/internal/transport/http/handler"
	"portfolio/internal/transport/http/middleware"
)

// maxUploadBytes caps request bodies before they reach the upload handler.
const maxUploadBytes = 16 << 20

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, _ interface{}) {
		c.HTML(http.StatusInternalServerError, "500.html", nil)
	}))

	store := cookie.NewStore([]byte(app.Config.App.SecretKey))
	router.Use(sessions.Sessions("portfolio_session", store))

	router.MaxMultipartMemory = maxUploadBytes
	router.Use(limitBody(maxUploadBytes))

	router.LoadHTMLGlob(filepath.Join(app.Config.App.TemplatesDir, "*.html"))

	postRepo := repository.NewBlogPostRepository(app.DB)
	messageRepo := repository.NewChatMessageRepository(app.DB)
	noteRepo := repository.NewNoteRepository(app.DB)

	var historyCache appsvc.HistoryCache
	if app.Redis != nil {
		historyCache = cache.NewChatHistoryCache(
			app.Redis,
			time.Duration(app.Config.Redis.HistoryTTLSeconds)*time.Second,
		)
	}

	authService := appsvc.NewAuthService(app.Config.Admin.Username, app.Config.Admin.PasswordHash)
	blogService := appsvc.NewBlogService(postRepo)
	chatService := appsvc.NewChatService(messageRepo, app.Completer, historyCache, llmConfig(app.Config), app.Logger)
	noteService := appsvc.NewNoteService(noteRepo, app.Config.App.UploadDir, app.Logger)
	contactService := appsvc.NewContactService(app.Sender, app.Logger)

	pageHandler := handler.NewPageHandler()
	blogHandler := handler.NewBlogHandler(blogService)
	chatHandler := handler.NewChatHandler(chatService)
	noteHandler := handler.NewNoteHandler(noteService)
	contactHandler := handler.NewContactHandler(contactService)
	healthHandler := handler.NewHealthHandler(app)

	router.GET("/", pageHandler.Home)
	router.GET("/about", pageHandler.About)
	router.GET("/projects", pageHandler.Projects)
	router.GET("/contact", pageHandler.Contact)
	router.GET("/healthz", healthHandler.Check)

	router.GET("/blog", blogHandler.List)
	router.GET("/blog/new", blogHandler.NewForm)
	router.POST("/blog/new", blogHandler.Create)
	router.GET("/blog/:id", blogHandler.View)
	router.POST("/blog/delete/:id",
		middleware.AdminBasicAuth(authService, app.Config.Admin.Realm),
		blogHandler.Delete,
	)

	router.GET("/chatbot", chatHandler.Page)
	router.POST("/api/chat", chatHandler.Ask)
	router.POST("/clear_chat", chatHandler.Clear)

	router.GET("/notes", noteHandler.List)
	router.POST("/upload_note", noteHandler.Upload)
	router.GET("/download_note/:id", noteHandler.Download)

	router.POST("/send_message", contactHandler.SendMessage)

	router.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "404.html", nil)
	})

	return router
}

func limitBody(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}

func llmConfig(cfg *config.Config) ai.ChatConfig {
	return ai.ChatConfig{
		BaseURL:     cfg.LLM.BaseURL,
		APIKey:      cfg.LLM.APIKey,
		Model:       cfg.LLM.Model,
		MaxTokens:   cfg.LLM.MaxTokens,
		Temperature: cfg.LLM.Temperature,
	}
}
