package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"legalens/internal/ai"
	appsvc "legalens/internal/app"
	"legalens/internal/bootstrap"
	"legalens/internal/cache"
	"legalens/internal/platform/rabbitmq"
	"legalens/internal/repository"
	"legalens/internal/transport/http/handler"
	"legalens/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	userRepo := repository.NewUserRepository(app.MySQL)
	documentRepo := repository.NewDocumentRepository(app.MySQL)
	analysisRepo := repository.NewAnalysisRepository(app.MySQL)
	riskRepo := repository.NewRiskRepository(app.MySQL)
	sessionRepo := repository.NewSessionRepository(app.MySQL)
	messageRepo := repository.NewMessageRepository(app.MySQL)

	llmClient := ai.NewOpenAICompatibleClient()
	llmCfg := app.Config.LLM
	primaryLLM := ai.ChatConfig{BaseURL: llmCfg.BaseURL, APIKey: llmCfg.APIKey, Model: llmCfg.Model}
	fastLLM := ai.ChatConfig{BaseURL: llmCfg.BaseURL, APIKey: llmCfg.APIKey, Model: llmCfg.FastModel}
	advancedLLM := ai.ChatConfig{BaseURL: llmCfg.BaseURL, APIKey: llmCfg.APIKey, Model: llmCfg.AdvancedModel}

	publisher := rabbitmq.NewMessagePublisher(app.MQConn, app.Config.RabbitMQ.MessagePersistQueue)
	historyCache := cache.NewHistoryCache(
		app.Redis,
		time.Duration(app.Config.Redis.HistoryTTLSeconds)*time.Second,
		time.Duration(app.Config.Redis.HistoryDirtyTTLSeconds)*time.Second,
	)

	authService := appsvc.NewAuthService(
		userRepo,
		app.Config.Auth.JWTSecret,
		time.Duration(app.Config.Auth.JWTExpireMinute)*time.Minute,
	)
	documentService := appsvc.NewDocumentService(documentRepo)
	analysisService := appsvc.NewAnalysisService(analysisRepo, llmClient, primaryLLM, fastLLM)
	riskService := appsvc.NewRiskService(riskRepo, llmClient, advancedLLM)
	chatService := appsvc.NewChatService(
		sessionRepo,
		messageRepo,
		publisher,
		historyCache,
		llmClient,
		fastLLM,
		llmCfg.MaxContextMessage,
	)
	exportService := appsvc.NewExportService(llmClient, fastLLM)

	healthHandler := handler.NewHealthHandler(app)
	authHandler := handler.NewAuthHandler(authService)
	documentHandler := handler.NewDocumentHandler(documentService, int64(app.Config.Upload.MaxSizeMB)<<20)
	analysisHandler := handler.NewAnalysisHandler(analysisService)
	riskHandler := handler.NewRiskHandler(riskService)
	chatHandler := handler.NewChatHandler(chatService)
	exportHandler := handler.NewExportHandler(exportService)

	router.GET("/healthz", healthHandler.Check)

	api := router.Group("/api")
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/documents/analyze", analysisHandler.Analyze)
	api.POST("/chat-document", chatHandler.ChatDocument)
	api.POST("/export", exportHandler.Generate)

	authed := api.Group("")
	authed.Use(middleware.AuthJWT(app.Config.Auth.JWTSecret))
	authed.GET("/auth/me", authHandler.Me)
	authed.GET("/documents", documentHandler.List)
	authed.POST("/documents", documentHandler.Create)
	authed.POST("/documents/upload", documentHandler.Upload)
	authed.POST("/simplify", analysisHandler.Simplify)
	authed.POST("/risks", riskHandler.Analyze)
	authed.POST("/chat", chatHandler.Chat)
	authed.GET("/chat/history", chatHandler.GetHistory)

	return router
}
