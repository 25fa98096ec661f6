package main

import (
	"net/http"

	"taskconnect/docs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"taskconnect/internal/auth"
	"taskconnect/internal/cache"
	"taskconnect/internal/config"
	"taskconnect/internal/db"
	"taskconnect/internal/handler"
	"taskconnect/internal/logger"
	"taskconnect/internal/model"
	"taskconnect/internal/repository"
	"taskconnect/internal/router"
	"taskconnect/internal/service"
	"taskconnect/internal/upload"
)

// @title TaskConnect API
// @version 1.0
// @description Marketplace backend: users list services, clients create jobs against them and exchange job-scoped messages.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token.
func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	if cfg.InsecureSecret() {
		log.Warn().Msg("JWT_SECRET is the development placeholder; set a real secret in production")
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Service{},
		&model.Job{},
		&model.Message{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	uploadStore, err := upload.NewStore(cfg.UploadDir, cfg.UploadMaxBytes)
	if err != nil {
		log.Fatal().Err(err).Msg("upload store init")
	}

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	serviceRepo := repository.NewServiceRepository(gormDB)
	jobRepo := repository.NewJobRepository(gormDB)
	messageRepo := repository.NewMessageRepository(gormDB)

	// Token issuer: signing key and TTL fixed here, passed explicitly
	issuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)

	// Services
	authService := service.NewAuthService(userRepo, issuer)
	catalogService := service.NewCatalogService(serviceRepo, cacheClient)
	jobService := service.NewJobService(jobRepo, serviceRepo)
	messageService := service.NewMessageService(messageRepo, jobRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	serviceHandler := handler.NewServiceHandler(catalogService)
	jobHandler := handler.NewJobHandler(jobService)
	messageHandler := handler.NewMessageHandler(messageService)
	uploadHandler := handler.NewUploadHandler(uploadStore)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())

	router.Register(
		e,
		cfg,
		issuer,
		userRepo,
		authHandler,
		serviceHandler,
		jobHandler,
		messageHandler,
		uploadHandler,
	)

	log.Info().Str("port", cfg.ServerPort).Dur("token_ttl", issuer.TTL()).Msg("starting server")

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server start")
	}
}
