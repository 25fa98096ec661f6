package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"taskconnect/internal/auth"
	"taskconnect/internal/config"
	"taskconnect/internal/handler"
	"taskconnect/internal/repository"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	issuer *auth.TokenIssuer,
	users repository.UserRepository,
	authHandler *handler.AuthHandler,
	serviceHandler *handler.ServiceHandler,
	jobHandler *handler.JobHandler,
	messageHandler *handler.MessageHandler,
	uploadHandler *handler.UploadHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, echo.HeaderAccept},
		MaxAge:       3600,
	}))

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.Static("/uploads", cfg.UploadDir)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/services", serviceHandler.List)
	api.GET("/services/:id", serviceHandler.Get)

	// Secured routes: token validated and caller identity resolved on
	// every request.
	secured := api.Group("", auth.Middleware(issuer, users))

	secured.GET("/auth/me", authHandler.Me)

	secured.POST("/services", serviceHandler.Create)
	secured.PUT("/services/:id", serviceHandler.Update)
	secured.DELETE("/services/:id", serviceHandler.Delete)

	secured.POST("/jobs", jobHandler.Create)
	secured.GET("/jobs", jobHandler.List)
	secured.GET("/jobs/:id", jobHandler.Get)
	secured.PUT("/jobs/:id/status", jobHandler.UpdateStatus)
	secured.DELETE("/jobs/:id", jobHandler.Delete)

	secured.POST("/messages", messageHandler.Create)
	secured.GET("/messages/job/:job_id", messageHandler.ListByJob)
	secured.GET("/messages/:id", messageHandler.Get)
	secured.DELETE("/messages/:id", messageHandler.Delete)

	secured.POST("/uploads", uploadHandler.Upload)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
