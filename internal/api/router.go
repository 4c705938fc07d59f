package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/anything2image/gallery-api/internal/api/handler"
	"github.com/anything2image/gallery-api/internal/api/middleware"
	"github.com/anything2image/gallery-api/internal/core/ports"
	"github.com/anything2image/gallery-api/internal/core/service"
	"github.com/anything2image/gallery-api/internal/infrastructure/config"
	mongodb "github.com/anything2image/gallery-api/internal/infrastructure/db/mongo"
	redisdb "github.com/anything2image/gallery-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, artifacts ports.ArtifactStore, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("gallery"))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.AllowedOrigin},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	// --- Dependencies ---
	accountRepo := mongodb.NewAccountRepository(db)
	galleryRepo := mongodb.NewGalleryRepository(db)
	sessionStore := redisdb.NewSessionStore(rdb)

	sessionService := service.NewSessionService(accountRepo, sessionStore, cfg.SessionSecret, cfg.SessionTTL, log)
	accountService := service.NewAccountService(accountRepo, sessionService, log)
	imageService := service.NewImageService(accountRepo, artifacts, log)
	galleryService := service.NewGalleryService(galleryRepo, log)

	userHandler := handler.NewUserHandler(accountService, imageService, cfg.SessionTTL)
	galleryHandler := handler.NewGalleryHandler(galleryService)
	sessionRequired := middleware.Session(sessionService)

	// --- Public routes ---
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"Hello": "World"})
	})

	user := e.Group("/user")
	user.GET("/status", userHandler.Status)
	user.POST("/register", userHandler.Register)
	user.POST("/login", userHandler.Login)
	user.GET("/logout", userHandler.Logout)

	// --- Session-gated routes ---
	user.POST("/save_image", userHandler.SaveImage, sessionRequired)
	user.GET("/s/:filename", userHandler.GetImage, sessionRequired)
	user.GET("/images", userHandler.ListImages, sessionRequired)
	user.POST("/save", galleryHandler.Save, sessionRequired)
	user.GET("/gallery/:user_id", galleryHandler.List, sessionRequired)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
