package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	redisclient "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/prospectio/outreach-system/internal/api/handler"
	"github.com/prospectio/outreach-system/internal/api/middleware"
	"github.com/prospectio/outreach-system/internal/core/service"
	"github.com/prospectio/outreach-system/internal/infrastructure/apify"
	"github.com/prospectio/outreach-system/internal/infrastructure/config"
	mongorepo "github.com/prospectio/outreach-system/internal/infrastructure/db/mongo"
	redisdb "github.com/prospectio/outreach-system/internal/infrastructure/db/redis"
	"github.com/prospectio/outreach-system/internal/infrastructure/github"
)

// NewRouter builds the Echo instance with all routes registered and the
// full dependency graph wired.
func NewRouter(cfg *config.Config, db *mongodriver.Database, rdb *redisclient.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("outreach"))

	// --- Dependencies ---
	userRepo := mongorepo.NewUserRepository(db)
	campaignRepo := mongorepo.NewCampaignRepository(db)
	denylist := redisdb.NewTokenDenylist(rdb)

	authService := service.NewAuthService(userRepo, denylist, cfg.JWTSecret, cfg.TokenTTL, log)
	campaignService := service.NewCampaignService(campaignRepo, log)

	linkedinClient := apify.NewClient(cfg.Apify.APIToken, cfg.Apify.SyncTimeout, log,
		actorIDOption(cfg.Apify.ActorID)...)
	githubClient := github.NewClient(cfg.Github.Token, log)
	searchService := service.NewSearchService(campaignRepo, linkedinClient, githubClient, log)

	authHandler := handler.NewAuthHandler(authService)
	campaignHandler := handler.NewCampaignHandler(campaignService)
	searchHandler := handler.NewSearchHandler(searchService)
	authMiddleware := middleware.Auth(authService)

	// --- User routes ---
	users := e.Group("/api/users")
	users.POST("/register", authHandler.Register)
	users.POST("/login", authHandler.Login)
	users.POST("/logout", authHandler.Logout, authMiddleware)
	users.GET("/profile", authHandler.Profile, authMiddleware)
	users.PUT("/profile", authHandler.UpdateProfile, authMiddleware)

	// --- Campaign routes ---
	campaigns := e.Group("/api/campaigns", authMiddleware)
	campaigns.POST("", campaignHandler.Create)
	campaigns.GET("", campaignHandler.List)
	campaigns.GET("/:id", campaignHandler.Get)
	campaigns.PUT("/:id", campaignHandler.Update)
	campaigns.DELETE("/:id", campaignHandler.Delete)

	// --- Search routes ---
	e.POST("/api/linkedin/search", searchHandler.SearchLinkedin, authMiddleware)
	e.POST("/api/linkedin/update-campaign", searchHandler.UpdateCampaignResults, authMiddleware)
	e.POST("/api/github/search", searchHandler.SearchGithub, authMiddleware)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}

// actorIDOption lets configuration override the default scraping actor.
func actorIDOption(actorID string) []apify.Option {
	if actorID == "" {
		return nil
	}
	return []apify.Option{apify.WithActorID(actorID)}
}
