// Package app wires configuration, storage, the remote store and the HTTP
// surface together.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"adjaoko/app/clients"
	"adjaoko/app/handlers"
	"adjaoko/app/services"
	"adjaoko/app/session"
	"adjaoko/app/storage"
)

// App represents the application.
type App struct {
	Config  *Config
	Store   storage.Store
	Cache   *storage.Cache
	Remote  *services.RemoteStore
	Session *session.Holder
	Router  *gin.Engine
}

// Bootstrap initializes the application.
func Bootstrap(logger *zap.Logger) (*App, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	store, err := storage.NewStore(cfg.CacheBackend, cfg.CachePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	cache := storage.NewCache(store, logger)

	httpClient := clients.NewHTTPClient(cfg.BackendURL, cfg.AnonKey)
	remote := services.NewRemoteStore(httpClient, logger)

	holder := session.NewHolder(logger)
	remote.OnAuthChange(holder.HandleAuthEvent)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	holder.Initialize(ctx, remote)

	priceService := services.NewPriceService(cache, logger)
	listingService := services.NewListingService(remote, cache, holder, logger)
	profileService := services.NewProfileService(remote, holder, logger)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.Use(handlers.RequestID())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	priceHandler := handlers.NewPriceHandler(priceService)
	listingHandler := handlers.NewListingHandler(listingService)
	profileHandler := handlers.NewProfileHandler(profileService)
	authHandler := handlers.NewAuthHandler(remote, holder)

	SetupRoutes(router, priceHandler, listingHandler, profileHandler, authHandler)

	return &App{
		Config:  cfg,
		Store:   store,
		Cache:   cache,
		Remote:  remote,
		Session: holder,
		Router:  router,
	}, nil
}

// Close releases the app's resources.
func (a *App) Close() error {
	return a.Store.Close()
}

// SetupRoutes configures HTTP routes.
func SetupRoutes(router *gin.Engine, priceHandler *handlers.PriceHandler, listingHandler *handlers.ListingHandler, profileHandler *handlers.ProfileHandler, authHandler *handlers.AuthHandler) {
	healthHandler := handlers.NewHealthHandler()
	router.GET("/health", healthHandler.Health)

	v1 := router.Group("/v1")
	{
		// Price dashboard
		v1.GET("/prices", priceHandler.GetPrices)
		v1.POST("/prices/refresh", priceHandler.Refresh)

		// Listings
		v1.GET("/listings", listingHandler.List)
		v1.POST("/listings", listingHandler.Create)

		// Profile
		v1.GET("/profile", profileHandler.Get)
		v1.PUT("/profile", profileHandler.Save)

		// Auth
		v1.POST("/auth/sign-up", authHandler.SignUp)
		v1.POST("/auth/sign-in", authHandler.SignIn)
		v1.POST("/auth/sign-out", authHandler.SignOut)
		v1.POST("/auth/forgot-password", authHandler.ForgotPassword)
		v1.GET("/auth/session", authHandler.GetSession)
	}
}
