package routes

import (
	"net/http"
	"time"

	"github.com/sumpierrezf/star-wars-api-with-token/controllers"
	"github.com/sumpierrezf/star-wars-api-with-token/middleware"
	"github.com/sumpierrezf/star-wars-api-with-token/services"
	"github.com/sumpierrezf/star-wars-api-with-token/store"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Deps are the handles the router wires into controllers. Redis is optional.
type Deps struct {
	Store              *store.Store
	Logger             *zap.Logger
	Redis              *redis.Client
	RateLimitPerMinute int
	AllowedOrigins     []string
}

// SetupRouter builds the gin engine and registers every route.
func SetupRouter(deps Deps) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	r.Use(middleware.RecoveryMiddleware(logger))
	r.Use(middleware.Metrics())
	r.Use(cors.New(corsConfig(deps.AllowedOrigins)))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Recurso no encontrado"})
	})

	userService := services.NewUserService(deps.Store, logger)
	favoriteService := services.NewFavoriteService(deps.Store, logger)

	userController := controllers.NewUserController(userService, logger)
	catalogController := controllers.NewCatalogController(deps.Store, logger)
	favoriteController := controllers.NewFavoriteController(favoriteService, deps.Store, logger)

	writeLimit := middleware.RateLimit(deps.Redis, deps.RateLimitPerMinute, logger)

	userGroup := r.Group("/user")
	{
		userGroup.GET("", userController.List)
		userGroup.GET("/:id", userController.Get)
		userGroup.POST("", writeLimit, userController.Create)
	}

	r.GET("/characters", catalogController.Characters)
	r.GET("/planets", catalogController.Planets)
	r.GET("/vehicles", catalogController.Vehicles)

	SetupFavoriteRoutes(r, favoriteController, writeLimit)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
