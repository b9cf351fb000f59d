package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"go-matching-service/config"
	"go-matching-service/internal/delivery/http/middleware"
	"go-matching-service/internal/delivery/http/response"
	"go-matching-service/internal/domain"
	"go-matching-service/pkg/redis"
)

type RouterDeps struct {
	MatchUC domain.MatchUsecase
	Config  *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware([]string{deps.Config.FrontendURL})) // CORS must be first
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.DefaultRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", gin.H{
			"embedding_model": deps.Config.EmbeddingModel,
			"redis":           redis.IsAvailable(),
		})
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Scoring routes carry an extra, stricter rate limit
	scoring := v1.Group("")
	scoring.Use(middleware.RateLimitMiddleware(middleware.MatchRateLimitConfig(deps.Config.RateLimitMatchThreshold, window)))

	NewMatchHandler(v1, scoring, deps.MatchUC)

	return r
}
