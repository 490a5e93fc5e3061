package handler

import (
	"net/http"

	"ratehub/internal/config"
	"ratehub/internal/http-api/middleware"
	"ratehub/internal/http-api/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth      *AuthHandler
	User      *UserHandler
	Work      *WorkHandler
	Dimension *DimensionHandler
	Rating    *RatingHandler
	Stats     *StatsHandler
	File      *FileHandler
	Front     *FrontHandler
}

// NewRouter assembles the gin engine. Admin routes sit behind the JWT
// middleware, the front routes behind the per-IP rate limiter, and file
// reads are public so preview links work without a token.
func NewRouter(cfg *config.Config, authService service.AuthService, h Handlers) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	if cfg.PrometheusEnabled {
		r.Use(middleware.Metrics())
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	h.File.RegisterPublicRoutes(api)

	front := api.Group("/front")
	front.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
	h.Front.RegisterRoutes(front)

	admin := api.Group("/admin")
	h.Auth.RegisterRoutes(admin)

	protected := admin.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	{
		h.User.RegisterRoutes(protected)
		h.Work.RegisterRoutes(protected)
		h.Dimension.RegisterRoutes(protected)
		h.Rating.RegisterRoutes(protected)
		h.Stats.RegisterRoutes(protected)
		h.File.RegisterAdminRoutes(protected)
	}

	return r
}
