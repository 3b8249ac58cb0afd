package routes

import (
	"net/http"
	"strings"
	"time"

	"playlistpulse/config"
	"playlistpulse/handlers"
	"playlistpulse/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// allowedMethods drives both routing 405s and the Allow header.
var allowedMethods = map[string][]string{
	"/api/posts":             {"GET", "POST", "DELETE"},
	"/api/post-interactions": {"GET", "POST"},
}

func SetupRouter(cfg *config.Config, h *handlers.Handlers) *gin.Engine {
	router := gin.Default()
	router.HandleMethodNotAllowed = true

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := router.Group("/api")
	api.Use(middleware.RateLimitMiddleware(60, time.Minute))

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Playlist Pulse API is running",
			"time":    time.Now().Unix(),
		})
	})

	protected := api.Group("")
	protected.Use(middleware.SessionAuthMiddleware(cfg.SessionSecret))

	// Posts
	protected.GET("/posts", h.GetPosts)
	protected.POST("/posts", h.CreatePost)
	protected.DELETE("/posts", h.DeletePost)

	// Interactions
	protected.GET("/post-interactions", h.GetInteractions)
	protected.POST("/post-interactions", h.CreateInteraction)

	router.NoMethod(func(c *gin.Context) {
		if methods, ok := allowedMethods[c.Request.URL.Path]; ok {
			c.Header("Allow", strings.Join(methods, ", "))
			c.JSON(http.StatusMethodNotAllowed, gin.H{
				"error":   "Method not allowed",
				"allowed": methods,
			})
			return
		}
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Endpoint not found",
				"path":  c.Request.URL.Path,
			})
			return
		}
		c.Next()
	})

	return router
}
