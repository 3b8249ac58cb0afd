package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"playlistpulse/config"
	"playlistpulse/database"
	"playlistpulse/handlers"
	"playlistpulse/repository"
	"playlistpulse/routes"
	"playlistpulse/service"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("Starting Playlist Pulse API...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration:", err)
	}
	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET must be set")
	}

	// ===== CONNECT TO MONGODB WITH RETRY =====
	var dbErr error
	for i := 1; i <= 3; i++ {
		if err := database.ConnectMongo(cfg.MongoURI, cfg.MongoDB); err != nil {
			dbErr = err
			log.Printf("MongoDB connection attempt %d failed: %v", i, err)
			time.Sleep(2 * time.Second)
			continue
		}
		dbErr = nil
		break
	}
	if dbErr != nil {
		log.Fatal("Failed to connect to MongoDB:", dbErr)
	}
	defer database.DisconnectMongo()

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	postRepo := repository.NewPostRepository(database.Posts)
	interactionRepo := repository.NewInteractionRepository(database.Interactions)

	postService := service.NewPostService(postRepo)
	interactionService := service.NewInteractionService(postRepo, interactionRepo)

	router := routes.SetupRouter(cfg, handlers.New(postService, interactionService))

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "Playlist Pulse API Running",
			"service": "healthy",
		})
	})
	router.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// ===== COUNTER RECONCILER =====
	reconcileCtx, stopReconciler := context.WithCancel(context.Background())
	defer stopReconciler()
	if cfg.ReconcileInterval > 0 {
		reconciler := service.NewReconciler(postRepo, interactionRepo)
		go reconciler.Run(reconcileCtx, cfg.ReconcileInterval)
		log.Printf("Counter reconciler running every %s", cfg.ReconcileInterval)
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server running on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error:", err)
		}
	}()

	// ===== GRACEFUL SHUTDOWN =====
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	stopReconciler()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Println("Forced shutdown:", err)
	}

	log.Println("Server stopped gracefully")
}
