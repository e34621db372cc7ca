package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"safariq-api/internal/config"
	"safariq-api/internal/database"
	"safariq-api/internal/handlers"
	"safariq-api/internal/jobs"
	"safariq-api/internal/ratelimit"
	"safariq-api/internal/repository"
	"safariq-api/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	gin.SetMode(cfg.Server.Mode)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repository and services
	repo := repository.NewRepository(db)
	userService := services.NewUserService(repo, cfg.Rewards.SignupReferralSED)
	referralService := services.NewReferralService(repo)
	nftService := services.NewNFTService(repo)
	newsletterService := services.NewNewsletterService(repo)
	leaderboardService := services.NewLeaderboardService(userService)

	// Rate limiter: shared redis counters when configured, process memory otherwise
	var limiter ratelimit.Limiter
	var sweeper *jobs.RateLimitSweeper
	if cfg.RateLimit.Enabled {
		limiter, sweeper = newLimiter(cfg)
		if sweeper != nil {
			go sweeper.Start()
			defer sweeper.Stop()
		}
	}

	router := handlers.NewRouter(handlers.RouterDeps{
		Users:          userService,
		Referrals:      referralService,
		NFTs:           nftService,
		Newsletter:     newsletterService,
		Leaderboard:    leaderboardService,
		Limiter:        limiter,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		log.Printf("Health check: http://localhost:%s/health", cfg.Server.Port)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with 5 second timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Println("Server forced to shutdown:", err)
		return
	}

	log.Println("Server exited")
}

func newLimiter(cfg *config.Config) (ratelimit.Limiter, *jobs.RateLimitSweeper) {
	if cfg.Redis.Addr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		client, err := ratelimit.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err == nil {
			log.Printf("Rate limiting via redis at %s (%d requests per %v)", cfg.Redis.Addr, cfg.RateLimit.Requests, cfg.RateLimit.Window)
			return ratelimit.NewRedisLimiter(client, cfg.RateLimit.Requests, cfg.RateLimit.Window), nil
		}
		log.Printf("Warning: %v, falling back to in-memory rate limiting", err)
	}

	mem := ratelimit.NewMemoryLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	log.Printf("Rate limiting in memory (%d requests per %v)", cfg.RateLimit.Requests, cfg.RateLimit.Window)
	return mem, jobs.NewRateLimitSweeper(mem, cfg.RateLimit.Window)
}
