package handlers

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"safariq-api/internal/ratelimit"
	"safariq-api/internal/services"
)

// RouterDeps are the services and middleware settings the API is built from
type RouterDeps struct {
	Users          *services.UserService
	Referrals      *services.ReferralService
	NFTs           *services.NFTService
	Newsletter     *services.NewsletterService
	Leaderboard    *services.LeaderboardService
	Limiter        ratelimit.Limiter // nil disables rate limiting
	AllowedOrigins []string
}

// NewRouter wires every route onto a gin engine
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     deps.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	userHandler := NewUserHandler(deps.Users, deps.Referrals)
	leaderboardHandler := NewLeaderboardHandler(deps.Leaderboard)
	nftHandler := NewNFTHandler(deps.NFTs)
	newsletterHandler := NewNewsletterHandler(deps.Newsletter)
	referralHandler := NewReferralHandler(deps.Referrals)

	api := router.Group("/api")
	if deps.Limiter != nil {
		api.Use(ratelimit.Middleware(deps.Limiter))
	}
	{
		api.POST("/users/register", userHandler.Register)
		api.GET("/users/code/:code", userHandler.GetUserByCode)
		api.GET("/users/:id", userHandler.GetUser)
		api.GET("/users/:id/referrals", userHandler.GetReferrals)
		api.GET("/users/:id/stats", userHandler.GetStats)

		api.GET("/leaderboard", leaderboardHandler.GetLeaderboard)

		api.POST("/nfts/mint", nftHandler.Mint)
		api.POST("/nfts/mint/next", nftHandler.MintNext)
		api.GET("/nfts/owner/:ownerId", nftHandler.GetByOwner)
		api.GET("/nfts/stats", nftHandler.GetStats)

		api.POST("/newsletter/subscribe", newsletterHandler.Subscribe)

		api.POST("/referrals", referralHandler.CreateReferral)
	}

	return router
}
