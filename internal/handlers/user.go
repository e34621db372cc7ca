package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"safariq-api/internal/services"
	"safariq-api/internal/wallet"
)

// UserHandler handles user-related endpoints
type UserHandler struct {
	userService     *services.UserService
	referralService *services.ReferralService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *services.UserService, referralService *services.ReferralService) *UserHandler {
	return &UserHandler{
		userService:     userService,
		referralService: referralService,
	}
}

type registerRequest struct {
	Email         string  `json:"email" binding:"required,email"`
	Name          string  `json:"name" binding:"required"`
	Country       string  `json:"country" binding:"required"`
	WalletAddress *string `json:"walletAddress"`
	ReferredBy    string  `json:"referredBy"`
}

// Register creates a user. Registration doubles as login for the SPA.
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid input data", err)
		return
	}

	input := services.RegisterInput{
		Email:      req.Email,
		Name:       strings.TrimSpace(req.Name),
		Country:    strings.TrimSpace(req.Country),
		ReferredBy: strings.TrimSpace(req.ReferredBy),
	}
	if input.Name == "" || input.Country == "" {
		respondError(c, http.StatusBadRequest, "Invalid input data", errors.New("name and country must not be blank"))
		return
	}

	if req.WalletAddress != nil {
		if addr := strings.TrimSpace(*req.WalletAddress); addr != "" {
			if err := wallet.Validate(addr); err != nil {
				respondError(c, http.StatusBadRequest, "Invalid input data", err)
				return
			}
			input.WalletAddress = &addr
		}
	}

	user, err := h.userService.CreateUser(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateEmail):
			respondError(c, http.StatusBadRequest, "User already exists with this email", err)
		case errors.Is(err, services.ErrInvalidReferralCode):
			respondError(c, http.StatusBadRequest, "Invalid referral code", err)
		default:
			respondServiceError(c, "Invalid user data", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":    user,
		"message": "User registered successfully",
	})
}

// GetUser returns a user by id
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, "User not found", nil)
			return
		}
		respondServiceError(c, "Error fetching user", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// GetUserByCode resolves a referral code to its owner
func (h *UserHandler) GetUserByCode(c *gin.Context) {
	user, err := h.userService.GetUserByReferralCode(c.Request.Context(), strings.ToUpper(c.Param("code")))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, "User not found", nil)
			return
		}
		respondServiceError(c, "Error fetching user", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// GetReferrals returns the referrals made by a user
func (h *UserHandler) GetReferrals(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.Param("id")

	if _, err := h.userService.GetUser(ctx, userID); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, "User not found", nil)
			return
		}
		respondServiceError(c, "Error fetching referrals", err)
		return
	}

	referrals, err := h.referralService.GetReferralsByUser(ctx, userID)
	if err != nil {
		respondServiceError(c, "Error fetching referrals", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"referrals": referrals,
		"count":     len(referrals),
	})
}

// GetStats returns a user's invite counters, rank and progress to the next rank
func (h *UserHandler) GetStats(c *gin.Context) {
	stats, err := h.userService.GetReferralStats(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, "User not found", nil)
			return
		}
		respondServiceError(c, "Error fetching stats", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
