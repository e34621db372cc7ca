package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"safariq-api/internal/services"
)

type ReferralHandler struct {
	referralService *services.ReferralService
}

func NewReferralHandler(referralService *services.ReferralService) *ReferralHandler {
	return &ReferralHandler{referralService: referralService}
}

type createReferralRequest struct {
	ReferrerID string `json:"referrerId" binding:"required"`
	RefereeID  string `json:"refereeId" binding:"required"`
	SedReward  *int   `json:"sedReward" binding:"required,min=0"`
}

// CreateReferral records a referral and credits the referrer in one step
func (h *ReferralHandler) CreateReferral(c *gin.Context) {
	var req createReferralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Error creating referral", err)
		return
	}

	referral, _, err := h.referralService.RecordReferralAndCredit(
		c.Request.Context(), req.ReferrerID, req.RefereeID, *req.SedReward,
	)
	if err != nil {
		// An unknown referrer is a bad request body, not a missing resource.
		if errors.Is(err, services.ErrUserNotFound) {
			respondError(c, http.StatusBadRequest, "Error creating referral", err)
			return
		}
		respondServiceError(c, "Error creating referral", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"referral": referral,
		"message":  "Referral created successfully",
	})
}
