package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"safariq-api/internal/services"
)

type NewsletterHandler struct {
	newsletterService *services.NewsletterService
}

func NewNewsletterHandler(newsletterService *services.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{newsletterService: newsletterService}
}

// Subscribe adds an email to the newsletter list
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid email or already subscribed", err)
		return
	}

	subscription, err := h.newsletterService.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		respondServiceError(c, "Invalid email or already subscribed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"subscription": subscription,
		"message":      "Successfully subscribed to newsletter",
	})
}
