package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"safariq-api/internal/services"
	"safariq-api/internal/wallet"
)

// badRequestErrors are caller mistakes reported as 400
var badRequestErrors = []error{
	services.ErrDuplicateEmail,
	services.ErrInvalidReferralCode,
	services.ErrNegativeReward,
	services.ErrDuplicateSubscription,
	services.ErrDuplicateSerial,
	services.ErrDuplicateTokenID,
	services.ErrInvalidSerial,
	services.ErrMaxSupplyReached,
	wallet.ErrInvalidAddress,
}

func statusFor(err error) int {
	if errors.Is(err, services.ErrUserNotFound) {
		return http.StatusNotFound
	}
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

// respondError writes the {message, error} body used by every endpoint.
// Internal failures are logged and their detail is not sent to the client.
func respondError(c *gin.Context, status int, message string, err error) {
	body := gin.H{"message": message}
	if status >= http.StatusInternalServerError {
		log.Printf("[API] %s %s: %s: %v", c.Request.Method, c.FullPath(), message, err)
		body["error"] = "internal server error"
	} else if err != nil {
		body["error"] = err.Error()
	}
	c.JSON(status, body)
}

// respondServiceError maps a service error to its status code
func respondServiceError(c *gin.Context, message string, err error) {
	respondError(c, statusFor(err), message, err)
}
