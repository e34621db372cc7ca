package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"safariq-api/internal/database"
	"safariq-api/internal/ratelimit"
	"safariq-api/internal/repository"
	"safariq-api/internal/services"
)

type apiResponse struct {
	Code int
	Body map[string]interface{}
}

func newTestRouter(t *testing.T, limiter ratelimit.Limiter) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewRepository(database.OpenTestDB(t))
	users := services.NewUserService(repo, 10)
	return NewRouter(RouterDeps{
		Users:          users,
		Referrals:      services.NewReferralService(repo),
		NFTs:           services.NewNFTService(repo),
		Newsletter:     services.NewNewsletterService(repo),
		Leaderboard:    services.NewLeaderboardService(users),
		Limiter:        limiter,
		AllowedOrigins: []string{"http://localhost:5173"},
	})
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) apiResponse {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	resp := apiResponse{Code: w.Code, Body: map[string]interface{}{}}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp.Body), w.Body.String())
	}
	return resp
}

func registerTestUser(t *testing.T, router http.Handler, email string) map[string]interface{} {
	t.Helper()

	resp := doJSON(t, router, http.MethodPost, "/api/users/register", gin.H{
		"email":   email,
		"name":    "Amani",
		"country": "Tanzania",
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body)
	return resp.Body["user"].(map[string]interface{})
}
