package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterUser(t *testing.T) {
	router := newTestRouter(t, nil)

	resp := doJSON(t, router, http.MethodPost, "/api/users/register", gin.H{
		"email":         "a@x.com",
		"name":          "Amani",
		"country":       "Kenya",
		"walletAddress": "0x52908400098527886E0F7030069857D2E4169EE7",
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body)
	assert.Equal(t, "User registered successfully", resp.Body["message"])

	user := resp.Body["user"].(map[string]interface{})
	assert.NotEmpty(t, user["id"])
	assert.Regexp(t, `^SAFARI-[A-Z0-9]{6}$`, user["referralCode"])
	assert.Equal(t, "Explorer", user["rank"])
	assert.EqualValues(t, 0, user["totalInvites"])
	assert.EqualValues(t, 0, user["sedEarned"])
	assert.Equal(t, true, user["isActive"])
	assert.NotContains(t, user, "Seq")
}

func TestRegisterUserValidation(t *testing.T) {
	router := newTestRouter(t, nil)

	cases := []struct {
		name string
		body gin.H
	}{
		{"missing email", gin.H{"name": "A", "country": "Kenya"}},
		{"malformed email", gin.H{"email": "not-an-email", "name": "A", "country": "Kenya"}},
		{"missing name", gin.H{"email": "a@x.com", "country": "Kenya"}},
		{"blank country", gin.H{"email": "a@x.com", "name": "A", "country": "  "}},
		{"bad wallet", gin.H{"email": "a@x.com", "name": "A", "country": "Kenya", "walletAddress": "0x123"}},
		{"unknown referral code", gin.H{"email": "a@x.com", "name": "A", "country": "Kenya", "referredBy": "SAFARI-ZZZZZZ"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doJSON(t, router, http.MethodPost, "/api/users/register", tc.body)
			assert.Equal(t, http.StatusBadRequest, resp.Code)
			assert.NotEmpty(t, resp.Body["message"])
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	router := newTestRouter(t, nil)
	registerTestUser(t, router, "a@x.com")

	resp := doJSON(t, router, http.MethodPost, "/api/users/register", gin.H{
		"email": "a@x.com", "name": "Other", "country": "Uganda",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "User already exists with this email", resp.Body["message"])
}

func TestRegisterWithReferralCode(t *testing.T) {
	router := newTestRouter(t, nil)
	referrer := registerTestUser(t, router, "ref@x.com")

	resp := doJSON(t, router, http.MethodPost, "/api/users/register", gin.H{
		"email": "new@x.com", "name": "B", "country": "Kenya", "referredBy": referrer["referralCode"],
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body)

	resp = doJSON(t, router, http.MethodGet, "/api/users/"+referrer["id"].(string), nil)
	require.Equal(t, http.StatusOK, resp.Code)
	user := resp.Body["user"].(map[string]interface{})
	assert.EqualValues(t, 1, user["totalInvites"])
	assert.EqualValues(t, 10, user["sedEarned"])

	resp = doJSON(t, router, http.MethodGet, "/api/users/"+referrer["id"].(string)+"/referrals", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.EqualValues(t, 1, resp.Body["count"])
}

func TestGetUser(t *testing.T) {
	router := newTestRouter(t, nil)
	user := registerTestUser(t, router, "a@x.com")

	resp := doJSON(t, router, http.MethodGet, "/api/users/"+user["id"].(string), nil)
	assert.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(t, router, http.MethodGet, "/api/users/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, "User not found", resp.Body["message"])

	resp = doJSON(t, router, http.MethodGet, "/api/users/code/"+user["referralCode"].(string), nil)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, user["id"], resp.Body["user"].(map[string]interface{})["id"])

	resp = doJSON(t, router, http.MethodGet, "/api/users/code/SAFARI-ZZZZZZ", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestGetUserReferralsUnknownUser(t *testing.T) {
	router := newTestRouter(t, nil)

	resp := doJSON(t, router, http.MethodGet, "/api/users/nobody/referrals", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = doJSON(t, router, http.MethodGet, "/api/users/nobody/stats", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestGetUserStats(t *testing.T) {
	router := newTestRouter(t, nil)
	user := registerTestUser(t, router, "a@x.com")

	resp := doJSON(t, router, http.MethodGet, "/api/users/"+user["id"].(string)+"/stats", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	stats := resp.Body["stats"].(map[string]interface{})
	assert.Equal(t, "Explorer", stats["rank"])
	progress := stats["progress"].(map[string]interface{})
	assert.EqualValues(t, 15, progress["next"])
	assert.EqualValues(t, 0, progress["percentage"])
}
