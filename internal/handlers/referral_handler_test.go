package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReferral(t *testing.T) {
	router := newTestRouter(t, nil)
	referrer := registerTestUser(t, router, "a@x.com")
	referee := registerTestUser(t, router, "b@x.com")

	resp := doJSON(t, router, http.MethodPost, "/api/referrals", gin.H{
		"referrerId": referrer["id"], "refereeId": referee["id"], "sedReward": 10,
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body)
	assert.Equal(t, "Referral created successfully", resp.Body["message"])
	assert.EqualValues(t, 10, resp.Body["referral"].(map[string]interface{})["sedReward"])

	resp = doJSON(t, router, http.MethodGet, "/api/users/"+referrer["id"].(string), nil)
	user := resp.Body["user"].(map[string]interface{})
	assert.EqualValues(t, 1, user["totalInvites"])
	assert.EqualValues(t, 10, user["sedEarned"])
}

func TestCreateReferralErrors(t *testing.T) {
	router := newTestRouter(t, nil)
	referrer := registerTestUser(t, router, "a@x.com")

	cases := []struct {
		name string
		body gin.H
	}{
		{"missing reward", gin.H{"referrerId": referrer["id"], "refereeId": "x"}},
		{"negative reward", gin.H{"referrerId": referrer["id"], "refereeId": "x", "sedReward": -1}},
		{"missing referrer", gin.H{"refereeId": "x", "sedReward": 5}},
		{"unknown referrer", gin.H{"referrerId": "ghost", "refereeId": "x", "sedReward": 5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doJSON(t, router, http.MethodPost, "/api/referrals", tc.body)
			assert.Equal(t, http.StatusBadRequest, resp.Code)
			assert.Equal(t, "Error creating referral", resp.Body["message"])
		})
	}
}
