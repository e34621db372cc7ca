package services

import (
	"context"
	"fmt"
	"testing"

	"safariq-api/internal/database"
	"safariq-api/internal/models"
	"safariq-api/internal/repository"

	"github.com/stretchr/testify/require"
)

const testSignupReward = 10

type testEnv struct {
	repo        *repository.Repository
	users       *UserService
	referrals   *ReferralService
	nfts        *NFTService
	newsletter  *NewsletterService
	leaderboard *LeaderboardService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	repo := repository.NewRepository(database.OpenTestDB(t))
	users := NewUserService(repo, testSignupReward)
	return &testEnv{
		repo:        repo,
		users:       users,
		referrals:   NewReferralService(repo),
		nfts:        NewNFTService(repo),
		newsletter:  NewNewsletterService(repo),
		leaderboard: NewLeaderboardService(users),
	}
}

func registerUser(t *testing.T, env *testEnv, email string) *models.User {
	t.Helper()

	user, err := env.users.CreateUser(context.Background(), RegisterInput{
		Email:   email,
		Name:    "User " + email,
		Country: "Kenya",
	})
	require.NoError(t, err)
	return user
}

func registerUsers(t *testing.T, env *testEnv, n int) []*models.User {
	t.Helper()

	users := make([]*models.User, n)
	for i := range users {
		users[i] = registerUser(t, env, fmt.Sprintf("user%d@x.com", i))
	}
	return users
}
