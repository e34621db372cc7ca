package services

import (
	"context"

	"safariq-api/internal/models"
)

// LeaderboardService derives the ranked SED leaderboard from the user registry.
// Nothing is cached; every call reads current state.
type LeaderboardService struct {
	users *UserService
}

func NewLeaderboardService(users *UserService) *LeaderboardService {
	return &LeaderboardService{users: users}
}

// Top returns up to limit users with their 1-based positions
func (s *LeaderboardService) Top(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	users, err := s.users.GetLeaderboard(ctx, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]models.LeaderboardEntry, len(users))
	for i, u := range users {
		entries[i] = models.LeaderboardEntry{User: u, Position: i + 1}
	}
	return entries, nil
}
