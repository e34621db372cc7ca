package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"safariq-api/internal/models"
	"safariq-api/internal/repository"
	"safariq-api/internal/utils"

	"gorm.io/gorm"
)

const (
	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 100

	referralCodeAttempts = 10
)

// UserService is the user registry: registration, lookups, stat updates and ranking
type UserService struct {
	repo         *repository.Repository
	signupReward int
	generateCode func() (string, error)
}

// NewUserService creates a new UserService. signupReward is the SED credited
// to a referrer when someone registers with their referral code.
func NewUserService(repo *repository.Repository, signupReward int) *UserService {
	return &UserService{
		repo:         repo,
		signupReward: signupReward,
		generateCode: utils.GenerateReferralCode,
	}
}

// RegisterInput carries the fields accepted at registration
type RegisterInput struct {
	Email         string
	Name          string
	Country       string
	WalletAddress *string
	ReferredBy    string
}

// CreateUser registers a new user with a fresh, unique referral code.
// When ReferredBy names an existing referral code the referrer is credited
// in the same transaction.
func (s *UserService) CreateUser(ctx context.Context, in RegisterInput) (*models.User, error) {
	var created *models.User

	err := s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		if _, err := tx.GetUserByEmail(ctx, in.Email); err == nil {
			return ErrDuplicateEmail
		} else if !repository.IsNotFound(err) {
			return fmt.Errorf("failed to check email: %w", err)
		}

		var referrer *models.User
		if in.ReferredBy != "" {
			r, err := tx.GetUserByReferralCode(ctx, in.ReferredBy)
			if repository.IsNotFound(err) {
				return ErrInvalidReferralCode
			}
			if err != nil {
				return fmt.Errorf("failed to look up referral code: %w", err)
			}
			referrer = r
		}

		code, err := s.uniqueReferralCode(ctx, tx)
		if err != nil {
			return err
		}

		user := &models.User{
			ID:            utils.NewID(),
			Email:         in.Email,
			Name:          in.Name,
			Country:       in.Country,
			WalletAddress: in.WalletAddress,
			ReferralCode:  code,
			Rank:          models.RankFor(0),
			IsActive:      true,
		}
		if referrer != nil {
			user.ReferredBy = &referrer.ReferralCode
		}

		if err := tx.CreateUser(ctx, user); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateEmail
			}
			return fmt.Errorf("failed to create user: %w", err)
		}

		if referrer != nil {
			if _, _, err := recordReferralAndCredit(ctx, tx, referrer.ID, user.ID, s.signupReward); err != nil {
				return err
			}
		}

		created = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[UserService] Registered user %s (code=%s)", created.ID, created.ReferralCode)
	return created, nil
}

// uniqueReferralCode draws codes until one is not held by any user
func (s *UserService) uniqueReferralCode(ctx context.Context, tx *repository.Repository) (string, error) {
	for attempt := 0; attempt < referralCodeAttempts; attempt++ {
		code, err := s.generateCode()
		if err != nil {
			return "", err
		}

		exists, err := tx.ReferralCodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("failed to check referral code: %w", err)
		}
		if !exists {
			return code, nil
		}
		log.Printf("[UserService] Referral code collision on %s, retrying", code)
	}
	return "", ErrReferralCodeExhausted
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return mapUserLookup(s.repo.GetUserByID(ctx, id))
}

// GetUserByEmail retrieves a user by exact email match
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return mapUserLookup(s.repo.GetUserByEmail(ctx, email))
}

// GetUserByReferralCode retrieves the owner of a referral code
func (s *UserService) GetUserByReferralCode(ctx context.Context, code string) (*models.User, error) {
	return mapUserLookup(s.repo.GetUserByReferralCode(ctx, code))
}

// UpdateUserStats adds the deltas to a user's SED balance and invite count
// and re-derives the rank. This is the only path that changes those fields.
func (s *UserService) UpdateUserStats(ctx context.Context, id string, sedDelta, invitesDelta int) (*models.User, error) {
	var updated *models.User
	err := s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		user, err := applyUserStats(ctx, tx, id, sedDelta, invitesDelta)
		if err != nil {
			return err
		}
		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// GetLeaderboard returns users ordered by SED earned, highest first, ties in
// registration order. Non-positive limits fall back to the default.
func (s *UserService) GetLeaderboard(ctx context.Context, limit int) ([]models.User, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	if limit > MaxLeaderboardLimit {
		limit = MaxLeaderboardLimit
	}

	users, err := s.repo.ListUsersBySedEarned(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}
	return users, nil
}

// GetReferralStats summarizes a user's invites, earnings and rank progress
func (s *UserService) GetReferralStats(ctx context.Context, id string) (*models.ReferralStats, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	return &models.ReferralStats{
		TotalInvites: user.TotalInvites,
		SedEarned:    user.SedEarned,
		Rank:         models.RankFor(user.TotalInvites),
		Progress:     models.ProgressFor(user.TotalInvites),
	}, nil
}

// applyUserStats increments a user's counters and stores the rank derived
// from the new invite count. Must run inside a transaction.
func applyUserStats(ctx context.Context, tx *repository.Repository, id string, sedDelta, invitesDelta int) (*models.User, error) {
	if err := tx.IncrementUserStats(ctx, id, sedDelta, invitesDelta); err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update user stats: %w", err)
	}

	user, err := tx.GetUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload user: %w", err)
	}

	rank := models.RankFor(user.TotalInvites)
	if user.Rank != rank {
		if err := tx.SetUserRank(ctx, id, rank); err != nil {
			return nil, fmt.Errorf("failed to update rank: %w", err)
		}
		log.Printf("[UserService] User %s reached rank %s", id, rank)
		user.Rank = rank
	}

	return user, nil
}

func mapUserLookup(user *models.User, err error) (*models.User, error) {
	if repository.IsNotFound(err) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
