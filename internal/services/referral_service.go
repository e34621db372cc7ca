package services

import (
	"context"
	"fmt"
	"log"

	"safariq-api/internal/models"
	"safariq-api/internal/repository"
	"safariq-api/internal/utils"
)

// ReferralService is the referral ledger
type ReferralService struct {
	repo *repository.Repository
}

func NewReferralService(repo *repository.Repository) *ReferralService {
	return &ReferralService{
		repo: repo,
	}
}

// CreateReferral records a referral without touching either user's stats.
// Neither party is required to exist.
func (s *ReferralService) CreateReferral(ctx context.Context, referrerID, refereeID string, sedReward int) (*models.Referral, error) {
	if sedReward < 0 {
		return nil, ErrNegativeReward
	}

	referral := newReferral(referrerID, refereeID, sedReward)
	if err := s.repo.CreateReferral(ctx, referral); err != nil {
		return nil, fmt.Errorf("failed to create referral: %w", err)
	}
	return referral, nil
}

// RecordReferralAndCredit records a referral and credits the referrer with
// sedReward SED and one invite. Both writes commit together or not at all.
func (s *ReferralService) RecordReferralAndCredit(ctx context.Context, referrerID, refereeID string, sedReward int) (*models.Referral, *models.User, error) {
	var (
		referral *models.Referral
		referrer *models.User
	)

	err := s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		var err error
		referral, referrer, err = recordReferralAndCredit(ctx, tx, referrerID, refereeID, sedReward)
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	return referral, referrer, nil
}

// GetReferralsByUser returns the referrals made by userID, oldest first
func (s *ReferralService) GetReferralsByUser(ctx context.Context, userID string) ([]models.Referral, error) {
	referrals, err := s.repo.GetReferralsByReferrer(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get referrals: %w", err)
	}
	return referrals, nil
}

func recordReferralAndCredit(ctx context.Context, tx *repository.Repository, referrerID, refereeID string, sedReward int) (*models.Referral, *models.User, error) {
	if sedReward < 0 {
		return nil, nil, ErrNegativeReward
	}

	referral := newReferral(referrerID, refereeID, sedReward)
	if err := tx.CreateReferral(ctx, referral); err != nil {
		return nil, nil, fmt.Errorf("failed to create referral: %w", err)
	}

	referrer, err := applyUserStats(ctx, tx, referrerID, sedReward, 1)
	if err != nil {
		return nil, nil, err
	}

	log.Printf("[ReferralService] User %s referred %s: +%d SED (invites=%d, rank=%s)",
		referrerID, refereeID, sedReward, referrer.TotalInvites, referrer.Rank)
	return referral, referrer, nil
}

func newReferral(referrerID, refereeID string, sedReward int) *models.Referral {
	return &models.Referral{
		ID:         utils.NewID(),
		ReferrerID: referrerID,
		RefereeID:  refereeID,
		SedReward:  sedReward,
	}
}
