package repository

import (
	"context"

	"safariq-api/internal/models"
)

// CreateReferral inserts a referral record
func (r *Repository) CreateReferral(ctx context.Context, referral *models.Referral) error {
	return r.db.WithContext(ctx).Create(referral).Error
}

// GetReferralsByReferrer retrieves all referrals made by a user, oldest first
func (r *Repository) GetReferralsByReferrer(ctx context.Context, referrerID string) ([]models.Referral, error) {
	var referrals []models.Referral
	err := r.db.WithContext(ctx).
		Where("referrer_id = ?", referrerID).
		Order("seq ASC").
		Find(&referrals).Error
	if err != nil {
		return nil, err
	}
	return referrals, nil
}
