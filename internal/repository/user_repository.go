package repository

import (
	"context"
	"errors"

	"safariq-api/internal/models"

	"gorm.io/gorm"
)

// CreateUser inserts a new user
func (r *Repository) CreateUser(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// GetUserByID retrieves a user by its public ID
func (r *Repository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by exact email match
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByReferralCode retrieves the owner of a referral code
func (r *Repository) GetUserByReferralCode(ctx context.Context, code string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("referral_code = ?", code).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ReferralCodeExists reports whether any user already holds code
func (r *Repository) ReferralCodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("referral_code = ?", code).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// IncrementUserStats adds the deltas to a user's counters in a single
// UPDATE so concurrent increments on the same row are never lost.
// Returns gorm.ErrRecordNotFound when no user has that id.
func (r *Repository) IncrementUserStats(ctx context.Context, id string, sedDelta, invitesDelta int) error {
	result := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"sed_earned":    gorm.Expr("sed_earned + ?", sedDelta),
			"total_invites": gorm.Expr("total_invites + ?", invitesDelta),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetUserRank stores the derived rank for a user
func (r *Repository) SetUserRank(ctx context.Context, id string, rank models.Rank) error {
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("rank", rank).Error
}

// ListUsersBySedEarned returns users ordered by SED earned, highest first.
// Ties keep registration order.
func (r *Repository) ListUsersBySedEarned(ctx context.Context, limit int) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Order("sed_earned DESC").
		Order("seq ASC").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// IsNotFound reports whether err means the record does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
