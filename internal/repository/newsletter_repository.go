package repository

import (
	"context"

	"safariq-api/internal/models"
)

// CreateSubscription inserts a newsletter subscription
func (r *Repository) CreateSubscription(ctx context.Context, sub *models.NewsletterSubscription) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

// SubscriptionExists reports whether email is already subscribed
func (r *Repository) SubscriptionExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.NewsletterSubscription{}).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, err
}
