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

type NewsletterService struct {
	repo *repository.Repository
}

func NewNewsletterService(repo *repository.Repository) *NewsletterService {
	return &NewsletterService{repo: repo}
}

// Subscribe adds email to the newsletter. Each address subscribes once.
func (s *NewsletterService) Subscribe(ctx context.Context, email string) (*models.NewsletterSubscription, error) {
	var sub *models.NewsletterSubscription
	err := s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		exists, err := tx.SubscriptionExists(ctx, email)
		if err != nil {
			return fmt.Errorf("failed to check subscription: %w", err)
		}
		if exists {
			return ErrDuplicateSubscription
		}

		sub = &models.NewsletterSubscription{
			ID:    utils.NewID(),
			Email: email,
		}
		if err := tx.CreateSubscription(ctx, sub); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateSubscription
			}
			return fmt.Errorf("failed to subscribe: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[NewsletterService] New subscription %s", sub.ID)
	return sub, nil
}
