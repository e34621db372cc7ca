package models

import (
	"time"
)

// NewsletterSubscription is a single subscribed email address
type NewsletterSubscription struct {
	Seq          uint      `gorm:"primaryKey" json:"-"`
	ID           string    `gorm:"uniqueIndex;size:36;not null" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	SubscribedAt time.Time `gorm:"autoCreateTime" json:"subscribedAt"`
}

func (NewsletterSubscription) TableName() string {
	return "newsletter"
}
