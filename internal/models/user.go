package models

import (
	"time"
)

// User represents a registered SafariQ member
type User struct {
	Seq           uint      `gorm:"primaryKey" json:"-"`
	ID            string    `gorm:"uniqueIndex;size:36;not null" json:"id"`
	Email         string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	Country       string    `gorm:"size:100;not null" json:"country"`
	WalletAddress *string   `gorm:"size:100" json:"walletAddress"`
	ReferralCode  string    `gorm:"uniqueIndex;size:20;not null" json:"referralCode"`
	ReferredBy    *string   `gorm:"size:20;index" json:"referredBy"`
	TotalInvites  int       `gorm:"not null;default:0" json:"totalInvites"`
	SedEarned     int       `gorm:"not null;default:0;index" json:"sedEarned"`
	Rank          Rank      `gorm:"size:20;not null;default:Explorer" json:"rank"`
	IsActive      bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}

// LeaderboardEntry is a user with its 1-based leaderboard position
type LeaderboardEntry struct {
	User
	Position int `json:"position"`
}

// ReferralStats summarizes a user's referral progress
type ReferralStats struct {
	TotalInvites int          `json:"totalInvites"`
	SedEarned    int          `json:"sedEarned"`
	Rank         Rank         `json:"rank"`
	Progress     RankProgress `json:"progress"`
}
