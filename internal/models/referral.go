package models

import (
	"time"
)

// Referral records a referrer inviting a referee and the SED paid for it
type Referral struct {
	Seq        uint      `gorm:"primaryKey" json:"-"`
	ID         string    `gorm:"uniqueIndex;size:36;not null" json:"id"`
	ReferrerID string    `gorm:"size:36;not null;index" json:"referrerId"`
	RefereeID  string    `gorm:"size:36;not null;index" json:"refereeId"`
	SedReward  int       `gorm:"not null;default:0" json:"sedReward"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (Referral) TableName() string {
	return "referrals"
}
