package models

import (
	"time"
)

// MaxNFTSupply is the fixed size of the SafariQ NFT collection
const MaxNFTSupply = 1000

// NFT represents a minted collection item. Records are immutable once created.
type NFT struct {
	Seq          uint      `gorm:"primaryKey" json:"-"`
	ID           string    `gorm:"uniqueIndex;size:36;not null" json:"id"`
	TokenID      string    `gorm:"uniqueIndex;size:100;not null" json:"tokenId"`
	OwnerID      string    `gorm:"size:36;not null;index" json:"ownerId"`
	SerialNumber int       `gorm:"uniqueIndex;not null" json:"serialNumber"`
	Metadata     JSONB     `gorm:"type:jsonb" json:"metadata"`
	MintedAt     time.Time `gorm:"autoCreateTime" json:"mintedAt"`
}

func (NFT) TableName() string {
	return "nfts"
}
