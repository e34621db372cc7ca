package repository

import (
	"context"

	"safariq-api/internal/models"
)

// CreateNFT inserts a minted NFT
func (r *Repository) CreateNFT(ctx context.Context, nft *models.NFT) error {
	return r.db.WithContext(ctx).Create(nft).Error
}

// CountNFTs returns the number of minted NFTs
func (r *Repository) CountNFTs(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.NFT{}).Count(&count).Error
	return count, err
}

// MaxSerialNumber returns the highest serial number minted so far, or 0
func (r *Repository) MaxSerialNumber(ctx context.Context) (int, error) {
	var maxSerial int
	row := r.db.WithContext(ctx).
		Model(&models.NFT{}).
		Select("COALESCE(MAX(serial_number), 0)").
		Row()
	if err := row.Scan(&maxSerial); err != nil {
		return 0, err
	}
	return maxSerial, nil
}

// NFTSerialExists reports whether serial has already been minted
func (r *Repository) NFTSerialExists(ctx context.Context, serial int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.NFT{}).
		Where("serial_number = ?", serial).
		Count(&count).Error
	return count > 0, err
}

// NFTTokenIDExists reports whether tokenID has already been minted
func (r *Repository) NFTTokenIDExists(ctx context.Context, tokenID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.NFT{}).
		Where("token_id = ?", tokenID).
		Count(&count).Error
	return count > 0, err
}

// GetNFTsByOwner retrieves a user's NFTs in mint order
func (r *Repository) GetNFTsByOwner(ctx context.Context, ownerID string) ([]models.NFT, error) {
	var nfts []models.NFT
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("seq ASC").
		Find(&nfts).Error
	if err != nil {
		return nil, err
	}
	return nfts, nil
}
