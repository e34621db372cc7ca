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

// TokenIDPrefix is used for token ids assigned by MintNext
const TokenIDPrefix = "SAFARIQ-"

// NFTService is the NFT registry
type NFTService struct {
	repo *repository.Repository
}

func NewNFTService(repo *repository.Repository) *NFTService {
	return &NFTService{repo: repo}
}

// MintInput describes an NFT to store
type MintInput struct {
	TokenID      string
	OwnerID      string
	SerialNumber int
	Metadata     models.JSONB
}

// CheckSupply is the pre-mint check callers run before CreateNFT:
// serial numbers run from 1 to MaxNFTSupply.
func CheckSupply(serialNumber int) error {
	if serialNumber < 1 {
		return ErrInvalidSerial
	}
	if serialNumber > models.MaxNFTSupply {
		return ErrMaxSupplyReached
	}
	return nil
}

// GetTotalMinted returns the number of NFTs minted so far
func (s *NFTService) GetTotalMinted(ctx context.Context) (int64, error) {
	total, err := s.repo.CountNFTs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count NFTs: %w", err)
	}
	return total, nil
}

// CreateNFT stores a minted NFT. Serial number and token id must both be
// unused. The supply cap is not checked here; see CheckSupply.
func (s *NFTService) CreateNFT(ctx context.Context, in MintInput) (*models.NFT, error) {
	var nft *models.NFT
	err := s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		var err error
		nft, err = createNFT(ctx, tx, in)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[NFTService] Minted %s (serial %d) for %s", nft.TokenID, nft.SerialNumber, nft.OwnerID)
	return nft, nil
}

// MintNext mints the next serial number for an existing user, assigning the
// token id SAFARIQ-<serial>. Fails with ErrMaxSupplyReached once sold out.
func (s *NFTService) MintNext(ctx context.Context, ownerID string, metadata models.JSONB) (*models.NFT, error) {
	var nft *models.NFT
	err := s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		if _, err := tx.GetUserByID(ctx, ownerID); err != nil {
			if repository.IsNotFound(err) {
				return ErrUserNotFound
			}
			return fmt.Errorf("failed to get owner: %w", err)
		}

		last, err := tx.MaxSerialNumber(ctx)
		if err != nil {
			return fmt.Errorf("failed to read last serial: %w", err)
		}

		serial := last + 1
		if err := CheckSupply(serial); err != nil {
			return err
		}

		nft, err = createNFT(ctx, tx, MintInput{
			TokenID:      fmt.Sprintf("%s%d", TokenIDPrefix, serial),
			OwnerID:      ownerID,
			SerialNumber: serial,
			Metadata:     metadata,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[NFTService] Minted %s (serial %d) for %s", nft.TokenID, nft.SerialNumber, nft.OwnerID)
	return nft, nil
}

// GetNFTsByOwner returns a user's NFTs in mint order
func (s *NFTService) GetNFTsByOwner(ctx context.Context, ownerID string) ([]models.NFT, error) {
	nfts, err := s.repo.GetNFTsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get NFTs: %w", err)
	}
	return nfts, nil
}

func createNFT(ctx context.Context, tx *repository.Repository, in MintInput) (*models.NFT, error) {
	serialTaken, err := tx.NFTSerialExists(ctx, in.SerialNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to check serial number: %w", err)
	}
	if serialTaken {
		return nil, ErrDuplicateSerial
	}

	tokenTaken, err := tx.NFTTokenIDExists(ctx, in.TokenID)
	if err != nil {
		return nil, fmt.Errorf("failed to check token id: %w", err)
	}
	if tokenTaken {
		return nil, ErrDuplicateTokenID
	}

	metadata := in.Metadata
	if metadata == nil {
		metadata = models.JSONB{}
	}

	nft := &models.NFT{
		ID:           utils.NewID(),
		TokenID:      in.TokenID,
		OwnerID:      in.OwnerID,
		SerialNumber: in.SerialNumber,
		Metadata:     metadata,
	}
	if err := tx.CreateNFT(ctx, nft); err != nil {
		// Lost a race with a concurrent mint of the same serial or token.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateSerial
		}
		return nil, fmt.Errorf("failed to create NFT: %w", err)
	}
	return nft, nil
}
