package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"safariq-api/internal/models"
	"safariq-api/internal/services"
)

// NFTHandler handles the mock NFT minting endpoints
type NFTHandler struct {
	nftService *services.NFTService
}

// NewNFTHandler creates a new NFTHandler
func NewNFTHandler(nftService *services.NFTService) *NFTHandler {
	return &NFTHandler{nftService: nftService}
}

type mintRequest struct {
	TokenID      string       `json:"tokenId" binding:"required"`
	OwnerID      string       `json:"ownerId" binding:"required"`
	SerialNumber *int         `json:"serialNumber" binding:"required"`
	Metadata     models.JSONB `json:"metadata"`
}

// Mint records an NFT with a client-chosen serial number
func (h *NFTHandler) Mint(c *gin.Context) {
	var req mintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid NFT data", err)
		return
	}

	if err := services.CheckSupply(*req.SerialNumber); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid NFT data", err)
		return
	}

	nft, err := h.nftService.CreateNFT(c.Request.Context(), services.MintInput{
		TokenID:      req.TokenID,
		OwnerID:      req.OwnerID,
		SerialNumber: *req.SerialNumber,
		Metadata:     req.Metadata,
	})
	if err != nil {
		respondServiceError(c, "Invalid NFT data", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"nft":     nft,
		"message": "NFT minted successfully",
	})
}

type mintNextRequest struct {
	OwnerID  string       `json:"ownerId" binding:"required"`
	Metadata models.JSONB `json:"metadata"`
}

// MintNext mints the next free serial number for an existing user
func (h *NFTHandler) MintNext(c *gin.Context) {
	var req mintNextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid NFT data", err)
		return
	}

	nft, err := h.nftService.MintNext(c.Request.Context(), req.OwnerID, req.Metadata)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			respondError(c, http.StatusBadRequest, "Invalid NFT data", err)
			return
		}
		respondServiceError(c, "Invalid NFT data", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"nft":     nft,
		"message": "NFT minted successfully",
	})
}

// GetByOwner lists the NFTs held by a user
func (h *NFTHandler) GetByOwner(c *gin.Context) {
	nfts, err := h.nftService.GetNFTsByOwner(c.Request.Context(), c.Param("ownerId"))
	if err != nil {
		respondServiceError(c, "Error fetching NFTs", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"nfts": nfts})
}

// GetStats reports minted count against the collection cap
func (h *NFTHandler) GetStats(c *gin.Context) {
	total, err := h.nftService.GetTotalMinted(c.Request.Context())
	if err != nil {
		respondServiceError(c, "Error fetching NFT stats", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalMinted": total,
		"maxSupply":   models.MaxNFTSupply,
	})
}
