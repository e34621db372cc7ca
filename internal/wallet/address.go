package wallet

import (
	"errors"
	"regexp"
	"strings"

	"github.com/gagliardetto/solana-go"
)

// Chain identifies the network an address belongs to
type Chain string

const (
	ChainEVM    Chain = "EVM"
	ChainSolana Chain = "SOLANA"
)

var ErrInvalidAddress = errors.New("invalid wallet address")

var evmAddressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// Detect classifies a wallet address as an EVM hex address or a Solana
// base58 public key.
func Detect(address string) (Chain, error) {
	address = strings.TrimSpace(address)

	if evmAddressPattern.MatchString(address) {
		return ChainEVM, nil
	}

	// Solana public keys are 32 bytes, 32 to 44 characters in base58.
	if len(address) >= 32 && len(address) <= 44 {
		if _, err := solana.PublicKeyFromBase58(address); err == nil {
			return ChainSolana, nil
		}
	}

	return "", ErrInvalidAddress
}

// Validate returns ErrInvalidAddress unless address is a supported wallet address
func Validate(address string) error {
	_, err := Detect(address)
	return err
}
