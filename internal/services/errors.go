package services

import "errors"

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrDuplicateEmail        = errors.New("user already exists with this email")
	ErrInvalidReferralCode   = errors.New("invalid referral code")
	ErrReferralCodeExhausted = errors.New("could not generate a unique referral code")
	ErrNegativeReward        = errors.New("sed reward must not be negative")
	ErrDuplicateSubscription = errors.New("email already subscribed")
	ErrDuplicateSerial       = errors.New("serial number already minted")
	ErrDuplicateTokenID      = errors.New("token id already minted")
	ErrInvalidSerial         = errors.New("serial number must be positive")
	ErrMaxSupplyReached      = errors.New("all NFTs have been minted")
)
