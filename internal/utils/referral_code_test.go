package utils

import (
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var referralCodePattern = regexp.MustCompile(`^SAFARI-[A-Z0-9]{6}$`)

func TestGenerateReferralCodeFormat(t *testing.T) {
	for i := 0; i < 500; i++ {
		code, err := GenerateReferralCode()
		require.NoError(t, err)
		assert.Regexp(t, referralCodePattern, code)
		assert.True(t, IsReferralCode(code))
	}
}

func TestIsReferralCode(t *testing.T) {
	assert.True(t, IsReferralCode("SAFARI-AB12CD"))
	assert.False(t, IsReferralCode("SAFARI-ab12cd"))
	assert.False(t, IsReferralCode("SAFARI-AB12C"))
	assert.False(t, IsReferralCode("SAFARI-AB12CDE"))
	assert.False(t, IsReferralCode("SAFARIQ-12345"))
	assert.False(t, IsReferralCode(""))
}

func TestNewIDIsUUID(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := NewID()
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		_, dup := seen[id]
		assert.False(t, dup)
		seen[id] = struct{}{}
	}
}
