package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/palettehq/marketplace-sync/internal/domain"
)

func TestNormalizeAddress(t *testing.T) {
	assert.Equal(t,
		"0xabcdef0000000000000000000000000000000001",
		domain.NormalizeAddress("0xABCDEF0000000000000000000000000000000001"))
	assert.Equal(t,
		"0xabcdef0000000000000000000000000000000001",
		domain.NormalizeAddress("  0xabcdef0000000000000000000000000000000001  "))
	assert.Equal(t, "", domain.NormalizeAddress(""))
}

func TestIsValidAddress(t *testing.T) {
	assert.True(t, domain.IsValidAddress("0xABCDEF0000000000000000000000000000000001"))
	assert.True(t, domain.IsValidAddress("0xabcdef0000000000000000000000000000000001"))
	assert.False(t, domain.IsValidAddress("0xabc"))
	assert.False(t, domain.IsValidAddress("not-an-address"))
	assert.False(t, domain.IsValidAddress(""))
}

func TestIsValidNetwork(t *testing.T) {
	assert.True(t, domain.IsValidNetwork(domain.NetworkEthereum))
	assert.True(t, domain.IsValidNetwork(domain.NetworkPolygon))
	assert.False(t, domain.IsValidNetwork(domain.Network("solana")))
	assert.False(t, domain.IsValidNetwork(domain.Network("")))
}

func TestCardTokenID(t *testing.T) {
	// The identifier is hex-encoded; the contract address is lower-cased
	assert.Equal(t,
		"0xabcdef0000000000000000000000000000000001-0x7",
		domain.CardTokenID("0xABCDEF0000000000000000000000000000000001", 7))
	assert.Equal(t,
		"0xabcdef0000000000000000000000000000000001-0xff",
		domain.CardTokenID("0xabcdef0000000000000000000000000000000001", 255))
	assert.Equal(t,
		"0xabcdef0000000000000000000000000000000001-0x0",
		domain.CardTokenID("0xabcdef0000000000000000000000000000000001", 0))
}
