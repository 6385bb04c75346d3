package locations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "machakos town", Normalize("  Machakos   Town "))
	assert.Equal(t, "masii", Normalize("MASII"))
	assert.Equal(t, "", Normalize("   "))
}

func TestNearbyHub(t *testing.T) {
	hub, ok := NearbyHub("Masii")
	assert.True(t, ok)
	assert.Equal(t, "Machakos Town", hub)

	hub, ok = NearbyHub("  TALA ")
	assert.True(t, ok)
	assert.Equal(t, "Kangundo", hub)

	_, ok = NearbyHub("Nairobi")
	assert.False(t, ok)
}

func TestIsHub(t *testing.T) {
	assert.True(t, IsHub("Machakos Town"))
	assert.True(t, IsHub("machakos  town"))
	assert.True(t, IsHub("Athi River"))
	assert.False(t, IsHub("Masii"))
	assert.False(t, IsHub("Nairobi"))
}
