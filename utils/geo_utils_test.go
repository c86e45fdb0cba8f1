package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKm(t *testing.T) {
	// Delhi to Mumbai, roughly 1150 km.
	d := HaversineKm(28.6139, 77.2090, 19.0760, 72.8777)
	assert.InDelta(t, 1150, d, 20)

	// Same point.
	assert.InDelta(t, 0, HaversineKm(28.6139, 77.2090, 28.6139, 77.2090), 1e-9)

	// Symmetric.
	assert.InDelta(t,
		HaversineKm(12.9716, 77.5946, 13.0827, 80.2707),
		HaversineKm(13.0827, 80.2707, 12.9716, 77.5946),
		1e-9)
}
