package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNPSThresholds_SpecialScales(t *testing.T) {
	tests := []struct {
		name               string
		minScale, maxScale int
		detractor, passive int
	}{
		{"zero to five stars", 0, 5, 2, 4},
		{"one to five stars", 1, 5, 2, 4},
		{"classic zero to ten", 0, 10, 6, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			det, pas := NPSThresholds(tt.minScale, tt.maxScale)
			assert.Equal(t, tt.detractor, det)
			assert.Equal(t, tt.passive, pas)
		})
	}
}

func TestNPSThresholds_ProportionalScales(t *testing.T) {
	// 0-100: three non-empty, non-overlapping bands covering the whole range.
	det, pas := NPSThresholds(0, 100)
	assert.Equal(t, 40, det)
	assert.Equal(t, 80, pas)

	// 1-7: floor(1+2.4)=3, floor(1+4.8)=5.
	det, pas = NPSThresholds(1, 7)
	assert.Equal(t, 3, det)
	assert.Equal(t, 5, pas)
}

func TestNPSThresholds_BandsAlwaysValid(t *testing.T) {
	// Any declared scale with min < max must yield non-empty, non-overlapping
	// bands: min <= detractorMax < passiveMax < max.
	for minScale := -2; minScale <= 3; minScale++ {
		for maxScale := minScale + 2; maxScale <= minScale+12; maxScale++ {
			det, pas := NPSThresholds(minScale, maxScale)
			assert.GreaterOrEqual(t, det, minScale, "scale %d-%d", minScale, maxScale)
			assert.Greater(t, pas, det, "scale %d-%d", minScale, maxScale)
			assert.Greater(t, maxScale, pas, "scale %d-%d", minScale, maxScale)
		}
	}
}

func TestCSATRatingThresholds(t *testing.T) {
	// 1-5: dissatisfied 1-2, neutral 3, satisfied 4-5.
	dis, neu := CSATRatingThresholds(1, 5)
	assert.Equal(t, 2, dis)
	assert.Equal(t, 3, neu)

	// 1-10: dissatisfied 1-5, neutral 6-7, satisfied 8-10.
	dis, neu = CSATRatingThresholds(1, 10)
	assert.Equal(t, 5, dis)
	assert.Equal(t, 7, neu)

	// Generic split: 0-10 uses 60/80 percentile cuts.
	dis, neu = CSATRatingThresholds(0, 10)
	assert.Equal(t, 6, dis)
	assert.Equal(t, 8, neu)

	// Default 0-5 scale: dissatisfied 0-3, neutral 4, satisfied 5.
	dis, neu = CSATRatingThresholds(0, 5)
	assert.Equal(t, 3, dis)
	assert.Equal(t, 4, neu)
}

func TestCSATRatingThresholds_BandsAlwaysValid(t *testing.T) {
	for minScale := 0; minScale <= 2; minScale++ {
		for maxScale := minScale + 2; maxScale <= minScale+11; maxScale++ {
			dis, neu := CSATRatingThresholds(minScale, maxScale)
			assert.GreaterOrEqual(t, dis, minScale, "scale %d-%d", minScale, maxScale)
			assert.Greater(t, neu, dis, "scale %d-%d", minScale, maxScale)
			assert.Greater(t, maxScale, neu, "scale %d-%d", minScale, maxScale)
		}
	}
}
