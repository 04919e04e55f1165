package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masaar-cx/survey-analytics-service/internal/models"
)

func TestBuildHeatmap_Dimensions(t *testing.T) {
	hm := BuildHeatmap(nil, time.UTC)
	require.NotNil(t, hm)

	assert.Len(t, hm.Matrix, 7)
	for _, row := range hm.Matrix {
		assert.Len(t, row, 24)
	}
	assert.Equal(t, 0, hm.Total)
}

func TestBuildHeatmap_SundayIsRowZero(t *testing.T) {
	loc := dubai(t)

	// 2025-03-09 is a Sunday; 2025-03-10 a Monday.
	sunday := time.Date(2025, 3, 9, 8, 15, 0, 0, loc)
	monday := time.Date(2025, 3, 10, 20, 45, 0, 0, loc)

	hm := BuildHeatmap([]models.AnswerRecord{
		answerAt("ممتاز", sunday),
		answerAt("ضعيف", monday),
		answerAt("عادي", monday),
	}, loc)

	assert.Equal(t, 1, hm.Matrix[0][8])
	assert.Equal(t, 2, hm.Matrix[1][20])
	assert.Equal(t, 1, hm.DayTotals[0])
	assert.Equal(t, 2, hm.DayTotals[1])
	assert.Equal(t, 1, hm.HourTotals[8])
	assert.Equal(t, 2, hm.HourTotals[20])
	assert.Equal(t, 3, hm.Total)
	assert.Equal(t, "Asia/Dubai", hm.Timezone)
}

func TestBuildHeatmap_SkipsIncompleteAndUntimestamped(t *testing.T) {
	loc := dubai(t)
	at := time.Date(2025, 3, 9, 8, 0, 0, 0, loc)

	incomplete := answerAt("ممتاز", at)
	incomplete.IsComplete = false

	hm := BuildHeatmap([]models.AnswerRecord{
		incomplete,
		{Text: "ممتاز", IsComplete: true},
		answerAt("ممتاز", at),
	}, loc)

	assert.Equal(t, 1, hm.Total)
}

func TestBuildHeatmap_TimezoneConversion(t *testing.T) {
	loc := dubai(t)

	// 23:00 UTC Saturday is 03:00 Sunday in Dubai.
	utcNight := time.Date(2025, 3, 8, 23, 0, 0, 0, time.UTC)

	hm := BuildHeatmap([]models.AnswerRecord{answerAt("ممتاز", utcNight)}, loc)

	assert.Equal(t, 1, hm.Matrix[0][3])
	assert.Equal(t, 1, hm.DayTotals[0])
}

func TestLoadLocation(t *testing.T) {
	assert.Equal(t, "Asia/Dubai", LoadLocation("").String())
	assert.Equal(t, "Asia/Dubai", LoadLocation("Not/AZone").String())
	assert.Equal(t, "Europe/London", LoadLocation("Europe/London").String())
}
