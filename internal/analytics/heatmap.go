package analytics

import (
	"time"

	"github.com/masaar-cx/survey-analytics-service/internal/models"
)

// BuildHeatmap produces the 7x24 response-density matrix for a set of
// answers in the target timezone. Row 0 is Sunday. Only complete responses
// count; answers without a timestamp are skipped rather than failing the
// computation. The matrix dimensions are fixed regardless of input size, so
// zero answers yield an all-zero matrix.
func BuildHeatmap(answers []models.AnswerRecord, loc *time.Location) *models.Heatmap {
	hm := &models.Heatmap{Timezone: loc.String()}

	for _, a := range answers {
		if !a.IsComplete || a.SubmittedAt == nil {
			continue
		}

		local := a.SubmittedAt.In(loc)
		day := int(local.Weekday()) // Sunday == 0
		hour := local.Hour()

		hm.Matrix[day][hour]++
		hm.DayTotals[day]++
		hm.HourTotals[hour]++
		hm.Total++
	}

	return hm
}
