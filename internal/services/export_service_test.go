package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/masaar-cx/survey-analytics-service/internal/events"
	"github.com/masaar-cx/survey-analytics-service/internal/models"
	"github.com/masaar-cx/survey-analytics-service/internal/utils"
)

func TestReportExportService_ExportAnalyticsReport(t *testing.T) {
	survey := npsSurvey()
	qID := survey.Questions[0].ID
	f := newFixture(survey, []models.AnswerRecord{
		answer(qID, "9"),
		answer(qID, "10"),
		answer(qID, "2"),
	})

	logger := utils.NewDevelopmentLogger()
	exporter := NewReportExportService(f.service, f.publisher, logger)

	data, err := exporter.ExportAnalyticsReport(context.Background(), survey.ID)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	workbook, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	assert.Contains(t, sheets, "NPS")
	assert.Contains(t, sheets, "CSAT")
	assert.Contains(t, sheets, "Tracking")
	assert.Contains(t, sheets, "Heatmap")

	score, err := workbook.GetCellValue("NPS", "B3")
	require.NoError(t, err)
	assert.NotEmpty(t, score)

	published := f.publisher.GetPublishedEvents()
	require.NotEmpty(t, published)
	assert.Equal(t, events.EventReportExported, published[len(published)-1].Type)
}

func TestReportExportService_SurveyNotFound(t *testing.T) {
	f := newFixture(npsSurvey(), nil)
	exporter := NewReportExportService(f.service, f.publisher, utils.NewDevelopmentLogger())

	_, err := exporter.ExportAnalyticsReport(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrSurveyNotFound)
}
