package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/masaar-cx/survey-analytics-service/internal/events"
	"github.com/masaar-cx/survey-analytics-service/internal/models"
	"github.com/masaar-cx/survey-analytics-service/internal/utils"
)

// ReportExportService renders the full analytics summary of a survey as an
// xlsx workbook: one sheet per view.
type ReportExportService interface {
	ExportAnalyticsReport(ctx context.Context, surveyID uuid.UUID) ([]byte, error)
}

type reportExportService struct {
	analytics AnalyticsService
	publisher events.EventPublisher
	logger    utils.Logger
}

func NewReportExportService(analyticsService AnalyticsService, publisher events.EventPublisher, logger utils.Logger) ReportExportService {
	return &reportExportService{
		analytics: analyticsService,
		publisher: publisher,
		logger:    logger,
	}
}

var weekdayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

func (s *reportExportService) ExportAnalyticsReport(ctx context.Context, surveyID uuid.UUID) ([]byte, error) {
	s.logger.Info("Exporting analytics report", "survey_id", surveyID)

	summary, err := s.analytics.GetSummary(ctx, surveyID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()

	if err := s.writeNPSSheet(f, summary.NPS); err != nil {
		return nil, err
	}
	if err := s.writeCSATSheet(f, summary.CSAT); err != nil {
		return nil, err
	}
	if err := s.writeTrackingSheet(f, summary.Tracking); err != nil {
		return nil, err
	}
	if err := s.writeHeatmapSheet(f, summary.Heatmap); err != nil {
		return nil, err
	}

	// Drop the default sheet excelize creates.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to remove default sheet: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}

	data := buf.Bytes()
	if s.publisher != nil {
		event := events.NewReportExportedEvent(surveyID, len(data))
		if err := s.publisher.PublishAnalyticsEvent(ctx, event); err != nil {
			s.logger.LogError(err, "Failed to publish report exported event", "survey_id", surveyID)
		}
	}

	return data, nil
}

func (s *reportExportService) writeNPSSheet(f *excelize.File, nps *models.NPSResult) error {
	sheetName := "NPS"
	if _, err := f.NewSheet(sheetName); err != nil {
		return fmt.Errorf("failed to create Excel sheet: %w", err)
	}

	if nps == nil {
		f.SetCellValue(sheetName, "A1", "No NPS-eligible question in this survey")
		return nil
	}

	rows := [][]interface{}{
		{"Question", nps.QuestionText},
		{"Scale", fmt.Sprintf("%d-%d", nps.ScaleMin, nps.ScaleMax)},
		{"Score", nps.Score},
		{"Interpretation", nps.Interpretation},
		{"Promoters", nps.Promoters, nps.PromoterPct},
		{"Passives", nps.Passives, nps.PassivePct},
		{"Detractors", nps.Detractors, nps.DetractorPct},
		{"Total", nps.Total},
		{},
		{"Score Point", "Count", "Percent"},
	}
	writeRows(f, sheetName, 1, rows)

	for i, p := range nps.Distribution {
		writeRows(f, sheetName, len(rows)+1+i, [][]interface{}{{p.Score, p.Count, p.Percent}})
	}
	return nil
}

func (s *reportExportService) writeCSATSheet(f *excelize.File, csat *models.CSATResult) error {
	sheetName := "CSAT"
	if _, err := f.NewSheet(sheetName); err != nil {
		return fmt.Errorf("failed to create Excel sheet: %w", err)
	}

	if csat == nil {
		f.SetCellValue(sheetName, "A1", "No CSAT-eligible question in this survey")
		return nil
	}

	rows := [][]interface{}{
		{"Score", csat.Score},
		{"Interpretation", csat.Interpretation},
		{"Satisfied", csat.Satisfied, csat.SatisfiedPct},
		{"Neutral", csat.Neutral, csat.NeutralPct},
		{"Dissatisfied", csat.Dissatisfied, csat.DissatisfiedPct},
		{"Total", csat.Total},
		{},
		{"Question", "Type"},
	}
	writeRows(f, sheetName, 1, rows)

	for i, q := range csat.Questions {
		writeRows(f, sheetName, len(rows)+1+i, [][]interface{}{{q.QuestionText, string(q.QuestionType)}})
	}
	return nil
}

func (s *reportExportService) writeTrackingSheet(f *excelize.File, tracking []models.PeriodBucket) error {
	sheetName := "Tracking"
	if _, err := f.NewSheet(sheetName); err != nil {
		return fmt.Errorf("failed to create Excel sheet: %w", err)
	}

	writeRows(f, sheetName, 1, [][]interface{}{
		{"Period", "Satisfied", "Neutral", "Dissatisfied", "Total", "Score"},
	})
	for i, b := range tracking {
		writeRows(f, sheetName, i+2, [][]interface{}{
			{b.Period, b.Satisfied, b.Neutral, b.Dissatisfied, b.Total, b.Score},
		})
	}
	return nil
}

func (s *reportExportService) writeHeatmapSheet(f *excelize.File, hm *models.Heatmap) error {
	sheetName := "Heatmap"
	if _, err := f.NewSheet(sheetName); err != nil {
		return fmt.Errorf("failed to create Excel sheet: %w", err)
	}
	if hm == nil {
		return nil
	}

	f.SetCellValue(sheetName, "A1", fmt.Sprintf("Responses by day and hour (%s)", hm.Timezone))
	for hour := 0; hour < 24; hour++ {
		cell, _ := excelize.CoordinatesToCellName(hour+2, 2)
		f.SetCellValue(sheetName, cell, fmt.Sprintf("%02d:00", hour))
	}
	for day := 0; day < 7; day++ {
		cell, _ := excelize.CoordinatesToCellName(1, day+3)
		f.SetCellValue(sheetName, cell, weekdayNames[day])
		for hour := 0; hour < 24; hour++ {
			cell, _ := excelize.CoordinatesToCellName(hour+2, day+3)
			f.SetCellValue(sheetName, cell, hm.Matrix[day][hour])
		}
	}
	return nil
}

// writeRows writes consecutive rows starting at startRow (1-based).
func writeRows(f *excelize.File, sheetName string, startRow int, rows [][]interface{}) {
	for r, row := range rows {
		for c, value := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, startRow+r)
			f.SetCellValue(sheetName, cell, value)
		}
	}
}

// ReportFilename names the downloaded workbook.
func ReportFilename(surveyID uuid.UUID) string {
	return fmt.Sprintf("survey-analytics-%s-%s.xlsx", surveyID, time.Now().Format("20060102"))
}
