package services

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"

	"qc-backend/internal/models"
	"qc-backend/internal/repositories"
	"qc-backend/internal/timeutil"

	"github.com/jung-kurt/gofpdf/v2"
)

// ReportService builds the KPI views for the reports screen and exports
// them as CSV, PDF and a zipped bundle.
type ReportService struct {
	InspectionRepo *repositories.InspectionRepository
	HoldRepo       *repositories.HoldRepository
	Queue          *QueueService
	QueueRepo      *repositories.QueueRepository
}

func NewReportService(
	inspectionRepo *repositories.InspectionRepository,
	holdRepo *repositories.HoldRepository,
	queue *QueueService,
	queueRepo *repositories.QueueRepository,
) *ReportService {
	return &ReportService{
		InspectionRepo: inspectionRepo,
		HoldRepo:       holdRepo,
		Queue:          queue,
		QueueRepo:      queueRepo,
	}
}

// KPISummary aggregates inspection outcomes, hold counts and current queue
// state into one report payload.
func (s *ReportService) KPISummary() *models.KPISummary {
	records := s.InspectionRepo.List()

	byItem := make(map[string]*models.ItemKPI)
	byLine := make(map[string]*models.LineKPI)
	completed, oos := 0, 0

	for _, rec := range records {
		item, ok := byItem[rec.ItemCode]
		if !ok {
			item = &models.ItemKPI{ItemCode: rec.ItemCode}
			byItem[rec.ItemCode] = item
		}
		line, ok := byLine[rec.Line]
		if !ok {
			line = &models.LineKPI{Line: rec.Line}
			byLine[rec.Line] = line
		}

		item.Inspections++
		line.Inspections++
		if rec.Status == "oos" {
			oos++
			item.OOS++
			line.OOS++
		} else {
			completed++
		}
	}

	summary := &models.KPISummary{
		GeneratedAt:      timeutil.Now(),
		TotalInspections: len(records),
		Completed:        completed,
		OOS:              oos,
		MissedQueueItems: s.Queue.MissedCount(),
		ActiveLocks:      s.QueueRepo.ActiveLocks(),
	}
	summary.ActiveHolds, summary.ReleasedHolds = s.HoldRepo.CountByStatus()

	if len(records) > 0 {
		summary.FirstPassYield = float64(completed) / float64(len(records)) * 100
	}

	for _, item := range byItem {
		if item.Inspections > 0 {
			item.YieldPct = float64(item.Inspections-item.OOS) / float64(item.Inspections) * 100
		}
		summary.ByItem = append(summary.ByItem, *item)
	}
	sort.Slice(summary.ByItem, func(i, j int) bool { return summary.ByItem[i].ItemCode < summary.ByItem[j].ItemCode })

	for _, line := range byLine {
		summary.ByLine = append(summary.ByLine, *line)
	}
	sort.Slice(summary.ByLine, func(i, j int) bool { return summary.ByLine[i].Line < summary.ByLine[j].Line })

	return summary
}

// InspectionsCSV renders all inspection records as CSV.
func (s *ReportService) InspectionsCSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"id", "queue_item", "item_code", "line", "batch_lot", "work_order", "status", "submitted_at", "submitted_by"}); err != nil {
		return nil, err
	}
	for _, rec := range s.InspectionRepo.List() {
		row := []string{
			rec.ID, rec.QueueItemID, rec.ItemCode, rec.Line, rec.BatchLot,
			rec.WorkOrder, rec.Status,
			timeutil.FormatMYT(rec.SubmittedAt, timeutil.DateTimeLayout),
			rec.SubmittedBy,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// HoldsCSV renders all holds as CSV.
func (s *ReportService) HoldsCSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"id", "inspection_id", "reason", "status", "created_at", "created_by"}); err != nil {
		return nil, err
	}
	for _, h := range s.HoldRepo.List() {
		row := []string{
			h.ID, h.InspectionID, h.Reason, h.Status,
			timeutil.FormatMYT(h.CreatedAt, timeutil.DateTimeLayout),
			h.CreatedBy,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// KPIPDF renders the KPI summary as a printable PDF.
func (s *ReportService) KPIPDF() ([]byte, error) {
	summary := s.KPISummary()

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "QC KPI Report")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 8, "Generated: "+timeutil.FormatMYT(summary.GeneratedAt, timeutil.DisplayLayout))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Summary")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)

	rows := [][2]string{
		{"Total inspections", strconv.Itoa(summary.TotalInspections)},
		{"Completed", strconv.Itoa(summary.Completed)},
		{"Out of spec", strconv.Itoa(summary.OOS)},
		{"First pass yield", fmt.Sprintf("%.1f%%", summary.FirstPassYield)},
		{"Active holds", strconv.Itoa(summary.ActiveHolds)},
		{"Released holds", strconv.Itoa(summary.ReleasedHolds)},
		{"Missed queue items", strconv.Itoa(summary.MissedQueueItems)},
		{"Active locks", strconv.Itoa(summary.ActiveLocks)},
	}
	for _, row := range rows {
		pdf.Cell(60, 6, row[0])
		pdf.Cell(0, 6, row[1])
		pdf.Ln(6)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "By Item")
	pdf.Ln(8)
	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(50, 6, "Item")
	pdf.Cell(35, 6, "Inspections")
	pdf.Cell(25, 6, "OOS")
	pdf.Cell(30, 6, "Yield")
	pdf.Ln(6)
	pdf.SetFont("Arial", "", 10)
	for _, item := range summary.ByItem {
		pdf.Cell(50, 6, item.ItemCode)
		pdf.Cell(35, 6, strconv.Itoa(item.Inspections))
		pdf.Cell(25, 6, strconv.Itoa(item.OOS))
		pdf.Cell(30, 6, fmt.Sprintf("%.1f%%", item.YieldPct))
		pdf.Ln(6)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "By Line")
	pdf.Ln(8)
	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(50, 6, "Line")
	pdf.Cell(35, 6, "Inspections")
	pdf.Cell(25, 6, "OOS")
	pdf.Ln(6)
	pdf.SetFont("Arial", "", 10)
	for _, line := range summary.ByLine {
		pdf.Cell(50, 6, line.Line)
		pdf.Cell(35, 6, strconv.Itoa(line.Inspections))
		pdf.Cell(25, 6, strconv.Itoa(line.OOS))
		pdf.Ln(6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render KPI pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// Bundle zips the CSV exports into one archive.
func (s *ReportService) Bundle() ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	files := []struct {
		name string
		data func() ([]byte, error)
	}{
		{"inspections.csv", s.InspectionsCSV},
		{"holds.csv", s.HoldsCSV},
	}
	for _, f := range files {
		data, err := f.data()
		if err != nil {
			return nil, err
		}
		w, err := zw.Create(f.name)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(data); err != nil {
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
