package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"goods/internal/domain"
	"goods/internal/domain/models"
	"goods/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// ReportService renders a page of goods as a PDF status sheet.
type ReportService struct {
	RequestID string
	Now       func() time.Time
}

func (s ReportService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// GoodsReport returns the PDF bytes and a download filename.
func (s ReportService) GoodsReport(f domain.GoodsFilter, goods []models.Good) ([]byte, string, error) {
	generated := s.now()

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Goods status report", false)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "GOODS STATUS")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, "Generated : "+generated.Format("2006-01-02 15:04"))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr("Search    : "+safe(f.Search, "(all)")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Page      : limit %d, offset %d", f.Limit, f.Offset))
	pdf.Ln(10)

	widths := []float64{25, 125, 40}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range []string{"ID", "Name", "Status"} {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 11)
	if len(goods) == 0 {
		pdf.CellFormat(widths[0]+widths[1]+widths[2], 8, "No goods to display.", "1", 1, "C", false, 0, "")
	}
	locked := 0
	for _, g := range goods {
		if g.Status == models.StatusLocked {
			locked++
		}
		pdf.CellFormat(widths[0], 7, fmt.Sprintf("%d", g.ID), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, tr(truncate(g.Name, 70)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 7, string(g.Status), "1", 1, "L", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.Cell(0, 6, fmt.Sprintf("%d goods on this page, %d locked, %d unlocked.", len(goods), locked, len(goods)-locked))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	utils.LogEvent(s.RequestID, "report", "goods_pdf", fmt.Sprintf("rows=%d bytes=%d", len(goods), buf.Len()))
	filename := fmt.Sprintf("GOODS_%s.pdf", generated.Format("20060102_150405"))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
