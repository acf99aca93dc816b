// Package report renders restock reports as printable documents.
package report

import (
	"bytes"
	"fmt"

	"github.com/fekuna/secure-duka/internal/forecast"
	"github.com/jung-kurt/gofpdf"
)

const timestampLayout = "2006-01-02 15:04 MST"

// RenderRestockPDF writes report as a single A4 table, one row per flagged
// product.
func RenderRestockPDF(report *forecast.RestockReport, daysThreshold int) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)

	pdf.CellFormat(0, 10, "Restock Report", "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Generated: %s", report.ReportGeneratedAt.Format(timestampLayout)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Items monitored: %d", report.TotalItemsMonitored), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Threshold: %d days", daysThreshold), "", 1, "L", false, 0, "")
	pdf.Ln(5)

	if len(report.UrgentRestocks) == 0 {
		pdf.CellFormat(0, 10, "No products need restocking.", "", 1, "L", false, 0, "")
		return output(pdf)
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(20, 10, "ID", "1", 0, "C", false, 0, "")
	pdf.CellFormat(70, 10, "Product", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 10, "Stock", "1", 0, "C", false, 0, "")
	pdf.CellFormat(35, 10, "Days Left", "1", 0, "C", false, 0, "")
	pdf.CellFormat(35, 10, "Status", "1", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	for _, item := range report.UrgentRestocks {
		pdf.CellFormat(20, 10, fmt.Sprintf("%d", item.ProductID), "1", 0, "C", false, 0, "")
		pdf.CellFormat(70, 10, item.Product, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 10, fmt.Sprintf("%d", item.CurrentStock), "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 10, fmt.Sprintf("%.1f", item.DaysRemaining), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 10, string(item.Status), "1", 1, "C", false, 0, "")
	}
	return output(pdf)
}

func output(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
