package export

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"dmsanalytics/internal/analytics"
	"dmsanalytics/internal/model"
)

// DefaultReportTitle is used when a PDFReport has no title.
const DefaultReportTitle = "DMS Analytics Report"

// ReportFilename names a PDF report generated at now.
func ReportFilename(now time.Time) string {
	return fmt.Sprintf("dms_analytics_report_%s.pdf", now.Format("20060102_150405"))
}

// PDFReport renders a snapshot as a paginated PDF: a cover page with the key metrics
// followed by one page per analytics section. Every page carries the title header and
// a "Page N" footer.
type PDFReport struct {
	Title    string
	Location *time.Location

	// uncompressed leaves content streams readable; tests search the output for text.
	uncompressed bool
}

// Render writes the report for s generated at now to w.
func (r PDFReport) Render(w io.Writer, s *model.Snapshot, now time.Time) error {
	title := r.Title
	if title == "" {
		title = DefaultReportTitle
	}
	if r.Location != nil {
		now = now.In(r.Location)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(!r.uncompressed)
	pdf.SetTitle(title, true)
	pdf.SetCreationDate(now)
	pdf.SetAutoPageBreak(true, 20)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Arial", "B", 15)
		pdf.CellFormat(0, 10, tr(title), "", 1, "C", false, 0, "")
		pdf.Ln(5)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, tr(title), "", 1, "C", false, 0, "")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 10, "Generated on: "+now.Format(TimestampLayout), "", 1, "L", false, 0, "")
	pdf.Ln(10)

	chapterTitle(pdf, tr, "Key Metrics")
	metricsTable(pdf, tr, MetricsTable(analytics.ComputeKeyMetrics(s, now)))

	for _, sec := range ReportSections(s) {
		pdf.AddPage()
		chapterTitle(pdf, tr, sec.Title)
		pdf.SetFont("Arial", "", 12)
		pdf.MultiCell(0, 10, tr(sec.Body), "", "L", false)
		pdf.Ln(5)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

func chapterTitle(pdf *fpdf.Fpdf, tr func(string) string, title string) {
	pdf.SetFont("Arial", "B", 12)
	pdf.SetFillColor(200, 220, 255)
	pdf.CellFormat(0, 6, tr(title), "", 1, "L", true, 0, "")
	pdf.Ln(4)
}

func metricsTable(pdf *fpdf.Fpdf, tr func(string) string, rows [][]string) {
	pageW, _ := pdf.GetPageSize()
	colW := pageW / 2.5
	_, unit := pdf.GetFontSize()
	rowH := unit * 2

	for i, row := range rows {
		if i == 0 {
			pdf.SetFont("Arial", "B", 12)
		} else {
			pdf.SetFont("Arial", "", 12)
		}
		for _, cell := range row {
			pdf.CellFormat(colW, rowH, tr(cell), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(rowH)
	}
}
