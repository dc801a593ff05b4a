package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"

	"insightagent/applog"
)

const chartImageWidthMM = 170

// BuildPDF renders the document as a PDF. When either font file is
// missing the whole document is skipped and a warning returned instead
// of a partial output. Per-chart failures become inline text lines,
// never abort the document.
func BuildPDF(doc *Document, fontRegular, fontBold string) (pdfBytes []byte, warning string, err error) {
	for _, path := range []string{fontRegular, fontBold} {
		if _, statErr := os.Stat(path); statErr != nil {
			warning = fmt.Sprintf("pdf generation skipped: font file %s not found", path)
			applog.Warn(warning)
			return nil, warning, nil
		}
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddUTF8Font("DejaVu", "", fontRegular)
	pdf.AddUTF8Font("DejaVu", "B", fontBold)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("DejaVu", "B", 20)
	pdf.CellFormat(0, 12, "Data Analysis Report", "", 1, "C", false, 0, "")
	pdf.SetFont("DejaVu", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Dataset: %s | Role: %s | Tone: %s", doc.DatasetName, doc.Role, doc.Tone), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	for _, sec := range doc.Sections() {
		writeSectionHeader(pdf, sec.Title)
		pdf.SetFont("DejaVu", "", 12)
		if sec.Paragraph != "" {
			pdf.MultiCell(0, 6, sec.Paragraph, "", "L", false)
		}
		for _, item := range sec.Bullets {
			pdf.MultiCell(0, 6, "• "+item, "", "L", false)
		}
		pdf.Ln(3)
	}

	writeSectionHeader(pdf, "Charts")
	for _, cv := range doc.Charts {
		writeChart(pdf, cv)
	}

	if doc.Regression != nil {
		writeSectionHeader(pdf, "Regression")
		writeChart(pdf, *doc.Regression)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("pdf output failed: %w", err)
	}
	return buf.Bytes(), "", nil
}

func writeSectionHeader(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("DejaVu", "B", 16)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
}

// writeChart embeds one static chart render. The PNG goes through a
// uuid-named temp file which is removed before returning, even when the
// embed fails partway.
func writeChart(pdf *fpdf.Fpdf, cv ChartView) {
	pdf.SetFont("DejaVu", "B", 12)
	pdf.CellFormat(0, 8, cv.Title, "", 1, "L", false, 0, "")

	if cv.Err != "" || len(cv.PNG) == 0 {
		reason := cv.Err
		if reason == "" {
			reason = "no image produced"
		}
		pdf.SetFont("DejaVu", "", 11)
		pdf.MultiCell(0, 6, "chart could not be rendered: "+reason, "", "L", false)
		pdf.Ln(2)
		return
	}

	tmp := filepath.Join(os.TempDir(), uuid.NewString()+".png")
	if err := os.WriteFile(tmp, cv.PNG, 0o600); err != nil {
		pdf.SetFont("DejaVu", "", 11)
		pdf.MultiCell(0, 6, "chart could not be embedded: "+err.Error(), "", "L", false)
		return
	}
	defer os.Remove(tmp)

	pdf.ImageOptions(tmp, (210-chartImageWidthMM)/2, -1, chartImageWidthMM, 0, true,
		fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	pdf.Ln(4)
}
