package export

import (
	"bytes"

	"github.com/Ritik8097/EmployeeTask/internal/task"
	"github.com/jung-kurt/gofpdf"
)

// Column widths in mm; A4 landscape leaves ~277mm of printable width.
var columnWidths = []float64{38, 44, 55, 22, 18, 22, 30, 26, 22}

func renderDocument(tasks []task.TaskWithOwner) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 12)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Task Report", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	writeHeaderRow(pdf)

	pdf.SetFont("Arial", "", 7)
	for _, t := range tasks {
		if pdf.GetY() > 185 {
			pdf.AddPage()
			writeHeaderRow(pdf)
			pdf.SetFont("Arial", "", 7)
		}
		for i, v := range rowValues(t) {
			pdf.CellFormat(columnWidths[i], 6, truncate(v, 40), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeHeaderRow(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Arial", "B", 7)
	pdf.SetFillColor(230, 230, 230)
	for i, c := range columns {
		pdf.CellFormat(columnWidths[i], 7, c, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
