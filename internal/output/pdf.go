package output

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pjaos/retirement-finances-sub000/internal/domain"
)

// Page geometry for the landscape A4 report, in millimetres.
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 12.0
	marginRight  = 12.0
	marginTop    = 12.0
	marginBottom = 15.0
	contentWidth = pageWidth - marginLeft - marginRight
	rowHeight    = 5.0
)

// pdfText converts UTF-8 text to the Latin-1 encoding used by the core PDF fonts.
func pdfText(s string) string {
	return strings.ReplaceAll(s, "£", "\xa3")
}

// PDFFormatter renders a projection as a printable report.
type PDFFormatter struct {
	// Now stamps the report; zero means time.Now.
	Now time.Time
}

func (f PDFFormatter) Name() string { return "pdf" }

func (f PDFFormatter) Format(p *domain.Projection) ([]byte, error) {
	now := f.Now
	if now.IsZero() {
		now = time.Now()
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-10)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(contentWidth, 5, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 18)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(contentWidth, 10, "Retirement Finances Projection", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "I", 9)
	pdf.SetTextColor(80, 80, 80)
	pdf.CellFormat(contentWidth, 6, fmt.Sprintf("Generated: %s", now.Format("2 January 2006")), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(50, 50, 50)
	for _, line := range summaryLines(p) {
		pdf.CellFormat(contentWidth, rowHeight, pdfText(line), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	cols := rowColumns(p)
	writePDFTable(pdf, headers(cols), p.Len(), func(i int) []string { return cells(cols, i) })

	if len(p.TaxYears) > 0 {
		pdf.AddPage()
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(0, 51, 102)
		pdf.CellFormat(contentWidth, 8, "Tax years", "", 1, "L", false, 0, "")
		header := []string{"Tax year", "Owner", "Taxable", "Tax", "NI", "Monthly tax"}
		writePDFTable(pdf, header, len(p.TaxYears), func(i int) []string {
			s := p.TaxYears[i]
			return []string{s.TaxYear, string(s.Owner), money(s.Taxable), money(s.Tax), money(s.NI), money(s.MonthlyTax)}
		})
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writePDFTable draws a striped table, repeating the header on each new page.
func writePDFTable(pdf *fpdf.Fpdf, header []string, n int, row func(i int) []string) {
	width := contentWidth / float64(len(header))
	drawHeader := func() {
		pdf.SetFont("Arial", "B", 8)
		pdf.SetFillColor(0, 51, 102)
		pdf.SetTextColor(255, 255, 255)
		for _, h := range header {
			pdf.CellFormat(width, rowHeight+1, h, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 8)
		pdf.SetTextColor(50, 50, 50)
	}

	drawHeader()
	for i := 0; i < n; i++ {
		if pdf.GetY()+rowHeight > pageHeight-marginBottom {
			pdf.AddPage()
			drawHeader()
		}
		fill := i%2 == 1
		pdf.SetFillColor(245, 247, 250)
		for j, cell := range row(i) {
			align := "R"
			if j == 0 {
				align = "L"
			}
			pdf.CellFormat(width, rowHeight, pdfText(cell), "LR", 0, align, fill, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.CellFormat(width*float64(len(header)), 0, "", "T", 1, "", false, 0, "")
}
