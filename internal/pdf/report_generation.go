package pdf

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"calzone/internal/models"
)

// Generator renders the pipeline report (handy to mock in tests).
type Generator interface {
	GeneratePipelineReport(w io.Writer, data ReportData) error
}

// ReportGenerator is the gofpdf implementation.
type ReportGenerator struct {
	fontName string
}

type ReportData struct {
	GeneratedAt time.Time
	Deals       []models.UnifiedDeal
	Metrics     models.Metrics
}

func NewReportGenerator() *ReportGenerator {
	return &ReportGenerator{fontName: "Helvetica"}
}

func (g *ReportGenerator) GeneratePipelineReport(w io.Writer, data ReportData) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Pipeline Report", false)
	pdf.SetAuthor("Calzone Financial", false)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	// footer must be registered before the first page so auto page breaks
	// in the deals table get it too
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(g.fontName, "", 10)
		pdf.CellFormat(0, 10,
			fmt.Sprintf("Page %d/{nb}", pdf.PageNo()),
			"", 0, "C", false, 0, "",
		)
	})
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 18)
	pdf.CellFormat(0, 10, "SALES PIPELINE REPORT", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 12)
	sub := fmt.Sprintf("Generated %s", data.GeneratedAt.Format("02.01.2006 15:04"))
	pdf.CellFormat(0, 7, sub, "", 1, "C", false, 0, "")
	g.hr(pdf)
	pdf.Ln(3)

	g.sectionTitle(pdf, "Key figures")
	m := data.Metrics
	g.kvLine(pdf, "Total pipeline value", fmt.Sprintf("%.2f", m.TotalValue))
	g.kvLine(pdf, "Active deals", fmt.Sprintf("%d", m.TotalCount))
	g.kvLine(pdf, "Avg deal size", fmt.Sprintf("%.0f", m.AvgDealSize))
	g.kvLine(pdf, "Closed won", fmt.Sprintf("%d", m.ClosedWonCount))
	g.kvLine(pdf, "Win rate", fmt.Sprintf("%.1f%%", m.WinRatePercent))
	pdf.Ln(2)
	g.hr(pdf)

	g.sectionTitle(pdf, "Pipeline by stage")
	for _, slice := range m.StageDistribution {
		g.kvLine(pdf, slice.Name, fmt.Sprintf("%d deals (%.0f%%)", slice.Deals, slice.Value))
	}
	pdf.Ln(2)
	g.hr(pdf)

	g.sectionTitle(pdf, "Deals")
	g.dealHeader(pdf)
	pdf.SetFont(g.fontName, "", 9)
	for _, d := range data.Deals {
		g.dealRow(pdf, d)
	}

	return pdf.Output(w)
}

func (g *ReportGenerator) sectionTitle(pdf *gofpdf.Fpdf, s string) {
	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 7, s, "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
}

func (g *ReportGenerator) kvLine(pdf *gofpdf.Fpdf, key, val string) {
	pdf.SetFont(g.fontName, "B", 11)
	pdf.CellFormat(55, 6, key+":", "", 0, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, val, "", 1, "L", false, 0, "")
}

func (g *ReportGenerator) hr(pdf *gofpdf.Fpdf) {
	y := pdf.GetY() + 1.5
	pdf.SetLineWidth(0.2)
	pdf.Line(20, y, 190, y)
	pdf.SetY(y + 2)
}

func (g *ReportGenerator) dealHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFont(g.fontName, "B", 9)
	pdf.CellFormat(55, 6, "Deal", "B", 0, "L", false, 0, "")
	pdf.CellFormat(45, 6, "Customer", "B", 0, "L", false, 0, "")
	pdf.CellFormat(25, 6, "Amount", "B", 0, "R", false, 0, "")
	pdf.CellFormat(30, 6, "Stage", "B", 0, "L", false, 0, "")
	pdf.CellFormat(15, 6, "Prob.", "B", 1, "R", false, 0, "")
}

func (g *ReportGenerator) dealRow(pdf *gofpdf.Fpdf, d models.UnifiedDeal) {
	pdf.CellFormat(55, 6, truncate(d.Name, 36), "", 0, "L", false, 0, "")
	pdf.CellFormat(45, 6, truncate(d.Customer, 30), "", 0, "L", false, 0, "")
	pdf.CellFormat(25, 6, fmt.Sprintf("%.2f", d.Amount.Float64()), "", 0, "R", false, 0, "")
	pdf.CellFormat(30, 6, d.Stage, "", 0, "L", false, 0, "")
	pdf.CellFormat(15, 6, fmt.Sprintf("%d%%", d.Probability), "", 1, "R", false, 0, "")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "..."
}
