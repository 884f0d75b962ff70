package render

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

// WritePDF writes v as an A4 report.
func WritePDF(w io.Writer, title string, v View) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(title, true)
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, tr(title))
	pdf.Ln(12)

	if v.Message != nil {
		pdf.SetFont("Arial", "I", 12)
		pdf.MultiCell(0, 8, tr(v.Message.Text), "", "", false)
		return output(pdf, w)
	}

	for _, card := range v.Cards {
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, tr(card.Title))
		pdf.Ln(8)

		pdf.SetFont("Arial", "", 12)
		pdf.MultiCell(0, 6, tr(card.Body), "", "", false)

		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(pdf.GetStringWidth(tr(card.FoundedLabel))+2, 8, tr(card.FoundedLabel), "", 0, "", false, 0, "")
		pdf.SetFont("Arial", "", 12)
		pdf.Cell(0, 8, tr(card.Founded))
		pdf.Ln(8)

		for _, example := range card.Examples {
			pdf.Cell(0, 6, tr(fmt.Sprintf("    - %s", example)))
			pdf.Ln(6)
		}
		if card.Link != nil {
			pdf.SetTextColor(0, 0, 200)
			pdf.CellFormat(0, 8, tr(card.Link.Text), "", 1, "", false, 0, card.Link.URL)
			pdf.SetTextColor(0, 0, 0)
		}
		pdf.Ln(4)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Teams listed: %d", len(v.Cards)))
	return output(pdf, w)
}

func output(pdf *fpdf.Fpdf, w io.Writer) error {
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
