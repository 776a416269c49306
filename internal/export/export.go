package export

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	qrcode "github.com/skip2/go-qrcode"
	"github.com/xuri/excelize/v2"
)

// Localizer resolves message IDs and formats numbers for a language.
type Localizer interface {
	T(lang, id string, data map[string]any) string
	Number(lang string, v float64, decimals int) string
}

// Document is a saved calculation ready to be rendered.
type Document struct {
	Kind      string
	Title     string
	CreatedAt time.Time
	ShareURL  string
	Rows      []Row
}

const (
	qrSize    = 256
	sheetName = "Estimate"
)

// Text renders doc as plain text for messengers and e-mail.
func Text(l Localizer, lang string, doc Document) string {
	var b strings.Builder

	if doc.Title != "" {
		b.WriteString(doc.Title)
		b.WriteString("\n")
	}
	b.WriteString(l.T(lang, "kind_"+doc.Kind, nil))
	b.WriteString("\n\n")

	for _, row := range doc.Rows {
		fmt.Fprintf(&b, "%s: %s %s\n",
			l.T(lang, row.Label, row.LabelData),
			l.Number(lang, row.Value, row.Decimals),
			l.T(lang, row.Unit, nil),
		)
	}

	if !doc.CreatedAt.IsZero() {
		b.WriteString("\n")
		b.WriteString(l.T(lang, "share_saved_at", map[string]any{"Date": doc.CreatedAt.Format("2006-01-02 15:04")}))
		b.WriteString("\n")
	}
	if doc.ShareURL != "" {
		b.WriteString(l.T(lang, "share_link", map[string]any{"URL": doc.ShareURL}))
		b.WriteString("\n")
	}

	return b.String()
}

// XLSX writes doc as a one-sheet workbook.
func XLSX(w io.Writer, l Localizer, lang string, doc Document) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	title := l.T(lang, "kind_"+doc.Kind, nil)
	if doc.Title != "" {
		title = doc.Title + ". " + title
	}

	cells := [][]any{
		{title},
		{l.T(lang, "sheet_parameter", nil), l.T(lang, "sheet_value", nil), l.T(lang, "sheet_unit", nil)},
	}
	for _, row := range doc.Rows {
		cells = append(cells, []any{
			l.T(lang, row.Label, row.LabelData),
			roundTo(row.Value, row.Decimals),
			l.T(lang, row.Unit, nil),
		})
	}
	if doc.ShareURL != "" {
		cells = append(cells, []any{doc.ShareURL})
	}

	for i, row := range cells {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("cell reference: %w", err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err := f.SetColWidth(sheetName, "A", "A", 42); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}
	if err := f.SetColWidth(sheetName, "B", "C", 14); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// QR encodes url as a PNG QR code.
func QR(url string) ([]byte, error) {
	png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}
	return png, nil
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
