package printer

import (
	"bytes"
	"fmt"
	"strings"

	"preplabel-backend/domain"
	"preplabel-backend/pkg/label"
)

// Renderer turns an assembled label into one output encoding. Exactly one
// renderer runs per dispatch.
type Renderer interface {
	ContentType() string
	Render(data label.LabelData, allergens []string) ([]byte, error)
}

func rendererFor(format label.Format) (Renderer, error) {
	switch format {
	case label.FormatGeneric:
		return &genericRenderer{}, nil
	case label.FormatPDF:
		return &pdfRenderer{}, nil
	case label.FormatThermal:
		return &thermalRenderer{}, nil
	default:
		return nil, domain.ErrUnknownLabelFormat
	}
}

const dateLayout = "2006-01-02"

// genericRenderer emits a plain text block usable by any line printer or
// on-screen preview.
type genericRenderer struct{}

func (r *genericRenderer) ContentType() string { return "text/plain" }

func (r *genericRenderer) Render(data label.LabelData, allergens []string) ([]byte, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", strings.ToUpper(data.ProductName))
	if data.CategoryName != "" {
		fmt.Fprintf(&b, "%s", data.CategoryName)
		if data.SubcategoryName != "" {
			fmt.Fprintf(&b, " / %s", data.SubcategoryName)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Condition: %s\n", data.Condition)
	fmt.Fprintf(&b, "Prepared:  %s\n", data.PrepDate.Format(dateLayout))
	fmt.Fprintf(&b, "Use by:    %s\n", data.ExpiryDate.Format(dateLayout))
	if data.Quantity > 0 {
		fmt.Fprintf(&b, "Quantity:  %g %s\n", data.Quantity, data.UnitName)
	}
	if data.BatchNumber != "" {
		fmt.Fprintf(&b, "Batch:     %s\n", data.BatchNumber)
	}
	if len(allergens) > 0 {
		fmt.Fprintf(&b, "ALLERGENS: %s\n", strings.Join(allergens, ", "))
	}
	fmt.Fprintf(&b, "Prepared by: %s\n", data.PreparedByName)
	return []byte(b.String()), nil
}

// pdfRenderer emits a minimal single-page PDF document with the label text
// laid out top to bottom.
type pdfRenderer struct{}

func (r *pdfRenderer) ContentType() string { return "application/pdf" }

func (r *pdfRenderer) Render(data label.LabelData, allergens []string) ([]byte, error) {
	lines := []string{
		data.ProductName,
		fmt.Sprintf("Condition: %s", data.Condition),
		fmt.Sprintf("Prepared: %s", data.PrepDate.Format(dateLayout)),
		fmt.Sprintf("Use by: %s", data.ExpiryDate.Format(dateLayout)),
	}
	if data.CategoryName != "" {
		lines = append(lines, fmt.Sprintf("Category: %s", data.CategoryName))
	}
	if data.BatchNumber != "" {
		lines = append(lines, fmt.Sprintf("Batch: %s", data.BatchNumber))
	}
	if len(allergens) > 0 {
		lines = append(lines, fmt.Sprintf("Allergens: %s", strings.Join(allergens, ", ")))
	}
	lines = append(lines, fmt.Sprintf("Prepared by: %s", data.PreparedByName))

	var content bytes.Buffer
	content.WriteString("BT /F1 12 Tf 40 780 Td 16 TL\n")
	for _, line := range lines {
		fmt.Fprintf(&content, "(%s) Tj T*\n", escapePDFText(line))
	}
	content.WriteString("ET")

	var doc bytes.Buffer
	doc.WriteString("%PDF-1.4\n")
	offsets := make([]int, 0, 5)

	writeObj := func(body string) {
		offsets = append(offsets, doc.Len())
		doc.WriteString(body)
	}

	writeObj("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	writeObj("2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n")
	writeObj("3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>\nendobj\n")
	writeObj(fmt.Sprintf("4 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", content.Len(), content.String()))
	writeObj("5 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n")

	xrefStart := doc.Len()
	fmt.Fprintf(&doc, "xref\n0 %d\n0000000000 65535 f \n", len(offsets)+1)
	for _, offset := range offsets {
		fmt.Fprintf(&doc, "%010d 00000 n \n", offset)
	}
	fmt.Fprintf(&doc, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xrefStart)

	return doc.Bytes(), nil
}

func escapePDFText(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "(", "\\(")
	s = strings.ReplaceAll(s, ")", "\\)")
	return s
}

// thermalRenderer emits a ZPL-style command stream for label printers
// listening on the raw printing port.
type thermalRenderer struct{}

func (r *thermalRenderer) ContentType() string { return "application/octet-stream" }

func (r *thermalRenderer) Render(data label.LabelData, allergens []string) ([]byte, error) {
	var b strings.Builder
	b.WriteString("^XA\n")
	fmt.Fprintf(&b, "^FO30,30^A0N,40,40^FD%s^FS\n", data.ProductName)
	fmt.Fprintf(&b, "^FO30,80^A0N,26,26^FD%s^FS\n", data.Condition)
	fmt.Fprintf(&b, "^FO30,120^A0N,26,26^FDPrep %s^FS\n", data.PrepDate.Format(dateLayout))
	fmt.Fprintf(&b, "^FO30,155^A0N,30,30^FDUSE BY %s^FS\n", data.ExpiryDate.Format(dateLayout))
	if data.BatchNumber != "" {
		fmt.Fprintf(&b, "^FO30,195^A0N,24,24^FDBatch %s^FS\n", data.BatchNumber)
	}
	if len(allergens) > 0 {
		fmt.Fprintf(&b, "^FO30,230^A0N,24,24^FDALLERGENS: %s^FS\n", strings.Join(allergens, ", "))
	}
	fmt.Fprintf(&b, "^FO30,270^A0N,22,22^FDBy %s^FS\n", data.PreparedByName)
	b.WriteString("^XZ\n")
	return []byte(b.String()), nil
}
