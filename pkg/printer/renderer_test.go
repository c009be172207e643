package printer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"preplabel-backend/domain"
	"preplabel-backend/pkg/label"
)

func sampleLabelData() label.LabelData {
	return label.LabelData{
		ProductName:    "Tomato Soup",
		CategoryName:   "Soups",
		Condition:      label.ConditionCooked,
		PrepDate:       time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC),
		ExpiryDate:     time.Date(2025, time.June, 13, 0, 0, 0, 0, time.UTC),
		Quantity:       2,
		UnitName:       "l",
		BatchNumber:    "B-42",
		PreparedByName: "Alex",
	}
}

func TestRendererFor(t *testing.T) {
	tests := []struct {
		format      label.Format
		contentType string
	}{
		{label.FormatGeneric, "text/plain"},
		{label.FormatPDF, "application/pdf"},
		{label.FormatThermal, "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			renderer, err := rendererFor(tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.contentType, renderer.ContentType())
		})
	}

	t.Run("unknown format", func(t *testing.T) {
		_, err := rendererFor("dymo")
		assert.ErrorIs(t, err, domain.ErrUnknownLabelFormat)
	})
}

func TestGenericRenderer(t *testing.T) {
	out, err := (&genericRenderer{}).Render(sampleLabelData(), []string{"celery", "gluten"})
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "TOMATO SOUP")
	assert.Contains(t, text, "Use by:    2025-06-13")
	assert.Contains(t, text, "ALLERGENS: celery, gluten")
	assert.Contains(t, text, "Batch:     B-42")
	assert.Contains(t, text, "Prepared by: Alex")
}

func TestGenericRendererOmitsEmptySections(t *testing.T) {
	data := sampleLabelData()
	data.BatchNumber = ""
	data.Quantity = 0

	out, err := (&genericRenderer{}).Render(data, nil)
	require.NoError(t, err)

	text := string(out)
	assert.NotContains(t, text, "Batch:")
	assert.NotContains(t, text, "Quantity:")
	assert.NotContains(t, text, "ALLERGENS:")
}

func TestPDFRendererEmitsValidSkeleton(t *testing.T) {
	out, err := (&pdfRenderer{}).Render(sampleLabelData(), []string{"celery"})
	require.NoError(t, err)

	doc := string(out)
	assert.True(t, len(doc) > 0)
	assert.Equal(t, "%PDF-1.4\n", doc[:9])
	assert.Contains(t, doc, "(Tomato Soup) Tj")
	assert.Contains(t, doc, "trailer")
	assert.Contains(t, doc, "%%EOF")
}

func TestPDFRendererEscapesParentheses(t *testing.T) {
	data := sampleLabelData()
	data.ProductName = "Beef (diced)"

	out, err := (&pdfRenderer{}).Render(data, nil)
	require.NoError(t, err)

	assert.Contains(t, string(out), `(Beef \(diced\)) Tj`)
}

func TestThermalRendererCommandStream(t *testing.T) {
	out, err := (&thermalRenderer{}).Render(sampleLabelData(), []string{"celery"})
	require.NoError(t, err)

	stream := string(out)
	assert.Contains(t, stream, "^XA")
	assert.Contains(t, stream, "^FDTomato Soup^FS")
	assert.Contains(t, stream, "^FDUSE BY 2025-06-13^FS")
	assert.Contains(t, stream, "ALLERGENS: celery")
	assert.Contains(t, stream, "^XZ")
}
