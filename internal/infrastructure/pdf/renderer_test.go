package pdf

import (
	"testing"
	"time"

	"cotizador_service/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuotation() entities.Quotation {
	return entities.Quotation{
		ID:        "q-1",
		RequestID: "r-1",
		ClientID:  "c-1",
		Service:   "Pintura",
		Details:   "Servicio estándar",
		LineItems: []entities.LineItem{
			{
				Description: "Servicio: Pintura",
				Quantity:    decimal.NewFromInt(1),
				Unit:        "Unid.",
				UnitPrice:   decimal.NewFromInt(5000),
				Subtotal:    decimal.NewFromInt(5000),
			},
			{
				Description: "Margen/Gestión",
				Quantity:    decimal.NewFromInt(1),
				Unit:        "Unid.",
				UnitPrice:   decimal.NewFromInt(1000),
				Subtotal:    decimal.NewFromInt(1000),
			},
		},
		TotalPrice:  decimal.NewFromInt(6000),
		Status:      entities.QuotationStatusGenerated,
		GeneratedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestRenderer_Render(t *testing.T) {
	out, err := NewRenderer().Render(sampleQuotation())

	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRenderer_RenderIsReproducible(t *testing.T) {
	q := sampleQuotation()
	r := NewRenderer()

	first, err := r.Render(q)
	require.NoError(t, err)
	second, err := r.Render(q)
	require.NoError(t, err)

	assert.Equal(t, first, second, "same quotation must render to identical bytes")
}

func TestRenderer_RenderWithoutLineItems(t *testing.T) {
	q := sampleQuotation()
	q.LineItems = nil

	out, err := NewRenderer().Render(q)

	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestRenderer_Metadata(t *testing.T) {
	r := NewRenderer()
	assert.Equal(t, "application/pdf", r.ContentType())
	assert.Equal(t, "pdf", r.FileExtension())
}
