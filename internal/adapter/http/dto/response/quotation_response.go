package response

import (
	"time"

	"cotizador_service/internal/domain/entities"
)

// Monetary values serialize as fixed two-decimal strings, replacing the old
// conditional int/float encoding.

type LineItemResponse struct {
	Description string `json:"descripcion"`
	Quantity    string `json:"cantidad"`
	Unit        string `json:"unidad"`
	UnitPrice   string `json:"precio_unitario"`
	Subtotal    string `json:"subtotal"`
}

type QuotationResponse struct {
	QuotationID string             `json:"cotizacion_id"`
	RequestID   string             `json:"solicitud_id"`
	ClientID    string             `json:"client_id"`
	Service     string             `json:"servicio_solicitado"`
	Details     string             `json:"detalles"`
	LineItems   []LineItemResponse `json:"lineas_cotizacion"`
	TotalPrice  string             `json:"total_price"`
	Status      string             `json:"estado"`
	GeneratedAt time.Time          `json:"fecha_generacion"`
	ArtifactURL string             `json:"enlace_pdf_s3,omitempty"`
	Adjustment  map[string]any     `json:"ajuste,omitempty"`
}

// GeneratedResponse is the POST /events success body for a generated
// quotation, matching what the event entrypoint historically returned.
type GeneratedResponse struct {
	QuotationID string `json:"cotizacion_id"`
	ArtifactURL string `json:"enlace_pdf"`
}

func FromQuotation(q entities.Quotation) QuotationResponse {
	lines := make([]LineItemResponse, 0, len(q.LineItems))
	for _, li := range q.LineItems {
		lines = append(lines, LineItemResponse{
			Description: li.Description,
			Quantity:    li.Quantity.StringFixed(2),
			Unit:        li.Unit,
			UnitPrice:   li.UnitPrice.StringFixed(2),
			Subtotal:    li.Subtotal.StringFixed(2),
		})
	}
	return QuotationResponse{
		QuotationID: q.ID,
		RequestID:   q.RequestID,
		ClientID:    q.ClientID,
		Service:     q.Service,
		Details:     q.Details,
		LineItems:   lines,
		TotalPrice:  q.TotalPrice.StringFixed(2),
		Status:      string(q.Status),
		GeneratedAt: q.GeneratedAt,
		ArtifactURL: q.ArtifactURL,
		Adjustment:  q.Adjustment,
	}
}

func FromGenerated(q entities.Quotation) GeneratedResponse {
	return GeneratedResponse{QuotationID: q.ID, ArtifactURL: q.ArtifactURL}
}
