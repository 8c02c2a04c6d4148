package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuotationStatus represents the lifecycle of a quotation (cotización).
//
// Domain notes:
//   - The cotizador service is the source of truth for quotation state.
//   - There is no persisted "requested" state: a CotizacionSolicitada event is the
//     trigger, and the first stored state is always GENERADA.
//   - Wire values stay in Spanish for compatibility with the existing table and
//     downstream EventBridge consumers.

type QuotationStatus string

const (
	QuotationStatusGenerated QuotationStatus = "GENERADA"
	QuotationStatusAdjusted  QuotationStatus = "AJUSTADA"
	QuotationStatusApproved  QuotationStatus = "APROBADA"
)

// statusTransitions is the explicit transition table. An approved quotation may
// still be re-adjusted or re-approved; callers that want APROBADA to be terminal
// enforce that with CanTransition(strict=true).
var statusTransitions = map[QuotationStatus]map[QuotationStatus]bool{
	QuotationStatusGenerated: {
		QuotationStatusAdjusted: true,
		QuotationStatusApproved: true,
	},
	QuotationStatusAdjusted: {
		QuotationStatusAdjusted: true,
		QuotationStatusApproved: true,
	},
	QuotationStatusApproved: {
		QuotationStatusAdjusted: true,
		QuotationStatusApproved: true,
	},
}

// CanTransition reports whether moving from s to target is allowed. In strict
// mode APROBADA is terminal; otherwise the table above applies as-is.
func (s QuotationStatus) CanTransition(target QuotationStatus, strict bool) bool {
	if strict && s == QuotationStatusApproved {
		return false
	}
	allowed, ok := statusTransitions[s]
	if !ok {
		return false
	}
	return allowed[target]
}

// LineItem is one priced component of a quotation. Insertion order is
// significant: the PDF renders items in slice order.
//
// Invariant: Subtotal == Quantity * UnitPrice. The pricing engine is the only
// producer of line items and keeps the stored subtotal consistent.
type LineItem struct {
	Description string          `json:"descripcion"`
	Quantity    decimal.Decimal `json:"cantidad"`
	Unit        string          `json:"unidad"`
	UnitPrice   decimal.Decimal `json:"precio_unitario"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// Quotation is the priced offer persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: cotizacion_id
//
// Monetary representation:
//   - decimal.Decimal everywhere; TotalPrice equals the sum of line subtotals.
//
// ArtifactURL stays empty until the PDF has been rendered and uploaded; a record
// without it is a valid GENERADA quotation whose document step failed.
type Quotation struct {
	ID          string          `json:"cotizacion_id"`
	RequestID   string          `json:"solicitud_id"`
	ClientID    string          `json:"client_id"`
	Service     string          `json:"servicio_solicitado"`
	Details     string          `json:"detalles"`
	LineItems   []LineItem      `json:"lineas_cotizacion"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	Status      QuotationStatus `json:"estado"`
	GeneratedAt time.Time       `json:"fecha_generacion"`
	ArtifactURL string          `json:"enlace_pdf_s3,omitempty"`
	Adjustment  map[string]any  `json:"ajuste,omitempty"`
}
