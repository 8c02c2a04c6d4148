package interfaces

import "context"

// Event source tags and detail types on the bus. Values stay in Spanish:
// upstream producers and downstream consumers already match on them.
const (
	OutboundSource       = "prodirtec.cotizaciones"
	InboundRequestSource = "prodirtec.cotizaciones.solicitudes"

	EventQuotationRequested = "CotizacionSolicitada"
	EventQuotationGenerated = "CotizacionGenerada"
	EventQuotationAdjusted  = "CotizacionAjustada"
	EventQuotationApproved  = "CotizacionAprobada"
)

// IEventPublisher abstracts the event bus (e.g. EventBridge). Implementations
// publish with the fixed OutboundSource tag.
type IEventPublisher interface {
	Publish(ctx context.Context, detailType string, detail map[string]any) error
}
