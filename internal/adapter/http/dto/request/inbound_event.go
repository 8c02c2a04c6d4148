package request

import (
	"encoding/json"

	"cotizador_service/internal/domain/entities"
	"cotizador_service/internal/usecase/interfaces"
)

// InboundEvent is the EventBridge envelope delivered to POST /events. The
// field names mirror the envelope EventBridge targets receive, including the
// dashed detail-type key.
type InboundEvent struct {
	Source     string          `json:"source"`
	DetailType string          `json:"detail-type"`
	Detail     json.RawMessage `json:"detail"`
}

// IsQuotationRequested reports whether the envelope is a CotizacionSolicitada
// event from the expected upstream domain.
func (e InboundEvent) IsQuotationRequested() bool {
	return e.Source == interfaces.InboundRequestSource &&
		e.DetailType == interfaces.EventQuotationRequested
}

// DecodeQuotationRequest parses the detail payload into a QuotationRequest.
func (e InboundEvent) DecodeQuotationRequest() (entities.QuotationRequest, error) {
	var req entities.QuotationRequest
	if len(e.Detail) == 0 {
		return req, nil
	}
	if err := json.Unmarshal(e.Detail, &req); err != nil {
		return entities.QuotationRequest{}, err
	}
	return req, nil
}
