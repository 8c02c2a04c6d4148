package entities

import (
	"errors"
	"strings"
)

var ErrIncompleteRequest = errors.New("incomplete quotation request")

// DefaultDetails is used when the requester omits free-text details.
const DefaultDetails = "Servicio estándar"

// QuotationRequest is the inbound CotizacionSolicitada payload. It is supplied
// by an external requester and consumed exactly once by the generate operation.
type QuotationRequest struct {
	RequestID string `json:"solicitud_id"`
	ClientID  string `json:"client_id"`
	Service   string `json:"servicio_solicitado"`
	Details   string `json:"detalles,omitempty"`
}

// Normalize trims identifier fields and applies the default details text.
func (r QuotationRequest) Normalize() QuotationRequest {
	r.RequestID = strings.TrimSpace(r.RequestID)
	r.ClientID = strings.TrimSpace(r.ClientID)
	r.Service = strings.TrimSpace(r.Service)
	if strings.TrimSpace(r.Details) == "" {
		r.Details = DefaultDetails
	}
	return r
}

// Validate checks the required fields. It expects a normalized request.
func (r QuotationRequest) Validate() error {
	if r.RequestID == "" || r.ClientID == "" || r.Service == "" {
		return ErrIncompleteRequest
	}
	return nil
}
