package request

import (
	"encoding/json"
	"testing"

	"cotizador_service/internal/domain/entities"
)

func TestInboundEvent_IsQuotationRequested(t *testing.T) {
	cases := []struct {
		name       string
		source     string
		detailType string
		want       bool
	}{
		{"matching envelope", "prodirtec.cotizaciones.solicitudes", "CotizacionSolicitada", true},
		{"wrong source", "prodirtec.cotizaciones", "CotizacionSolicitada", false},
		{"wrong detail type", "prodirtec.cotizaciones.solicitudes", "CotizacionGenerada", false},
		{"empty envelope", "", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := InboundEvent{Source: tc.source, DetailType: tc.detailType}
			if got := e.IsQuotationRequested(); got != tc.want {
				t.Errorf("IsQuotationRequested() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestInboundEvent_DecodeQuotationRequest(t *testing.T) {
	e := InboundEvent{
		Detail: json.RawMessage(`{"solicitud_id": "r1", "client_id": "c1", "servicio_solicitado": "Pintura", "detalles": "Dos manos"}`),
	}

	req, err := e.DecodeQuotationRequest()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.RequestID != "r1" || req.ClientID != "c1" || req.Service != "Pintura" || req.Details != "Dos manos" {
		t.Errorf("unexpected decoded request: %+v", req)
	}
}

func TestInboundEvent_DecodeQuotationRequest_EmptyDetail(t *testing.T) {
	req, err := InboundEvent{}.DecodeQuotationRequest()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req != (entities.QuotationRequest{}) {
		t.Errorf("expected zero request, got %+v", req)
	}
}

func TestInboundEvent_DecodeQuotationRequest_InvalidDetail(t *testing.T) {
	e := InboundEvent{Detail: json.RawMessage(`{"solicitud_id":`)}
	if _, err := e.DecodeQuotationRequest(); err == nil {
		t.Error("expected error for malformed detail payload")
	}
}
