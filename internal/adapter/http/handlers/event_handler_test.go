package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cotizador_service/internal/adapter/http/handlers/mocks"
	"cotizador_service/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newEventRouter(h *EventHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/events", h.HandleEvent)
	return r
}

func postEvent(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/events", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestEventHandler_HandleEvent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("quotation requested triggers generate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		r := newEventRouter(NewEventHandler(uc))

		uc.EXPECT().Generate(gomock.Any(), entities.QuotationRequest{
			RequestID: "r1",
			ClientID:  "c1",
			Service:   "Consulting",
		}).Return(entities.Quotation{
			ID:          "q-1",
			Status:      entities.QuotationStatusGenerated,
			ArtifactURL: "https://bucket.s3.us-east-1.amazonaws.com/cotizaciones/q-1.pdf",
		}, nil)

		w := postEvent(r, `{
			"source": "prodirtec.cotizaciones.solicitudes",
			"detail-type": "CotizacionSolicitada",
			"detail": {"solicitud_id": "r1", "client_id": "c1", "servicio_solicitado": "Consulting"}
		}`)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["cotizacion_id"] != "q-1" || body["enlace_pdf"] == "" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("unknown source", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		r := newEventRouter(NewEventHandler(uc))

		w := postEvent(r, `{"source": "other.domain", "detail-type": "CotizacionSolicitada", "detail": {}}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown detail type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		r := newEventRouter(NewEventHandler(uc))

		w := postEvent(r, `{"source": "prodirtec.cotizaciones.solicitudes", "detail-type": "OtraCosa", "detail": {}}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		r := newEventRouter(NewEventHandler(uc))

		w := postEvent(r, "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("incomplete detail maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		r := newEventRouter(NewEventHandler(uc))

		uc.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(entities.Quotation{}, entities.ErrIncompleteRequest)

		w := postEvent(r, `{
			"source": "prodirtec.cotizaciones.solicitudes",
			"detail-type": "CotizacionSolicitada",
			"detail": {"solicitud_id": "r1"}
		}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
