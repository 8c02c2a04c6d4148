package handlers

import (
	"net/http"

	request "cotizador_service/internal/adapter/http/dto/request"
	response "cotizador_service/internal/adapter/http/dto/response"
	"cotizador_service/internal/usecase"
	"cotizador_service/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var (
	errInvalidEventPayload = pkg.NewDomainErrorSimple("INVALID_EVENT_PAYLOAD", "Invalid event payload", http.StatusBadRequest)
	errUnsupportedEvent    = pkg.NewDomainErrorSimple("UNSUPPORTED_EVENT", "Unsupported event", http.StatusBadRequest)
)

// EventHandler receives forwarded EventBridge envelopes and triggers quotation
// generation for CotizacionSolicitada events.

type EventHandler struct {
	usecase usecase.IQuotationUseCase
}

func NewEventHandler(uc usecase.IQuotationUseCase) *EventHandler {
	return &EventHandler{usecase: uc}
}

func (h *EventHandler) HandleEvent(c *gin.Context) {
	var envelope request.InboundEvent
	if err := c.ShouldBindJSON(&envelope); err != nil {
		c.JSON(errInvalidEventPayload.HTTPStatus, errInvalidEventPayload.ToHTTPError())
		return
	}

	if !envelope.IsQuotationRequested() {
		log.Warn().Str("source", envelope.Source).Str("detail_type", envelope.DetailType).Msg("unsupported inbound event")
		c.JSON(errUnsupportedEvent.HTTPStatus, errUnsupportedEvent.ToHTTPError())
		return
	}

	req, err := envelope.DecodeQuotationRequest()
	if err != nil {
		c.JSON(errInvalidEventPayload.HTTPStatus, errInvalidEventPayload.ToHTTPError())
		return
	}

	q, err := h.usecase.Generate(c.Request.Context(), req)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromGenerated(q))
}
