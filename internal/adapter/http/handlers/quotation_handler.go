package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	request "cotizador_service/internal/adapter/http/dto/request"
	response "cotizador_service/internal/adapter/http/dto/response"
	"cotizador_service/internal/domain/entities"
	"cotizador_service/internal/usecase"
	"cotizador_service/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var (
	errMissingQuotationID = pkg.NewDomainErrorSimple("MISSING_QUOTATION_ID", "Missing cotizacion_id in path", http.StatusBadRequest)
	errInvalidAdjustBody  = pkg.NewDomainErrorSimple("INVALID_ADJUST_PAYLOAD", "Invalid adjustment payload", http.StatusBadRequest)
)

// QuotationHandler handles the HTTP surface of previously generated
// quotations: read and state transitions.

type QuotationHandler struct {
	usecase usecase.IQuotationUseCase
}

func NewQuotationHandler(uc usecase.IQuotationUseCase) *QuotationHandler {
	return &QuotationHandler{usecase: uc}
}

func (h *QuotationHandler) GetQuotation(c *gin.Context) {
	id, ok := h.quotationID(c)
	if !ok {
		return
	}

	q, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(q))
}

func (h *QuotationHandler) AdjustQuotation(c *gin.Context) {
	id, ok := h.quotationID(c)
	if !ok {
		return
	}

	// Body is optional: an absent body means an empty adjustment.
	var payload request.AdjustRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidAdjustBody.HTTPStatus, errInvalidAdjustBody.ToHTTPError())
		return
	}

	q, err := h.usecase.Adjust(c.Request.Context(), id, payload.ResolveAdjustment())
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(q))
}

func (h *QuotationHandler) ApproveQuotation(c *gin.Context) {
	id, ok := h.quotationID(c)
	if !ok {
		return
	}

	q, err := h.usecase.Approve(c.Request.Context(), id)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(q))
}

// quotationID rejects blank path identifiers before any store access.
func (h *QuotationHandler) quotationID(c *gin.Context) (string, bool) {
	id := strings.TrimSpace(c.Param("cotizacion_id"))
	if id == "" {
		c.JSON(errMissingQuotationID.HTTPStatus, errMissingQuotationID.ToHTTPError())
		return "", false
	}
	return id, true
}

// mapQuotationError translates usecase errors into the HTTP contract. Internal
// detail is logged, never returned.
func mapQuotationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuotationID), errors.Is(err, entities.ErrIncompleteRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Status transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	default:
		log.Error().Err(err).Msg("quotation operation failed")
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
