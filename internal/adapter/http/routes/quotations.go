package routes

import (
	"cotizador_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotations = "/cotizaciones"
	PathEvents     = "/events"
)

func addQuotationRoutes(rg *gin.RouterGroup, quotationHandler *handlers.QuotationHandler, eventHandler *handlers.EventHandler) {
	quotations := rg.Group(PathQuotations)
	{
		// Paths keep the Spanish suffixes the API gateway already routes.
		quotations.GET("/:cotizacion_id", quotationHandler.GetQuotation)
		quotations.PUT("/:cotizacion_id/ajustar", quotationHandler.AdjustQuotation)
		quotations.POST("/:cotizacion_id/aprobar", quotationHandler.ApproveQuotation)
	}

	// EventBridge envelopes forwarded by the bus (CotizacionSolicitada).
	rg.POST(PathEvents, eventHandler.HandleEvent)
}
