package interfaces

import (
	"context"
	"cotizador_service/internal/domain/entities"
)

// IQuotationRepository abstracts DynamoDB persistence for Quotation.
//
// Update methods are conditional on the record existing: updating a missing id
// returns a zero-value Quotation and no error, never a partial record.
type IQuotationRepository interface {
	Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	UpdateArtifactURL(ctx context.Context, id string, url string) (entities.Quotation, error)
	UpdateAdjustment(ctx context.Context, id string, adjustment map[string]any, status entities.QuotationStatus) (entities.Quotation, error)
	UpdateStatus(ctx context.Context, id string, status entities.QuotationStatus) (entities.Quotation, error)
}
