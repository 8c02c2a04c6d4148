package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cotizador_service/internal/domain/entities"
	"cotizador_service/internal/domain/pricing"
	"cotizador_service/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrQuotationNotFound  = errors.New("quotation not found")
	ErrInvalidQuotationID = errors.New("invalid cotizacion_id")
	ErrInvalidTransition  = errors.New("invalid status transition")
)

// IQuotationUseCase exposes the quotation lifecycle operations.
//
// These map to the service triggers:
//   - CotizacionSolicitada event => Generate()
//   - GET /cotizaciones/{id} => GetByID()
//   - PUT /cotizaciones/{id}/ajustar => Adjust()
//   - POST /cotizaciones/{id}/aprobar => Approve()

type IQuotationUseCase interface {
	Generate(ctx context.Context, req entities.QuotationRequest) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	Adjust(ctx context.Context, id string, adjustment map[string]any) (entities.Quotation, error)
	Approve(ctx context.Context, id string) (entities.Quotation, error)
}

type QuotationUseCase struct {
	repo      interfaces.IQuotationRepository
	artifacts interfaces.IArtifactStore
	events    interfaces.IEventPublisher
	renderer  interfaces.IDocumentRenderer
	pricer    pricing.Pricer

	// strictTransitions makes APROBADA terminal. Off by default: the service
	// historically allowed re-adjusting and re-approving approved quotations.
	strictTransitions bool
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

func NewQuotationUseCase(
	repo interfaces.IQuotationRepository,
	artifacts interfaces.IArtifactStore,
	events interfaces.IEventPublisher,
	renderer interfaces.IDocumentRenderer,
	pricer pricing.Pricer,
	strictTransitions bool,
) *QuotationUseCase {
	return &QuotationUseCase{
		repo:              repo,
		artifacts:         artifacts,
		events:            events,
		renderer:          renderer,
		pricer:            pricer,
		strictTransitions: strictTransitions,
	}
}

// Generate prices the request, persists the quotation, renders and stores its
// PDF, records the artifact URL and publishes CotizacionGenerada.
//
// There is no compensating delete: if any step after the initial Create fails,
// the record stays persisted in GENERADA without enlace_pdf_s3 and the error is
// surfaced to the caller.
func (u *QuotationUseCase) Generate(ctx context.Context, req entities.QuotationRequest) (entities.Quotation, error) {
	req = req.Normalize()
	if err := req.Validate(); err != nil {
		return entities.Quotation{}, err
	}

	items, total := u.pricer.Price(req)

	q := entities.Quotation{
		ID:          uuid.NewString(),
		RequestID:   req.RequestID,
		ClientID:    req.ClientID,
		Service:     req.Service,
		Details:     req.Details,
		LineItems:   items,
		TotalPrice:  total,
		Status:      entities.QuotationStatusGenerated,
		GeneratedAt: time.Now().UTC(),
	}

	log.Info().
		Str("cotizacion_id", q.ID).
		Str("solicitud_id", q.RequestID).
		Str("client_id", q.ClientID).
		Str("total", total.StringFixed(2)).
		Msg("quotation priced")

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		return entities.Quotation{}, fmt.Errorf("persisting quotation %s: %w", q.ID, err)
	}

	doc, err := u.renderer.Render(created)
	if err != nil {
		log.Error().Err(err).Str("cotizacion_id", created.ID).Msg("document rendering failed; record kept without artifact")
		return entities.Quotation{}, fmt.Errorf("rendering quotation %s: %w", created.ID, err)
	}

	key := fmt.Sprintf("cotizaciones/%s.%s", created.ID, u.renderer.FileExtension())
	url, err := u.artifacts.Put(ctx, key, doc, u.renderer.ContentType())
	if err != nil {
		log.Error().Err(err).Str("cotizacion_id", created.ID).Msg("artifact upload failed; record kept without artifact")
		return entities.Quotation{}, fmt.Errorf("storing artifact for quotation %s: %w", created.ID, err)
	}

	updated, err := u.repo.UpdateArtifactURL(ctx, created.ID, url)
	if err != nil {
		return entities.Quotation{}, fmt.Errorf("recording artifact url for quotation %s: %w", created.ID, err)
	}
	if updated.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}

	if err := u.events.Publish(ctx, interfaces.EventQuotationGenerated, map[string]any{
		"cotizacion_id": updated.ID,
		"solicitud_id":  updated.RequestID,
		"enlace_pdf":    url,
		"client_id":     updated.ClientID,
	}); err != nil {
		return entities.Quotation{}, fmt.Errorf("publishing %s for quotation %s: %w", interfaces.EventQuotationGenerated, updated.ID, err)
	}

	log.Info().Str("cotizacion_id", updated.ID).Str("enlace_pdf", url).Msg("quotation generated")
	return updated, nil
}

func (u *QuotationUseCase) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	return q, nil
}

// Adjust records the adjustment payload and moves the quotation to AJUSTADA.
// A nil payload is stored as an empty map; no shape validation beyond that.
func (u *QuotationUseCase) Adjust(ctx context.Context, id string, adjustment map[string]any) (entities.Quotation, error) {
	current, err := u.loadForTransition(ctx, id, entities.QuotationStatusAdjusted)
	if err != nil {
		return entities.Quotation{}, err
	}
	if adjustment == nil {
		adjustment = map[string]any{}
	}

	updated, err := u.repo.UpdateAdjustment(ctx, current.ID, adjustment, entities.QuotationStatusAdjusted)
	if err != nil {
		return entities.Quotation{}, err
	}
	if updated.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}

	if err := u.events.Publish(ctx, interfaces.EventQuotationAdjusted, map[string]any{
		"cotizacion_id": updated.ID,
	}); err != nil {
		return entities.Quotation{}, fmt.Errorf("publishing %s for quotation %s: %w", interfaces.EventQuotationAdjusted, updated.ID, err)
	}
	return updated, nil
}

// Approve moves the quotation to APROBADA and publishes CotizacionAprobada.
func (u *QuotationUseCase) Approve(ctx context.Context, id string) (entities.Quotation, error) {
	current, err := u.loadForTransition(ctx, id, entities.QuotationStatusApproved)
	if err != nil {
		return entities.Quotation{}, err
	}

	updated, err := u.repo.UpdateStatus(ctx, current.ID, entities.QuotationStatusApproved)
	if err != nil {
		return entities.Quotation{}, err
	}
	if updated.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}

	if err := u.events.Publish(ctx, interfaces.EventQuotationApproved, map[string]any{
		"cotizacion_id": updated.ID,
	}); err != nil {
		return entities.Quotation{}, fmt.Errorf("publishing %s for quotation %s: %w", interfaces.EventQuotationApproved, updated.ID, err)
	}
	return updated, nil
}

// loadForTransition checks existence before any write so a mutation against a
// missing id fails with not-found instead of upserting a partial record.
func (u *QuotationUseCase) loadForTransition(ctx context.Context, id string, target entities.QuotationStatus) (entities.Quotation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if current.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	if !current.Status.CanTransition(target, u.strictTransitions) {
		return entities.Quotation{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, target)
	}
	return current, nil
}
