package interfaces

import "cotizador_service/internal/domain/entities"

// IDocumentRenderer renders a quotation into its document bytes (the PDF sent
// to clients). Rendering must be deterministic for a given quotation and must
// not fail on an empty line-item list.
type IDocumentRenderer interface {
	Render(q entities.Quotation) ([]byte, error)
	ContentType() string
	FileExtension() string
}
