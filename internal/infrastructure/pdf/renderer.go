package pdf

import (
	"bytes"
	"fmt"

	"cotizador_service/internal/domain/entities"
	"cotizador_service/internal/usecase/interfaces"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

const (
	marginX   = 100.0
	lineStep  = 15.0
	separator = "--------------------------------------------------------------------------------"
	tableHead = "ITEM                      CANT.      UNIDAD      PRECIO UNIT.      SUBTOTAL"
)

// Renderer produces the single-page quotation PDF. Layout is fixed: header,
// quotation number, date, client, requested service, details, the line-item
// table and a total line.
//
// The document creation date is pinned to fecha_generacion so the same
// quotation always renders to identical bytes.
type Renderer struct{}

var _ interfaces.IDocumentRenderer = Renderer{}

func NewRenderer() Renderer {
	return Renderer{}
}

func (Renderer) ContentType() string   { return "application/pdf" }
func (Renderer) FileExtension() string { return "pdf" }

func (Renderer) Render(q entities.Quotation) ([]byte, error) {
	doc := gofpdf.New("P", "pt", "Letter", "")
	doc.SetCreationDate(q.GeneratedAt)
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 14)
	doc.Text(marginX, 42, tr("COTIZACIÓN DE SERVICIOS"))

	doc.SetFont("Helvetica", "", 12)
	doc.Text(marginX, 62, tr("No. de Cotización: "+q.ID))
	doc.Text(marginX, 82, "Fecha: "+q.GeneratedAt.Format("2006-01-02"))
	doc.Text(marginX, 102, "Cliente ID: "+q.ClientID)
	doc.Text(marginX, 142, tr("Servicio Solicitado: "+q.Service))
	doc.Text(marginX, 162, tr("Descripción: "+q.Details))

	y := 212.0
	doc.Text(marginX, y, separator)
	y += lineStep
	doc.Text(marginX, y, tableHead)
	y += 10
	doc.Text(marginX, y, separator)
	y += lineStep

	// The total printed on the document is recomputed from the rows so the
	// sheet can never disagree with its own table.
	total := decimal.Zero
	for _, li := range q.LineItems {
		total = total.Add(li.Subtotal)
		row := fmt.Sprintf("%-25s %10s %-10s $%15s $%10s",
			li.Description,
			li.Quantity.StringFixed(2),
			li.Unit,
			li.UnitPrice.StringFixed(2),
			li.Subtotal.StringFixed(2),
		)
		doc.Text(marginX, y, tr(row))
		y += lineStep
	}

	y += 20
	doc.Text(350, y, "Total Neto: $"+total.StringFixed(2))

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing quotation pdf %s: %w", q.ID, err)
	}
	return buf.Bytes(), nil
}
