package pricing

import (
	"cotizador_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Pricer turns a quotation request into priced line items and a total. It must
// be deterministic and side-effect free: the orchestrator calls it exactly once
// per generate and persists whatever it returns.
type Pricer interface {
	Price(req entities.QuotationRequest) ([]entities.LineItem, decimal.Decimal)
}

const defaultUnit = "Unid."

// FixedPolicy is the current pricing policy: a flat base service cost plus a
// management margin. It exists mostly as a placeholder until a real pricing
// table lands; swapping it only requires another Pricer.
type FixedPolicy struct {
	BaseCost decimal.Decimal
	Margin   decimal.Decimal
}

var _ Pricer = FixedPolicy{}

// NewDefaultPolicy returns the fixed policy used in production: base cost 5000,
// margin multiplier 1.2.
func NewDefaultPolicy() FixedPolicy {
	return FixedPolicy{
		BaseCost: decimal.NewFromInt(5000),
		Margin:   decimal.NewFromFloat(1.2),
	}
}

func (p FixedPolicy) Price(req entities.QuotationRequest) ([]entities.LineItem, decimal.Decimal) {
	one := decimal.NewFromInt(1)
	marginCost := p.BaseCost.Mul(p.Margin.Sub(one))

	items := []entities.LineItem{
		{
			Description: "Servicio: " + req.Service,
			Quantity:    one,
			Unit:        defaultUnit,
			UnitPrice:   p.BaseCost,
			Subtotal:    one.Mul(p.BaseCost),
		},
		{
			Description: "Margen/Gestión",
			Quantity:    one,
			Unit:        defaultUnit,
			UnitPrice:   marginCost,
			Subtotal:    one.Mul(marginCost),
		},
	}

	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal)
	}
	return items, total
}
