package entity

import (
	"time"

	"github.com/jhoicas/Cotizador-api/internal/domain/quoting"
)

// Quote es el agregado persistido de una cotización de importación. Los
// Inputs son la fuente única de verdad; Derived es una instantánea de lo
// calculado que se regenera en cada escritura (nunca se edita a mano).
type Quote struct {
	ID        string
	Title     string
	Notes     string
	Inputs    quoting.Inputs
	Derived   QuoteDerived
	CreatedAt time.Time
	UpdatedAt time.Time
}

// QuoteDerived instantánea de cálculo guardada junto a la cotización:
// resultado de embarque completo, desglose con prorrateo y cotización por
// producto. Se serializa como JSONB.
type QuoteDerived struct {
	Calculation quoting.CalculationResult    `json:"calculation"`
	Breakdown   quoting.CostBreakdown        `json:"breakdown"`
	Products    []quoting.ProductQuoteResult `json:"products"`
}

// Recalculate regenera la instantánea derivada a partir de los Inputs
// actuales. Los Inputs quedan normalizados (enums por defecto aplicados).
func (q *Quote) Recalculate() error {
	q.Inputs = q.Inputs.Normalized()
	if err := q.Inputs.Validate(); err != nil {
		return err
	}

	all, err := quoting.CalculateAllProductQuotes(q.Inputs)
	if err != nil {
		return err
	}
	q.Derived = QuoteDerived{
		Calculation: quoting.CalculateQuote(quoting.BuildCalculationInputs(q.Inputs)),
		Breakdown:   all.CostBreakdown,
		Products:    all.Products,
	}
	return nil
}
