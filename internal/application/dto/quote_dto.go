package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cotizador-api/internal/domain/quoting"
)

// CreateQuoteRequest cuerpo para crear una cotización.
type CreateQuoteRequest struct {
	Title  string         `json:"title"`
	Notes  string         `json:"notes"`
	Inputs quoting.Inputs `json:"inputs"`
}

// UpdateQuoteRequest cuerpo para actualizar una cotización. Campos nil no
// se modifican; si Inputs viene, la instantánea derivada se recalcula.
type UpdateQuoteRequest struct {
	Title  *string         `json:"title"`
	Notes  *string         `json:"notes"`
	Inputs *quoting.Inputs `json:"inputs"`
}

// QuoteDerivedResponse instantánea de cálculo que acompaña a la
// cotización: resultado de embarque, desglose con prorrateo y cotización
// por producto. Es también la respuesta del endpoint de preview.
type QuoteDerivedResponse struct {
	Calculation quoting.CalculationResult    `json:"calculation"`
	Breakdown   quoting.CostBreakdown        `json:"breakdown"`
	Products    []quoting.ProductQuoteResult `json:"products"`
}

// QuoteResponse representación completa de una cotización.
type QuoteResponse struct {
	ID        string               `json:"id"`
	Title     string               `json:"title"`
	Notes     string               `json:"notes,omitempty"`
	Currency  string               `json:"currency"`
	Inputs    quoting.Inputs       `json:"inputs"`
	Derived   QuoteDerivedResponse `json:"derived"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// QuoteListItem fila ligera para listados (sin inputs ni desglose).
type QuoteListItem struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Currency     string          `json:"currency"`
	ProductCount int             `json:"product_count"`
	TotalQuote   decimal.Decimal `json:"total_quote"`
	ProfitMargin decimal.Decimal `json:"profit_margin"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// QuoteListResponse listado paginado de cotizaciones.
type QuoteListResponse struct {
	Items []QuoteListItem `json:"items"`
	Page  PageResponse    `json:"page"`
}
