// Package pdf implementa la representación gráfica de una cotización de
// importación para enviarla al cliente.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + moneda  │  Incoterm proveedor → objetivo  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Cant | Costo Unit | Cotización | Total    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DESGLOSE: fijos / logísticos / impuestos                    │
//	│  TOTALES: costo total / COTIZACIÓN TOTAL / utilidad          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/quoting"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// printer formatea montos con separador de miles según locale es.
var printer = message.NewPrinter(language.Spanish)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa usecase.QuotePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateQuotePDF genera el PDF de la cotización y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateQuotePDF(_ context.Context, quote *entity.Quote) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Cotización de importación", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(quote))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(incotermRow(quote.Inputs))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla de productos cotizados
	m.AddRows(tableHeaderRow())
	for _, r := range productRows(quote.Derived.Products, quote.Inputs.Currency) {
		m.AddRows(r)
	}

	// Desglose y totales
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(breakdownRow(quote.Derived.Breakdown, quote.Inputs.Currency))
	m.AddRows(totalsRow(quote.Derived.Calculation, quote.Inputs.Currency))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título de la cotización (izq) y fecha + moneda (der).
func headerRow(quote *entity.Quote) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(quote.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Cotización de importación", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Fecha: "+quote.UpdatedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Moneda: "+quote.Inputs.Currency, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 8,
			}),
		),
	)
}

// incotermRow: términos de negociación del embarque.
func incotermRow(in quoting.Inputs) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("TÉRMINOS DEL EMBARQUE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Proveedor entrega en %s   |   Cotizado hasta %s   |   %d producto(s)",
				in.SupplierTerm, in.TargetTerm, len(in.Products),
			), props.Text{Size: 8, Top: 6, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de productos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 4, align.Left),
		h("Cant.", 1, align.Center),
		h("Costo Unit.", 2, align.Right),
		h("Cotización Unit.", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

// productRows: una fila por producto cotizado.
func productRows(products []quoting.ProductQuoteResult, currency string) []core.Row {
	result := make([]core.Row, 0, len(products))
	for _, p := range products {
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(
				p.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				p.Qty.StringFixed(0),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				formatMoney(p.UnitCost, currency),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				formatMoney(p.SuggestedQuote, currency),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				formatMoney(p.TotalProductValue, currency),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// breakdownRow: costos del embarque por grupo.
func breakdownRow(b quoting.CostBreakdown, currency string) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("COSTOS DEL EMBARQUE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Fijos: %s   |   Logísticos: %s   |   Impuestos: %s   |   Total exportación: %s",
				formatMoney(b.TotalFixedCosts, currency),
				formatMoney(b.TotalLogisticsCosts, currency),
				formatMoney(b.TotalTaxes, currency),
				formatMoney(b.TotalExportCosts, currency),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(calc quoting.CalculationResult, currency string) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(4), // espacio izquierdo
		col.New(4).Add(
			label("Costo total:"),
			label("Utilidad estimada:"),
			grandLabel("COTIZACIÓN TOTAL:"),
		),
		col.New(4).Add(
			value(formatMoney(calc.Totals.TotalCost, currency)),
			value(formatMoney(calc.Totals.TotalProfit, currency)),
			grandValue(formatMoney(calc.Totals.TotalQuote, currency)),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatMoney formatea un monto con separador de miles según locale es y
// el código de moneda como sufijo. Ej: 1000000 → "1.000.000 JPY".
func formatMoney(d decimal.Decimal, currency string) string {
	s := printer.Sprintf("%.0f", d.InexactFloat64())
	if currency == "" {
		return s
	}
	return s + " " + currency
}
