package quoting

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FixedCosts desglose de los costos fijos del embarque.
type FixedCosts struct {
	ExportDocsClearance decimal.Decimal `json:"export_docs_clearance"`
	DocumentFees        decimal.Decimal `json:"document_fees"`
	OriginPortFees      decimal.Decimal `json:"origin_port_fees"`
	DestPortFees        decimal.Decimal `json:"dest_port_fees"`
	ImportBroker        decimal.Decimal `json:"import_broker"`
	LastMileDelivery    decimal.Decimal `json:"last_mile_delivery"`
	Misc                decimal.Decimal `json:"misc"`
}

// LogisticsCosts desglose de los costos logísticos del embarque.
type LogisticsCosts struct {
	InlandToPort decimal.Decimal `json:"inland_to_port"`
	MainFreight  decimal.Decimal `json:"main_freight"`
	Insurance    decimal.Decimal `json:"insurance"`
}

// CostBreakdown vista de desglose del embarque para el tablero de
// costos: categorías fijas y logísticas filtradas por las mismas
// compuertas de incoterm del calculador, totales y el prorrateo por
// producto. TotalCosts se mantiene como alias de ShipmentCostInclGoods
// por compatibilidad con snapshots guardados.
type CostBreakdown struct {
	FixedCosts     FixedCosts     `json:"fixed_costs"`
	LogisticsCosts LogisticsCosts `json:"logistics_costs"`

	TotalFixedCosts     decimal.Decimal `json:"total_fixed_costs"`
	TotalLogisticsCosts decimal.Decimal `json:"total_logistics_costs"`
	TotalTaxes          decimal.Decimal `json:"total_taxes"`

	TotalGoodsValue       decimal.Decimal `json:"total_goods_value"`
	TotalExportCosts      decimal.Decimal `json:"total_export_costs"`
	ShipmentCostInclGoods decimal.Decimal `json:"shipment_cost_incl_goods"`
	TotalCosts            decimal.Decimal `json:"total_costs"`

	CostAllocation []CostAllocation `json:"cost_allocation"`
}

// CalculateCostBreakdown arma el desglose de costos del embarque a
// partir del agregado Inputs. Reusa el cómputo de tramos del calculador
// de cotización, de modo que TotalExportCosts coincide por construcción
// con el del resultado de CalculateQuote para los mismos Inputs.
func CalculateCostBreakdown(in Inputs) CostBreakdown {
	in = in.Normalized()
	p := BuildCalculationInputs(in)

	qty := p.Qty
	if qty.LessThan(one) {
		qty = one
	}
	c := computeCostComponents(p, p.UnitPrice.Mul(qty))

	totalFixed := c.TotalFixedCosts()
	totalLogistics := c.TotalLogisticsCosts()
	goodsValue := CalculateDerivedValues(in.Products).SumVal
	totalExport := c.TotalExportCosts
	inclGoods := goodsValue.Add(totalExport)

	return CostBreakdown{
		FixedCosts: FixedCosts{
			ExportDocsClearance: c.ExportDocsClearance,
			DocumentFees:        c.DocumentFees,
			OriginPortFees:      c.OriginPortFees,
			DestPortFees:        c.DestPortFees,
			ImportBroker:        c.ImportBroker,
			LastMileDelivery:    c.LastMileDelivery,
			Misc:                c.Misc,
		},
		LogisticsCosts: LogisticsCosts{
			InlandToPort: c.InlandToPort,
			MainFreight:  c.MainFreight,
			Insurance:    c.Insurance,
		},

		TotalFixedCosts:     totalFixed,
		TotalLogisticsCosts: totalLogistics,
		TotalTaxes:          c.TotalTaxes(),

		TotalGoodsValue:       goodsValue,
		TotalExportCosts:      totalExport,
		ShipmentCostInclGoods: inclGoods,
		TotalCosts:            inclGoods,

		CostAllocation: CalculateCostAllocation(in.Products, totalFixed, totalLogistics, in.AllocationMethod),
	}
}

// ProductQuoteResult cotización sugerida de un producto individual:
// su precio de proveedor más la parte prorrateada de los costos del
// embarque.
type ProductQuoteResult struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Qty       decimal.Decimal `json:"qty"`

	SupplierUnitPrice     decimal.Decimal `json:"supplier_unit_price"`
	PerUnitAllocatedCosts decimal.Decimal `json:"per_unit_allocated_costs"`
	UnitCost              decimal.Decimal `json:"unit_cost"`
	SuggestedQuote        decimal.Decimal `json:"suggested_quote"`
	UnitProfit            decimal.Decimal `json:"unit_profit"`
	TotalProductValue     decimal.Decimal `json:"total_product_value"`
}

// composeProductQuote combina el precio unitario del proveedor con la
// asignación de costos, aplicando la misma política de precio y redondeo
// del calculador de embarque.
func composeProductQuote(p Product, in Inputs, alloc CostAllocation) ProductQuoteResult {
	unitCost := p.SupplierUnitPrice().Add(alloc.PerUnitAllocatedCosts)

	bankRate := in.BankFeePct.Div(hundred)
	bankDenom := one.Sub(bankRate)
	if bankDenom.LessThan(minDenominator) {
		bankDenom = minDenominator
	}
	costWithBank := unitCost.Div(bankDenom)

	var raw decimal.Decimal
	if in.PricingMode == PricingMargin {
		marginDenom := one.Sub(in.MarginPct.Div(hundred))
		if marginDenom.LessThan(minDenominator) {
			marginDenom = minDenominator
		}
		raw = costWithBank.Div(marginDenom)
	} else {
		raw = costWithBank.Mul(one.Add(in.MarkupPct.Div(hundred)))
	}
	suggested := RoundTo(raw, in.RoundingStep)

	qty := p.EffectiveQty()
	return ProductQuoteResult{
		ProductID: p.ID,
		Name:      p.Name,
		Qty:       qty,

		SupplierUnitPrice:     p.SupplierUnitPrice(),
		PerUnitAllocatedCosts: alloc.PerUnitAllocatedCosts,
		UnitCost:              unitCost,
		SuggestedQuote:        suggested,
		UnitProfit:            suggested.Sub(unitCost),
		TotalProductValue:     suggested.Mul(qty),
	}
}

// CalculateProductQuote compone la cotización sugerida de un producto.
// El producto debe pertenecer a in.Products: si el prorrateo no trae un
// registro con su id, el llamador rompió el contrato (listas distintas
// de productos) y se retorna ErrAllocationMissing.
func CalculateProductQuote(p Product, in Inputs) (ProductQuoteResult, error) {
	in = in.Normalized()
	breakdown := CalculateCostBreakdown(in)

	for _, alloc := range breakdown.CostAllocation {
		if alloc.ProductID == p.ID {
			return composeProductQuote(p, in, alloc), nil
		}
	}
	return ProductQuoteResult{}, fmt.Errorf("producto %q: %w", p.ID, ErrAllocationMissing)
}

// AllProductQuotes cotizaciones por producto más el desglose del
// embarque que las respalda.
type AllProductQuotes struct {
	Products      []ProductQuoteResult `json:"products"`
	CostBreakdown CostBreakdown        `json:"cost_breakdown"`
}

// CalculateAllProductQuotes compone la cotización de cada producto del
// agregado sobre un único desglose y prorrateo compartidos.
func CalculateAllProductQuotes(in Inputs) (AllProductQuotes, error) {
	in = in.Normalized()
	breakdown := CalculateCostBreakdown(in)

	byID := make(map[string]CostAllocation, len(breakdown.CostAllocation))
	for _, alloc := range breakdown.CostAllocation {
		byID[alloc.ProductID] = alloc
	}

	quotes := make([]ProductQuoteResult, 0, len(in.Products))
	for _, p := range in.Products {
		alloc, ok := byID[p.ID]
		if !ok {
			return AllProductQuotes{}, fmt.Errorf("producto %q: %w", p.ID, ErrAllocationMissing)
		}
		quotes = append(quotes, composeProductQuote(p, in, alloc))
	}

	return AllProductQuotes{Products: quotes, CostBreakdown: breakdown}, nil
}
