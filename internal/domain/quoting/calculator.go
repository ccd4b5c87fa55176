package quoting

import "github.com/shopspring/decimal"

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)

	// insuranceBasis: el seguro se cotiza sobre el 110% del valor CIF
	// (mercancía + flete). Es convención de la industria, no un parámetro.
	insuranceBasis = decimal.New(11, -1) // 1.1

	// minDenominator evita divisiones degeneradas con comisiones o
	// márgenes de ~100%.
	minDenominator = decimal.New(1, -9) // 1e-9

	// minRoundingStep piso del paso de redondeo de la cotización.
	minRoundingStep = decimal.New(1, -1) // 0.1
)

// CalculationInputs son los parámetros aplanados del calculador: la
// cantidad y el precio unitario mezclado (agregados de los productos) más
// todos los costos a nivel de embarque como montos escalares.
type CalculationInputs struct {
	SupplierTerm Term
	TargetTerm   Term

	Qty       decimal.Decimal
	UnitPrice decimal.Decimal

	InlandToPort        decimal.Decimal
	OriginPortFees      decimal.Decimal
	MainFreight         decimal.Decimal
	DestPortFees        decimal.Decimal
	ImportBroker        decimal.Decimal
	LastMileDelivery    decimal.Decimal
	Misc                decimal.Decimal
	DocumentFees        decimal.Decimal
	ExportDocsClearance decimal.Decimal

	ExportDocsMode ExportDocsMode
	NumOfShipments int

	InsuranceRatePct       decimal.Decimal
	DutyPct                decimal.Decimal
	VATPct                 decimal.Decimal
	IncludeBrokerInTaxBase bool

	PricingMode  PricingMode
	MarkupPct    decimal.Decimal
	MarginPct    decimal.Decimal
	BankFeePct   decimal.Decimal
	RoundingStep decimal.Decimal

	ExportCostMode ExportCostMode
}

// BuildCalculationInputs aplana un agregado Inputs a los parámetros del
// calculador, derivando cantidad total y precio unitario mezclado.
func BuildCalculationInputs(in Inputs) CalculationInputs {
	in = in.Normalized()
	derived := CalculateDerivedValues(in.Products)

	unitPrice := decimal.Zero
	if derived.Qty.IsPositive() {
		unitPrice = derived.SumVal.Div(derived.Qty)
	}

	return CalculationInputs{
		SupplierTerm: in.SupplierTerm,
		TargetTerm:   in.TargetTerm,

		Qty:       derived.Qty,
		UnitPrice: unitPrice,

		InlandToPort:        in.InlandToPort.ShipmentTotal,
		OriginPortFees:      in.OriginPortFees.ShipmentTotal,
		MainFreight:         in.MainFreight.ShipmentTotal,
		DestPortFees:        in.DestPortFees.ShipmentTotal,
		ImportBroker:        in.ImportBroker.ShipmentTotal,
		LastMileDelivery:    in.LastMileDelivery.ShipmentTotal,
		Misc:                in.Misc.ShipmentTotal,
		DocumentFees:        in.DocumentFees.ShipmentTotal,
		ExportDocsClearance: in.ExportDocsClearance.ShipmentTotal,

		ExportDocsMode: in.ExportDocsMode,
		NumOfShipments: in.NumOfShipments,

		InsuranceRatePct:       in.InsuranceRatePct,
		DutyPct:                in.DutyPct,
		VATPct:                 in.VATPct,
		IncludeBrokerInTaxBase: in.IncludeBrokerInTaxBase,

		PricingMode:  in.PricingMode,
		MarkupPct:    in.MarkupPct,
		MarginPct:    in.MarginPct,
		BankFeePct:   in.BankFeePct,
		RoundingStep: in.RoundingStep,

		ExportCostMode: in.ExportCostMode,
	}
}

// CostComponents montos por tramo de costo ya filtrados por compuertas,
// todos a nivel de embarque completo. Es el cómputo compartido entre el
// calculador de cotización y el desglose de costos: ambos leen estas
// mismas cifras, así que no pueden divergir.
type CostComponents struct {
	Gates SegmentGates `json:"-"`

	InlandToPort        decimal.Decimal `json:"inland_to_port"`
	OriginPortFees      decimal.Decimal `json:"origin_port_fees"`
	ExportDocsClearance decimal.Decimal `json:"export_docs_clearance"`
	DocumentFees        decimal.Decimal `json:"document_fees"`
	MainFreight         decimal.Decimal `json:"main_freight"`
	Insurance           decimal.Decimal `json:"insurance"`
	DestPortFees        decimal.Decimal `json:"dest_port_fees"`
	ImportBroker        decimal.Decimal `json:"import_broker"`
	LastMileDelivery    decimal.Decimal `json:"last_mile_delivery"`
	Misc                decimal.Decimal `json:"misc"`

	TaxBase decimal.Decimal `json:"tax_base"`
	Duty    decimal.Decimal `json:"duty"`
	VAT     decimal.Decimal `json:"vat"`

	TotalExportCosts decimal.Decimal `json:"total_export_costs"`
}

// TotalFixedCosts suma de los costos fijos del embarque (documentación,
// puertos, agente, entrega final y misceláneos).
func (c CostComponents) TotalFixedCosts() decimal.Decimal {
	return c.ExportDocsClearance.
		Add(c.DocumentFees).
		Add(c.OriginPortFees).
		Add(c.DestPortFees).
		Add(c.ImportBroker).
		Add(c.LastMileDelivery).
		Add(c.Misc)
}

// TotalLogisticsCosts suma de los costos logísticos (transporte interno,
// flete principal y seguro).
func (c CostComponents) TotalLogisticsCosts() decimal.Decimal {
	return c.InlandToPort.Add(c.MainFreight).Add(c.Insurance)
}

// TotalTaxes arancel + IVA de importación.
func (c CostComponents) TotalTaxes() decimal.Decimal {
	return c.Duty.Add(c.VAT)
}

// computeCostComponents evalúa compuertas y arma los tramos de costo en
// el orden que exigen las dependencias de base imponible: el seguro
// necesita el flete, la base imponible necesita el seguro, el IVA
// necesita el arancel.
func computeCostComponents(p CalculationInputs, baseGoods decimal.Decimal) CostComponents {
	gates := GatesFor(p.SupplierTerm, p.TargetTerm)
	c := CostComponents{Gates: gates}

	if gates.InlandToPort {
		c.InlandToPort = p.InlandToPort
	}
	if gates.OriginPortFees {
		c.OriginPortFees = p.OriginPortFees
	}

	if gates.ExportDocs {
		// El despacho por declaración aduanera se multiplica por el
		// número de embarques/declaraciones; los honorarios documentales
		// son una tarifa única.
		mult := one
		if p.ExportDocsMode == DocsByCustomsEntries {
			n := p.NumOfShipments
			if n < 0 {
				n = 0
			}
			mult = decimal.NewFromInt(int64(n))
		}
		c.ExportDocsClearance = p.ExportDocsClearance.Mul(mult)
		c.DocumentFees = p.DocumentFees
	}

	if gates.MainFreight {
		c.MainFreight = p.MainFreight
	}

	if gates.Insurance {
		base := baseGoods.Add(c.MainFreight)
		c.Insurance = base.Mul(insuranceBasis).Mul(p.InsuranceRatePct).Div(hundred)
	}

	if gates.DestPortFees {
		c.DestPortFees = p.DestPortFees
	}
	if gates.ImportBroker {
		c.ImportBroker = p.ImportBroker
	}
	if gates.LastMile {
		c.LastMileDelivery = p.LastMileDelivery
	}

	// Base imponible: mercancía + tramos hasta puesta en destino,
	// opcionalmente con gastos de destino y agente aduanal.
	c.TaxBase = baseGoods.
		Add(c.InlandToPort).
		Add(c.OriginPortFees).
		Add(c.ExportDocsClearance).
		Add(c.MainFreight).
		Add(c.Insurance)
	if p.IncludeBrokerInTaxBase {
		c.TaxBase = c.TaxBase.Add(c.DestPortFees).Add(c.ImportBroker)
	}

	if gates.Duty {
		c.Duty = c.TaxBase.Mul(p.DutyPct).Div(hundred)
	}
	if gates.VAT {
		// TODO: confirmar con negocio si el IVA debe usar VATPct; hoy la
		// tasa replica DutyPct para no romper cotizaciones guardadas.
		c.VAT = c.TaxBase.Add(c.Duty).Mul(p.DutyPct).Div(hundred)
	}

	// Misceláneos no dependen del incoterm.
	c.Misc = p.Misc

	c.TotalExportCosts = c.ExportDocsClearance.
		Add(c.DocumentFees).
		Add(c.InlandToPort).
		Add(c.OriginPortFees).
		Add(c.MainFreight).
		Add(c.Insurance).
		Add(c.DestPortFees).
		Add(c.ImportBroker).
		Add(c.LastMileDelivery).
		Add(c.Misc).
		Add(c.Duty).
		Add(c.VAT)

	return c
}

// CalculationTotals vista a nivel de embarque del resultado.
type CalculationTotals struct {
	Qty              decimal.Decimal `json:"qty"`
	GoodsValue       decimal.Decimal `json:"goods_value"`
	TotalExportCosts decimal.Decimal `json:"total_export_costs"`
	TotalCost        decimal.Decimal `json:"total_cost"`
	TotalQuote       decimal.Decimal `json:"total_quote"`
	TotalProfit      decimal.Decimal `json:"total_profit"`
}

// CalculationPerUnit vista por unidad del resultado.
type CalculationPerUnit struct {
	UnitPrice    decimal.Decimal `json:"unit_price"`
	ExportCost   decimal.Decimal `json:"export_cost"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	UnitQuote    decimal.Decimal `json:"unit_quote"`
	UnitProfit   decimal.Decimal `json:"unit_profit"`
	ProfitMargin decimal.Decimal `json:"profit_margin"`
}

// CalculationResult resultado completo del calculador. CostPerUnit y
// SuggestedQuote duplican cifras de PerUnit por compatibilidad con
// snapshots derivados ya guardados.
type CalculationResult struct {
	Totals     CalculationTotals  `json:"totals"`
	PerUnit    CalculationPerUnit `json:"per_unit"`
	Components CostComponents     `json:"components"`

	CostPerUnit    decimal.Decimal `json:"cost_per_unit"`
	SuggestedQuote decimal.Decimal `json:"suggested_quote"`
}

// RoundTo redondea x al múltiplo de step más cercano (mitades alejándose
// de cero). El paso se eleva al piso 0.1 para evitar divisiones
// degeneradas con paso cero. Es idempotente.
func RoundTo(x, step decimal.Decimal) decimal.Decimal {
	if step.LessThan(minRoundingStep) {
		step = minRoundingStep
	}
	return x.Div(step).Round(0).Mul(step)
}

// CalculateQuote computa un conjunto internamente consistente de cifras
// de costo y cotización a partir de los parámetros aplanados. Nunca
// lanza: los montos faltantes valen cero y la cantidad se eleva al piso
// 1 antes de cualquier división, así que siempre retorna un resultado
// completo.
func CalculateQuote(p CalculationInputs) CalculationResult {
	qty := p.Qty
	if qty.LessThan(one) {
		qty = one
	}
	baseGoods := p.UnitPrice.Mul(qty)

	c := computeCostComponents(p, baseGoods)

	exportCostPerUnit := c.TotalExportCosts.Div(qty)

	costPerUnit := p.UnitPrice
	if p.ExportCostMode != ExportCostsExclude {
		costPerUnit = costPerUnit.Add(exportCostPerUnit)
	}

	bankRate := p.BankFeePct.Div(hundred)
	bankDenom := one.Sub(bankRate)
	if bankDenom.LessThan(minDenominator) {
		bankDenom = minDenominator
	}
	costWithBank := costPerUnit.Div(bankDenom)

	var rawUnitQuote decimal.Decimal
	if p.PricingMode == PricingMargin {
		marginDenom := one.Sub(p.MarginPct.Div(hundred))
		if marginDenom.LessThan(minDenominator) {
			marginDenom = minDenominator
		}
		rawUnitQuote = costWithBank.Div(marginDenom)
	} else {
		rawUnitQuote = costWithBank.Mul(one.Add(p.MarkupPct.Div(hundred)))
	}

	unitQuote := RoundTo(rawUnitQuote, p.RoundingStep)

	unitProfit := unitQuote.Sub(costPerUnit).Sub(unitQuote.Mul(bankRate))
	profitMargin := decimal.Zero
	if unitQuote.IsPositive() {
		profitMargin = unitProfit.Div(unitQuote)
	}

	return CalculationResult{
		Totals: CalculationTotals{
			Qty:              qty,
			GoodsValue:       baseGoods,
			TotalExportCosts: c.TotalExportCosts,
			TotalCost:        costPerUnit.Mul(qty),
			TotalQuote:       unitQuote.Mul(qty),
			TotalProfit:      unitProfit.Mul(qty),
		},
		PerUnit: CalculationPerUnit{
			UnitPrice:    p.UnitPrice,
			ExportCost:   exportCostPerUnit,
			UnitCost:     costPerUnit,
			UnitQuote:    unitQuote,
			UnitProfit:   unitProfit,
			ProfitMargin: profitMargin,
		},
		Components: c,

		CostPerUnit:    costPerUnit,
		SuggestedQuote: unitQuote,
	}
}
