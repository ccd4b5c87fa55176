package quoting

import "github.com/shopspring/decimal"

// InputMode modo de captura del precio de un producto.
type InputMode string

const (
	InputPerBox  InputMode = "per_box"  // precio por caja + cajas pedidas
	InputPerUnit InputMode = "per_unit" // precio unitario + cantidad total
)

// PricingMode estrategia para derivar la cotización sugerida.
type PricingMode string

const (
	PricingMarkup PricingMode = "markup" // costo × (1 + %)
	PricingMargin PricingMode = "margin" // costo ÷ (1 − %)
)

// AllocationMethod estrategia de prorrateo de costos compartidos.
type AllocationMethod string

const (
	AllocByQuantity AllocationMethod = "quantity"
	AllocByVolume   AllocationMethod = "volume"
	AllocByValue    AllocationMethod = "value"
	// AllocHybrid prorratea costos fijos por valor y logísticos por
	// volumen: aduana y documentos correlacionan con el valor declarado,
	// flete y manipulación con el volumen físico.
	AllocHybrid AllocationMethod = "hybrid"
)

// ExportDocsMode cómo se cobra el despacho de exportación.
type ExportDocsMode string

const (
	DocsByShipment       ExportDocsMode = "by_shipment"        // tarifa única por embarque
	DocsByCustomsEntries ExportDocsMode = "by_customs_entries" // tarifa × número de declaraciones
)

// ExportCostMode si los costos de exportación entran al costo unitario
// cotizado o se listan aparte.
type ExportCostMode string

const (
	ExportCostsInclude ExportCostMode = "include"
	ExportCostsExclude ExportCostMode = "exclude"
)

// Product es una línea de producto de la cotización: precio, dimensiones
// y peso por caja (o unidad de empaque). La cantidad y el valor efectivos
// dependen del modo de captura.
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	InputMode InputMode `json:"input_mode"`

	// Modo per_box.
	BoxPrice   decimal.Decimal `json:"box_price"`
	OrderBoxes decimal.Decimal `json:"order_boxes"`

	// Modo per_unit. BoxQuantity también aplica en per_box (unidades por
	// caja) y en per_unit como referencia de empaque.
	UnitPrice     decimal.Decimal `json:"unit_price"`
	TotalQuantity decimal.Decimal `json:"total_quantity"`
	BoxQuantity   decimal.Decimal `json:"box_quantity"`

	// Dimensiones en metros y peso en kg por caja de empaque.
	Length decimal.Decimal `json:"length"`
	Width  decimal.Decimal `json:"width"`
	Height decimal.Decimal `json:"height"`
	Weight decimal.Decimal `json:"weight"`
}

// EffectiveQty cantidad efectiva de unidades del producto.
func (p Product) EffectiveQty() decimal.Decimal {
	if p.InputMode == InputPerBox {
		return p.OrderBoxes.Mul(p.BoxQuantity)
	}
	return p.TotalQuantity
}

// EffectiveValue valor efectivo de la línea (precio del proveedor).
func (p Product) EffectiveValue() decimal.Decimal {
	if p.InputMode == InputPerBox {
		return p.OrderBoxes.Mul(p.BoxPrice)
	}
	return p.TotalQuantity.Mul(p.UnitPrice)
}

// SupplierUnitPrice precio unitario del proveedor (valor ÷ cantidad).
// Cero si la línea no tiene cantidad.
func (p Product) SupplierUnitPrice() decimal.Decimal {
	qty := p.EffectiveQty()
	if !qty.IsPositive() {
		return decimal.Zero
	}
	return p.EffectiveValue().Div(qty)
}

// BoxCount número de cajas de empaque de la línea. En per_unit se estima
// como ceil(cantidad total ÷ unidades por caja), con denominador mínimo 1
// para cajas sin dato de empaque.
func (p Product) BoxCount() decimal.Decimal {
	if p.InputMode == InputPerBox {
		return p.OrderBoxes
	}
	denom := p.BoxQuantity
	if !denom.IsPositive() {
		denom = decimal.NewFromInt(1)
	}
	return p.TotalQuantity.Div(denom).Ceil()
}

// BoxVolume volumen CBM de una caja (largo × ancho × alto).
func (p Product) BoxVolume() decimal.Decimal {
	return p.Length.Mul(p.Width).Mul(p.Height)
}

// TotalVolume volumen CBM de la línea completa.
func (p Product) TotalVolume() decimal.Decimal {
	return p.BoxCount().Mul(p.BoxVolume())
}

// TotalWeight peso en kg de la línea completa.
func (p Product) TotalWeight() decimal.Decimal {
	return p.BoxCount().Mul(p.Weight)
}

// Inputs es la fuente única de verdad de una cotización: términos de
// negociación, productos, parámetros de precio y un CostItem por cada
// categoría de costo del embarque. Toda cifra derivada es función pura
// de este agregado.
type Inputs struct {
	Currency     string `json:"currency"`
	SupplierTerm Term   `json:"supplier_term"`
	TargetTerm   Term   `json:"target_term"`

	Products []Product `json:"products"`

	PricingMode  PricingMode     `json:"pricing_mode"`
	MarkupPct    decimal.Decimal `json:"markup_pct"`
	MarginPct    decimal.Decimal `json:"margin_pct"`
	BankFeePct   decimal.Decimal `json:"bank_fee_pct"`
	RoundingStep decimal.Decimal `json:"rounding_step"`

	ExportCostMode   ExportCostMode   `json:"export_cost_mode"`
	AllocationMethod AllocationMethod `json:"allocation_method"`

	// Costos del embarque por categoría.
	InlandToPort        CostItem `json:"inland_to_port"`
	OriginPortFees      CostItem `json:"origin_port_fees"`
	MainFreight         CostItem `json:"main_freight"`
	DestPortFees        CostItem `json:"dest_port_fees"`
	ImportBroker        CostItem `json:"import_broker"`
	LastMileDelivery    CostItem `json:"last_mile_delivery"`
	Misc                CostItem `json:"misc"`
	DocumentFees        CostItem `json:"document_fees"`
	ExportDocsClearance CostItem `json:"export_docs_clearance"`

	ExportDocsMode ExportDocsMode `json:"export_docs_mode"`
	NumOfShipments int            `json:"num_of_shipments"`

	InsuranceRatePct       decimal.Decimal `json:"insurance_rate_pct"`
	DutyPct                decimal.Decimal `json:"duty_pct"`
	VATPct                 decimal.Decimal `json:"vat_pct"`
	IncludeBrokerInTaxBase bool            `json:"include_broker_in_tax_base"`
}

// Normalized devuelve una copia con los enums vacíos llevados a sus
// valores por defecto, para cotizaciones guardadas con campos faltantes.
func (in Inputs) Normalized() Inputs {
	if in.PricingMode == "" {
		in.PricingMode = PricingMarkup
	}
	if in.ExportCostMode == "" {
		in.ExportCostMode = ExportCostsInclude
	}
	if in.AllocationMethod == "" {
		in.AllocationMethod = AllocHybrid
	}
	if in.ExportDocsMode == "" {
		in.ExportDocsMode = DocsByShipment
	}
	for i := range in.Products {
		if in.Products[i].InputMode == "" {
			in.Products[i].InputMode = InputPerUnit
		}
	}
	return in
}

// Validate verifica los enums del agregado. Los montos no se validan: un
// monto faltante o no numérico vale cero por contrato del motor.
func (in Inputs) Validate() error {
	if !in.SupplierTerm.Valid() || !in.TargetTerm.Valid() {
		return ErrInvalidTerm
	}
	switch in.PricingMode {
	case PricingMarkup, PricingMargin:
	default:
		return ErrInvalidPricingMode
	}
	switch in.AllocationMethod {
	case AllocByQuantity, AllocByVolume, AllocByValue, AllocHybrid:
	default:
		return ErrInvalidAllocationMethod
	}
	return nil
}
