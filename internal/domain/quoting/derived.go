package quoting

import "github.com/shopspring/decimal"

// DerivedValues agregados de la lista de productos de una cotización.
type DerivedValues struct {
	Qty         decimal.Decimal `json:"qty"`
	SumVal      decimal.Decimal `json:"sum_val"`
	TotalVolume decimal.Decimal `json:"total_volume"`
	TotalWeight decimal.Decimal `json:"total_weight"`
}

// CalculateDerivedValues reduce la lista de productos a cantidad total,
// valor total, volumen total (CBM) y peso total (kg). Una lista vacía
// produce ceros; los llamadores que dividan por Qty deben protegerse.
func CalculateDerivedValues(products []Product) DerivedValues {
	var d DerivedValues
	for _, p := range products {
		d.Qty = d.Qty.Add(p.EffectiveQty())
		d.SumVal = d.SumVal.Add(p.EffectiveValue())
		d.TotalVolume = d.TotalVolume.Add(p.TotalVolume())
		d.TotalWeight = d.TotalWeight.Add(p.TotalWeight())
	}
	return d
}
