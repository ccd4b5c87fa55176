package quoting

import "github.com/shopspring/decimal"

// CostAllocation participación de un producto en los costos compartidos
// del embarque. La suma de FixedCostAllocation (y de
// LogisticsCostAllocation) sobre todos los productos reproduce el total
// prorrateado: cada estrategia reparte por una razón cuyo denominador es
// la suma de los numeradores por producto.
type CostAllocation struct {
	ProductID               string          `json:"product_id"`
	FixedCostAllocation     decimal.Decimal `json:"fixed_cost_allocation"`
	LogisticsCostAllocation decimal.Decimal `json:"logistics_cost_allocation"`
	TotalAllocatedCosts     decimal.Decimal `json:"total_allocated_costs"`
	PerUnitAllocatedCosts   decimal.Decimal `json:"per_unit_allocated_costs"`
}

// allocationRatios razones de reparto por producto. Si el denominador de
// una métrica es cero (por ejemplo todos los productos sin dimensiones
// bajo el método por volumen), se reparte en partes iguales: un embarque
// con costos reales no puede dejar costos sin asignar.
type allocationRatios struct {
	qty    []decimal.Decimal
	volume []decimal.Decimal
	value  []decimal.Decimal
}

func buildAllocationRatios(products []Product) allocationRatios {
	n := len(products)
	r := allocationRatios{
		qty:    make([]decimal.Decimal, n),
		volume: make([]decimal.Decimal, n),
		value:  make([]decimal.Decimal, n),
	}

	var totalQty, totalVolume, totalValue decimal.Decimal
	for _, p := range products {
		totalQty = totalQty.Add(p.EffectiveQty())
		totalVolume = totalVolume.Add(p.TotalVolume())
		totalValue = totalValue.Add(p.EffectiveValue())
	}

	equal := decimal.Zero
	if n > 0 {
		equal = one.Div(decimal.NewFromInt(int64(n)))
	}

	ratio := func(num, denom decimal.Decimal) decimal.Decimal {
		if !denom.IsPositive() {
			return equal
		}
		return num.Div(denom)
	}

	for i, p := range products {
		r.qty[i] = ratio(p.EffectiveQty(), totalQty)
		r.volume[i] = ratio(p.TotalVolume(), totalVolume)
		r.value[i] = ratio(p.EffectiveValue(), totalValue)
	}
	return r
}

// CalculateCostAllocation reparte los costos fijos y logísticos del
// embarque entre los productos según el método elegido:
//
//   - quantity: ambos por participación en cantidad
//   - volume:   ambos por participación en volumen
//   - value:    ambos por participación en valor
//   - hybrid:   fijos por valor, logísticos por volumen (recomendado)
//
// El orden del resultado sigue el de la lista de productos y cubre cada
// producto exactamente una vez.
func CalculateCostAllocation(products []Product, totalFixedCosts, totalLogisticsCosts decimal.Decimal, method AllocationMethod) []CostAllocation {
	if len(products) == 0 {
		return nil
	}
	ratios := buildAllocationRatios(products)

	allocations := make([]CostAllocation, 0, len(products))
	for i, p := range products {
		var fixedRatio, logisticsRatio decimal.Decimal
		switch method {
		case AllocByQuantity:
			fixedRatio, logisticsRatio = ratios.qty[i], ratios.qty[i]
		case AllocByVolume:
			fixedRatio, logisticsRatio = ratios.volume[i], ratios.volume[i]
		case AllocByValue:
			fixedRatio, logisticsRatio = ratios.value[i], ratios.value[i]
		default: // hybrid
			fixedRatio, logisticsRatio = ratios.value[i], ratios.volume[i]
		}

		fixed := totalFixedCosts.Mul(fixedRatio)
		logistics := totalLogisticsCosts.Mul(logisticsRatio)
		total := fixed.Add(logistics)

		perUnit := decimal.Zero
		if qty := p.EffectiveQty(); qty.IsPositive() {
			perUnit = total.Div(qty)
		}

		allocations = append(allocations, CostAllocation{
			ProductID:               p.ID,
			FixedCostAllocation:     fixed,
			LogisticsCostAllocation: logistics,
			TotalAllocatedCosts:     total,
			PerUnitAllocatedCosts:   perUnit,
		})
	}
	return allocations
}
