package quoting_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cotizador-api/internal/domain/quoting"
)

var allAllocationMethods = []quoting.AllocationMethod{
	quoting.AllocByQuantity,
	quoting.AllocByVolume,
	quoting.AllocByValue,
	quoting.AllocHybrid,
}

func allocationProducts() []quoting.Product {
	return []quoting.Product{
		productPerBox("p1", "10", "48000", "24"),
		productPerUnit("p2", "100", "500", "24"),
		productPerUnit("p3", "60", "1200", "12"),
	}
}

func sumAllocations(allocs []quoting.CostAllocation) (fixed, logistics decimal.Decimal) {
	for _, a := range allocs {
		fixed = fixed.Add(a.FixedCostAllocation)
		logistics = logistics.Add(a.LogisticsCostAllocation)
	}
	return fixed, logistics
}

// Preservación de la suma: con cualquier método, las participaciones
// reproducen los totales prorrateados.
func TestCalculateCostAllocation_PreservaLaSuma(t *testing.T) {
	products := allocationProducts()
	totalFixed := dec("100000")
	totalLogistics := dec("250000")

	for _, method := range allAllocationMethods {
		allocs := quoting.CalculateCostAllocation(products, totalFixed, totalLogistics, method)
		require.Len(t, allocs, len(products), "método %s: un registro por producto", method)

		fixed, logistics := sumAllocations(allocs)
		assert.InDelta(t, totalFixed.InexactFloat64(), fixed.InexactFloat64(), 1e-6,
			"método %s: la suma de fijos debe dar el total", method)
		assert.InDelta(t, totalLogistics.InexactFloat64(), logistics.InexactFloat64(), 1e-6,
			"método %s: la suma de logísticos debe dar el total", method)
	}
}

// Híbrido: fijos por participación en valor, logísticos por volumen.
func TestCalculateCostAllocation_SemanticaHibrida(t *testing.T) {
	p1 := productPerUnit("p1", "10", "10", "10")                    // valor 100
	p1.Length, p1.Width, p1.Height = dec("1.5"), dec("2"), dec("1") // 1 caja × 3 CBM
	p2 := productPerUnit("p2", "10", "30", "10")                    // valor 300
	p2.Length, p2.Width, p2.Height = dec("1"), dec("1"), dec("1")   // 1 caja × 1 CBM

	allocs := quoting.CalculateCostAllocation(
		[]quoting.Product{p1, p2}, dec("400"), dec("800"), quoting.AllocHybrid)
	require.Len(t, allocs, 2)

	assertDecEqual(t, "100", allocs[0].FixedCostAllocation, "p1 lleva 100/400 del valor")
	assertDecEqual(t, "300", allocs[1].FixedCostAllocation)
	assertDecEqual(t, "600", allocs[0].LogisticsCostAllocation, "p1 lleva 3/4 del volumen")
	assertDecEqual(t, "200", allocs[1].LogisticsCostAllocation)

	assertDecEqual(t, "70", allocs[0].PerUnitAllocatedCosts, "(100+600) ÷ 10 unidades")
}

// Denominador cero (todos los productos sin dimensiones bajo el método
// por volumen): se reparte en partes iguales en vez de perder el costo.
func TestCalculateCostAllocation_VolumenCero_ParteIguales(t *testing.T) {
	p1 := productPerUnit("p1", "10", "10", "10")
	p2 := productPerUnit("p2", "30", "10", "10")
	p1.Length, p1.Width, p1.Height = decimal.Zero, decimal.Zero, decimal.Zero
	p2.Length, p2.Width, p2.Height = decimal.Zero, decimal.Zero, decimal.Zero

	allocs := quoting.CalculateCostAllocation(
		[]quoting.Product{p1, p2}, dec("1000"), dec("500"), quoting.AllocByVolume)
	require.Len(t, allocs, 2)

	assertDecEqual(t, "500", allocs[0].FixedCostAllocation)
	assertDecEqual(t, "500", allocs[1].FixedCostAllocation)
	assertDecEqual(t, "250", allocs[0].LogisticsCostAllocation)

	fixed, logistics := sumAllocations(allocs)
	assert.InDelta(t, 1000.0, fixed.InexactFloat64(), 1e-6)
	assert.InDelta(t, 500.0, logistics.InexactFloat64(), 1e-6)
}

// Producto sin cantidad: participa del prorrateo pero su vista por
// unidad reporta 0 en vez de dividir por cero.
func TestCalculateCostAllocation_ProductoSinCantidad(t *testing.T) {
	p1 := productPerUnit("p1", "0", "10", "10")
	p2 := productPerUnit("p2", "100", "10", "10")

	allocs := quoting.CalculateCostAllocation(
		[]quoting.Product{p1, p2}, dec("1000"), decimal.Zero, quoting.AllocByQuantity)
	require.Len(t, allocs, 2)

	assert.True(t, allocs[0].PerUnitAllocatedCosts.IsZero())
	assert.True(t, allocs[0].FixedCostAllocation.IsZero(), "sin cantidad no lleva participación por cantidad")
	assertDecEqual(t, "1000", allocs[1].FixedCostAllocation)
}

func TestCalculateCostAllocation_ListaVacia(t *testing.T) {
	allocs := quoting.CalculateCostAllocation(nil, dec("1000"), dec("500"), quoting.AllocHybrid)
	assert.Empty(t, allocs)
}
