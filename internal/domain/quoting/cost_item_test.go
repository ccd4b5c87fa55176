package quoting_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cotizador-api/internal/domain/quoting"
)

// Cotizaciones guardadas antiguas traen el costo como número plano; la
// frontera de serialización lo normaliza a la forma canónica.
func TestCostItem_UnmarshalJSON_NumeroLegado(t *testing.T) {
	var item quoting.CostItem
	require.NoError(t, json.Unmarshal([]byte(`90000`), &item))

	assertDecEqual(t, "90000", item.ShipmentTotal)
	assert.False(t, item.ScaleWithQty, "el formato legado no escala con la cantidad")
}

func TestCostItem_UnmarshalJSON_FormaCanonica(t *testing.T) {
	var item quoting.CostItem
	require.NoError(t, json.Unmarshal(
		[]byte(`{"shipment_total": "25000.5", "scale_with_qty": true}`), &item))

	assertDecEqual(t, "25000.5", item.ShipmentTotal)
	assert.True(t, item.ScaleWithQty)
}

func TestCostItem_UnmarshalJSON_FormatoInvalido(t *testing.T) {
	var item quoting.CostItem
	err := json.Unmarshal([]byte(`[1, 2]`), &item)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "formato no reconocido")
}

// Ida y vuelta: lo que el motor serializa se relee idéntico.
func TestCostItem_RoundTrip(t *testing.T) {
	original := quoting.CostItem{ShipmentTotal: dec("1234.56"), ScaleWithQty: true}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded quoting.CostItem
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, original.ShipmentTotal.Equal(decoded.ShipmentTotal))
	assert.Equal(t, original.ScaleWithQty, decoded.ScaleWithQty)
}

// Dentro del agregado completo la normalización también aplica: un
// payload legado con números planos produce los mismos insumos que la
// forma canónica.
func TestInputs_UnmarshalJSON_PayloadLegado(t *testing.T) {
	legacy := []byte(`{
		"supplier_term": "FOB",
		"target_term": "CIF",
		"main_freight": 100000,
		"document_fees": {"shipment_total": "3000", "scale_with_qty": false}
	}`)

	var in quoting.Inputs
	require.NoError(t, json.Unmarshal(legacy, &in))

	assertDecEqual(t, "100000", in.MainFreight.ShipmentTotal)
	assertDecEqual(t, "3000", in.DocumentFees.ShipmentTotal)
	assert.Equal(t, quoting.TermFOB, in.SupplierTerm)
}
