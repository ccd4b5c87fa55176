package quoting

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// CostItem es un costo a nivel de embarque. ShipmentTotal siempre guarda
// el monto del embarque completo; ScaleWithQty es solo una pista para la
// UI (si la vista por unidad recalcula proporcionalmente) y no cambia el
// significado del total almacenado.
type CostItem struct {
	ShipmentTotal decimal.Decimal `json:"shipment_total"`
	ScaleWithQty  bool            `json:"scale_with_qty"`
}

// NewCostItem construye un CostItem de embarque completo.
func NewCostItem(shipmentTotal decimal.Decimal) CostItem {
	return CostItem{ShipmentTotal: shipmentTotal}
}

// UnmarshalJSON normaliza el formato legado en la frontera de
// serialización: cotizaciones guardadas antiguas traen el costo como
// número plano en vez del objeto {shipment_total, scale_with_qty}. El
// número plano se interpreta como total del embarque con
// scale_with_qty=false. El motor de cálculo solo ve la forma canónica.
func (c *CostItem) UnmarshalJSON(data []byte) error {
	var plain decimal.Decimal
	if err := json.Unmarshal(data, &plain); err == nil {
		c.ShipmentTotal = plain
		c.ScaleWithQty = false
		return nil
	}

	type costItemAlias CostItem
	var alias costItemAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return fmt.Errorf("cost item: formato no reconocido: %w", err)
	}
	*c = CostItem(alias)
	return nil
}
