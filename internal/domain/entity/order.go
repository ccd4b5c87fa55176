package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de una orden de importación.
const (
	OrderStatusDraft        = "draft"         // Creada desde una cotización, editable
	OrderStatusConfirmed    = "confirmed"     // Confirmada con el proveedor
	OrderStatusInProduction = "in_production" // El proveedor está fabricando
	OrderStatusShipped      = "shipped"       // Embarque en tránsito
	OrderStatusCompleted    = "completed"     // Recibida y cerrada
	OrderStatusCancelled    = "cancelled"     // Cancelada (terminal)
)

// orderTransitions transiciones permitidas por estado. Cancelar es válido
// desde cualquier estado no terminal.
var orderTransitions = map[string][]string{
	OrderStatusDraft:        {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed:    {OrderStatusInProduction, OrderStatusCancelled},
	OrderStatusInProduction: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:      {OrderStatusCompleted, OrderStatusCancelled},
}

// Order es una orden de compra levantada desde una cotización. Congela
// los totales de la cotización al momento de crearla: recalcular la
// cotización después no altera la orden.
type Order struct {
	ID          string
	QuoteID     string
	Reference   string
	Status      string
	Currency    string
	TotalAmount decimal.Decimal
	TotalCost   decimal.Decimal
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CanTransition indica si el paso al estado destino está permitido desde
// el estado actual.
func (o *Order) CanTransition(to string) bool {
	for _, allowed := range orderTransitions[o.Status] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ValidOrderStatus indica si el string es un estado de orden conocido.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusDraft, OrderStatusConfirmed, OrderStatusInProduction,
		OrderStatusShipped, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}
