package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest cuerpo para levantar una orden desde una cotización.
type CreateOrderRequest struct {
	QuoteID   string `json:"quote_id"`
	Reference string `json:"reference"`
	Notes     string `json:"notes"`
}

// UpdateOrderStatusRequest cuerpo para avanzar el estado de una orden.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse representación de una orden de importación.
type OrderResponse struct {
	ID          string          `json:"id"`
	QuoteID     string          `json:"quote_id"`
	Reference   string          `json:"reference"`
	Status      string          `json:"status"`
	Currency    string          `json:"currency"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	TotalCost   decimal.Decimal `json:"total_cost"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// OrderListResponse listado paginado de órdenes.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
