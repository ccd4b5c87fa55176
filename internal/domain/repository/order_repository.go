package repository

import "github.com/jhoicas/Cotizador-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	// UpdateStatus actualiza solo el estado (las transiciones se validan
	// en el caso de uso, no aquí).
	UpdateStatus(id, status string) error
	List(limit, offset int) ([]*entity.Order, error)
	ListByQuote(quoteID string) ([]*entity.Order, error)
}
