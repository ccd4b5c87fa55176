package repository

import "github.com/jhoicas/Cotizador-api/internal/domain/entity"

// QuoteRepository define el puerto de persistencia para Quote. Los
// agregados Inputs y Derived viajan como JSONB.
type QuoteRepository interface {
	Create(quote *entity.Quote) error
	GetByID(id string) (*entity.Quote, error)
	// Update reescribe título, notas, inputs y la instantánea derivada.
	Update(quote *entity.Quote) error
	List(limit, offset int) ([]*entity.Quote, error)
	Delete(id string) error
}
