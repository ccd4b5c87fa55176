package usecase

import (
	"context"

	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repositorios atados a una transacción.
// Crear una orden lee la cotización y escribe la orden de forma atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		quoteRepo repository.QuoteRepository,
		orderRepo repository.OrderRepository,
	) error) error
}

// QuotePDFGenerator genera la representación PDF de una cotización.
type QuotePDFGenerator interface {
	GenerateQuotePDF(ctx context.Context, quote *entity.Quote) ([]byte, error)
}
