package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Cotizador-api/internal/application/dto"
	"github.com/jhoicas/Cotizador-api/internal/domain"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
)

// OrderUseCase casos de uso para órdenes de importación. Una orden nace
// de una cotización y congela sus totales: recalcular la cotización
// después no toca las órdenes ya levantadas.
type OrderUseCase struct {
	orderRepo repository.OrderRepository
	tx        TxRunner
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(orderRepo repository.OrderRepository, tx TxRunner) *OrderUseCase {
	return &OrderUseCase{orderRepo: orderRepo, tx: tx}
}

// CreateFromQuote levanta una orden en estado draft desde una
// cotización. Lectura de la cotización y escritura de la orden ocurren
// en la misma transacción.
func (uc *OrderUseCase) CreateFromQuote(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.QuoteID == "" {
		return nil, domain.ErrInvalidInput
	}

	var order *entity.Order
	err := uc.tx.Run(ctx, func(quoteRepo repository.QuoteRepository, orderRepo repository.OrderRepository) error {
		quote, err := quoteRepo.GetByID(in.QuoteID)
		if err != nil {
			return err
		}
		if quote == nil {
			return domain.ErrQuoteNotFound
		}
		if len(quote.Inputs.Products) == 0 {
			return domain.ErrQuoteNotQuotable
		}

		now := time.Now()
		order = &entity.Order{
			ID:          uuid.New().String(),
			QuoteID:     quote.ID,
			Reference:   in.Reference,
			Status:      entity.OrderStatusDraft,
			Currency:    quote.Inputs.Currency,
			TotalAmount: quote.Derived.Calculation.Totals.TotalQuote,
			TotalCost:   quote.Derived.Calculation.Totals.TotalCost,
			Notes:       in.Notes,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if order.Reference == "" {
			order.Reference = defaultReference(order.ID)
		}
		return orderRepo.Create(order)
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetByID obtiene una orden por ID.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return toOrderResponse(order), nil
}

// List lista órdenes con paginación.
func (uc *OrderUseCase) List(limit, offset int) (*dto.OrderListResponse, error) {
	list, err := uc.orderRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// UpdateStatus avanza el estado de una orden validando la transición.
func (uc *OrderUseCase) UpdateStatus(id, status string) (*dto.OrderResponse, error) {
	if !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	if !order.CanTransition(status) {
		return nil, fmt.Errorf("%s → %s: %w", order.Status, status, domain.ErrInvalidTransition)
	}
	if err := uc.orderRepo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	return toOrderResponse(order), nil
}

// defaultReference genera una referencia legible a partir del UUID.
func defaultReference(id string) string {
	short := strings.SplitN(id, "-", 2)[0]
	return "ORD-" + strings.ToUpper(short)
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	return &dto.OrderResponse{
		ID:          o.ID,
		QuoteID:     o.QuoteID,
		Reference:   o.Reference,
		Status:      o.Status,
		Currency:    o.Currency,
		TotalAmount: o.TotalAmount,
		TotalCost:   o.TotalCost,
		Notes:       o.Notes,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}
