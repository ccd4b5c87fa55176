package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Cotizador-api/internal/application/dto"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/quoting"
	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
)

// QuoteUseCase casos de uso CRUD para cotizaciones. La instantánea
// derivada se recalcula en cada escritura: lo guardado nunca puede
// divergir de lo que producen los inputs.
type QuoteUseCase struct {
	repo repository.QuoteRepository
}

// NewQuoteUseCase construye el caso de uso.
func NewQuoteUseCase(repo repository.QuoteRepository) *QuoteUseCase {
	return &QuoteUseCase{repo: repo}
}

// Create crea una cotización, calcula su instantánea y la persiste.
func (uc *QuoteUseCase) Create(in dto.CreateQuoteRequest) (*dto.QuoteResponse, error) {
	now := time.Now()
	quote := &entity.Quote{
		ID:        uuid.New().String(),
		Title:     in.Title,
		Notes:     in.Notes,
		Inputs:    in.Inputs,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if quote.Title == "" {
		quote.Title = "Cotización sin título"
	}
	if err := quote.Recalculate(); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(quote); err != nil {
		return nil, err
	}
	return toQuoteResponse(quote), nil
}

// GetByID obtiene una cotización por ID.
func (uc *QuoteUseCase) GetByID(id string) (*dto.QuoteResponse, error) {
	quote, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, nil
	}
	return toQuoteResponse(quote), nil
}

// Update actualiza una cotización. Campos nil del request no se tocan.
// Venga lo que venga, la instantánea derivada se regenera desde los
// inputs resultantes antes de guardar.
func (uc *QuoteUseCase) Update(id string, in dto.UpdateQuoteRequest) (*dto.QuoteResponse, error) {
	quote, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, nil
	}
	if in.Title != nil {
		quote.Title = *in.Title
	}
	if in.Notes != nil {
		quote.Notes = *in.Notes
	}
	if in.Inputs != nil {
		quote.Inputs = *in.Inputs
	}
	if err := quote.Recalculate(); err != nil {
		return nil, err
	}
	quote.UpdatedAt = time.Now()
	if err := uc.repo.Update(quote); err != nil {
		return nil, err
	}
	return toQuoteResponse(quote), nil
}

// List lista cotizaciones con paginación (filas ligeras, sin inputs).
func (uc *QuoteUseCase) List(limit, offset int) (*dto.QuoteListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.QuoteListItem, 0, len(list))
	for _, q := range list {
		items = append(items, dto.QuoteListItem{
			ID:           q.ID,
			Title:        q.Title,
			Currency:     q.Inputs.Currency,
			ProductCount: len(q.Inputs.Products),
			TotalQuote:   q.Derived.Calculation.Totals.TotalQuote,
			ProfitMargin: q.Derived.Calculation.PerUnit.ProfitMargin,
			UpdatedAt:    q.UpdatedAt,
		})
	}
	return &dto.QuoteListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una cotización por ID.
func (uc *QuoteUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// Preview calcula la instantánea derivada de unos inputs sin persistir
// nada. Es el endpoint que la UI golpea en cada cambio del formulario.
func (uc *QuoteUseCase) Preview(in quoting.Inputs) (*dto.QuoteDerivedResponse, error) {
	in = in.Normalized()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	all, err := quoting.CalculateAllProductQuotes(in)
	if err != nil {
		return nil, err
	}
	return &dto.QuoteDerivedResponse{
		Calculation: quoting.CalculateQuote(quoting.BuildCalculationInputs(in)),
		Breakdown:   all.CostBreakdown,
		Products:    all.Products,
	}, nil
}

func toQuoteResponse(q *entity.Quote) *dto.QuoteResponse {
	if q == nil {
		return nil
	}
	return &dto.QuoteResponse{
		ID:       q.ID,
		Title:    q.Title,
		Notes:    q.Notes,
		Currency: q.Inputs.Currency,
		Inputs:   q.Inputs,
		Derived: dto.QuoteDerivedResponse{
			Calculation: q.Derived.Calculation,
			Breakdown:   q.Derived.Breakdown,
			Products:    q.Derived.Products,
		},
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}
