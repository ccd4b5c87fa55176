package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Cotizador-api/internal/domain"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
)

var _ repository.QuoteRepository = (*QuoteRepo)(nil)

// QuoteRepo implementación del puerto QuoteRepository sobre PostgreSQL.
// Inputs y Derived se guardan como JSONB; currency se duplica en columna
// propia para poder filtrar sin abrir el JSON.
type QuoteRepo struct {
	q Querier
}

// NewQuoteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewQuoteRepository(q Querier) *QuoteRepo {
	return &QuoteRepo{q: q}
}

// Create persiste una nueva cotización.
func (r *QuoteRepo) Create(quote *entity.Quote) error {
	inputs, derived, err := marshalQuote(quote)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO quotes (id, title, notes, currency, inputs, derived, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.q.Exec(context.Background(), query,
		quote.ID, quote.Title, quote.Notes, quote.Inputs.Currency,
		inputs, derived, quote.CreatedAt, quote.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert quote: %w", err)
	}
	return nil
}

// GetByID obtiene una cotización por ID. Retorna (nil, nil) si no existe.
func (r *QuoteRepo) GetByID(id string) (*entity.Quote, error) {
	query := `
		SELECT id, title, notes, inputs, derived, created_at, updated_at
		FROM quotes WHERE id = $1`
	var (
		q       entity.Quote
		inputs  []byte
		derived []byte
	)
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&q.ID, &q.Title, &q.Notes, &inputs, &derived, &q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quote: %w", err)
	}
	if err := unmarshalQuote(&q, inputs, derived); err != nil {
		return nil, err
	}
	return &q, nil
}

// Update reescribe título, notas, inputs y la instantánea derivada.
func (r *QuoteRepo) Update(quote *entity.Quote) error {
	inputs, derived, err := marshalQuote(quote)
	if err != nil {
		return err
	}
	query := `
		UPDATE quotes SET title = $2, notes = $3, currency = $4, inputs = $5, derived = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		quote.ID, quote.Title, quote.Notes, quote.Inputs.Currency,
		inputs, derived, quote.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update quote: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrQuoteNotFound
	}
	return nil
}

// List lista cotizaciones ordenadas por última modificación.
func (r *QuoteRepo) List(limit, offset int) ([]*entity.Quote, error) {
	query := `
		SELECT id, title, notes, inputs, derived, created_at, updated_at
		FROM quotes ORDER BY updated_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Quote
	for rows.Next() {
		var (
			q       entity.Quote
			inputs  []byte
			derived []byte
		)
		if err := rows.Scan(&q.ID, &q.Title, &q.Notes, &inputs, &derived, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		if err := unmarshalQuote(&q, inputs, derived); err != nil {
			return nil, err
		}
		list = append(list, &q)
	}
	return list, rows.Err()
}

// Delete elimina una cotización por ID.
func (r *QuoteRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM quotes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete quote: %w", err)
	}
	return nil
}

func marshalQuote(quote *entity.Quote) (inputs, derived []byte, err error) {
	inputs, err = json.Marshal(quote.Inputs)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal quote inputs: %w", err)
	}
	derived, err = json.Marshal(quote.Derived)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal quote derived: %w", err)
	}
	return inputs, derived, nil
}

func unmarshalQuote(q *entity.Quote, inputs, derived []byte) error {
	// El UnmarshalJSON de CostItem normaliza aquí los snapshots legados
	// con costos como número plano.
	if err := json.Unmarshal(inputs, &q.Inputs); err != nil {
		return fmt.Errorf("unmarshal quote inputs: %w", err)
	}
	if len(derived) > 0 {
		if err := json.Unmarshal(derived, &q.Derived); err != nil {
			return fmt.Errorf("unmarshal quote derived: %w", err)
		}
	}
	return nil
}
