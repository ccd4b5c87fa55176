package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Cotizador-api/internal/domain"
	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
)

// QuotePDFUseCase genera la representación gráfica (PDF) de una
// cotización para enviarla al cliente.
type QuotePDFUseCase struct {
	quoteRepo repository.QuoteRepository
	generator QuotePDFGenerator
}

// NewQuotePDFUseCase construye el caso de uso.
func NewQuotePDFUseCase(quoteRepo repository.QuoteRepository, generator QuotePDFGenerator) *QuotePDFUseCase {
	return &QuotePDFUseCase{quoteRepo: quoteRepo, generator: generator}
}

// DownloadQuotePDF carga la cotización y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)   si todo sale bien.
//   - domain.ErrQuoteNotFound     si la cotización no existe.
//   - domain.ErrQuoteNotQuotable  si no tiene productos que mostrar.
func (uc *QuotePDFUseCase) DownloadQuotePDF(ctx context.Context, quoteID string) (pdfBytes []byte, filename string, err error) {
	quote, err := uc.quoteRepo.GetByID(quoteID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cotización: %w", err)
	}
	if quote == nil {
		return nil, "", domain.ErrQuoteNotFound
	}
	if len(quote.Inputs.Products) == 0 {
		return nil, "", domain.ErrQuoteNotQuotable
	}

	pdfBytes, err = uc.generator.GenerateQuotePDF(ctx, quote)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("cotizacion_%s.pdf", slugify(quote.Title))
	return pdfBytes, filename, nil
}

// slugify normaliza el título para usarlo como nombre de archivo.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "sin_titulo"
	}
	return b.String()
}
