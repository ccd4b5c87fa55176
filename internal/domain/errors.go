package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrQuoteNotFound     = errors.New("cotización no encontrada")
	ErrOrderNotFound     = errors.New("orden no encontrada")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInvalidTransition = errors.New("transición de estado no permitida")
	ErrQuoteNotQuotable  = errors.New("la cotización no tiene productos para cotizar")
)
