package quoting

import "errors"

// Errores del motor de cotización. El motor nunca falla por montos
// inválidos (se tratan como cero); estos errores señalan contratos rotos
// del llamador, no problemas de entrada del usuario.
var (
	ErrInvalidTerm             = errors.New("incoterm inválido")
	ErrInvalidPricingMode      = errors.New("modo de precio inválido")
	ErrInvalidAllocationMethod = errors.New("método de prorrateo inválido")

	// ErrAllocationMissing: se pidió componer la cotización de un
	// producto que no tiene registro de prorrateo. La lista de prorrateo
	// debe cubrir cada producto por id; si no lo hace es un defecto de
	// lógica y se falla ruidosamente en vez de degradar en silencio.
	ErrAllocationMissing = errors.New("producto sin asignación de costos")
)
