// Package validation provides the pluggable validation stage applied before
// any product reaches the repository.
package validation

import (
	"fmt"

	"inventario-textil/domain"
)

// Strategy validates a product against a named rule set. The active
// strategy is chosen once, at service construction.
type Strategy interface {
	Validar(p *domain.Producto) error
	Nombre() string
	DescripcionReglas() string
}

// NewStrategy constructs a strategy by kind: "basica" or "estricta"
// (English aliases accepted).
func NewStrategy(kind string) (Strategy, error) {
	switch kind {
	case "basica", "basic":
		return NewBasica(), nil
	case "estricta", "strict":
		return NewEstricta(), nil
	default:
		return nil, fmt.Errorf("estrategia de validacion desconocida: %s", kind)
	}
}
