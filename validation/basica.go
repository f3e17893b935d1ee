package validation

import (
	"strings"

	"inventario-textil/domain"
)

// Basica checks the mandatory fields: code length, name length, positive
// price and a known fabric type.
type Basica struct{}

// NewBasica constructs the basic strategy.
func NewBasica() *Basica {
	return &Basica{}
}

var _ Strategy = (*Basica)(nil)

// Validar implements Strategy.
func (v *Basica) Validar(p *domain.Producto) error {
	if p == nil {
		return domain.NewValidationError("producto", "el producto no puede ser nil")
	}
	if strings.TrimSpace(p.Codigo) == "" {
		return domain.NewValidationError("codigo", "el codigo del producto es obligatorio")
	}
	if len(p.Codigo) < 3 || len(p.Codigo) > 20 {
		return domain.NewValidationError("codigo", "el codigo debe tener entre 3 y 20 caracteres")
	}
	if strings.TrimSpace(p.Nombre) == "" {
		return domain.NewValidationError("nombre", "el nombre del producto es obligatorio")
	}
	if len([]rune(p.Nombre)) < 3 {
		return domain.NewValidationError("nombre", "el nombre debe tener al menos 3 caracteres")
	}
	if p.Precio <= 0 {
		return domain.NewValidationError("precio", "el precio debe ser mayor a 0")
	}
	if !p.TipoTela.Valida() {
		return domain.NewValidationError("tipoTela", "el tipo de tela es obligatorio")
	}
	return nil
}

// Nombre implements Strategy.
func (v *Basica) Nombre() string {
	return "Validación Básica"
}

// DescripcionReglas implements Strategy.
func (v *Basica) DescripcionReglas() string {
	return "Valida campos obligatorios: código (3-20 chars), nombre (min 3 chars), " +
		"precio (>0) y tipo de tela"
}
