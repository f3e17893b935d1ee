package validation

import (
	"regexp"
	"strings"

	"inventario-textil/domain"
)

var codigoEstricto = regexp.MustCompile(`^[A-Z0-9]+$`)

// Estricta runs the basic rules first and then tightens them: uppercase
// alphanumeric codes, mandatory color, bounded price and stock, and a
// coherence rule between minimum and current stock.
type Estricta struct {
	basica Strategy
}

// NewEstricta constructs the strict strategy.
func NewEstricta() *Estricta {
	return &Estricta{basica: NewBasica()}
}

var _ Strategy = (*Estricta)(nil)

// Validar implements Strategy.
func (v *Estricta) Validar(p *domain.Producto) error {
	if err := v.basica.Validar(p); err != nil {
		return err
	}
	if !codigoEstricto.MatchString(p.Codigo) {
		return domain.NewValidationError("codigo",
			"el codigo debe contener solo letras mayusculas y numeros (sin espacios ni caracteres especiales)")
	}
	if strings.TrimSpace(p.Color) == "" {
		return domain.NewValidationError("color", "el color es obligatorio en validacion estricta")
	}
	if p.Precio > 1000 {
		return domain.NewValidationError("precio", "el precio parece excesivo (maximo: S/ 1000)")
	}
	if p.Precio < 1 {
		return domain.NewValidationError("precio", "el precio parece muy bajo (minimo: S/ 1.00)")
	}
	if p.StockMinimo < 1 {
		return domain.NewValidationError("stockMinimo", "el stock minimo debe ser al menos 1 en validacion estricta")
	}
	if p.StockActual > 10000 {
		return domain.NewValidationError("stockActual", "el stock actual parece excesivo (maximo: 10000)")
	}
	if p.StockActual > 0 && p.StockMinimo > p.StockActual*2 {
		return domain.NewValidationError("stockMinimo", "el stock minimo no puede ser mas del doble del stock actual")
	}
	return nil
}

// Nombre implements Strategy.
func (v *Estricta) Nombre() string {
	return "Validación Estricta"
}

// DescripcionReglas implements Strategy.
func (v *Estricta) DescripcionReglas() string {
	return "Validación rigurosa: incluye validación básica + código alfanumérico " +
		"mayúsculas, color obligatorio, rangos de precio (S/ 1-1000), " +
		"stock mínimo ≥1, stock actual ≤10000, coherencia stock actual/mínimo"
}
