package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// TipoTela is the closed set of fabric types handled by the inventory.
// The zero value is invalid so an unset type can be detected by validation.
type TipoTela int

const (
	Algodon TipoTela = iota + 1
	Poliester
	Denim
	Seda
	Lino
	Lycra
	Lana
	Nylon
)

type tipoTelaInfo struct {
	clave       string
	nombre      string
	descripcion string
	stockMinimo int
}

var tiposTela = map[TipoTela]tipoTelaInfo{
	Algodon:   {"ALGODON", "Algodón", "Material natural y transpirable", 10},
	Poliester: {"POLIESTER", "Poliéster", "Material sintético resistente", 15},
	Denim:     {"DENIM", "Denim", "Tejido de algodón resistente para jeans", 12},
	Seda:      {"SEDA", "Seda", "Material natural de lujo y suave", 5},
	Lino:      {"LINO", "Lino", "Material natural fresco ideal para verano", 8},
	Lycra:     {"LYCRA", "Lycra", "Material elástico para ropa deportiva", 15},
	Lana:      {"LANA", "Lana", "Material natural cálido para invierno", 10},
	Nylon:     {"NYLON", "Nylon", "Material sintético resistente y ligero", 10},
}

// TiposTela returns every valid fabric type in declaration order.
func TiposTela() []TipoTela {
	return []TipoTela{Algodon, Poliester, Denim, Seda, Lino, Lycra, Lana, Nylon}
}

// Valida reports whether t is one of the declared fabric types.
func (t TipoTela) Valida() bool {
	_, ok := tiposTela[t]
	return ok
}

// Nombre returns the display name, e.g. "Algodón".
func (t TipoTela) Nombre() string {
	return tiposTela[t].nombre
}

// Descripcion returns the human-readable description of the material.
func (t TipoTela) Descripcion() string {
	return tiposTela[t].descripcion
}

// StockMinimoPorDefecto returns the minimum-stock threshold recommended for
// products of this fabric type.
func (t TipoTela) StockMinimoPorDefecto() int {
	return tiposTela[t].stockMinimo
}

func (t TipoTela) String() string {
	if info, ok := tiposTela[t]; ok {
		return info.nombre
	}
	return fmt.Sprintf("TipoTela(%d)", int(t))
}

// TipoTelaDesdeTexto parses a fabric type from its display name or its
// identifier ("Algodón" and "ALGODON" both work), case-insensitively.
func TipoTelaDesdeTexto(texto string) (TipoTela, error) {
	texto = strings.TrimSpace(texto)
	for _, t := range TiposTela() {
		info := tiposTela[t]
		if strings.EqualFold(texto, info.nombre) || strings.EqualFold(texto, info.clave) {
			return t, nil
		}
	}
	return 0, NewInvalidArgumentError("tipoTela", "tipo de tela no valido", texto)
}

// MarshalJSON encodes the type as its display name.
func (t TipoTela) MarshalJSON() ([]byte, error) {
	if !t.Valida() {
		return nil, NewInvalidArgumentError("tipoTela", "tipo de tela no valido", int(t))
	}
	return json.Marshal(t.Nombre())
}

// UnmarshalJSON accepts the display name or the identifier.
func (t *TipoTela) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := TipoTelaDesdeTexto(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
