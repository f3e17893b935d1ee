package domain

import (
	"fmt"
	"strings"
	"time"
)

// EstadoStock classifies a product's stock level.
type EstadoStock string

const (
	EstadoCritico EstadoStock = "CRÍTICO"
	EstadoBajo    EstadoStock = "BAJO"
	EstadoNormal  EstadoStock = "NORMAL"
)

// Producto is the unit of inventory. The code is the natural key: two
// products are the same product when their codes match case-insensitively.
// Records are never removed, only deactivated via Activo.
type Producto struct {
	ID                 int64     `json:"id"`
	Codigo             string    `json:"codigo"`
	Nombre             string    `json:"nombre"`
	TipoTela           TipoTela  `json:"tipo_tela"`
	Color              string    `json:"color"`
	Precio             float64   `json:"precio"`
	StockActual        int       `json:"stock_actual"`
	StockMinimo        int       `json:"stock_minimo"`
	FechaCreacion      time.Time `json:"fecha_creacion"`
	FechaActualizacion time.Time `json:"fecha_actualizacion"`
	Activo             bool      `json:"activo"`
}

// TieneStockBajo reports whether current stock is at or below the minimum.
func (p *Producto) TieneStockBajo() bool {
	return p.StockActual <= p.StockMinimo
}

// ValorInventario is the value held in stock: price times current stock.
func (p *Producto) ValorInventario() float64 {
	return p.Precio * float64(p.StockActual)
}

// EstadoDeStock returns CRÍTICO when stock is exhausted, BAJO when at or
// below the minimum, NORMAL otherwise.
func (p *Producto) EstadoDeStock() EstadoStock {
	switch {
	case p.StockActual == 0:
		return EstadoCritico
	case p.TieneStockBajo():
		return EstadoBajo
	default:
		return EstadoNormal
	}
}

// MismoCodigo reports whether both products share the natural key.
func (p *Producto) MismoCodigo(otro *Producto) bool {
	return strings.EqualFold(p.Codigo, otro.Codigo)
}

// IncrementarStock adds cantidad units and refreshes the update timestamp.
func (p *Producto) IncrementarStock(cantidad int) error {
	if cantidad < 0 {
		return NewInvalidArgumentError("cantidad", "la cantidad debe ser positiva", cantidad)
	}
	p.StockActual += cantidad
	p.FechaActualizacion = time.Now()
	return nil
}

// DecrementarStock removes cantidad units. All-or-nothing: when cantidad
// exceeds the available stock nothing changes and InsufficientStockError
// carries available vs requested.
func (p *Producto) DecrementarStock(cantidad int) error {
	if cantidad < 0 {
		return NewInvalidArgumentError("cantidad", "la cantidad debe ser positiva", cantidad)
	}
	if cantidad > p.StockActual {
		return NewInsufficientStockError(p.StockActual, cantidad)
	}
	p.StockActual -= cantidad
	p.FechaActualizacion = time.Now()
	return nil
}

// SetPrecio replaces the unit price; negative prices are rejected.
func (p *Producto) SetPrecio(precio float64) error {
	if precio < 0 {
		return NewInvalidArgumentError("precio", "el precio no puede ser negativo", precio)
	}
	p.Precio = precio
	p.FechaActualizacion = time.Now()
	return nil
}

// SetStockActual replaces the current stock and refreshes the timestamp.
func (p *Producto) SetStockActual(stock int) error {
	if stock < 0 {
		return NewInvalidArgumentError("stockActual", "el stock no puede ser negativo", stock)
	}
	p.StockActual = stock
	p.FechaActualizacion = time.Now()
	return nil
}

// SetStockMinimo replaces the minimum-stock threshold.
func (p *Producto) SetStockMinimo(minimo int) error {
	if minimo < 0 {
		return NewInvalidArgumentError("stockMinimo", "el stock minimo no puede ser negativo", minimo)
	}
	p.StockMinimo = minimo
	p.FechaActualizacion = time.Now()
	return nil
}

func (p *Producto) String() string {
	return fmt.Sprintf("Producto{id=%d, codigo=%q, nombre=%q, tipo=%s, color=%q, precio=%.2f, stock=%d/%d, estado=%s, activo=%t}",
		p.ID, p.Codigo, p.Nombre, p.TipoTela, p.Color, p.Precio,
		p.StockActual, p.StockMinimo, p.EstadoDeStock(), p.Activo)
}
