// Package notify provides ready-made observers: a console notifier for
// interactive sessions and a structured file log. Both live outside the
// mutation pipeline and never fail the triggering operation.
package notify

import (
	"fmt"
	"io"
	"os"

	"inventario-textil/domain"
	"inventario-textil/observer"
)

// Consola writes human-readable event lines to w.
type Consola struct {
	w io.Writer
}

// NewConsola constructs a console notifier. A nil writer means os.Stdout.
func NewConsola(w io.Writer) *Consola {
	if w == nil {
		w = os.Stdout
	}
	return &Consola{w: w}
}

var _ observer.Observador = (*Consola)(nil)

func (c *Consola) OnProductoAgregado(p domain.Producto) {
	fmt.Fprintf(c.w, "[NOTIFICACIÓN] Producto agregado: %s - %s (%s)\n", p.Codigo, p.Nombre, p.TipoTela)
}

func (c *Consola) OnProductoActualizado(p domain.Producto) {
	fmt.Fprintf(c.w, "[NOTIFICACIÓN] Producto actualizado: %s - Stock: %d/%d\n", p.Codigo, p.StockActual, p.StockMinimo)
}

func (c *Consola) OnProductoEliminado(p domain.Producto) {
	fmt.Fprintf(c.w, "[NOTIFICACIÓN] Producto eliminado: %s - %s\n", p.Codigo, p.Nombre)
}

func (c *Consola) OnStockBajo(p domain.Producto) {
	fmt.Fprintf(c.w, "[ALERTA] Stock bajo: %s - quedan %d unidades (mínimo %d)\n", p.Codigo, p.StockActual, p.StockMinimo)
}

func (c *Consola) OnStockCritico(p domain.Producto) {
	fmt.Fprintf(c.w, "[CRÍTICO] Sin stock: %s - %s\n", p.Codigo, p.Nombre)
}
