package notify

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"inventario-textil/domain"
	"inventario-textil/observer"
)

// Archivo appends one structured JSON line per inventory event to a file,
// the audit trail counterpart of the console notifier.
type Archivo struct {
	log    zerolog.Logger
	closer io.Closer
}

// NewArchivo opens (or creates) the log file in append mode.
func NewArchivo(ruta string) (*Archivo, error) {
	f, err := os.OpenFile(ruta, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	return &Archivo{
		log:    zerolog.New(f).With().Timestamp().Logger(),
		closer: f,
	}, nil
}

// NewArchivoWriter builds the notifier over an arbitrary writer; used by
// tests to capture events without touching the filesystem.
func NewArchivoWriter(w io.Writer) *Archivo {
	return &Archivo{log: zerolog.New(w).With().Timestamp().Logger()}
}

var _ observer.Observador = (*Archivo)(nil)

// Close releases the underlying file, if any.
func (a *Archivo) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

func (a *Archivo) evento(nombre string, p domain.Producto) *zerolog.Event {
	return a.log.Info().
		Str("evento", nombre).
		Str("codigo", p.Codigo).
		Str("nombre", p.Nombre)
}

func (a *Archivo) OnProductoAgregado(p domain.Producto) {
	a.evento("PRODUCTO_AGREGADO", p).
		Str("tipo", p.TipoTela.Nombre()).
		Float64("precio", p.Precio).
		Send()
}

func (a *Archivo) OnProductoActualizado(p domain.Producto) {
	a.evento("PRODUCTO_ACTUALIZADO", p).
		Int("stock_actual", p.StockActual).
		Int("stock_minimo", p.StockMinimo).
		Send()
}

func (a *Archivo) OnProductoEliminado(p domain.Producto) {
	a.evento("PRODUCTO_ELIMINADO", p).Send()
}

func (a *Archivo) OnStockBajo(p domain.Producto) {
	a.evento("ALERTA_STOCK_BAJO", p).
		Int("stock_actual", p.StockActual).
		Int("stock_minimo", p.StockMinimo).
		Send()
}

func (a *Archivo) OnStockCritico(p domain.Producto) {
	a.evento("CRITICO_SIN_STOCK", p).
		Int("stock_actual", p.StockActual).
		Send()
}
