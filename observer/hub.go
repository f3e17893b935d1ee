// Package observer implements the synchronous event fan-out fired after
// every committed mutation.
package observer

import (
	"log/slog"
	"sync"

	"inventario-textil/domain"
)

// Observador receives the post-mutation entity for every state transition.
// Implementations must not block; a failing implementation is isolated by
// the hub and cannot affect the committed write or sibling listeners.
type Observador interface {
	OnProductoAgregado(p domain.Producto)
	OnProductoActualizado(p domain.Producto)
	OnProductoEliminado(p domain.Producto)
	OnStockBajo(p domain.Producto)
	OnStockCritico(p domain.Producto)
}

// Hub keeps an order-preserving list of listeners and invokes them
// synchronously, in registration order.
type Hub struct {
	mu           sync.Mutex
	observadores []Observador
	logger       *slog.Logger
}

// NewHub constructs a hub. A nil logger falls back to slog.Default.
func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{logger: logger}
}

// Agregar registers a listener and reports whether it was added. The same
// listener (by identity) is rejected on re-registration.
func (h *Hub) Agregar(o Observador) bool {
	if o == nil {
		return false
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, existente := range h.observadores {
		if existente == o {
			return false
		}
	}
	h.observadores = append(h.observadores, o)
	return true
}

// Remover unregisters a listener and reports whether it was present.
func (h *Hub) Remover(o Observador) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, existente := range h.observadores {
		if existente == o {
			h.observadores = append(h.observadores[:i], h.observadores[i+1:]...)
			return true
		}
	}
	return false
}

// Cantidad returns how many listeners are registered.
func (h *Hub) Cantidad() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.observadores)
}

// NotificarAgregado fires OnProductoAgregado on every listener.
func (h *Hub) NotificarAgregado(p domain.Producto) {
	h.emitir("producto_agregado", p, func(o Observador) { o.OnProductoAgregado(p) })
}

// NotificarActualizado fires OnProductoActualizado and then exactly one of
// OnStockCritico (stock exhausted) or OnStockBajo (at or below minimum).
// Threshold events fire only here, never standalone.
func (h *Hub) NotificarActualizado(p domain.Producto) {
	h.emitir("producto_actualizado", p, func(o Observador) { o.OnProductoActualizado(p) })
	switch {
	case p.StockActual == 0:
		h.emitir("stock_critico", p, func(o Observador) { o.OnStockCritico(p) })
	case p.TieneStockBajo():
		h.emitir("alerta_stock_bajo", p, func(o Observador) { o.OnStockBajo(p) })
	}
}

// NotificarEliminado fires OnProductoEliminado on every listener.
func (h *Hub) NotificarEliminado(p domain.Producto) {
	h.emitir("producto_eliminado", p, func(o Observador) { o.OnProductoEliminado(p) })
}

func (h *Hub) emitir(evento string, p domain.Producto, fn func(Observador)) {
	h.mu.Lock()
	obs := make([]Observador, len(h.observadores))
	copy(obs, h.observadores)
	h.mu.Unlock()

	for _, o := range obs {
		h.invocar(evento, p, o, fn)
	}
}

// invocar isolates a single listener: a panic is logged and swallowed so the
// remaining listeners still run and the write already committed stands.
func (h *Hub) invocar(evento string, p domain.Producto, o Observador, fn func(Observador)) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("observador fallo",
				"evento", evento,
				"codigo", p.Codigo,
				"panic", r,
			)
		}
	}()
	fn(o)
}
