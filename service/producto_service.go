// Package service implements the stock-mutation engine and the read-only
// inventory aggregates.
package service

import (
	"context"

	"inventario-textil/domain"
	"inventario-textil/observer"
	"inventario-textil/validation"
)

// ProductoService orchestrates every write: validation, then the repository
// write, then observer notification. The validation strategy is fixed at
// construction; callers needing different rules construct another service.
//
// All mutating intent must go through this service. Mutating a fetched copy
// directly bypasses the notification pipeline and is never persisted.
type ProductoService struct {
	repo       domain.ProductoRepository
	estrategia validation.Strategy
	hub        *observer.Hub
}

// NewProductoService wires the engine. hub may be nil when no notifications
// are wanted (a fresh empty hub is used).
func NewProductoService(repo domain.ProductoRepository, estrategia validation.Strategy, hub *observer.Hub) *ProductoService {
	if hub == nil {
		hub = observer.NewHub(nil)
	}
	return &ProductoService{repo: repo, estrategia: estrategia, hub: hub}
}

// Hub exposes the observer hub so the composition root can register
// listeners.
func (s *ProductoService) Hub() *observer.Hub {
	return s.hub
}

// Estrategia returns the active validation strategy.
func (s *ProductoService) Estrategia() validation.Strategy {
	return s.estrategia
}

// CrearProducto validates, persists and announces a new product. Validation
// and duplicate-code failures abort before any notification fires.
func (s *ProductoService) CrearProducto(ctx context.Context, p domain.Producto) (domain.Producto, error) {
	if err := s.estrategia.Validar(&p); err != nil {
		return domain.Producto{}, err
	}
	guardado, err := s.repo.Save(ctx, p)
	if err != nil {
		return domain.Producto{}, err
	}
	s.hub.NotificarAgregado(guardado)
	return guardado, nil
}

// ActualizarProducto validates, overwrites and announces the update,
// including the threshold event the new stock level warrants.
func (s *ProductoService) ActualizarProducto(ctx context.Context, p domain.Producto) (domain.Producto, error) {
	if err := s.estrategia.Validar(&p); err != nil {
		return domain.Producto{}, err
	}
	actualizado, err := s.repo.Update(ctx, p)
	if err != nil {
		return domain.Producto{}, err
	}
	s.hub.NotificarActualizado(actualizado)
	return actualizado, nil
}

// EliminarProducto soft-deletes by id and reports whether a product was
// found. The deletion notification carries the post-mutation state.
func (s *ProductoService) EliminarProducto(ctx context.Context, id int64) (bool, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if domain.IsNotFoundError(err) {
			return false, nil
		}
		return false, err
	}

	eliminado, err := s.repo.SoftDelete(ctx, id)
	if err != nil || !eliminado {
		return false, err
	}

	p.Activo = false
	s.hub.NotificarEliminado(p)
	return true, nil
}

// IncrementarStock adds units to the product and routes the result through
// ActualizarProducto so validation and notification re-run on the new state.
func (s *ProductoService) IncrementarStock(ctx context.Context, id int64, cantidad int) (domain.Producto, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Producto{}, err
	}
	if err := p.IncrementarStock(cantidad); err != nil {
		return domain.Producto{}, err
	}
	return s.ActualizarProducto(ctx, p)
}

// DecrementarStock removes units, all-or-nothing, and routes the result
// through ActualizarProducto.
func (s *ProductoService) DecrementarStock(ctx context.Context, id int64, cantidad int) (domain.Producto, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Producto{}, err
	}
	if err := p.DecrementarStock(cantidad); err != nil {
		return domain.Producto{}, err
	}
	return s.ActualizarProducto(ctx, p)
}

// Read-only pass-throughs. These never mutate and never notify.

func (s *ProductoService) BuscarPorID(ctx context.Context, id int64) (domain.Producto, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductoService) BuscarPorCodigo(ctx context.Context, codigo string) (domain.Producto, error) {
	return s.repo.FindByCodigo(ctx, codigo)
}

func (s *ProductoService) ObtenerTodos(ctx context.Context) ([]domain.Producto, error) {
	return s.repo.ListAll(ctx)
}

func (s *ProductoService) BuscarPorTipo(ctx context.Context, tipo domain.TipoTela) ([]domain.Producto, error) {
	return s.repo.FindByTipo(ctx, tipo)
}

func (s *ProductoService) StockBajo(ctx context.Context) ([]domain.Producto, error) {
	return s.repo.ListStockBajo(ctx)
}

func (s *ProductoService) BuscarPorNombre(ctx context.Context, nombre string) ([]domain.Producto, error) {
	return s.repo.FindByNombre(ctx, nombre)
}

func (s *ProductoService) BuscarPorColor(ctx context.Context, color string) ([]domain.Producto, error) {
	return s.repo.FindByColor(ctx, color)
}

func (s *ProductoService) ExistePorCodigo(ctx context.Context, codigo string) (bool, error) {
	return s.repo.ExistsByCodigo(ctx, codigo)
}
