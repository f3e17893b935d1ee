// Package store provides the in-memory repository for the inventory system.
package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"inventario-textil/domain"
)

// Memoria is a thread-safe in-memory implementation of
// domain.ProductoRepository. Products are stored by value: readers get
// copies and every mutation goes through Save/Update/SoftDelete.
//
// codigos is a secondary index of lower-cased code to identifier covering
// active records only; it is maintained under the same write lock as the
// primary map so the uniqueness check and the insert are one atomic step.
type Memoria struct {
	mu        sync.RWMutex
	productos map[int64]domain.Producto
	codigos   map[string]int64
	siguiente int64
}

// NewMemoria constructs an empty repository. Identifiers start at 1.
func NewMemoria() *Memoria {
	return &Memoria{
		productos: make(map[int64]domain.Producto),
		codigos:   make(map[string]int64),
		siguiente: 1,
	}
}

// compile-time assertion that Memoria implements domain.ProductoRepository
var _ domain.ProductoRepository = (*Memoria)(nil)

func claveCodigo(codigo string) string {
	return strings.ToLower(strings.TrimSpace(codigo))
}

func (s *Memoria) Save(ctx context.Context, p domain.Producto) (domain.Producto, error) {
	select {
	case <-ctx.Done():
		return domain.Producto{}, ctx.Err()
	default:
	}

	if strings.TrimSpace(p.Codigo) == "" {
		return domain.Producto{}, domain.NewInvalidArgumentError("codigo", "el codigo es obligatorio", p.Codigo)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	clave := claveCodigo(p.Codigo)
	if _, existe := s.codigos[clave]; existe {
		return domain.Producto{}, domain.NewDuplicateCodeError(p.Codigo)
	}

	if p.ID == 0 {
		p.ID = s.siguiente
		s.siguiente++
	} else if p.ID >= s.siguiente {
		s.siguiente = p.ID + 1
	}

	s.productos[p.ID] = p
	if p.Activo {
		s.codigos[clave] = p.ID
	}
	return p, nil
}

func (s *Memoria) Update(ctx context.Context, p domain.Producto) (domain.Producto, error) {
	select {
	case <-ctx.Done():
		return domain.Producto{}, ctx.Err()
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	anterior, ok := s.productos[p.ID]
	if !ok {
		return domain.Producto{}, domain.NewNotFoundByIDError(p.ID)
	}

	// keep the code index consistent with the overwrite
	claveAnterior := claveCodigo(anterior.Codigo)
	clave := claveCodigo(p.Codigo)
	if id, existe := s.codigos[claveAnterior]; existe && id == p.ID {
		delete(s.codigos, claveAnterior)
	}
	if p.Activo {
		if id, existe := s.codigos[clave]; existe && id != p.ID {
			// another active product already owns the code; restore and fail
			if anterior.Activo {
				s.codigos[claveAnterior] = anterior.ID
			}
			return domain.Producto{}, domain.NewDuplicateCodeError(p.Codigo)
		}
		s.codigos[clave] = p.ID
	}

	s.productos[p.ID] = p
	return p, nil
}

func (s *Memoria) SoftDelete(ctx context.Context, id int64) (bool, error) {
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.productos[id]
	if !ok || !p.Activo {
		// deleting an already-inactive record reports not found
		return false, nil
	}

	p.Activo = false
	s.productos[id] = p
	delete(s.codigos, claveCodigo(p.Codigo))
	return true, nil
}

func (s *Memoria) FindByID(ctx context.Context, id int64) (domain.Producto, error) {
	select {
	case <-ctx.Done():
		return domain.Producto{}, ctx.Err()
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.productos[id]
	if !ok || !p.Activo {
		return domain.Producto{}, domain.NewNotFoundByIDError(id)
	}
	return p, nil
}

func (s *Memoria) FindByCodigo(ctx context.Context, codigo string) (domain.Producto, error) {
	select {
	case <-ctx.Done():
		return domain.Producto{}, ctx.Err()
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.codigos[claveCodigo(codigo)]
	if !ok {
		return domain.Producto{}, domain.NewNotFoundByCodigoError(codigo)
	}
	return s.productos[id], nil
}

// filtrar collects active products matching the predicate. Callers sort.
func (s *Memoria) filtrar(keep func(domain.Producto) bool) []domain.Producto {
	out := make([]domain.Producto, 0, len(s.productos))
	for _, p := range s.productos {
		if !p.Activo {
			continue
		}
		if keep != nil && !keep(p) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func porCodigo(out []domain.Producto) {
	sort.Slice(out, func(i, j int) bool { return out[i].Codigo < out[j].Codigo })
}

func (s *Memoria) ListAll(ctx context.Context) ([]domain.Producto, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.filtrar(nil)
	porCodigo(out)
	return out, nil
}

func (s *Memoria) FindByTipo(ctx context.Context, tipo domain.TipoTela) ([]domain.Producto, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if !tipo.Valida() {
		return []domain.Producto{}, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.filtrar(func(p domain.Producto) bool { return p.TipoTela == tipo })
	porCodigo(out)
	return out, nil
}

func (s *Memoria) ListStockBajo(ctx context.Context) ([]domain.Producto, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.filtrar(func(p domain.Producto) bool { return p.TieneStockBajo() })
	sort.Slice(out, func(i, j int) bool { return out[i].StockActual < out[j].StockActual })
	return out, nil
}

func (s *Memoria) FindByNombre(ctx context.Context, nombre string) ([]domain.Producto, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	buscado := strings.ToLower(strings.TrimSpace(nombre))
	if buscado == "" {
		return []domain.Producto{}, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.filtrar(func(p domain.Producto) bool {
		return strings.Contains(strings.ToLower(p.Nombre), buscado)
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (s *Memoria) FindByColor(ctx context.Context, color string) ([]domain.Producto, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	buscado := strings.ToLower(strings.TrimSpace(color))
	if buscado == "" {
		return []domain.Producto{}, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.filtrar(func(p domain.Producto) bool {
		return strings.Contains(strings.ToLower(p.Color), buscado)
	})
	porCodigo(out)
	return out, nil
}

func (s *Memoria) ExistsByCodigo(ctx context.Context, codigo string) (bool, error) {
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.codigos[claveCodigo(codigo)]
	return ok, nil
}

func (s *Memoria) Count(ctx context.Context) (int64, error) {
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, p := range s.productos {
		if p.Activo {
			n++
		}
	}
	return n, nil
}

func (s *Memoria) CountStockBajo(ctx context.Context) (int64, error) {
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, p := range s.productos {
		if p.Activo && p.TieneStockBajo() {
			n++
		}
	}
	return n, nil
}

func (s *Memoria) ValorTotal(ctx context.Context) (float64, error) {
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	for _, p := range s.productos {
		if p.Activo {
			total += p.ValorInventario()
		}
	}
	return total, nil
}
