// Package facade exposes the simplified inventory surface consumed by the
// presentation layer.
package facade

import (
	"context"
	"fmt"

	"inventario-textil/domain"
	"inventario-textil/observer"
	"inventario-textil/service"
	"inventario-textil/validation"
)

// Inventario is a thin pass-through over the mutation engine and the
// aggregate query service, sharing one repository. It owns no logic beyond
// composing the two and translating code-based operations to id-based ones.
type Inventario struct {
	productos  *service.ProductoService
	inventario *service.InventarioService
}

// New wires the service graph over the given repository and validation
// strategy; listeners are registered on the engine's hub in order.
func New(repo domain.ProductoRepository, estrategia validation.Strategy, observadores ...observer.Observador) *Inventario {
	ps := service.NewProductoService(repo, estrategia, observer.NewHub(nil))
	for _, o := range observadores {
		ps.Hub().Agregar(o)
	}
	return &Inventario{
		productos:  ps,
		inventario: service.NewInventarioService(repo),
	}
}

// AgregarObservador registers an extra listener.
func (f *Inventario) AgregarObservador(o observer.Observador) bool {
	return f.productos.Hub().Agregar(o)
}

// Estrategia returns the active validation strategy for introspection.
func (f *Inventario) Estrategia() validation.Strategy {
	return f.productos.Estrategia()
}

// CrearProductoSimple builds a product with constructor defaults (minimum
// stock 5) and runs it through the full create pipeline.
func (f *Inventario) CrearProductoSimple(ctx context.Context, codigo, nombre string, tipo domain.TipoTela, color string, precio float64, stockInicial int) (domain.Producto, error) {
	p, err := domain.NuevoProducto(domain.ProductoConfig{
		Codigo:       codigo,
		Nombre:       nombre,
		TipoTela:     tipo,
		Color:        color,
		Precio:       precio,
		StockInicial: stockInicial,
	})
	if err != nil {
		return domain.Producto{}, err
	}
	return f.productos.CrearProducto(ctx, p)
}

// CrearProducto runs an already-built product through the create pipeline.
func (f *Inventario) CrearProducto(ctx context.Context, p domain.Producto) (domain.Producto, error) {
	return f.productos.CrearProducto(ctx, p)
}

// RegistrarEntrada adds cantidad units to the product with that code.
func (f *Inventario) RegistrarEntrada(ctx context.Context, codigo string, cantidad int) error {
	p, err := f.productos.BuscarPorCodigo(ctx, codigo)
	if err != nil {
		return err
	}
	_, err = f.productos.IncrementarStock(ctx, p.ID, cantidad)
	return err
}

// RegistrarSalida removes cantidad units from the product with that code.
func (f *Inventario) RegistrarSalida(ctx context.Context, codigo string, cantidad int) error {
	p, err := f.productos.BuscarPorCodigo(ctx, codigo)
	if err != nil {
		return err
	}
	_, err = f.productos.DecrementarStock(ctx, p.ID, cantidad)
	return err
}

// EliminarProducto soft-deletes by id and reports whether it was found.
func (f *Inventario) EliminarProducto(ctx context.Context, id int64) (bool, error) {
	return f.productos.EliminarProducto(ctx, id)
}

func (f *Inventario) BuscarProducto(ctx context.Context, codigo string) (domain.Producto, error) {
	return f.productos.BuscarPorCodigo(ctx, codigo)
}

func (f *Inventario) ListarTodos(ctx context.Context) ([]domain.Producto, error) {
	return f.productos.ObtenerTodos(ctx)
}

func (f *Inventario) ListarPorTipo(ctx context.Context, tipo domain.TipoTela) ([]domain.Producto, error) {
	return f.productos.BuscarPorTipo(ctx, tipo)
}

func (f *Inventario) ListarStockBajo(ctx context.Context) ([]domain.Producto, error) {
	return f.productos.StockBajo(ctx)
}

func (f *Inventario) BuscarPorNombre(ctx context.Context, nombre string) ([]domain.Producto, error) {
	return f.productos.BuscarPorNombre(ctx, nombre)
}

func (f *Inventario) BuscarPorColor(ctx context.Context, color string) ([]domain.Producto, error) {
	return f.productos.BuscarPorColor(ctx, color)
}

func (f *Inventario) Resumen(ctx context.Context) (service.Resumen, error) {
	return f.inventario.ResumenInventario(ctx)
}

func (f *Inventario) EstadisticasPorTipo(ctx context.Context) (map[domain.TipoTela]service.EstadisticasTipo, error) {
	return f.inventario.EstadisticasPorTipo(ctx)
}

func (f *Inventario) TopMasValiosos(ctx context.Context, top int) ([]domain.Producto, error) {
	return f.inventario.MasValiosos(ctx, top)
}

func (f *Inventario) ProductosSinStock(ctx context.Context) ([]domain.Producto, error) {
	return f.inventario.SinStock(ctx)
}

func (f *Inventario) PorcentajeCumplimiento(ctx context.Context) (float64, error) {
	return f.inventario.PorcentajeCumplimiento(ctx)
}

func (f *Inventario) GenerarReporte(ctx context.Context) (string, error) {
	return f.inventario.GenerarReporteTexto(ctx)
}

// CargarDemostracion seeds the sample catalog through the full pipeline and
// returns how many products were created.
func (f *Inventario) CargarDemostracion(ctx context.Context) (int, error) {
	var creados int
	for _, p := range domain.ProductosDemostracion() {
		if _, err := f.productos.CrearProducto(ctx, p); err != nil {
			return creados, fmt.Errorf("codigo=%s: %w", p.Codigo, err)
		}
		creados++
	}
	return creados, nil
}
