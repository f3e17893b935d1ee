package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"inventario-textil/domain"
)

// Resumen is the inventory-wide summary returned by ResumenInventario.
type Resumen struct {
	TotalProductos      int64             `json:"total_productos"`
	ProductosStockBajo  int64             `json:"productos_stock_bajo"`
	ValorTotal          float64           `json:"valor_total"`
	PorcentajeStockBajo float64           `json:"porcentaje_stock_bajo"`
	ListaStockBajo      []domain.Producto `json:"lista_stock_bajo"`
}

// EstadisticasTipo aggregates the active products of one fabric type.
type EstadisticasTipo struct {
	Cantidad       int     `json:"cantidad"`
	StockTotal     int     `json:"stock_total"`
	ValorTotal     float64 `json:"valor_total"`
	PrecioPromedio float64 `json:"precio_promedio"`
}

// InventarioService answers read-only aggregate queries over the repository.
// It never mutates and never notifies.
type InventarioService struct {
	repo domain.ProductoRepository
}

// NewInventarioService constructs the aggregate query service.
func NewInventarioService(repo domain.ProductoRepository) *InventarioService {
	return &InventarioService{repo: repo}
}

// ResumenInventario computes totals, low-stock count and percentage, and
// the low-stock listing, all on demand.
func (s *InventarioService) ResumenInventario(ctx context.Context) (Resumen, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return Resumen{}, err
	}
	bajos, err := s.repo.CountStockBajo(ctx)
	if err != nil {
		return Resumen{}, err
	}
	valor, err := s.repo.ValorTotal(ctx)
	if err != nil {
		return Resumen{}, err
	}
	lista, err := s.repo.ListStockBajo(ctx)
	if err != nil {
		return Resumen{}, err
	}

	var porcentaje float64
	if total > 0 {
		porcentaje = float64(bajos) * 100.0 / float64(total)
	}

	return Resumen{
		TotalProductos:      total,
		ProductosStockBajo:  bajos,
		ValorTotal:          valor,
		PorcentajeStockBajo: porcentaje,
		ListaStockBajo:      lista,
	}, nil
}

// EstadisticasPorTipo aggregates per fabric type; types without active
// products are omitted.
func (s *InventarioService) EstadisticasPorTipo(ctx context.Context) (map[domain.TipoTela]EstadisticasTipo, error) {
	stats := make(map[domain.TipoTela]EstadisticasTipo)

	for _, tipo := range domain.TiposTela() {
		productos, err := s.repo.FindByTipo(ctx, tipo)
		if err != nil {
			return nil, err
		}
		if len(productos) == 0 {
			continue
		}

		var stockTotal int
		var valorTotal, sumaPrecios float64
		for _, p := range productos {
			stockTotal += p.StockActual
			valorTotal += p.ValorInventario()
			sumaPrecios += p.Precio
		}

		stats[tipo] = EstadisticasTipo{
			Cantidad:       len(productos),
			StockTotal:     stockTotal,
			ValorTotal:     valorTotal,
			PrecioPromedio: sumaPrecios / float64(len(productos)),
		}
	}

	return stats, nil
}

// MasValiosos returns up to top products ordered by inventory value
// descending.
func (s *InventarioService) MasValiosos(ctx context.Context, top int) ([]domain.Producto, error) {
	productos, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(productos, func(i, j int) bool {
		return productos[i].ValorInventario() > productos[j].ValorInventario()
	})
	if top >= 0 && top < len(productos) {
		productos = productos[:top]
	}
	return productos, nil
}

// SinStock lists the active products whose stock is exhausted.
func (s *InventarioService) SinStock(ctx context.Context) ([]domain.Producto, error) {
	productos, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := productos[:0]
	for _, p := range productos {
		if p.StockActual == 0 {
			out = append(out, p)
		}
	}
	return out, nil
}

// PorcentajeCumplimiento is the share of products with stock strictly above
// their minimum.
func (s *InventarioService) PorcentajeCumplimiento(ctx context.Context) (float64, error) {
	productos, err := s.repo.ListAll(ctx)
	if err != nil {
		return 0, err
	}
	if len(productos) == 0 {
		return 0, nil
	}
	var cumplen int
	for _, p := range productos {
		if p.StockActual > p.StockMinimo {
			cumplen++
		}
	}
	return float64(cumplen) * 100.0 / float64(len(productos)), nil
}

// GenerarReporteTexto assembles the plain-text inventory report.
func (s *InventarioService) GenerarReporteTexto(ctx context.Context) (string, error) {
	resumen, err := s.ResumenInventario(ctx)
	if err != nil {
		return "", err
	}

	separador := strings.Repeat("=", 60)

	var b strings.Builder
	b.WriteString(separador + "\n")
	b.WriteString("          REPORTE DE INVENTARIO TEXTIL\n")
	b.WriteString(separador + "\n\n")

	fmt.Fprintf(&b, "Total de productos: %d\n", resumen.TotalProductos)
	fmt.Fprintf(&b, "Productos con stock bajo: %d\n", resumen.ProductosStockBajo)
	fmt.Fprintf(&b, "Valor total del inventario: S/ %.2f\n", resumen.ValorTotal)
	fmt.Fprintf(&b, "Porcentaje stock bajo: %.2f%%\n\n", resumen.PorcentajeStockBajo)

	if len(resumen.ListaStockBajo) > 0 {
		b.WriteString("PRODUCTOS CON STOCK BAJO:\n")
		b.WriteString(separador + "\n")
		for _, p := range resumen.ListaStockBajo {
			fmt.Fprintf(&b, "  %s - %s (Stock: %d/%d)\n",
				p.Codigo, p.Nombre, p.StockActual, p.StockMinimo)
		}
	}

	b.WriteString("\n" + separador + "\n")
	return b.String(), nil
}
