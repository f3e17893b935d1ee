package domain

import (
	"strings"
	"time"
)

// Defaults applied by NuevoProducto when the config leaves them unset.
const (
	StockMinimoPorDefecto = 5
	ColorPorDefecto       = "Sin especificar"
)

// ProductoConfig collects the fields needed to construct a product.
// Zero values fall back to defaults: TipoTela to Algodón, Color to
// "Sin especificar" and StockMinimo to 5.
type ProductoConfig struct {
	Codigo       string   `json:"codigo"`
	Nombre       string   `json:"nombre"`
	TipoTela     TipoTela `json:"tipo_tela"`
	Color        string   `json:"color"`
	Precio       float64  `json:"precio"`
	StockInicial int      `json:"stock_inicial"`
	StockMinimo  int      `json:"stock_minimo"`
}

// NuevoProducto builds a valid product or returns a structured error. It
// performs the same presence and positivity checks regardless of the
// validation strategy the service will later apply.
func NuevoProducto(cfg ProductoConfig) (Producto, error) {
	if strings.TrimSpace(cfg.Codigo) == "" {
		return Producto{}, NewInvalidArgumentError("codigo", "el codigo es obligatorio", cfg.Codigo)
	}
	if strings.TrimSpace(cfg.Nombre) == "" {
		return Producto{}, NewInvalidArgumentError("nombre", "el nombre es obligatorio", cfg.Nombre)
	}
	if cfg.TipoTela == 0 {
		cfg.TipoTela = Algodon
	}
	if !cfg.TipoTela.Valida() {
		return Producto{}, NewInvalidArgumentError("tipoTela", "tipo de tela no valido", int(cfg.TipoTela))
	}
	if cfg.Precio <= 0 {
		return Producto{}, NewInvalidArgumentError("precio", "el precio debe ser mayor a 0", cfg.Precio)
	}
	if cfg.StockInicial < 0 {
		return Producto{}, NewInvalidArgumentError("stockActual", "el stock no puede ser negativo", cfg.StockInicial)
	}
	if cfg.StockMinimo < 0 {
		return Producto{}, NewInvalidArgumentError("stockMinimo", "el stock minimo no puede ser negativo", cfg.StockMinimo)
	}
	if cfg.StockMinimo == 0 {
		cfg.StockMinimo = StockMinimoPorDefecto
	}
	if strings.TrimSpace(cfg.Color) == "" {
		cfg.Color = ColorPorDefecto
	}

	ahora := time.Now()
	return Producto{
		Codigo:             cfg.Codigo,
		Nombre:             cfg.Nombre,
		TipoTela:           cfg.TipoTela,
		Color:              cfg.Color,
		Precio:             cfg.Precio,
		StockActual:        cfg.StockInicial,
		StockMinimo:        cfg.StockMinimo,
		FechaCreacion:      ahora,
		FechaActualizacion: ahora,
		Activo:             true,
	}, nil
}

// NuevoProductoPorTipo builds a product with the minimum-stock threshold
// recommended for its fabric type and zero initial stock.
func NuevoProductoPorTipo(tipo TipoTela, codigo, nombre, color string, precio float64) (Producto, error) {
	if !tipo.Valida() {
		return Producto{}, NewInvalidArgumentError("tipoTela", "tipo de tela no valido", int(tipo))
	}
	return NuevoProducto(ProductoConfig{
		Codigo:      codigo,
		Nombre:      nombre,
		TipoTela:    tipo,
		Color:       color,
		Precio:      precio,
		StockMinimo: tipo.StockMinimoPorDefecto(),
	})
}

// ProductosDemostracion returns the sample catalog used by the seed command.
func ProductosDemostracion() []Producto {
	demo := []struct {
		tipo   TipoTela
		codigo string
		nombre string
		color  string
		precio float64
	}{
		{Algodon, "ALG001", "Algodón Blanco Premium", "Blanco", 25.50},
		{Poliester, "POL001", "Poliéster Negro Básico", "Negro", 18.75},
		{Denim, "DEN001", "Denim Azul Clásico", "Azul", 35.00},
		{Seda, "SED001", "Seda Rosa Natural", "Rosa", 85.00},
		{Lino, "LIN001", "Lino Beige Verano", "Beige", 42.50},
	}

	productos := make([]Producto, 0, len(demo))
	for _, d := range demo {
		p, err := NuevoProductoPorTipo(d.tipo, d.codigo, d.nombre, d.color, d.precio)
		if err != nil {
			// the demo catalog is static and always valid
			continue
		}
		productos = append(productos, p)
	}
	return productos
}
