package domain

import "context"

// ProductoRepository is the storage contract for products. Implementations
// must support safe concurrent reads and writes, and must treat the
// duplicate-code check and the insert as one atomic step.
//
// Every lookup and aggregate considers active records only.
type ProductoRepository interface {
	// Save stores a new product, assigning an identifier when it has none.
	// Fails with DuplicateCodeError when an active product already uses the
	// same code, case-insensitively.
	Save(ctx context.Context, p Producto) (Producto, error)

	// Update overwrites the record with the product's identifier. Fails with
	// NotFoundError when no such record exists.
	Update(ctx context.Context, p Producto) (Producto, error)

	// SoftDelete deactivates the record and reports whether an active record
	// was found. Deleting an already-inactive record reports false.
	SoftDelete(ctx context.Context, id int64) (bool, error)

	FindByID(ctx context.Context, id int64) (Producto, error)
	FindByCodigo(ctx context.Context, codigo string) (Producto, error)

	// ListAll returns active products ordered by code ascending.
	ListAll(ctx context.Context) ([]Producto, error)
	// FindByTipo returns active products of the type, by code ascending.
	FindByTipo(ctx context.Context, tipo TipoTela) ([]Producto, error)
	// ListStockBajo returns active low-stock products, by stock ascending.
	ListStockBajo(ctx context.Context) ([]Producto, error)
	// FindByNombre matches the name substring case-insensitively, ordered by
	// name ascending.
	FindByNombre(ctx context.Context, nombre string) ([]Producto, error)
	// FindByColor matches the color substring case-insensitively, ordered by
	// code ascending.
	FindByColor(ctx context.Context, color string) ([]Producto, error)

	ExistsByCodigo(ctx context.Context, codigo string) (bool, error)
	Count(ctx context.Context) (int64, error)
	CountStockBajo(ctx context.Context) (int64, error)
	// ValorTotal sums price times stock over active products, on demand.
	ValorTotal(ctx context.Context) (float64, error)
}
