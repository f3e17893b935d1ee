package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"inventario-textil/domain"
)

func producto(codigo, nombre string, tipo domain.TipoTela, color string, precio float64, stock, minimo int) domain.Producto {
	p, err := domain.NuevoProducto(domain.ProductoConfig{
		Codigo:       codigo,
		Nombre:       nombre,
		TipoTela:     tipo,
		Color:        color,
		Precio:       precio,
		StockInicial: stock,
		StockMinimo:  minimo,
	})
	if err != nil {
		panic(err)
	}
	return p
}

func TestSaveRoundTrip(t *testing.T) {
	s := NewMemoria()
	ctx := context.Background()

	guardado, err := s.Save(ctx, producto("ALG001", "Algodón Blanco", domain.Algodon, "Blanco", 25.50, 50, 5))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if guardado.ID != 1 {
		t.Fatalf("id = %d, want 1 (contador desde 1)", guardado.ID)
	}

	// lookup por codigo es case-insensitive y exacto
	encontrado, err := s.FindByCodigo(ctx, "alg001")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if !encontrado.MismoCodigo(&guardado) || encontrado.ID != guardado.ID {
		t.Fatalf("round trip devolvio otro producto: %+v", encontrado)
	}

	segundo, err := s.Save(ctx, producto("POL001", "Poliéster Negro", domain.Poliester, "Negro", 18.75, 10, 15))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if segundo.ID != 2 {
		t.Fatalf("id = %d, want 2 (contador monotonico)", segundo.ID)
	}
}

func TestSaveDuplicados_TableDriven(t *testing.T) {
	cases := []struct {
		name     string
		primero  string
		segundo  string
		conflict bool
	}{
		{"mismo codigo exacto", "TEL001", "TEL001", true},
		{"minusculas colisionan", "TEL001", "tel001", true},
		{"mezcla colisiona", "tel001", "TeL001", true},
		{"codigos distintos", "TEL001", "TEL002", false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			s := NewMemoria()
			ctx := context.Background()
			if _, err := s.Save(ctx, producto(tc.primero, "Tela Uno", domain.Algodon, "Blanco", 10, 5, 5)); err != nil {
				t.Fatalf("setup save failed: %v", err)
			}
			_, err := s.Save(ctx, producto(tc.segundo, "Tela Dos", domain.Denim, "Azul", 20, 5, 5))
			if tc.conflict && !domain.IsDuplicateCodeError(err) {
				t.Fatalf("expected DuplicateCodeError, got %v", err)
			}
			if !tc.conflict && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	s := NewMemoria()
	ctx := context.Background()

	t.Run("no existe", func(t *testing.T) {
		p := producto("TEL001", "Tela", domain.Algodon, "Blanco", 10, 5, 5)
		p.ID = 99
		if _, err := s.Update(ctx, p); !domain.IsNotFoundError(err) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
	})

	t.Run("sobrescribe en el lugar", func(t *testing.T) {
		guardado, err := s.Save(ctx, producto("TEL001", "Tela", domain.Algodon, "Blanco", 10, 5, 5))
		if err != nil {
			t.Fatalf("setup save failed: %v", err)
		}
		guardado.StockActual = 42
		if _, err := s.Update(ctx, guardado); err != nil {
			t.Fatalf("update failed: %v", err)
		}
		releido, _ := s.FindByID(ctx, guardado.ID)
		if releido.StockActual != 42 {
			t.Fatalf("stock = %d, want 42", releido.StockActual)
		}
	})

	t.Run("cambio de codigo actualiza el indice", func(t *testing.T) {
		guardado, err := s.Save(ctx, producto("REN001", "Renombrable", domain.Lino, "Beige", 10, 5, 5))
		if err != nil {
			t.Fatalf("setup save failed: %v", err)
		}
		guardado.Codigo = "REN002"
		if _, err := s.Update(ctx, guardado); err != nil {
			t.Fatalf("update failed: %v", err)
		}
		if _, err := s.FindByCodigo(ctx, "REN001"); !domain.IsNotFoundError(err) {
			t.Fatalf("codigo viejo sigue indexado: %v", err)
		}
		if _, err := s.FindByCodigo(ctx, "ren002"); err != nil {
			t.Fatalf("codigo nuevo no indexado: %v", err)
		}
	})

	t.Run("cambio a codigo ajeno falla", func(t *testing.T) {
		guardado, err := s.Save(ctx, producto("OCU001", "Ocupante", domain.Lana, "Gris", 10, 5, 5))
		if err != nil {
			t.Fatalf("setup save failed: %v", err)
		}
		guardado.Codigo = "TEL001"
		if _, err := s.Update(ctx, guardado); !domain.IsDuplicateCodeError(err) {
			t.Fatalf("expected DuplicateCodeError, got %v", err)
		}
		// el producto conserva su codigo original en el indice
		if _, err := s.FindByCodigo(ctx, "OCU001"); err != nil {
			t.Fatalf("indice corrupto tras fallo: %v", err)
		}
	})
}

func TestSoftDelete(t *testing.T) {
	s := NewMemoria()
	ctx := context.Background()

	guardado, err := s.Save(ctx, producto("TEL001", "Tela", domain.Algodon, "Blanco", 10, 5, 5))
	if err != nil {
		t.Fatalf("setup save failed: %v", err)
	}

	encontrado, err := s.SoftDelete(ctx, guardado.ID)
	if err != nil || !encontrado {
		t.Fatalf("primer delete = %t, %v; want true, nil", encontrado, err)
	}

	// ausente de todas las lecturas
	if _, err := s.FindByID(ctx, guardado.ID); !domain.IsNotFoundError(err) {
		t.Fatalf("producto inactivo visible por id: %v", err)
	}
	if _, err := s.FindByCodigo(ctx, "TEL001"); !domain.IsNotFoundError(err) {
		t.Fatalf("producto inactivo visible por codigo: %v", err)
	}
	todos, _ := s.ListAll(ctx)
	if len(todos) != 0 {
		t.Fatalf("ListAll = %d productos, want 0", len(todos))
	}

	// segundo delete reporta no encontrado
	encontrado, err = s.SoftDelete(ctx, guardado.ID)
	if err != nil || encontrado {
		t.Fatalf("segundo delete = %t, %v; want false, nil", encontrado, err)
	}

	// id inexistente
	encontrado, err = s.SoftDelete(ctx, 999)
	if err != nil || encontrado {
		t.Fatalf("delete de id inexistente = %t, %v; want false, nil", encontrado, err)
	}

	// el codigo queda libre para un producto nuevo
	if _, err := s.Save(ctx, producto("TEL001", "Tela Nueva", domain.Seda, "Rosa", 80, 3, 5)); err != nil {
		t.Fatalf("codigo de inactivo deberia estar libre: %v", err)
	}
}

func TestBusquedasYOrden(t *testing.T) {
	s := NewMemoria()
	ctx := context.Background()

	semilla := []domain.Producto{
		producto("DEN001", "Denim Azul Clásico", domain.Denim, "Azul", 35, 20, 12),
		producto("ALG002", "Algodón Negro", domain.Algodon, "Negro", 22, 2, 10),
		producto("ALG001", "Algodón Blanco Premium", domain.Algodon, "Blanco", 25.50, 6, 10),
		producto("SED001", "Seda Rosa Natural", domain.Seda, "Rosa", 85, 1, 5),
	}
	for _, p := range semilla {
		if _, err := s.Save(ctx, p); err != nil {
			t.Fatalf("setup save failed: %v", err)
		}
	}

	t.Run("todos por codigo ascendente", func(t *testing.T) {
		todos, err := s.ListAll(ctx)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		want := []string{"ALG001", "ALG002", "DEN001", "SED001"}
		if len(todos) != len(want) {
			t.Fatalf("len = %d, want %d", len(todos), len(want))
		}
		for i, codigo := range want {
			if todos[i].Codigo != codigo {
				t.Fatalf("orden[%d] = %s, want %s", i, todos[i].Codigo, codigo)
			}
		}
	})

	t.Run("por tipo filtra y ordena", func(t *testing.T) {
		algodones, err := s.FindByTipo(ctx, domain.Algodon)
		if err != nil {
			t.Fatalf("find failed: %v", err)
		}
		if len(algodones) != 2 || algodones[0].Codigo != "ALG001" {
			t.Fatalf("resultado inesperado: %+v", algodones)
		}
		if lycras, _ := s.FindByTipo(ctx, domain.Lycra); len(lycras) != 0 {
			t.Fatalf("tipo sin productos devolvio %d", len(lycras))
		}
	})

	t.Run("stock bajo por stock ascendente", func(t *testing.T) {
		bajos, err := s.ListStockBajo(ctx)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		// SED001 (1), ALG002 (2), ALG001 (6<=10); DEN001 (20>12) queda fuera
		want := []string{"SED001", "ALG002", "ALG001"}
		if len(bajos) != len(want) {
			t.Fatalf("len = %d, want %d", len(bajos), len(want))
		}
		for i, codigo := range want {
			if bajos[i].Codigo != codigo {
				t.Fatalf("orden[%d] = %s, want %s", i, bajos[i].Codigo, codigo)
			}
		}
	})

	t.Run("nombre por substring case-insensitive", func(t *testing.T) {
		out, err := s.FindByNombre(ctx, "algodón")
		if err != nil {
			t.Fatalf("find failed: %v", err)
		}
		if len(out) != 2 || out[0].Nombre > out[1].Nombre {
			t.Fatalf("resultado inesperado: %+v", out)
		}
		if vacio, _ := s.FindByNombre(ctx, "  "); len(vacio) != 0 {
			t.Fatalf("busqueda vacia devolvio %d", len(vacio))
		}
	})

	t.Run("color por substring case-insensitive", func(t *testing.T) {
		out, err := s.FindByColor(ctx, "AZUL")
		if err != nil {
			t.Fatalf("find failed: %v", err)
		}
		if len(out) != 1 || out[0].Codigo != "DEN001" {
			t.Fatalf("resultado inesperado: %+v", out)
		}
	})
}

func TestAgregados(t *testing.T) {
	s := NewMemoria()
	ctx := context.Background()

	if _, err := s.Save(ctx, producto("ALG001", "Algodón", domain.Algodon, "Blanco", 10, 5, 3)); err != nil {
		t.Fatalf("setup save failed: %v", err)
	}
	guardado, err := s.Save(ctx, producto("SED001", "Seda Rosa", domain.Seda, "Rosa", 80, 2, 5))
	if err != nil {
		t.Fatalf("setup save failed: %v", err)
	}

	if n, _ := s.Count(ctx); n != 2 {
		t.Fatalf("count = %d, want 2", n)
	}
	if n, _ := s.CountStockBajo(ctx); n != 1 {
		t.Fatalf("count bajo = %d, want 1", n)
	}
	if valor, _ := s.ValorTotal(ctx); valor != 10*5+80*2 {
		t.Fatalf("valor = %v, want %v", valor, 10*5+80*2)
	}
	if existe, _ := s.ExistsByCodigo(ctx, "sed001"); !existe {
		t.Fatalf("exists deberia ser true")
	}

	// los agregados se calculan bajo demanda: el delete los cambia
	if _, err := s.SoftDelete(ctx, guardado.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if n, _ := s.Count(ctx); n != 1 {
		t.Fatalf("count tras delete = %d, want 1", n)
	}
	if valor, _ := s.ValorTotal(ctx); valor != 50 {
		t.Fatalf("valor tras delete = %v, want 50", valor)
	}
	if existe, _ := s.ExistsByCodigo(ctx, "SED001"); existe {
		t.Fatalf("exists de inactivo deberia ser false")
	}
}

func TestContextoCancelado(t *testing.T) {
	s := NewMemoria()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.Save(ctx, producto("TEL001", "Tela", domain.Algodon, "Blanco", 10, 5, 5)); err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if _, err := s.ListAll(ctx); err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestCreacionConcurrenteMismoCodigo(t *testing.T) {
	s := NewMemoria()
	ctx := context.Background()

	const goroutines = 32
	var wg sync.WaitGroup
	errs := make(chan error, goroutines)

	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			_, err := s.Save(ctx, producto("TEL001", "Tela Concurrente", domain.Algodon, "Blanco", 10, 5, 5))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var exitos, duplicados int
	for err := range errs {
		switch {
		case err == nil:
			exitos++
		case domain.IsDuplicateCodeError(err):
			duplicados++
		default:
			t.Fatalf("error inesperado: %v", err)
		}
	}
	if exitos != 1 || duplicados != goroutines-1 {
		t.Fatalf("exitos=%d duplicados=%d, want 1/%d", exitos, duplicados, goroutines-1)
	}
}

func TestIdentificadoresConcurrentesUnicos(t *testing.T) {
	s := NewMemoria()
	ctx := context.Background()

	const goroutines = 50
	var wg sync.WaitGroup
	ids := make(chan int64, goroutines)

	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		i := i
		go func() {
			defer wg.Done()
			p, err := s.Save(ctx, producto(fmt.Sprintf("COD%03d", i), "Tela", domain.Algodon, "Blanco", 10, 5, 5))
			if err != nil {
				t.Errorf("save failed: %v", err)
				return
			}
			ids <- p.ID
		}()
	}
	wg.Wait()
	close(ids)

	vistos := map[int64]bool{}
	for id := range ids {
		if vistos[id] {
			t.Fatalf("id duplicado: %d", id)
		}
		vistos[id] = true
	}
	if len(vistos) != goroutines {
		t.Fatalf("ids = %d, want %d", len(vistos), goroutines)
	}
}
