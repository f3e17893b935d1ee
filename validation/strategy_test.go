package validation

import (
	"errors"
	"testing"

	"inventario-textil/domain"
)

func productoValido() domain.Producto {
	p, err := domain.NuevoProducto(domain.ProductoConfig{
		Codigo:       "TEL001",
		Nombre:       "Tela de Prueba",
		TipoTela:     domain.Algodon,
		Color:        "Blanco",
		Precio:       25.50,
		StockInicial: 50,
		StockMinimo:  5,
	})
	if err != nil {
		panic(err)
	}
	return p
}

func campoDelError(t *testing.T, err error) string {
	t.Helper()
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	return ve.Field
}

func TestBasica_TableDriven(t *testing.T) {
	v := NewBasica()

	cases := []struct {
		name      string
		mutate    func(p *domain.Producto)
		wantField string
	}{
		{"valido", nil, ""},
		{"codigo vacio", func(p *domain.Producto) { p.Codigo = " " }, "codigo"},
		{"codigo corto", func(p *domain.Producto) { p.Codigo = "AB" }, "codigo"},
		{"codigo largo", func(p *domain.Producto) { p.Codigo = "ABCDEFGHIJKLMNOPQRSTU" }, "codigo"},
		{"codigo de 3 aceptado", func(p *domain.Producto) { p.Codigo = "AB1" }, ""},
		{"codigo de 20 aceptado", func(p *domain.Producto) { p.Codigo = "ABCDEFGHIJ1234567890" }, ""},
		{"nombre vacio", func(p *domain.Producto) { p.Nombre = "" }, "nombre"},
		{"nombre corto", func(p *domain.Producto) { p.Nombre = "Te" }, "nombre"},
		{"precio cero", func(p *domain.Producto) { p.Precio = 0 }, "precio"},
		{"precio negativo", func(p *domain.Producto) { p.Precio = -10 }, "precio"},
		{"tipo ausente", func(p *domain.Producto) { p.TipoTela = 0 }, "tipoTela"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			p := productoValido()
			if tc.mutate != nil {
				tc.mutate(&p)
			}
			err := v.Validar(&p)
			if tc.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if got := campoDelError(t, err); got != tc.wantField {
				t.Fatalf("campo = %q, want %q", got, tc.wantField)
			}
		})
	}
}

func TestBasica_ProductoNil(t *testing.T) {
	if err := NewBasica().Validar(nil); !domain.IsValidationError(err) {
		t.Fatalf("expected ValidationError for nil, got %v", err)
	}
}

func TestEstricta_TableDriven(t *testing.T) {
	v := NewEstricta()

	cases := []struct {
		name      string
		mutate    func(p *domain.Producto)
		wantField string
	}{
		{"valido", nil, ""},
		{"codigo con minusculas y guion", func(p *domain.Producto) { p.Codigo = "tel-01" }, "codigo"},
		{"codigo con espacios", func(p *domain.Producto) { p.Codigo = "TEL 01" }, "codigo"},
		{"color vacio", func(p *domain.Producto) { p.Color = "  " }, "color"},
		{"precio excesivo", func(p *domain.Producto) { p.Precio = 1500 }, "precio"},
		{"precio limite aceptado", func(p *domain.Producto) { p.Precio = 1000 }, ""},
		{"precio muy bajo", func(p *domain.Producto) { p.Precio = 0.5 }, "precio"},
		{"minimo cero", func(p *domain.Producto) { p.StockMinimo = 0 }, "stockMinimo"},
		{"stock excesivo", func(p *domain.Producto) { p.StockActual = 10001 }, "stockActual"},
		{"minimo incoherente", func(p *domain.Producto) { p.StockActual = 4; p.StockMinimo = 9 }, "stockMinimo"},
		{"minimo al doble aceptado", func(p *domain.Producto) { p.StockActual = 4; p.StockMinimo = 8 }, ""},
		{"stock cero no exige coherencia", func(p *domain.Producto) { p.StockActual = 0; p.StockMinimo = 50 }, ""},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			p := productoValido()
			if tc.mutate != nil {
				tc.mutate(&p)
			}
			err := v.Validar(&p)
			if tc.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if got := campoDelError(t, err); got != tc.wantField {
				t.Fatalf("campo = %q, want %q", got, tc.wantField)
			}
		})
	}
}

func TestEstricta_CorreBasicaPrimero(t *testing.T) {
	p := productoValido()
	p.Codigo = "ab" // falla basica (largo) antes que el patron estricto
	err := NewEstricta().Validar(&p)
	if got := campoDelError(t, err); got != "codigo" {
		t.Fatalf("campo = %q, want codigo", got)
	}
}

func TestIntrospeccion(t *testing.T) {
	for _, v := range []Strategy{NewBasica(), NewEstricta()} {
		if v.Nombre() == "" || v.DescripcionReglas() == "" {
			t.Fatalf("estrategia sin nombre o descripcion: %T", v)
		}
	}
	if NewBasica().Nombre() == NewEstricta().Nombre() {
		t.Fatalf("las estrategias deben reportar nombres distintos")
	}
}

func TestNewStrategy(t *testing.T) {
	cases := []struct {
		kind    string
		wantErr bool
	}{
		{"basica", false},
		{"basic", false},
		{"estricta", false},
		{"strict", false},
		{"desconocida", true},
		{"", true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run("kind="+tc.kind, func(t *testing.T) {
			v, err := NewStrategy(tc.kind)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for kind %q", tc.kind)
				}
				return
			}
			if err != nil || v == nil {
				t.Fatalf("unexpected result: %v, %v", v, err)
			}
		})
	}
}
