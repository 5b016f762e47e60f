package enums

import "fmt"

// Categoria is the employee role that governs which endpoints a session may invoke.
type Categoria string

const (
	CategoriaVendedor Categoria = "VENDEDOR"
	CategoriaRH       Categoria = "RH"
	CategoriaAdmin    Categoria = "ADMIN"
)

var validCategorias = []Categoria{
	CategoriaVendedor,
	CategoriaRH,
	CategoriaAdmin,
}

// String implements fmt.Stringer.
func (c Categoria) String() string {
	return string(c)
}

// IsValid reports whether the value is a known Categoria.
func (c Categoria) IsValid() bool {
	for _, candidate := range validCategorias {
		if candidate == c {
			return true
		}
	}
	return false
}

// RequiresTurno reports whether the role tracks a work shift. Only store
// clerks work fixed shifts; HR and admins do not.
func (c Categoria) RequiresTurno() bool {
	return c == CategoriaVendedor
}

// CanManage reports whether the role may invoke HR/admin endpoints.
func (c Categoria) CanManage() bool {
	return c == CategoriaRH || c == CategoriaAdmin
}

// ParseCategoria converts raw input into a Categoria.
func ParseCategoria(value string) (Categoria, error) {
	for _, candidate := range validCategorias {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid categoria %q", value)
}
