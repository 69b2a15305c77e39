// Package catalog contiene la búsqueda de productos del catálogo.
package catalog

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/gategroup-ops/internal/domain/entity"
)

// Search devuelve los productos cuyo ID, SKU o nombre contienen query, sin distinguir
// mayúsculas (case folding Unicode). Conserva el orden del catálogo.
// Una consulta vacía devuelve un resultado vacío, no el catálogo completo.
func Search(products []entity.Product, query string) []entity.Product {
	q := Fold(strings.TrimSpace(query))
	if q == "" {
		return []entity.Product{}
	}
	out := make([]entity.Product, 0)
	for _, p := range products {
		if strings.Contains(Fold(p.ID), q) ||
			strings.Contains(Fold(p.SKU), q) ||
			strings.Contains(Fold(p.Name), q) {
			out = append(out, p)
		}
	}
	return out
}

// FindByCode busca por coincidencia exacta (sin mayúsculas) de SKU o ID, como lo
// entrega un lector de códigos.
func FindByCode(products []entity.Product, code string) (entity.Product, bool) {
	c := Fold(strings.TrimSpace(code))
	if c == "" {
		return entity.Product{}, false
	}
	for _, p := range products {
		if Fold(p.SKU) == c || Fold(p.ID) == c {
			return p, true
		}
	}
	return entity.Product{}, false
}

// Fold normaliza s para comparaciones sin distinguir mayúsculas.
// cases.Caser no es seguro para uso concurrente, por eso se crea uno por llamada.
func Fold(s string) string {
	return cases.Fold().String(s)
}
