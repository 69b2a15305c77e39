// Package order contiene el filtrado del listado de órdenes y el diccionario de estados.
package order

import (
	"strings"

	"github.com/jhoicas/gategroup-ops/internal/domain/catalog"
	"github.com/jhoicas/gategroup-ops/internal/domain/entity"
)

// Filter criterios del listado; los vacíos no filtran y se combinan con AND.
type Filter struct {
	Query  string // ID o cliente, subcadena sin distinguir mayúsculas
	Date   string // YYYY-MM-DD exacto
	Status string // clave exacta; vacío = todas
}

// Apply devuelve las órdenes que cumplen el filtro en el orden original.
func Apply(orders []entity.Order, f Filter) []entity.Order {
	q := catalog.Fold(strings.TrimSpace(f.Query))
	out := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		if q != "" && !strings.Contains(catalog.Fold(o.ID), q) && !strings.Contains(catalog.Fold(o.Customer), q) {
			continue
		}
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		if f.Date != "" && o.Date != f.Date {
			continue
		}
		out = append(out, o)
	}
	return out
}

// Status entrada del diccionario de estados (pestañas, filtros y color).
type Status struct {
	Key   string
	Label string
	Tone  string
}

// Statuses diccionario en orden de presentación; la clave vacía significa "Todas".
var Statuses = []Status{
	{Key: "", Label: "Todas"},
	{Key: entity.OrderStatusNew, Label: "Nuevo", Tone: "blue"},
	{Key: entity.OrderStatusPicking, Label: "Pick & Pack", Tone: "amber"},
	{Key: entity.OrderStatusReady, Label: "Listo", Tone: "emerald"},
	{Key: entity.OrderStatusShipped, Label: "Despachado", Tone: "indigo"},
	{Key: entity.OrderStatusCancelled, Label: "Cancelado", Tone: "red"},
}

// Label etiqueta del estado; para claves desconocidas devuelve la clave.
func Label(status string) string {
	for _, s := range Statuses {
		if s.Key == status {
			return s.Label
		}
	}
	return status
}

// ValidStatus indica si la clave es un estado conocido (o vacía).
func ValidStatus(status string) bool {
	for _, s := range Statuses {
		if s.Key == status {
			return true
		}
	}
	return false
}
