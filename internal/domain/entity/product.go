package entity

import "github.com/shopspring/decimal"

// Product representa un artículo del catálogo (solo lectura para el formulario de movimientos).
type Product struct {
	ID      string
	SKU     string
	Name    string
	Unit    string          // unidad de medida: pz, lata, botella...
	StdSpec decimal.Decimal // cantidad de especificación estándar
}
