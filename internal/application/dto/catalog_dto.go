package dto

import "github.com/shopspring/decimal"

// ProductResponse producto del catálogo.
type ProductResponse struct {
	ID      string          `json:"id"`
	SKU     string          `json:"sku"`
	Name    string          `json:"name"`
	Unit    string          `json:"unit"`
	StdSpec decimal.Decimal `json:"std_spec"`
}

// LocationResponse planta o cajón.
type LocationResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProductSearchRequest consulta de productos.
type ProductSearchRequest struct {
	Query string `query:"q" validate:"max=100"`
}
