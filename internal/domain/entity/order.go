package entity

import "github.com/shopspring/decimal"

// Estados de una orden de producción/catering.
const (
	OrderStatusNew       = "NEW"
	OrderStatusPicking   = "PICKING"
	OrderStatusReady     = "READY"
	OrderStatusShipped   = "SHIPPED"
	OrderStatusCancelled = "CANCELLED"
)

// Order representa una orden de catering.
type Order struct {
	ID       string
	Date     string // YYYY-MM-DD
	Customer string
	Items    int
	Total    decimal.Decimal
	Status   string
}
