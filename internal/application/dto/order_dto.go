package dto

import "github.com/shopspring/decimal"

// OrderListRequest filtros del listado de órdenes.
type OrderListRequest struct {
	Query  string `query:"q" validate:"max=100"`
	Date   string `query:"date" validate:"omitempty,datetime=2006-01-02"`
	Status string `query:"status" validate:"omitempty,oneof=NEW PICKING READY SHIPPED CANCELLED"`
}

// OrderResponse orden de catering.
type OrderResponse struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Customer    string          `json:"customer"`
	Items       int             `json:"items"`
	Total       decimal.Decimal `json:"total"`
	Status      string          `json:"status"`
	StatusLabel string          `json:"status_label"`
}

// OrderStatusResponse entrada del diccionario de estados.
type OrderStatusResponse struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Tone  string `json:"tone,omitempty"`
}
