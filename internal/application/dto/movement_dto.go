package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SelectTypeRequest cambio de pestaña.
type SelectTypeRequest struct {
	Type string `json:"type" validate:"required,oneof=ENTRY ISSUE RETURN ADJUST"`
}

// SelectProductRequest selección de producto por ID.
type SelectProductRequest struct {
	ProductID string `json:"product_id" validate:"required,max=64"`
}

// ScanRequest código leído por el escáner (SKU o ID).
type ScanRequest struct {
	Code string `json:"code" validate:"required,max=64"`
}

// SetFieldsRequest asignación de campos del borrador por nombre.
type SetFieldsRequest struct {
	Fields map[string]string `json:"fields" validate:"required,min=1,dive,max=500"`
}

// MovementFormDTO borrador tal como lo edita el operador (texto crudo).
type MovementFormDTO struct {
	ProductID       string `json:"product_id"`
	SKU             string `json:"sku"`
	ProductName     string `json:"product_name"`
	Unit            string `json:"unit"`
	LotNumber       string `json:"lot_number"`
	ExpiryDate      string `json:"expiry_date"`
	Quantity        string `json:"quantity"`
	UnitCost        string `json:"unit_cost"`
	PlantID         string `json:"plant_id"`
	DrawerID        string `json:"drawer_id"`
	Temperature     string `json:"temperature"`
	QAStatus        string `json:"qa_status"`
	Supplier        string `json:"supplier"`
	FlightID        string `json:"flight_id"`
	FlightDate      string `json:"flight_date"`
	DestinationArea string `json:"destination_area"`
	Notes           string `json:"notes"`
}

// NoticeDTO notificación transitoria.
type NoticeDTO struct {
	Type    string `json:"type"` // info | success | error
	Message string `json:"message"`
}

// LayoutDTO campos visibles y requeridos de un tipo de movimiento.
type LayoutDTO struct {
	Type           string     `json:"type"`
	Label          string     `json:"label"`
	Visible        []string   `json:"visible"`
	Required       []string   `json:"required"`
	AnyOf          [][]string `json:"any_of,omitempty"`
	SignedQuantity bool       `json:"signed_quantity"`
}

// DraftResponse estado completo de un borrador.
type DraftResponse struct {
	ID         string            `json:"id"`
	Type       string            `json:"type"`
	Form       MovementFormDTO   `json:"form"`
	Query      string            `json:"query"`
	Product    *ProductResponse  `json:"product"`
	Errors     map[string]string `json:"errors"`
	Submitting bool              `json:"submitting"`
	Notice     *NoticeDTO        `json:"notice"`
	Layout     LayoutDTO         `json:"layout"`
}

// ValidationResponse resultado de una validación especulativa.
type ValidationResponse struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
}

// MovementResponse movimiento registrado.
type MovementResponse struct {
	ID              string           `json:"id"`
	Type            string           `json:"type"`
	ProductID       string           `json:"product_id"`
	SKU             string           `json:"sku"`
	ProductName     string           `json:"product_name"`
	Unit            string           `json:"unit"`
	LotNumber       string           `json:"lot_number,omitempty"`
	ExpiryDate      string           `json:"expiry_date,omitempty"`
	Quantity        decimal.Decimal  `json:"quantity"`
	UnitCost        *decimal.Decimal `json:"unit_cost,omitempty"`
	PlantID         string           `json:"plant_id"`
	DrawerID        string           `json:"drawer_id,omitempty"`
	Temperature     *decimal.Decimal `json:"temperature,omitempty"`
	QAStatus        string           `json:"qa_status,omitempty"`
	Supplier        string           `json:"supplier,omitempty"`
	FlightID        string           `json:"flight_id,omitempty"`
	FlightDate      string           `json:"flight_date,omitempty"`
	DestinationArea string           `json:"destination_area,omitempty"`
	Notes           string           `json:"notes,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	CreatedBy       string           `json:"created_by"`
}

// SubmitResponse resultado de un envío exitoso.
type SubmitResponse struct {
	Movement MovementResponse `json:"movement"`
	Draft    DraftResponse    `json:"draft"`
}

// MovementListResponse listado paginado de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
