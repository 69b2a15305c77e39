package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType tipo de movimiento de inventario.
type MovementType string

// Tipos de movimiento (pestañas del formulario).
const (
	MovementTypeEntry  MovementType = "ENTRY"  // entrada
	MovementTypeIssue  MovementType = "ISSUE"  // salida
	MovementTypeReturn MovementType = "RETURN" // reingreso
	MovementTypeAdjust MovementType = "ADJUST" // ajuste
)

// MovementTypes lista los tipos en el orden en que se presentan.
var MovementTypes = []MovementType{
	MovementTypeEntry,
	MovementTypeIssue,
	MovementTypeReturn,
	MovementTypeAdjust,
}

// Valid indica si el tipo es uno de los cuatro conocidos.
func (t MovementType) Valid() bool {
	switch t {
	case MovementTypeEntry, MovementTypeIssue, MovementTypeReturn, MovementTypeAdjust:
		return true
	}
	return false
}

// Label etiqueta de la pestaña.
func (t MovementType) Label() string {
	switch t {
	case MovementTypeEntry:
		return "Entrada"
	case MovementTypeIssue:
		return "Salida"
	case MovementTypeReturn:
		return "Reingreso"
	case MovementTypeAdjust:
		return "Ajuste"
	}
	return string(t)
}

// Action nombre de la acción usado en las notificaciones ("Ingreso registrado: ...").
func (t MovementType) Action() string {
	if t == MovementTypeEntry {
		return "Ingreso"
	}
	return t.Label()
}

// Resultado de control de calidad.
const (
	QAStatusPass = "PASS"
	QAStatusFail = "FAIL"
)

// MovementForm es el borrador editable. Todos los valores se guardan como texto crudo
// y se interpretan recién al validar/enviar.
type MovementForm struct {
	// derivados del producto seleccionado
	ProductID   string
	SKU         string
	ProductName string
	Unit        string

	// stock/lote
	LotNumber  string
	ExpiryDate string // YYYY-MM-DD
	Quantity   string
	UnitCost   string

	// ubicaciones
	PlantID  string
	DrawerID string

	// QA
	Temperature string
	QAStatus    string

	// proveedores/destinos
	Supplier        string
	FlightID        string
	FlightDate      string
	DestinationArea string

	Notes string
}

// Movement es el registro persistido de un movimiento enviado con éxito.
type Movement struct {
	ID              string
	Type            MovementType
	ProductID       string
	SKU             string
	ProductName     string
	Unit            string
	LotNumber       string
	ExpiryDate      *time.Time
	Quantity        decimal.Decimal // con signo solo en ajustes
	UnitCost        *decimal.Decimal
	PlantID         string
	DrawerID        string
	Temperature     *decimal.Decimal
	QAStatus        string
	Supplier        string
	FlightID        string
	FlightDate      *time.Time
	DestinationArea string
	Notes           string
	CreatedAt       time.Time
	CreatedBy       string
}
