// Package movement contiene las reglas puras del formulario de movimientos de inventario:
// qué campos muestra y exige cada tipo, la validación y la construcción del registro final.
package movement

import (
	"github.com/jhoicas/gategroup-ops/internal/domain"
	"github.com/jhoicas/gategroup-ops/internal/domain/entity"
)

// Nombres de campo del borrador (mismos que en el JSON de la API).
const (
	FieldProductID       = "product_id"
	FieldSKU             = "sku"
	FieldProductName     = "product_name"
	FieldUnit            = "unit"
	FieldLotNumber       = "lot_number"
	FieldExpiryDate      = "expiry_date"
	FieldQuantity        = "quantity"
	FieldUnitCost        = "unit_cost"
	FieldPlantID         = "plant_id"
	FieldDrawerID        = "drawer_id"
	FieldTemperature     = "temperature"
	FieldQAStatus        = "qa_status"
	FieldSupplier        = "supplier"
	FieldFlightID        = "flight_id"
	FieldFlightDate      = "flight_date"
	FieldDestinationArea = "destination_area"
	FieldNotes           = "notes"
)

// DateLayout formato de las fechas del formulario.
const DateLayout = "2006-01-02"

type fieldRef func(f *entity.MovementForm) *string

var fields = map[string]fieldRef{
	FieldProductID:       func(f *entity.MovementForm) *string { return &f.ProductID },
	FieldSKU:             func(f *entity.MovementForm) *string { return &f.SKU },
	FieldProductName:     func(f *entity.MovementForm) *string { return &f.ProductName },
	FieldUnit:            func(f *entity.MovementForm) *string { return &f.Unit },
	FieldLotNumber:       func(f *entity.MovementForm) *string { return &f.LotNumber },
	FieldExpiryDate:      func(f *entity.MovementForm) *string { return &f.ExpiryDate },
	FieldQuantity:        func(f *entity.MovementForm) *string { return &f.Quantity },
	FieldUnitCost:        func(f *entity.MovementForm) *string { return &f.UnitCost },
	FieldPlantID:         func(f *entity.MovementForm) *string { return &f.PlantID },
	FieldDrawerID:        func(f *entity.MovementForm) *string { return &f.DrawerID },
	FieldTemperature:     func(f *entity.MovementForm) *string { return &f.Temperature },
	FieldQAStatus:        func(f *entity.MovementForm) *string { return &f.QAStatus },
	FieldSupplier:        func(f *entity.MovementForm) *string { return &f.Supplier },
	FieldFlightID:        func(f *entity.MovementForm) *string { return &f.FlightID },
	FieldFlightDate:      func(f *entity.MovementForm) *string { return &f.FlightDate },
	FieldDestinationArea: func(f *entity.MovementForm) *string { return &f.DestinationArea },
	FieldNotes:           func(f *entity.MovementForm) *string { return &f.Notes },
}

// productFields solo se llenan al seleccionar un producto.
var productFields = map[string]bool{
	FieldProductID:   true,
	FieldSKU:         true,
	FieldProductName: true,
	FieldUnit:        true,
}

// IsProductField indica si el campo se deriva del producto seleccionado.
func IsProductField(name string) bool { return productFields[name] }

// Value devuelve el valor crudo de un campo; false si el nombre no existe.
func Value(f entity.MovementForm, name string) (string, bool) {
	ref, ok := fields[name]
	if !ok {
		return "", false
	}
	return *ref(&f), true
}

// SetField asigna un campo editable tal cual (sin coerción). Los campos del producto
// y los nombres desconocidos devuelven domain.ErrInvalidInput.
func SetField(f *entity.MovementForm, name, value string) error {
	ref, ok := fields[name]
	if !ok || productFields[name] {
		return domain.ErrInvalidInput
	}
	*ref(f) = value
	return nil
}

// ApplyProduct copia los cuatro campos identificadores del producto, siempre juntos.
func ApplyProduct(f *entity.MovementForm, p entity.Product) {
	f.ProductID = p.ID
	f.SKU = p.SKU
	f.ProductName = p.Name
	f.Unit = p.Unit
}

// NewForm devuelve el borrador vacío con la planta por defecto.
func NewForm(defaultPlant string) entity.MovementForm {
	return entity.MovementForm{
		PlantID:  defaultPlant,
		QAStatus: entity.QAStatusPass,
	}
}

// ClearTransactional limpia los campos transaccionales tras un guardado exitoso.
// Conserva el producto y la planta.
func ClearTransactional(f *entity.MovementForm) {
	f.LotNumber = ""
	f.ExpiryDate = ""
	f.Quantity = ""
	f.UnitCost = ""
	f.Supplier = ""
	f.DrawerID = ""
	f.Temperature = ""
	f.QAStatus = entity.QAStatusPass
	f.Notes = ""
	f.FlightID = ""
	f.FlightDate = ""
	f.DestinationArea = ""
}
