package movement

import "github.com/jhoicas/gategroup-ops/internal/domain/entity"

// Layout describe qué campos muestra y exige cada tipo de movimiento.
// Lo consumen por igual la validación y la presentación.
type Layout struct {
	Type     entity.MovementType
	Visible  []string
	Required []string
	// AnyOf: en cada grupo al menos un campo debe venir lleno; la falta se reporta en el último.
	AnyOf          [][]string
	SignedQuantity bool
}

var (
	productVisible  = []string{FieldProductID, FieldSKU, FieldProductName, FieldUnit}
	locationVisible = []string{FieldPlantID, FieldDrawerID, FieldNotes}
)

func visible(extra ...string) []string {
	out := make([]string, 0, len(productVisible)+len(extra)+len(locationVisible))
	out = append(out, productVisible...)
	out = append(out, extra...)
	return append(out, locationVisible...)
}

var layouts = map[entity.MovementType]Layout{
	entity.MovementTypeEntry: {
		Type: entity.MovementTypeEntry,
		Visible: visible(FieldLotNumber, FieldExpiryDate, FieldQuantity, FieldUnitCost,
			FieldTemperature, FieldQAStatus, FieldSupplier),
		Required: []string{FieldProductID, FieldPlantID, FieldDrawerID, FieldQuantity,
			FieldLotNumber, FieldExpiryDate, FieldUnitCost},
	},
	entity.MovementTypeReturn: {
		Type: entity.MovementTypeReturn,
		Visible: visible(FieldLotNumber, FieldExpiryDate, FieldQuantity, FieldUnitCost,
			FieldTemperature, FieldQAStatus),
		Required: []string{FieldProductID, FieldPlantID, FieldDrawerID, FieldQuantity,
			FieldLotNumber, FieldExpiryDate},
	},
	entity.MovementTypeIssue: {
		Type:     entity.MovementTypeIssue,
		Visible:  visible(FieldQuantity, FieldFlightID, FieldFlightDate, FieldDestinationArea),
		Required: []string{FieldProductID, FieldPlantID, FieldDrawerID, FieldQuantity},
		AnyOf:    [][]string{{FieldFlightID, FieldDestinationArea}},
	},
	entity.MovementTypeAdjust: {
		Type:           entity.MovementTypeAdjust,
		Visible:        visible(FieldQuantity),
		Required:       []string{FieldProductID, FieldPlantID, FieldQuantity},
		SignedQuantity: true,
	},
}

// LayoutFor devuelve el layout del tipo. Para un tipo desconocido devuelve solo los
// requisitos comunes a todos los tipos.
func LayoutFor(t entity.MovementType) Layout {
	if l, ok := layouts[t]; ok {
		return l
	}
	return Layout{
		Type:     t,
		Visible:  visible(FieldQuantity),
		Required: []string{FieldProductID, FieldPlantID, FieldDrawerID, FieldQuantity},
	}
}

// IsVisible indica si el campo se muestra para el layout.
func (l Layout) IsVisible(name string) bool {
	for _, v := range l.Visible {
		if v == name {
			return true
		}
	}
	return false
}

func (l Layout) isRequired(name string) bool {
	for _, r := range l.Required {
		if r == name {
			return true
		}
	}
	return false
}
