package movement

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gategroup-ops/internal/domain/entity"
)

// FieldErrors mapea nombre de campo → mensaje. Vacío significa borrador válido.
type FieldErrors map[string]string

// Mensajes mostrados junto a cada campo.
const (
	MsgSelectProduct = "Selecciona un producto"
	MsgSelectPlant   = "Selecciona la planta"
	MsgSelectDrawer  = "Selecciona el cajón"
	MsgQuantity      = "Cantidad inválida"
	MsgLotNumber     = "Ingresa el lote"
	MsgExpiryMissing = "Selecciona la caducidad"
	MsgExpiryPast    = "La fecha de caducidad no puede ser pasada"
	MsgExpiryFormat  = "Fecha de caducidad inválida"
	MsgUnitCost      = "Costo inválido"
	MsgTemperature   = "Temperatura inválida"
	MsgFlightDate    = "Fecha de vuelo inválida"
	MsgQAStatus      = "Resultado QA inválido"
	MsgDestination   = "Define el destino (vuelo o área)"
	msgRequired      = "Campo requerido"
)

var requiredMessages = map[string]string{
	FieldProductID:  MsgSelectProduct,
	FieldPlantID:    MsgSelectPlant,
	FieldDrawerID:   MsgSelectDrawer,
	FieldQuantity:   MsgQuantity,
	FieldLotNumber:  MsgLotNumber,
	FieldExpiryDate: MsgExpiryMissing,
	FieldUnitCost:   MsgUnitCost,
}

var anyOfMessages = map[string]string{
	FieldDestinationArea: MsgDestination,
}

// Validate es una función pura de (tipo, borrador, hoy). Recolecta todas las violaciones:
// requeridos del layout, formato de los campos visibles con valor y grupos "al menos uno".
// La caducidad se compara solo por fecha contra today, ignorando la hora.
func Validate(t entity.MovementType, f entity.MovementForm, today time.Time) FieldErrors {
	layout := LayoutFor(t)
	errs := FieldErrors{}

	for _, name := range layout.Required {
		v, _ := Value(f, name)
		if isBlank(v) {
			errs[name] = requiredMessage(name)
		}
	}

	for _, name := range layout.Visible {
		if _, failed := errs[name]; failed {
			continue
		}
		v, _ := Value(f, name)
		if isBlank(v) {
			continue
		}
		if msg := checkFormat(layout, name, strings.TrimSpace(v), today); msg != "" {
			errs[name] = msg
		}
	}

	for _, group := range layout.AnyOf {
		if len(group) == 0 || anyFilled(f, group) {
			continue
		}
		target := group[len(group)-1]
		msg, ok := anyOfMessages[target]
		if !ok {
			msg = msgRequired
		}
		errs[target] = msg
	}

	return errs
}

func checkFormat(layout Layout, name, v string, today time.Time) string {
	switch name {
	case FieldQuantity:
		q, err := decimal.NewFromString(v)
		if err != nil {
			return MsgQuantity
		}
		if layout.SignedQuantity {
			if q.IsZero() {
				return MsgQuantity
			}
		} else if !q.GreaterThan(decimal.Zero) {
			return MsgQuantity
		}
	case FieldExpiryDate:
		exp, err := time.ParseInLocation(DateLayout, v, today.Location())
		if err != nil {
			return MsgExpiryFormat
		}
		if exp.Before(startOfDay(today)) {
			return MsgExpiryPast
		}
	case FieldUnitCost:
		c, err := decimal.NewFromString(v)
		if err != nil {
			return MsgUnitCost
		}
		// el signo solo se exige donde el costo es obligatorio
		if layout.isRequired(FieldUnitCost) && c.IsNegative() {
			return MsgUnitCost
		}
	case FieldTemperature:
		if _, err := decimal.NewFromString(v); err != nil {
			return MsgTemperature
		}
	case FieldFlightDate:
		if _, err := time.Parse(DateLayout, v); err != nil {
			return MsgFlightDate
		}
	case FieldQAStatus:
		if !strings.EqualFold(v, entity.QAStatusPass) && !strings.EqualFold(v, entity.QAStatusFail) {
			return MsgQAStatus
		}
	}
	return ""
}

func requiredMessage(name string) string {
	if msg, ok := requiredMessages[name]; ok {
		return msg
	}
	return msgRequired
}

func anyFilled(f entity.MovementForm, group []string) bool {
	for _, name := range group {
		if v, _ := Value(f, name); !isBlank(v) {
			return true
		}
	}
	return false
}

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
