package movement

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gategroup-ops/internal/domain"
	"github.com/jhoicas/gategroup-ops/internal/domain/entity"
)

// Build convierte un borrador ya validado en el registro a persistir.
// Solo se copian los campos visibles para el tipo; lo oculto en la pestaña activa no se guarda.
func Build(t entity.MovementType, f entity.MovementForm, userID string, now time.Time) (*entity.Movement, error) {
	if !t.Valid() {
		return nil, domain.ErrInvalidInput
	}
	layout := LayoutFor(t)
	get := func(name string) string {
		if !layout.IsVisible(name) {
			return ""
		}
		v, _ := Value(f, name)
		return strings.TrimSpace(v)
	}

	qty, err := decimal.NewFromString(get(FieldQuantity))
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	m := &entity.Movement{
		Type:            t,
		ProductID:       f.ProductID,
		SKU:             f.SKU,
		ProductName:     f.ProductName,
		Unit:            f.Unit,
		LotNumber:       get(FieldLotNumber),
		Quantity:        qty,
		PlantID:         get(FieldPlantID),
		DrawerID:        get(FieldDrawerID),
		QAStatus:        strings.ToUpper(get(FieldQAStatus)),
		Supplier:        get(FieldSupplier),
		FlightID:        get(FieldFlightID),
		DestinationArea: get(FieldDestinationArea),
		Notes:           get(FieldNotes),
		CreatedAt:       now,
		CreatedBy:       userID,
	}
	if m.QAStatus == "" && layout.IsVisible(FieldQAStatus) {
		m.QAStatus = entity.QAStatusPass
	}

	if m.UnitCost, err = optionalDecimal(get(FieldUnitCost)); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if m.Temperature, err = optionalDecimal(get(FieldTemperature)); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if m.ExpiryDate, err = optionalDate(get(FieldExpiryDate), now.Location()); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if m.FlightDate, err = optionalDate(get(FieldFlightDate), now.Location()); err != nil {
		return nil, domain.ErrInvalidInput
	}
	return m, nil
}

func optionalDecimal(s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func optionalDate(s string, loc *time.Location) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
