package http

import (
	"github.com/jhoicas/gategroup-ops/internal/application/dto"
	"github.com/jhoicas/gategroup-ops/internal/application/movement"
	"github.com/jhoicas/gategroup-ops/internal/domain/entity"
	rules "github.com/jhoicas/gategroup-ops/internal/domain/movement"
	"github.com/jhoicas/gategroup-ops/internal/domain/order"
)

func toProductResponse(p entity.Product) dto.ProductResponse {
	return dto.ProductResponse{ID: p.ID, SKU: p.SKU, Name: p.Name, Unit: p.Unit, StdSpec: p.StdSpec}
}

func toProductList(products []entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out
}

func toLayoutDTO(l rules.Layout) dto.LayoutDTO {
	return dto.LayoutDTO{
		Type:           string(l.Type),
		Label:          l.Type.Label(),
		Visible:        l.Visible,
		Required:       l.Required,
		AnyOf:          l.AnyOf,
		SignedQuantity: l.SignedQuantity,
	}
}

func toFormDTO(f entity.MovementForm) dto.MovementFormDTO {
	return dto.MovementFormDTO{
		ProductID:       f.ProductID,
		SKU:             f.SKU,
		ProductName:     f.ProductName,
		Unit:            f.Unit,
		LotNumber:       f.LotNumber,
		ExpiryDate:      f.ExpiryDate,
		Quantity:        f.Quantity,
		UnitCost:        f.UnitCost,
		PlantID:         f.PlantID,
		DrawerID:        f.DrawerID,
		Temperature:     f.Temperature,
		QAStatus:        f.QAStatus,
		Supplier:        f.Supplier,
		FlightID:        f.FlightID,
		FlightDate:      f.FlightDate,
		DestinationArea: f.DestinationArea,
		Notes:           f.Notes,
	}
}

func toDraftResponse(id string, s movement.State) dto.DraftResponse {
	out := dto.DraftResponse{
		ID:         id,
		Type:       string(s.Type),
		Form:       toFormDTO(s.Form),
		Query:      s.Query,
		Errors:     map[string]string(s.Errors),
		Submitting: s.Submitting,
		Layout:     toLayoutDTO(s.Layout),
	}
	if s.Product != nil {
		p := toProductResponse(*s.Product)
		out.Product = &p
	}
	if s.Notice != nil {
		out.Notice = &dto.NoticeDTO{Type: s.Notice.Kind, Message: s.Notice.Message}
	}
	return out
}

func toMovementResponse(m *entity.Movement) dto.MovementResponse {
	out := dto.MovementResponse{
		ID:              m.ID,
		Type:            string(m.Type),
		ProductID:       m.ProductID,
		SKU:             m.SKU,
		ProductName:     m.ProductName,
		Unit:            m.Unit,
		LotNumber:       m.LotNumber,
		Quantity:        m.Quantity,
		UnitCost:        m.UnitCost,
		PlantID:         m.PlantID,
		DrawerID:        m.DrawerID,
		Temperature:     m.Temperature,
		QAStatus:        m.QAStatus,
		Supplier:        m.Supplier,
		FlightID:        m.FlightID,
		DestinationArea: m.DestinationArea,
		Notes:           m.Notes,
		CreatedAt:       m.CreatedAt,
		CreatedBy:       m.CreatedBy,
	}
	if m.ExpiryDate != nil {
		out.ExpiryDate = m.ExpiryDate.Format(rules.DateLayout)
	}
	if m.FlightDate != nil {
		out.FlightDate = m.FlightDate.Format(rules.DateLayout)
	}
	return out
}

func toOrderResponse(o entity.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:          o.ID,
		Date:        o.Date,
		Customer:    o.Customer,
		Items:       o.Items,
		Total:       o.Total,
		Status:      o.Status,
		StatusLabel: order.Label(o.Status),
	}
}

func toPlantList(plants []entity.Plant) []dto.LocationResponse {
	out := make([]dto.LocationResponse, 0, len(plants))
	for _, p := range plants {
		out = append(out, dto.LocationResponse{ID: p.ID, Name: p.Name})
	}
	return out
}

func toDrawerList(drawers []entity.Drawer) []dto.LocationResponse {
	out := make([]dto.LocationResponse, 0, len(drawers))
	for _, d := range drawers {
		out = append(out, dto.LocationResponse{ID: d.ID, Name: d.Name})
	}
	return out
}
