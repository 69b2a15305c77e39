package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gategroup-ops/internal/application/dto"
	apporder "github.com/jhoicas/gategroup-ops/internal/application/order"
	"github.com/jhoicas/gategroup-ops/internal/domain/order"
)

// OrderHandler listado de órdenes de catering y su reporte PDF.
type OrderHandler struct {
	uc *apporder.OrderUseCase
}

// NewOrderHandler construye el handler de órdenes.
func NewOrderHandler(uc *apporder.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// List godoc
// @Summary      Listar órdenes
// @Description  Filtra por ID o cliente (q), fecha exacta y estado. Los filtros vacíos no aplican.
// @Tags         orders
// @Produce      json
// @Security     Bearer
// @Param        q       query  string  false  "ID o cliente"
// @Param        date    query  string  false  "YYYY-MM-DD"
// @Param        status  query  string  false  "NEW, PICKING, READY, SHIPPED, CANCELLED"
// @Success      200  {array}   dto.OrderResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	f, ok, err := h.filter(c)
	if !ok {
		return err
	}
	orders, err := h.uc.List(c.UserContext(), f)
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	return c.JSON(out)
}

// Statuses godoc
// @Summary      Diccionario de estados de orden
// @Tags         orders
// @Produce      json
// @Security     Bearer
// @Success      200  {array}  dto.OrderStatusResponse
// @Router       /api/orders/statuses [get]
func (h *OrderHandler) Statuses(c *fiber.Ctx) error {
	statuses := h.uc.Statuses()
	out := make([]dto.OrderStatusResponse, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, dto.OrderStatusResponse{Key: s.Key, Label: s.Label, Tone: s.Tone})
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Reporte PDF de órdenes
// @Tags         orders
// @Produce      application/pdf
// @Security     Bearer
// @Param        q       query  string  false  "ID o cliente"
// @Param        date    query  string  false  "YYYY-MM-DD"
// @Param        status  query  string  false  "estado"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/orders/report [get]
func (h *OrderHandler) Report(c *fiber.Ctx) error {
	f, ok, err := h.filter(c)
	if !ok {
		return err
	}
	pdf, err := h.uc.Report(c.UserContext(), f)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="ordenes-%s.pdf"`, reportSuffix(f)))
	return c.Send(pdf)
}

func (h *OrderHandler) filter(c *fiber.Ctx) (order.Filter, bool, error) {
	var in dto.OrderListRequest
	if ok, err := bindQuery(c, &in); !ok {
		return order.Filter{}, false, err
	}
	return order.Filter{Query: in.Query, Date: in.Date, Status: in.Status}, true, nil
}

func reportSuffix(f order.Filter) string {
	if f.Date != "" {
		return f.Date
	}
	return "todas"
}
