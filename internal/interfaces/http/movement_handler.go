package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gategroup-ops/internal/application/dto"
	"github.com/jhoicas/gategroup-ops/internal/application/movement"
	"github.com/jhoicas/gategroup-ops/internal/domain/entity"
	rules "github.com/jhoicas/gategroup-ops/internal/domain/movement"
	"github.com/jhoicas/gategroup-ops/internal/domain/repository"
)

// MovementHandler formulario de movimientos (borradores) y movimientos registrados.
type MovementHandler struct {
	drafts    *movement.DraftStore
	movements repository.MovementRepository
}

// NewMovementHandler construye el handler de movimientos.
func NewMovementHandler(drafts *movement.DraftStore, movements repository.MovementRepository) *MovementHandler {
	return &MovementHandler{drafts: drafts, movements: movements}
}

// Layouts godoc
// @Summary      Campos visibles y requeridos por tipo de movimiento
// @Tags         movements
// @Produce      json
// @Security     Bearer
// @Success      200  {array}  dto.LayoutDTO
// @Router       /api/movements/layouts [get]
func (h *MovementHandler) Layouts(c *fiber.Ctx) error {
	out := make([]dto.LayoutDTO, 0, len(entity.MovementTypes))
	for _, t := range entity.MovementTypes {
		out = append(out, toLayoutDTO(rules.LayoutFor(t)))
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar movimientos registrados
// @Tags         movements
// @Produce      json
// @Security     Bearer
// @Param        limit   query  int  false  "máximo 100"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  dto.MovementListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if ok, err := bindQuery(c, &page); !ok {
		return err
	}
	page.DefaultPage()
	list, err := h.movements.List(c.UserContext(), page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, toMovementResponse(m))
	}
	return c.JSON(dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	})
}

// OpenDraft godoc
// @Summary      Abrir borrador de movimiento
// @Description  Crea un formulario vacío de tipo Entrada con la planta por defecto.
// @Tags         movements
// @Produce      json
// @Security     Bearer
// @Success      201  {object}  dto.DraftResponse
// @Router       /api/movements/drafts [post]
func (h *MovementHandler) OpenDraft(c *fiber.Ctx) error {
	id, ctrl := h.drafts.Open(GetUserID(c))
	return c.Status(fiber.StatusCreated).JSON(toDraftResponse(id, ctrl.Snapshot()))
}

// GetDraft godoc
// @Summary      Estado del borrador
// @Tags         movements
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "ID del borrador"
// @Success      200  {object}  dto.DraftResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/drafts/{id} [get]
func (h *MovementHandler) GetDraft(c *fiber.Ctx) error {
	ctrl, err := h.draft(c)
	if err != nil {
		return writeError(c, err)
	}
	return h.respond(c, ctrl)
}

// DeleteDraft godoc
// @Summary      Descartar borrador
// @Tags         movements
// @Security     Bearer
// @Param        id   path  string  true  "ID del borrador"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/drafts/{id} [delete]
func (h *MovementHandler) DeleteDraft(c *fiber.Ctx) error {
	if err := h.drafts.Delete(c.Params("id"), GetUserID(c)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SelectType godoc
// @Summary      Cambiar tipo de movimiento
// @Tags         movements
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path  string                 true  "ID del borrador"
// @Param        body  body  dto.SelectTypeRequest  true  "ENTRY, ISSUE, RETURN, ADJUST"
// @Success      200  {object}  dto.DraftResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements/drafts/{id}/type [put]
func (h *MovementHandler) SelectType(c *fiber.Ctx) error {
	ctrl, err := h.draft(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.SelectTypeRequest
	if ok, err := bindBody(c, &in); !ok {
		return err
	}
	if err := ctrl.SelectType(entity.MovementType(in.Type)); err != nil {
		return writeError(c, err)
	}
	return h.respond(c, ctrl)
}

// SearchProducts godoc
// @Summary      Buscar productos desde el borrador
// @Tags         movements
// @Produce      json
// @Security     Bearer
// @Param        id  path   string  true   "ID del borrador"
// @Param        q   query  string  false  "nombre o SKU"
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/movements/drafts/{id}/products [get]
func (h *MovementHandler) SearchProducts(c *fiber.Ctx) error {
	ctrl, err := h.draft(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.ProductSearchRequest
	if ok, err := bindQuery(c, &in); !ok {
		return err
	}
	products, err := ctrl.SearchProducts(c.UserContext(), in.Query)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toProductList(products))
}

// SelectProduct godoc
// @Summary      Seleccionar producto
// @Tags         movements
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path  string                    true  "ID del borrador"
// @Param        body  body  dto.SelectProductRequest  true  "product_id"
// @Success      200  {object}  dto.DraftResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/drafts/{id}/product [put]
func (h *MovementHandler) SelectProduct(c *fiber.Ctx) error {
	ctrl, err := h.draft(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.SelectProductRequest
	if ok, err := bindBody(c, &in); !ok {
		return err
	}
	if _, err := ctrl.SelectProduct(c.UserContext(), in.ProductID); err != nil {
		return writeError(c, err)
	}
	return h.respond(c, ctrl)
}

// Scan godoc
// @Summary      Código leído por escáner
// @Tags         movements
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path  string           true  "ID del borrador"
// @Param        body  body  dto.ScanRequest  true  "SKU o ID"
// @Success      200  {object}  dto.DraftResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/drafts/{id}/scan [post]
func (h *MovementHandler) Scan(c *fiber.Ctx) error {
	ctrl, err := h.draft(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.ScanRequest
	if ok, err := bindBody(c, &in); !ok {
		return err
	}
	if _, err := ctrl.ScanCode(c.UserContext(), in.Code); err != nil {
		return writeError(c, err)
	}
	return h.respond(c, ctrl)
}

// SetFields godoc
// @Summary      Editar campos del borrador
// @Description  Los valores se guardan tal cual; un nombre desconocido o de producto rechaza todo el cambio.
// @Tags         movements
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path  string                true  "ID del borrador"
// @Param        body  body  dto.SetFieldsRequest  true  "mapa campo → valor"
// @Success      200  {object}  dto.DraftResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements/drafts/{id}/fields [patch]
func (h *MovementHandler) SetFields(c *fiber.Ctx) error {
	ctrl, err := h.draft(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.SetFieldsRequest
	if ok, err := bindBody(c, &in); !ok {
		return err
	}
	if err := ctrl.SetFields(in.Fields); err != nil {
		return writeError(c, err)
	}
	return h.respond(c, ctrl)
}

// Validate godoc
// @Summary      Validar borrador sin enviarlo
// @Tags         movements
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "ID del borrador"
// @Success      200  {object}  dto.ValidationResponse
// @Router       /api/movements/drafts/{id}/validation [get]
func (h *MovementHandler) Validate(c *fiber.Ctx) error {
	ctrl, err := h.draft(c)
	if err != nil {
		return writeError(c, err)
	}
	errs := ctrl.Validate()
	return c.JSON(dto.ValidationResponse{Valid: len(errs) == 0, Errors: map[string]string(errs)})
}

// Submit godoc
// @Summary      Registrar movimiento
// @Description  Valida y guarda. 422 con errores por campo, 409 si ya hay un guardado en curso, 502 si falla el guardado (el borrador se conserva).
// @Tags         movements
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "ID del borrador"
// @Success      201  {object}  dto.SubmitResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/movements/drafts/{id}/submit [post]
func (h *MovementHandler) Submit(c *fiber.Ctx) error {
	id := c.Params("id")
	ctrl, err := h.draft(c)
	if err != nil {
		return writeError(c, err)
	}
	m, err := ctrl.Submit(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SubmitResponse{
		Movement: toMovementResponse(m),
		Draft:    toDraftResponse(id, ctrl.Snapshot()),
	})
}

// Reset godoc
// @Summary      Limpiar borrador
// @Tags         movements
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "ID del borrador"
// @Success      200  {object}  dto.DraftResponse
// @Router       /api/movements/drafts/{id}/reset [post]
func (h *MovementHandler) Reset(c *fiber.Ctx) error {
	ctrl, err := h.draft(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := ctrl.Reset(); err != nil {
		return writeError(c, err)
	}
	return h.respond(c, ctrl)
}

// DismissNotice godoc
// @Summary      Descartar notificación
// @Tags         movements
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "ID del borrador"
// @Success      200  {object}  dto.DraftResponse
// @Router       /api/movements/drafts/{id}/notice [delete]
func (h *MovementHandler) DismissNotice(c *fiber.Ctx) error {
	ctrl, err := h.draft(c)
	if err != nil {
		return writeError(c, err)
	}
	ctrl.DismissNotice()
	return h.respond(c, ctrl)
}

func (h *MovementHandler) draft(c *fiber.Ctx) (*movement.Controller, error) {
	return h.drafts.Get(c.Params("id"), GetUserID(c))
}

func (h *MovementHandler) respond(c *fiber.Ctx, ctrl *movement.Controller) error {
	return c.JSON(toDraftResponse(c.Params("id"), ctrl.Snapshot()))
}
