package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gategroup-ops/internal/application/catalog"
	"github.com/jhoicas/gategroup-ops/internal/application/dto"
)

// CatalogHandler expone productos, plantas y cajones.
type CatalogHandler struct {
	uc *catalog.CatalogUseCase
}

// NewCatalogHandler construye el handler del catálogo.
func NewCatalogHandler(uc *catalog.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// SearchProducts godoc
// @Summary      Buscar productos por nombre o SKU
// @Tags         catalog
// @Produce      json
// @Security     Bearer
// @Param        q  query  string  false  "subcadena de nombre o SKU"
// @Success      200  {array}   dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *CatalogHandler) SearchProducts(c *fiber.Ctx) error {
	var in dto.ProductSearchRequest
	if ok, err := bindQuery(c, &in); !ok {
		return err
	}
	products, err := h.uc.Search(c.UserContext(), in.Query)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toProductList(products))
}

// GetProduct godoc
// @Summary      Obtener producto por ID
// @Tags         catalog
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	p, err := h.uc.GetProduct(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toProductResponse(*p))
}

// Plants godoc
// @Summary      Listar plantas
// @Tags         catalog
// @Produce      json
// @Security     Bearer
// @Success      200  {array}  dto.LocationResponse
// @Router       /api/plants [get]
func (h *CatalogHandler) Plants(c *fiber.Ctx) error {
	plants, err := h.uc.Plants(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toPlantList(plants))
}

// Drawers godoc
// @Summary      Listar cajones
// @Tags         catalog
// @Produce      json
// @Security     Bearer
// @Success      200  {array}  dto.LocationResponse
// @Router       /api/drawers [get]
func (h *CatalogHandler) Drawers(c *fiber.Ctx) error {
	drawers, err := h.uc.Drawers(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toDrawerList(drawers))
}
