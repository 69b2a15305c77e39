package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/gategroup-ops/internal/application/auth"
	"github.com/jhoicas/gategroup-ops/internal/application/catalog"
	"github.com/jhoicas/gategroup-ops/internal/application/movement"
	"github.com/jhoicas/gategroup-ops/internal/application/order"
	"github.com/jhoicas/gategroup-ops/internal/domain/entity"
	"github.com/jhoicas/gategroup-ops/internal/domain/repository"
	"github.com/jhoicas/gategroup-ops/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	CatalogUC *catalog.CatalogUseCase
	OrderUC   *order.OrderUseCase
	Drafts    *movement.DraftStore
	Movements repository.MovementRepository
	JWTSecret string
	AppName   string
	Logger    *logger.Logger      // opcional: log de cada petición
	Metrics   prometheus.Gatherer // opcional: expone /metrics
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Logger != nil {
		app.Use(RequestLogger(deps.Logger))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Metrics, promhttp.HandlerOpts{})))
	}

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	protected.Get("/products", catalogHandler.SearchProducts)
	protected.Get("/products/:id", catalogHandler.GetProduct)
	protected.Get("/plants", catalogHandler.Plants)
	protected.Get("/drawers", catalogHandler.Drawers)

	// Movimientos y borradores del formulario
	movementHandler := NewMovementHandler(deps.Drafts, deps.Movements)
	movements := protected.Group("/movements")
	movements.Get("/", movementHandler.List)
	movements.Get("/layouts", movementHandler.Layouts)

	drafts := movements.Group("/drafts")
	drafts.Post("/", movementHandler.OpenDraft)
	drafts.Get("/:id", movementHandler.GetDraft)
	drafts.Delete("/:id", movementHandler.DeleteDraft)
	drafts.Put("/:id/type", movementHandler.SelectType)
	drafts.Get("/:id/products", movementHandler.SearchProducts)
	drafts.Put("/:id/product", movementHandler.SelectProduct)
	drafts.Post("/:id/scan", movementHandler.Scan)
	drafts.Patch("/:id/fields", movementHandler.SetFields)
	drafts.Get("/:id/validation", movementHandler.Validate)
	drafts.Post("/:id/submit", movementHandler.Submit)
	drafts.Post("/:id/reset", movementHandler.Reset)
	drafts.Delete("/:id/notice", movementHandler.DismissNotice)

	// Órdenes
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders := protected.Group("/orders")
	orders.Get("/", orderHandler.List)
	orders.Get("/statuses", orderHandler.Statuses)
	orders.Get("/report", RequireRole(entity.RoleAdmin, entity.RoleSupervisor), orderHandler.Report)
}
