// Package movement implementa el controlador del formulario de movimientos de inventario
// y el almacén de borradores que lo expone por HTTP.
package movement

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gategroup-ops/internal/domain"
	"github.com/jhoicas/gategroup-ops/internal/domain/catalog"
	"github.com/jhoicas/gategroup-ops/internal/domain/entity"
	rules "github.com/jhoicas/gategroup-ops/internal/domain/movement"
	"github.com/jhoicas/gategroup-ops/pkg/logger"
	"github.com/jhoicas/gategroup-ops/pkg/metrics"
)

// Tipos de notificación.
const (
	NoticeInfo    = "info"
	NoticeSuccess = "success"
	NoticeError   = "error"
)

// NoticeTTL tiempo tras el cual una notificación deja de mostrarse.
const NoticeTTL = 2200 * time.Millisecond

// Mensajes de notificación.
const (
	MsgReviewFields = "Revisa los campos marcados"
	MsgSaveFailed   = "No se pudo guardar. Intenta otra vez."
)

// Notice mensaje transitorio para el operador.
type Notice struct {
	Kind    string
	Message string
	At      time.Time
}

// ValidationError envuelve domain.ErrValidation con los mensajes por campo.
type ValidationError struct {
	Fields rules.FieldErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s (%d campos)", domain.ErrValidation.Error(), len(e.Fields))
}

func (e *ValidationError) Unwrap() error { return domain.ErrValidation }

// State copia del estado del controlador.
type State struct {
	Type       entity.MovementType
	Form       entity.MovementForm
	Query      string
	Product    *entity.Product
	Errors     rules.FieldErrors
	Submitting bool
	Notice     *Notice
	Layout     rules.Layout
}

// Deps dependencias compartidas por todos los controladores.
type Deps struct {
	Products     ProductSource
	Saver        Saver
	DefaultPlant string
	Clock        func() time.Time
	Logger       *logger.Logger
	Metrics      *metrics.MovementMetrics
}

// Controller mantiene un borrador de movimiento y sus reglas de envío.
// Todas las operaciones son seguras para uso concurrente; el guardado corre fuera del lock
// y mientras dura las operaciones que modifican el borrador devuelven domain.ErrSubmitInProgress.
type Controller struct {
	mu   sync.Mutex
	deps Deps

	userID     string
	typ        entity.MovementType
	form       entity.MovementForm
	query      string
	product    *entity.Product
	errors     rules.FieldErrors
	submitting bool
	notice     *Notice
}

// NewController crea un controlador con el borrador vacío y tipo Entrada.
func NewController(deps Deps, userID string) *Controller {
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	if deps.Logger == nil {
		deps.Logger = logger.Nop()
	}
	return &Controller{
		deps:   deps,
		userID: userID,
		typ:    entity.MovementTypeEntry,
		form:   rules.NewForm(deps.DefaultPlant),
		errors: rules.FieldErrors{},
	}
}

// SelectType cambia el tipo activo. Los valores del formulario se conservan.
func (c *Controller) SelectType(t entity.MovementType) error {
	if !t.Valid() {
		return fmt.Errorf("%w: tipo de movimiento %q", domain.ErrInvalidInput, t)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.submitting {
		return domain.ErrSubmitInProgress
	}
	c.typ = t
	return nil
}

// SearchProducts guarda la consulta y devuelve las coincidencias del catálogo.
func (c *Controller) SearchProducts(ctx context.Context, query string) ([]entity.Product, error) {
	products, err := c.deps.Products.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar catálogo: %w", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.submitting {
		return nil, domain.ErrSubmitInProgress
	}
	c.query = query
	return catalog.Search(products, query), nil
}

// SelectProduct copia el producto al formulario, limpia la consulta y el error de producto.
func (c *Controller) SelectProduct(ctx context.Context, productID string) (*entity.Product, error) {
	products, err := c.deps.Products.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar catálogo: %w", err)
	}
	for _, p := range products {
		if p.ID == productID {
			c.mu.Lock()
			defer c.mu.Unlock()
			if c.submitting {
				return nil, domain.ErrSubmitInProgress
			}
			c.applyProduct(p)
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

// ScanCode resuelve un código leído (SKU o ID) y lo selecciona.
func (c *Controller) ScanCode(ctx context.Context, code string) (*entity.Product, error) {
	products, err := c.deps.Products.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar catálogo: %w", err)
	}
	p, ok := catalog.FindByCode(products, code)
	if !ok {
		return nil, domain.ErrNotFound
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.submitting {
		return nil, domain.ErrSubmitInProgress
	}
	c.applyProduct(p)
	c.notify(NoticeInfo, "Código leído: "+p.SKU)
	return &p, nil
}

func (c *Controller) applyProduct(p entity.Product) {
	rules.ApplyProduct(&c.form, p)
	c.product = &p
	c.query = ""
	delete(c.errors, rules.FieldProductID)
}

// SetField asigna un campo del formulario tal cual. Los campos del producto no se editan aquí.
func (c *Controller) SetField(name, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.submitting {
		return domain.ErrSubmitInProgress
	}
	return rules.SetField(&c.form, name, value)
}

// SetFields asigna varios campos; si alguno es inválido no se aplica ninguno.
func (c *Controller) SetFields(values map[string]string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.submitting {
		return domain.ErrSubmitInProgress
	}
	next := c.form
	for name, v := range values {
		if err := rules.SetField(&next, name, v); err != nil {
			return fmt.Errorf("campo %q: %w", name, err)
		}
	}
	c.form = next
	return nil
}

// Validate valida el borrador sin modificar el estado.
func (c *Controller) Validate() rules.FieldErrors {
	c.mu.Lock()
	t, form := c.typ, c.form
	c.mu.Unlock()
	return rules.Validate(t, form, c.deps.Clock())
}

// Submit valida y guarda el borrador. Un envío en curso rechaza los siguientes.
// El guardado no se cancela aunque ctx termine.
func (c *Controller) Submit(ctx context.Context) (*entity.Movement, error) {
	c.mu.Lock()
	if c.submitting {
		t := c.typ
		c.mu.Unlock()
		c.deps.Metrics.IncSubmission(string(t), metrics.OutcomeRejected)
		return nil, domain.ErrSubmitInProgress
	}

	t, form, now := c.typ, c.form, c.deps.Clock()
	if errs := rules.Validate(t, form, now); len(errs) > 0 {
		c.errors = errs
		c.notify(NoticeError, MsgReviewFields)
		c.mu.Unlock()
		c.deps.Metrics.IncSubmission(string(t), metrics.OutcomeInvalid)
		return nil, &ValidationError{Fields: errs}
	}
	record, err := rules.Build(t, form, c.userID, now)
	if err != nil {
		c.notify(NoticeError, MsgReviewFields)
		c.mu.Unlock()
		c.deps.Metrics.IncSubmission(string(t), metrics.OutcomeInvalid)
		return nil, fmt.Errorf("construir movimiento: %w", err)
	}
	c.errors = rules.FieldErrors{}
	record.ID = uuid.New().String()
	c.submitting = true
	c.mu.Unlock()

	start := time.Now()
	saveErr := c.save(context.WithoutCancel(ctx), record)
	c.deps.Metrics.ObserveSave(string(t), time.Since(start))

	c.mu.Lock()
	defer c.mu.Unlock()
	c.submitting = false

	if saveErr != nil {
		c.notify(NoticeError, MsgSaveFailed)
		c.deps.Metrics.IncSubmission(string(t), metrics.OutcomeFailed)
		c.deps.Logger.Error().Err(saveErr).Str("type", string(t)).Str("product_id", form.ProductID).Msg("guardado de movimiento fallido")
		return nil, fmt.Errorf("%w: %w", domain.ErrSaveFailed, saveErr)
	}

	c.notify(NoticeSuccess, fmt.Sprintf("%s registrado: %s (%s %s)",
		t.Action(), form.ProductName, strings.TrimSpace(form.Quantity), form.Unit))
	rules.ClearTransactional(&c.form)
	c.deps.Metrics.IncSubmission(string(t), metrics.OutcomeSaved)
	c.deps.Logger.Info().Str("movement_id", record.ID).Str("type", string(t)).
		Str("product_id", record.ProductID).Str("quantity", record.Quantity.String()).Msg("movimiento registrado")
	return record, nil
}

// save aísla al controlador de un pánico del guardado.
func (c *Controller) save(ctx context.Context, m *entity.Movement) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic en guardado: %v", r)
		}
	}()
	if c.deps.Saver == nil {
		return errors.New("sin guardado configurado")
	}
	return c.deps.Saver.Save(ctx, m)
}

// Reset vuelve al borrador vacío con la planta por defecto. Conserva el tipo activo.
func (c *Controller) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.submitting {
		return domain.ErrSubmitInProgress
	}
	c.form = rules.NewForm(c.deps.DefaultPlant)
	c.product = nil
	c.query = ""
	c.errors = rules.FieldErrors{}
	return nil
}

// DismissNotice descarta la notificación actual.
func (c *Controller) DismissNotice() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notice = nil
}

// Snapshot devuelve una copia del estado. Las notificaciones vencidas no se incluyen.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.notice != nil && c.deps.Clock().Sub(c.notice.At) >= NoticeTTL {
		c.notice = nil
	}

	s := State{
		Type:       c.typ,
		Form:       c.form,
		Query:      c.query,
		Submitting: c.submitting,
		Errors:     make(rules.FieldErrors, len(c.errors)),
		Layout:     rules.LayoutFor(c.typ),
	}
	for k, v := range c.errors {
		s.Errors[k] = v
	}
	if c.product != nil {
		p := *c.product
		s.Product = &p
	}
	if c.notice != nil {
		n := *c.notice
		s.Notice = &n
	}
	return s
}

// UserID usuario que abrió el borrador.
func (c *Controller) UserID() string { return c.userID }

func (c *Controller) notify(kind, msg string) {
	c.notice = &Notice{Kind: kind, Message: msg, At: c.deps.Clock()}
}

// IsSubmitting indica si hay un guardado en curso.
func (c *Controller) IsSubmitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitting
}
