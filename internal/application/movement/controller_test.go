package movement_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gategroup-ops/internal/application/movement"
	"github.com/jhoicas/gategroup-ops/internal/domain"
	"github.com/jhoicas/gategroup-ops/internal/domain/entity"
	rules "github.com/jhoicas/gategroup-ops/internal/domain/movement"
)

var now = time.Date(2025, 10, 5, 15, 30, 0, 0, time.UTC)

type fakeProducts struct {
	list []entity.Product
	err  error
}

func (f *fakeProducts) Products(ctx context.Context) ([]entity.Product, error) {
	return f.list, f.err
}

type fakeSaver struct {
	calls   atomic.Int32
	err     error
	release chan struct{}
	started chan struct{}
	saved   []*entity.Movement
	mu      sync.Mutex
}

func (f *fakeSaver) Save(ctx context.Context, m *entity.Movement) error {
	f.calls.Add(1)
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.release != nil {
		<-f.release
	}
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	f.saved = append(f.saved, m)
	f.mu.Unlock()
	return nil
}

func catalogFixture() *fakeProducts {
	one := decimal.NewFromInt(1)
	return &fakeProducts{list: []entity.Product{
		{ID: "P-1001", SKU: "FO-001", Name: "Sándwich de Pollo 180g", Unit: "pz", StdSpec: one},
		{ID: "P-1002", SKU: "BE-010", Name: "Refresco 355ml", Unit: "lata", StdSpec: one},
		{ID: "P-1003", SKU: "WA-500", Name: "Agua 500ml", Unit: "botella", StdSpec: one},
	}}
}

func newController(saver movement.Saver) *movement.Controller {
	return movement.NewController(movement.Deps{
		Products:     catalogFixture(),
		Saver:        saver,
		DefaultPlant: "PL-01",
		Clock:        func() time.Time { return now },
	}, "u-1")
}

// fillEntry deja el borrador de entrada del escenario de referencia.
func fillEntry(t *testing.T, c *movement.Controller) {
	t.Helper()
	_, err := c.SelectProduct(context.Background(), "P-1002")
	require.NoError(t, err)
	require.NoError(t, c.SetFields(map[string]string{
		rules.FieldDrawerID:   "DR-101",
		rules.FieldLotNumber:  "L1",
		rules.FieldExpiryDate: "2025-10-06",
		rules.FieldQuantity:   "10",
		rules.FieldUnitCost:   "2.5",
	}))
}

// ──────────────────────────────────────────────────────────────────────────────
// Estado inicial y tipo
// ──────────────────────────────────────────────────────────────────────────────

func TestNewController_BorradorPorDefecto(t *testing.T) {
	s := newController(&fakeSaver{}).Snapshot()

	assert.Equal(t, entity.MovementTypeEntry, s.Type)
	assert.Equal(t, "PL-01", s.Form.PlantID)
	assert.Equal(t, entity.QAStatusPass, s.Form.QAStatus)
	assert.Empty(t, s.Errors)
	assert.Nil(t, s.Product)
	assert.Nil(t, s.Notice)
	assert.False(t, s.Submitting)
}

func TestSelectType_ConservaValores(t *testing.T) {
	c := newController(&fakeSaver{})
	fillEntry(t, c)

	require.NoError(t, c.SelectType(entity.MovementTypeIssue))
	s := c.Snapshot()
	assert.Equal(t, entity.MovementTypeIssue, s.Type)
	assert.Equal(t, "L1", s.Form.LotNumber)
	assert.Equal(t, entity.MovementTypeIssue, s.Layout.Type)
}

func TestSelectType_Desconocido(t *testing.T) {
	c := newController(&fakeSaver{})
	err := c.SelectType("TRANSFER")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, entity.MovementTypeEntry, c.Snapshot().Type)
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestSearchProducts_VacioYSinMayusculas(t *testing.T) {
	c := newController(&fakeSaver{})
	ctx := context.Background()

	empty, err := c.SearchProducts(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, empty)

	found, err := c.SearchProducts(ctx, "be-010")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "P-1002", found[0].ID)
	assert.Equal(t, "be-010", c.Snapshot().Query)
}

func TestSearchProducts_ErrorDelCatalogo(t *testing.T) {
	c := movement.NewController(movement.Deps{Products: &fakeProducts{err: errors.New("redis caído")}}, "u-1")
	_, err := c.SearchProducts(context.Background(), "agua")
	assert.Error(t, err)
}

func TestSelectProduct_SobrescribeCamposDerivados(t *testing.T) {
	c := newController(&fakeSaver{})
	ctx := context.Background()
	_, _ = c.SearchProducts(ctx, "agua")
	_, _ = c.SelectProduct(ctx, "P-1001")

	p, err := c.SelectProduct(ctx, "P-1003")
	require.NoError(t, err)
	assert.Equal(t, "WA-500", p.SKU)

	s := c.Snapshot()
	assert.Equal(t, "P-1003", s.Form.ProductID)
	assert.Equal(t, "WA-500", s.Form.SKU)
	assert.Equal(t, "Agua 500ml", s.Form.ProductName)
	assert.Equal(t, "botella", s.Form.Unit)
	assert.Empty(t, s.Query)
	require.NotNil(t, s.Product)
	assert.Equal(t, "P-1003", s.Product.ID)
}

func TestSelectProduct_LimpiaSoloErrorDeProducto(t *testing.T) {
	c := newController(&fakeSaver{})
	_, err := c.Submit(context.Background())
	require.Error(t, err)
	require.Contains(t, c.Snapshot().Errors, rules.FieldProductID)

	_, err = c.SelectProduct(context.Background(), "P-1002")
	require.NoError(t, err)

	errs := c.Snapshot().Errors
	assert.NotContains(t, errs, rules.FieldProductID)
	assert.Contains(t, errs, rules.FieldQuantity)
}

func TestSelectProduct_NoExiste(t *testing.T) {
	c := newController(&fakeSaver{})
	_, err := c.SelectProduct(context.Background(), "P-9999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, c.Snapshot().Form.ProductID)
}

func TestScanCode_SeleccionaYNotifica(t *testing.T) {
	c := newController(&fakeSaver{})
	p, err := c.ScanCode(context.Background(), "wa-500")
	require.NoError(t, err)
	assert.Equal(t, "P-1003", p.ID)

	s := c.Snapshot()
	assert.Equal(t, "P-1003", s.Form.ProductID)
	require.NotNil(t, s.Notice)
	assert.Equal(t, movement.NoticeInfo, s.Notice.Kind)
	assert.Equal(t, "Código leído: WA-500", s.Notice.Message)
}

func TestScanCode_Desconocido(t *testing.T) {
	c := newController(&fakeSaver{})
	_, err := c.ScanCode(context.Background(), "XX-000")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Campos
// ──────────────────────────────────────────────────────────────────────────────

func TestSetField_CampoDeProductoRechazado(t *testing.T) {
	c := newController(&fakeSaver{})
	assert.ErrorIs(t, c.SetField(rules.FieldProductID, "P-1001"), domain.ErrInvalidInput)
	assert.ErrorIs(t, c.SetField("color", "rojo"), domain.ErrInvalidInput)
}

func TestSetFields_AtomicoAnteError(t *testing.T) {
	c := newController(&fakeSaver{})
	err := c.SetFields(map[string]string{rules.FieldQuantity: "5", rules.FieldSKU: "X"})
	require.Error(t, err)
	assert.Empty(t, c.Snapshot().Form.Quantity)
}

func TestValidate_SinEfectosDeEstado(t *testing.T) {
	c := newController(&fakeSaver{})
	errs := c.Validate()
	assert.Contains(t, errs, rules.FieldProductID)
	assert.Empty(t, c.Snapshot().Errors)
	assert.Nil(t, c.Snapshot().Notice)
}

// ──────────────────────────────────────────────────────────────────────────────
// Envío
// ──────────────────────────────────────────────────────────────────────────────

func TestSubmit_EntradaValida_ResetParcial(t *testing.T) {
	saver := &fakeSaver{}
	c := newController(saver)
	fillEntry(t, c)
	require.NoError(t, c.SetFields(map[string]string{rules.FieldSupplier: "SkyFoods", rules.FieldNotes: "ok"}))
	require.Empty(t, c.Validate())

	rec, err := c.Submit(context.Background())
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "u-1", rec.CreatedBy)
	assert.True(t, rec.Quantity.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, int32(1), saver.calls.Load())

	s := c.Snapshot()
	assert.False(t, s.Submitting)
	assert.Empty(t, s.Form.Quantity)
	assert.Empty(t, s.Form.LotNumber)
	assert.Empty(t, s.Form.ExpiryDate)
	assert.Empty(t, s.Form.UnitCost)
	assert.Empty(t, s.Form.DrawerID)
	assert.Empty(t, s.Form.Supplier)
	assert.Empty(t, s.Form.Notes)
	assert.Equal(t, entity.QAStatusPass, s.Form.QAStatus)
	assert.Equal(t, "P-1002", s.Form.ProductID)
	assert.Equal(t, "PL-01", s.Form.PlantID)

	require.NotNil(t, s.Notice)
	assert.Equal(t, movement.NoticeSuccess, s.Notice.Kind)
	assert.Equal(t, "Ingreso registrado: Refresco 355ml (10 lata)", s.Notice.Message)
}

func TestSubmit_SinCantidad_NoGuarda(t *testing.T) {
	saver := &fakeSaver{}
	c := newController(saver)
	fillEntry(t, c)
	require.NoError(t, c.SetField(rules.FieldQuantity, ""))

	_, err := c.Submit(context.Background())
	require.ErrorIs(t, err, domain.ErrValidation)

	var verr *movement.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, rules.MsgQuantity, verr.Fields[rules.FieldQuantity])

	assert.Equal(t, int32(0), saver.calls.Load())
	s := c.Snapshot()
	assert.False(t, s.Submitting)
	assert.Equal(t, rules.MsgQuantity, s.Errors[rules.FieldQuantity])
	require.NotNil(t, s.Notice)
	assert.Equal(t, movement.NoticeError, s.Notice.Kind)
	assert.Equal(t, movement.MsgReviewFields, s.Notice.Message)
	assert.Equal(t, "L1", s.Form.LotNumber)
}

func TestSubmit_FalloDeGuardado_ConservaBorrador(t *testing.T) {
	saver := &fakeSaver{err: errors.New("timeout")}
	c := newController(saver)
	fillEntry(t, c)

	_, err := c.Submit(context.Background())
	require.ErrorIs(t, err, domain.ErrSaveFailed)

	s := c.Snapshot()
	assert.False(t, s.Submitting)
	assert.Equal(t, "10", s.Form.Quantity)
	assert.Equal(t, "L1", s.Form.LotNumber)
	require.NotNil(t, s.Notice)
	assert.Equal(t, movement.MsgSaveFailed, s.Notice.Message)

	saver.err = nil
	_, err = c.Submit(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int32(2), saver.calls.Load())
}

func TestSubmit_SalidaSinDestino(t *testing.T) {
	c := newController(&fakeSaver{})
	fillEntry(t, c)
	require.NoError(t, c.SelectType(entity.MovementTypeIssue))

	errs := c.Validate()
	assert.Equal(t, rules.FieldErrors{rules.FieldDestinationArea: rules.MsgDestination}, errs)

	require.NoError(t, c.SetField(rules.FieldDestinationArea, "Embarque"))
	assert.Empty(t, c.Validate())

	_, err := c.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Salida registrado: Refresco 355ml (10 lata)", c.Snapshot().Notice.Message)
}

func TestSubmit_EnCurso_RechazaSegundo(t *testing.T) {
	saver := &fakeSaver{release: make(chan struct{}), started: make(chan struct{}, 1)}
	c := newController(saver)
	fillEntry(t, c)

	done := make(chan error, 1)
	go func() {
		_, err := c.Submit(context.Background())
		done <- err
	}()
	<-saver.started

	assert.True(t, c.Snapshot().Submitting)
	_, err := c.Submit(context.Background())
	assert.ErrorIs(t, err, domain.ErrSubmitInProgress)

	close(saver.release)
	require.NoError(t, <-done)
	assert.Equal(t, int32(1), saver.calls.Load())
	assert.False(t, c.Snapshot().Submitting)
}

// Mientras se guarda, el borrador no admite cambios: nada de lo editado se perdería al limpiar.
func TestSubmit_EnCurso_BloqueaEdicion(t *testing.T) {
	saver := &fakeSaver{release: make(chan struct{}), started: make(chan struct{}, 1)}
	c := newController(saver)
	fillEntry(t, c)

	done := make(chan error, 1)
	go func() {
		_, err := c.Submit(context.Background())
		done <- err
	}()
	<-saver.started

	assert.ErrorIs(t, c.SetFields(map[string]string{rules.FieldQuantity: "99", rules.FieldLotNumber: "L2"}), domain.ErrSubmitInProgress)
	assert.ErrorIs(t, c.SetField(rules.FieldNotes, "mientras guarda"), domain.ErrSubmitInProgress)
	assert.ErrorIs(t, c.SelectType(entity.MovementTypeIssue), domain.ErrSubmitInProgress)
	_, err := c.SelectProduct(context.Background(), "P-1003")
	assert.ErrorIs(t, err, domain.ErrSubmitInProgress)
	_, err = c.ScanCode(context.Background(), "WA-500")
	assert.ErrorIs(t, err, domain.ErrSubmitInProgress)
	_, err = c.SearchProducts(context.Background(), "agua")
	assert.ErrorIs(t, err, domain.ErrSubmitInProgress)
	assert.ErrorIs(t, c.Reset(), domain.ErrSubmitInProgress)

	close(saver.release)
	require.NoError(t, <-done)

	require.Len(t, saver.saved, 1)
	assert.Equal(t, "10", saver.saved[0].Quantity.String())
	assert.Equal(t, "L1", saver.saved[0].LotNumber)

	s := c.Snapshot()
	assert.Equal(t, entity.MovementTypeEntry, s.Type)
	assert.Equal(t, "P-1002", s.Form.ProductID)
	assert.Empty(t, s.Form.Quantity)
	assert.Empty(t, s.Form.Notes)
	assert.Empty(t, s.Query)

	require.NoError(t, c.SetField(rules.FieldQuantity, "99"), "terminado el guardado se puede editar")
}

func TestSubmit_FalloDuranteGuardado_BorradorIntacto(t *testing.T) {
	saver := &fakeSaver{err: errors.New("red caída"), release: make(chan struct{}), started: make(chan struct{}, 1)}
	c := newController(saver)
	fillEntry(t, c)
	before := c.Snapshot().Form

	done := make(chan error, 1)
	go func() {
		_, err := c.Submit(context.Background())
		done <- err
	}()
	<-saver.started
	assert.ErrorIs(t, c.SetField(rules.FieldQuantity, "99"), domain.ErrSubmitInProgress)
	close(saver.release)

	assert.ErrorIs(t, <-done, domain.ErrSaveFailed)
	assert.Equal(t, before, c.Snapshot().Form)
}

func TestSubmit_ContextoCanceladoNoInterrumpe(t *testing.T) {
	saver := &fakeSaver{}
	c := newController(saver)
	fillEntry(t, c)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(1), saver.calls.Load())
}

func TestSubmit_AjusteNegativo(t *testing.T) {
	saver := &fakeSaver{}
	c := newController(saver)
	_, err := c.SelectProduct(context.Background(), "P-1001")
	require.NoError(t, err)
	require.NoError(t, c.SelectType(entity.MovementTypeAdjust))
	require.NoError(t, c.SetField(rules.FieldQuantity, "-3"))

	rec, err := c.Submit(context.Background())
	require.NoError(t, err)
	assert.True(t, rec.Quantity.Equal(decimal.NewFromInt(-3)))
	assert.Equal(t, "Ajuste registrado: Sándwich de Pollo 180g (-3 pz)", c.Snapshot().Notice.Message)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reset y notificaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestReset_BorradorPorDefecto(t *testing.T) {
	c := newController(&fakeSaver{})
	fillEntry(t, c)
	require.NoError(t, c.SetField(rules.FieldPlantID, "PL-02"))
	require.NoError(t, c.SetField(rules.FieldQAStatus, entity.QAStatusFail))
	_, _ = c.SearchProducts(context.Background(), "agua")
	require.NoError(t, c.SetField(rules.FieldQuantity, ""))
	_, _ = c.Submit(context.Background())

	require.NoError(t, c.Reset())

	s := c.Snapshot()
	assert.Equal(t, rules.NewForm("PL-01"), s.Form)
	assert.Empty(t, s.Errors)
	assert.Nil(t, s.Product)
	assert.Empty(t, s.Query)
}

func TestDismissNotice(t *testing.T) {
	c := newController(&fakeSaver{})
	_, _ = c.ScanCode(context.Background(), "BE-010")
	require.NotNil(t, c.Snapshot().Notice)

	c.DismissNotice()
	s := c.Snapshot()
	assert.Nil(t, s.Notice)
	assert.Equal(t, "P-1002", s.Form.ProductID)
}

func TestSnapshot_NotificacionVence(t *testing.T) {
	clock := now
	c := movement.NewController(movement.Deps{
		Products: catalogFixture(),
		Saver:    &fakeSaver{},
		Clock:    func() time.Time { return clock },
	}, "u-1")

	_, _ = c.ScanCode(context.Background(), "BE-010")
	clock = clock.Add(movement.NoticeTTL - time.Millisecond)
	assert.NotNil(t, c.Snapshot().Notice)

	clock = clock.Add(time.Millisecond)
	assert.Nil(t, c.Snapshot().Notice)
}
