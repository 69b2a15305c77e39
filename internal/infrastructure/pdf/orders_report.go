// Package pdf genera el reporte de órdenes de catering.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + filtros aplicados │ Fecha de generación   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Orden | Fecha | Cliente | Ítems | Total | Estado     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: N órdenes / Σ ítems / Σ total                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	apporder "github.com/jhoicas/gategroup-ops/internal/application/order"
	"github.com/jhoicas/gategroup-ops/internal/domain/entity"
	"github.com/jhoicas/gategroup-ops/internal/domain/order"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 11, Green: 14, Blue: 47}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ apporder.ReportRenderer = (*OrdersReport)(nil)

// OrdersReport implementa order.ReportRenderer con Maroto v2.
type OrdersReport struct{}

// NewOrdersReport construye el generador.
func NewOrdersReport() *OrdersReport { return &OrdersReport{} }

// RenderOrders genera el PDF del listado filtrado y devuelve sus bytes.
func (g *OrdersReport) RenderOrders(_ context.Context, orders []entity.Order, f order.Filter, generatedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Órdenes de catering", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(f, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(orders)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(orders))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(f order.Filter, generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("ÓRDENES DE CATERING", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(describeFilter(f), props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Orden", 2, align.Left),
		h("Fecha", 2, align.Left),
		h("Cliente", 3, align.Left),
		h("Ítems", 1, align.Right),
		h("Total", 2, align.Right),
		h("Estado", 2, align.Center),
	)
}

func tableRows(orders []entity.Order) []core.Row {
	if len(orders) == 0 {
		return []core.Row{row.New(8).Add(col.New(12).Add(text.New("Sin resultados", props.Text{
			Size: 8, Align: align.Center, Top: 2, Color: colorGray,
		})))}
	}
	rows := make([]core.Row, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, row.New(7).Add(
			col.New(2).Add(text.New(o.ID, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(o.Date, props.Text{Size: 8, Top: 1})),
			col.New(3).Add(text.New(o.Customer, props.Text{Size: 8, Top: 1})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", o.Items), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New("$ "+o.Total.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(order.Label(o.Status), props.Text{Size: 8, Align: align.Center, Top: 1})),
		))
	}
	return rows
}

func totalsRow(orders []entity.Order) core.Row {
	items := 0
	total := decimal.Zero
	for _, o := range orders {
		items += o.Items
		total = total.Add(o.Total)
	}
	bold := props.Text{Style: fontstyle.Bold, Size: 9, Top: 2}
	right := bold
	right.Align = align.Right
	return row.New(10).Add(
		col.New(7).Add(text.New(fmt.Sprintf("%d órdenes", len(orders)), bold)),
		col.New(1).Add(text.New(fmt.Sprintf("%d", items), right)),
		col.New(2).Add(text.New("$ "+total.StringFixed(2), right)),
		col.New(2),
	)
}

func describeFilter(f order.Filter) string {
	parts := make([]string, 0, 3)
	if q := strings.TrimSpace(f.Query); q != "" {
		parts = append(parts, "Búsqueda: "+q)
	}
	if f.Date != "" {
		parts = append(parts, "Fecha: "+f.Date)
	}
	parts = append(parts, "Estado: "+order.Label(f.Status))
	return strings.Join(parts, "   |   ")
}
