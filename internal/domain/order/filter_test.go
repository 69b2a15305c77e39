package order_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/gategroup-ops/internal/domain/entity"
	"github.com/jhoicas/gategroup-ops/internal/domain/order"
)

var orders = []entity.Order{
	{ID: "ORD-1001", Date: "2025-10-01", Customer: "AeroMex Catering", Items: 42, Total: decimal.RequireFromString("12850.75"), Status: entity.OrderStatusNew},
	{ID: "ORD-1002", Date: "2025-10-01", Customer: "SkyFoods", Items: 18, Total: decimal.RequireFromString("3450"), Status: entity.OrderStatusPicking},
	{ID: "ORD-1003", Date: "2025-10-02", Customer: "Gate Express", Items: 67, Total: decimal.RequireFromString("21340.10"), Status: entity.OrderStatusReady},
	{ID: "ORD-1005", Date: "2025-10-03", Customer: "AeroMex Catering", Items: 25, Total: decimal.RequireFromString("7250.99"), Status: entity.OrderStatusCancelled},
}

func orderIDs(list []entity.Order) []string {
	out := make([]string, 0, len(list))
	for _, o := range list {
		out = append(out, o.ID)
	}
	return out
}

func TestApply_SinFiltro_Todas(t *testing.T) {
	assert.Len(t, order.Apply(orders, order.Filter{}), len(orders))
}

func TestApply_TextoPorIDOCliente(t *testing.T) {
	assert.Equal(t, []string{"ORD-1001", "ORD-1005"}, orderIDs(order.Apply(orders, order.Filter{Query: "aeromex"})))
	assert.Equal(t, []string{"ORD-1003"}, orderIDs(order.Apply(orders, order.Filter{Query: " ord-1003 "})))
}

func TestApply_CombinaCriterios(t *testing.T) {
	got := order.Apply(orders, order.Filter{Query: "aeromex", Status: entity.OrderStatusNew})
	assert.Equal(t, []string{"ORD-1001"}, orderIDs(got))

	got = order.Apply(orders, order.Filter{Date: "2025-10-01"})
	assert.Equal(t, []string{"ORD-1001", "ORD-1002"}, orderIDs(got))

	got = order.Apply(orders, order.Filter{Date: "2025-10-01", Status: entity.OrderStatusReady})
	assert.Empty(t, got)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Pick & Pack", order.Label(entity.OrderStatusPicking))
	assert.Equal(t, "Todas", order.Label(""))
	assert.Equal(t, "OTRO", order.Label("OTRO"))
	assert.False(t, order.ValidStatus("OTRO"))
}
