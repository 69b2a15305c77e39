package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gategroup-ops/internal/domain/entity"
)

func TestEncodeDecode_ConservaOrdenYDecimales(t *testing.T) {
	in := []entity.Product{
		{ID: "P-1002", SKU: "BE-010", Name: "Refresco 355ml", Unit: "lata", StdSpec: decimal.RequireFromString("1.5")},
		{ID: "P-1001", SKU: "FO-001", Name: "Sándwich de Pollo 180g", Unit: "pz", StdSpec: decimal.NewFromInt(1)},
	}
	data, err := encodeProducts(in)
	require.NoError(t, err)

	out, err := decodeProducts(data)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "P-1002", out[0].ID)
	assert.True(t, out[0].StdSpec.Equal(decimal.RequireFromString("1.5")))
	assert.Equal(t, "Sándwich de Pollo 180g", out[1].Name)
}

func TestDecode_JSONInvalido(t *testing.T) {
	_, err := decodeProducts([]byte("{no es json"))
	assert.Error(t, err)
}

func TestGetProducts_RedisInaccesible(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()
	c := NewProductCache(client, time.Minute)

	_, ok, err := c.GetProducts(context.Background())
	assert.Error(t, err)
	assert.False(t, ok)
}
