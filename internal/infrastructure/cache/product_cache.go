// Package cache implementa la caché del catálogo sobre Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gategroup-ops/internal/application/catalog"
	"github.com/jhoicas/gategroup-ops/internal/domain/entity"
)

// ProductsKey clave del snapshot del catálogo.
const ProductsKey = "catalog:products"

var _ catalog.ProductCache = (*ProductCache)(nil)

// ProductCache guarda el catálogo como JSON en Redis con TTL.
type ProductCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewClient crea el cliente Redis. Acepta host:port o redis://host:port.
func NewClient(addr, password string, db int) (*redis.Client, error) {
	opts := &redis.Options{Addr: addr, Password: password, DB: db}
	if parsed, err := redis.ParseURL(addr); err == nil {
		opts = parsed
		if password != "" {
			opts.Password = password
		}
	}
	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// NewProductCache construye la caché sobre client.
func NewProductCache(client *redis.Client, ttl time.Duration) *ProductCache {
	return &ProductCache{client: client, ttl: ttl}
}

type cachedProduct struct {
	ID      string          `json:"id"`
	SKU     string          `json:"sku"`
	Name    string          `json:"name"`
	Unit    string          `json:"unit"`
	StdSpec decimal.Decimal `json:"std_spec"`
}

func (c *ProductCache) GetProducts(ctx context.Context) ([]entity.Product, bool, error) {
	data, err := c.client.Get(ctx, ProductsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get %s: %w", ProductsKey, err)
	}
	products, err := decodeProducts(data)
	if err != nil {
		return nil, false, err
	}
	return products, true, nil
}

func (c *ProductCache) SetProducts(ctx context.Context, products []entity.Product) error {
	data, err := encodeProducts(products)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, ProductsKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", ProductsKey, err)
	}
	return nil
}

// Invalidate elimina el snapshot.
func (c *ProductCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, ProductsKey).Err()
}

func encodeProducts(products []entity.Product) ([]byte, error) {
	out := make([]cachedProduct, len(products))
	for i, p := range products {
		out[i] = cachedProduct{ID: p.ID, SKU: p.SKU, Name: p.Name, Unit: p.Unit, StdSpec: p.StdSpec}
	}
	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("encode catalog: %w", err)
	}
	return data, nil
}

func decodeProducts(data []byte) ([]entity.Product, error) {
	var in []cachedProduct
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	products := make([]entity.Product, len(in))
	for i, p := range in {
		products[i] = entity.Product{ID: p.ID, SKU: p.SKU, Name: p.Name, Unit: p.Unit, StdSpec: p.StdSpec}
	}
	return products, nil
}
