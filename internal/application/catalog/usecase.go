// Package catalog expone productos, plantas y cajones con caché del catálogo.
package catalog

import (
	"context"
	"fmt"

	"github.com/jhoicas/gategroup-ops/internal/domain"
	domaincatalog "github.com/jhoicas/gategroup-ops/internal/domain/catalog"
	"github.com/jhoicas/gategroup-ops/internal/domain/entity"
	"github.com/jhoicas/gategroup-ops/internal/domain/repository"
	"github.com/jhoicas/gategroup-ops/pkg/logger"
)

// ProductCache guarda una copia del catálogo completo.
type ProductCache interface {
	// GetProducts devuelve ok=false en un fallo de caché (miss).
	GetProducts(ctx context.Context) (products []entity.Product, ok bool, err error)
	SetProducts(ctx context.Context, products []entity.Product) error
}

// CatalogUseCase casos de uso de lectura del catálogo.
type CatalogUseCase struct {
	products  repository.ProductRepository
	locations repository.LocationRepository
	cache     ProductCache
	log       *logger.Logger
}

// NewCatalogUseCase construye el caso de uso. cache puede ser nil.
func NewCatalogUseCase(products repository.ProductRepository, locations repository.LocationRepository, cache ProductCache, log *logger.Logger) *CatalogUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &CatalogUseCase{products: products, locations: locations, cache: cache, log: log}
}

// Products devuelve el catálogo completo. Los errores de caché degradan al repositorio.
func (uc *CatalogUseCase) Products(ctx context.Context) ([]entity.Product, error) {
	if uc.cache != nil {
		cached, ok, err := uc.cache.GetProducts(ctx)
		if err != nil {
			uc.log.Warn().Err(err).Msg("caché de catálogo no disponible")
		} else if ok {
			return cached, nil
		}
	}

	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	if uc.cache != nil {
		if err := uc.cache.SetProducts(ctx, products); err != nil {
			uc.log.Warn().Err(err).Msg("no se pudo refrescar la caché de catálogo")
		}
	}
	return products, nil
}

// Search busca productos por ID, SKU o nombre.
func (uc *CatalogUseCase) Search(ctx context.Context, query string) ([]entity.Product, error) {
	products, err := uc.Products(ctx)
	if err != nil {
		return nil, err
	}
	return domaincatalog.Search(products, query), nil
}

// GetProduct devuelve el producto o domain.ErrNotFound.
func (uc *CatalogUseCase) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	p, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener producto: %w", err)
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// Plants lista las plantas.
func (uc *CatalogUseCase) Plants(ctx context.Context) ([]entity.Plant, error) {
	return uc.locations.ListPlants(ctx)
}

// Drawers lista los cajones.
func (uc *CatalogUseCase) Drawers(ctx context.Context) ([]entity.Drawer, error) {
	return uc.locations.ListDrawers(ctx)
}
