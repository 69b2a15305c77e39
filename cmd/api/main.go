package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/jhoicas/gategroup-ops/internal/application/auth"
	"github.com/jhoicas/gategroup-ops/internal/application/catalog"
	"github.com/jhoicas/gategroup-ops/internal/application/movement"
	"github.com/jhoicas/gategroup-ops/internal/application/order"
	"github.com/jhoicas/gategroup-ops/internal/domain/entity"
	"github.com/jhoicas/gategroup-ops/internal/domain/repository"
	"github.com/jhoicas/gategroup-ops/internal/infrastructure/cache"
	"github.com/jhoicas/gategroup-ops/internal/infrastructure/jobs"
	"github.com/jhoicas/gategroup-ops/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/gategroup-ops/internal/infrastructure/pdf"
	"github.com/jhoicas/gategroup-ops/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/gategroup-ops/internal/interfaces/http"
	"github.com/jhoicas/gategroup-ops/pkg/config"
	"github.com/jhoicas/gategroup-ops/pkg/logger"
	"github.com/jhoicas/gategroup-ops/pkg/metrics"
	"github.com/jhoicas/gategroup-ops/pkg/migrate"
)

// repositories agrupa los puertos según el almacén elegido.
type repositories struct {
	products  repository.ProductRepository
	locations repository.LocationRepository
	orders    repository.OrderRepository
	users     repository.UserRepository
	movements repository.MovementRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.App.Store).
		Str("saver", cfg.Movement.Saver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	movementMetrics := metrics.NewMovementMetrics(reg)
	jobMetrics := metrics.NewJobMetrics(reg)

	var repos repositories
	switch cfg.App.Store {
	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		if cfg.DB.AutoMigrate {
			if err := migrate.Up(ctx, pool); err != nil {
				log.Fatal().Err(err).Msg("migraciones")
			}
			log.Info().Msg("migraciones aplicadas")
		}
		repos = repositories{
			products:  postgres.NewProductRepository(pool),
			locations: postgres.NewLocationRepository(pool),
			orders:    postgres.NewOrderRepository(pool),
			users:     postgres.NewUserRepository(pool),
			movements: postgres.NewMovementRepository(pool),
		}
	default:
		store := memory.NewSeededStore()
		repos = repositories{
			products:  store,
			locations: store,
			orders:    store.Orders(),
			users:     store,
			movements: store.Movements(),
		}
	}

	if cfg.Demo.Password != "" {
		hash, err := auth.HashPassword(cfg.Demo.Password)
		if err != nil {
			log.Fatal().Err(err).Msg("hash del usuario demo")
		}
		now := time.Now()
		demo := &entity.User{
			Email:        cfg.Demo.Email,
			PasswordHash: hash,
			Name:         "Operador Demo",
			Role:         entity.RoleSupervisor,
			Status:       entity.UserStatusActive,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := repos.users.Ensure(ctx, demo); err != nil {
			log.Fatal().Err(err).Msg("usuario demo")
		}
		log.Info().Str("email", cfg.Demo.Email).Msg("usuario demo disponible")
	}

	// Caché del catálogo en Redis (opcional)
	var productCache catalog.ProductCache
	if cfg.Redis.Addr != "" {
		client, err := cache.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Warn().Err(err).Msg("Redis no disponible, catálogo sin caché")
		} else {
			defer client.Close()
			pc := cache.NewProductCache(client, cfg.Redis.TTL)
			if err := pc.Invalidate(ctx); err != nil {
				log.Warn().Err(err).Msg("invalidar caché de catálogo")
			}
			productCache = pc
		}
	}

	catalogUC := catalog.NewCatalogUseCase(repos.products, repos.locations, productCache, log.Component("catalog"))
	orderUC := order.NewOrderUseCase(repos.orders, infrapdf.NewOrdersReport())
	authUC := auth.NewAuthUseCase(repos.users, auth.JWTConfig{
		Secret:             cfg.JWT.Secret,
		ExpMinutes:         cfg.JWT.Expiration,
		RememberExpMinutes: cfg.JWT.RememberExpiration,
		Issuer:             cfg.JWT.Issuer,
	})

	var saver movement.Saver
	switch cfg.Movement.Saver {
	case config.SaverPostgres:
		saver = movement.NewRepositorySaver(repos.movements)
	default:
		saver = movement.NewSimulatedSaver(cfg.Movement.SaveLatency, repos.movements)
	}
	drafts := movement.NewDraftStore(movement.Deps{
		Products:     catalogUC,
		Saver:        saver,
		DefaultPlant: cfg.Movement.DefaultPlant,
		Logger:       log.Component("movement"),
		Metrics:      movementMetrics,
	})

	// Purga de borradores inactivos
	scheduler, err := jobs.NewScheduler(log, jobMetrics)
	if err != nil {
		log.Fatal().Err(err).Msg("scheduler")
	}
	if err := scheduler.RegisterDraftPurge(drafts, purgeInterval(cfg.Movement.DraftIdle), cfg.Movement.DraftIdle); err != nil {
		log.Fatal().Err(err).Msg("registrar purga de borradores")
	}
	scheduler.Start()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.HTTP.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.SwaggerFile,
			Path:     "docs",
			Title:    "Gategroup Ops API",
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		CatalogUC: catalogUC,
		OrderUC:   orderUC,
		Drafts:    drafts,
		Movements: repos.movements,
		JWTSecret: cfg.JWT.Secret,
		AppName:   cfg.App.Name,
		Logger:    log.Component("http"),
		Metrics:   reg,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if err := scheduler.Stop(); err != nil {
		log.Error().Err(err).Msg("detener scheduler")
	}

	log.Info().Msg("aplicación detenida")
}

// purgeInterval corre la purga a la mitad del tiempo de inactividad, como mínimo cada minuto.
func purgeInterval(idle time.Duration) time.Duration {
	if d := idle / 2; d > time.Minute {
		return d
	}
	return time.Minute
}
