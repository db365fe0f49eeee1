package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/gestion-pyme/internal/application/auth"
	"github.com/jhoicas/gestion-pyme/internal/application/dto"
	"github.com/jhoicas/gestion-pyme/internal/application/purchasing"
	"github.com/jhoicas/gestion-pyme/internal/application/sales"
	"github.com/jhoicas/gestion-pyme/internal/application/treasury"
	"github.com/jhoicas/gestion-pyme/internal/application/usecase"
	"github.com/jhoicas/gestion-pyme/internal/domain/entity"
	"github.com/jhoicas/gestion-pyme/internal/domain/repository"
	"github.com/jhoicas/gestion-pyme/internal/infrastructure/localstore"
	"github.com/jhoicas/gestion-pyme/internal/infrastructure/memory"
	"github.com/jhoicas/gestion-pyme/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/gestion-pyme/internal/interfaces/http"
	"github.com/jhoicas/gestion-pyme/pkg/config"
	"github.com/jhoicas/gestion-pyme/pkg/logger"
)

// backend agrupa los repositorios y runners que produce cada adaptador de
// persistencia.
type backend struct {
	parties   repository.PartyRepository
	products  repository.ProductRepository
	invoices  repository.InvoiceRepository
	purchases repository.PurchaseRepository
	treasury  repository.TreasuryRepository
	users     repository.UserRepository
	settings  repository.SettingsRepository

	salesTx      sales.TxRunner
	purchasingTx purchasing.TxRunner
	treasuryTx   treasury.TxRunner

	close func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Backend).
		Msg("iniciando aplicación")

	ctx := context.Background()
	be, err := buildBackend(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar backend de almacenamiento")
	}
	defer be.close()

	partyUC := usecase.NewPartyUseCase(be.parties)
	productUC := usecase.NewProductUseCase(be.products)
	salesUC := sales.NewUseCase(be.salesTx, be.invoices, be.parties, be.products)
	purchaseUC := purchasing.NewUseCase(be.purchasingTx, be.purchases, be.parties, be.products)
	treasuryUC := treasury.NewUseCase(be.treasuryTx, be.treasury)
	userUC := usecase.NewUserUseCase(be.users)
	dashboardUC := usecase.NewDashboardUseCase(be.parties, be.products, be.invoices, be.treasury)
	settingsUC := usecase.NewSettingsUseCase(be.settings)
	authUC := auth.NewAuthUseCase(be.users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	seedAdmin(log, userUC)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestión Pyme API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		PartyUC:     partyUC,
		ProductUC:   productUC,
		SalesUC:     salesUC,
		PurchaseUC:  purchaseUC,
		TreasuryUC:  treasuryUC,
		UserUC:      userUC,
		DashboardUC: dashboardUC,
		SettingsUC:  settingsUC,
		JWTSecret:   cfg.JWT.Secret,
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

	log.Info().Msg("aplicación detenida")
}

// buildBackend construye repositorios y runners según STORE_BACKEND.
func buildBackend(ctx context.Context, cfg *config.Config) (*backend, error) {
	switch cfg.Store.Backend {
	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return &backend{
			parties:      postgres.NewPartyRepository(pool),
			products:     postgres.NewProductRepository(pool),
			invoices:     postgres.NewInvoiceRepository(pool),
			purchases:    postgres.NewPurchaseRepository(pool),
			treasury:     postgres.NewTreasuryRepository(pool),
			users:        postgres.NewUserRepository(pool),
			settings:     postgres.NewSettingsRepository(pool),
			salesTx:      postgres.NewSalesTxRunner(pool),
			purchasingTx: postgres.NewPurchasingTxRunner(pool),
			treasuryTx:   postgres.NewTreasuryTxRunner(pool),
			close:        pool.Close,
		}, nil

	case config.StoreLocal:
		store, err := localstore.Open(cfg.Store.LocalPath)
		if err != nil {
			return nil, err
		}
		return &backend{
			parties:      store.Parties(),
			products:     store.Products(),
			invoices:     store.Invoices(),
			purchases:    store.Purchases(),
			treasury:     store.Treasury(),
			users:        store.Users(),
			settings:     store.Settings(),
			salesTx:      &localstore.SalesTxRunner{Store: store},
			purchasingTx: &localstore.PurchasingTxRunner{Store: store},
			treasuryTx:   &localstore.TreasuryTxRunner{Store: store},
			close:        func() { _ = store.Close() },
		}, nil

	default: // config.StoreMemory
		store := memory.NewStore()
		return &backend{
			parties:      store.Parties(),
			products:     store.Products(),
			invoices:     store.Invoices(),
			purchases:    store.Purchases(),
			treasury:     store.Treasury(),
			users:        store.Users(),
			settings:     store.Settings(),
			salesTx:      &memory.SalesTxRunner{Store: store},
			purchasingTx: &memory.PurchasingTxRunner{Store: store},
			treasuryTx:   &memory.TreasuryTxRunner{Store: store},
			close:        func() {},
		}, nil
	}
}

// seedAdmin crea el usuario administrador inicial si no hay usuarios. La
// contraseña sale de ADMIN_PASSWORD; sin ella no se siembra nada (el operador
// debe fijarla explícitamente).
func seedAdmin(log *logger.Logger, userUC *usecase.UserUseCase) {
	existing, err := userUC.List()
	if err != nil {
		log.Error().Err(err).Msg("verificar usuarios existentes")
		return
	}
	if len(existing) > 0 {
		return
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Warn().Msg("sin usuarios y sin ADMIN_PASSWORD: no se siembra el administrador")
		return
	}
	if _, err := userUC.Create(dto.CreateUserRequest{
		Username:    "admin",
		Password:    password,
		FullName:    "Administrador",
		Role:        entity.RoleAdmin,
		Permissions: entity.AllPermissions(),
	}); err != nil {
		log.Error().Err(err).Msg("sembrar usuario administrador")
		return
	}
	log.Info().Str("username", "admin").Msg("usuario administrador inicial creado")
}
