package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-pyme/internal/application/auth"
	"github.com/jhoicas/gestion-pyme/internal/application/purchasing"
	"github.com/jhoicas/gestion-pyme/internal/application/sales"
	"github.com/jhoicas/gestion-pyme/internal/application/treasury"
	"github.com/jhoicas/gestion-pyme/internal/application/usecase"
	"github.com/jhoicas/gestion-pyme/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	PartyUC     *usecase.PartyUseCase
	ProductUC   *usecase.ProductUseCase
	SalesUC     *sales.UseCase
	PurchaseUC  *purchasing.UseCase
	TreasuryUC  *treasury.UseCase
	UserUC      *usecase.UserUseCase
	DashboardUC *usecase.DashboardUseCase
	SettingsUC  *usecase.SettingsUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	canDeleteLedgers := RequirePermission(deps.UserUC, func(p entity.Permissions) bool { return p.CanDeleteLedgers })

	// Terceros: el mismo conjunto de rutas por colección
	partyGroups := []struct {
		path string
		kind entity.PartyKind
		flag func(entity.Permissions) bool
	}{
		{"/customers", entity.KindCustomer, func(p entity.Permissions) bool { return p.Sales }},
		{"/suppliers", entity.KindSupplier, func(p entity.Permissions) bool { return p.Warehouse }},
		{"/employees", entity.KindEmployee, func(p entity.Permissions) bool { return p.Financial }},
	}
	for _, pg := range partyGroups {
		h := NewPartyHandler(deps.PartyUC, pg.kind)
		g := protected.Group(pg.path, RequirePermission(deps.UserUC, pg.flag))
		g.Get("/next-code", h.NextCode)
		g.Post("/", h.Create)
		g.Get("/", h.List)
		g.Get("/:code", h.GetByCode)
		g.Get("/:code/history", h.History)
		g.Put("/:code", h.Update)
		g.Delete("/:code", h.Delete)
		g.Post("/:code/clear-ledger", canDeleteLedgers, h.ClearLedger)
	}

	// Productos: lectura con Warehouse, escritura con CanEditWarehouse
	products := protected.Group("/products",
		RequirePermission(deps.UserUC, func(p entity.Permissions) bool { return p.Warehouse }))
	canEditWarehouse := RequirePermission(deps.UserUC, func(p entity.Permissions) bool { return p.CanEditWarehouse })
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:code", productHandler.GetByCode)
	products.Post("/", canEditWarehouse, productHandler.Create)
	products.Put("/:code", canEditWarehouse, productHandler.Update)
	products.Delete("/:code", canEditWarehouse, productHandler.Delete)

	// Facturas de venta y cobros
	salesFlag := RequirePermission(deps.UserUC, func(p entity.Permissions) bool { return p.Sales })
	invoiceHandler := NewInvoiceHandler(deps.SalesUC)
	invoices := protected.Group("/invoices", salesFlag)
	invoices.Get("/next-id", invoiceHandler.NextID)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)
	invoices.Delete("/", canDeleteLedgers, invoiceHandler.ClearAll)
	protected.Post("/collections", salesFlag, invoiceHandler.AddCollection)

	// Facturas de compra
	purchases := protected.Group("/purchases",
		RequirePermission(deps.UserUC, func(p entity.Permissions) bool { return p.Warehouse }))
	canEditPurchases := RequirePermission(deps.UserUC, func(p entity.Permissions) bool { return p.CanEditPurchases })
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	purchases.Get("/next-id", purchaseHandler.NextID)
	purchases.Post("/", purchaseHandler.Create)
	purchases.Get("/", purchaseHandler.List)
	purchases.Get("/:id", purchaseHandler.GetByID)
	purchases.Put("/:id", canEditPurchases, purchaseHandler.Update)
	purchases.Delete("/:id", canEditPurchases, purchaseHandler.Delete)

	// Tesorería: lectura con Financial, escritura con CanManageTreasury
	treasuryGroup := protected.Group("/treasury",
		RequirePermission(deps.UserUC, func(p entity.Permissions) bool { return p.Financial }))
	canManageTreasury := RequirePermission(deps.UserUC, func(p entity.Permissions) bool { return p.CanManageTreasury })
	treasuryHandler := NewTreasuryHandler(deps.TreasuryUC)
	treasuryGroup.Get("/", treasuryHandler.List)
	treasuryGroup.Get("/balance", treasuryHandler.Balance)
	treasuryGroup.Post("/transfers", canManageTreasury, treasuryHandler.AddTransfer)
	treasuryGroup.Post("/expenses", canManageTreasury, treasuryHandler.AddExpense)
	treasuryGroup.Post("/opening-balance", canManageTreasury, treasuryHandler.AddOpeningBalance)
	treasuryGroup.Delete("/", canManageTreasury, treasuryHandler.Clear)

	// Usuarios (solo ADMIN)
	users := protected.Group("/users", RequireAdmin())
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Tablero
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard",
		RequirePermission(deps.UserUC, func(p entity.Permissions) bool { return p.Dashboard }),
		dashboardHandler.Summary)

	// Configuración del negocio (solo ADMIN para escribir)
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings := protected.Group("/settings")
	settings.Get("/:key", settingsHandler.Get)
	settings.Put("/:key", RequireAdmin(), settingsHandler.Put)
}
