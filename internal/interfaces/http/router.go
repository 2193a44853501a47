package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-api/internal/application/auth"
	"github.com/tu-usuario/almacen-api/internal/application/catalog"
	"github.com/tu-usuario/almacen-api/internal/application/stock"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	CatalogUC *catalog.UseCase
	StockUC   *stock.UseCase
	Gate      *auth.Gate
	JWTSecret string
}

// Router registra las rutas de la API.
//
// Las lecturas del catálogo y del stock son públicas. Toda mutación exige
// Bearer Token + rol Administrador o Gestor (gate). La gestión de usuarios
// es exclusiva del Administrador.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authn := AuthMiddleware(deps.JWTSecret)
	mutate := RequireCapability(deps.Gate, auth.CapabilityMutate)
	admin := RequireCapability(deps.Gate, auth.CapabilityAdmin)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Users (solo Administrador)
	users := api.Group("/users", authn, admin)
	userHandler := NewUserHandler(deps.AuthUC)
	users.Get("/", userHandler.List)
	users.Put("/:id/role", userHandler.UpdateRole)

	inv := api.Group("/inventory")
	articleHandler := NewArticleHandler(deps.CatalogUC)
	stockHandler := NewStockHandler(deps.StockUC)

	// Stock — se registra antes que /inventory/:id para que el segmento
	// literal "stock" no caiga en el parámetro.
	st := inv.Group("/stock")
	st.Get("/", stockHandler.ListAll)
	st.Get("/location/:location", stockHandler.ListByLocation)
	st.Get("/:articleID", stockHandler.ListByArticle)
	st.Post("/", authn, mutate, stockHandler.Create)
	st.Put("/:id", authn, mutate, stockHandler.Set)
	st.Patch("/:id/adjust", authn, mutate, stockHandler.Adjust)
	st.Delete("/:id", authn, mutate, stockHandler.Delete)

	// Catálogo
	inv.Get("/", articleHandler.List)
	inv.Get("/:id", articleHandler.GetByID)
	inv.Post("/", authn, mutate, articleHandler.Create)
	inv.Put("/:id", authn, mutate, articleHandler.Update)
	inv.Delete("/:id", authn, mutate, articleHandler.Delete)
}
