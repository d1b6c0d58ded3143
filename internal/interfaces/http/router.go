package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/pos-backoffice/internal/application/auth"
	"github.com/tu-usuario/pos-backoffice/internal/application/member"
	"github.com/tu-usuario/pos-backoffice/internal/application/shop"
	"github.com/tu-usuario/pos-backoffice/internal/infrastructure/pdf"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.UseCase
	MemberUC  *member.UseCase
	Sessions  *shop.Sessions
	Receipts  *pdf.ReceiptGenerator
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Post("/auth/logout", authHandler.Logout)

	// Directorio de miembros (protegido)
	members := protected.Group("/members")
	memberHandler := NewMemberHandler(deps.MemberUC)
	members.Get("/", memberHandler.List)
	members.Post("/", memberHandler.Create)
	members.Put("/:id", memberHandler.Update)
	members.Delete("/:id", memberHandler.Delete)

	// Pantalla de venta (protegido)
	shopGroup := protected.Group("/shop")
	shopHandler := NewShopHandler(deps.Sessions, deps.Receipts)
	shopGroup.Get("/products", shopHandler.Products)
	shopGroup.Post("/products/refresh", shopHandler.Refresh)
	shopGroup.Get("/cart", shopHandler.Cart)
	shopGroup.Delete("/cart", shopHandler.ClearCart)
	shopGroup.Post("/cart/items", shopHandler.AddItem)
	shopGroup.Patch("/cart/items/:code", shopHandler.UpdateItem)
	shopGroup.Delete("/cart/items/:code", shopHandler.RemoveItem)
	shopGroup.Get("/cart/receipt", shopHandler.Receipt)
	shopGroup.Post("/checkout", shopHandler.Checkout)
}
