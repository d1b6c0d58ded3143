package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/pos-backoffice/internal/application/dto"
	"github.com/tu-usuario/pos-backoffice/internal/application/shop"
	"github.com/tu-usuario/pos-backoffice/internal/domain"
	"github.com/tu-usuario/pos-backoffice/internal/infrastructure/pdf"
)

// ShopHandler maneja la pantalla de venta: catálogo, carrito, recibo y checkout.
// Cada request resuelve su sesión de caja por el session_id del token.
type ShopHandler struct {
	sessions *shop.Sessions
	receipts *pdf.ReceiptGenerator
}

// NewShopHandler construye el handler.
func NewShopHandler(sessions *shop.Sessions, receipts *pdf.ReceiptGenerator) *ShopHandler {
	return &ShopHandler{sessions: sessions, receipts: receipts}
}

// session resuelve la sesión de caja del request; nil si el login caducó del lado
// del servidor (token válido pero sesión descartada).
func (h *ShopHandler) session(c *fiber.Ctx) *shop.Session {
	s, ok := h.sessions.Get(GetSessionID(c))
	if !ok {
		return nil
	}
	return s
}

// Products GET /api/shop/products — catálogo con el disponible derivado por producto.
// Hace el fetch inicial si hace falta; si nunca hubo datos y el fetch falla, el error
// sube como tal: "sin datos" nunca se muestra como "stock cero".
func (h *ShopHandler) Products(c *fiber.Ctx) error {
	s := h.session(c)
	if s == nil {
		return sessionExpired(c)
	}
	err := s.EnsureLoaded(c.UserContext())
	view := s.Products()
	if err != nil && len(view.Items) == 0 {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "STOCK_SOURCE", Message: err.Error()})
	}
	return c.JSON(view)
}

// Refresh POST /api/shop/products/refresh — reemplaza el snapshot completo.
// En falla se conserva el snapshot anterior y la vista queda marcada stale.
func (h *ShopHandler) Refresh(c *fiber.Ctx) error {
	s := h.session(c)
	if s == nil {
		return sessionExpired(c)
	}
	if err := s.Refresh(c.UserContext()); err != nil {
		if errors.Is(err, domain.ErrCheckoutInProgress) {
			return checkoutInProgress(c)
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "STOCK_SOURCE", Message: err.Error()})
	}
	return c.JSON(s.Products())
}

// Cart GET /api/shop/cart
func (h *ShopHandler) Cart(c *fiber.Ctx) error {
	s := h.session(c)
	if s == nil {
		return sessionExpired(c)
	}
	return c.JSON(s.Cart())
}

// AddItem POST /api/shop/cart/items — agrega una unidad; sin disponible es no-op.
func (h *ShopHandler) AddItem(c *fiber.Ctx) error {
	s := h.session(c)
	if s == nil {
		return sessionExpired(c)
	}
	var in dto.AddCartItemRequest
	if err := c.BodyParser(&in); err != nil || in.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "code es requerido"})
	}
	view, err := s.AddToCart(in.Code)
	if err != nil {
		return cartError(c, err)
	}
	return c.JSON(view)
}

// UpdateItem PATCH /api/shop/cart/items/:code — aplica un delta a la cantidad.
// Una línea que llega a 0 desaparece; pasarse del stock deja la cantidad como estaba.
func (h *ShopHandler) UpdateItem(c *fiber.Ctx) error {
	s := h.session(c)
	if s == nil {
		return sessionExpired(c)
	}
	var in dto.UpdateCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	view, err := s.UpdateQuantity(c.Params("code"), in.Delta)
	if err != nil {
		return cartError(c, err)
	}
	return c.JSON(view)
}

// RemoveItem DELETE /api/shop/cart/items/:code — idempotente.
func (h *ShopHandler) RemoveItem(c *fiber.Ctx) error {
	s := h.session(c)
	if s == nil {
		return sessionExpired(c)
	}
	view, err := s.RemoveItem(c.Params("code"))
	if err != nil {
		return cartError(c, err)
	}
	return c.JSON(view)
}

// ClearCart DELETE /api/shop/cart
func (h *ShopHandler) ClearCart(c *fiber.Ctx) error {
	s := h.session(c)
	if s == nil {
		return sessionExpired(c)
	}
	view, err := s.ClearCart()
	if err != nil {
		return cartError(c, err)
	}
	return c.JSON(view)
}

// Receipt GET /api/shop/cart/receipt — PDF del carrito actual (no fiscal).
func (h *ShopHandler) Receipt(c *fiber.Ctx) error {
	s := h.session(c)
	if s == nil {
		return sessionExpired(c)
	}
	lines := s.CartLines()
	if lines.IsEmpty() {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "CART_EMPTY", Message: "el carrito está vacío"})
	}
	doc, err := h.receipts.GenerateCartReceipt(c.UserContext(), lines, GetOperator(c), time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="resumen-%s.pdf"`, time.Now().Format("20060102-150405")))
	return c.Send(doc)
}

// Checkout POST /api/shop/checkout — cobra el carrito completo contra el Stock Source.
// El pasa/falla es atómico: en éxito el carrito se limpia y el catálogo se recarga; en
// rechazo el carrito queda intacto y el mensaje del backend viaja textual al operador.
func (h *ShopHandler) Checkout(c *fiber.Ctx) error {
	s := h.session(c)
	if s == nil {
		return sessionExpired(c)
	}
	resp, err := s.Checkout(c.UserContext())
	if err != nil {
		if errors.Is(err, domain.ErrCheckoutInProgress) {
			return checkoutInProgress(c)
		}
		var ce *shop.CheckoutError
		if errors.As(err, &ce) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CHECKOUT_REJECTED", Message: ce.Error()})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "STOCK_SOURCE", Message: err.Error()})
	}
	return c.JSON(resp)
}

func sessionExpired(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_EXPIRED", Message: "la sesión de caja ya no existe, vuelva a iniciar sesión"})
}

func checkoutInProgress(c *fiber.Ctx) error {
	return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CHECKOUT_IN_PROGRESS", Message: "hay un checkout en curso"})
}

// cartError traduce los errores de las operaciones de carrito a estados HTTP.
func cartError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrCheckoutInProgress):
		return checkoutInProgress(c)
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado en el catálogo"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
