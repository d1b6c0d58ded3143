package dto

import "github.com/shopspring/decimal"

// ProductView producto del catálogo con el disponible ya derivado contra el carrito.
// Available = remain - reservado; se recalcula en cada respuesta, nunca se almacena.
type ProductView struct {
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Remain    int             `json:"remain"`
	Available int             `json:"available"`
}

// ProductListResponse catálogo vigente de la sesión. Stale indica que el último
// refresh falló y los números mostrados pueden no ser los actuales del servidor.
type ProductListResponse struct {
	Items []ProductView `json:"items"`
	Stale bool          `json:"stale"`
}

// CartLineView línea del carrito para presentación.
type CartLineView struct {
	Code     string          `json:"code"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// CartView carrito en orden de inserción con el total derivado.
type CartView struct {
	Lines []CartLineView  `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

// AddCartItemRequest agrega una unidad del producto al carrito.
type AddCartItemRequest struct {
	Code string `json:"code"`
}

// UpdateCartItemRequest ajusta la cantidad de una línea (delta con signo, típicamente ±1).
type UpdateCartItemRequest struct {
	Delta int `json:"delta"`
}

// CheckoutResponse resultado del checkout. RefreshError se reporta de forma
// independiente: el cobro pudo ser exitoso aunque el re-fetch posterior fallara.
type CheckoutResponse struct {
	Status       string `json:"status"` // "ok" | "empty"
	RefreshError string `json:"refresh_error,omitempty"`
}
