package shop

import (
	"context"

	"github.com/tu-usuario/pos-backoffice/internal/domain/entity"
)

// CheckoutItem línea serializada de la mutación remota: {code, amount}.
type CheckoutItem struct {
	Code   string `json:"code"`
	Amount int    `json:"amount"`
}

// StockSource define el puerto de salida hacia el dueño autoritativo del stock.
// FetchProducts devuelve el catálogo completo (se reemplaza entero, sin parches).
// SubmitCheckout es atómico de cara al motor: un solo pasa/falla, sin éxito parcial.
// Implementaciones: backend REST (stockapi), PostgreSQL propio (postgres) y un pool
// en memoria para desarrollo (memory).
type StockSource interface {
	FetchProducts(ctx context.Context) (entity.Catalog, error)
	SubmitCheckout(ctx context.Context, items []CheckoutItem) error
}

// FetchError falla de transporte al obtener el catálogo. Se interpreta como
// "no hay datos de stock", nunca como "el stock es cero".
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return "no se pudo obtener el catálogo: " + e.Err.Error()
}

func (e *FetchError) Unwrap() error { return e.Err }

// CheckoutError rechazo de la mutación remota. Message se muestra textual al
// operador cuando el servidor lo envía; si viene vacío se usa un texto genérico.
type CheckoutError struct {
	Message string
}

func (e *CheckoutError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "no se pudo completar el checkout"
}
