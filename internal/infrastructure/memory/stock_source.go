package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/pos-backoffice/internal/application/shop"
	"github.com/tu-usuario/pos-backoffice/internal/domain/entity"
)

var _ shop.StockSource = (*StockSource)(nil)

// StockSource pool de stock en memoria para desarrollo. Cumple el mismo contrato que
// el backend remoto: fetch devuelve el catálogo completo y el checkout es atómico,
// o descuenta todas las líneas o no descuenta ninguna.
type StockSource struct {
	mu       sync.Mutex
	products entity.Catalog
}

// NewStockSource construye el pool con el catálogo inicial dado.
func NewStockSource(products entity.Catalog) *StockSource {
	return &StockSource{products: append(entity.Catalog(nil), products...)}
}

// NewSeededStockSource construye el pool con un catálogo de ejemplo.
func NewSeededStockSource() *StockSource {
	return NewStockSource(entity.Catalog{
		{Code: "CF001", Name: "Café americano", Price: decimal.NewFromInt(55), Remain: 10},
		{Code: "CF002", Name: "Latte", Price: decimal.NewFromInt(65), Remain: 8},
		{Code: "BK001", Name: "Croissant", Price: decimal.NewFromInt(45), Remain: 6},
		{Code: "BK002", Name: "Brownie", Price: decimal.NewFromInt(50), Remain: 4},
		{Code: "DR001", Name: "Jugo de naranja", Price: decimal.NewFromInt(40), Remain: 12},
	})
}

// FetchProducts devuelve una copia del catálogo vigente.
func (s *StockSource) FetchProducts(_ context.Context) (entity.Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append(entity.Catalog(nil), s.products...), nil
}

// SubmitCheckout valida todas las líneas antes de descontar. Cualquier faltante
// rechaza el checkout completo con CheckoutError.
func (s *StockSource) SubmitCheckout(_ context.Context, items []shop.CheckoutItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, it := range items {
		if it.Amount <= 0 {
			return &shop.CheckoutError{Message: fmt.Sprintf("cantidad inválida para %s", it.Code)}
		}
		if s.products.Remain(it.Code) < it.Amount {
			return &shop.CheckoutError{Message: fmt.Sprintf("stock insuficiente para %s", it.Code)}
		}
	}
	for _, it := range items {
		for i := range s.products {
			if s.products[i].Code == it.Code {
				s.products[i].Remain -= it.Amount
			}
		}
	}
	return nil
}
