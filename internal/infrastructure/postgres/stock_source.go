package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/pos-backoffice/internal/application/shop"
	"github.com/tu-usuario/pos-backoffice/internal/domain/entity"
)

var _ shop.StockSource = (*StockSource)(nil)

// StockSource variante local del Stock Source: este servicio es dueño de la tabla
// products y el checkout descuenta el stock en una sola transacción con bloqueo de
// fila (SELECT FOR UPDATE), de modo que el pasa/falla es atómico como exige el motor.
//
// Esquema esperado:
//
//	CREATE TABLE products (
//	    code   TEXT PRIMARY KEY,
//	    name   TEXT NOT NULL,
//	    price  NUMERIC(12,2) NOT NULL CHECK (price >= 0),
//	    remain INTEGER NOT NULL CHECK (remain >= 0)
//	);
type StockSource struct {
	pool *pgxpool.Pool
}

// NewStockSource construye el adaptador.
func NewStockSource(pool *pgxpool.Pool) *StockSource {
	return &StockSource{pool: pool}
}

// FetchProducts devuelve el catálogo completo. Una falla de transporte sube como
// FetchError: "sin datos de stock", nunca "stock cero".
func (s *StockSource) FetchProducts(ctx context.Context) (entity.Catalog, error) {
	query := `SELECT code, name, price, remain FROM products ORDER BY code`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, &shop.FetchError{Err: fmt.Errorf("query products: %w", err)}
	}
	defer rows.Close()

	var catalog entity.Catalog
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.Code, &p.Name, &p.Price, &p.Remain); err != nil {
			return nil, &shop.FetchError{Err: fmt.Errorf("scan product: %w", err)}
		}
		catalog = append(catalog, p)
	}
	if err := rows.Err(); err != nil {
		return nil, &shop.FetchError{Err: err}
	}
	return catalog, nil
}

// SubmitCheckout descuenta todas las líneas dentro de una transacción. Cualquier
// faltante aborta el checkout completo con CheckoutError y deja la tabla intacta.
func (s *StockSource) SubmitCheckout(ctx context.Context, items []shop.CheckoutItem) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, it := range items {
		if it.Amount <= 0 {
			return &shop.CheckoutError{Message: fmt.Sprintf("cantidad inválida para %s", it.Code)}
		}
		var remain int
		err := tx.QueryRow(ctx,
			`SELECT remain FROM products WHERE code = $1 FOR UPDATE`, it.Code,
		).Scan(&remain)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return &shop.CheckoutError{Message: fmt.Sprintf("producto desconocido: %s", it.Code)}
			}
			return fmt.Errorf("lock product %s: %w", it.Code, err)
		}
		if remain < it.Amount {
			return &shop.CheckoutError{Message: fmt.Sprintf("stock insuficiente para %s", it.Code)}
		}
		if _, err := tx.Exec(ctx,
			`UPDATE products SET remain = remain - $2 WHERE code = $1`, it.Code, it.Amount,
		); err != nil {
			return fmt.Errorf("update stock %s: %w", it.Code, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
