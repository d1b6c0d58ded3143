package entity

import "github.com/shopspring/decimal"

// Product representa un producto del Stock Source con su stock restante.
// El catálogo es propiedad del Stock Source; para el motor de carrito es solo lectura
// y se reemplaza completo en cada fetch (sin parches incrementales).
type Product struct {
	Code   string          // identificador único, estable entre refreshes
	Name   string
	Price  decimal.Decimal // >= 0
	Remain int             // unidades disponibles antes de cualquier reserva local
}

// Catalog es el snapshot vigente de productos. Se descarta y reemplaza en cada fetch.
type Catalog []Product

// Find busca un producto por código.
func (c Catalog) Find(code string) (Product, bool) {
	for _, p := range c {
		if p.Code == code {
			return p, true
		}
	}
	return Product{}, false
}

// Remain devuelve el stock del producto, o 0 si el código no existe en el snapshot.
// Un producto ausente se trata como stock cero, nunca como error.
func (c Catalog) Remain(code string) int {
	p, ok := c.Find(code)
	if !ok {
		return 0
	}
	return p.Remain
}
