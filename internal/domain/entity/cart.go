package entity

import "github.com/shopspring/decimal"

// CartLine es una línea del carrito. Nombre y precio se copian del producto al momento
// de agregarlo: un cambio de precio posterior en el Stock Source no altera un carrito en curso.
type CartLine struct {
	Code     string
	Name     string
	Price    decimal.Decimal
	Quantity int // siempre >= 1; una línea que llega a 0 se elimina, no se retiene
}

// Subtotal devuelve precio × cantidad de la línea.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart es la secuencia ordenada de líneas: el orden es el de primera inserción y nunca
// se reordena. Las operaciones devuelven un carrito nuevo; el llamador es dueño de la
// referencia mutable (una sola sesión de operador, sin escritores concurrentes).
//
// Invariantes en todo estado estable:
//   - a lo sumo una línea por código de producto
//   - toda línea tiene Quantity >= 1
//   - Quantity nunca excede el Remain del snapshot contra el que se validó
//
// Las violaciones de regla de negocio degradan a no-op silencioso: la capa de
// presentación ya deshabilitó el control correspondiente.
type Cart []CartLine

// Add agrega una unidad del producto. Si ya hay línea para ese código, incrementa en 1
// solo si no excede p.Remain; si no hay línea, agrega una nueva con cantidad 1 siempre
// que haya al menos una unidad de stock. En cualquier otro caso el carrito queda igual.
func (c Cart) Add(p Product) Cart {
	for i, line := range c {
		if line.Code != p.Code {
			continue
		}
		if line.Quantity+1 > p.Remain {
			return c
		}
		out := append(Cart(nil), c...)
		out[i].Quantity++
		return out
	}
	if p.Remain < 1 {
		return c
	}
	out := append(Cart(nil), c...)
	return append(out, CartLine{Code: p.Code, Name: p.Name, Price: p.Price, Quantity: 1})
}

// UpdateQuantity aplica un delta (típicamente ±1) a la línea del código dado, validando
// contra el stock del catálogo vigente. Si el producto ya no existe en el snapshot su
// stock se trata como 0: cualquier aumento se rechaza pero una disminución sí aplica.
// Tras aplicar, toda línea con cantidad <= 0 se filtra del carrito: decrementar una
// línea de cantidad 1 equivale a eliminarla. El filtro `> 0` es la única guarda inferior.
func (c Cart) UpdateQuantity(catalog Catalog, code string, delta int) Cart {
	out := make(Cart, 0, len(c))
	for _, line := range c {
		if line.Code == code {
			newQty := line.Quantity + delta
			if newQty <= catalog.Remain(code) {
				line.Quantity = newQty
			}
		}
		if line.Quantity > 0 {
			out = append(out, line)
		}
	}
	return out
}

// Remove elimina la línea del código dado sin condición alguna. Quitar siempre reduce
// la reserva, así que no hay chequeo de stock; sobre un código ausente es no-op.
func (c Cart) Remove(code string) Cart {
	out := make(Cart, 0, len(c))
	for _, line := range c {
		if line.Code != code {
			out = append(out, line)
		}
	}
	return out
}

// Clear devuelve un carrito vacío. La confirmación del operador es responsabilidad
// de la capa de presentación, no del motor.
func (c Cart) Clear() Cart {
	return Cart{}
}

// Quantity devuelve la cantidad reservada para el código, o 0 si no hay línea.
func (c Cart) Quantity(code string) int {
	for _, line := range c {
		if line.Code == code {
			return line.Quantity
		}
	}
	return 0
}

// Available deriva el stock disponible del producto: Remain menos lo ya reservado en
// el carrito. Se recalcula siempre y nunca se almacena, porque tanto el snapshot como
// el carrito cambian de forma independiente.
func (c Cart) Available(p Product) int {
	return p.Remain - c.Quantity(p.Code)
}

// Total devuelve la suma de precio × cantidad de todas las líneas.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c {
		total = total.Add(line.Subtotal())
	}
	return total
}

// IsEmpty indica si el carrito no tiene líneas.
func (c Cart) IsEmpty() bool {
	return len(c) == 0
}
