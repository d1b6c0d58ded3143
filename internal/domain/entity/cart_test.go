package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/pos-backoffice/internal/domain/entity"
)

func producto(code string, price int64, remain int) entity.Product {
	return entity.Product{Code: code, Name: "Producto " + code, Price: decimal.NewFromInt(price), Remain: remain}
}

// ──────────────────────────────────────────────────────────────────────────────
// Add
// ──────────────────────────────────────────────────────────────────────────────

// Escenario: remain 3 → tres Add dejan una sola línea con cantidad 3; el cuarto es no-op.
func TestCart_Add_RespetaStockMaximo(t *testing.T) {
	a := producto("A", 10, 3)

	cart := entity.Cart{}
	cart = cart.Add(a)
	cart = cart.Add(a)
	cart = cart.Add(a)

	require.Len(t, cart, 1, "tres Add del mismo producto deben producir una sola línea")
	assert.Equal(t, 3, cart[0].Quantity)

	// Cuarto Add: disponible llegó a 0, el carrito no cambia
	cart = cart.Add(a)
	require.Len(t, cart, 1)
	assert.Equal(t, 3, cart[0].Quantity, "Add sobre disponible 0 debe ser no-op silencioso")
}

func TestCart_Add_CopiaNombreYPrecioAlAgregar(t *testing.T) {
	a := producto("A", 10, 5)
	cart := entity.Cart{}.Add(a)

	// El precio cambia en el Stock Source después de agregar
	a.Price = decimal.NewFromInt(99)
	a.Name = "Renombrado"

	require.Len(t, cart, 1)
	assert.True(t, cart[0].Price.Equal(decimal.NewFromInt(10)),
		"el precio se captura al agregar; cambios posteriores no afectan el carrito")
	assert.Equal(t, "Producto A", cart[0].Name)
}

func TestCart_Add_SinStockNoAgregaLinea(t *testing.T) {
	agotado := producto("Z", 10, 0)
	cart := entity.Cart{}.Add(agotado)
	assert.True(t, cart.IsEmpty(), "un producto sin stock no debe entrar al carrito")
}

func TestCart_Add_MantieneOrdenDeInsercion(t *testing.T) {
	a, b, c := producto("A", 1, 9), producto("B", 2, 9), producto("C", 3, 9)

	cart := entity.Cart{}.Add(a).Add(b).Add(c).Add(a).Add(b)

	require.Len(t, cart, 3)
	assert.Equal(t, []string{"A", "B", "C"}, []string{cart[0].Code, cart[1].Code, cart[2].Code},
		"el orden es el de primera inserción y no se reordena al actualizar")
	assert.Equal(t, 2, cart.Quantity("A"))
	assert.Equal(t, 2, cart.Quantity("B"))
}

func TestCart_Add_NoMutaElCarritoOriginal(t *testing.T) {
	a := producto("A", 10, 5)
	original := entity.Cart{}.Add(a)
	_ = original.Add(a)

	assert.Equal(t, 1, original.Quantity("A"), "Add debe devolver un carrito nuevo sin mutar el anterior")
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateQuantity
// ──────────────────────────────────────────────────────────────────────────────

// Escenario: {A, qty:2} con remain 2; dos decrementos → la línea desaparece.
func TestCart_UpdateQuantity_DecrementoHastaCeroElimina(t *testing.T) {
	a := producto("A", 10, 2)
	catalog := entity.Catalog{a}
	cart := entity.Cart{}.Add(a).Add(a)

	cart = cart.UpdateQuantity(catalog, "A", -1)
	require.Equal(t, 1, cart.Quantity("A"))

	cart = cart.UpdateQuantity(catalog, "A", -1)
	assert.Zero(t, cart.Quantity("A"), "decrementar una línea de cantidad 1 equivale a eliminarla")
	assert.True(t, cart.IsEmpty())
}

func TestCart_UpdateQuantity_IncrementoRechazadoSobreStock(t *testing.T) {
	a := producto("A", 10, 2)
	catalog := entity.Catalog{a}
	cart := entity.Cart{}.Add(a).Add(a)

	cart = cart.UpdateQuantity(catalog, "A", 1)
	assert.Equal(t, 2, cart.Quantity("A"), "incrementar por encima de remain debe ser no-op")
}

func TestCart_UpdateQuantity_ProductoAusenteTrataStockComoCero(t *testing.T) {
	a := producto("A", 10, 5)
	cart := entity.Cart{}.Add(a).Add(a)

	// El snapshot se refrescó y A ya no existe: maxStock = 0
	vacio := entity.Catalog{}

	subida := cart.UpdateQuantity(vacio, "A", 1)
	assert.Equal(t, 2, subida.Quantity("A"), "con producto ausente cualquier aumento se rechaza")

	bajada := cart.UpdateQuantity(vacio, "A", -1)
	assert.Equal(t, 1, bajada.Quantity("A"), "la disminución sí aplica aunque el producto ya no exista")
}

func TestCart_UpdateQuantity_CodigoSinLineaEsNoOp(t *testing.T) {
	a := producto("A", 10, 5)
	catalog := entity.Catalog{a}
	cart := entity.Cart{}.Add(a)

	out := cart.UpdateQuantity(catalog, "X", 1)
	assert.Equal(t, cart, out)
}

func TestCart_UpdateQuantity_DeltaNegativoGrandeEliminaLaLinea(t *testing.T) {
	a := producto("A", 10, 5)
	catalog := entity.Catalog{a}
	cart := entity.Cart{}.Add(a).Add(a).Add(a)

	// newQty = -2: pasa la guarda (<= maxStock) y el filtro > 0 la elimina
	out := cart.UpdateQuantity(catalog, "A", -5)
	assert.Zero(t, out.Quantity("A"))
	assert.True(t, out.IsEmpty())
}

// ──────────────────────────────────────────────────────────────────────────────
// Remove / Clear
// ──────────────────────────────────────────────────────────────────────────────

// Escenario: {A qty 2, B qty 1}; Remove("A") → queda solo {B, qty 1}.
func TestCart_Remove_EliminaSoloLaLineaIndicada(t *testing.T) {
	a, b := producto("A", 10, 5), producto("B", 5, 5)
	cart := entity.Cart{}.Add(a).Add(a).Add(b)

	cart = cart.Remove("A")

	require.Len(t, cart, 1)
	assert.Equal(t, "B", cart[0].Code)
	assert.Equal(t, 1, cart[0].Quantity)
}

func TestCart_Remove_EsIdempotente(t *testing.T) {
	a := producto("A", 10, 5)
	cart := entity.Cart{}.Add(a)

	out := cart.Remove("NOEXISTE")
	assert.Equal(t, cart, out, "remover un código ausente es no-op y no falla")

	out = out.Remove("A").Remove("A")
	assert.True(t, out.IsEmpty())
}

func TestCart_Clear_VaciaElCarrito(t *testing.T) {
	a, b := producto("A", 10, 5), producto("B", 5, 5)
	cart := entity.Cart{}.Add(a).Add(b)

	assert.True(t, cart.Clear().IsEmpty())
}

// ──────────────────────────────────────────────────────────────────────────────
// Derivaciones: Available y Total
// ──────────────────────────────────────────────────────────────────────────────

func TestCart_Available_DescuentaLoReservado(t *testing.T) {
	a := producto("A", 10, 3)
	cart := entity.Cart{}.Add(a).Add(a)

	assert.Equal(t, 1, cart.Available(a))

	cart = cart.Add(a)
	assert.Zero(t, cart.Available(a), "con todo el stock reservado el disponible es 0")
}

func TestCart_Available_SinLineaEsElRemainCompleto(t *testing.T) {
	a := producto("A", 10, 7)
	assert.Equal(t, 7, entity.Cart{}.Available(a))
}

// Escenario: {A qty 2 precio 10} + {B qty 1 precio 5} → total 25.
func TestCart_Total_SumaPrecioPorCantidad(t *testing.T) {
	a, b := producto("A", 10, 5), producto("B", 5, 5)
	cart := entity.Cart{}.Add(a).Add(a).Add(b)

	assert.True(t, cart.Total().Equal(decimal.NewFromInt(25)),
		"total esperado 25, obtenido %s", cart.Total())
}

func TestCart_Total_CarritoVacioEsCero(t *testing.T) {
	assert.True(t, entity.Cart{}.Total().IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Invariantes sobre secuencias de mutaciones
// ──────────────────────────────────────────────────────────────────────────────

// Ninguna secuencia de Add/UpdateQuantity deja una cantidad por encima del stock,
// una línea no positiva ni códigos repetidos.
func TestCart_InvariantesBajoSecuenciaDeMutaciones(t *testing.T) {
	a, b := producto("A", 10, 3), producto("B", 4, 1)
	catalog := entity.Catalog{a, b}

	cart := entity.Cart{}
	pasos := []func(entity.Cart) entity.Cart{
		func(c entity.Cart) entity.Cart { return c.Add(a) },
		func(c entity.Cart) entity.Cart { return c.Add(b) },
		func(c entity.Cart) entity.Cart { return c.Add(b) }, // rechazado: remain 1
		func(c entity.Cart) entity.Cart { return c.UpdateQuantity(catalog, "A", 1) },
		func(c entity.Cart) entity.Cart { return c.UpdateQuantity(catalog, "A", 1) },
		func(c entity.Cart) entity.Cart { return c.UpdateQuantity(catalog, "A", 1) }, // rechazado
		func(c entity.Cart) entity.Cart { return c.UpdateQuantity(catalog, "B", -1) },
		func(c entity.Cart) entity.Cart { return c.Add(b) },
		func(c entity.Cart) entity.Cart { return c.Remove("A") },
		func(c entity.Cart) entity.Cart { return c.Add(a) },
	}

	for i, paso := range pasos {
		cart = paso(cart)

		vistos := map[string]bool{}
		for _, line := range cart {
			assert.GreaterOrEqual(t, line.Quantity, 1,
				"paso %d: toda línea debe tener cantidad >= 1", i)
			assert.LessOrEqual(t, line.Quantity, catalog.Remain(line.Code),
				"paso %d: la cantidad de %s no puede exceder su stock", i, line.Code)
			assert.False(t, vistos[line.Code],
				"paso %d: no puede haber dos líneas con el código %s", i, line.Code)
			vistos[line.Code] = true
		}
	}
}
