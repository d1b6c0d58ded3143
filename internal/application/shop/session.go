package shop

import (
	"context"
	"sync"

	"github.com/tu-usuario/pos-backoffice/internal/application/dto"
	"github.com/tu-usuario/pos-backoffice/internal/domain"
	"github.com/tu-usuario/pos-backoffice/internal/domain/entity"
)

// Session es la sesión de caja de un operador: el par (catálogo, carrito) y la
// coordinación del checkout. El catálogo es el snapshot del Stock Source; el carrito
// es propiedad exclusiva de la sesión y solo se muta aquí.
//
// El mutex serializa los handlers HTTP de la misma sesión; dentro de una sesión el
// modelo sigue siendo un único escritor, como en la pantalla original. El lock no se
// sostiene durante las llamadas de red.
type Session struct {
	mu  sync.Mutex
	src StockSource

	catalog entity.Catalog
	cart    entity.Cart

	loaded           bool // hubo al menos un fetch exitoso
	stale            bool // el último refresh falló; los números mostrados pueden ser viejos
	checkoutInFlight bool
}

// NewSession construye una sesión con carrito vacío y catálogo sin cargar.
func NewSession(src StockSource) *Session {
	return &Session{src: src, cart: entity.Cart{}}
}

// Refresh reemplaza el catálogo completo con el estado del Stock Source. Si el fetch
// falla se conserva el snapshot anterior y la sesión queda marcada como stale: un
// fallo de transporte significa "sin datos", nunca "stock cero".
func (s *Session) Refresh(ctx context.Context) error {
	s.mu.Lock()
	if s.checkoutInFlight {
		s.mu.Unlock()
		return domain.ErrCheckoutInProgress
	}
	s.mu.Unlock()

	catalog, err := s.src.FetchProducts(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.stale = true
		return err
	}
	s.catalog = catalog
	s.loaded = true
	s.stale = false
	return nil
}

// EnsureLoaded hace el fetch inicial si el catálogo aún no se cargó nunca.
func (s *Session) EnsureLoaded(ctx context.Context) error {
	s.mu.Lock()
	loaded := s.loaded
	s.mu.Unlock()
	if loaded {
		return nil
	}
	return s.Refresh(ctx)
}

// Products devuelve el catálogo con el disponible derivado por producto
// (remain menos lo reservado en el carrito, recalculado en cada llamada).
func (s *Session) Products() *dto.ProductListResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]dto.ProductView, 0, len(s.catalog))
	for _, p := range s.catalog {
		items = append(items, dto.ProductView{
			Code:      p.Code,
			Name:      p.Name,
			Price:     p.Price,
			Remain:    p.Remain,
			Available: s.cart.Available(p),
		})
	}
	return &dto.ProductListResponse{Items: items, Stale: s.stale}
}

// AddToCart agrega una unidad del producto indicado validando contra el snapshot
// vigente. Un código desconocido es ErrNotFound; quedarse sin disponible no es un
// error sino un no-op (la UI ya deshabilitó el botón).
func (s *Session) AddToCart(code string) (*dto.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.checkoutInFlight {
		return nil, domain.ErrCheckoutInProgress
	}
	p, ok := s.catalog.Find(code)
	if !ok {
		return nil, domain.ErrNotFound
	}
	s.cart = s.cart.Add(p)
	return s.cartViewLocked(), nil
}

// UpdateQuantity aplica el delta a la línea del código dado; el motor trata un
// producto ausente del snapshot como stock 0 y filtra las líneas que llegan a 0.
func (s *Session) UpdateQuantity(code string, delta int) (*dto.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.checkoutInFlight {
		return nil, domain.ErrCheckoutInProgress
	}
	s.cart = s.cart.UpdateQuantity(s.catalog, code, delta)
	return s.cartViewLocked(), nil
}

// RemoveItem elimina la línea sin chequeo de stock; es idempotente.
func (s *Session) RemoveItem(code string) (*dto.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.checkoutInFlight {
		return nil, domain.ErrCheckoutInProgress
	}
	s.cart = s.cart.Remove(code)
	return s.cartViewLocked(), nil
}

// ClearCart vacía el carrito. La confirmación previa es asunto de la UI.
func (s *Session) ClearCart() (*dto.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.checkoutInFlight {
		return nil, domain.ErrCheckoutInProgress
	}
	s.cart = s.cart.Clear()
	return s.cartViewLocked(), nil
}

// Cart devuelve la vista del carrito en orden de inserción con el total derivado.
func (s *Session) Cart() *dto.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartViewLocked()
}

// CartLines devuelve una copia de las líneas actuales (para el recibo PDF).
func (s *Session) CartLines() entity.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append(entity.Cart(nil), s.cart...)
}

// Checkout serializa el carrito a [{code, amount}], lo envía al Stock Source y:
//   - carrito vacío: no-op silencioso, sin llamada remota;
//   - ya hay un checkout en curso: ErrCheckoutInProgress (evita doble envío);
//   - éxito: limpia el carrito y dispara el re-fetch del catálogo; un fallo del
//     re-fetch se reporta aparte en RefreshError, el cobro ya quedó firme;
//   - fallo: el carrito queda exactamente como estaba y el error sube al caller.
func (s *Session) Checkout(ctx context.Context) (*dto.CheckoutResponse, error) {
	s.mu.Lock()
	if s.checkoutInFlight {
		s.mu.Unlock()
		return nil, domain.ErrCheckoutInProgress
	}
	if s.cart.IsEmpty() {
		s.mu.Unlock()
		return &dto.CheckoutResponse{Status: "empty"}, nil
	}
	items := make([]CheckoutItem, 0, len(s.cart))
	for _, line := range s.cart {
		items = append(items, CheckoutItem{Code: line.Code, Amount: line.Quantity})
	}
	s.checkoutInFlight = true
	s.mu.Unlock()

	err := s.src.SubmitCheckout(ctx, items)

	s.mu.Lock()
	s.checkoutInFlight = false
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.cart = s.cart.Clear()
	s.mu.Unlock()

	// El refresh va estrictamente después de observar el éxito del checkout.
	resp := &dto.CheckoutResponse{Status: "ok"}
	if rerr := s.Refresh(ctx); rerr != nil {
		resp.RefreshError = rerr.Error()
	}
	return resp, nil
}

// cartViewLocked arma la vista del carrito; requiere s.mu tomado.
func (s *Session) cartViewLocked() *dto.CartView {
	lines := make([]dto.CartLineView, 0, len(s.cart))
	for _, line := range s.cart {
		lines = append(lines, dto.CartLineView{
			Code:     line.Code,
			Name:     line.Name,
			Price:    line.Price,
			Quantity: line.Quantity,
			Subtotal: line.Subtotal(),
		})
	}
	return &dto.CartView{Lines: lines, Total: s.cart.Total()}
}
