package shop

import (
	"sync"

	"github.com/google/uuid"
)

// Sessions registra las sesiones de caja activas por id. Cada login de operador crea
// una sesión nueva (carrito vacío); el id viaja dentro del JWT y el middleware lo usa
// para resolver la sesión en cada request.
type Sessions struct {
	mu   sync.RWMutex
	src  StockSource
	byID map[string]*Session
}

// NewSessions construye el registro con el Stock Source inyectado.
func NewSessions(src StockSource) *Sessions {
	return &Sessions{src: src, byID: make(map[string]*Session)}
}

// Create abre una sesión nueva y devuelve su id.
func (r *Sessions) Create() (string, *Session) {
	id := uuid.New().String()
	s := NewSession(r.src)
	r.mu.Lock()
	r.byID[id] = s
	r.mu.Unlock()
	return id, s
}

// Get devuelve la sesión del id, si existe.
func (r *Sessions) Get(id string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byID[id]
	return s, ok
}

// Remove descarta una sesión (logout). Sobre un id ausente es no-op.
func (r *Sessions) Remove(id string) {
	r.mu.Lock()
	delete(r.byID, id)
	r.mu.Unlock()
}
