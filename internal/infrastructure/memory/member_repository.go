package memory

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/tu-usuario/pos-backoffice/internal/application/member"
	"github.com/tu-usuario/pos-backoffice/internal/domain/entity"
	"github.com/tu-usuario/pos-backoffice/internal/domain/repository"
)

var _ repository.MemberRepository = (*MemberRepo)(nil)

// MemberRepo implementación en memoria de MemberRepository para desarrollo y tests.
// Reemplaza el mock global del directorio original detrás del mismo puerto que usa
// la variante PostgreSQL; el orden es de inserción con los más nuevos primero.
type MemberRepo struct {
	mu      sync.RWMutex
	members []*entity.Member
}

// NewMemberRepository construye el repositorio vacío.
func NewMemberRepository() *MemberRepo {
	return &MemberRepo{}
}

// Seed llena el directorio con n miembros de ejemplo (modo desarrollo).
func (r *MemberRepo) Seed(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	for i := 1; i <= n; i++ {
		role := entity.RoleMember
		if i%3 == 0 {
			role = entity.RoleAdmin
		}
		status := entity.StatusActive
		if i%5 == 0 {
			status = entity.StatusInactive
		}
		m := &entity.Member{
			ID:        fmt.Sprintf("mem-%d", i),
			Name:      fmt.Sprintf("User %d", i),
			Email:     fmt.Sprintf("user%d@example.com", i),
			Birthday:  fmt.Sprintf("%02d/%02d/%d", (i%28)+1, (i%12)+1, 1970+(i%30)),
			Role:      role,
			Status:    status,
			CreatedAt: now,
		}
		r.members = append([]*entity.Member{m}, r.members...)
	}
}

// Create inserta al frente: el directorio muestra primero las altas más recientes.
func (r *MemberRepo) Create(m *entity.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *m
	r.members = append([]*entity.Member{&clone}, r.members...)
	return nil
}

// GetByID busca por id; nil si no existe.
func (r *MemberRepo) GetByID(id string) (*entity.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.members {
		if m.ID == id {
			clone := *m
			return &clone, nil
		}
	}
	return nil, nil
}

// GetByEmail busca por email sin distinguir mayúsculas; nil si no existe.
func (r *MemberRepo) GetByEmail(email string) (*entity.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.members {
		if strings.EqualFold(m.Email, email) {
			clone := *m
			return &clone, nil
		}
	}
	return nil, nil
}

// List filtra por nombre o email (sin mayúsculas ni acentos) y pagina el resultado.
// Devuelve además el total de coincidencias antes de paginar.
func (r *MemberRepo) List(search string, limit, offset int) ([]*entity.Member, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	folded := member.FoldSearch(search)
	var filtered []*entity.Member
	for _, m := range r.members {
		if folded == "" ||
			strings.Contains(member.FoldSearch(m.Name), folded) ||
			strings.Contains(member.FoldSearch(m.Email), folded) {
			filtered = append(filtered, m)
		}
	}

	total := len(filtered)
	if offset >= total {
		return []*entity.Member{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	page := make([]*entity.Member, 0, end-offset)
	for _, m := range filtered[offset:end] {
		clone := *m
		page = append(page, &clone)
	}
	return page, total, nil
}

// Update reemplaza el miembro con el mismo id.
func (r *MemberRepo) Update(m *entity.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.members {
		if existing.ID == m.ID {
			clone := *m
			r.members[i] = &clone
			return nil
		}
	}
	return nil
}

// Delete elimina por id; sobre un id ausente es no-op.
func (r *MemberRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.members[:0]
	for _, m := range r.members {
		if m.ID != id {
			out = append(out, m)
		}
	}
	r.members = out
	return nil
}
