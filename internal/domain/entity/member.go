package entity

import "time"

// Roles válidos para Member. Enumeración cerrada: se valida en el borde HTTP,
// un valor fuera de la lista nunca entra al modelo.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
	RoleGuest  = "guest"
)

// Estados válidos para Member.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Member representa un miembro del directorio administrativo.
type Member struct {
	ID        string
	Name      string
	Email     string
	Birthday  string // DD/MM/YYYY
	Role      string // ver constantes Role*
	Status    string // ver constantes Status*
	CreatedAt time.Time
}

// ValidRole indica si el rol pertenece a la enumeración.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleMember, RoleGuest:
		return true
	}
	return false
}

// ValidStatus indica si el estado pertenece a la enumeración.
func ValidStatus(status string) bool {
	switch status {
	case StatusActive, StatusInactive:
		return true
	}
	return false
}
