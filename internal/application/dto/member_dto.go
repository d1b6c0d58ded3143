package dto

import "time"

// CreateMemberRequest alta de un miembro del directorio.
type CreateMemberRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Birthday string `json:"birthday"` // DD/MM/YYYY
	Role     string `json:"role"`     // admin, member, guest
	Status   string `json:"status"`   // active, inactive
}

// UpdateMemberRequest edición parcial de un miembro (campos nil no cambian).
type UpdateMemberRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Birthday *string `json:"birthday"`
	Role     *string `json:"role"`
	Status   *string `json:"status"`
}

// MemberResponse representación de salida de un miembro.
type MemberResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Birthday  string    `json:"birthday"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// MemberListResponse página del directorio con metadatos para el paginador.
type MemberListResponse struct {
	Data     []MemberResponse `json:"data"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}
