package repository

import "github.com/tu-usuario/pos-backoffice/internal/domain/entity"

// MemberRepository define el puerto de persistencia para el directorio de miembros (DIP).
// List recibe el filtro de búsqueda ya normalizado (ver member.FoldSearch) y devuelve
// la página pedida junto con el total de coincidencias para la paginación.
type MemberRepository interface {
	Create(member *entity.Member) error
	GetByID(id string) (*entity.Member, error)
	GetByEmail(email string) (*entity.Member, error)
	List(search string, limit, offset int) ([]*entity.Member, int, error)
	Update(member *entity.Member) error
	Delete(id string) error
}
