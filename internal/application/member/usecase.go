package member

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/pos-backoffice/internal/application/dto"
	"github.com/tu-usuario/pos-backoffice/internal/domain"
	"github.com/tu-usuario/pos-backoffice/internal/domain/entity"
	"github.com/tu-usuario/pos-backoffice/internal/domain/repository"
)

var (
	emailRe    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	birthdayRe = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
)

// UseCase casos de uso del directorio de miembros: listado paginado con búsqueda,
// alta, edición parcial y baja. Los campos role y status entran como enumeración
// cerrada; un valor fuera de lista se rechaza aquí y nunca llega al modelo.
type UseCase struct {
	repo repository.MemberRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.MemberRepository) *UseCase {
	return &UseCase{repo: repo}
}

// List devuelve una página del directorio. search filtra por nombre o email sin
// distinguir mayúsculas ni acentos; se filtra primero y se pagina después.
func (uc *UseCase) List(page dto.PageRequest, search string) (*dto.MemberListResponse, error) {
	page.DefaultPage()
	list, total, err := uc.repo.List(strings.TrimSpace(search), page.PageSize, page.Offset())
	if err != nil {
		return nil, err
	}
	data := make([]dto.MemberResponse, 0, len(list))
	for _, m := range list {
		data = append(data, *toMemberResponse(m))
	}
	return &dto.MemberListResponse{
		Data:     data,
		Total:    total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}, nil
}

// Create da de alta un miembro. Valida el esquema completo y rechaza emails repetidos.
func (uc *UseCase) Create(in dto.CreateMemberRequest) (*dto.MemberResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if err := validateFields(in.Name, in.Email, in.Birthday, in.Role, in.Status); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	m := &entity.Member{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Birthday:  in.Birthday,
		Role:      in.Role,
		Status:    in.Status,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(m); err != nil {
		return nil, err
	}
	return toMemberResponse(m), nil
}

// Update edita parcialmente un miembro; los campos nil quedan como estaban.
func (uc *UseCase) Update(id string, in dto.UpdateMemberRequest) (*dto.MemberResponse, error) {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		m.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		m.Email = strings.TrimSpace(*in.Email)
	}
	if in.Birthday != nil {
		m.Birthday = *in.Birthday
	}
	if in.Role != nil {
		m.Role = *in.Role
	}
	if in.Status != nil {
		m.Status = *in.Status
	}
	if err := validateFields(m.Name, m.Email, m.Birthday, m.Role, m.Status); err != nil {
		return nil, err
	}
	if in.Email != nil {
		other, err := uc.repo.GetByEmail(m.Email)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != id {
			return nil, domain.ErrDuplicate
		}
	}
	if err := uc.repo.Update(m); err != nil {
		return nil, err
	}
	return toMemberResponse(m), nil
}

// Delete elimina un miembro. Sobre un id inexistente es no-op.
func (uc *UseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// validateFields aplica el esquema del directorio: nombre de al menos 2 caracteres,
// email con forma válida, fecha DD/MM/YYYY real y role/status dentro de la enumeración.
func validateFields(name, email, birthday, role, status string) error {
	if len([]rune(name)) < 2 {
		return domain.ErrInvalidInput
	}
	if !emailRe.MatchString(email) {
		return domain.ErrInvalidInput
	}
	if !birthdayRe.MatchString(birthday) {
		return domain.ErrInvalidInput
	}
	if _, err := time.Parse("02/01/2006", birthday); err != nil {
		return domain.ErrInvalidInput
	}
	if !entity.ValidRole(role) || !entity.ValidStatus(status) {
		return domain.ErrInvalidInput
	}
	return nil
}

func toMemberResponse(m *entity.Member) *dto.MemberResponse {
	if m == nil {
		return nil
	}
	return &dto.MemberResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Birthday:  m.Birthday,
		Role:      m.Role,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
	}
}
