package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/pos-backoffice/internal/domain"
	"github.com/tu-usuario/pos-backoffice/internal/domain/entity"
	"github.com/tu-usuario/pos-backoffice/internal/domain/repository"
)

var _ repository.MemberRepository = (*MemberRepo)(nil)

// MemberRepo implementación de MemberRepository sobre PostgreSQL.
//
// Esquema esperado:
//
//	CREATE TABLE members (
//	    id         TEXT PRIMARY KEY,
//	    name       TEXT NOT NULL,
//	    email      TEXT NOT NULL UNIQUE,
//	    birthday   TEXT NOT NULL,            -- DD/MM/YYYY
//	    role       TEXT NOT NULL CHECK (role IN ('admin','member','guest')),
//	    status     TEXT NOT NULL CHECK (status IN ('active','inactive')),
//	    created_at TIMESTAMPTZ NOT NULL
//	);
type MemberRepo struct {
	pool *pgxpool.Pool
}

// NewMemberRepository construye el adaptador.
func NewMemberRepository(pool *pgxpool.Pool) *MemberRepo {
	return &MemberRepo{pool: pool}
}

// Create persiste un nuevo miembro.
func (r *MemberRepo) Create(m *entity.Member) error {
	query := `
		INSERT INTO members (id, name, email, birthday, role, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		m.ID, m.Name, m.Email, m.Birthday, m.Role, m.Status, m.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert member: %w", err)
	}
	return nil
}

// GetByID obtiene un miembro por ID; nil si no existe.
func (r *MemberRepo) GetByID(id string) (*entity.Member, error) {
	query := `
		SELECT id, name, email, birthday, role, status, created_at
		FROM members WHERE id = $1`
	var m entity.Member
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.Name, &m.Email, &m.Birthday, &m.Role, &m.Status, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get member: %w", err)
	}
	return &m, nil
}

// GetByEmail obtiene un miembro por email (case-insensitive); nil si no existe.
func (r *MemberRepo) GetByEmail(email string) (*entity.Member, error) {
	query := `
		SELECT id, name, email, birthday, role, status, created_at
		FROM members WHERE lower(email) = lower($1)`
	var m entity.Member
	err := r.pool.QueryRow(context.Background(), query, email).Scan(
		&m.ID, &m.Name, &m.Email, &m.Birthday, &m.Role, &m.Status, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get member by email: %w", err)
	}
	return &m, nil
}

// List filtra por nombre o email con ILIKE, pagina y devuelve el total de coincidencias.
// Se filtra primero y se pagina después, como espera el paginador del directorio.
func (r *MemberRepo) List(search string, limit, offset int) ([]*entity.Member, int, error) {
	ctx := context.Background()
	pattern := "%" + search + "%"

	var total int
	countQuery := `
		SELECT count(*) FROM members
		WHERE $1 = '' OR name ILIKE $2 OR email ILIKE $2`
	if err := r.pool.QueryRow(ctx, countQuery, search, pattern).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count members: %w", err)
	}

	query := `
		SELECT id, name, email, birthday, role, status, created_at
		FROM members
		WHERE $1 = '' OR name ILIKE $2 OR email ILIKE $2
		ORDER BY created_at DESC, id
		LIMIT $3 OFFSET $4`
	rows, err := r.pool.Query(ctx, query, search, pattern, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	var list []*entity.Member
	for rows.Next() {
		var m entity.Member
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Birthday, &m.Role, &m.Status, &m.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan member: %w", err)
		}
		list = append(list, &m)
	}
	return list, total, rows.Err()
}

// Update actualiza un miembro.
func (r *MemberRepo) Update(m *entity.Member) error {
	query := `
		UPDATE members SET name = $2, email = $3, birthday = $4, role = $5, status = $6
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		m.ID, m.Name, m.Email, m.Birthday, m.Role, m.Status,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update member: %w", err)
	}
	return nil
}

// Delete elimina un miembro por ID; sobre un id ausente es no-op.
func (r *MemberRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	return nil
}
