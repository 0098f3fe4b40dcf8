package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"jobs-api/internal/domain"
)

// UserRepository define el contrato de persistencia para usuarios. Todas las
// lecturas y escrituras filtran registros con soft delete.
type UserRepository interface {
	Create(ctx context.Context, user domain.User) error
	GetByID(ctx context.Context, id string) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id string, patch UserPatch) (domain.User, error)
	SoftDelete(ctx context.Context, id string) (domain.User, error)
	UpdateRefreshTokenHash(ctx context.Context, id string, hash *string) error
}

// UserPatch describe una actualización parcial; nil deja el campo como está.
type UserPatch struct {
	Email        *string
	DisplayName  *string
	PasswordHash *string
}

const userColumns = `id, email, display_name, password_hash, refresh_token_hash, created_at, updated_at, deleted_at`

// PgUserRepository implementa UserRepository usando pgxpool.
type PgUserRepository struct {
	pool *pgxpool.Pool
}

func NewPgUserRepository(pool *pgxpool.Pool) *PgUserRepository {
	return &PgUserRepository{pool: pool}
}

func (r *PgUserRepository) Create(ctx context.Context, user domain.User) error {
	const query = `
		INSERT INTO users (id, email, display_name, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query,
		user.ID,
		user.Email,
		user.DisplayName,
		user.PasswordHash,
		user.CreatedAt,
		user.UpdatedAt,
	)
	return err
}

func (r *PgUserRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1 AND deleted_at IS NULL
	`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *PgUserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1 AND deleted_at IS NULL
	`
	return r.scanOne(r.pool.QueryRow(ctx, query, email))
}

func (r *PgUserRepository) List(ctx context.Context) ([]domain.User, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := r.scanOne(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Update aplica un patch parcial y devuelve la fila resultante. COALESCE deja
// intactos los campos no enviados, así el UPDATE es una sola sentencia atómica.
func (r *PgUserRepository) Update(ctx context.Context, id string, patch UserPatch) (domain.User, error) {
	const query = `
		UPDATE users
		SET email = COALESCE($2, email),
		    display_name = COALESCE($3, display_name),
		    password_hash = COALESCE($4, password_hash),
		    updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING ` + userColumns + `
	`
	return r.scanOne(r.pool.QueryRow(ctx, query, id, patch.Email, patch.DisplayName, patch.PasswordHash))
}

func (r *PgUserRepository) SoftDelete(ctx context.Context, id string) (domain.User, error) {
	const query = `
		UPDATE users
		SET deleted_at = now(), updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING ` + userColumns + `
	`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

// UpdateRefreshTokenHash rota o limpia el hash del refresh token. El UPDATE de
// una sola fila es lo que hace atómica la rotación frente a refresh concurrentes.
func (r *PgUserRepository) UpdateRefreshTokenHash(ctx context.Context, id string, hash *string) error {
	const query = `
		UPDATE users
		SET refresh_token_hash = $2, updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
	`
	tag, err := r.pool.Exec(ctx, query, id, hash)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PgUserRepository) scanOne(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.DisplayName,
		&u.PasswordHash,
		&u.RefreshTokenHash,
		&u.CreatedAt,
		&u.UpdatedAt,
		&u.DeletedAt,
	)
	return u, err
}
