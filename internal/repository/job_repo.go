package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"jobs-api/internal/domain"
)

// JobRepository define el contrato de persistencia para ofertas de trabajo.
type JobRepository interface {
	Create(ctx context.Context, job domain.Job) error
	GetByID(ctx context.Context, id string) (domain.Job, error)
	List(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error)
	Update(ctx context.Context, id string, patch JobPatch) (domain.Job, error)
	SoftDelete(ctx context.Context, id string) (domain.Job, error)
}

// JobPatch describe una actualización parcial; nil deja el campo como está.
type JobPatch struct {
	Title          *string
	CompanyName    *string
	CompanyWebsite *string
	About          *string
	Location       *string
	LocationType   *string
	Seniority      *string
	Type           *string
}

const jobColumns = `id, title, company_name, company_website, about, location, location_type, seniority, type, created_at, updated_at, deleted_at`

// PgJobRepository implementa JobRepository usando pgxpool.
type PgJobRepository struct {
	pool *pgxpool.Pool
}

func NewPgJobRepository(pool *pgxpool.Pool) *PgJobRepository {
	return &PgJobRepository{pool: pool}
}

func (r *PgJobRepository) Create(ctx context.Context, job domain.Job) error {
	const query = `
		INSERT INTO jobs (id, title, company_name, company_website, about, location, location_type, seniority, type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.pool.Exec(ctx, query,
		job.ID,
		job.Title,
		job.CompanyName,
		job.CompanyWebsite,
		job.About,
		job.Location,
		job.LocationType,
		job.Seniority,
		job.Type,
		job.CreatedAt,
		job.UpdatedAt,
	)
	return err
}

func (r *PgJobRepository) GetByID(ctx context.Context, id string) (domain.Job, error) {
	const query = `
		SELECT ` + jobColumns + `
		FROM jobs
		WHERE id = $1 AND deleted_at IS NULL
	`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *PgJobRepository) List(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	query, args := buildJobListQuery(filter)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		j, err := r.scanOne(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// buildJobListQuery arma el WHERE según el filtro: contención para campos de
// texto libre, igualdad para los enumerados.
func buildJobListQuery(filter domain.JobFilter) (string, []any) {
	base := "SELECT " + jobColumns + " FROM jobs WHERE deleted_at IS NULL"
	if filter.IsZero() {
		return base + " ORDER BY created_at DESC", nil
	}

	var sb strings.Builder
	sb.WriteString(base)
	var args []any

	contains := func(column, value string) {
		if value == "" {
			return
		}
		args = append(args, "%"+value+"%")
		fmt.Fprintf(&sb, " AND %s ILIKE $%d", column, len(args))
	}
	equals := func(column, value string) {
		if value == "" {
			return
		}
		args = append(args, value)
		fmt.Fprintf(&sb, " AND %s = $%d", column, len(args))
	}

	contains("title", filter.Title)
	contains("company_name", filter.CompanyName)
	contains("location", filter.Location)
	equals("location_type", filter.LocationType)
	equals("seniority", filter.Seniority)
	equals("type", filter.Type)

	sb.WriteString(" ORDER BY created_at DESC")
	return sb.String(), args
}

func (r *PgJobRepository) Update(ctx context.Context, id string, patch JobPatch) (domain.Job, error) {
	const query = `
		UPDATE jobs
		SET title = COALESCE($2, title),
		    company_name = COALESCE($3, company_name),
		    company_website = COALESCE($4, company_website),
		    about = COALESCE($5, about),
		    location = COALESCE($6, location),
		    location_type = COALESCE($7, location_type),
		    seniority = COALESCE($8, seniority),
		    type = COALESCE($9, type),
		    updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING ` + jobColumns + `
	`
	return r.scanOne(r.pool.QueryRow(ctx, query, id,
		patch.Title,
		patch.CompanyName,
		patch.CompanyWebsite,
		patch.About,
		patch.Location,
		patch.LocationType,
		patch.Seniority,
		patch.Type,
	))
}

func (r *PgJobRepository) SoftDelete(ctx context.Context, id string) (domain.Job, error) {
	const query = `
		UPDATE jobs
		SET deleted_at = now(), updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING ` + jobColumns + `
	`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *PgJobRepository) scanOne(row pgx.Row) (domain.Job, error) {
	var j domain.Job
	err := row.Scan(
		&j.ID,
		&j.Title,
		&j.CompanyName,
		&j.CompanyWebsite,
		&j.About,
		&j.Location,
		&j.LocationType,
		&j.Seniority,
		&j.Type,
		&j.CreatedAt,
		&j.UpdatedAt,
		&j.DeletedAt,
	)
	return j, err
}
