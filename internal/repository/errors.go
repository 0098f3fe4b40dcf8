package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation es el código SQLSTATE de Postgres para violación de unique.
const uniqueViolation = "23505"

// IsUniqueViolation indica si el error proviene de un índice único, por
// ejemplo un email ya registrado entre usuarios activos.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
