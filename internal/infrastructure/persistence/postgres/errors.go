package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	apperrors "github.com/fitcore/users-service/internal/domain/errors"
)

// pgUniqueViolation é o código SQLSTATE de violação de índice único
const pgUniqueViolation = "23505"

// translateUniqueViolation converte violações de unicidade do PostgreSQL
// nos erros de conflito do domínio. A pré-checagem de unicidade no serviço
// é racy; o banco é a fonte da verdade. Demais falhas de armazenamento são
// classificadas como inesperadas.
func translateUniqueViolation(err error, email, cpf string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgUniqueViolation {
		return apperrors.NewUnexpected(err)
	}

	constraint := strings.ToLower(pgErr.ConstraintName)
	switch {
	case strings.Contains(constraint, "email"):
		return apperrors.NewEmailAlreadyRegistered(email)
	case strings.Contains(constraint, "cpf"):
		return apperrors.NewCpfAlreadyRegistered(cpf)
	default:
		return apperrors.NewUnexpected(err)
	}
}
