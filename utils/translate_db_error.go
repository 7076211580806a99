package utils

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/uchkunrakhimow/edtech-platform/domain"
	"gorm.io/gorm"
)

// TranslateDBError maps a store error onto the domain taxonomy.
// entity names the record for not-found results and conflictMsg is the
// message for unique violations. Errors already in the taxonomy pass
// through unchanged.
func TranslateDBError(err error, entity, conflictMsg string) error {
	if err == nil {
		return nil
	}

	if isDomainError(err) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NewNotFoundError(entity)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &domain.ConflictError{Message: conflictMsg, Err: err}
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return domain.NewNotFoundError("Referenced record")
	}

	// PostgreSQL-specific errors, for connections opened without TranslateError.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return &domain.ConflictError{Message: conflictMsg, Err: err}
		case "23503": // foreign_key_violation
			return domain.NewNotFoundError("Referenced record")
		case "22P02": // invalid_text_representation
			return domain.NewValidationError("id", "Invalid data format")
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &domain.UnknownError{Op: "request timeout", Err: err}
	}
	if errors.Is(err, context.Canceled) {
		return &domain.UnknownError{Op: "request was cancelled", Err: err}
	}

	return &domain.UnknownError{Op: "database error", Err: err}
}

func isDomainError(err error) bool {
	var (
		nf  *domain.NotFoundError
		cf  *domain.ConflictError
		ve  *domain.ValidationError
		unk *domain.UnknownError
	)
	return errors.As(err, &nf) || errors.As(err, &cf) || errors.As(err, &ve) || errors.As(err, &unk)
}
