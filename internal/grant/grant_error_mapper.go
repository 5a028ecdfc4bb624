package grant

import (
	"errors"

	granterrors "go-hrms/internal/grant/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return granterrors.ErrGrantNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "uq_grants_code":
			return granterrors.ErrGrantCodeAlreadyExists
		case "uq_grant_items_budget_line":
			return granterrors.ErrBudgetLineAlreadyExists
		}
	}

	return err
}

func mapItemError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return granterrors.ErrGrantItemNotFound
	}
	return mapRepositoryError(err)
}
