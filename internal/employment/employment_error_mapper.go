package employment

import (
	"errors"

	employmenterrors "go-hrms/internal/employment/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employmenterrors.ErrEmploymentNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch {
	case pgErr.Code == "23505" && pgErr.ConstraintName == "uq_employments_active_employee":
		return employmenterrors.ErrActiveEmploymentExists
	case pgErr.Code == "23503" && pgErr.ConstraintName == "fk_employments_employee":
		return employmenterrors.ErrEmployeeNotFound
	case pgErr.Code == "23503" && pgErr.ConstraintName == "fk_employments_department":
		return employmenterrors.ErrDepartmentNotFound
	case pgErr.Code == "23503" && pgErr.ConstraintName == "fk_employments_position":
		return employmenterrors.ErrPositionNotFound
	}
	return err
}
