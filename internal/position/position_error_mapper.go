package position

import (
	"errors"

	positionerrors "go-hrms/internal/position/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return positionerrors.ErrPositionNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23505" && pgErr.ConstraintName == "uq_positions_department_title":
			return positionerrors.ErrPositionAlreadyExists
		case pgErr.Code == "23503" && pgErr.ConstraintName == "fk_positions_department":
			return positionerrors.ErrDepartmentNotFound
		case pgErr.Code == "23503" && pgErr.ConstraintName == "fk_positions_reports_to":
			return positionerrors.ErrReportsToNotFound
		}
	}

	return err
}
