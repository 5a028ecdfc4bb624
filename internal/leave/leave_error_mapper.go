package leave

import (
	"errors"

	leaveerrors "go-hrms/internal/leave/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error, notFound error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch {
	case pgErr.Code == "23505" && pgErr.ConstraintName == "uq_leave_types_name":
		return leaveerrors.ErrLeaveTypeExists
	case pgErr.Code == "23503" && (pgErr.ConstraintName == "fk_leave_balances_leave_type" ||
		pgErr.ConstraintName == "fk_leave_requests_leave_type"):
		return leaveerrors.ErrLeaveTypeInUse
	case pgErr.Code == "23503" && pgErr.ConstraintName == "fk_leave_requests_employee":
		return leaveerrors.ErrEmployeeNotFound
	}
	return err
}
