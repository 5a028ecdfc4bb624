package department

import (
	"errors"

	departmenterrors "go-hrms/internal/department/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return departmenterrors.ErrDepartmentNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23505" && pgErr.ConstraintName == "uq_departments_name":
			return departmenterrors.ErrDepartmentAlreadyExists
		case pgErr.Code == "23503":
			return departmenterrors.ErrDepartmentInUse
		}
	}

	return err
}
