package personnelaction

import (
	"errors"

	personnelactionerrors "go-hrms/internal/personnelaction/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return personnelactionerrors.ErrActionNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23503" {
		return err
	}
	switch pgErr.ConstraintName {
	case "fk_personnel_actions_new_department":
		return personnelactionerrors.ErrDepartmentNotFound
	case "fk_personnel_actions_new_position":
		return personnelactionerrors.ErrPositionNotFound
	case "fk_personnel_actions_employee":
		return personnelactionerrors.ErrEmploymentNotFound
	}
	return err
}
