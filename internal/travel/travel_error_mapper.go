package travel

import (
	"errors"

	travelerrors "go-hrms/internal/travel/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return travelerrors.ErrTravelNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23503" {
		return err
	}
	switch pgErr.ConstraintName {
	case "fk_travel_requests_employee":
		return travelerrors.ErrEmployeeNotFound
	case "fk_travel_requests_grant":
		return travelerrors.ErrGrantNotFound
	case "fk_travel_requests_department":
		return travelerrors.ErrDepartmentNotFound
	case "fk_travel_requests_position":
		return travelerrors.ErrPositionNotFound
	}
	return err
}
