package allocation

import (
	"errors"

	allocationerrors "go-hrms/internal/allocation/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return allocationerrors.ErrEmploymentNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_funding_allocations_active_slot" {
		return allocationerrors.ErrSlotTaken
	}

	return err
}
