package tax

import (
	"errors"

	taxerrors "go-hrms/internal/tax/errors"

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
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "uq_tax_brackets_year_order":
			return taxerrors.ErrBracketOrderExists
		case "uq_tax_settings_year_key":
			return taxerrors.ErrSettingExists
		}
	}

	return err
}
