package rider

import (
	"errors"
	"strings"

	ridererrors "go-waterbook/internal/rider/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ridererrors.ErrRiderNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_rider_name" {
			return ridererrors.ErrRiderNameAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_rider_name") {
		return ridererrors.ErrRiderNameAlreadyExists
	}

	return err
}
