package transaction

import (
	"errors"
	"strings"

	txerrors "go-payroll/internal/transaction/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// MapRepositoryError translates storage-level failures into the typed errors
// the boundary knows how to render. It is exported because the payroll
// manager drives this repository from its own package.
func MapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return txerrors.ErrTransactionNotFound
	}

	// 23503: the type column references the seeded transaction_types table
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23503" && strings.Contains(pgErr.ConstraintName, "type") {
			return txerrors.ErrInvalidTransactionType
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "violates foreign key constraint") && strings.Contains(errMsg, "type") {
		return txerrors.ErrInvalidTransactionType
	}

	return err
}
