package employee

import (
	"errors"

	employeeerrors "go-payroll/internal/employee/errors"

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
		return employeeerrors.ErrEmployeeNotFound
	}

	return err
}
