package employee

import (
	"strings"

	employeeerrors "go-payroll/internal/employee/errors"

	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	Name     string          `json:"name" binding:"required"`
	Position string          `json:"position" binding:"required"`
	Salary   decimal.Decimal `json:"salary"`
}

// Validate covers what binding tags cannot express for decimal fields.
func (r CreateEmployeeRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" || strings.TrimSpace(r.Position) == "" {
		return employeeerrors.ErrMissingRequiredFields
	}
	if !r.Salary.IsPositive() {
		return employeeerrors.ErrInvalidSalary
	}
	return nil
}

type EmployeeResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Position string          `json:"position"`
	Salary   decimal.Decimal `json:"salary"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:       e.ID.String(),
		Name:     e.Name,
		Position: e.Position,
		Salary:   e.Salary,
	}
}

func ToListResponse(employees []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		res[i] = ToResponse(e)
	}
	return res
}
