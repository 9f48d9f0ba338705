package transaction

import (
	txerrors "go-payroll/internal/transaction/errors"

	"github.com/shopspring/decimal"
)

type CreateTransactionRequest struct {
	EmployeeID string          `json:"employeeId" binding:"required,uuid"`
	Amount     decimal.Decimal `json:"amount"`
	Type       string          `json:"type" binding:"required,oneof=Salary Bonus Fine"`
}

// Validate covers what binding tags cannot express for decimal fields.
func (r CreateTransactionRequest) Validate() error {
	if !r.Amount.IsPositive() {
		return txerrors.ErrInvalidAmount
	}
	return nil
}

type TransactionResponse struct {
	ID         string          `json:"id"`
	EmployeeID string          `json:"employeeId"`
	Amount     decimal.Decimal `json:"amount"`
	Date       string          `json:"date"`
	Type       string          `json:"type"`
}

type TotalAmountResponse struct {
	Amount decimal.Decimal `json:"amount"`
}

func ToResponse(t Transaction) TransactionResponse {
	return TransactionResponse{
		ID:         t.ID.String(),
		EmployeeID: t.EmployeeID.String(),
		Amount:     t.Amount,
		Date:       t.Date.Format(DateFormat),
		Type:       t.Type,
	}
}

func ToListResponse(transactions []Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		res[i] = ToResponse(t)
	}
	return res
}
