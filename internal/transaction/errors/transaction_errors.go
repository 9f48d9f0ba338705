package transactionerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrTransactionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Transaction not found",
		http.StatusNotFound,
	)
	ErrInvalidTransactionID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid transaction ID",
		http.StatusBadRequest,
	)
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"Amount must be greater than 0",
		http.StatusBadRequest,
	)
	ErrInvalidTransactionType = apperror.New(
		apperror.CodeInvalidInput,
		"Transaction type must be one of Salary, Bonus, Fine",
		http.StatusBadRequest,
	)
	ErrInvalidDatePeriod = apperror.New(
		apperror.CodeInvalidRange,
		"Date period is invalid",
		http.StatusBadRequest,
	)
)
