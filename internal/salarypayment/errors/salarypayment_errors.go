package salarypaymenterrors

import (
	"net/http"

	"go-waterbook/internal/shared/apperror"
)

var (
	ErrSalaryPaymentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Salary payment not found",
		http.StatusNotFound,
	)
	ErrInvalidSalaryPaymentID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid salary payment ID",
		http.StatusBadRequest,
	)
	ErrInvalidPaymentDate = apperror.New(
		apperror.CodeInvalidInput,
		"Payment date must be in YYYY-MM-DD format",
		http.StatusBadRequest,
	)
)
