package salesentryerrors

import (
	"net/http"

	"go-waterbook/internal/shared/apperror"
)

var (
	ErrSalesEntryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Sales entry not found",
		http.StatusNotFound,
	)
	ErrInvalidSalesEntryID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid sales entry ID",
		http.StatusBadRequest,
	)
	ErrInvalidEntryDate = apperror.New(
		apperror.CodeInvalidInput,
		"Entry date must be in YYYY-MM-DD format",
		http.StatusBadRequest,
	)
	ErrInvalidMeterReading = apperror.New(
		apperror.CodeInvalidInput,
		"Current meter reading must be greater than or equal to previous reading",
		http.StatusBadRequest,
	)
	// Kegagalan layanan koreksi menggagalkan submission. Tidak ada
	// fallback diam-diam ke perkiraan awal.
	ErrAdjustmentFailed = apperror.New(
		apperror.CodeAdjustmentFailed,
		"Expected amount adjustment failed, entry was not saved",
		http.StatusBadGateway,
	)
)
