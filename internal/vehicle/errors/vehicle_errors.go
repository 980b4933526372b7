package vehicleerrors

import (
	"net/http"

	"go-waterbook/internal/shared/apperror"
)

var (
	ErrVehicleNotFound = apperror.New(
		apperror.CodeNotFound,
		"Vehicle not found",
		http.StatusNotFound,
	)
	ErrVehicleNameAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Vehicle with the same name already exists",
		http.StatusConflict,
	)
)
