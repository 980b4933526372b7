package ridererrors

import (
	"net/http"

	"go-waterbook/internal/shared/apperror"
)

var (
	ErrRiderNotFound = apperror.New(
		apperror.CodeNotFound,
		"Rider not found",
		http.StatusNotFound,
	)
	ErrRiderNameAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Rider with the same name already exists",
		http.StatusConflict,
	)
	ErrInvalidRiderID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid rider ID",
		http.StatusBadRequest,
	)
)
