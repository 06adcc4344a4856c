package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-project-keeper/internal/service"
	"github.com/MKhiriev/go-project-keeper/internal/store"
	"github.com/MKhiriev/go-project-keeper/internal/validators"
)

type errorStatus struct {
	target error
	status int
}

// errorStatuses is checked in order: a validation error wrapping
// ErrImageNotAllowed must resolve to 413 before the generic 400.
var errorStatuses = []errorStatus{
	{validators.ErrImageNotAllowed, http.StatusRequestEntityTooLarge},
	{service.ErrValidation, http.StatusBadRequest},
	{service.ErrInvalidArgument, http.StatusBadRequest},
	{service.ErrProjectNotFound, http.StatusNotFound},
	{store.ErrProjectNotFound, http.StatusNotFound},
	{store.ErrProjectAlreadyExists, http.StatusConflict},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
