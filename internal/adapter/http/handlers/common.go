package handlers

import (
	"errors"
	"net/http"

	"amsi_crm/internal/adapter/persistence/repository"
	"amsi_crm/internal/domain/workflow"
	"amsi_crm/pkg"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)

// mapCommonError handles the error kinds shared by every entity handler;
// entity-specific sentinels are mapped by each handler before falling back
// here.
func mapCommonError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, workflow.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", err.Error(), err, http.StatusConflict)
	case errors.Is(err, repository.ErrDuplicateID):
		return pkg.NewDomainErrorSimple("DUPLICATE_ID", "Entity id already exists", http.StatusConflict)
	case errors.Is(err, repository.ErrNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Entity not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
