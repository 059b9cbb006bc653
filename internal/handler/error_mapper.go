package handler

import (
	"errors"

	"github.com/teamsmith/hackops/internal/model"
	"github.com/teamsmith/hackops/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	switch {
	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrHackathonNotFound):
		return model.NewNotFoundError("hackathon")
	case errors.Is(err, service.ErrParticipantNotFound):
		return model.NewNotFoundError("participant")
	case errors.Is(err, service.ErrCertificateNotFound):
		return model.NewNotFoundError("certificate")
	case errors.Is(err, service.ErrNoAssignment):
		return model.NewNotFoundError("assignment")

	// ===== Conflict Errors → 409 =====
	case errors.Is(err, service.ErrEmailAlreadyRegistered),
		errors.Is(err, service.ErrCertificateAlreadyIssued):
		return model.NewConflictError(err.Error())

	// ===== Validation Errors → 422 =====
	case errors.Is(err, service.ErrHackathonNameRequired),
		errors.Is(err, service.ErrHackathonNameTooLong),
		errors.Is(err, service.ErrHackathonDescTooLong),
		errors.Is(err, service.ErrInvalidDateRange),
		errors.Is(err, service.ErrInvalidStatus):
		return model.NewValidationError([]model.FieldError{{Field: "hackathon", Message: err.Error()}})

	case errors.Is(err, service.ErrInvalidRuleSet),
		errors.Is(err, service.ErrTooManyQuotaRules):
		return model.NewValidationError([]model.FieldError{{Field: "formation", Message: err.Error()}})

	case errors.Is(err, service.ErrParticipantNameRequired),
		errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrInvalidReviewStatus),
		errors.Is(err, service.ErrRoleTooLong),
		errors.Is(err, service.ErrNotesTooLong):
		return model.NewValidationError([]model.FieldError{{Field: "participant", Message: err.Error()}})

	case errors.Is(err, service.ErrInsufficientParticipants):
		return model.NewValidationError([]model.FieldError{{Field: "assignment", Message: err.Error()}})

	case errors.Is(err, service.ErrNoParticipantsSelected),
		errors.Is(err, service.ErrInvalidCertificateKind),
		errors.Is(err, service.ErrParticipantNotApproved):
		return model.NewValidationError([]model.FieldError{{Field: "certificate", Message: err.Error()}})

	// State errors → 422
	case errors.Is(err, service.ErrRegistrationClosed):
		return model.NewValidationError([]model.FieldError{{Field: "state", Message: err.Error()}})

	// Limit/capacity errors → 422
	case errors.Is(err, service.ErrParticipantLimitReached):
		return model.NewValidationError([]model.FieldError{{Field: "limit", Message: err.Error()}})

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("")
	}
}

// MapServiceErrorWithContext converts a service error to a ProblemDetails response
// with additional context about the operation that failed.
func MapServiceErrorWithContext(err error, operation string) *model.ProblemDetails {
	pd := MapServiceError(err)
	if pd != nil && pd.Status == 500 {
		pd.Detail = operation + ": an unexpected error occurred"
	}
	return pd
}
