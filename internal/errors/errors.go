package errors

import (
	"net/http"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for the subscription/billing core. Collaborator failures
// are converted to one of these at the boundary of each public operation;
// nothing propagates past a service entry point unmarked.
var (
	ErrNotFound                = errors.New("resource not found")
	ErrValidation              = errors.New("validation error")
	ErrUnknownPlan             = errors.New("unknown plan")
	ErrPaymentMethodRequired   = errors.New("payment method required")
	ErrUnprocessableTransition = errors.New("unprocessable subscription transition")
	ErrUsageUnavailable        = errors.New("usage snapshot unavailable")
	ErrCollaboratorUnavailable = errors.New("collaborator unavailable")
	ErrDatabase                = errors.New("database error")
	ErrSystem                  = errors.New("system error")

	// maps errors to http status codes
	statusCodeMap = map[error]int{
		ErrNotFound:                http.StatusNotFound,
		ErrValidation:              http.StatusBadRequest,
		ErrUnknownPlan:             http.StatusBadRequest,
		ErrPaymentMethodRequired:   http.StatusPaymentRequired,
		ErrUnprocessableTransition: http.StatusUnprocessableEntity,
		ErrUsageUnavailable:        http.StatusServiceUnavailable,
		ErrCollaboratorUnavailable: http.StatusBadGateway,
		ErrDatabase:                http.StatusInternalServerError,
		ErrSystem:                  http.StatusInternalServerError,
	}
)

func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsUnknownPlan checks if an error is an unknown plan error
func IsUnknownPlan(err error) bool {
	return errors.Is(err, ErrUnknownPlan)
}

// IsPaymentMethodRequired checks if an error is a payment method required error
func IsPaymentMethodRequired(err error) bool {
	return errors.Is(err, ErrPaymentMethodRequired)
}

// IsUnprocessableTransition checks if an error is an unprocessable transition error
func IsUnprocessableTransition(err error) bool {
	return errors.Is(err, ErrUnprocessableTransition)
}

// IsUsageUnavailable checks if an error is a usage unavailable error
func IsUsageUnavailable(err error) bool {
	return errors.Is(err, ErrUsageUnavailable)
}

// IsCollaboratorUnavailable checks if an error is a collaborator unavailable error
func IsCollaboratorUnavailable(err error) bool {
	return errors.Is(err, ErrCollaboratorUnavailable)
}

func HTTPStatusFromErr(err error) int {
	for e, status := range statusCodeMap {
		if errors.Is(err, e) {
			return status
		}
	}
	return http.StatusInternalServerError
}
