package apperror

import (
	"errors"
	"net/http"
)

// HTTPError is the boundary-facing view of a failure.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details string
}

// ToHTTP translates any error into an HTTPError. Typed AppErrors keep their
// status and message; the wrapped cause becomes the details. Anything else
// maps to 500 with the original message preserved as details.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		details := ""
		if appErr.Err != nil {
			details = appErr.Err.Error()
		}
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: details,
		}
	}

	return HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: "An unexpected error occurred",
		Details: err.Error(),
	}
}
