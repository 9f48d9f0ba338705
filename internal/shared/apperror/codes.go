package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput = "INVALID_INPUT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeNotFound     = "NOT_FOUND"
	CodeInvalidRange = "INVALID_RANGE"

	// Server errors (5xx)
	CodeInternalError = "INTERNAL_ERROR"
)
