package http

import (
	"errors"
	"net/http"

	"deliverus/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps the application error taxonomy to HTTP status codes:
// missing objects 404, access denials 403, lifecycle conflicts 409,
// validation failures and malformed values 422, everything else 500.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrForbidden):
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrConflict):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValidationFailed),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{
			Code:   http.StatusUnprocessableEntity,
			Errors: fieldErrors(err),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "internal server error",
		})
	}
}

// fieldErrors flattens an error (possibly a joined one) into per-field
// entries for a 422 body.
func fieldErrors(err error) []FieldError {
	out := make([]FieldError, 0, 1)
	for _, single := range flatten(err) {
		var validationErr *errs.ValidationError
		if errors.As(single, &validationErr) {
			out = append(out, FieldError{
				Field:   validationErr.Field,
				Message: validationErr.Message,
			})
			continue
		}

		out = append(out, FieldError{Message: single.Error()})
	}
	return out
}

func flatten(err error) []error {
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []error{err}
	}

	var out []error
	for _, single := range joined.Unwrap() {
		out = append(out, flatten(single)...)
	}
	return out
}
