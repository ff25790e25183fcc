package httpx

import (
	"errors"
	"net/http"

	"github.com/liviaspereira/HomeCleanup-API/internal/shared"
)

// RespondError maps domain errors to HTTP responses using RFC7807.
func RespondError(w http.ResponseWriter, err error) {
	var validationErr *shared.ValidationError
	switch {
	case errors.Is(err, shared.ErrMissingBody):
		Problem(w, http.StatusBadRequest, "Missing Body", "Body is required")
	case errors.As(err, &validationErr):
		writeProblem(w, ProblemDetail{
			Title:  "Validation Failed",
			Status: http.StatusUnprocessableEntity,
			Detail: shared.ErrValidation.Error(),
			Errors: validationErr.Fields,
		})
	case errors.Is(err, shared.ErrValidation):
		Problem(w, http.StatusUnprocessableEntity, "Validation Failed", err.Error())
	case errors.Is(err, shared.ErrNotFound):
		Problem(w, http.StatusNotFound, "Not Found", err.Error())
	default:
		Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}
