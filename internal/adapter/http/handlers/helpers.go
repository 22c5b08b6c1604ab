package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"taskdesk/pkg/apierrors"
)

// pathID parses the :id segment. On failure it writes the 400 response and
// returns ok=false.
func pathID(c *gin.Context, lang string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang),
		)
		return 0, false
	}
	return id, true
}

// intQuery is permissive like the rest of the list query handling: garbage
// falls back to the default instead of erroring.
func intQuery(c *gin.Context, key string, fallback int) int {
	value := c.Query(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func bindingDetails(err error) []apierrors.FieldError {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	details := make([]apierrors.FieldError, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		details = append(details, apierrors.FieldError{
			Field:   fieldErr.Field(),
			Message: fieldErr.Tag(),
		})
	}
	return details
}
