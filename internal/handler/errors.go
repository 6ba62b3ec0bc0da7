package handler

import (
	"errors"
	"log"
	"net/http"

	"healthcare-backend/internal/apperr"
	"healthcare-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps an error kind to its HTTP status. Validation failures and
// scope violations go back to the caller as 400/403/404; anything else is an
// infrastructure fault and reported as 500, never 400.
func respondError(c *gin.Context, err error) {
	if verr, ok := apperr.AsValidation(err); ok {
		utils.FieldErrorResponse(c, verr.Field, verr.Message)
		return
	}

	switch {
	case errors.Is(err, apperr.ErrNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, apperr.ErrForbidden):
		utils.ErrorResponse(c, http.StatusForbidden, err.Error())
	default:
		log.Printf("internal error: %v", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
	}
}
