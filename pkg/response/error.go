package response

import (
	"errors"
	"net/http"

	"blog_api/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// HandleError maps a service error to an HTTP status and business code.
// notFoundCode lets each module keep its own 404 business code.
func HandleError(c *gin.Context, err error, notFoundCode int) {
	switch {
	case errors.Is(err, apperr.ErrInvalid):
		Error(c, http.StatusBadRequest, ErrInvalidParam, err.Error())
	case errors.Is(err, apperr.ErrUnauthorized):
		Error(c, http.StatusUnauthorized, ErrAuthFailed, err.Error())
	case errors.Is(err, apperr.ErrForbidden):
		Error(c, http.StatusForbidden, ErrNoPermission, err.Error())
	case errors.Is(err, apperr.ErrNotFound):
		Error(c, http.StatusNotFound, notFoundCode, err.Error())
	case errors.Is(err, apperr.ErrConflict):
		Error(c, http.StatusConflict, ErrUserExists, err.Error())
	default:
		Error(c, http.StatusInternalServerError, ErrServerInternal, "internal server error")
	}
}
