package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"programhub/internal/domain"
	"programhub/internal/ports/output"
)

// statusFor maps a domain error kind to an HTTP status code.
func statusFor(err error) int {
	switch domain.KindOf(err) {
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindInvalidState:
		return http.StatusConflict
	case domain.KindCapacityExceeded:
		return http.StatusConflict
	case domain.KindAuthorization:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders a domain error as the JSON error envelope, with the
// message translated for the request's locale. Non-domain errors are
// reported as a generic internal failure; their details stay server-side.
func writeError(c *gin.Context, translator output.T, err error) {
	code := domain.Code(err)
	if code == "" {
		code = "internal_error"
	}
	locale := c.GetHeader("Accept-Language")
	message := translator.T(locale, code, nil)
	c.JSON(statusFor(err), gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}
