package api

import (
	"errors"
	"net/http"

	"techfest-backend/internal/handler/httperr"
	"techfest-backend/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortWithDomainError maps usecase sentinel errors onto the stable HTTP
// status + code envelope the frontend relies on.
func abortWithDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrUnauthorized):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Unauthorized", "Authentication required")
	case errors.Is(err, errs.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Forbidden", "You do not have access to this resource")
	case errors.Is(err, errs.ErrOrderNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not Found", "Order not found")
	case errors.Is(err, errs.ErrRegistrationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not Found", "Registration not found")
	case errors.Is(err, errs.ErrWorkshopNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not Found", "Workshop not found")
	case errors.Is(err, errs.ErrEventNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not Found", "Event not found")
	case errors.Is(err, errs.ErrPassNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not Found", "Pass not found")
	case errors.Is(err, errs.ErrDuplicateRegistration):
		httperr.AbortWithError(c, http.StatusConflict, err, "Conflict", "A registration with this email or WhatsApp number already exists")
	case errors.Is(err, errs.ErrVerificationFailed):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Verification Failed", "Payment verification failed")
	case errors.Is(err, errs.ErrGatewayUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Service Unavailable", "Payment service is not configured")
	case errors.Is(err, errs.ErrGatewayRejected):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Bad Gateway", "Payment provider rejected the request")
	case errors.Is(err, errs.ErrInvalidInput):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Bad Request", err.Error())
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal Server Error", "Internal server error")
	}
}

func abortInvalidBody(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Bad Request", "Invalid request format")
}

func abortMissingCaller(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthorized, "Unauthorized", "Authentication required")
}
