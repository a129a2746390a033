package handlers

import (
	"errors"
	"net/http"

	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase"
	"oficina_mecanica/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
	errInvalidQuery   = pkg.NewDomainErrorSimple("INVALID_QUERY", "Invalid query parameters", http.StatusBadRequest)
)

var httpLogger = log.WithField("layer", "http")

// errorCodes gives known domain errors a stable code. Order matters only for
// readability; each entry is a distinct sentinel.
var errorCodes = []struct {
	target error
	code   string
}{
	{entities.ErrWorkOrderNotFound, "WORK_ORDER_NOT_FOUND"},
	{entities.ErrCustomerNotFound, "CUSTOMER_NOT_FOUND"},
	{entities.ErrMechanicNotFound, "MECHANIC_NOT_FOUND"},
	{entities.ErrServiceNotFound, "SERVICE_NOT_FOUND"},
	{entities.ErrPartNotFound, "PART_NOT_FOUND"},
	{entities.ErrWorkOrderConcluded, "WORK_ORDER_CONCLUDED"},
	{entities.ErrServiceAlreadyAttached, "SERVICE_ALREADY_ATTACHED"},
	{entities.ErrServiceNotAttached, "SERVICE_NOT_ATTACHED"},
	{entities.ErrPartNotAttached, "PART_NOT_ATTACHED"},
	{entities.ErrInvalidPartQuantity, "INVALID_PART_QUANTITY"},
	{entities.ErrCustomerInUse, "CUSTOMER_IN_USE"},
	{entities.ErrMechanicInUse, "MECHANIC_IN_USE"},
	{entities.ErrServiceInUse, "SERVICE_IN_USE"},
	{entities.ErrPartInUse, "PART_IN_USE"},
}

// mapError translates the error taxonomy to HTTP: invalid input 400, missing
// record 404, rejected by current state 409, anything else 500.
func mapError(err error) *pkg.AppError {
	var status int
	switch {
	case usecase.IsValidationError(err):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case entities.IsNotFound(err):
		status = http.StatusNotFound
	case entities.IsBusinessRule(err):
		status = http.StatusConflict
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}

	for _, e := range errorCodes {
		if errors.Is(err, e.target) {
			return pkg.NewDomainErrorSimple(e.code, err.Error(), status)
		}
	}
	if status == http.StatusNotFound {
		return pkg.NewDomainErrorSimple("NOT_FOUND", err.Error(), status)
	}
	return pkg.NewDomainErrorSimple("BUSINESS_RULE_VIOLATION", err.Error(), status)
}

func respondError(c *gin.Context, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		httpLogger.WithError(err).WithFields(log.Fields{
			"method": c.Request.Method,
			"path":   c.FullPath(),
		}).Error("request failed")
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func respondInvalid(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
