package handler

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.uber.org/zap"

	"github.com/nikol804/dotapost/internal/domain"
	"github.com/nikol804/dotapost/internal/logger"
	"github.com/nikol804/dotapost/internal/middleware"
	"github.com/nikol804/dotapost/internal/service"
	"github.com/nikol804/dotapost/internal/validator"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error  string                 `json:"error"`
	Fields []validator.FieldError `json:"fields,omitempty"`
}

const (
	msgValidation  = "validation failed"
	msgBadRequest  = "invalid request body"
	msgInternal    = "internal server error"
	msgNotFound    = "resource not found"
	msgRateLimited = "you are commenting too fast, try again in a few seconds"
)

// writeError maps a service error to its HTTP response.
func writeError(c *gin.Context, err error) {
	var (
		verrs   validation.Errors
		limited *service.RateLimitedError
	)

	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:  msgValidation,
			Fields: validator.ConvertValidationErrors(verrs),
		})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: msgNotFound})
	case errors.Is(err, domain.ErrUnauthenticated):
		c.Header("WWW-Authenticate", `Bearer realm="dotapost"`)
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: domain.ErrUnauthenticated.Error()})
	case errors.As(err, &limited):
		seconds := int(math.Ceil(limited.RetryAfter.Seconds()))
		if seconds < 1 {
			seconds = 1
		}
		c.Header("Retry-After", strconv.Itoa(seconds))
		c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: msgRateLimited})
	default:
		_ = c.Error(err)
		logger.WithRequestID(middleware.GetRequestID(c)).Error("Request failed",
			zap.String("route", c.FullPath()),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgInternal})
	}
}

// badRequest answers a body or query that could not be bound.
func badRequest(c *gin.Context, err error) {
	logger.WithRequestID(middleware.GetRequestID(c)).Debug("Rejected request input", zap.Error(err))
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgBadRequest})
}
