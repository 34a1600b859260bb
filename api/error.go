package api

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/katatrina/eapi-connector/internal/csob"
)

type FailedValidationResponse struct {
	Message         string            `json:"message"`
	FieldViolations []*FieldViolation `json:"field_violations"`
}

type FieldViolation struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

type GatewayErrorResponse struct {
	Error      string `json:"error"`
	ResultCode int    `json:"result_code"`
}

func fieldViolation(field string, err error) *FieldViolation {
	return &FieldViolation{
		Field:       field,
		Description: err.Error(),
	}
}

func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}

func failedValidationError(violations []*FieldViolation) *FailedValidationResponse {
	return &FailedValidationResponse{
		Message:         "Invalid request parameters",
		FieldViolations: violations,
	}
}

// handleGatewayError writes the response for a failed gateway call.
func handleGatewayError(c *gin.Context, err error) {
	_ = c.Error(err)

	var validationErrs validation.Errors
	var resultErr *csob.ResultError

	switch {
	case errors.As(err, &validationErrs):
		violations := make([]*FieldViolation, 0, len(validationErrs))
		for field, fieldErr := range validationErrs {
			violations = append(violations, fieldViolation(field, fieldErr))
		}
		slices.SortFunc(violations, func(a, b *FieldViolation) int {
			return strings.Compare(a.Field, b.Field)
		})
		c.JSON(http.StatusBadRequest, failedValidationError(violations))
	case csob.IsResultCode(err, csob.ResultPaymentNotFound):
		c.JSON(http.StatusNotFound, GatewayErrorResponse{Error: err.Error(), ResultCode: csob.ResultPaymentNotFound})
	case errors.As(err, &resultErr):
		c.JSON(http.StatusUnprocessableEntity, GatewayErrorResponse{Error: err.Error(), ResultCode: resultErr.Code})
	default:
		c.JSON(http.StatusBadGateway, errorResponse(err))
	}
}
