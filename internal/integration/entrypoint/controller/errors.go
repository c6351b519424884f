// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/finance-tracker/dashboard/internal/domain/error"
	"github.com/finance-tracker/dashboard/internal/integration/entrypoint/dto"
)

// handleRecordError handles record and dashboard errors and returns appropriate HTTP responses.
func handleRecordError(ctx *gin.Context, err error) {
	var recErr *domainerror.RecordError
	if errors.As(err, &recErr) {
		ctx.JSON(getStatusCodeForRecordError(recErr.Code), dto.ErrorResponse{
			Error: recErr.Message,
			Code:  string(recErr.Code),
		})
		return
	}

	var dshErr *domainerror.DashboardError
	if errors.As(err, &dshErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: dshErr.Message,
			Code:  string(dshErr.Code),
		})
		return
	}

	slog.Error("Request failed", "path", ctx.FullPath(), "error", err)

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForRecordError maps record error codes to HTTP status codes.
func getStatusCodeForRecordError(code domainerror.RecordErrorCode) int {
	switch code {
	case domainerror.ErrCodeRecordNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNameRequired,
		domainerror.ErrCodeDescriptionRequired,
		domainerror.ErrCodeCurrencyRequired,
		domainerror.ErrCodeAccountIDRequired,
		domainerror.ErrCodeInvalidAccountType,
		domainerror.ErrCodeInvalidInvestmentType,
		domainerror.ErrCodeInvalidTxnType,
		domainerror.ErrCodeInvalidCategoryType,
		domainerror.ErrCodeNegativeAmount,
		domainerror.ErrCodeInvalidDayOfMonth,
		domainerror.ErrCodeInvalidLastFourDigits,
		domainerror.ErrCodeInvalidColorFormat,
		domainerror.ErrCodeMissingDate,
		domainerror.ErrCodeMissingFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// invalidBody writes the response for a request body that could not be decoded.
func invalidBody(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "Invalid request body",
		Code:    string(domainerror.ErrCodeMissingFields),
		Details: err.Error(),
	})
}
