package http

import (
	"errors"
	"net/http"

	"loan-origination-backend/internal/adapter/middleware"
	"loan-origination-backend/internal/domain/loan"
	"loan-origination-backend/internal/domain/user"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, loan.ErrNotFound), errors.Is(err, user.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, loan.ErrActiveLoanExists), errors.Is(err, loan.ErrInvalidStateTransition),
		errors.Is(err, user.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, loan.ErrInvalidInput), errors.Is(err, loan.ErrAmountExceedsIncomeLimit),
		errors.Is(err, loan.ErrEmiExceedsIncomeLimit):
		return http.StatusBadRequest
	case errors.Is(err, loan.ErrProfileIncomplete), errors.Is(err, loan.ErrCreditScoreTooLow),
		errors.Is(err, loan.ErrEmiTooHigh):
		return http.StatusUnprocessableEntity
	case errors.Is(err, user.ErrInvalidCredentials):
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

// writeError maps domain errors onto status codes. Anything unrecognised is logged
// and answered with a generic 500 so storage details never reach the client.
func writeError(c echo.Context, log *zap.Logger, err error) error {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		middleware.LoggerFrom(c, log).Error("request failed", zap.String("route", c.Path()), zap.Error(err))
		return c.JSON(code, ErrorResponse{Error: "internal server error"})
	}
	return c.JSON(code, ErrorResponse{Error: err.Error()})
}

// bindAndValidate writes the 400/422 response itself; callers return when ok is false.
func bindAndValidate(c echo.Context, req any) (ok bool, err error) {
	if err := c.Bind(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(req); err != nil {
		return false, c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	return true, nil
}
