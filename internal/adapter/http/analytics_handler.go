package http

import (
	"net/http"

	"loan-origination-backend/internal/usecase/analytics"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AnalyticsHandler struct {
	uc  *analytics.Usecase
	log *zap.Logger
}

func NewAnalyticsHandler(uc *analytics.Usecase, log *zap.Logger) *AnalyticsHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &AnalyticsHandler{uc: uc, log: log}
}

func (h *AnalyticsHandler) Dashboard(c echo.Context) error {
	dto, err := h.uc.Dashboard(c.Request().Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}
