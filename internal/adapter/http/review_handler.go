package http

import (
	"net/http"
	"strings"

	"loan-origination-backend/internal/adapter/middleware"
	domain "loan-origination-backend/internal/domain/loan"
	"loan-origination-backend/internal/usecase/review"
	"loan-origination-backend/pkg/id"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	uc  *review.Usecase
	log *zap.Logger
}

func NewReviewHandler(uc *review.Usecase, log *zap.Logger) *ReviewHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ReviewHandler{uc: uc, log: log}
}

type rejectReq struct {
	Reason string `json:"reason" validate:"max=500"`
}

type updateStatusReq struct {
	Status string `json:"status" validate:"required"`
	Reason string `json:"reason" validate:"max=500"`
}

func loanIDParam(c echo.Context) (string, bool) {
	v := c.Param("loan_id")
	return v, id.IsID32(v)
}

func badLoanID(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "loan_id must be 32-char lowercase hex"})
}

func (h *ReviewHandler) Queue(c echo.Context) error {
	statuses, err := parseStatuses(c.QueryParams()["status"])
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	out, err := h.uc.Queue(c.Request().Context(), statuses...)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"loans": out})
}

func (h *ReviewHandler) Detail(c echo.Context) error {
	loanID, ok := loanIDParam(c)
	if !ok {
		return badLoanID(c)
	}
	dto, err := h.uc.Detail(c.Request().Context(), loanID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ReviewHandler) StartReview(c echo.Context) error {
	return h.transition(c, domain.StatusUnderReview, "")
}

func (h *ReviewHandler) Approve(c echo.Context) error {
	return h.transition(c, domain.StatusApproved, "")
}

// Reject takes an optional {"reason": "..."} body.
func (h *ReviewHandler) Reject(c echo.Context) error {
	var req rejectReq
	if c.Request().ContentLength != 0 {
		if ok, err := bindAndValidate(c, &req); !ok {
			return err
		}
	}
	return h.transition(c, domain.StatusRejected, strings.TrimSpace(req.Reason))
}

// UpdateStatus serves PUT /loans/:loan_id/status. It goes through the same
// rule-checked transition as the officer endpoints.
func (h *ReviewHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	target, ok := domain.ParseStatus(strings.ToUpper(strings.TrimSpace(req.Status)))
	if !ok {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: []FieldError{{Field: "status", Message: "unknown status " + req.Status}},
		})
	}
	reason := strings.TrimSpace(req.Reason)
	if reason == "" && target != domain.StatusRejected {
		reason = "status set to " + string(target)
	}
	return h.transition(c, target, reason)
}

func (h *ReviewHandler) transition(c echo.Context, target domain.Status, reason string) error {
	loanID, ok := loanIDParam(c)
	if !ok {
		return badLoanID(c)
	}
	actor, _ := middleware.ActorFrom(c)

	dto, err := h.uc.Transition(c.Request().Context(), review.TransitionInput{
		LoanID:  loanID,
		ActorID: actor.UserID,
		Target:  target,
		Reason:  reason,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}
