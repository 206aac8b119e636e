package http

import (
	"net/http"
	"strings"

	"loan-origination-backend/internal/adapter/middleware"
	domain "loan-origination-backend/internal/domain/loan"
	"loan-origination-backend/internal/usecase/loan"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type LoanHandler struct {
	uc  *loan.Usecase
	log *zap.Logger
}

func NewLoanHandler(uc *loan.Usecase, log *zap.Logger) *LoanHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &LoanHandler{uc: uc, log: log}
}

type applyLoanReq struct {
	Amount          float64 `json:"amount"           validate:"required,gt=0,dec2"`
	TenureMonths    int     `json:"tenure_months"    validate:"required,gt=0"`
	EmploymentType  string  `json:"employment_type"  validate:"required,employment"`
	AnnualIncome    float64 `json:"annual_income"    validate:"required,gt=0,dec2"`
	MonthlyExpenses float64 `json:"monthly_expenses" validate:"gte=0,dec2"`
}

// Apply files a loan for the authenticated applicant. Auto-rejected applications
// are still created, so both outcomes answer 201 with the stored status.
func (h *LoanHandler) Apply(c echo.Context) error {
	actor, _ := middleware.ActorFrom(c)

	var req applyLoanReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	dto, err := h.uc.Apply(c.Request().Context(), loan.ApplyInput{
		ApplicantID:     actor.UserID,
		Amount:          req.Amount,
		TenureMonths:    req.TenureMonths,
		EmploymentType:  req.EmploymentType,
		AnnualIncome:    req.AnnualIncome,
		MonthlyExpenses: req.MonthlyExpenses,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) ListMine(c echo.Context) error {
	actor, _ := middleware.ActorFrom(c)
	out, err := h.uc.ListMine(c.Request().Context(), actor.UserID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"loans": out})
}

// ListAll accepts ?status=APPLIED,UNDER_REVIEW (comma separated or repeated).
func (h *LoanHandler) ListAll(c echo.Context) error {
	statuses, err := parseStatuses(c.QueryParams()["status"])
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	out, err := h.uc.ListAll(c.Request().Context(), statuses...)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"loans": out})
}

type unknownStatusError string

func (e unknownStatusError) Error() string { return "unknown status " + string(e) }

func parseStatuses(raw []string) ([]domain.Status, error) {
	var out []domain.Status
	for _, r := range raw {
		for _, part := range strings.Split(r, ",") {
			part = strings.ToUpper(strings.TrimSpace(part))
			if part == "" {
				continue
			}
			st, ok := domain.ParseStatus(part)
			if !ok {
				return nil, unknownStatusError(part)
			}
			out = append(out, st)
		}
	}
	return out, nil
}
