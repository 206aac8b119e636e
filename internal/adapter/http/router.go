package http

import (
	"time"

	"loan-origination-backend/internal/adapter/middleware"
	"loan-origination-backend/internal/domain/user"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Routes bundles everything Register needs to mount the API.
type Routes struct {
	Health    *Handler
	Auth      *AuthHandler
	Loans     *LoanHandler
	Review    *ReviewHandler
	Analytics *AnalyticsHandler

	Tokens   middleware.TokenValidator
	Redis    *redis.Client
	IdempTTL time.Duration
	Log      *zap.Logger
}

func Register(e *echo.Echo, r Routes) {
	e.GET("/health", r.Health.Health)

	e.POST("/auth/register", r.Auth.Register)
	e.POST("/auth/login", r.Auth.Login)

	authn := middleware.Authenticate(r.Tokens)
	idemp := middleware.IdempotencyMiddleware(r.Redis, r.IdempTTL, r.Log)

	applicant := middleware.RequireRoles(user.RoleApplicant)
	staff := middleware.RequireRoles(user.RoleAdmin, user.RoleLoanOfficer, user.RoleRiskAnalyst)
	officers := middleware.RequireRoles(user.RoleLoanOfficer, user.RoleAdmin)
	analysts := middleware.RequireRoles(user.RoleAdmin, user.RoleRiskAnalyst)

	loans := e.Group("/loans", authn)
	loans.POST("/apply", r.Loans.Apply, applicant, idemp)
	loans.GET("/my", r.Loans.ListMine, applicant)
	loans.GET("", r.Loans.ListAll, staff)
	loans.PUT("/:loan_id/status", r.Review.UpdateStatus, officers)

	officer := e.Group("/officer", authn, officers)
	officer.GET("/loans", r.Review.Queue)
	officer.GET("/loan/:loan_id", r.Review.Detail)
	officer.POST("/loan/:loan_id/review", r.Review.StartReview, idemp)
	officer.POST("/loan/:loan_id/approve", r.Review.Approve, idemp)
	officer.POST("/loan/:loan_id/reject", r.Review.Reject, idemp)

	e.GET("/analytics", r.Analytics.Dashboard, authn, analysts)
}
