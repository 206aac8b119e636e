package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	httpadp "loan-origination-backend/internal/adapter/http"
	"loan-origination-backend/internal/adapter/middleware"
	repo "loan-origination-backend/internal/adapter/repository/mysql"
	"loan-origination-backend/internal/config"
	"loan-origination-backend/internal/infrastructure/cache"
	"loan-origination-backend/internal/infrastructure/db"
	"loan-origination-backend/internal/infrastructure/logger"
	"loan-origination-backend/internal/infrastructure/metrics"
	"loan-origination-backend/internal/infrastructure/token"
	"loan-origination-backend/internal/usecase/analytics"
	"loan-origination-backend/internal/usecase/auth"
	"loan-origination-backend/internal/usecase/loan"
	"loan-origination-backend/internal/usecase/review"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel, "loan-origination-api")
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid config", zap.Error(err))
	}

	gdb, err := db.OpenGorm(cfg.DBDriver, cfg.DSN(), db.LogLevel(cfg.DBLogLevel))
	if err != nil {
		log.Fatal("database unavailable", zap.String("driver", cfg.DBDriver), zap.Error(err))
	}
	if cfg.DBAutoMigrate {
		if err := db.Migrate(gdb); err != nil {
			log.Fatal("migration failed", zap.Error(err))
		}
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		log.Fatal("database handle", zap.Error(err))
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal("redis unavailable", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}

	m := metrics.New(prometheus.DefaultRegisterer)
	tokens := token.NewService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL())

	loans := repo.NewLoanRepository(gdb)
	profiles := repo.NewProfileRepository(gdb)
	audits := repo.NewAuditRepository(gdb)
	tx := repo.NewGormUoW(gdb)

	loanUC := loan.NewUsecase(loans, tx, cfg.AnnualRate, log).WithRecorder(m)
	reviewUC := review.NewUsecase(loans, profiles, audits, tx, log).WithRecorder(m)
	analyticsUC := analytics.NewUsecase(repo.NewAnalyticsRepository(gdb), cache.NewJSONStore(rdb, "los:"), cfg.AnalyticsCacheTTL(), log)
	authUC := auth.NewUsecase(repo.NewUserRepository(gdb), tokens, cfg.BcryptCost, log)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Recover(), middleware.RequestLog(log), middleware.Metrics(m))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	httpadp.Register(e, httpadp.Routes{
		Health: httpadp.NewHandler(
			httpadp.HealthCheck{Name: "db", Check: sqlDB.PingContext},
			httpadp.HealthCheck{Name: "redis", Check: func(ctx context.Context) error { return rdb.Ping(ctx).Err() }},
		),
		Auth:      httpadp.NewAuthHandler(authUC, log),
		Loans:     httpadp.NewLoanHandler(loanUC, log),
		Review:    httpadp.NewReviewHandler(reviewUC, log),
		Analytics: httpadp.NewAnalyticsHandler(analyticsUC, log),
		Tokens:    tokens,
		Redis:     rdb,
		IdempTTL:  cfg.IdempotencyTTL(),
		Log:       log,
	})

	addr := ":" + cfg.AppPort
	go func() {
		log.Info("listening", zap.String("addr", addr), zap.Float64("annual_rate", cfg.AnnualRate))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server stopped", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdown); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
	_ = rdb.Close()
	_ = sqlDB.Close()
}
