package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"pay-dashboard-api/internal/config"
	"pay-dashboard-api/internal/gateway"
	"pay-dashboard-api/internal/gateway/health"
	"pay-dashboard-api/internal/handler"
	"pay-dashboard-api/internal/idgen"
	"pay-dashboard-api/internal/logger"
	"pay-dashboard-api/internal/middleware"
	"pay-dashboard-api/internal/notify"
	"pay-dashboard-api/internal/presenter"
	"pay-dashboard-api/internal/service"
	"pay-dashboard-api/internal/utils"
	"pay-dashboard-api/internal/utils/timeutil"
)

func main() {
	// load config env
	config.Init()
	cfg := config.C

	logger.Setup(logger.Options{Dir: cfg.Log.Dir, Level: cfg.Log.Level, Console: cfg.Log.Console})
	infoLog := logger.NewLogger("info")
	errorLog := logger.NewLogger("error")

	// idgen
	if err := idgen.Init(cfg.Snowflake.NodeID); err != nil {
		log.Fatalf("idgen: %v", err)
	}

	loc, err := timeutil.LoadLocation(cfg.Dashboard.Timezone)
	if err != nil {
		log.Fatalf("timezone %q: %v", cfg.Dashboard.Timezone, err)
	}
	clock := presenter.Clock{Location: loc}

	// upstream
	tracker := health.NewTracker(health.NewStrategy(cfg.Upstream.HealthStrategy), cfg.Upstream.HealthThreshold)
	alerts := notify.NewTelegram(notify.TelegramOptions{
		Token:  cfg.Notify.TelegramToken,
		ChatID: cfg.Notify.TelegramChatID,
		Logger: errorLog,
	})
	tracker.SetListener(func(endpoint string, rate float64, degraded bool) {
		errorLog.WithFields(map[string]interface{}{"endpoint": endpoint, "rate": rate, "degraded": degraded}).Warn("upstream health changed")
		alerts.SendAsync(notify.UpstreamAlert(cfg.Upstream.BaseURL, endpoint, rate, degraded, clock.Now()))
	})
	client := gateway.NewClient(gateway.Options{
		BaseURL:         cfg.Upstream.BaseURL,
		Timeout:         time.Duration(cfg.Upstream.TimeoutSec) * time.Second,
		Location:        loc,
		ReversePayments: cfg.Upstream.ReversePayments,
		Health:          tracker,
		Logger:          logger.NewLogger("upstream"),
	})

	svc := service.NewDashboardService(client, service.DashboardOptions{
		Clock:        clock,
		FeeRate:      decimal.NewFromFloat(cfg.Dashboard.FeeRate),
		RecentLimit:  cfg.Dashboard.RecentLimit,
		PreviewLimit: cfg.Dashboard.PreviewLimit,
		Logger:       infoLog,
	})

	// http server
	if err := utils.RegisterValidators(); err != nil {
		log.Fatalf("validators: %v", err)
	}
	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.SetTrustedProxies([]string{"127.0.0.1", "192.168.0.0/16"})
	r.Use(middleware.Trace(), middleware.Recover(errorLog), middleware.RequestLogger(infoLog, errorLog))
	handler.Register(r,
		handler.NewDashboardHandler(svc, clock, cfg.Dashboard.DefaultCurrency),
		handler.NewHealthHandler(tracker, clock),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		infoLog.Infof("listening %s, upstream %s", srv.Addr, cfg.Upstream.BaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	infoLog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		errorLog.WithError(err).Error("shutdown")
	}
}
