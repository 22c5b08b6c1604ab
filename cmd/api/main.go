package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	httpadapter "taskdesk/internal/adapter/http"
	"taskdesk/internal/adapter/http/handlers"
	httpmiddleware "taskdesk/internal/adapter/http/middleware"
	"taskdesk/internal/adapter/memory"
	appservice "taskdesk/internal/app/service"
	"taskdesk/internal/config"
	"taskdesk/pkg/translator"
)

const appVersion = "1.0.0"

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	cfg := config.LoadConfig()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	userRepository := memory.NewUserRepository()
	taskRepository := memory.NewTaskRepository()
	memory.Seed(userRepository, taskRepository)

	userService := appservice.NewUserService(userRepository)
	taskService := appservice.NewTaskService(taskRepository)

	metrics := httpmiddleware.NewRequestMetrics(prometheus.DefaultRegisterer)
	healthHandler := handlers.NewHealthHandler(metrics, appVersion, cfg.Environment)
	userHandler := handlers.NewUserHandler(userService)
	taskHandler := handlers.NewTaskHandler(taskService)

	r := gin.New()
	r.Use(
		gin.Recovery(),
		httpmiddleware.RequestIDMiddleware(),
		httpmiddleware.GinZapMiddleware(logger),
		metrics.Handler(),
		httpmiddleware.CORSMiddleware(cfg.CORSAllowedOrigins),
		httpmiddleware.RateLimitMiddleware(httpmiddleware.RateLimitConfig{
			RPS:   cfg.RateLimitRPS,
			Burst: cfg.RateLimitBurst,
		}),
	)

	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	httpadapter.RegisterRoutes(r, healthHandler, taskHandler, userHandler)

	addr := ":" + cfg.AppPort
	logger.Info("starting server", zap.String("addr", addr), zap.String("environment", cfg.Environment))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
