package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/SMC-BookingFlowService/internal/api/handlers/cancel_booking"
	createSessionHandler "github.com/m04kA/SMC-BookingFlowService/internal/api/handlers/create_session"
	getSessionHandler "github.com/m04kA/SMC-BookingFlowService/internal/api/handlers/get_session"
	submitBookingHandler "github.com/m04kA/SMC-BookingFlowService/internal/api/handlers/submit_booking"
	updateSelectionHandler "github.com/m04kA/SMC-BookingFlowService/internal/api/handlers/update_selection"
	"github.com/m04kA/SMC-BookingFlowService/internal/api/middleware"
	"github.com/m04kA/SMC-BookingFlowService/internal/config"
	"github.com/m04kA/SMC-BookingFlowService/internal/infra/sessions"
	studioServiceClient "github.com/m04kA/SMC-BookingFlowService/internal/integrations/studioservice"
	"github.com/m04kA/SMC-BookingFlowService/internal/service/cascade"
	flowService "github.com/m04kA/SMC-BookingFlowService/internal/service/flow"
	cancelBookingUC "github.com/m04kA/SMC-BookingFlowService/internal/usecase/cancel_booking"
	submitBookingUC "github.com/m04kA/SMC-BookingFlowService/internal/usecase/submit_booking"
	"github.com/m04kA/SMC-BookingFlowService/pkg/logger"
	"github.com/m04kA/SMC-BookingFlowService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-BookingFlowService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Интерфейсные обертки метрик: при выключенных метриках везде передается nil
	var (
		clientMetrics  studioServiceClient.MetricsRecorder
		cascadeMetrics cascade.MetricsRecorder
		sessionMetrics sessions.MetricsRecorder
		submitMetrics  submitBookingUC.MetricsRecorder
	)
	if metricsCollector != nil {
		clientMetrics = metricsCollector
		cascadeMetrics = metricsCollector
		sessionMetrics = metricsCollector
		submitMetrics = metricsCollector
	}

	// Инициализируем клиента студийного сервиса
	studioClient := studioServiceClient.NewClient(
		cfg.StudioService.URL,
		time.Duration(cfg.StudioService.Timeout)*time.Second,
		log,
		clientMetrics,
	)
	log.Info("Studio service client initialized (url=%s, timeout=%ds)",
		cfg.StudioService.URL, cfg.StudioService.Timeout)

	// Инициализируем хранилище сессий и фоновую уборку
	sessionStore := sessions.NewStore(
		time.Duration(cfg.Sessions.TTLMinutes)*time.Minute,
		log,
		sessionMetrics,
	)

	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	defer stopJanitor()
	go sessionStore.RunJanitor(janitorCtx, time.Duration(cfg.Sessions.CleanupIntervalMinutes)*time.Minute)
	log.Info("Session store initialized (ttl=%dm, cleanup every %dm)",
		cfg.Sessions.TTLMinutes, cfg.Sessions.CleanupIntervalMinutes)

	// Инициализируем use cases
	submitBookingUseCase := submitBookingUC.NewUseCase(studioClient, log, submitMetrics)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(studioClient, log)

	// Инициализируем сервис сессий подбора
	flowSvc := flowService.NewService(studioClient, sessionStore, submitBookingUseCase, log, cascadeMetrics)

	// Инициализируем handlers
	createSession := createSessionHandler.NewHandler(flowSvc, log)
	getSession := getSessionHandler.NewHandler(flowSvc, log)
	updateSelection := updateSelectionHandler.NewHandler(flowSvc, log)
	submitBooking := submitBookingHandler.NewHandler(flowSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Пользователь извлекается из заголовка, анонимный доступ разрешен:
	// гостевое бронирование - поддерживаемый сценарий
	api.Use(middleware.Identity(log))

	// --- Сессии подбора ---
	api.HandleFunc("/sessions", createSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}", getSession.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}", getSession.HandleClose).Methods(http.MethodDelete)
	api.HandleFunc("/sessions/{id}/selection", updateSelection.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/sessions/{id}/submit", submitBooking.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	stopJanitor()

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
