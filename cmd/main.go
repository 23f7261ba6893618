package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	clearScheduleHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/clear_schedule"
	filterSlotsHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/filter_slots"
	generateSlotsHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/generate_slots"
	getScheduleConfigHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_schedule_config"
	getSlotStatsHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_slot_stats"
	updateScheduleConfigHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/update_schedule_config"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/config"
	blobRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/blob"
	scheduleStore "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/schedule"
	scheduleService "github.com/m04kA/SMC-ScheduleService/internal/service/schedule"
	filterSlotsUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/filter_slots"
	generateSlotsUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/generate_slots"
	slotStatsUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/slot_stats"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
	"github.com/m04kA/SMC-ScheduleService/pkg/metrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/tzclock"
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

	log.Info("Starting SMC-ScheduleService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	} else {
		metricsCollector = metrics.NewNoop()
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем хранилище блобов (с метриками или без)
	var blobRepository *blobRepo.Repository
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		blobRepository = blobRepo.NewRepository(wrappedDB)
		log.Info("Database metrics collection started")
	} else {
		blobRepository = blobRepo.NewRepository(db)
	}

	// Типизированное хранилище расписания поверх блобов
	store := scheduleStore.NewStore(blobRepository, cfg.Storage.Namespace, log)
	log.Info("Schedule store initialized (namespace=%s)", cfg.Storage.Namespace)

	// Системный источник времени и таймзон
	authority := tzclock.NewSystem()

	// Инициализируем сервисы
	scheduleSvc := scheduleService.NewService(store, authority, log)

	// Инициализируем use cases
	generateSlotsUseCase := generateSlotsUC.NewUseCase(store, authority, metricsCollector, log)
	filterSlotsUseCase := filterSlotsUC.NewUseCase(store, authority, metricsCollector, log)
	slotStatsUseCase := slotStatsUC.NewUseCase(filterSlotsUseCase, authority, log)

	// Инициализируем handlers
	updateScheduleConfig := updateScheduleConfigHandler.NewHandler(scheduleSvc, log)
	getScheduleConfig := getScheduleConfigHandler.NewHandler(scheduleSvc, log)
	generateSlots := generateSlotsHandler.NewHandler(generateSlotsUseCase, log)
	filterSlots := filterSlotsHandler.NewHandler(filterSlotsUseCase, log)
	getSlotStats := getSlotStatsHandler.NewHandler(slotStatsUseCase, log)
	clearSchedule := clearScheduleHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Фильтрация сохранённой коллекции слотов
	api.HandleFunc("/schedule/slots", filterSlots.Handle).Methods(http.MethodGet)

	// Агрегированная статистика по отфильтрованной коллекции
	api.HandleFunc("/schedule/stats", getSlotStats.Handle).Methods(http.MethodGet)

	// Просмотр сохранённой конфигурации слотов
	api.HandleFunc("/schedule/config", getScheduleConfig.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Сохранение конфигурации слотов
	protected.HandleFunc("/schedule/config", updateScheduleConfig.Handle).Methods(http.MethodPut)

	// Генерация коллекции слотов из сохранённой конфигурации
	protected.HandleFunc("/schedule/slots/generate", generateSlots.Handle).Methods(http.MethodPost)

	// Полная очистка расписания
	protected.HandleFunc("/schedule", clearSchedule.Handle).Methods(http.MethodDelete)

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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
