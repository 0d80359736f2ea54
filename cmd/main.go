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

	createSessionHandler "github.com/m04kA/SMC-SessionService/internal/api/handlers/create_session"
	formatNotesHandler "github.com/m04kA/SMC-SessionService/internal/api/handlers/format_notes"
	getSessionHandler "github.com/m04kA/SMC-SessionService/internal/api/handlers/get_session"
	getUserSessionsHandler "github.com/m04kA/SMC-SessionService/internal/api/handlers/get_user_sessions"
	initItineraryHandler "github.com/m04kA/SMC-SessionService/internal/api/handlers/init_itinerary"
	listModesHandler "github.com/m04kA/SMC-SessionService/internal/api/handlers/list_modes"
	parseNotesHandler "github.com/m04kA/SMC-SessionService/internal/api/handlers/parse_notes"
	previewItineraryHandler "github.com/m04kA/SMC-SessionService/internal/api/handlers/preview_itinerary"
	resetItineraryHandler "github.com/m04kA/SMC-SessionService/internal/api/handlers/reset_itinerary"
	updateSessionItineraryHandler "github.com/m04kA/SMC-SessionService/internal/api/handlers/update_session_itinerary"
	"github.com/m04kA/SMC-SessionService/internal/api/middleware"
	"github.com/m04kA/SMC-SessionService/internal/config"
	sessionRepo "github.com/m04kA/SMC-SessionService/internal/infra/storage/session"
	budgetServiceClient "github.com/m04kA/SMC-SessionService/internal/integrations/budgetservice"
	"github.com/m04kA/SMC-SessionService/internal/itinerary/strategy"
	itineraryService "github.com/m04kA/SMC-SessionService/internal/service/itinerary"
	sessionsService "github.com/m04kA/SMC-SessionService/internal/service/sessions"
	createSessionUC "github.com/m04kA/SMC-SessionService/internal/usecase/create_session"
	loadSessionUC "github.com/m04kA/SMC-SessionService/internal/usecase/load_session"
	"github.com/m04kA/SMC-SessionService/pkg/logger"
	"github.com/m04kA/SMC-SessionService/pkg/metrics"
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

	log.Info("Starting SMC-SessionService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	// nil *metrics.Metrics безопасен: методы Observe* ничего не делают
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
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

	// Инициализируем интеграционных клиентов
	budgetClient := budgetServiceClient.NewClient(
		cfg.BudgetService.URL,
		time.Duration(cfg.BudgetService.Timeout)*time.Second,
		cfg.Itinerary.DefaultRemainingHours,
		log,
	)
	log.Info("Integration clients initialized (BudgetService=%s timeout=%ds)",
		cfg.BudgetService.URL, cfg.BudgetService.Timeout)

	// Инициализируем репозитории
	sessionRepository := sessionRepo.NewRepository(db)

	// Стратегии режимов строятся один раз и только читаются
	factory := strategy.NewFactory(cfg.Itinerary.Suggestions())

	// Инициализируем сервисы
	itinerarySvc := itineraryService.NewService(
		factory,
		metricsCollector,
		cfg.Itinerary.DefaultRemainingHours,
		log,
	)
	sessionsSvc := sessionsService.NewService(
		sessionRepository,
		factory,
		log,
	)

	// Инициализируем use cases
	createSessionUseCase := createSessionUC.NewUseCase(
		sessionRepository,
		factory,
		budgetClient,
		metricsCollector,
		log,
	)
	loadSessionUseCase := loadSessionUC.NewUseCase(
		sessionRepository,
		factory,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	listModes := listModesHandler.NewHandler(itinerarySvc, log)
	initItinerary := initItineraryHandler.NewHandler(itinerarySvc, log)
	previewItinerary := previewItineraryHandler.NewHandler(itinerarySvc, log)
	resetItinerary := resetItineraryHandler.NewHandler(itinerarySvc, log)
	formatNotes := formatNotesHandler.NewHandler(itinerarySvc, log)
	parseNotes := parseNotesHandler.NewHandler(itinerarySvc, log)
	createSession := createSessionHandler.NewHandler(createSessionUseCase, log)
	getSession := getSessionHandler.NewHandler(loadSessionUseCase, log)
	getUserSessions := getUserSessionsHandler.NewHandler(sessionsSvc, log)
	updateSessionItinerary := updateSessionItineraryHandler.NewHandler(sessionsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Режимы бронирования с маршрутом
	api.HandleFunc("/modes", listModes.Handle).Methods(http.MethodGet)

	// Пустой маршрут режима
	api.HandleFunc("/modes/{mode}/itinerary", initItinerary.Handle).Methods(http.MethodGet)

	// Пересчет маршрута после изменения полей формы
	api.HandleFunc("/modes/{mode}/itinerary/preview", previewItinerary.Handle).Methods(http.MethodPost)

	// Очистка маршрута для следующего бронирования
	api.HandleFunc("/modes/{mode}/itinerary/reset", resetItinerary.Handle).Methods(http.MethodPost)

	// Заметки сессии: сериализация и разбор блока маршрута
	api.HandleFunc("/modes/{mode}/notes/format", formatNotes.Handle).Methods(http.MethodPost)
	api.HandleFunc("/modes/{mode}/notes/parse", parseNotes.Handle).Methods(http.MethodPost)
	api.HandleFunc("/notes/parse", parseNotes.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание сессии
	protected.HandleFunc("/sessions", createSession.Handle).Methods(http.MethodPost)

	// Сессия с восстановленным маршрутом (для редактирования)
	protected.HandleFunc("/sessions/{sessionId}", getSession.Handle).Methods(http.MethodGet)

	// Изменение маршрута сессии
	protected.HandleFunc("/sessions/{sessionId}/itinerary", updateSessionItinerary.Handle).Methods(http.MethodPut)

	// История сессий пользователя
	protected.HandleFunc("/users/{userId}/sessions", getUserSessions.Handle).Methods(http.MethodGet)

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
