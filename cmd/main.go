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

	callEventsHandler "github.com/m04kA/SMC-VoiceScheduler/internal/api/handlers/call_events"
	chatCompletionsHandler "github.com/m04kA/SMC-VoiceScheduler/internal/api/handlers/chat_completions"
	executeToolHandler "github.com/m04kA/SMC-VoiceScheduler/internal/api/handlers/execute_tool"
	listModelsHandler "github.com/m04kA/SMC-VoiceScheduler/internal/api/handlers/list_models"
	"github.com/m04kA/SMC-VoiceScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-VoiceScheduler/internal/config"
	"github.com/m04kA/SMC-VoiceScheduler/internal/domain"
	"github.com/m04kA/SMC-VoiceScheduler/internal/infra/memcalendar"
	appointmentRepo "github.com/m04kA/SMC-VoiceScheduler/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-VoiceScheduler/internal/integrations/calendarapi"
	"github.com/m04kA/SMC-VoiceScheduler/internal/integrations/openaiclient"
	personaService "github.com/m04kA/SMC-VoiceScheduler/internal/service/persona"
	toolsService "github.com/m04kA/SMC-VoiceScheduler/internal/service/tools"
	bookAppointmentUC "github.com/m04kA/SMC-VoiceScheduler/internal/usecase/book_appointment"
	cancelAppointmentUC "github.com/m04kA/SMC-VoiceScheduler/internal/usecase/cancel_appointment"
	findAvailableSlotsUC "github.com/m04kA/SMC-VoiceScheduler/internal/usecase/find_available_slots"
	rescheduleAppointmentUC "github.com/m04kA/SMC-VoiceScheduler/internal/usecase/reschedule_appointment"
	"github.com/m04kA/SMC-VoiceScheduler/pkg/logger"
	"github.com/m04kA/SMC-VoiceScheduler/pkg/metrics"
	"github.com/m04kA/SMC-VoiceScheduler/pkg/txmanager"
)

// bookingLedger объединяет операции booking ledger, нужные всем use cases.
// Реализуется всеми тремя бэкендами: postgres, calendar, memory
type bookingLedger interface {
	ListBookings(ctx context.Context, timeMin, timeMax time.Time) ([]*domain.Appointment, error)
	CreateBooking(ctx context.Context, appt *domain.Appointment) (string, error)
	FindBookingsByPhone(ctx context.Context, phone string, horizonDays int) ([]*domain.Appointment, error)
	DeleteBooking(ctx context.Context, eventID string) error
	UpdateBooking(ctx context.Context, eventID string, newStart time.Time, newDurationMinutes int) error
}

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

	log.Info("Starting SMC-VoiceScheduler...")
	log.Info("Configuration loaded from config.toml")

	location, err := cfg.Location()
	if err != nil {
		log.Fatal("Invalid business timezone: %v", err)
	}
	hours, err := cfg.Hours()
	if err != nil {
		log.Fatal("Invalid business hours: %v", err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Выбираем бэкенд booking ledger
	var ledgerBackend bookingLedger

	switch cfg.Ledger.Backend {
	case "postgres":
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		txMgr := txmanager.NewTransactionManager(db)
		ledgerBackend = appointmentRepo.NewRepository(db, txMgr)

	case "calendar":
		ledgerBackend = calendarapi.NewClient(
			cfg.Calendar.BaseURL,
			cfg.Calendar.CalendarID,
			cfg.Calendar.APIToken,
			cfg.Business.Timezone,
			time.Duration(cfg.Calendar.Timeout)*time.Second,
			log,
		)
		log.Info("Calendar ledger initialized (base_url=%s, calendar_id=%s)",
			cfg.Calendar.BaseURL, cfg.Calendar.CalendarID)

	case "memory":
		ledgerBackend = memcalendar.New()
		log.Warn("Using in-memory ledger: bookings are lost on restart")
	}

	log.Info("Booking ledger backend: %s", cfg.Ledger.Backend)

	// Клиент LLM
	openaiClient := openaiclient.NewClient(
		cfg.OpenAI.BaseURL,
		cfg.OpenAI.APIKey,
		cfg.OpenAI.Model,
		time.Duration(cfg.OpenAI.Timeout)*time.Second,
		log,
	)
	log.Info("LLM client initialized (model=%s, timeout=%ds)", cfg.OpenAI.Model, cfg.OpenAI.Timeout)

	// Инициализируем use cases
	findSlotsUseCase := findAvailableSlotsUC.NewUseCase(
		ledgerBackend,
		hours,
		location,
		cfg.Business.SlotDurationMinutes,
		cfg.Business.BufferMinutes,
		log,
	)
	bookUseCase := bookAppointmentUC.NewUseCase(
		ledgerBackend,
		hours,
		location,
		cfg.Business.SlotDurationMinutes,
		log,
	)
	cancelUseCase := cancelAppointmentUC.NewUseCase(
		ledgerBackend,
		cfg.Business.HorizonDays,
		log,
	)
	rescheduleUseCase := rescheduleAppointmentUC.NewUseCase(
		ledgerBackend,
		hours,
		location,
		cfg.Business.HorizonDays,
		log,
	)

	// Инициализируем сервисы
	toolsSvc := toolsService.NewService(
		findSlotsUseCase,
		bookUseCase,
		cancelUseCase,
		rescheduleUseCase,
		location,
		metricsCollector,
		log,
	)
	personaSvc := personaService.NewService(cfg.Persona.Dir, log)

	// Инициализируем handlers
	chatCompletions := chatCompletionsHandler.NewHandler(
		openaiClient,
		toolsSvc,
		personaSvc,
		cfg.Persona.Name,
		cfg.Business.Name,
		log,
	)
	executeTool := executeToolHandler.NewHandler(toolsSvc, log)
	listModels := listModelsHandler.NewHandler(cfg.OpenAI.Model, log)
	callEvents := callEventsHandler.NewHandler(cfg.Persona.Name, cfg.Business.Name, cfg.OpenAI.Model, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// OpenAI-совместимые маршруты для голосовой платформы
	// (платформа может обращаться как с префиксом /v1, так и без него)
	r.HandleFunc("/v1/chat/completions", chatCompletions.Handle).Methods(http.MethodPost)
	r.HandleFunc("/chat/completions", chatCompletions.Handle).Methods(http.MethodPost)
	r.HandleFunc("/v1/models", listModels.Handle).Methods(http.MethodGet)
	r.HandleFunc("/models", listModels.Handle).Methods(http.MethodGet)

	// Webhook-события телефонной платформы
	r.HandleFunc("/telnyx/call-control", callEvents.HandleEvent).Methods(http.MethodPost)
	r.HandleFunc("/telnyx/status", callEvents.HandleStatus).Methods(http.MethodGet)

	// Прямой вызов инструментов (для интеграционных проверок)
	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/tools/{toolName}", executeTool.Handle).Methods(http.MethodPost)

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
