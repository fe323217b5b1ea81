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

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/silkebeauty/SB-BookingService/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/silkebeauty/SB-BookingService/internal/api/handlers/delete_booking"
	getAdminBookingsHandler "github.com/silkebeauty/SB-BookingService/internal/api/handlers/get_admin_bookings"
	getCalendarDebugHandler "github.com/silkebeauty/SB-BookingService/internal/api/handlers/get_calendar_debug"
	getSlotsHandler "github.com/silkebeauty/SB-BookingService/internal/api/handlers/get_slots"
	"github.com/silkebeauty/SB-BookingService/internal/api/middleware"
	"github.com/silkebeauty/SB-BookingService/internal/config"
	"github.com/silkebeauty/SB-BookingService/internal/domain"
	bookingRepo "github.com/silkebeauty/SB-BookingService/internal/infra/storage/booking"
	"github.com/silkebeauty/SB-BookingService/internal/infra/storage/memstore"
	"github.com/silkebeauty/SB-BookingService/internal/integrations/googlecalendar"
	"github.com/silkebeauty/SB-BookingService/internal/integrations/mailer"
	"github.com/silkebeauty/SB-BookingService/internal/notify"
	bookingsService "github.com/silkebeauty/SB-BookingService/internal/service/bookings"
	createBookingUC "github.com/silkebeauty/SB-BookingService/internal/usecase/create_booking"
	getSlotsUC "github.com/silkebeauty/SB-BookingService/internal/usecase/get_slots"
	"github.com/silkebeauty/SB-BookingService/internal/worker/retention"
	"github.com/silkebeauty/SB-BookingService/pkg/logger"
	"github.com/silkebeauty/SB-BookingService/pkg/metrics"
	"github.com/silkebeauty/SB-BookingService/pkg/txmanager"
)

// BookingStore полный набор операций хранилища бронирований
// Оба бэкенда (PostgreSQL и in-memory) реализуют его целиком;
// дальше по стеку каждый пакет объявляет свой узкий интерфейс
type BookingStore interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
	CountForSlot(ctx context.Context, date time.Time, startTime string) (int, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time, batchSize int) (int64, error)
}

// CalendarClient операции внешнего календаря
type CalendarClient interface {
	ListEventsForDate(ctx context.Context, date time.Time) ([]*domain.CalendarEvent, error)
	CreateEvent(ctx context.Context, booking *domain.Booking, durationMinutes int) error
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

	log.Info("Starting SB-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Выбираем бэкенд хранилища (один раз при старте, по конфигурации)
	var (
		store BookingStore
		txMgr createBookingUC.TransactionManager
	)

	switch cfg.Storage.Backend {
	case config.StoragePostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		store = bookingRepo.NewRepository(db)
		txMgr = txmanager.NewTransactionManager(db)

	case config.StorageMemory:
		store = memstore.NewStore()
		txMgr = txmanager.NewMutexManager()
		log.Warn("Using in-memory booking store: data will not survive a restart")
	}

	// Инициализируем клиент календаря
	var calendarClient CalendarClient
	if cfg.Calendar.IsConfigured() {
		loc, err := time.LoadLocation(cfg.Calendar.Timezone)
		if err != nil {
			log.Fatal("Failed to load calendar timezone %s: %v", cfg.Calendar.Timezone, err)
		}
		calendarClient = googlecalendar.NewClient(
			cfg.Calendar.BaseURL,
			cfg.Calendar.CalendarID,
			cfg.Calendar.APIKey,
			time.Duration(cfg.Calendar.Timeout)*time.Second,
			loc,
			log,
		)
		log.Info("Calendar client initialized (calendar_id=%s, timezone=%s)",
			cfg.Calendar.CalendarID, cfg.Calendar.Timezone)
	} else {
		calendarClient = googlecalendar.NewNopClient(log)
		log.Warn("Calendar not configured: availability will have no working-hours window")
	}

	// Инициализируем мейлер
	var mail createBookingUC.Mailer
	if cfg.SMTP.IsConfigured() {
		mail = mailer.NewMailer(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.User,
			cfg.SMTP.Password,
			cfg.SMTP.From,
			cfg.Notifications.ProviderEmail,
			log,
		)
		log.Info("Mailer initialized (host=%s, from=%s)", cfg.SMTP.Host, cfg.SMTP.From)
	} else {
		mail = mailer.NewNopMailer(log)
		log.Warn("SMTP not configured: notification emails will only be logged")
	}

	// Диспетчер fire-and-forget уведомлений
	var observeNotify func(task, result string)
	if metricsCollector != nil {
		observeNotify = metricsCollector.ObserveNotifyTask()
	}
	dispatcher := notify.NewDispatcher(cfg.Notifications.QueueSize, cfg.Notifications.Workers, log, observeNotify)
	defer dispatcher.Stop()

	// Инициализируем сервисы и use cases
	bookingsSvc := bookingsService.NewService(store, log)

	getSlotsUseCase := getSlotsUC.NewUseCase(
		store,
		calendarClient,
		cfg.Slots.Capacity,
		cfg.Slots.DurationMinutes,
		cfg.Slots.StrideMinutes,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		store,
		txMgr,
		calendarClient,
		mail,
		dispatcher,
		cfg.Slots.Capacity,
		cfg.Slots.DurationMinutes,
		log,
	)

	// Фоновая очистка старых бронирований
	retentionWorker := retention.NewWorker(store, cfg.Retention.Months, cfg.Retention.BatchSize, log)
	if err := retentionWorker.Start(); err != nil {
		log.Fatal("Failed to start retention worker: %v", err)
	}
	defer retentionWorker.Stop()

	// Инициализируем handlers
	getSlots := getSlotsHandler.NewHandler(getSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAdminBookings := getAdminBookingsHandler.NewHandler(bookingsSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingsSvc, log)
	getCalendarDebug := getCalendarDebugHandler.NewHandler(calendarClient, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api").Subrouter()

	// Публичные маршруты
	api.HandleFunc("/slots", getSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Admin-маршруты (без аутентификации, как в исходной системе)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.HandleFunc("/bookings", getAdminBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/calendar", getCalendarDebug.Handle).Methods(http.MethodGet)

	// CORS для браузерного фронтенда
	corsHandler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins([]string{"*"}),
		gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type"}),
	)(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
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
