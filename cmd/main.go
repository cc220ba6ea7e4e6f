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
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/PetCare-BookingService/internal/api/handlers"
	assignEmployeeHandler "github.com/m04kA/PetCare-BookingService/internal/api/handlers/assign_employee"
	createOwnerBookingHandler "github.com/m04kA/PetCare-BookingService/internal/api/handlers/create_owner_booking"
	getBookingStatsHandler "github.com/m04kA/PetCare-BookingService/internal/api/handlers/get_booking_stats"
	getCompanyBookingHandler "github.com/m04kA/PetCare-BookingService/internal/api/handlers/get_company_booking"
	listCompanyBookingsHandler "github.com/m04kA/PetCare-BookingService/internal/api/handlers/list_company_bookings"
	listOwnerBookingsHandler "github.com/m04kA/PetCare-BookingService/internal/api/handlers/list_owner_bookings"
	updateBookingStatusHandler "github.com/m04kA/PetCare-BookingService/internal/api/handlers/update_booking_status"
	"github.com/m04kA/PetCare-BookingService/internal/api/middleware"
	"github.com/m04kA/PetCare-BookingService/internal/auth"
	"github.com/m04kA/PetCare-BookingService/internal/config"
	statsCache "github.com/m04kA/PetCare-BookingService/internal/infra/cache/stats"
	bookingRepo "github.com/m04kA/PetCare-BookingService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/PetCare-BookingService/internal/infra/storage/catalog"
	bookingsService "github.com/m04kA/PetCare-BookingService/internal/service/bookings"
	"github.com/m04kA/PetCare-BookingService/internal/service/schedule"
	assignEmployeeUC "github.com/m04kA/PetCare-BookingService/internal/usecase/assign_employee"
	changeStatusUC "github.com/m04kA/PetCare-BookingService/internal/usecase/change_status"
	createBookingUC "github.com/m04kA/PetCare-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/PetCare-BookingService/pkg/dbmetrics"
	"github.com/m04kA/PetCare-BookingService/pkg/logger"
	"github.com/m04kA/PetCare-BookingService/pkg/metrics"
	"github.com/m04kA/PetCare-BookingService/pkg/txmanager"
)

const healthCheckTimeout = 2 * time.Second

func main() {
	configPath := "config.toml"
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		configPath = path
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting PetCare-BookingService...")
	log.Info("Configuration loaded from %s", configPath)

	// Метрики (nil, если выключены; все методы nil-safe)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

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

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txManager := txmanager.NewTransactionManager(
		wrappedDB,
		txmanager.WithMaxRetries(cfg.Database.TxMaxRetries),
		txmanager.WithRetryObserver(metricsCollector),
	)

	// Кэш статистики
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Warn("Redis is unavailable, stats cache will miss until it recovers: %v", err)
		} else {
			log.Info("Stats cache enabled (addr=%s, ttl=%s)", cfg.Redis.Addr, cfg.Redis.StatsTTL())
		}
	}
	cache := statsCache.NewCache(redisClient, cfg.Redis.StatsTTL())

	// Репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	catalogRepository := catalogRepo.NewRepository(wrappedDB)

	// Сервисы
	resolver := schedule.NewResolver(bookingRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, cache, log)

	// Use cases
	assignEmployeeUseCase := assignEmployeeUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		resolver,
		txManager,
		cache,
		metricsCollector,
		log,
	)
	changeStatusUseCase := changeStatusUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		resolver,
		txManager,
		cache,
		metricsCollector,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		txManager,
		cache,
		log,
	)

	// Аутентификация
	authenticator := auth.NewJWTAuthenticator(cfg.Auth.JWTSecret, cfg.Auth.Issuer)
	authorizer := auth.NewAuthorizer()

	// Handlers
	listCompanyBookings := listCompanyBookingsHandler.NewHandler(bookingSvc, authorizer,
		cfg.Booking.DefaultPageLimit, cfg.Booking.MaxPageLimit, log)
	getCompanyBooking := getCompanyBookingHandler.NewHandler(bookingSvc, authorizer, log)
	getBookingStats := getBookingStatsHandler.NewHandler(bookingSvc, authorizer, log)
	assignEmployee := assignEmployeeHandler.NewHandler(assignEmployeeUseCase, authorizer, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(changeStatusUseCase, authorizer, log)
	listOwnerBookings := listOwnerBookingsHandler.NewHandler(bookingSvc, authorizer,
		cfg.Booking.DefaultPageLimit, cfg.Booking.MaxPageLimit, log)
	createOwnerBooking := createOwnerBookingHandler.NewHandler(createBookingUseCase, authorizer, log)

	// Роутер
	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		ctx, cancel := context.WithTimeout(req.Context(), healthCheckTimeout)
		defer cancel()

		if err := wrappedDB.PingContext(ctx); err != nil {
			log.Error("GET /health - Database is unavailable: %v", err)
			handlers.RespondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// ============================================================
	// API (требует Authorization: Bearer <jwt>)
	// ============================================================

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth(authenticator, log))

	// --- Компания ---
	api.HandleFunc("/bookings", listCompanyBookings.Handle).Methods(http.MethodGet)
	// stats/overview регистрируется раньше {bookingId}
	api.HandleFunc("/bookings/stats/overview", getBookingStats.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getCompanyBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/assign", assignEmployee.Handle).Methods(http.MethodPut)
	api.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPut)

	// --- Владелец питомца ---
	api.HandleFunc("/pet-owners/bookings", listOwnerBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/pet-owners/bookings", createOwnerBooking.Handle).Methods(http.MethodPost)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

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
	close(stopMetricsCh)

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
