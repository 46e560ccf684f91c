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

	cancelBookingHandler "github.com/avask/HMS-BookingService/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/avask/HMS-BookingService/internal/api/handlers/check_availability"
	createBookingHandler "github.com/avask/HMS-BookingService/internal/api/handlers/create_booking"
	deletePricingConfigHandler "github.com/avask/HMS-BookingService/internal/api/handlers/delete_pricing_config"
	getBookingHandler "github.com/avask/HMS-BookingService/internal/api/handlers/get_booking"
	getCustomerBookingsHandler "github.com/avask/HMS-BookingService/internal/api/handlers/get_customer_bookings"
	getHallBookingsHandler "github.com/avask/HMS-BookingService/internal/api/handlers/get_hall_bookings"
	getPricingConfigHandler "github.com/avask/HMS-BookingService/internal/api/handlers/get_pricing_config"
	getSpecialDiscountsHandler "github.com/avask/HMS-BookingService/internal/api/handlers/get_special_discounts"
	quoteBookingHandler "github.com/avask/HMS-BookingService/internal/api/handlers/quote_booking"
	updateBookingHandler "github.com/avask/HMS-BookingService/internal/api/handlers/update_booking"
	updateBookingStatusHandler "github.com/avask/HMS-BookingService/internal/api/handlers/update_booking_status"
	updatePricingConfigHandler "github.com/avask/HMS-BookingService/internal/api/handlers/update_pricing_config"
	"github.com/avask/HMS-BookingService/internal/api/middleware"
	"github.com/avask/HMS-BookingService/internal/config"
	bookingRepo "github.com/avask/HMS-BookingService/internal/infra/storage/booking"
	discountRepo "github.com/avask/HMS-BookingService/internal/infra/storage/discount"
	pricingConfigRepo "github.com/avask/HMS-BookingService/internal/infra/storage/pricingconfig"
	hallServiceClient "github.com/avask/HMS-BookingService/internal/integrations/hallservice"
	bookingsService "github.com/avask/HMS-BookingService/internal/service/bookings"
	pricingConfigService "github.com/avask/HMS-BookingService/internal/service/pricingconfig"
	checkAvailabilityUC "github.com/avask/HMS-BookingService/internal/usecase/check_availability"
	createBookingUC "github.com/avask/HMS-BookingService/internal/usecase/create_booking"
	quoteBookingUC "github.com/avask/HMS-BookingService/internal/usecase/quote_booking"
	updateBookingUC "github.com/avask/HMS-BookingService/internal/usecase/update_booking"
	"github.com/avask/HMS-BookingService/pkg/dbmetrics"
	"github.com/avask/HMS-BookingService/pkg/logger"
	"github.com/avask/HMS-BookingService/pkg/metrics"
	"github.com/avask/HMS-BookingService/pkg/simpletxmanager"
	"github.com/avask/HMS-BookingService/pkg/txmanager"
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

	log.Info("Starting HMS-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Инициализируем клиент сервиса управления залами
	hallClient := hallServiceClient.NewClient(
		cfg.HallService.URL,
		time.Duration(cfg.HallService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (HallService=%s timeout=%ds)",
		cfg.HallService.URL, cfg.HallService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		configRepository  *pricingConfigRepo.Repository
		discountStore     *discountRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		configRepository = pricingConfigRepo.NewRepository(wrappedDB)
		discountStore = discountRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		configRepository = pricingConfigRepo.NewRepository(db)
		discountStore = discountRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		hallClient,
		log,
	)
	pricingConfigSvc := pricingConfigService.NewService(
		configRepository,
		hallClient,
		log,
	)

	// Инициализируем use cases
	quoteBookingUseCase := quoteBookingUC.NewUseCase(
		configRepository,
		discountStore,
		log,
	)

	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		bookingRepository,
		hallClient,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		configRepository,
		discountStore,
		hallClient,
		txMgr,
		log,
	)

	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository,
		configRepository,
		discountStore,
		hallClient,
		txMgr,
		log,
	)

	// Инициализируем handlers
	quoteBooking := quoteBookingHandler.NewHandler(quoteBookingUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getCustomerBookings := getCustomerBookingsHandler.NewHandler(bookingSvc, log)
	getHallBookings := getHallBookingsHandler.NewHandler(bookingSvc, log)
	getPricingConfig := getPricingConfigHandler.NewHandler(pricingConfigSvc, log)
	updatePricingConfig := updatePricingConfigHandler.NewHandler(pricingConfigSvc, log)
	deletePricingConfig := deletePricingConfigHandler.NewHandler(pricingConfigSvc, log)
	getSpecialDiscounts := getSpecialDiscountsHandler.NewHandler(discountStore, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
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

	// Расчёт стоимости бронирования
	api.HandleFunc("/bookings/quote", quoteBooking.Handle).Methods(http.MethodPost)

	// Отчёт занятости секций зала
	api.HandleFunc("/halls/{hallId}/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// Каталог действующих специальных скидок
	api.HandleFunc("/discounts", getSpecialDiscounts.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Редактирование бронирования
	protected.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPatch)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Смена статуса бронирования (для менеджеров)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// История бронирований клиента
	protected.HandleFunc("/customers/{customerId}/bookings", getCustomerBookings.Handle).Methods(http.MethodGet)

	// --- Управление залом (для менеджеров) ---
	// Список бронирований зала
	protected.HandleFunc("/halls/{hallId}/bookings", getHallBookings.Handle).Methods(http.MethodGet)

	// Конфигурация ценообразования зала
	protected.HandleFunc("/halls/{hallId}/pricing-config", getPricingConfig.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/halls/{hallId}/pricing-config", updatePricingConfig.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/halls/{hallId}/pricing-config", deletePricingConfig.Handle).Methods(http.MethodDelete)

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
