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

	cancelBookingHandler "github.com/padelio/PDL-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/padelio/PDL-BookingService/internal/api/handlers/create_booking"
	createCourtHandler "github.com/padelio/PDL-BookingService/internal/api/handlers/create_court"
	createHolidayHandler "github.com/padelio/PDL-BookingService/internal/api/handlers/create_holiday"
	createPromotionHandler "github.com/padelio/PDL-BookingService/internal/api/handlers/create_promotion"
	deactivateCourtHandler "github.com/padelio/PDL-BookingService/internal/api/handlers/deactivate_court"
	deactivatePromotionHandler "github.com/padelio/PDL-BookingService/internal/api/handlers/deactivate_promotion"
	deleteHolidayHandler "github.com/padelio/PDL-BookingService/internal/api/handlers/delete_holiday"
	expireUnpaidHandler "github.com/padelio/PDL-BookingService/internal/api/handlers/expire_unpaid"
	exportBookingsHandler "github.com/padelio/PDL-BookingService/internal/api/handlers/export_bookings"
	getAvailableSlotsHandler "github.com/padelio/PDL-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/padelio/PDL-BookingService/internal/api/handlers/get_booking"
	getClubBookingsHandler "github.com/padelio/PDL-BookingService/internal/api/handlers/get_club_bookings"
	getCourtsHandler "github.com/padelio/PDL-BookingService/internal/api/handlers/get_courts"
	getSettingsHandler "github.com/padelio/PDL-BookingService/internal/api/handlers/get_settings"
	getStatsHandler "github.com/padelio/PDL-BookingService/internal/api/handlers/get_stats"
	getUserBookingsHandler "github.com/padelio/PDL-BookingService/internal/api/handlers/get_user_bookings"
	listHolidaysHandler "github.com/padelio/PDL-BookingService/internal/api/handlers/list_holidays"
	listPromotionsHandler "github.com/padelio/PDL-BookingService/internal/api/handlers/list_promotions"
	respondParticipationHandler "github.com/padelio/PDL-BookingService/internal/api/handlers/respond_participation"
	updateCourtHandler "github.com/padelio/PDL-BookingService/internal/api/handlers/update_court"
	updateSettingsHandler "github.com/padelio/PDL-BookingService/internal/api/handlers/update_settings"
	"github.com/padelio/PDL-BookingService/internal/api/middleware"
	"github.com/padelio/PDL-BookingService/internal/config"
	bookingRepo "github.com/padelio/PDL-BookingService/internal/infra/storage/booking"
	courtRepo "github.com/padelio/PDL-BookingService/internal/infra/storage/court"
	emailLogRepo "github.com/padelio/PDL-BookingService/internal/infra/storage/emaillog"
	profileRepo "github.com/padelio/PDL-BookingService/internal/infra/storage/profile"
	promotionRepo "github.com/padelio/PDL-BookingService/internal/infra/storage/promotion"
	scheduleRepo "github.com/padelio/PDL-BookingService/internal/infra/storage/schedule"
	settingsRepo "github.com/padelio/PDL-BookingService/internal/infra/storage/settings"
	mailServiceClient "github.com/padelio/PDL-BookingService/internal/integrations/mailservice"
	paymentServiceClient "github.com/padelio/PDL-BookingService/internal/integrations/paymentservice"
	bookingsService "github.com/padelio/PDL-BookingService/internal/service/bookings"
	courtsService "github.com/padelio/PDL-BookingService/internal/service/courts"
	notificationsService "github.com/padelio/PDL-BookingService/internal/service/notifications"
	settingsService "github.com/padelio/PDL-BookingService/internal/service/settings"
	createBookingUC "github.com/padelio/PDL-BookingService/internal/usecase/create_booking"
	expireUnpaidUC "github.com/padelio/PDL-BookingService/internal/usecase/expire_unpaid_bookings"
	exportBookingsUC "github.com/padelio/PDL-BookingService/internal/usecase/export_bookings"
	getAvailableSlotsUC "github.com/padelio/PDL-BookingService/internal/usecase/get_available_slots"
	getStatsUC "github.com/padelio/PDL-BookingService/internal/usecase/get_stats"
	"github.com/padelio/PDL-BookingService/pkg/dbmetrics"
	"github.com/padelio/PDL-BookingService/pkg/logger"
	"github.com/padelio/PDL-BookingService/pkg/metrics"
	"github.com/padelio/PDL-BookingService/pkg/simpletxmanager"
	"github.com/padelio/PDL-BookingService/pkg/txmanager"
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

	log.Info("Starting PDL-BookingService...")
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

	// Инициализируем интеграционных клиентов
	paymentClient := paymentServiceClient.NewClient(
		cfg.PaymentService.URL,
		cfg.PaymentService.APIKey,
		cfg.PaymentService.Currency,
		time.Duration(cfg.PaymentService.Timeout)*time.Second,
		log,
	)
	mailClient := mailServiceClient.NewClient(
		cfg.MailService.URL,
		cfg.MailService.APIKey,
		cfg.MailService.SenderEmail,
		cfg.MailService.SenderName,
		time.Duration(cfg.MailService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (PaymentService=%s timeout=%ds, MailService=%s timeout=%ds)",
		cfg.PaymentService.URL, cfg.PaymentService.Timeout, cfg.MailService.URL, cfg.MailService.Timeout)

	// Интерфейс transaction manager, используемый в usecases
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository   *bookingRepo.Repository
		courtRepository     *courtRepo.Repository
		scheduleRepository  *scheduleRepo.Repository
		promotionRepository *promotionRepo.Repository
		profileRepository   *profileRepo.Repository
		settingsRepository  *settingsRepo.Repository
		emailLogRepository  *emailLogRepo.Repository
		txMgr               TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		courtRepository = courtRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		promotionRepository = promotionRepo.NewRepository(wrappedDB)
		profileRepository = profileRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		emailLogRepository = emailLogRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		courtRepository = courtRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		promotionRepository = promotionRepo.NewRepository(db)
		profileRepository = profileRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		emailLogRepository = emailLogRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Диспетчер почтовых уведомлений
	notifier := notificationsService.NewDispatcher(
		mailClient,
		emailLogRepository,
		cfg.MailService.Templates,
		log,
	)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		courtRepository,
		profileRepository,
		settingsRepository,
		paymentClient,
		notifier,
		log,
	)
	courtSvc := courtsService.NewService(
		courtRepository,
		profileRepository,
		log,
	)
	settingsSvc := settingsService.NewService(
		settingsRepository,
		scheduleRepository,
		promotionRepository,
		profileRepository,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		courtRepository,
		scheduleRepository,
		promotionRepository,
		settingsRepository,
		profileRepository,
		paymentClient,
		notifier,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		courtRepository,
		scheduleRepository,
		promotionRepository,
		settingsRepository,
		log,
	)
	getStatsUseCase := getStatsUC.NewUseCase(
		bookingRepository,
		courtRepository,
		scheduleRepository,
		profileRepository,
		log,
	)
	expireUnpaidUseCase := expireUnpaidUC.NewUseCase(
		bookingRepository,
		courtRepository,
		profileRepository,
		settingsRepository,
		notifier,
		txMgr,
		log,
	)
	exportBookingsUseCase := exportBookingsUC.NewUseCase(
		bookingRepository,
		courtRepository,
		profileRepository,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getCourts := getCourtsHandler.NewHandler(courtSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	respondParticipation := respondParticipationHandler.NewHandler(bookingSvc, log)
	getClubBookings := getClubBookingsHandler.NewHandler(bookingSvc, log)
	getStats := getStatsHandler.NewHandler(getStatsUseCase, log)
	expireUnpaid := expireUnpaidHandler.NewHandler(expireUnpaidUseCase, log)
	exportBookings := exportBookingsHandler.NewHandler(exportBookingsUseCase, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)
	createCourt := createCourtHandler.NewHandler(courtSvc, log)
	updateCourt := updateCourtHandler.NewHandler(courtSvc, log)
	deactivateCourt := deactivateCourtHandler.NewHandler(courtSvc, log)
	listHolidays := listHolidaysHandler.NewHandler(settingsSvc, log)
	createHoliday := createHolidayHandler.NewHandler(settingsSvc, log)
	deleteHoliday := deleteHolidayHandler.NewHandler(settingsSvc, log)
	listPromotions := listPromotionsHandler.NewHandler(settingsSvc, log)
	createPromotion := createPromotionHandler.NewHandler(settingsSvc, log)
	deactivatePromotion := deactivatePromotionHandler.NewHandler(settingsSvc, log)

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

	// Сетка слотов на дату
	api.HandleFunc("/availability", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Список активных кортов
	api.HandleFunc("/courts", getCourts.Handle).Methods(http.MethodGet)

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

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Ответ на приглашение в бронирование
	protected.HandleFunc("/bookings/{bookingId}/participation", respondParticipation.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Администрирование клуба ---
	admin := protected.PathPrefix("/admin").Subrouter()

	// Бронирования клуба
	admin.HandleFunc("/bookings", getClubBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/export", exportBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/expire-unpaid", expireUnpaid.Handle).Methods(http.MethodPost)

	// Статистика загрузки и выручки
	admin.HandleFunc("/stats", getStats.Handle).Methods(http.MethodGet)

	// Настройки клуба и недельное расписание
	admin.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

	// Управление кортами
	admin.HandleFunc("/courts", createCourt.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/courts/{courtId}", updateCourt.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/courts/{courtId}", deactivateCourt.Handle).Methods(http.MethodDelete)

	// Закрытия клуба
	admin.HandleFunc("/holidays", listHolidays.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/holidays", createHoliday.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/holidays/{holidayId}", deleteHoliday.Handle).Methods(http.MethodDelete)

	// Акции
	admin.HandleFunc("/promotions", listPromotions.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/promotions", createPromotion.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/promotions/{promotionId}", deactivatePromotion.Handle).Methods(http.MethodDelete)

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

	log.Info("Server exited")
}
