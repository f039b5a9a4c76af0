package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	addReviewHandler "github.com/docaid/DocAid-BookingService/internal/api/handlers/add_review"
	cancelBookingHandler "github.com/docaid/DocAid-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/docaid/DocAid-BookingService/internal/api/handlers/create_booking"
	getAvailableDoctorsHandler "github.com/docaid/DocAid-BookingService/internal/api/handlers/get_available_doctors"
	getBookingHandler "github.com/docaid/DocAid-BookingService/internal/api/handlers/get_booking"
	getBookingConfirmationHandler "github.com/docaid/DocAid-BookingService/internal/api/handlers/get_booking_confirmation"
	getDoctorHandler "github.com/docaid/DocAid-BookingService/internal/api/handlers/get_doctor"
	getLikesHandler "github.com/docaid/DocAid-BookingService/internal/api/handlers/get_likes"
	getTimeSlotsHandler "github.com/docaid/DocAid-BookingService/internal/api/handlers/get_time_slots"
	getUserBookingsHandler "github.com/docaid/DocAid-BookingService/internal/api/handlers/get_user_bookings"
	listCategoriesHandler "github.com/docaid/DocAid-BookingService/internal/api/handlers/list_categories"
	listDoctorsHandler "github.com/docaid/DocAid-BookingService/internal/api/handlers/list_doctors"
	listPatientIntakesHandler "github.com/docaid/DocAid-BookingService/internal/api/handlers/list_patient_intakes"
	listReviewsHandler "github.com/docaid/DocAid-BookingService/internal/api/handlers/list_reviews"
	submitPatientIntakeHandler "github.com/docaid/DocAid-BookingService/internal/api/handlers/submit_patient_intake"
	toggleLikeHandler "github.com/docaid/DocAid-BookingService/internal/api/handlers/toggle_like"
	"github.com/docaid/DocAid-BookingService/internal/api/middleware"
	"github.com/docaid/DocAid-BookingService/internal/config"
	"github.com/docaid/DocAid-BookingService/internal/domain"
	"github.com/docaid/DocAid-BookingService/internal/infra/cache"
	"github.com/docaid/DocAid-BookingService/internal/infra/catalog"
	"github.com/docaid/DocAid-BookingService/internal/infra/events"
	"github.com/docaid/DocAid-BookingService/internal/infra/reference"
	bookingsService "github.com/docaid/DocAid-BookingService/internal/service/bookings"
	doctorsService "github.com/docaid/DocAid-BookingService/internal/service/doctors"
	feedbackService "github.com/docaid/DocAid-BookingService/internal/service/feedback"
	intakeService "github.com/docaid/DocAid-BookingService/internal/service/intake"
	createBookingUC "github.com/docaid/DocAid-BookingService/internal/usecase/create_booking"
	getAvailableDoctorsUC "github.com/docaid/DocAid-BookingService/internal/usecase/get_available_doctors"
	"github.com/docaid/DocAid-BookingService/pkg/logger"
	"github.com/docaid/DocAid-BookingService/pkg/metrics"
)

func serveCmd(configPath *string) *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the booking HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(*configPath, migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "Apply database migrations before start (postgres backend)")
	return cmd
}

func runServer(configPath string, migrate bool) error {
	// Загружаем конфигурацию и логгер
	cfg, log, err := loadConfigAndLogger(configPath)
	if err != nil {
		return err
	}
	defer log.Close()

	log.Info("Starting DocAid-BookingService...")
	log.Info("Configuration loaded from %s", configPath)

	loc, err := cfg.Booking.Location()
	if err != nil {
		return fmt.Errorf("invalid timezone: %w", err)
	}
	schedule, err := cfg.Schedule.SlotSchedule()
	if err != nil {
		return fmt.Errorf("invalid schedule: %w", err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Справочник врачей
	doctors, err := loadCatalog(cfg.Booking.RosterFile)
	if err != nil {
		return err
	}
	log.Info("Doctor catalog loaded: %d doctors", len(doctors.All()))

	if migrate {
		if err := applyMigrations(cfg, log); err != nil {
			return err
		}
	}

	// Хранилища
	store, err := openStorage(cfg, loc, metricsCollector, log)
	if err != nil {
		return err
	}
	defer store.close()

	// Кэш снимков для чтения при недоступном хранилище
	snapshots, closeCache := openSnapshotCache(cfg, log)
	defer closeCache()

	// События для сервиса уведомлений
	publisher, closePublisher := openPublisher(cfg, metricsCollector, log)
	defer closePublisher()

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		store.bookings,
		snapshots,
		publisher,
		metricsCollector,
		store.tx,
		bookingsService.Settings{Location: loc, ClinicAddress: cfg.Booking.ClinicAddress},
		log,
	)
	doctorSvc := doctorsService.NewService(doctors, log)
	feedbackSvc := feedbackService.NewService(store.feedback, doctors, store.tx, log)
	intakeSvc := intakeService.NewService(store.intake, log)

	// Инициализируем use cases
	initialStatus, _ := domain.ParseBookingStatus(cfg.Booking.InitialStatus)
	adminInitialStatus, _ := domain.ParseBookingStatus(cfg.Booking.AdminInitialStatus)
	createBookingUseCase := createBookingUC.NewUseCase(
		store.bookings,
		doctors,
		reference.NewGenerator(),
		publisher,
		metricsCollector,
		store.tx,
		schedule,
		createBookingUC.Policy{
			InitialStatus:      initialStatus,
			AdminInitialStatus: adminInitialStatus,
			DuplicateScope:     domain.DuplicateScope(cfg.Booking.DuplicateScope),
			DemoMode:           cfg.Booking.DemoMode,
			Location:           loc,
		},
		log,
	)
	getAvailableDoctorsUseCase := getAvailableDoctorsUC.NewUseCase(doctors, schedule, loc, log)

	if cfg.Booking.DemoMode {
		log.Warn("Demo mode is on: bookings get DEMO- references and no events are published")
	}

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableDoctors := getAvailableDoctorsHandler.NewHandler(getAvailableDoctorsUseCase, log)
	getTimeSlots := getTimeSlotsHandler.NewHandler(getAvailableDoctorsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getBookingConfirmation := getBookingConfirmationHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	listDoctors := listDoctorsHandler.NewHandler(doctorSvc, log)
	getDoctor := getDoctorHandler.NewHandler(doctorSvc, log)
	listCategories := listCategoriesHandler.NewHandler(doctorSvc, log)
	listReviews := listReviewsHandler.NewHandler(feedbackSvc, log)
	addReview := addReviewHandler.NewHandler(feedbackSvc, log)
	getLikes := getLikesHandler.NewHandler(feedbackSvc, log)
	toggleLike := toggleLikeHandler.NewHandler(feedbackSvc, log)
	submitPatientIntake := submitPatientIntakeHandler.NewHandler(intakeSvc, log)
	listPatientIntakes := listPatientIntakesHandler.NewHandler(intakeSvc, log)

	auth := middleware.NewAuthenticator(cfg.Auth.JWTSecret, log)
	if cfg.Auth.JWTSecret == "" {
		log.Warn("auth.jwt_secret is empty: trusting the %s header", middleware.HeaderUserID)
	}

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recover(log))

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

	// --- Каталог врачей ---
	api.HandleFunc("/doctors", listDoctors.Handle).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{doctorId}", getDoctor.Handle).Methods(http.MethodGet)
	api.HandleFunc("/categories", listCategories.Handle).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{doctorId}/reviews", listReviews.Handle).Methods(http.MethodGet)

	// --- Доступность ---
	api.HandleFunc("/available-doctors", getAvailableDoctors.Handle).Methods(http.MethodGet)
	api.HandleFunc("/time-slots", getTimeSlots.Handle).Methods(http.MethodGet)

	// Лайки: пользователь опционален, с ним ответ содержит liked
	api.Handle("/doctors/{doctorId}/likes", auth.Optional(http.HandlerFunc(getLikes.Handle))).Methods(http.MethodGet)

	// Заявка пациента на визит в клинику или на дом, вход не обязателен
	api.Handle("/patient-intake", auth.Optional(http.HandlerFunc(submitPatientIntake.Handle))).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют пользователя)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(auth.Required)

	// --- Отзывы и лайки ---
	protected.HandleFunc("/doctors/{doctorId}/reviews", addReview.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/doctors/{doctorId}/likes/toggle", toggleLike.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/confirmation", getBookingConfirmation.Handle).Methods(http.MethodGet)

	// --- Заявки пациентов (только администратор) ---
	protected.HandleFunc("/patient-intake", listPatientIntakes.Handle).Methods(http.MethodGet)

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
	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serverErr:
		return fmt.Errorf("server failed to start: %w", err)
	}

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
	return nil
}

func loadCatalog(rosterFile string) (*catalog.Repository, error) {
	roster := catalog.DefaultRoster()
	if rosterFile != "" {
		loaded, err := catalog.LoadFile(rosterFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load roster %s: %w", rosterFile, err)
		}
		roster = loaded
	}

	doctors, err := catalog.NewRepository(roster)
	if err != nil {
		return nil, fmt.Errorf("invalid roster: %w", err)
	}
	return doctors, nil
}

// openSnapshotCache возвращает nil, если кэш выключен
func openSnapshotCache(cfg *config.Config, log *logger.Logger) (bookingsService.SnapshotCache, func()) {
	switch cfg.Cache.Backend {
	case config.CacheRedis:
		client := redis.NewClient(&redis.Options{
			Addr: cfg.Cache.RedisAddr,
			DB:   cfg.Cache.RedisDB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			// Кэш нужен только при сбое хранилища, поэтому стартуем без Redis
			log.Warn("Redis at %s is not reachable: %v", cfg.Cache.RedisAddr, err)
		} else {
			log.Info("Snapshot cache: redis at %s (db=%d)", cfg.Cache.RedisAddr, cfg.Cache.RedisDB)
		}

		return cache.NewRedisCache(client, cfg.Cache.Prefix, cfg.Cache.TTL()), func() { _ = client.Close() }

	case config.CacheMemory:
		log.Info("Snapshot cache: in-memory")
		return cache.NewMemoryCache(), func() {}

	default:
		log.Info("Snapshot cache disabled")
		return nil, func() {}
	}
}

// openPublisher возвращает Kafka издателя или заглушку, если брокеры не заданы
func openPublisher(cfg *config.Config, m *metrics.Metrics, log *logger.Logger) (events.Publisher, func()) {
	if cfg.Events.Brokers == "" {
		log.Info("Event publishing disabled")
		return events.NoopPublisher{}, func() {}
	}

	kafkaPublisher := events.NewKafkaPublisher(
		events.NewKafkaWriter(cfg.Events.Brokers, cfg.Events.Topic),
		time.Duration(cfg.Events.TimeoutSeconds)*time.Second,
	)
	log.Info("Publishing booking events to %s (topic=%s)", cfg.Events.Brokers, cfg.Events.Topic)

	closeFn := func() {
		if err := kafkaPublisher.Close(); err != nil {
			log.Error("Failed to close event publisher: %v", err)
		}
	}

	if m == nil {
		return kafkaPublisher, closeFn
	}
	return events.Instrument(kafkaPublisher, m), closeFn
}
