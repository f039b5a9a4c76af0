package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/docaid/DocAid-BookingService/internal/config"
	"github.com/docaid/DocAid-BookingService/internal/domain"
	bookingRepo "github.com/docaid/DocAid-BookingService/internal/infra/storage/booking"
	feedbackRepo "github.com/docaid/DocAid-BookingService/internal/infra/storage/feedback"
	intakeRepo "github.com/docaid/DocAid-BookingService/internal/infra/storage/intake"
	"github.com/docaid/DocAid-BookingService/pkg/dbmetrics"
	"github.com/docaid/DocAid-BookingService/pkg/logger"
	"github.com/docaid/DocAid-BookingService/pkg/metrics"
	"github.com/docaid/DocAid-BookingService/pkg/txmanager"
)

// bookingStore объединяет то, что нужно use case создания и сервису бронирований
type bookingStore interface {
	Append(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	FindAll(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
	FindByID(ctx context.Context, id int64) (*domain.Booking, error)
	FindByReference(ctx context.Context, reference string) (*domain.Booking, error)
	Update(ctx context.Context, id int64, patch domain.BookingPatch) (*domain.Booking, error)
}

type feedbackStore interface {
	AddReview(ctx context.Context, review *domain.Review) (*domain.Review, error)
	ListReviews(ctx context.Context, doctorID string) ([]*domain.Review, error)
	ToggleLike(ctx context.Context, doctorID, userID string) (domain.LikeSummary, error)
	Likes(ctx context.Context, doctorID, userID string) (domain.LikeSummary, error)
}

type intakeStore interface {
	Append(ctx context.Context, intake *domain.PatientIntake) (*domain.PatientIntake, error)
	List(ctx context.Context, kind domain.IntakeKind) ([]*domain.PatientIntake, error)
}

type txManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// storage хранилища, выбранные по storage.backend
type storage struct {
	bookings bookingStore
	feedback feedbackStore
	intake   intakeStore
	tx       txManager
	close    func()
}

// openStorage создаёт хранилища. Для file отзывы и лайки живут в памяти процесса.
func openStorage(cfg *config.Config, loc *time.Location, m *metrics.Metrics, log *logger.Logger) (*storage, error) {
	switch cfg.Storage.Backend {
	case config.StorageFile:
		repo, err := bookingRepo.NewFileRepository(cfg.Storage.FilePath, loc)
		if err != nil {
			return nil, fmt.Errorf("failed to open booking file: %w", err)
		}
		intakes, err := intakeRepo.NewFileRepository(cfg.Storage.IntakeFilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open patient intake file: %w", err)
		}
		log.Info("Using file storage at %s (patient intake: %s)", cfg.Storage.FilePath, cfg.Storage.IntakeFilePath)
		return &storage{
			bookings: repo,
			feedback: feedbackRepo.NewMemoryRepository(),
			intake:   intakes,
			tx:       txmanager.NewLocalManager(),
			close:    func() {},
		}, nil

	case config.StoragePostgres:
		db, stop, err := openDatabase(cfg, m, log)
		if err != nil {
			return nil, err
		}
		return &storage{
			bookings: bookingRepo.NewRepository(db, loc),
			feedback: feedbackRepo.NewRepository(db),
			intake:   intakeRepo.NewRepository(db),
			tx:       txmanager.NewTransactionManager(db),
			close: func() {
				close(stop)
				_ = db.Unwrap().Close()
			},
		}, nil

	default:
		log.Info("Using in-memory storage")
		return &storage{
			bookings: bookingRepo.NewMemoryRepository(),
			feedback: feedbackRepo.NewMemoryRepository(),
			intake:   intakeRepo.NewMemoryRepository(),
			tx:       txmanager.NewLocalManager(),
			close:    func() {},
		}, nil
	}
}

// openDatabase подключается к PostgreSQL и оборачивает соединение сбором метрик
func openDatabase(cfg *config.Config, m *metrics.Metrics, log *logger.Logger) (*dbmetrics.DB, chan struct{}, error) {
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	stop := make(chan struct{})
	if m != nil {
		log.Info("Database metrics collection started")
	}
	return dbmetrics.WrapWithDefault(db, m, stop), stop, nil
}
