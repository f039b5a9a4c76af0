package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/docaid/DocAid-BookingService/internal/domain"
	"github.com/docaid/DocAid-BookingService/pkg/types"
)

// ErrInvalidConfig возвращается, когда конфигурация не проходит проверку
var ErrInvalidConfig = errors.New("invalid config")

// Переменные окружения для секретов
const (
	EnvDBPassword = "DOCAID_DB_PASSWORD"
	EnvJWTSecret  = "DOCAID_JWT_SECRET"
)

// Бэкенды хранилища бронирований
const (
	StorageMemory   = "memory"
	StorageFile     = "file"
	StoragePostgres = "postgres"
)

// Бэкенды кэша снимков
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Storage  StorageConfig  `toml:"storage"`
	Booking  BookingConfig  `toml:"booking"`
	Schedule ScheduleConfig `toml:"schedule"`
	Cache    CacheConfig    `toml:"cache"`
	Events   EventsConfig   `toml:"events"`
	Auth     AuthConfig     `toml:"auth"`
}

// ServerConfig HTTP сервер, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig подключение к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig логирование
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig метрики Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StorageConfig выбор хранилища
type StorageConfig struct {
	Backend        string `toml:"backend"`          // memory | file | postgres
	FilePath       string `toml:"file_path"`        // для backend = file
	IntakeFilePath string `toml:"intake_file_path"` // журнал заявок пациентов для backend = file
}

// BookingConfig политика создания бронирований
type BookingConfig struct {
	InitialStatus      string `toml:"initial_status"`
	AdminInitialStatus string `toml:"admin_initial_status"`
	DuplicateScope     string `toml:"duplicate_scope"` // user | global
	DemoMode           bool   `toml:"demo_mode"`
	Timezone           string `toml:"timezone"`
	ClinicAddress      string `toml:"clinic_address"`
	RosterFile         string `toml:"roster_file"` // пусто - встроенный список врачей
}

// Location зона, в которой считается "сегодня"
func (c BookingConfig) Location() (*time.Location, error) {
	if c.Timezone == "" || strings.EqualFold(c.Timezone, "local") {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// ScheduleConfig сетка слотов
type ScheduleConfig struct {
	FirstSlot   string `toml:"first_slot"`
	LastSlot    string `toml:"last_slot"`
	StepMinutes int    `toml:"step_minutes"`
}

// SlotSchedule строит сетку слотов
func (c ScheduleConfig) SlotSchedule() (*domain.SlotSchedule, error) {
	first, err := types.NewTimeStringFromString(c.FirstSlot)
	if err != nil {
		return nil, fmt.Errorf("first_slot: %w", err)
	}
	last, err := types.NewTimeStringFromString(c.LastSlot)
	if err != nil {
		return nil, fmt.Errorf("last_slot: %w", err)
	}
	return domain.NewSlotSchedule(first, last, c.StepMinutes)
}

// CacheConfig кэш снимков для чтения при недоступном хранилище
type CacheConfig struct {
	Backend    string `toml:"backend"` // none | memory | redis
	RedisAddr  string `toml:"redis_addr"`
	RedisDB    int    `toml:"redis_db"`
	Prefix     string `toml:"prefix"`
	TTLSeconds int    `toml:"ttl_seconds"`
}

// TTL срок жизни снимка
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// EventsConfig публикация событий в Kafka
type EventsConfig struct {
	Brokers        string `toml:"brokers"` // через запятую, пусто - события не публикуются
	Topic          string `toml:"topic"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// AuthConfig проверка токенов
type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"` // пусто - доверяем заголовку X-User-ID
}

// Load читает конфигурацию из TOML файла, применяет значения по умолчанию
// и переменные окружения, затем проверяет результат
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	cfg.applyDefaults()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default конфигурация для локального запуска
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	setInt(&c.Server.HTTPPort, 8080)
	setInt(&c.Server.ReadTimeout, 15)
	setInt(&c.Server.WriteTimeout, 15)
	setInt(&c.Server.IdleTimeout, 60)
	setInt(&c.Server.ShutdownTimeout, 10)

	setString(&c.Database.Host, "localhost")
	setInt(&c.Database.Port, 5432)
	setString(&c.Database.SSLMode, "disable")
	setInt(&c.Database.MaxOpenConns, 25)
	setInt(&c.Database.MaxIdleConns, 5)
	setInt(&c.Database.ConnMaxLifetime, 300)

	setString(&c.Logs.Level, "info")

	setString(&c.Metrics.Path, "/metrics")
	setString(&c.Metrics.ServiceName, "docaid_booking")

	setString(&c.Storage.Backend, StorageMemory)
	setString(&c.Storage.FilePath, "data/bookings.json")
	setString(&c.Storage.IntakeFilePath, "data/patient_intake.jsonl")

	setString(&c.Booking.InitialStatus, string(domain.StatusPending))
	setString(&c.Booking.AdminInitialStatus, string(domain.StatusConfirmed))
	setString(&c.Booking.DuplicateScope, string(domain.DuplicateScopeUser))
	setString(&c.Booking.Timezone, "Local")

	setString(&c.Schedule.FirstSlot, domain.DefaultFirstSlot.String())
	setString(&c.Schedule.LastSlot, domain.DefaultLastSlot.String())
	setInt(&c.Schedule.StepMinutes, domain.DefaultSlotStepMinutes)

	setString(&c.Cache.Backend, CacheMemory)
	setString(&c.Cache.Prefix, "docaid:snapshot")
	setInt(&c.Cache.TTLSeconds, 3600)

	setString(&c.Events.Topic, "docaid.bookings")
	setInt(&c.Events.TimeoutSeconds, 5)
}

func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv(EnvDBPassword); ok {
		c.Database.Password = v
	}
	if v, ok := os.LookupEnv(EnvJWTSecret); ok {
		c.Auth.JWTSecret = v
	}
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	var problems []string

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		problems = append(problems, fmt.Sprintf("server.http_port %d out of range", c.Server.HTTPPort))
	}

	switch c.Storage.Backend {
	case StorageMemory:
	case StorageFile:
		if strings.TrimSpace(c.Storage.FilePath) == "" {
			problems = append(problems, "storage.file_path is required for file backend")
		}
		if strings.TrimSpace(c.Storage.IntakeFilePath) == "" {
			problems = append(problems, "storage.intake_file_path is required for file backend")
		}
	case StoragePostgres:
		if c.Database.DBName == "" || c.Database.User == "" {
			problems = append(problems, "database.dbname and database.user are required for postgres backend")
		}
	default:
		problems = append(problems, fmt.Sprintf("storage.backend %q is not one of memory, file, postgres", c.Storage.Backend))
	}

	for name, raw := range map[string]string{
		"booking.initial_status":       c.Booking.InitialStatus,
		"booking.admin_initial_status": c.Booking.AdminInitialStatus,
	} {
		status, ok := domain.ParseBookingStatus(raw)
		if !ok || status == domain.StatusCancelled {
			problems = append(problems, fmt.Sprintf("%s %q must be pending or confirmed", name, raw))
		}
	}

	switch domain.DuplicateScope(c.Booking.DuplicateScope) {
	case domain.DuplicateScopeUser, domain.DuplicateScopeGlobal:
	default:
		problems = append(problems, fmt.Sprintf("booking.duplicate_scope %q must be user or global", c.Booking.DuplicateScope))
	}

	if _, err := c.Booking.Location(); err != nil {
		problems = append(problems, fmt.Sprintf("booking.timezone: %v", err))
	}

	if _, err := c.Schedule.SlotSchedule(); err != nil {
		problems = append(problems, fmt.Sprintf("schedule: %v", err))
	}

	switch c.Cache.Backend {
	case CacheNone, CacheMemory:
	case CacheRedis:
		if c.Cache.RedisAddr == "" {
			problems = append(problems, "cache.redis_addr is required for redis backend")
		}
	default:
		problems = append(problems, fmt.Sprintf("cache.backend %q is not one of none, memory, redis", c.Cache.Backend))
	}

	if c.Events.Brokers != "" && c.Events.Topic == "" {
		problems = append(problems, "events.topic is required when brokers are set")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

func setInt(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}

func setString(v *string, def string) {
	if *v == "" {
		*v = def
	}
}
