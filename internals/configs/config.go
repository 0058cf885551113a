package configs

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/samber/oops"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"

	defaultPort           = "3000"
	defaultTokenTTL       = time.Hour
	defaultRequestTimeout = 5 * time.Second
	defaultAuditCron      = "0 3 * * *"
)

// Config is built once at startup and handed to constructors.
// Nothing below the main package reads the environment directly.
type Config struct {
	Port             string
	JWTSecret        string
	JWTTTL           time.Duration
	DBDriver         string
	DatabaseURL      string
	CORSAllowOrigins string
	AuditCron        string
	RequestTimeout   time.Duration
	RateLimit        bool
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ .env not found, using system environment")
		} else {
			log.Println("✅ .env loaded")
		}
	} else {
		log.Println("🚀 Running in Railway, using system environment")
	}
}

// Load reads .env (when present) and the process environment into a Config.
func Load() (Config, error) {
	LoadEnv()
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from any key lookup, which keeps tests away from
// the real environment.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	cfg := Config{
		Port:             get("PORT", defaultPort),
		JWTSecret:        get("JWT_SECRET", ""),
		JWTTTL:           defaultTokenTTL,
		DBDriver:         strings.ToLower(get("DB_DRIVER", DriverPostgres)),
		CORSAllowOrigins: get("CORS_ALLOW_ORIGINS", "*"),
		AuditCron:        defaultAuditCron,
		RequestTimeout:   defaultRequestTimeout,
		RateLimit:        true,
	}

	if raw := get("RATE_LIMIT", ""); raw != "" {
		on, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, oops.Code("CONFIG_INVALID").With("RATE_LIMIT", raw).Errorf("RATE_LIMIT must be a boolean")
		}
		cfg.RateLimit = on
	}

	// AUDIT_CRON="" disables the job, so an explicit empty value must win.
	if v, ok := lookup("AUDIT_CRON"); ok {
		cfg.AuditCron = strings.TrimSpace(v)
	}

	if raw := get("JWT_TTL", ""); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil || ttl <= 0 {
			return Config{}, oops.Code("CONFIG_INVALID").With("JWT_TTL", raw).Errorf("JWT_TTL must be a positive duration")
		}
		cfg.JWTTTL = ttl
	}

	if cfg.JWTSecret == "" {
		return Config{}, oops.Code("CONFIG_INVALID").Errorf("JWT_SECRET is required")
	}

	switch cfg.DBDriver {
	case DriverMemory:
	case DriverPostgres:
		cfg.DatabaseURL = get("DATABASE_URL", "")
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = fmt.Sprintf(
				"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=schooladmin",
				get("DB_USER", ""),
				get("DB_PASSWORD", ""),
				get("DB_HOST", "localhost"),
				get("DB_PORT", "5432"),
				get("DB_NAME", ""),
				get("DB_SSLMODE", "require"),
			)
		}
	default:
		return Config{}, oops.Code("CONFIG_INVALID").With("DB_DRIVER", cfg.DBDriver).Errorf("unsupported DB_DRIVER")
	}

	return cfg, nil
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      gormLogger.Warn,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	return &GormLogger{SlowThreshold: l.SlowThreshold, LogLevel: level}
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		log.Printf("[INFO] "+msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		log.Printf("[WARN] "+msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		log.Printf("[ERROR] "+msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.LogLevel >= gormLogger.Error:
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	case elapsed > l.SlowThreshold && l.LogLevel >= gormLogger.Warn:
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	case l.LogLevel >= gormLogger.Info:
		log.Printf("[QUERY] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
