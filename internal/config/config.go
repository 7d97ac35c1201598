package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App         AppConfig
	Database    DatabaseConfig
	JWT         JWTConfig
	Storage     StorageConfig
	CORS        CORSConfig
	RateLimit   RateLimitConfig
	Finance     FinanceConfig
	Log         LogConfig
	Metrics     MetricsConfig
	Maintenance MaintenanceConfig
	Admin       AdminConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Timezone string
}

type JWTConfig struct {
	Secret      string
	Issuer      string
	ExpiryHours time.Duration
}

// StorageConfig selects where delivery evidence is kept. Driver is "local" or "s3".
type StorageConfig struct {
	Driver        string
	Path          string
	PublicBaseURL string
	UploadMaxSize int64
	// KeyPrefix scopes evidence keys; the orphan sweeper never looks outside it.
	KeyPrefix string
	S3        S3Config
}

type S3Config struct {
	Bucket          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	UsePathStyle    bool
	PublicBaseURL   string
	PresignTTL      time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

type FinanceConfig struct {
	TaxRate                 float64
	DebtTolerance           int64
	FolioPrefix             string
	DefaultValidity         string
	DefaultPaymentCondition string
	BoardWindowDays         int
	UrgentDays              int
}

type LogConfig struct {
	Level  string
	Format string
}

type MetricsConfig struct {
	Enabled   bool
	Namespace string
}

// MaintenanceConfig drives the background sweeper. A zero interval disables it.
type MaintenanceConfig struct {
	SweepInterval  time.Duration
	OrphanMinAge   time.Duration
	IdempotencyTTL time.Duration
}

type AdminConfig struct {
	Name     string
	Email    string
	Password string
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.App.Env, "production")
}

func Load() *Config {
	// a missing .env is fine, the process environment still applies
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	return &Config{
		App: AppConfig{
			Name:  v.GetString("APP_NAME"),
			Env:   v.GetString("APP_ENV"),
			Port:  v.GetString("APP_PORT"),
			Debug: v.GetBool("APP_DEBUG"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			SSLMode:  v.GetString("DB_SSL_MODE"),
			Timezone: v.GetString("DB_TIMEZONE"),
		},
		JWT: JWTConfig{
			Secret:      v.GetString("JWT_SECRET"),
			Issuer:      v.GetString("JWT_ISSUER"),
			ExpiryHours: time.Duration(v.GetInt("JWT_EXPIRY_HOURS")) * time.Hour,
		},
		Storage: StorageConfig{
			Driver:        strings.ToLower(v.GetString("STORAGE_DRIVER")),
			Path:          v.GetString("STORAGE_PATH"),
			PublicBaseURL: v.GetString("STORAGE_PUBLIC_BASE_URL"),
			UploadMaxSize: v.GetInt64("UPLOAD_MAX_SIZE"),
			KeyPrefix:     v.GetString("STORAGE_KEY_PREFIX"),
			S3: S3Config{
				Bucket:          v.GetString("S3_BUCKET"),
				Region:          v.GetString("S3_REGION"),
				Endpoint:        v.GetString("S3_ENDPOINT"),
				AccessKeyID:     v.GetString("S3_ACCESS_KEY_ID"),
				SecretAccessKey: v.GetString("S3_SECRET_ACCESS_KEY"),
				UsePathStyle:    v.GetBool("S3_USE_PATH_STYLE"),
				PublicBaseURL:   v.GetString("S3_PUBLIC_BASE_URL"),
				PresignTTL:      v.GetDuration("S3_PRESIGN_TTL"),
			},
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
			AllowedMethods: splitList(v.GetString("CORS_ALLOWED_METHODS")),
			AllowedHeaders: splitList(v.GetString("CORS_ALLOWED_HEADERS")),
		},
		RateLimit: RateLimitConfig{
			Requests: v.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: v.GetInt("RATE_LIMIT_DURATION"),
		},
		Finance: FinanceConfig{
			TaxRate:                 v.GetFloat64("FINANCE_TAX_RATE"),
			DebtTolerance:           v.GetInt64("FINANCE_DEBT_TOLERANCE"),
			FolioPrefix:             v.GetString("FINANCE_FOLIO_PREFIX"),
			DefaultValidity:         v.GetString("FINANCE_DEFAULT_VALIDITY"),
			DefaultPaymentCondition: v.GetString("FINANCE_DEFAULT_PAYMENT_CONDITION"),
			BoardWindowDays:         v.GetInt("BOARD_WINDOW_DAYS"),
			UrgentDays:              v.GetInt("BOARD_URGENT_DAYS"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Metrics: MetricsConfig{
			Enabled:   v.GetBool("METRICS_ENABLED"),
			Namespace: v.GetString("METRICS_NAMESPACE"),
		},
		Maintenance: MaintenanceConfig{
			SweepInterval:  v.GetDuration("MAINTENANCE_SWEEP_INTERVAL"),
			OrphanMinAge:   v.GetDuration("MAINTENANCE_ORPHAN_MIN_AGE"),
			IdempotencyTTL: v.GetDuration("IDEMPOTENCY_TTL"),
		},
		Admin: AdminConfig{
			Name:     v.GetString("ADMIN_NAME"),
			Email:    v.GetString("ADMIN_EMAIL"),
			Password: v.GetString("ADMIN_PASSWORD"),
		},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "plus-control-api")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_DEBUG", true)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "plus_control")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_TIMEZONE", "America/Santiago")

	v.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	v.SetDefault("JWT_ISSUER", "plus-control-api")
	v.SetDefault("JWT_EXPIRY_HOURS", 12)

	v.SetDefault("STORAGE_DRIVER", "local")
	v.SetDefault("STORAGE_PATH", "./storage/evidence")
	v.SetDefault("STORAGE_PUBLIC_BASE_URL", "http://localhost:8080/evidence")
	v.SetDefault("UPLOAD_MAX_SIZE", 10485760)
	v.SetDefault("STORAGE_KEY_PREFIX", "deliveries")
	v.SetDefault("S3_REGION", "us-east-1")
	v.SetDefault("S3_PRESIGN_TTL", "168h")

	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("CORS_ALLOWED_METHODS", "GET,POST,PUT,PATCH,DELETE,OPTIONS")
	v.SetDefault("CORS_ALLOWED_HEADERS", "Origin,Content-Type,Accept,Authorization,Idempotency-Key,X-Request-ID")
	v.SetDefault("RATE_LIMIT_REQUESTS", 100)
	v.SetDefault("RATE_LIMIT_DURATION", 60)

	v.SetDefault("FINANCE_TAX_RATE", 0.19)
	v.SetDefault("FINANCE_DEBT_TOLERANCE", 100)
	v.SetDefault("FINANCE_FOLIO_PREFIX", "COT")
	v.SetDefault("FINANCE_DEFAULT_VALIDITY", "15 Días")
	v.SetDefault("FINANCE_DEFAULT_PAYMENT_CONDITION", "Contado")
	v.SetDefault("BOARD_WINDOW_DAYS", 30)
	v.SetDefault("BOARD_URGENT_DAYS", 3)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("METRICS_NAMESPACE", "plus_control")

	v.SetDefault("MAINTENANCE_SWEEP_INTERVAL", "1h")
	v.SetDefault("MAINTENANCE_ORPHAN_MIN_AGE", "24h")
	v.SetDefault("IDEMPOTENCY_TTL", "24h")

	v.SetDefault("ADMIN_NAME", "Administrador")
	v.SetDefault("ADMIN_EMAIL", "admin@pluscontrol.cl")
	v.SetDefault("ADMIN_PASSWORD", "")
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.Timezone
}
