package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Log       LogConfig
	Printer   PrinterConfig
	Store     StoreConfig
	Email     EmailConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type DatabaseConfig struct {
	Host         string
	Port         string
	Name         string
	User         string
	Password     string
	SSLMode      string
	Timezone     string
	MaxIdleConns int
	MaxOpenConns int
}

type JWTConfig struct {
	Secret      string
	ExpiryHours time.Duration
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

type LogConfig struct {
	Level      string
	Format     string
	OutputPath string
}

type PrinterConfig struct {
	Type       string
	USBPath    string
	Address    string
	SpoolDir   string
	SpoolMax   int
	PrintDelay time.Duration
	Inbox      string
}

type StoreConfig struct {
	Name               string
	Address            string
	Phone              string
	NTN                string
	ReceiptFooter      string
	ConfirmationFooter string
}

type EmailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
}

// Load reads configuration from .env and the environment
func Load() *Config {
	return load(".env")
}

func load(envFile string) *Config {
	v := viper.New()
	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		log.Printf("Warning: %s file not found, using environment variables: %v", envFile, err)
	}

	setDefaults(v)

	return &Config{
		App: AppConfig{
			Name:  v.GetString("APP_NAME"),
			Env:   v.GetString("APP_ENV"),
			Port:  v.GetString("APP_PORT"),
			Debug: v.GetBool("APP_DEBUG"),
		},
		Database: DatabaseConfig{
			Host:         v.GetString("DB_HOST"),
			Port:         v.GetString("DB_PORT"),
			Name:         v.GetString("DB_NAME"),
			User:         v.GetString("DB_USER"),
			Password:     v.GetString("DB_PASSWORD"),
			SSLMode:      v.GetString("DB_SSL_MODE"),
			Timezone:     v.GetString("DB_TIMEZONE"),
			MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
			MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		},
		JWT: JWTConfig{
			Secret:      v.GetString("JWT_SECRET"),
			ExpiryHours: time.Duration(v.GetInt("JWT_EXPIRY_HOURS")) * time.Hour,
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
		Log: LogConfig{
			Level:      v.GetString("LOG_LEVEL"),
			Format:     v.GetString("LOG_FORMAT"),
			OutputPath: v.GetString("LOG_OUTPUT"),
		},
		Printer: PrinterConfig{
			Type:       v.GetString("PRINTER_TYPE"),
			USBPath:    v.GetString("PRINTER_USB_PATH"),
			Address:    v.GetString("PRINTER_ADDRESS"),
			SpoolDir:   v.GetString("PRINTER_SPOOL_DIR"),
			SpoolMax:   v.GetInt("PRINTER_SPOOL_MAX"),
			PrintDelay: printDelay(v),
			Inbox:      v.GetString("RECEIPT_INBOX"),
		},
		Store: StoreConfig{
			Name:               v.GetString("STORE_NAME"),
			Address:            v.GetString("STORE_ADDRESS"),
			Phone:              v.GetString("STORE_PHONE"),
			NTN:                v.GetString("STORE_NTN"),
			ReceiptFooter:      v.GetString("STORE_RECEIPT_FOOTER"),
			ConfirmationFooter: v.GetString("STORE_CONFIRMATION_FOOTER"),
		},
		Email: EmailConfig{
			SMTPHost:     v.GetString("SMTP_HOST"),
			SMTPPort:     v.GetInt("SMTP_PORT"),
			SMTPUsername: v.GetString("SMTP_USERNAME"),
			SMTPPassword: v.GetString("SMTP_PASSWORD"),
			FromName:     v.GetString("SMTP_FROM_NAME"),
			FromEmail:    v.GetString("SMTP_FROM_EMAIL"),
		},
	}
}

// DefaultPrintDelay is used when PRINT_DELAY is missing, malformed or negative.
const DefaultPrintDelay = 500 * time.Millisecond

func printDelay(v *viper.Viper) time.Duration {
	d, err := cast.ToDurationE(v.Get("PRINT_DELAY"))
	if err != nil || d < 0 {
		log.Printf("Warning: invalid PRINT_DELAY %q, using %s", v.GetString("PRINT_DELAY"), DefaultPrintDelay)
		return DefaultPrintDelay
	}
	return d
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "investify-receipts")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "investify_receipts")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_TIMEZONE", "Asia/Karachi")
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)
	v.SetDefault("DB_MAX_OPEN_CONNS", 100)
	v.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	v.SetDefault("JWT_EXPIRY_HOURS", 24*365)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("CORS_ALLOWED_METHODS", "GET,POST,PUT,OPTIONS")
	v.SetDefault("CORS_ALLOWED_HEADERS", "Origin,Content-Type,Authorization,Idempotency-Key")
	v.SetDefault("RATE_LIMIT_REQUESTS", 100)
	v.SetDefault("RATE_LIMIT_DURATION", 60)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("LOG_OUTPUT", "stdout")
	v.SetDefault("PRINTER_TYPE", "spool")
	v.SetDefault("PRINTER_SPOOL_DIR", "./storage/spool")
	v.SetDefault("PRINTER_SPOOL_MAX", 200)
	v.SetDefault("PRINT_DELAY", DefaultPrintDelay.String())
	v.SetDefault("STORE_NAME", "My Store")
	v.SetDefault("STORE_ADDRESS", "Main Street, Karachi, Pakistan")
	v.SetDefault("STORE_PHONE", "+92-300-1234567")
	v.SetDefault("STORE_NTN", "1234567-8")
	v.SetDefault("STORE_RECEIPT_FOOTER", "Thank you for shopping with us!")
	v.SetDefault("STORE_CONFIRMATION_FOOTER", "Thank you for your payment!")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_FROM_NAME", "Investify Receipts")
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
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
