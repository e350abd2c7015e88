package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	JWTTTLHours       int    `mapstructure:"JWT_TTL_HOURS"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	CORSOrigins       string `mapstructure:"CORS_ORIGINS"`

	// Public booking form gets its own, tighter limit.
	BookingRequestsPerMin int `mapstructure:"BOOKING_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisAuthDB   int    `mapstructure:"REDIS_AUTH_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Booking calendar.
	Timezone           string `mapstructure:"TIMEZONE"`
	BookingHorizonDays int    `mapstructure:"BOOKING_HORIZON_DAYS"`

	// Mailgun, used for admin booking notifications.
	MailgunDomain    string `mapstructure:"MAILGUN_DOMAIN"`
	MailgunAPIKey    string `mapstructure:"MAILGUN_API_KEY"`
	MailFrom         string `mapstructure:"MAIL_FROM"`
	AdminNotifyEmail string `mapstructure:"ADMIN_NOTIFY_EMAIL"`
}

var AppConfig Config

func LoadConfig() {
	// A local .env is optional; values there become plain environment variables.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("BOOKING_REQUESTS_PER_MIN", 10)
	viper.SetDefault("CORS_ORIGINS", "*")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_QUEUE_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "agency")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("JWT_TTL_HOURS", 24)
	viper.SetDefault("TIMEZONE", "Asia/Kolkata")
	viper.SetDefault("BOOKING_HORIZON_DAYS", 30)
	viper.SetDefault("MAILGUN_DOMAIN", "")
	viper.SetDefault("MAILGUN_API_KEY", "")
	viper.SetDefault("MAIL_FROM", "")
	viper.SetDefault("ADMIN_NOTIFY_EMAIL", "")
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// Location returns the configured booking timezone, falling back to UTC when
// the zone database does not know the name.
func Location() *time.Location {
	name := AppConfig.Timezone
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("unknown TIMEZONE %q, using UTC", name)
		return time.UTC
	}
	return loc
}

// HorizonDays returns the booking horizon, defaulting to 30 days.
func HorizonDays() int {
	if AppConfig.BookingHorizonDays <= 0 {
		return 30
	}
	return AppConfig.BookingHorizonDays
}

// JWTTTL returns the lifetime of admin bearer tokens.
func JWTTTL() time.Duration {
	if AppConfig.JWTTTLHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(AppConfig.JWTTTLHours) * time.Hour
}

// AllowedOrigins splits CORS_ORIGINS on commas.
func AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(AppConfig.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
