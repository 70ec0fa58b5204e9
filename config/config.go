package config

import (
	"os"
	"strconv"
	"time"
)

// Config carries everything the binaries read from the environment.
// Values are resolved once at startup and handed down explicitly.
type Config struct {
	FleetPort int
	AuthPort  int
	DepotPort int

	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret string

	// Civil timezone used for every date and timestamp the system writes,
	// independent of where the server runs.
	Timezone string
	Location *time.Location

	// SMTP settings for depot-master alert notification. Notification is
	// disabled when SMTPHost is empty.
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	AlertMailTo  string

	// Hour/minute of the daily depot housekeeping task.
	ScheduleHour   int
	ScheduleMinute int
}

func Load() (*Config, error) {
	cfg := &Config{
		FleetPort: GetEnvAsInt("FLEET_PORT", 3001),
		AuthPort:  GetEnvAsInt("AUTH_PORT", 5000),
		DepotPort: GetEnvAsInt("DEPOT_PORT", 4000),

		DBHost:     GetEnv("DB_HOST", "127.0.0.1"),
		DBPort:     GetEnvAsInt("DB_PORT", 3306),
		DBUser:     GetEnv("DB_USER", "root"),
		DBPassword: GetEnv("DB_PASSWORD", ""),
		DBName:     GetEnv("DB_NAME", "fleet_ops"),

		JWTSecret: GetEnv("JWT_SECRET", "change-me-in-production"),

		Timezone: GetEnv("APP_TIMEZONE", "Asia/Kolkata"),

		SMTPHost:     GetEnv("SMTP_HOST", ""),
		SMTPPort:     GetEnvAsInt("SMTP_PORT", 587),
		SMTPUser:     GetEnv("SMTP_USER", ""),
		SMTPPassword: GetEnv("SMTP_PASSWORD", ""),
		AlertMailTo:  GetEnv("ALERT_MAIL_TO", ""),

		ScheduleHour:   GetEnvAsInt("SCHEDULE_HOUR", 2),
		ScheduleMinute: GetEnvAsInt("SCHEDULE_MINUTE", 51),
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, err
	}
	cfg.Location = loc

	return cfg, nil
}

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
