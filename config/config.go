package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB         int    `mapstructure:"REDIS_CACHE_DB"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	// Office schedule configuration.
	OfficeStartHour   int `mapstructure:"OFFICE_START_HOUR"`
	OfficeEndHour     int `mapstructure:"OFFICE_END_HOUR"`
	SlotMinutes       int `mapstructure:"SLOT_MINUTES"`
	ScheduleDaysAhead int `mapstructure:"SCHEDULE_DAYS_AHEAD"`

	// Specialist (read-only) schedule configuration.
	SpecialistSlotsPerDay int      `mapstructure:"SPECIALIST_SLOTS_PER_DAY"`
	Specialists           []string `mapstructure:"SPECIALISTS"`

	// Appointment reminder configuration.
	ReminderLeadMinutes int `mapstructure:"REMINDER_LEAD_MINUTES"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 3)
	viper.SetDefault("OFFICE_START_HOUR", 8)
	viper.SetDefault("OFFICE_END_HOUR", 17)
	viper.SetDefault("SLOT_MINUTES", 60)
	viper.SetDefault("SCHEDULE_DAYS_AHEAD", 7)
	viper.SetDefault("SPECIALIST_SLOTS_PER_DAY", 6)
	viper.SetDefault("SPECIALISTS", []string{"neurologist", "pulmonologist"})
	viper.SetDefault("REMINDER_LEAD_MINUTES", 60)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
