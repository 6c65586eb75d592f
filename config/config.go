package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`

	// Clinic schedule configuration (minutes from midnight unless noted).
	WorkDayStartMinute int `mapstructure:"WORKDAY_START_MINUTE"`
	WorkDayEndMinute   int `mapstructure:"WORKDAY_END_MINUTE"`
	LunchStartMinute   int `mapstructure:"LUNCH_START_MINUTE"`
	LunchEndMinute     int `mapstructure:"LUNCH_END_MINUTE"`
	SlotGridMinutes    int `mapstructure:"SLOT_GRID_MINUTES"`
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
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "clinagenda")

	// Clinic working day 07:00-21:00, lunch 13:00-15:00, 15-minute slot grid.
	viper.SetDefault("WORKDAY_START_MINUTE", 7*60)
	viper.SetDefault("WORKDAY_END_MINUTE", 21*60)
	viper.SetDefault("LUNCH_START_MINUTE", 13*60)
	viper.SetDefault("LUNCH_END_MINUTE", 15*60)
	viper.SetDefault("SLOT_GRID_MINUTES", 15)

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
