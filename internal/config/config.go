package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config содержит конфигурацию калькулятора
type Config struct {
	MaxPrincipal    float64
	MaxPayment      float64
	MaxMonths       int
	MaxRate         float64
	LogLevel        string
	LogFormat       string
	OTELEndpoint    string
	OTELServiceName string
	MetricsTextfile string
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig() (*Config, error) {
	// Загружаем .env файл, если он существует (игнорируем ошибку)
	_ = godotenv.Load()

	cfg := &Config{
		MaxPrincipal:    getEnvFloat("MAX_PRINCIPAL", 1e12),
		MaxPayment:      getEnvFloat("MAX_PAYMENT", 1e11),
		MaxMonths:       getEnvInt("MAX_MONTHS", 1200),
		MaxRate:         getEnvFloat("MAX_RATE", 1000),
		LogLevel:        getEnvString("LOG_LEVEL", "WARN"),
		LogFormat:       getEnvString("LOG_FORMAT", "text"),
		OTELEndpoint:    getEnvString("OTEL_ENDPOINT", ""),
		OTELServiceName: getEnvString("OTEL_SERVICE_NAME", "creditcalc"),
		MetricsTextfile: getEnvString("METRICS_TEXTFILE", ""),
	}

	return cfg, nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
