package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config содержит параметры приложения, читаемые из переменных окружения.
type Config struct {
	// Postgres (хранилище сохраненных мест и аккаунтов)
	DBHost string `envconfig:"DB_HOST" default:"localhost"`
	DBPort string `envconfig:"DB_PORT" default:"5432"`
	DBUser string `envconfig:"DB_USER" default:"cityhop"`
	DBPass string `envconfig:"DB_PASS" default:""`
	DBName string `envconfig:"DB_NAME" default:"cityhop"`

	// Локальная встраиваемая база бронирований
	SQLitePath string `envconfig:"SQLITE_PATH" default:"cityhop.db"`

	// HTTP API
	APIPort string `envconfig:"API_PORT" default:"8080"`

	// Telegram-бот (нужен только для cmd/bot)
	BotToken string `envconfig:"BOT_TOKEN" default:""`

	// JWT
	JWTSecret    string `envconfig:"JWT_SECRET" required:"true"`
	JWTExpireMin int    `envconfig:"JWT_EXPIRE_MIN" default:"60"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load читает конфигурацию из окружения; файл .env, если есть, подхватывается.
func Load() (Config, error) {
	_ = godotenv.Load()
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, fmt.Errorf("ошибка чтения конфигурации: %w", err)
	}
	return c, nil
}

// PostgresDSN собирает строку подключения к Postgres.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPass, c.DBName,
	)
}
