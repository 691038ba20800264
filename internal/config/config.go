package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"strengthbot/internal/training"

	"github.com/joho/godotenv"
)

// Поддерживаемые драйверы базы данных
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

// Config содержит конфигурацию приложения
type Config struct {
	BotToken string
	BotDebug bool

	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPath     string // файл SQLite

	// Режим расчёта веса: диапазон или одно значение
	PrescriptionMode training.Mode
	// Внешний YAML-каталог упражнений, пусто = встроенный
	CatalogPath string
	// Формула оценки 1ПМ по подходу вида 80x5
	OneRepMaxFormula string

	LogMode string
}

// Load загружает конфигурацию из переменных окружения или .env файла
func Load() (*Config, error) {
	return LoadFrom(".env")
}

// LoadFrom загружает конфигурацию, используя указанный .env файл как запасной источник.
// Переменные окружения имеют приоритет над файлом.
func LoadFrom(envPath string) (*Config, error) {
	env, err := loadEnvFile(envPath)
	if err != nil {
		return nil, err
	}

	getEnv := func(key, defaultValue string) string {
		if value := os.Getenv(key); value != "" {
			return value
		}
		if value, ok := env[key]; ok && value != "" {
			return value
		}
		return defaultValue
	}

	mode, err := training.ParseMode(getEnv("PRESCRIPTION_MODE", string(training.ModeRange)))
	if err != nil {
		return nil, err
	}

	formula, err := training.ParseFormula(getEnv("ONEPM_FORMULA", training.FormulaBrzycki))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		BotToken: getEnv("BOT_TOKEN", ""),
		BotDebug: getEnv("BOT_DEBUG", "false") == "true",

		DBDriver:   getEnv("DB_DRIVER", DriverPostgres),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "postgres"),
		DBPath:     getEnv("DB_PATH", "gym_bot.db"),

		PrescriptionMode: mode,
		CatalogPath:      getEnv("CATALOG_PATH", ""),
		OneRepMaxFormula: formula,

		LogMode: getEnv("LOG_MODE", "dev"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет значения, не зависящие от запускаемой команды
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("неизвестный DB_DRIVER %q (ожидается %s или %s)", c.DBDriver, DriverPostgres, DriverSQLite)
	}
	return nil
}

// RequireBotToken проверяет наличие токена, нужного только для запуска бота
func (c *Config) RequireBotToken() error {
	if c.BotToken == "" {
		return fmt.Errorf("BOT_TOKEN не задан")
	}
	return nil
}

// DSN возвращает строку подключения к базе данных
func (c *Config) DSN() string {
	if c.DBDriver == DriverSQLite {
		return c.DBPath
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}

// LoadCatalog возвращает каталог упражнений: из CATALOG_PATH или встроенный
func (c *Config) LoadCatalog() (*training.Catalog, error) {
	if c.CatalogPath != "" {
		return training.LoadCatalogFile(c.CatalogPath)
	}
	return training.DefaultCatalog()
}

// loadEnvFile читает .env файл. Отсутствующий файл не считается ошибкой.
func loadEnvFile(filename string) (map[string]string, error) {
	env, err := godotenv.Read(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения %s: %w", filename, err)
	}
	return env, nil
}
