// Файл: pkg/config/config.go
package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	apperrors "inspections-console/pkg/errors"
)

const (
	DefaultSettingsPath   = "appsettings.yaml"
	DefaultConnectionName = "InspectionsDb"
	DefaultLogOutput      = "logs/app.log"
)

const (
	DialectPostgres  = "postgres"
	DialectSQLServer = "sqlserver"
)

// settingsFile повторяет структуру appsettings.yaml.
type settingsFile struct {
	ConnectionStrings map[string]string `yaml:"connection_strings"`
	Database          struct {
		Connection string `yaml:"connection"`
		Dialect    string `yaml:"dialect"`
	} `yaml:"database"`
	Log struct {
		Level  string `yaml:"level"`
		Output string `yaml:"output"`
	} `yaml:"log"`
}

type DatabaseConfig struct {
	ConnectionName string
	DSN            string `validate:"required"`
	Dialect        string `validate:"required,oneof=postgres sqlserver"`
}

type LogConfig struct {
	Level  string `validate:"required,oneof=debug info warn error"`
	Output string `validate:"required"`
}

type Config struct {
	Database DatabaseConfig
	Log      LogConfig
}

// New читает .env (если есть), файл настроек и переменные окружения.
// Отсутствие строки подключения — фатальная ошибка запуска.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Предупреждение: .env файл не найден или не удалось его загрузить.")
	}
	return Load(getEnv("APP_SETTINGS", DefaultSettingsPath))
}

// Load собирает конфигурацию из указанного файла настроек с учётом переменных окружения.
func Load(path string) (*Config, error) {
	var settings settingsFile
	content, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(content, &settings); err != nil {
			return nil, fmt.Errorf("%w: не удалось разобрать %s: %v", apperrors.ErrConfig, path, err)
		}
	case os.IsNotExist(err):
		// Допустимо, если строка подключения передана через DATABASE_URL
	default:
		return nil, fmt.Errorf("%w: не удалось прочитать %s: %v", apperrors.ErrConfig, path, err)
	}

	name := getEnv("DB_CONNECTION", firstNonEmpty(settings.Database.Connection, DefaultConnectionName))
	dsn := getEnv("DATABASE_URL", settings.ConnectionStrings[name])
	if strings.TrimSpace(dsn) == "" {
		return nil, apperrors.NewInvalidConfigError("connection_strings."+name,
			"строка подключения '%s' не найдена в %s", name, path)
	}

	// Явно заданная СУБД важнее определения по строке подключения
	dialect := strings.ToLower(strings.TrimSpace(getEnv("DB_DIALECT", settings.Database.Dialect)))
	if dialect == "" {
		if dialect, err = DialectFromDSN(dsn); err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		Database: DatabaseConfig{
			ConnectionName: name,
			DSN:            dsn,
			Dialect:        dialect,
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", firstNonEmpty(settings.Log.Level, "info")),
			Output: getEnv("LOG_OUTPUT", firstNonEmpty(settings.Log.Output, DefaultLogOutput)),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrConfig, err)
	}
	return cfg, nil
}

// DialectFromDSN определяет СУБД по строке подключения: по схеме URL
// или по ключам строки вида "Server=...;Database=..." и "host=... dbname=...".
func DialectFromDSN(dsn string) (string, error) {
	if !strings.Contains(dsn, "://") {
		return dialectFromKeywords(dsn)
	}

	u, err := url.Parse(dsn)
	if err != nil || u.Scheme == "" {
		return "", apperrors.NewInvalidConfigError("dsn", "не удалось определить СУБД по строке подключения")
	}
	switch strings.ToLower(u.Scheme) {
	case "postgres", "postgresql":
		return DialectPostgres, nil
	case "sqlserver":
		return DialectSQLServer, nil
	default:
		return "", apperrors.NewInvalidConfigError("dsn", "неподдерживаемая СУБД: %s", u.Scheme)
	}
}

var (
	sqlServerKeys = map[string]bool{"server": true, "data source": true}
	postgresKeys  = map[string]bool{"host": true, "dbname": true}
)

// dialectFromKeywords разбирает ADO-строку (пары через ";") и строку libpq (пары через пробел).
func dialectFromKeywords(dsn string) (string, error) {
	for _, part := range strings.Split(dsn, ";") {
		key, _, found := strings.Cut(part, "=")
		if found && sqlServerKeys[strings.ToLower(strings.TrimSpace(key))] {
			return DialectSQLServer, nil
		}
	}
	for _, field := range strings.Fields(dsn) {
		key, _, found := strings.Cut(field, "=")
		if found && postgresKeys[strings.ToLower(key)] {
			return DialectPostgres, nil
		}
	}
	return "", apperrors.NewInvalidConfigError("dsn", "не удалось определить СУБД по строке подключения; укажите database.dialect")
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
