// Package testdb поднимает PostgreSQL в контейнере для интеграционных тестов
// и накатывает на него схему через goose.
package testdb

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"sync"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib" // драйвер "pgx" для goose
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"inspections-console/pkg/database"
)

//go:embed migrations/*.sql
var migrations embed.FS

const truncateSQL = `TRUNCATE TABLE inspections, enterprises, inspectors, violation_types RESTART IDENTITY CASCADE`

var (
	once      sync.Once
	container *postgres.PostgresContainer
	dsn       string
	startErr  error
)

// New возвращает соединение с общим контейнером и пустыми таблицами.
// Тест пропускается в режиме -short и без Docker.
func New(t *testing.T) database.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("интеграционный тест пропущен в режиме -short")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	once.Do(func() {
		dsn, startErr = start(context.Background())
	})
	require.NoError(t, startErr)

	ctx := context.Background()
	db, err := database.ConnectPostgres(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	_, err = db.Exec(ctx, truncateSQL)
	require.NoError(t, err)
	return db
}

// Terminate останавливает контейнер; вызывается из TestMain.
func Terminate() {
	if container != nil {
		_ = container.Terminate(context.Background())
	}
}

func start(ctx context.Context) (string, error) {
	c, err := postgres.Run(ctx,
		"postgres:17-alpine",
		postgres.WithDatabase("inspections"),
		postgres.WithUsername("inspections"),
		postgres.WithPassword("inspections"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		return "", fmt.Errorf("запуск контейнера postgres: %w", err)
	}
	container = c

	connStr, err := c.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return "", err
	}
	if err := Migrate(connStr); err != nil {
		return "", err
	}
	return connStr, nil
}

// Migrate накатывает встроенные миграции на базу по строке подключения.
func Migrate(connStr string) error {
	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return err
	}
	defer db.Close()

	goose.SetBaseFS(migrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("миграции: %w", err)
	}
	return nil
}
