// Файл: main.go

package main

import (
	"context"
	"log"
	"os"

	"go.uber.org/zap"

	"inspections-console/internal/routes"
	"inspections-console/pkg/config"
	"inspections-console/pkg/database"
	applogger "inspections-console/pkg/logger"
	"inspections-console/pkg/utils"
)

func main() {
	// 1. Конфигурация: без строки подключения работать нельзя
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Ошибка конфигурации: %v", err)
	}

	// 2. Логгер пишет в файл, консоль остаётся меню
	logger, err := applogger.NewLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Не удалось создать логгер: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Запуск",
		zap.String("connection", cfg.Database.ConnectionName),
		zap.String("dialect", cfg.Database.Dialect),
	)

	// 3. Одно соединение на весь сеанс
	ctx := context.Background()
	dbConn, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		utils.PrintError(os.Stderr, err)
		logger.Fatal("Не удалось подключиться к БД", zap.Error(err))
	}
	defer dbConn.Close()

	// 4. Меню
	menu := routes.InitRouter(dbConn, logger, os.Stdin, os.Stdout)
	if err := menu.Run(ctx); err != nil {
		utils.PrintError(os.Stderr, err)
		dbConn.Close()
		logger.Fatal("Работа прервана ошибкой хранилища", zap.Error(err))
	}

	logger.Info("Завершение работы")
}
