package main

import (
	"context"
	"flag"
	"log"

	"go.uber.org/zap"

	"inspections-console/pkg/config"
	"inspections-console/pkg/database"
	"inspections-console/seeders"
)

func main() {
	log.Println("======================================================")
	log.Println("       🌱 СИСТЕМА СИДЕРОВ (Наполнение БД)           ")
	log.Println("======================================================")

	// --- Определяем флаги ---
	runDictionaries := flag.Bool("dictionaries", false, "Наполнить справочники (виды нарушений, инспекторы)")
	runDemo := flag.Bool("demo", false, "Добавить демонстрационные предприятия и проверки")
	runAll := flag.Bool("all", false, "Запустить все сидеры (эквивалентно -dictionaries -demo)")

	flag.Parse()

	if !*runDictionaries && !*runDemo && !*runAll {
		log.Println("❌ Не выбран ни один сидер для запуска.")
		log.Println("")
		log.Println("Доступные флаги:")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Примеры использования:")
		log.Println("  go run ./seeders/cmd/seed -dictionaries")
		log.Println("  go run ./seeders/cmd/seed -all")
		log.Println("======================================================")
		return
	}

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("❌ Ошибка конфигурации: %v", err)
	}
	log.Printf("📦 Подключение: %s (%s)", cfg.Database.ConnectionName, cfg.Database.Dialect)

	dbConn, err := database.Connect(context.Background(), cfg.Database)
	if err != nil {
		log.Fatalf("❌ Не удалось подключиться к БД: %v", err)
	}
	defer dbConn.Close()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("❌ Не удалось создать логгер: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	log.Println("======================================================")

	// Демо-данные ссылаются на справочники, поэтому порядок важен
	if *runAll || *runDictionaries {
		seeders.SeedDictionaries(dbConn, logger)
		log.Println("======================================================")
	}
	if *runAll || *runDemo {
		seeders.SeedDemo(dbConn, logger)
		log.Println("======================================================")
	}

	log.Println("✅ Все указанные операции сидирования успешно завершены.")
	log.Println("======================================================")
}
