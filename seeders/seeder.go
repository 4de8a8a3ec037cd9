package seeders

import (
	"context"
	"log"

	"go.uber.org/zap"

	"inspections-console/internal/repositories"
	"inspections-console/pkg/database"
)

// SeedDictionaries наполняет справочники видов нарушений и инспекторов.
func SeedDictionaries(db database.DB, logger *zap.Logger) {
	ctx := context.Background()
	log.Println("▶️  Запуск наполнения справочников...")

	if err := seedViolationTypes(ctx, repositories.NewViolationTypeRepository(db, logger)); err != nil {
		log.Fatalf("❌ Ошибка наполнения Видов нарушений (ViolationTypes): %v", err)
	}
	if err := seedInspectors(ctx, repositories.NewInspectorRepository(db, logger)); err != nil {
		log.Fatalf("❌ Ошибка наполнения Инспекторов (Inspectors): %v", err)
	}
	log.Println("✅ Наполнение справочников завершено!")
}

// SeedDemo добавляет предприятия и проверки для демонстрации пунктов меню.
func SeedDemo(db database.DB, logger *zap.Logger) {
	ctx := context.Background()
	log.Println("▶️  Запуск наполнения демонстрационных данных...")

	inspectorIDs, err := repositories.NewInspectorRepository(db, logger).GetInspectorIDs(ctx)
	if err != nil {
		log.Fatalf("❌ Ошибка чтения Инспекторов: %v", err)
	}
	violationTypeIDs, err := repositories.NewViolationTypeRepository(db, logger).GetViolationTypeIDs(ctx)
	if err != nil {
		log.Fatalf("❌ Ошибка чтения Видов нарушений: %v", err)
	}

	repos := demoRepos{
		enterprises: repositories.NewEnterpriseRepository(db, logger),
		inspections: repositories.NewInspectionRepository(db, logger),
	}
	if err := seedDemo(ctx, repos, inspectorIDs, violationTypeIDs); err != nil {
		log.Fatalf("❌ Ошибка наполнения демонстрационных данных: %v", err)
	}
	log.Println("✅ Демонстрационные данные готовы!")
}
