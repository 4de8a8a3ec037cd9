package seeders

import (
	"context"
	"log"

	"github.com/shopspring/decimal"

	"inspections-console/internal/entities"
	"inspections-console/internal/repositories"
)

// seedViolationTypes заполняет справочник только если он пуст.
func seedViolationTypes(ctx context.Context, repo repositories.ViolationTypeRepositoryInterface) error {
	log.Println("  - Наполнение таблицы 'violation_types'...")
	count, err := repo.CountViolationTypes(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Printf("    - Пропуск: уже есть %d записей.", count)
		return nil
	}

	for _, v := range violationTypesData {
		amount, err := decimal.NewFromString(v.PenaltyAmount)
		if err != nil {
			return err
		}
		if _, err := repo.CreateViolationType(ctx, entities.ViolationType{
			Name:             v.Name,
			PenaltyAmount:    amount,
			CorrectionPeriod: v.CorrectionPeriod,
		}); err != nil {
			return err
		}
	}
	return nil
}

func seedInspectors(ctx context.Context, repo repositories.InspectorRepositoryInterface) error {
	log.Println("  - Наполнение таблицы 'inspectors'...")
	count, err := repo.CountInspectors(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Printf("    - Пропуск: уже есть %d записей.", count)
		return nil
	}

	for _, name := range inspectorsData {
		if _, err := repo.CreateInspector(ctx, entities.Inspector{FullName: name}); err != nil {
			return err
		}
	}
	return nil
}
