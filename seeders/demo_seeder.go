package seeders

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/shopspring/decimal"

	"inspections-console/internal/entities"
	"inspections-console/internal/repositories"
)

// Сроки оплаты и устранения отсчитываются от даты проверки.
const (
	paymentPeriodDays    = 30
	correctionPeriodDays = 60
)

type demoRepos struct {
	enterprises repositories.EnterpriseRepositoryInterface
	inspections repositories.InspectionRepositoryInterface
}

// seedDemo добавляет демонстрационные предприятия и проверки, если таблица предприятий пуста.
// Справочники должны быть заполнены заранее.
func seedDemo(ctx context.Context, repos demoRepos, inspectorIDs, violationTypeIDs []int) error {
	log.Println("  - Наполнение таблиц 'enterprises' и 'inspections'...")
	existing, err := repos.enterprises.GetEnterprises(ctx, 1)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Println("    - Пропуск: предприятия уже есть.")
		return nil
	}

	enterpriseIDs := make([]int, 0, len(demoEnterprisesData))
	for _, e := range demoEnterprisesData {
		created, err := repos.enterprises.CreateEnterprise(ctx, e)
		if err != nil {
			return err
		}
		enterpriseIDs = append(enterpriseIDs, created.EnterpriseID)
	}

	for _, d := range demoInspectionsData {
		if d.Inspector >= len(inspectorIDs) || d.ViolationType >= len(violationTypeIDs) {
			return fmt.Errorf("демо-проверка %s ссылается на отсутствующий справочник", d.Protocol)
		}
		date, err := time.Parse(entities.DateLayout, d.Date)
		if err != nil {
			return err
		}
		amount, err := decimal.NewFromString(d.PenaltyAmount)
		if err != nil {
			return err
		}

		if _, err := repos.inspections.CreateInspection(ctx, entities.Inspection{
			InspectorID:        inspectorIDs[d.Inspector],
			EnterpriseID:       enterpriseIDs[d.Enterprise],
			InspectionDate:     date,
			ProtocolNumber:     d.Protocol,
			ViolationTypeID:    violationTypeIDs[d.ViolationType],
			ResponsiblePerson:  d.ResponsiblePerson,
			PenaltyAmount:      amount,
			PaymentDeadline:    date.AddDate(0, 0, paymentPeriodDays),
			CorrectionDeadline: date.AddDate(0, 0, correctionPeriodDays),
			PaymentStatus:      null.NewString(d.PaymentStatus, d.PaymentStatus != ""),
			CorrectionStatus:   null.NewString(d.CorrectionStatus, d.CorrectionStatus != ""),
		}); err != nil {
			return err
		}
	}
	log.Printf("    - Добавлено предприятий: %d, проверок: %d.", len(enterpriseIDs), len(demoInspectionsData))
	return nil
}
