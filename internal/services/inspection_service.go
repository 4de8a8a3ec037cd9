package services

import (
	"context"
	"fmt"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"inspections-console/internal/dto"
	"inspections-console/internal/entities"
	"inspections-console/internal/repositories"
	"inspections-console/pkg/database"
	apperrors "inspections-console/pkg/errors"
)

// Заголовки операций в том виде, в каком их видит пользователь меню.
const (
	LabelSelectAll  = "Выборка всех данных из таблицы (один)"
	LabelFilter     = "Фильтрация данных из таблицы (один)"
	LabelGroup      = "Группировка данных (многие)"
	LabelJoin       = "Выборка данных из двух связанных таблиц (один-ко-многим)"
	LabelJoinFilter = "Фильтрация данных из двух связанных таблиц (один-ко-многим)"
	LabelInsertOne  = "Вставка данных в таблицу (один)"
	LabelInsertMany = "Вставка данных в таблицу (многие)"
	LabelDeleteOne  = "Удаление данных из таблицы (один)"
	LabelDeleteMany = "Удаление данных из таблицы (многие)"
	LabelUpdate     = "Обновление записей в таблице"
)

var (
	violationPenaltyThreshold = decimal.NewFromInt(3000)
	enterpriseTotalThreshold  = decimal.NewFromInt(50000)
	raisePenaltyThreshold     = decimal.NewFromInt(400000)

	// Исходное описание говорит об увеличении на 10%, но множитель всегда был 1.01.
	// Сохраняем фактическое поведение.
	penaltyGrowthFactor = decimal.RequireFromString("1.01")
)

type InspectionServiceInterface interface {
	SelectAllEnterprises(ctx context.Context) (*dto.ResultDTO, error)
	FilterViolationTypes(ctx context.Context) (*dto.ResultDTO, error)
	GroupInspectionsByViolationType(ctx context.Context) (*dto.ResultDTO, error)
	SelectEnterpriseInspections(ctx context.Context) (*dto.ResultDTO, error)
	FilterEnterprisePenaltyTotals(ctx context.Context) (*dto.ResultDTO, error)
	InsertEnterprise(ctx context.Context) (*dto.ResultDTO, error)
	InsertInspection(ctx context.Context) (*dto.ResultDTO, error)
	DeleteLastEnterprise(ctx context.Context) (*dto.ResultDTO, error)
	DeleteLastInspection(ctx context.Context) (*dto.ResultDTO, error)
	RaisePenaltiesForTopEnterprises(ctx context.Context) (*dto.ResultDTO, error)
}

type InspectionService struct {
	enterpriseRepo    repositories.EnterpriseRepositoryInterface
	inspectionRepo    repositories.InspectionRepositoryInterface
	violationTypeRepo repositories.ViolationTypeRepositoryInterface
	reportRepo        repositories.ReportRepositoryInterface
	txManager         repositories.TxManagerInterface
	logger            *zap.Logger
}

func NewInspectionService(
	enterpriseRepo repositories.EnterpriseRepositoryInterface,
	inspectionRepo repositories.InspectionRepositoryInterface,
	violationTypeRepo repositories.ViolationTypeRepositoryInterface,
	reportRepo repositories.ReportRepositoryInterface,
	txManager repositories.TxManagerInterface,
	logger *zap.Logger,
) InspectionServiceInterface {
	return &InspectionService{
		enterpriseRepo:    enterpriseRepo,
		inspectionRepo:    inspectionRepo,
		violationTypeRepo: violationTypeRepo,
		reportRepo:        reportRepo,
		txManager:         txManager,
		logger:            logger,
	}
}

// NewEnterprise — запись, которую добавляет пункт меню 6.
func NewEnterprise() entities.Enterprise {
	return entities.Enterprise{
		Name:          "ООО «Новые технологии»",
		OwnershipType: "Частная",
		Address:       "г. Гомель, ул. Советская, 15",
		DirectorName:  "Ковалёв Андрей Николаевич",
		DirectorPhone: "+375 29 123-45-67",
	}
}

// NewInspection — запись, которую добавляет пункт меню 7.
// Ссылается на предприятие, инспектора и вид нарушения с ID 1.
func NewInspection() entities.Inspection {
	return entities.Inspection{
		InspectorID:        1,
		EnterpriseID:       1,
		InspectionDate:     time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC),
		ProtocolNumber:     "П-2024-101",
		ViolationTypeID:    1,
		ResponsiblePerson:  "Сидоренко Ольга Петровна",
		PenaltyAmount:      decimal.RequireFromString("1500.00"),
		PaymentDeadline:    time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC),
		CorrectionDeadline: time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC),
		PaymentStatus:      null.StringFrom("Не оплачен"),
		CorrectionStatus:   null.StringFrom("Не исправлено"),
	}
}

func (s *InspectionService) SelectAllEnterprises(ctx context.Context) (*dto.ResultDTO, error) {
	enterprises, err := s.enterpriseRepo.GetEnterprises(ctx, repositories.DefaultLimit)
	if err != nil {
		return nil, err
	}
	return dto.NewResult(LabelSelectAll, dto.ToStringers(enterprises)), nil
}

func (s *InspectionService) FilterViolationTypes(ctx context.Context) (*dto.ResultDTO, error) {
	types, err := s.violationTypeRepo.GetViolationTypesAbovePenalty(ctx, violationPenaltyThreshold, repositories.DefaultLimit)
	if err != nil {
		return nil, err
	}
	return dto.NewResult(LabelFilter, dto.ToStringers(types)), nil
}

func (s *InspectionService) GroupInspectionsByViolationType(ctx context.Context) (*dto.ResultDTO, error) {
	groups, err := s.inspectionRepo.GroupByViolationType(ctx, repositories.DefaultLimit)
	if err != nil {
		return nil, err
	}
	return dto.NewResult(LabelGroup, dto.ToStringers(groups)), nil
}

func (s *InspectionService) SelectEnterpriseInspections(ctx context.Context) (*dto.ResultDTO, error) {
	items, err := s.reportRepo.GetEnterpriseInspectionDates(ctx, repositories.DefaultLimit)
	if err != nil {
		return nil, err
	}
	return dto.NewResult(LabelJoin, dto.ToStringers(items)), nil
}

func (s *InspectionService) FilterEnterprisePenaltyTotals(ctx context.Context) (*dto.ResultDTO, error) {
	totals, err := s.reportRepo.GetEnterprisePenaltyTotals(ctx, enterpriseTotalThreshold, repositories.DefaultLimit)
	if err != nil {
		return nil, err
	}
	return dto.NewResult(LabelJoinFilter, dto.ToStringers(totals)), nil
}

func (s *InspectionService) InsertEnterprise(ctx context.Context) (*dto.ResultDTO, error) {
	created, err := s.enterpriseRepo.CreateEnterprise(ctx, NewEnterprise())
	if err != nil {
		return nil, err
	}
	s.logger.Info("Добавлено предприятие", zap.Int("enterprise_id", created.EnterpriseID))

	last, err := s.enterpriseRepo.GetLastEnterprises(ctx, repositories.DefaultLimit)
	if err != nil {
		return nil, err
	}

	result := dto.NewResult(LabelInsertOne, []fmt.Stringer{created})
	return result.AddSection("Последние добавленные предприятия:", dto.ToStringers(last)), nil
}

func (s *InspectionService) InsertInspection(ctx context.Context) (*dto.ResultDTO, error) {
	created, err := s.inspectionRepo.CreateInspection(ctx, NewInspection())
	if err != nil {
		return nil, err
	}
	s.logger.Info("Добавлена проверка", zap.Int("inspection_id", created.InspectionID))

	last, err := s.inspectionRepo.GetLastInspections(ctx, repositories.DefaultLimit)
	if err != nil {
		return nil, err
	}

	result := dto.NewResult(LabelInsertMany, []fmt.Stringer{created})
	return result.AddSection("Последние добавленные проверки:", dto.ToStringers(last)), nil
}

func (s *InspectionService) DeleteLastEnterprise(ctx context.Context) (*dto.ResultDTO, error) {
	id, err := s.enterpriseRepo.DeleteLastEnterprise(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Удалено предприятие", zap.Int("enterprise_id", id))

	return &dto.ResultDTO{
		Label:   LabelDeleteOne,
		Message: fmt.Sprintf("Удалено предприятие с ID %d", id),
	}, nil
}

func (s *InspectionService) DeleteLastInspection(ctx context.Context) (*dto.ResultDTO, error) {
	id, err := s.inspectionRepo.DeleteLastInspection(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Удалена проверка", zap.Int("inspection_id", id))

	return &dto.ResultDTO{
		Label:   LabelDeleteMany,
		Message: fmt.Sprintf("Удалена проверка с ID %d", id),
	}, nil
}

// RaisePenaltiesForTopEnterprises умножает штрафы всех проверок предприятий,
// чья сумма штрафов больше порога. Выборка и обновление идут в одной транзакции.
func (s *InspectionService) RaisePenaltiesForTopEnterprises(ctx context.Context) (*dto.ResultDTO, error) {
	var (
		touched  []dto.EnterprisePenaltyTotalDTO
		affected int64
	)

	err := s.txManager.RunInTransaction(ctx, func(tx database.Tx) error {
		var err error
		touched, err = s.reportRepo.GetEnterprisesAbovePenalty(ctx, tx, raisePenaltyThreshold)
		if err != nil {
			return err
		}
		if len(touched) == 0 {
			return apperrors.ErrNothingToUpdate
		}

		ids := make([]int, 0, len(touched))
		for _, t := range touched {
			ids = append(ids, t.EnterpriseID)
		}
		affected, err = s.inspectionRepo.ScalePenalties(ctx, tx, ids, penaltyGrowthFactor)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Штрафы увеличены",
		zap.Int("enterprises", len(touched)),
		zap.Int64("inspections", affected),
		zap.String("factor", penaltyGrowthFactor.String()),
	)

	result := dto.NewResult(LabelUpdate, dto.ToStringers(touched))
	result.Message = fmt.Sprintf("Обновлены штрафы у %d предприятий", len(touched))
	return result, nil
}
