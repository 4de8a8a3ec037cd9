package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"inspections-console/internal/dto"
	"inspections-console/internal/entities"
	"inspections-console/pkg/database"
)

const (
	violationTypeTable = "violation_types"
	violationTypeID    = "violation_type_id"
)

type ViolationTypeRepositoryInterface interface {
	GetViolationTypesAbovePenalty(ctx context.Context, threshold decimal.Decimal, limit uint64) ([]dto.ViolationTypePenaltyDTO, error)
	CreateViolationType(ctx context.Context, vt entities.ViolationType) (*entities.ViolationType, error)
	CountViolationTypes(ctx context.Context) (int, error)
	GetViolationTypeIDs(ctx context.Context) ([]int, error)
}

type violationTypeRepository struct {
	storage database.DB
	logger  *zap.Logger
}

func NewViolationTypeRepository(storage database.DB, logger *zap.Logger) ViolationTypeRepositoryInterface {
	return &violationTypeRepository{storage: storage, logger: logger}
}

// buildViolationTypesAbovePenaltyQuery — строго больше порога: равный порогу штраф не попадает.
func buildViolationTypesAbovePenaltyQuery(d database.Dialect, threshold decimal.Decimal, n uint64) (string, []interface{}, error) {
	b := statement(d).
		Select(violationTypeID, "name", "penalty_amount", "correction_period").
		From(violationTypeTable).
		Where(sq.Expr("penalty_amount > ?", money(threshold)))
	return limit(b, d, n).ToSql()
}

func (r *violationTypeRepository) GetViolationTypesAbovePenalty(ctx context.Context, threshold decimal.Decimal, n uint64) ([]dto.ViolationTypePenaltyDTO, error) {
	query, args, err := buildViolationTypesAbovePenaltyQuery(r.storage.Dialect(), threshold, n)
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("фильтрация видов нарушений: %w", err)
	}
	return collect(rows, func(row database.Row) (dto.ViolationTypePenaltyDTO, error) {
		var v dto.ViolationTypePenaltyDTO
		err := row.Scan(&v.ViolationTypeID, &v.Name, &v.PenaltyAmount, &v.CorrectionPeriod)
		return v, err
	})
}

func (r *violationTypeRepository) CreateViolationType(ctx context.Context, vt entities.ViolationType) (*entities.ViolationType, error) {
	d := r.storage.Dialect()
	b := statement(d).Insert(violationTypeTable).
		Columns("name", "penalty_amount", "correction_period").
		Values(vt.Name, money(vt.PenaltyAmount), vt.CorrectionPeriod)
	query, args, err := returningID(b, d, violationTypeID).ToSql()
	if err != nil {
		return nil, err
	}
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&vt.ViolationTypeID); err != nil {
		return nil, fmt.Errorf("вставка вида нарушения: %w", err)
	}
	return &vt, nil
}

func (r *violationTypeRepository) CountViolationTypes(ctx context.Context) (int, error) {
	return count(ctx, r.storage, violationTypeTable)
}

func (r *violationTypeRepository) GetViolationTypeIDs(ctx context.Context) ([]int, error) {
	return listIDs(ctx, r.storage, violationTypeTable, violationTypeID)
}

func count(ctx context.Context, q database.Querier, table string) (int, error) {
	query, args, err := sq.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, err
	}
	var total int
	if err := q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("подсчёт строк %s: %w", table, err)
	}
	return total, nil
}

// listIDs возвращает все идентификаторы таблицы по возрастанию.
func listIDs(ctx context.Context, q database.Querier, table, idColumn string) ([]int, error) {
	query, args, err := sq.Select(idColumn).From(table).OrderBy(idColumn).ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("выборка идентификаторов %s: %w", table, err)
	}
	return collect(rows, func(row database.Row) (int, error) {
		var id int
		err := row.Scan(&id)
		return id, err
	})
}
