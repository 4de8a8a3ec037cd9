package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"inspections-console/internal/dto"
	"inspections-console/pkg/database"
)

// ReportRepositoryInterface — выборки по связке предприятие → проверки.
type ReportRepositoryInterface interface {
	GetEnterpriseInspectionDates(ctx context.Context, limit uint64) ([]dto.EnterpriseInspectionDTO, error)
	GetEnterprisePenaltyTotals(ctx context.Context, minTotal decimal.Decimal, limit uint64) ([]dto.EnterprisePenaltyTotalDTO, error)
	GetEnterprisesAbovePenalty(ctx context.Context, q database.Querier, threshold decimal.Decimal) ([]dto.EnterprisePenaltyTotalDTO, error)
}

type ReportRepository struct {
	storage database.DB
	logger  *zap.Logger
}

func NewReportRepository(storage database.DB, logger *zap.Logger) ReportRepositoryInterface {
	return &ReportRepository{storage: storage, logger: logger}
}

// Внутреннее соединение: предприятия без проверок не попадают.
func buildEnterpriseInspectionDatesQuery(d database.Dialect, n uint64) (string, []interface{}, error) {
	b := statement(d).
		Select("e.name", "i.inspection_date").
		From(enterpriseTable + " e").
		Join(inspectionTable + " i ON i.enterprise_id = e.enterprise_id")
	return limit(b, d, n).ToSql()
}

func penaltyTotals(d database.Dialect, join string) sq.SelectBuilder {
	return statement(d).
		Select(
			"e.enterprise_id",
			"e.name",
			"COUNT(i.inspection_id) AS inspection_count",
			"COALESCE(SUM(i.penalty_amount), 0) AS total_penalty_amount",
		).
		From(enterpriseTable + " e").
		JoinClause(join + " " + inspectionTable + " i ON i.enterprise_id = e.enterprise_id").
		GroupBy("e.enterprise_id", "e.name")
}

func buildEnterprisePenaltyTotalsQuery(d database.Dialect, minTotal decimal.Decimal, n uint64) (string, []interface{}, error) {
	b := penaltyTotals(d, "LEFT JOIN").
		Having("COUNT(i.inspection_id) > 0").
		Having(sq.Expr("COALESCE(SUM(i.penalty_amount), 0) > ?", money(minTotal))).
		OrderBy("total_penalty_amount DESC")
	return limit(b, d, n).ToSql()
}

func buildEnterprisesAbovePenaltyQuery(d database.Dialect, threshold decimal.Decimal) (string, []interface{}, error) {
	return penaltyTotals(d, "JOIN").
		Having(sq.Expr("SUM(i.penalty_amount) > ?", money(threshold))).
		OrderBy("e.enterprise_id").
		ToSql()
}

func scanPenaltyTotal(row database.Row) (dto.EnterprisePenaltyTotalDTO, error) {
	var t dto.EnterprisePenaltyTotalDTO
	err := row.Scan(&t.EnterpriseID, &t.EnterpriseName, &t.InspectionCount, &t.TotalPenaltyAmount)
	return t, err
}

func (r *ReportRepository) GetEnterpriseInspectionDates(ctx context.Context, n uint64) ([]dto.EnterpriseInspectionDTO, error) {
	query, args, err := buildEnterpriseInspectionDatesQuery(r.storage.Dialect(), n)
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("выборка предприятий с проверками: %w", err)
	}
	return collect(rows, func(row database.Row) (dto.EnterpriseInspectionDTO, error) {
		var item dto.EnterpriseInspectionDTO
		err := row.Scan(&item.EnterpriseName, &item.InspectionDate)
		return item, err
	})
}

func (r *ReportRepository) GetEnterprisePenaltyTotals(ctx context.Context, minTotal decimal.Decimal, n uint64) ([]dto.EnterprisePenaltyTotalDTO, error) {
	query, args, err := buildEnterprisePenaltyTotalsQuery(r.storage.Dialect(), minTotal, n)
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("фильтрация предприятий по штрафам: %w", err)
	}
	return collect(rows, scanPenaltyTotal)
}

// GetEnterprisesAbovePenalty выполняется через q, чтобы попасть в транзакцию обновления.
func (r *ReportRepository) GetEnterprisesAbovePenalty(ctx context.Context, q database.Querier, threshold decimal.Decimal) ([]dto.EnterprisePenaltyTotalDTO, error) {
	query, args, err := buildEnterprisesAbovePenaltyQuery(r.storage.Dialect(), threshold)
	if err != nil {
		return nil, err
	}
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("поиск предприятий для обновления: %w", err)
	}
	return collect(rows, scanPenaltyTotal)
}
