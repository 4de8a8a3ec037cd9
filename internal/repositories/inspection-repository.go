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
	apperrors "inspections-console/pkg/errors"
)

const (
	inspectionTable = "inspections"
	inspectionID    = "inspection_id"
)

var inspectionFields = []string{
	"inspection_id", "inspector_id", "enterprise_id", "inspection_date", "protocol_number",
	"violation_type_id", "responsible_person", "penalty_amount", "payment_deadline",
	"correction_deadline", "payment_status", "correction_status",
}

type InspectionRepositoryInterface interface {
	GetLastInspections(ctx context.Context, limit uint64) ([]entities.Inspection, error)
	GetEnterpriseInspections(ctx context.Context, enterpriseID int) ([]entities.Inspection, error)
	FindInspection(ctx context.Context, id int) (*entities.Inspection, error)
	CreateInspection(ctx context.Context, inspection entities.Inspection) (*entities.Inspection, error)
	DeleteLastInspection(ctx context.Context) (int, error)
	GroupByViolationType(ctx context.Context, limit uint64) ([]dto.ViolationTypeGroupDTO, error)
	ScalePenalties(ctx context.Context, q database.Querier, enterpriseIDs []int, factor decimal.Decimal) (int64, error)
}

type inspectionRepository struct {
	storage   database.DB
	txManager TxManagerInterface
	logger    *zap.Logger
}

func NewInspectionRepository(storage database.DB, logger *zap.Logger) InspectionRepositoryInterface {
	return &inspectionRepository{storage: storage, txManager: NewTxManager(storage), logger: logger}
}

func scanInspection(row database.Row) (entities.Inspection, error) {
	var i entities.Inspection
	err := row.Scan(
		&i.InspectionID, &i.InspectorID, &i.EnterpriseID, &i.InspectionDate, &i.ProtocolNumber,
		&i.ViolationTypeID, &i.ResponsiblePerson, &i.PenaltyAmount, &i.PaymentDeadline,
		&i.CorrectionDeadline, &i.PaymentStatus, &i.CorrectionStatus,
	)
	return i, err
}

func buildGetLastInspectionsQuery(d database.Dialect, n uint64) (string, []interface{}, error) {
	b := statement(d).Select(inspectionFields...).From(inspectionTable).OrderBy(inspectionID + " DESC")
	return limit(b, d, n).ToSql()
}

func buildCreateInspectionQuery(d database.Dialect, i entities.Inspection) (string, []interface{}, error) {
	b := statement(d).Insert(inspectionTable).
		Columns(inspectionFields[1:]...).
		Values(
			i.InspectorID, i.EnterpriseID, i.InspectionDate, i.ProtocolNumber,
			i.ViolationTypeID, i.ResponsiblePerson, money(i.PenaltyAmount), i.PaymentDeadline,
			i.CorrectionDeadline, i.PaymentStatus, i.CorrectionStatus,
		)
	return returningID(b, d, inspectionID).ToSql()
}

// buildGroupByViolationTypeQuery — агрегат считается в СУБД, порядок групп не определён.
func buildGroupByViolationTypeQuery(d database.Dialect, n uint64) (string, []interface{}, error) {
	b := statement(d).
		Select("violation_type_id", "COUNT(*) AS inspection_count", "SUM(penalty_amount) AS total_penalty_amount").
		From(inspectionTable).
		GroupBy("violation_type_id")
	return limit(b, d, n).ToSql()
}

func buildScalePenaltiesQuery(d database.Dialect, enterpriseIDs []int, factor decimal.Decimal) (string, []interface{}, error) {
	return statement(d).Update(inspectionTable).
		Set("penalty_amount", sq.Expr("penalty_amount * CAST(? AS decimal(9,4))", factor.String())).
		Where(sq.Eq{enterpriseID: enterpriseIDs}).
		ToSql()
}

func (r *inspectionRepository) GetLastInspections(ctx context.Context, n uint64) ([]entities.Inspection, error) {
	query, args, err := buildGetLastInspectionsQuery(r.storage.Dialect(), n)
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("выборка проверок: %w", err)
	}
	return collect(rows, scanInspection)
}

func (r *inspectionRepository) GetEnterpriseInspections(ctx context.Context, id int) ([]entities.Inspection, error) {
	query, args, err := statement(r.storage.Dialect()).
		Select(inspectionFields...).
		From(inspectionTable).
		Where(sq.Eq{enterpriseID: id}).
		OrderBy(inspectionID).
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("выборка проверок предприятия %d: %w", id, err)
	}
	return collect(rows, scanInspection)
}

func (r *inspectionRepository) FindInspection(ctx context.Context, id int) (*entities.Inspection, error) {
	query, args, err := statement(r.storage.Dialect()).
		Select(inspectionFields...).
		From(inspectionTable).
		Where(sq.Eq{inspectionID: id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	i, err := scanInspection(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		if database.IsNoRows(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &i, nil
}

// CreateInspection не проверяет существование связанных записей: висячий внешний ключ отклонит СУБД.
func (r *inspectionRepository) CreateInspection(ctx context.Context, i entities.Inspection) (*entities.Inspection, error) {
	query, args, err := buildCreateInspectionQuery(r.storage.Dialect(), i)
	if err != nil {
		return nil, err
	}
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&i.InspectionID); err != nil {
		return nil, fmt.Errorf("вставка проверки: %w", err)
	}
	r.logger.Debug("проверка добавлена", zap.Int("inspection_id", i.InspectionID))
	return &i, nil
}

func (r *inspectionRepository) DeleteLastInspection(ctx context.Context) (int, error) {
	d := r.storage.Dialect()
	var id int

	err := r.txManager.RunInTransaction(ctx, func(tx database.Tx) error {
		query, args, err := limit(statement(d).Select(inspectionID).From(inspectionTable).OrderBy(inspectionID+" DESC"), d, 1).ToSql()
		if err != nil {
			return err
		}
		if err := tx.QueryRow(ctx, query, args...).Scan(&id); err != nil {
			if database.IsNoRows(err) {
				return apperrors.ErrNothingToDelete
			}
			return err
		}

		query, args, err = statement(d).Delete(inspectionTable).Where(sq.Eq{inspectionID: id}).ToSql()
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, query, args...)
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *inspectionRepository) GroupByViolationType(ctx context.Context, n uint64) ([]dto.ViolationTypeGroupDTO, error) {
	query, args, err := buildGroupByViolationTypeQuery(r.storage.Dialect(), n)
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("группировка проверок: %w", err)
	}
	return collect(rows, func(row database.Row) (dto.ViolationTypeGroupDTO, error) {
		var g dto.ViolationTypeGroupDTO
		err := row.Scan(&g.ViolationTypeID, &g.InspectionCount, &g.TotalPenaltyAmount)
		return g, err
	})
}

// ScalePenalties умножает штраф каждой проверки указанных предприятий на factor одним UPDATE.
func (r *inspectionRepository) ScalePenalties(ctx context.Context, q database.Querier, enterpriseIDs []int, factor decimal.Decimal) (int64, error) {
	if len(enterpriseIDs) == 0 {
		return 0, nil
	}
	query, args, err := buildScalePenaltiesQuery(r.storage.Dialect(), enterpriseIDs, factor)
	if err != nil {
		return 0, err
	}
	affected, err := q.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("обновление штрафов: %w", err)
	}
	return affected, nil
}
