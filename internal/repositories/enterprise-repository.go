package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"inspections-console/internal/entities"
	"inspections-console/pkg/database"
	apperrors "inspections-console/pkg/errors"
)

const (
	enterpriseTable = "enterprises"
	enterpriseID    = "enterprise_id"
)

var enterpriseFields = []string{"enterprise_id", "name", "ownership_type", "address", "director_name", "director_phone"}

type EnterpriseRepositoryInterface interface {
	GetEnterprises(ctx context.Context, limit uint64) ([]entities.Enterprise, error)
	GetLastEnterprises(ctx context.Context, limit uint64) ([]entities.Enterprise, error)
	FindEnterprise(ctx context.Context, id int) (*entities.Enterprise, error)
	CreateEnterprise(ctx context.Context, enterprise entities.Enterprise) (*entities.Enterprise, error)
	DeleteLastEnterprise(ctx context.Context) (int, error)
}

type enterpriseRepository struct {
	storage   database.DB
	txManager TxManagerInterface
	logger    *zap.Logger
}

func NewEnterpriseRepository(storage database.DB, logger *zap.Logger) EnterpriseRepositoryInterface {
	return &enterpriseRepository{storage: storage, txManager: NewTxManager(storage), logger: logger}
}

func scanEnterprise(row database.Row) (entities.Enterprise, error) {
	var e entities.Enterprise
	err := row.Scan(&e.EnterpriseID, &e.Name, &e.OwnershipType, &e.Address, &e.DirectorName, &e.DirectorPhone)
	return e, err
}

func buildGetEnterprisesQuery(d database.Dialect, n uint64) (string, []interface{}, error) {
	b := statement(d).Select(enterpriseFields...).From(enterpriseTable)
	return limit(b, d, n).ToSql()
}

func buildGetLastEnterprisesQuery(d database.Dialect, n uint64) (string, []interface{}, error) {
	b := statement(d).Select(enterpriseFields...).From(enterpriseTable).OrderBy(enterpriseID + " DESC")
	return limit(b, d, n).ToSql()
}

func buildCreateEnterpriseQuery(d database.Dialect, e entities.Enterprise) (string, []interface{}, error) {
	b := statement(d).Insert(enterpriseTable).
		Columns(enterpriseFields[1:]...).
		Values(e.Name, e.OwnershipType, e.Address, e.DirectorName, e.DirectorPhone)
	return returningID(b, d, enterpriseID).ToSql()
}

func (r *enterpriseRepository) GetEnterprises(ctx context.Context, n uint64) ([]entities.Enterprise, error) {
	query, args, err := buildGetEnterprisesQuery(r.storage.Dialect(), n)
	if err != nil {
		return nil, err
	}
	return r.list(ctx, query, args)
}

func (r *enterpriseRepository) GetLastEnterprises(ctx context.Context, n uint64) ([]entities.Enterprise, error) {
	query, args, err := buildGetLastEnterprisesQuery(r.storage.Dialect(), n)
	if err != nil {
		return nil, err
	}
	return r.list(ctx, query, args)
}

func (r *enterpriseRepository) list(ctx context.Context, query string, args []interface{}) ([]entities.Enterprise, error) {
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("выборка предприятий: %w", err)
	}
	return collect(rows, scanEnterprise)
}

func (r *enterpriseRepository) FindEnterprise(ctx context.Context, id int) (*entities.Enterprise, error) {
	query, args, err := statement(r.storage.Dialect()).
		Select(enterpriseFields...).
		From(enterpriseTable).
		Where(sq.Eq{enterpriseID: id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	e, err := scanEnterprise(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		if database.IsNoRows(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *enterpriseRepository) CreateEnterprise(ctx context.Context, e entities.Enterprise) (*entities.Enterprise, error) {
	query, args, err := buildCreateEnterpriseQuery(r.storage.Dialect(), e)
	if err != nil {
		return nil, err
	}
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&e.EnterpriseID); err != nil {
		return nil, fmt.Errorf("вставка предприятия: %w", err)
	}
	r.logger.Debug("предприятие добавлено", zap.Int("enterprise_id", e.EnterpriseID))
	return &e, nil
}

// DeleteLastEnterprise удаляет предприятие с наибольшим ID.
// Предприятие, у которого есть проверки, не удаляется.
func (r *enterpriseRepository) DeleteLastEnterprise(ctx context.Context) (int, error) {
	d := r.storage.Dialect()
	var id int

	err := r.txManager.RunInTransaction(ctx, func(tx database.Tx) error {
		query, args, err := limit(statement(d).Select(enterpriseID).From(enterpriseTable).OrderBy(enterpriseID+" DESC"), d, 1).ToSql()
		if err != nil {
			return err
		}
		if err := tx.QueryRow(ctx, query, args...).Scan(&id); err != nil {
			if database.IsNoRows(err) {
				return apperrors.ErrNothingToDelete
			}
			return err
		}

		query, args, err = statement(d).Select("COUNT(*)").From(inspectionTable).Where(sq.Eq{enterpriseID: id}).ToSql()
		if err != nil {
			return err
		}
		var owned int
		if err := tx.QueryRow(ctx, query, args...).Scan(&owned); err != nil {
			return err
		}
		if owned > 0 {
			return fmt.Errorf("предприятие с ID %d (проверок: %d): %w", id, owned, apperrors.ErrEnterpriseHasInspections)
		}

		query, args, err = statement(d).Delete(enterpriseTable).Where(sq.Eq{enterpriseID: id}).ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			if database.IsForeignKeyViolation(err) {
				return fmt.Errorf("предприятие с ID %d: %w", id, apperrors.ErrEnterpriseHasInspections)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}
