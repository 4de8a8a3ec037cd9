package repositories

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"inspections-console/internal/entities"
	"inspections-console/pkg/database"
)

const (
	inspectorTable = "inspectors"
	inspectorID    = "inspector_id"
)

type InspectorRepositoryInterface interface {
	CreateInspector(ctx context.Context, inspector entities.Inspector) (*entities.Inspector, error)
	CountInspectors(ctx context.Context) (int, error)
	GetInspectorIDs(ctx context.Context) ([]int, error)
}

type inspectorRepository struct {
	storage database.DB
	logger  *zap.Logger
}

func NewInspectorRepository(storage database.DB, logger *zap.Logger) InspectorRepositoryInterface {
	return &inspectorRepository{storage: storage, logger: logger}
}

func (r *inspectorRepository) CreateInspector(ctx context.Context, inspector entities.Inspector) (*entities.Inspector, error) {
	d := r.storage.Dialect()
	b := statement(d).Insert(inspectorTable).Columns("full_name").Values(inspector.FullName)
	query, args, err := returningID(b, d, inspectorID).ToSql()
	if err != nil {
		return nil, err
	}
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&inspector.InspectorID); err != nil {
		return nil, fmt.Errorf("вставка инспектора: %w", err)
	}
	return &inspector, nil
}

func (r *inspectorRepository) CountInspectors(ctx context.Context) (int, error) {
	return count(ctx, r.storage, inspectorTable)
}

func (r *inspectorRepository) GetInspectorIDs(ctx context.Context) ([]int, error) {
	return listIDs(ctx, r.storage, inspectorTable, inspectorID)
}
