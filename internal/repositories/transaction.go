package repositories

import (
	"context"
	"errors"
	"fmt"

	"inspections-console/pkg/database"
)

type TxManagerInterface interface {
	RunInTransaction(ctx context.Context, fn func(tx database.Tx) error) error
}

type TxManager struct {
	db database.DB
}

func NewTxManager(db database.DB) TxManagerInterface {
	return &TxManager{db: db}
}

// RunInTransaction выполняет fn в одной транзакции. Всё, что не дошло до
// коммита (ошибка fn или паника), откатывается.
func (m *TxManager) RunInTransaction(ctx context.Context, fn func(tx database.Tx) error) (err error) {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("не удалось начать транзакцию: %w", err)
	}

	committing := false
	defer func() {
		if committing {
			return
		}
		if rbErr := tx.Rollback(ctx); rbErr != nil && err != nil {
			err = errors.Join(err, fmt.Errorf("ошибка при откате транзакции: %w", rbErr))
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	committing = true
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("ошибка при коммите транзакции: %w", err)
	}
	return nil
}
