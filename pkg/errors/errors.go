package errors

import (
	"errors"
	"fmt"
)

var (
	// Конфигурация
	ErrConfig = fmt.Errorf("ошибка конфигурации")

	// Общие
	ErrNotFound = fmt.Errorf("запись не найдена")

	// Операции меню: сообщаются пользователю, цикл меню продолжается
	ErrNothingToDelete          = fmt.Errorf("нет записей для удаления")
	ErrNothingToUpdate          = fmt.Errorf("нет записей для обновления")
	ErrEnterpriseHasInspections = fmt.Errorf("у предприятия есть проверки, удаление запрещено")
)

// IsUserFacing сообщает, что ошибку нужно показать пользователю и вернуться в меню.
// Всё остальное (ошибки хранилища) завершает программу.
func IsUserFacing(err error) bool {
	return errors.Is(err, ErrNothingToDelete) ||
		errors.Is(err, ErrNothingToUpdate) ||
		errors.Is(err, ErrEnterpriseHasInspections)
}

// Кастомные типы ошибок
type InvalidConfigError struct {
	Field   string
	Message string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *InvalidConfigError) Unwrap() error { return ErrConfig }

func NewInvalidConfigError(field, format string, args ...interface{}) error {
	return &InvalidConfigError{Field: field, Message: fmt.Sprintf(format, args...)}
}
