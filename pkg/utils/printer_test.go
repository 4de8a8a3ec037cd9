package utils

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"inspections-console/internal/dto"
)

type row string

func (r row) String() string { return string(r) }

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	result := dto.NewResult("Выборка", []fmt.Stringer{row("a"), row("b")})
	result.Message = "готово"

	PrintResult(&buf, result)

	assert.Equal(t, "\nВыборка\n\nЗаписи:\na\n\nb\n\nготово\n", buf.String())
}

func TestPrintResult_SectionsKeepOrder(t *testing.T) {
	var buf bytes.Buffer
	result := dto.NewResult("Вставка", []fmt.Stringer{row("new")}).
		AddSection("Последние:", []fmt.Stringer{row("3"), row("2")})

	PrintResult(&buf, result)

	assert.Equal(t, "\nВставка\n\nЗаписи:\nnew\n\nПоследние:\nЗаписи:\n3\n\n2\n\n", buf.String())
}

func TestPrintResult_MessageOnly(t *testing.T) {
	var buf bytes.Buffer
	PrintResult(&buf, &dto.ResultDTO{Label: "Удаление", Message: "Удалено"})
	assert.Equal(t, "\nУдаление\n\nУдалено\n", buf.String())

	buf.Reset()
	PrintResult(&buf, nil)
	assert.Empty(t, buf.String())
}

func TestPrintError(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	PrintError(&buf, errors.New("нет записей для удаления"))
	assert.Equal(t, "Ошибка: нет записей для удаления\n", buf.String())
}
