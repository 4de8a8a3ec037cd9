package utils

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"inspections-console/internal/dto"
)

var (
	errorColor  = color.New(color.FgRed)
	headerColor = color.New(color.FgCyan, color.Bold)
)

// PrintResult печатает заголовок операции, её записи и итоговое сообщение.
func PrintResult(w io.Writer, result *dto.ResultDTO) {
	if result == nil {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, result.Label)
	fmt.Fprintln(w)

	for _, section := range result.Sections {
		if section.Title != "" {
			fmt.Fprintln(w, section.Title)
		}
		fmt.Fprintln(w, "Записи:")
		for _, row := range section.Rows {
			fmt.Fprintln(w, row.String())
			fmt.Fprintln(w)
		}
	}

	if result.Message != "" {
		fmt.Fprintln(w, result.Message)
	}
}

func PrintError(w io.Writer, err error) {
	errorColor.Fprintf(w, "Ошибка: %v\n", err)
}

func PrintHeader(w io.Writer, text string) {
	headerColor.Fprintln(w, text)
}
