package dto

import "fmt"

// SectionDTO — именованный набор строк внутри результата операции.
type SectionDTO struct {
	Title string
	Rows  []fmt.Stringer
}

// ResultDTO — то, что операция меню отдаёт на печать: заголовок, строки и итоговое сообщение.
type ResultDTO struct {
	Label    string
	Sections []SectionDTO
	Message  string
}

func NewResult(label string, rows []fmt.Stringer) *ResultDTO {
	return &ResultDTO{Label: label, Sections: []SectionDTO{{Rows: rows}}}
}

// AddSection дописывает секцию и возвращает сам результат.
func (r *ResultDTO) AddSection(title string, rows []fmt.Stringer) *ResultDTO {
	r.Sections = append(r.Sections, SectionDTO{Title: title, Rows: rows})
	return r
}

// Rows возвращает строки всех секций подряд.
func (r *ResultDTO) Rows() []fmt.Stringer {
	var all []fmt.Stringer
	for _, s := range r.Sections {
		all = append(all, s.Rows...)
	}
	return all
}

// ToStringers приводит срез строк конкретного типа к []fmt.Stringer.
func ToStringers[T fmt.Stringer](items []T) []fmt.Stringer {
	out := make([]fmt.Stringer, 0, len(items))
	for _, item := range items {
		out = append(out, item)
	}
	return out
}
