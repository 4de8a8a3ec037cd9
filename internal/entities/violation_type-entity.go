package entities

import "github.com/shopspring/decimal"

// ViolationType — справочник видов нарушений.
type ViolationType struct {
	ViolationTypeID  int             `json:"violation_type_id" db:"violation_type_id"`
	Name             string          `json:"name" db:"name"`
	PenaltyAmount    decimal.Decimal `json:"penalty_amount" db:"penalty_amount"`
	CorrectionPeriod int             `json:"correction_period" db:"correction_period"` // дней
}
