package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// ViolationTypePenaltyDTO — вид нарушения со штрафом выше порога.
type ViolationTypePenaltyDTO struct {
	ViolationTypeID  int             `json:"violation_type_id"`
	Name             string          `json:"name"`
	PenaltyAmount    decimal.Decimal `json:"penalty_amount"`
	CorrectionPeriod int             `json:"correction_period"`
}

func (d ViolationTypePenaltyDTO) String() string {
	return fmt.Sprintf("{ ViolationTypeId = %d, Name = %s, PenaltyAmount = %s, CorrectionPeriod = %d }",
		d.ViolationTypeID, d.Name, d.PenaltyAmount.StringFixed(2), d.CorrectionPeriod)
}

// ViolationTypeGroupDTO — агрегат проверок по виду нарушения.
type ViolationTypeGroupDTO struct {
	ViolationTypeID    int             `json:"violation_type_id"`
	InspectionCount    int             `json:"inspection_count"`
	TotalPenaltyAmount decimal.Decimal `json:"total_penalty_amount"`
}

func (d ViolationTypeGroupDTO) String() string {
	return fmt.Sprintf("{ ViolationTypeId = %d, InspectionCount = %d, TotalPenaltyAmount = %s }",
		d.ViolationTypeID, d.InspectionCount, d.TotalPenaltyAmount.StringFixed(2))
}

type EnterpriseInspectionDTO struct {
	EnterpriseName string    `json:"enterprise_name"`
	InspectionDate time.Time `json:"inspection_date"`
}

func (d EnterpriseInspectionDTO) String() string {
	return fmt.Sprintf("{ EnterpriseName = %s, InspectionDate = %s }",
		d.EnterpriseName, d.InspectionDate.Format(dateLayout))
}

// EnterprisePenaltyTotalDTO — число проверок и сумма штрафов предприятия.
type EnterprisePenaltyTotalDTO struct {
	EnterpriseID       int             `json:"enterprise_id"`
	EnterpriseName     string          `json:"enterprise_name"`
	InspectionCount    int             `json:"inspection_count"`
	TotalPenaltyAmount decimal.Decimal `json:"total_penalty_amount"`
}

func (d EnterprisePenaltyTotalDTO) String() string {
	return fmt.Sprintf("{ EnterpriseId = %d, EnterpriseName = %s, InspectionCount = %d, TotalPenaltyAmount = %s }",
		d.EnterpriseID, d.EnterpriseName, d.InspectionCount, d.TotalPenaltyAmount.StringFixed(2))
}
