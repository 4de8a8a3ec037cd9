package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/shopspring/decimal"
)

const DateLayout = "2006-01-02"

type Inspection struct {
	InspectionID       int             `json:"inspection_id" db:"inspection_id"`
	InspectorID        int             `json:"inspector_id" db:"inspector_id"`
	EnterpriseID       int             `json:"enterprise_id" db:"enterprise_id"`
	InspectionDate     time.Time       `json:"inspection_date" db:"inspection_date"`
	ProtocolNumber     string          `json:"protocol_number" db:"protocol_number"`
	ViolationTypeID    int             `json:"violation_type_id" db:"violation_type_id"`
	ResponsiblePerson  string          `json:"responsible_person" db:"responsible_person"`
	PenaltyAmount      decimal.Decimal `json:"penalty_amount" db:"penalty_amount"`
	PaymentDeadline    time.Time       `json:"payment_deadline" db:"payment_deadline"`
	CorrectionDeadline time.Time       `json:"correction_deadline" db:"correction_deadline"`
	PaymentStatus      null.String     `json:"payment_status" db:"payment_status"`
	CorrectionStatus   null.String     `json:"correction_status" db:"correction_status"`
}

func (i Inspection) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Inspection ID: %d\n", i.InspectionID)
	fmt.Fprintf(&b, "Inspector ID: %d\n", i.InspectorID)
	fmt.Fprintf(&b, "Enterprise ID: %d\n", i.EnterpriseID)
	fmt.Fprintf(&b, "Inspection Date: %s\n", i.InspectionDate.Format(DateLayout))
	fmt.Fprintf(&b, "Protocol Number: %s\n", i.ProtocolNumber)
	fmt.Fprintf(&b, "Violation Type ID: %d\n", i.ViolationTypeID)
	fmt.Fprintf(&b, "Responsible Person: %s\n", i.ResponsiblePerson)
	fmt.Fprintf(&b, "Penalty Amount: %s\n", i.PenaltyAmount.StringFixed(2))
	fmt.Fprintf(&b, "Payment Deadline: %s\n", i.PaymentDeadline.Format(DateLayout))
	fmt.Fprintf(&b, "Correction Deadline: %s\n", i.CorrectionDeadline.Format(DateLayout))
	fmt.Fprintf(&b, "Payment Status: %s\n", i.PaymentStatus.String)
	fmt.Fprintf(&b, "Correction Status: %s", i.CorrectionStatus.String)
	return b.String()
}
