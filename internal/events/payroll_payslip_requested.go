package events

import "time"

const PayrollPayslipRequestedTopic = "hr.payroll.payslip.requested.v1"

type PayrollPayslipRequestedEvent struct {
	EventType  string    `json:"event_type"`
	PayrollID  int64     `json:"payroll_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
