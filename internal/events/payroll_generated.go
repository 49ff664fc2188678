package events

import "time"

const PayrollGeneratedTopic = "hr.payroll.generated.v1"

type PayrollGeneratedEvent struct {
	EventType   string    `json:"event_type"`
	PayrollID   int64     `json:"payroll_id"`
	EmployeeID  int64     `json:"employee_id"`
	Period      string    `json:"period"`
	NetSalary   float64   `json:"net_salary"`
	GeneratedAt time.Time `json:"generated_at"`
}
