package paycalc

// Attendance status values. Exactly one per record; anything else contributes
// nothing to base salary.
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
	StatusLate    = "Late"
	StatusHalfDay = "Half-day"
	StatusOnLeave = "On Leave"
)

// Employee status values.
const (
	EmployeeActive   = "Active"
	EmployeeInactive = "Inactive"
)

// Payroll workflow status values. The calculators never advance the workflow;
// the status is supplied by the caller and carried through.
const (
	PayrollDraft    = "Draft"
	PayrollPending  = "Pending"
	PayrollApproved = "Approved"
	PayrollPaid     = "Paid"
)

// AttendanceRecord is the read-only input of the calculators. Date is the
// ISO 8601 calendar date the record applies to; a date that does not parse is
// treated as out of every period rather than rejected.
type AttendanceRecord struct {
	EmployeeID int64   `json:"employee_id"`
	Date       string  `json:"date"`
	Status     string  `json:"status"`
	Overtime   float64 `json:"overtime"`
}

// EmployeeInfo carries the only employee fields payroll computation consumes.
// A missing salary is a zero salary, never an error.
type EmployeeInfo struct {
	ID     int64   `json:"id"`
	Salary float64 `json:"salary"`
	Status string  `json:"status"`
}

// PayrollRecord is the computed output for one employee and one period.
// NetSalary is always derived, never set independently.
type PayrollRecord struct {
	EmployeeID     int64   `json:"employee_id"`
	Period         string  `json:"period"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	BaseSalary     float64 `json:"base_salary"`
	OvertimePay    float64 `json:"overtime_pay"`
	Bonus          float64 `json:"bonus"`
	Deductions     float64 `json:"deductions"`
	TaxWithholding float64 `json:"tax_withholding"`
	NetSalary      float64 `json:"net_salary"`
	Status         string  `json:"status"`
}
