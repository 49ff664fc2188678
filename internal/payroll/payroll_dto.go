package payroll

type GeneratePayrollRequest struct {
	EmployeeID      int64   `json:"employee_id" binding:"required"`
	StartDate       string  `json:"start_date" binding:"required"`
	EndDate         string  `json:"end_date" binding:"required"`
	Bonus           float64 `json:"bonus" binding:"gte=0"`
	ExtraDeductions float64 `json:"extra_deductions" binding:"gte=0"`
}

type BulkGeneratePayrollRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

type GetPayrollsFilterRequest struct {
	EmployeeID int64  `form:"employee_id"`
	Period     string `form:"period"`
	Status     string `form:"status"`
}

type PayrollResponse struct {
	ID             int64   `json:"id"`
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
	ApprovedAt     *string `json:"approved_at,omitempty"`
	PaidAt         *string `json:"paid_at,omitempty"`
	HasPayslip     bool    `json:"has_payslip"`
}

type BulkGeneratePayrollResponse struct {
	Generated []PayrollResponse `json:"generated"`
	Skipped   []int64           `json:"skipped_employee_ids,omitempty"`
}
