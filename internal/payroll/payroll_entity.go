package payroll

import (
	"time"

	"gorm.io/gorm"
)

// Payroll persists one computed paycalc.PayrollRecord per employee per
// period, plus the workflow audit trail the calculators know nothing about.
type Payroll struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	EmployeeID int64 `gorm:"column:employee_id;not null;index:idx_employee_period"`

	Period      string    `gorm:"type:varchar(7);not null;index"`
	PeriodStart time.Time `gorm:"column:period_start;type:date;not null;index:idx_employee_period"`
	PeriodEnd   time.Time `gorm:"column:period_end;type:date;not null;index:idx_employee_period"`

	BaseSalary     float64 `gorm:"column:base_salary;not null;default:0"`
	OvertimePay    float64 `gorm:"column:overtime_pay;not null;default:0"`
	Bonus          float64 `gorm:"not null;default:0"`
	Deductions     float64 `gorm:"not null;default:0"`
	TaxWithholding float64 `gorm:"column:tax_withholding;not null;default:0"`
	NetSalary      float64 `gorm:"column:net_salary;not null;default:0"`

	Status     string     `gorm:"type:varchar(20);not null;default:'Draft';index"`
	ApprovedAt *time.Time `gorm:"index"`
	PaidAt     *time.Time `gorm:"index"`

	PayslipPDF         []byte     `gorm:"column:payslip_pdf;type:bytea"`
	PayslipGeneratedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Payroll) TableName() string {
	return "payrolls"
}
