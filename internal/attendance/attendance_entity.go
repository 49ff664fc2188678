package attendance

import (
	"time"

	"gorm.io/gorm"
)

// Attendance rows are deliberately not unique per (employee_id, date): split
// shifts are recorded as two rows and payroll sums them as entered.
type Attendance struct {
	ID            int64          `gorm:"primaryKey;autoIncrement"`
	EmployeeID    int64          `gorm:"column:employee_id;not null;index"`
	Date          time.Time      `gorm:"column:attendance_date;type:date;not null;index"`
	Status        string         `gorm:"type:varchar(20);not null;default:'Present'"`
	OvertimeHours float64        `gorm:"column:overtime_hours;not null;default:0"`
	Notes         *string        `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (Attendance) TableName() string {
	return "attendances"
}
