package employee

import (
	"time"

	"gorm.io/gorm"
)

type Employee struct {
	ID            int64          `gorm:"primaryKey;autoIncrement"`
	FullName      string         `gorm:"column:full_name;type:varchar(120);not null"`
	Email         string         `gorm:"type:varchar(120);uniqueIndex:uq_employee_email"`
	Position      string         `gorm:"type:varchar(80)"`
	MonthlySalary float64        `gorm:"column:monthly_salary;not null;default:0"`
	Status        string         `gorm:"type:varchar(20);not null;default:'Active';index"`
	HireDate      *time.Time     `gorm:"column:hire_date;type:date"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}
