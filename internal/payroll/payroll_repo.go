package payroll

import (
	"context"
	"database/sql"
	"time"

	"go-hradmin/internal/paycalc"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, payroll *Payroll) error
	FindAll(ctx context.Context, filter GetPayrollsFilterRequest) ([]Payroll, error)
	FindByID(ctx context.Context, id int64) (*Payroll, error)
	Update(ctx context.Context, payroll *Payroll) error
	Delete(ctx context.Context, id int64) error
	HasOverlappingPeriod(ctx context.Context, employeeID int64, periodStart, periodEnd time.Time, excludeID *int64) (bool, error)
	FindEmployeeForPayroll(ctx context.Context, employeeID int64) (*paycalc.EmployeeInfo, error)
	FindAllEmployeesForPayroll(ctx context.Context) ([]paycalc.EmployeeInfo, error)
	FindAttendanceRecords(ctx context.Context, start, end time.Time) ([]paycalc.AttendanceRecord, error)
	FindAttendanceRecordsByEmployee(ctx context.Context, employeeID int64, start, end time.Time) ([]paycalc.AttendanceRecord, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, payroll *Payroll) error {
	return r.db.WithContext(ctx).Create(payroll).Error
}

func (r *repository) FindAll(ctx context.Context, filter GetPayrollsFilterRequest) ([]Payroll, error) {
	db := r.db.WithContext(ctx).Model(&Payroll{})

	if filter.EmployeeID != 0 {
		db = db.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.Period != "" {
		db = db.Where("period = ?", filter.Period)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}

	var payrolls []Payroll
	err := db.Order("period_start DESC, employee_id ASC").Find(&payrolls).Error
	return payrolls, err
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Payroll, error) {
	var payroll Payroll
	err := r.db.WithContext(ctx).First(&payroll, "id = ?", id).Error
	return &payroll, err
}

func (r *repository) Update(ctx context.Context, payroll *Payroll) error {
	return r.db.WithContext(ctx).Save(payroll).Error
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&Payroll{}, "id = ?", id).Error
}

func (r *repository) HasOverlappingPeriod(
	ctx context.Context,
	employeeID int64,
	periodStart, periodEnd time.Time,
	excludeID *int64,
) (bool, error) {
	db := r.db.WithContext(ctx).
		Model(&Payroll{}).
		Where("employee_id = ?", employeeID).
		Where("NOT (period_end < ? OR period_start > ?)", periodStart, periodEnd)

	if excludeID != nil {
		db = db.Where("id <> ?", *excludeID)
	}

	var count int64
	err := db.Count(&count).Error
	return count > 0, err
}

type employeePayRow struct {
	ID            int64
	MonthlySalary float64
	Status        string
}

type attendancePayRow struct {
	EmployeeID    int64
	Date          string
	Status        string
	OvertimeHours float64
}

func (r *repository) FindEmployeeForPayroll(ctx context.Context, employeeID int64) (*paycalc.EmployeeInfo, error) {
	var row employeePayRow
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("id, monthly_salary, status").
		Where("id = ?", employeeID).
		Where("deleted_at IS NULL").
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &paycalc.EmployeeInfo{ID: row.ID, Salary: row.MonthlySalary, Status: row.Status}, nil
}

func (r *repository) FindAllEmployeesForPayroll(ctx context.Context) ([]paycalc.EmployeeInfo, error) {
	var rows []employeePayRow
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("id, monthly_salary, status").
		Where("deleted_at IS NULL").
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	employees := make([]paycalc.EmployeeInfo, len(rows))
	for i, row := range rows {
		employees[i] = paycalc.EmployeeInfo{ID: row.ID, Salary: row.MonthlySalary, Status: row.Status}
	}
	return employees, nil
}

func (r *repository) FindAttendanceRecords(ctx context.Context, start, end time.Time) ([]paycalc.AttendanceRecord, error) {
	return r.findAttendance(ctx, nil, start, end)
}

func (r *repository) FindAttendanceRecordsByEmployee(ctx context.Context, employeeID int64, start, end time.Time) ([]paycalc.AttendanceRecord, error) {
	return r.findAttendance(ctx, &employeeID, start, end)
}

// findAttendance preserves insertion order so calculated payrolls come out in
// the same order the attendance was recorded.
func (r *repository) findAttendance(ctx context.Context, employeeID *int64, start, end time.Time) ([]paycalc.AttendanceRecord, error) {
	db := r.db.WithContext(ctx).
		Table("attendances").
		Select("employee_id, to_char(attendance_date, 'YYYY-MM-DD') AS date, status, overtime_hours").
		Where("attendance_date BETWEEN ? AND ?", start, end).
		Where("deleted_at IS NULL")

	if employeeID != nil {
		db = db.Where("employee_id = ?", *employeeID)
	}

	var rows []attendancePayRow
	if err := db.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	records := make([]paycalc.AttendanceRecord, len(rows))
	for i, row := range rows {
		records[i] = paycalc.AttendanceRecord{
			EmployeeID: row.EmployeeID,
			Date:       row.Date,
			Status:     row.Status,
			Overtime:   row.OvertimeHours,
		}
	}
	return records, nil
}
