package paycalc_test

import (
	"fmt"
	"testing"

	"go-hradmin/internal/paycalc"

	"github.com/stretchr/testify/assert"
)

func mustPeriod(t *testing.T, start, end string) paycalc.Period {
	t.Helper()
	p, err := paycalc.NewPeriod(start, end)
	assert.NoError(t, err)
	return p
}

func TestRates(t *testing.T) {
	cfg := paycalc.DefaultConfig()

	daily := paycalc.DailyRate(22000, cfg)
	assert.Equal(t, 1000.0, daily)
	assert.Equal(t, 125.0, paycalc.HourlyRate(daily, cfg))

	// zero or missing salary is zero pay, not an error
	assert.Equal(t, 0.0, paycalc.DailyRate(0, cfg))
	assert.Equal(t, 0.0, paycalc.HourlyRate(0, cfg))
}

func TestBaseSalary_StatusFractions(t *testing.T) {
	cfg := paycalc.DefaultConfig()
	p := mustPeriod(t, "2024-01-01", "2024-01-31")
	daily := paycalc.DailyRate(22000, cfg)

	records := make([]paycalc.AttendanceRecord, 0, 22)
	for day := 1; day <= 20; day++ {
		records = append(records, paycalc.AttendanceRecord{
			EmployeeID: 1,
			Date:       mustDate(2024, 1, day),
			Status:     paycalc.StatusPresent,
		})
	}
	records = append(records,
		paycalc.AttendanceRecord{EmployeeID: 1, Date: "2024-01-29", Status: paycalc.StatusHalfDay},
		paycalc.AttendanceRecord{EmployeeID: 1, Date: "2024-01-30", Status: paycalc.StatusAbsent},
	)

	// 20 present + 0.5 half-day, absent excluded entirely
	assert.Equal(t, 20500.0, paycalc.BaseSalary(records, daily, p))
}

func TestBaseSalary_LatePaysFullDay(t *testing.T) {
	p := mustPeriod(t, "2024-01-01", "2024-01-31")
	records := []paycalc.AttendanceRecord{
		{EmployeeID: 1, Date: "2024-01-02", Status: paycalc.StatusLate},
		{EmployeeID: 1, Date: "2024-01-03", Status: paycalc.StatusOnLeave},
	}
	assert.Equal(t, 1000.0, paycalc.BaseSalary(records, 1000, p))
}

func TestBaseSalary_DuplicateDatesAreSummed(t *testing.T) {
	p := mustPeriod(t, "2024-01-01", "2024-01-31")
	records := []paycalc.AttendanceRecord{
		{EmployeeID: 1, Date: "2024-01-02", Status: paycalc.StatusPresent},
		{EmployeeID: 1, Date: "2024-01-02", Status: paycalc.StatusPresent},
	}
	assert.Equal(t, 2000.0, paycalc.BaseSalary(records, 1000, p))
}

func TestBaseSalary_EmptyAttendance(t *testing.T) {
	p := mustPeriod(t, "2024-01-01", "2024-01-31")
	assert.Equal(t, 0.0, paycalc.BaseSalary(nil, 1000, p))
	assert.Equal(t, 0.0, paycalc.OvertimePay(nil, 125, p, paycalc.DefaultConfig()))
}

func TestOvertimePay_Premium(t *testing.T) {
	cfg := paycalc.DefaultConfig()
	p := mustPeriod(t, "2024-01-01", "2024-01-31")
	records := []paycalc.AttendanceRecord{
		{EmployeeID: 1, Date: "2024-01-10", Status: paycalc.StatusPresent, Overtime: 3},
	}
	assert.Equal(t, 468.75, paycalc.OvertimePay(records, 125, p, cfg))
}

func TestOvertimePay_NoCapOnHours(t *testing.T) {
	cfg := paycalc.DefaultConfig()
	p := mustPeriod(t, "2024-01-01", "2024-01-31")
	records := []paycalc.AttendanceRecord{
		{EmployeeID: 1, Date: "2024-01-10", Status: paycalc.StatusPresent, Overtime: 40},
	}
	assert.Equal(t, 40*125*1.25, paycalc.OvertimePay(records, 125, p, cfg))
}

func mustDate(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}
