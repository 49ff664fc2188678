package paycalc

// paidDayFraction maps an attendance status to the fraction of a daily rate
// it earns. Lateness is tracked upstream but does not reduce pay here.
func paidDayFraction(status string) float64 {
	switch status {
	case StatusPresent, StatusLate:
		return 1.0
	case StatusHalfDay:
		return 0.5
	default:
		// Absent, On Leave, and anything unrecognized earn nothing.
		return 0
	}
}

// BaseSalary sums the paid-day fractions of the in-period records and
// multiplies by the daily rate. Records are not deduplicated by date: two
// records for the same day both count.
func BaseSalary(records []AttendanceRecord, dailyRate float64, p Period) float64 {
	var days float64
	for _, r := range InPeriod(records, p) {
		days += paidDayFraction(r.Status)
	}
	return days * dailyRate
}

// OvertimePay sums the in-period overtime hours and pays them at the hourly
// rate times the premium multiplier. Hours are taken as recorded; there is no
// per-record sanity cap.
func OvertimePay(records []AttendanceRecord, hourlyRate float64, p Period, cfg Config) float64 {
	var hours float64
	for _, r := range InPeriod(records, p) {
		hours += r.Overtime
	}
	return hours * hourlyRate * cfg.OvertimePremium
}
