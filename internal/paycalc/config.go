package paycalc

// Config holds the organizational constants every calculation depends on.
// It is passed explicitly into each function so the bulk path and the
// single-record path cannot drift apart, and so tests can override any rate
// per invocation.
type Config struct {
	WorkingDaysPerMonth float64
	HoursPerDay         float64
	OvertimePremium     float64
	DeductionRate       float64
	TaxRate             float64
}

func DefaultConfig() Config {
	return Config{
		WorkingDaysPerMonth: 22,
		HoursPerDay:         8,
		OvertimePremium:     1.25,
		DeductionRate:       0.045,
		TaxRate:             0.10,
	}
}

// DailyRate converts a monthly salary into a per-day rate. No rounding is
// applied; callers round at the display boundary. A zero or missing salary
// yields zero, not an error.
func DailyRate(monthlySalary float64, cfg Config) float64 {
	if cfg.WorkingDaysPerMonth == 0 {
		return 0
	}
	return monthlySalary / cfg.WorkingDaysPerMonth
}

// HourlyRate converts a daily rate into a per-hour rate.
func HourlyRate(dailyRate float64, cfg Config) float64 {
	if cfg.HoursPerDay == 0 {
		return 0
	}
	return dailyRate / cfg.HoursPerDay
}
