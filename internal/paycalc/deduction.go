package paycalc

// DefaultDeductions applies the flat statutory-style contribution rate to
// base salary.
func DefaultDeductions(baseSalary float64, cfg Config) float64 {
	return baseSalary * cfg.DeductionRate
}

// TaxWithholding applies a single flat rate to total taxable earnings.
// This is deliberately not a progressive schedule.
func TaxWithholding(baseSalary, overtimePay, bonus float64, cfg Config) float64 {
	return (baseSalary + overtimePay + bonus) * cfg.TaxRate
}

// NetSalary is the final payable amount. It is not floored at zero: when
// deductions exceed earnings the result goes negative and is returned as is.
func NetSalary(baseSalary, overtimePay, bonus, deductions, taxWithholding float64) float64 {
	return baseSalary + overtimePay + bonus - deductions - taxWithholding
}
