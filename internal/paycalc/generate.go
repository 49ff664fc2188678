package paycalc

// Options carries the per-record inputs the period itself does not supply.
// The zero value means no bonus, no extra deductions, Draft status.
type Options struct {
	Bonus           float64
	ExtraDeductions float64
	Status          string
}

func (o Options) status() string {
	if o.Status == "" {
		return PayrollDraft
	}
	return o.Status
}

// GeneratePayrollRecord runs the full pipeline for one employee: rates,
// period filter, base salary, overtime, deductions, tax, net. Missing salary
// or empty attendance degrade to zero-valued components; the function never
// fails for data-shape reasons.
func GeneratePayrollRecord(
	emp EmployeeInfo,
	records []AttendanceRecord,
	p Period,
	cfg Config,
	opts Options,
) PayrollRecord {
	dailyRate := DailyRate(emp.Salary, cfg)
	hourlyRate := HourlyRate(dailyRate, cfg)

	base := BaseSalary(records, dailyRate, p)
	overtime := OvertimePay(records, hourlyRate, p, cfg)
	deductions := DefaultDeductions(base, cfg) + opts.ExtraDeductions
	tax := TaxWithholding(base, overtime, opts.Bonus, cfg)

	return PayrollRecord{
		EmployeeID:     emp.ID,
		Period:         p.Label,
		StartDate:      p.Start.Format(dateLayout),
		EndDate:        p.End.Format(dateLayout),
		BaseSalary:     base,
		OvertimePay:    overtime,
		Bonus:          opts.Bonus,
		Deductions:     deductions,
		TaxWithholding: tax,
		NetSalary:      NetSalary(base, overtime, opts.Bonus, deductions, tax),
		Status:         opts.status(),
	}
}

// GenerateBulkPayroll applies the pipeline to every employee that is not
// Inactive, each against its own attendance subset. Output order follows
// input employee order.
func GenerateBulkPayroll(
	employees []EmployeeInfo,
	records []AttendanceRecord,
	p Period,
	cfg Config,
) []PayrollRecord {
	out := make([]PayrollRecord, 0, len(employees))
	for _, emp := range employees {
		if emp.Status == EmployeeInactive {
			continue
		}
		out = append(out, GeneratePayrollRecord(emp, filterByEmployee(records, emp.ID), p, cfg, Options{}))
	}
	return out
}

func filterByEmployee(records []AttendanceRecord, employeeID int64) []AttendanceRecord {
	out := make([]AttendanceRecord, 0, len(records))
	for _, r := range records {
		if r.EmployeeID == employeeID {
			out = append(out, r)
		}
	}
	return out
}
