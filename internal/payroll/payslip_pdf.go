package payroll

import (
	"bytes"
	"fmt"
	"strings"
)

// buildPayslipPDF renders a single-page payslip. The writer emits a minimal
// PDF 1.4 document by hand, enough for any standard viewer.
func buildPayslipPDF(p Payroll) ([]byte, error) {
	lines := []string{
		"PAYSLIP",
		"",
		fmt.Sprintf("Payroll ID: %d", p.ID),
		fmt.Sprintf("Employee ID: %d", p.EmployeeID),
		fmt.Sprintf("Period: %s (%s to %s)", p.Period, p.PeriodStart.Format(dateLayout), p.PeriodEnd.Format(dateLayout)),
		"",
		fmt.Sprintf("Base Salary:     %.2f", p.BaseSalary),
		fmt.Sprintf("Overtime Pay:    %.2f", p.OvertimePay),
		fmt.Sprintf("Bonus:           %.2f", p.Bonus),
		fmt.Sprintf("Deductions:      %.2f", p.Deductions),
		fmt.Sprintf("Tax Withholding: %.2f", p.TaxWithholding),
		"",
		fmt.Sprintf("Net Salary:      %.2f", p.NetSalary),
		"",
		fmt.Sprintf("Status: %s", p.Status),
	}
	return writePayslipPDF(lines)
}

func writePayslipPDF(lines []string) ([]byte, error) {
	if len(lines) == 0 {
		lines = []string{"Payslip"}
	}

	var content strings.Builder
	content.WriteString("BT\n/F1 12 Tf\n14 TL\n50 800 Td\n")
	for i, line := range lines {
		escaped := pdfEscape(line)
		if i == 0 {
			content.WriteString(fmt.Sprintf("(%s) Tj\n", escaped))
			continue
		}
		content.WriteString(fmt.Sprintf("T* (%s) Tj\n", escaped))
	}
	content.WriteString("ET")

	stream := content.String()
	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n",
		"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>\nendobj\n",
		"4 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Courier >>\nendobj\n",
		fmt.Sprintf("5 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(stream), stream),
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, 0, len(objects)+1)
	offsets = append(offsets, 0)

	for _, obj := range objects {
		offsets = append(offsets, out.Len())
		out.WriteString(obj)
	}

	xrefStart := out.Len()
	out.WriteString(fmt.Sprintf("xref\n0 %d\n", len(offsets)))
	out.WriteString("0000000000 65535 f \n")
	for i := 1; i < len(offsets); i++ {
		out.WriteString(fmt.Sprintf("%010d 00000 n \n", offsets[i]))
	}
	out.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(offsets), xrefStart))

	return out.Bytes(), nil
}

func pdfEscape(v string) string {
	replacer := strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)")
	return replacer.Replace(v)
}
