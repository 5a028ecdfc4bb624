package payroll

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var moneyPrinter = message.NewPrinter(language.English)

// formatMoney renders satang as baht with thousands separators.
func formatMoney(satang int64) string {
	sign := ""
	if satang < 0 {
		sign = "-"
		satang = -satang
	}
	return sign + moneyPrinter.Sprintf("%d", satang/100) + fmt.Sprintf(".%02d", satang%100)
}

type payslipLine struct {
	label  string
	amount int64
}

func renderPayslip(p Payroll) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Payslip", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	info := [][2]string{
		{"Pay period", p.PayPeriodDate.Format("January 2006")},
		{"Funding", fmt.Sprintf("%s (%s FTE)", p.AllocationType, formatFTE(p.FTE))},
		{"Status", p.Status},
	}
	if e := p.Employee; e != nil {
		info = append([][2]string{
			{"Employee", e.FullName()},
			{"Staff ID", e.StaffID},
			{"Organization", e.Organization},
			{"Bank account", fmt.Sprintf("%s %s", e.BankName, e.BankAccountNumber)},
		}, info...)
	}
	for _, row := range info {
		pdf.CellFormat(45, 7, row[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, row[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(5)

	section(pdf, "Income", []payslipLine{
		{"Salary (by FTE)", p.GrossSalaryByFTE},
		{"Compensation refund", p.CompensationRefund},
	}, "Total income", p.TotalIncome)

	section(pdf, "Deductions", []payslipLine{
		{"Tax", p.Tax},
		{"Social security", p.EmployeeSSF},
		{"Provident fund", p.PVD},
		{"Saving fund", p.SavingFund},
		{"Health welfare", p.EmployeeHealthWelfare},
	}, "Total deductions", p.TotalDeduction)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(130, 9, "Net salary", "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 9, formatMoney(p.NetSalary), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func section(pdf *gofpdf.Fpdf, title string, lines []payslipLine, totalLabel string, total int64) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(180, 8, title, "1", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, l := range lines {
		if l.amount == 0 {
			continue
		}
		pdf.CellFormat(130, 7, l.label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, formatMoney(l.amount), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(130, 7, totalLabel, "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 7, formatMoney(total), "1", 1, "R", false, 0, "")
	pdf.Ln(4)
}

func formatFTE(bp int) string {
	return fmt.Sprintf("%d.%02d%%", bp/100, bp%100)
}
