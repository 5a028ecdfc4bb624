package importexport

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"go-hrms/internal/employee"
	"go-hrms/internal/grant"
	importexporterrors "go-hrms/internal/importexport/errors"
	"go-hrms/internal/payroll"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/query"

	"go.uber.org/zap"
)

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// Export is one generated workbook.
type Export struct {
	FileName string
	Data     []byte
}

func (e Export) ContentType() string {
	return xlsxContentType
}

//go:generate mockgen -source=export_service.go -destination=mock/export_service_mock.go -package=mock
type ExportService interface {
	ExportEmployees(ctx context.Context, req ExportEmployeesRequest) (Export, error)
	ExportGrants(ctx context.Context, req ExportGrantsRequest) (Export, error)
	ExportPayrolls(ctx context.Context, req ExportPayrollsRequest) (Export, error)
}

// EmployeeSource is satisfied by employee.Service.
type EmployeeSource interface {
	Export(ctx context.Context, req employee.ListEmployeesRequest) ([]employee.EmployeeResponse, error)
}

// GrantSource is satisfied by grant.Service.
type GrantSource interface {
	Export(ctx context.Context, req grant.ListGrantsRequest) ([]grant.GrantResponse, error)
}

// PayrollSource is satisfied by payroll.Service.
type PayrollSource interface {
	Export(ctx context.Context, req payroll.ListPayrollsRequest) ([]payroll.PayrollResponse, error)
}

type exportService struct {
	employees EmployeeSource
	grants    GrantSource
	payrolls  PayrollSource
	logger    *zap.Logger
}

func NewExportService(employees EmployeeSource, grants GrantSource, payrolls PayrollSource, logger ...*zap.Logger) ExportService {
	l := zap.L().Named("importexport.export")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("importexport.export")
	}
	return &exportService{employees: employees, grants: grants, payrolls: payrolls, logger: l}
}

var employeeExportColumns = []column{
	{title: "Staff ID", width: 12},
	{title: "Organization", width: 12},
	{title: "Initial", width: 8},
	{title: "First Name (EN)", width: 20},
	{title: "Last Name (EN)", width: 20},
	{title: "First Name (TH)", width: 20},
	{title: "Last Name (TH)", width: 20},
	{title: "Gender", width: 10},
	{title: "Date of Birth", width: 14},
	{title: "Age", width: 6},
	{title: "Status", width: 14},
	{title: "Nationality", width: 14},
	{title: "Identification Type", width: 18},
	{title: "Identification Number", width: 20},
	{title: "Marital Status", width: 14},
	{title: "Children", width: 9},
	{title: "Mobile Phone", width: 16},
	{title: "Email", width: 28},
	{title: "Bank Name", width: 18},
	{title: "Bank Account Number", width: 20},
	{title: "PVD", width: 6},
	{title: "Saving Fund", width: 12},
}

func (s *exportService) ExportEmployees(ctx context.Context, req ExportEmployeesRequest) (Export, error) {
	list, err := s.employees.Export(ctx, employee.ListEmployeesRequest{
		Params:       query.Params{Search: req.Search, SortBy: "staff_id", SortOrder: "asc"},
		Organization: req.Organization,
		Status:       req.Status,
		Gender:       req.Gender,
	})
	if err != nil {
		return Export{}, err
	}

	rows := make([][]any, len(list))
	for i, e := range list {
		rows[i] = []any{
			e.StaffID, e.Organization, e.Initial, e.FirstNameEN, e.LastNameEN,
			e.FirstNameTH, e.LastNameTH, e.Gender, deref(e.DateOfBirth), derefInt(e.Age),
			e.Status, e.Nationality, e.IdentificationType, e.IdentificationNumber,
			e.MaritalStatus, e.NumberOfChildren, e.MobilePhone, e.Email,
			e.BankName, e.BankAccountNumber, yesNo(e.EligibleForPVD), yesNo(e.EligibleForSavingFund),
		}
	}

	data, err := writeSheet("Employees", employeeExportColumns, rows)
	if err != nil {
		return Export{}, err
	}
	s.logged(ctx, "employees", len(rows))
	return Export{FileName: "employees.xlsx", Data: data}, nil
}

var grantExportColumns = []column{
	{title: "Grant Code", width: 14},
	{title: "Grant Name", width: 30},
	{title: "Organization", width: 12},
	{title: "Start Date", width: 12},
	{title: "End Date", width: 12},
	{title: "Org Funded", width: 11},
	{title: "Position", width: 26},
	{title: "Budget Line", width: 14},
	{title: "Grant Salary", width: 14, money: true},
	{title: "Grant Benefit", width: 14, money: true},
	{title: "Level of Effort (%)", width: 16},
	{title: "Positions", width: 10},
	{title: "Filled", width: 8},
}

// ExportGrants writes one row per grant item; a grant without items still
// gets a row so it shows up in the sheet.
func (s *exportService) ExportGrants(ctx context.Context, req ExportGrantsRequest) (Export, error) {
	list, err := s.grants.Export(ctx, grant.ListGrantsRequest{
		Params:       query.Params{Search: req.Search, SortBy: "code", SortOrder: "asc"},
		Organization: req.Organization,
		IsOrgFunded:  req.IsOrgFunded,
	})
	if err != nil {
		return Export{}, err
	}

	var rows [][]any
	for _, g := range list {
		head := []any{g.Code, g.Name, g.Organization, deref(g.StartDate), deref(g.EndDate), yesNo(g.IsOrgFunded)}
		if len(g.Items) == 0 {
			rows = append(rows, head)
			continue
		}
		for _, item := range g.Items {
			row := append(append([]any{}, head...),
				item.PositionTitle, item.BudgetLineCode, item.GrantSalary, item.GrantBenefit,
				item.LevelOfEffort, item.PositionNumber, item.FilledSlots,
			)
			rows = append(rows, row)
		}
	}

	data, err := writeSheet("Grants", grantExportColumns, rows)
	if err != nil {
		return Export{}, err
	}
	s.logged(ctx, "grants", len(list))
	return Export{FileName: "grants.xlsx", Data: data}, nil
}

var payrollExportColumns = []column{
	{title: "Staff ID", width: 12},
	{title: "Employee", width: 26},
	{title: "Organization", width: 12},
	{title: "Pay Period", width: 12},
	{title: "Allocation", width: 12},
	{title: "FTE (%)", width: 9},
	{title: "Gross Salary", width: 14, money: true},
	{title: "Gross by FTE", width: 14, money: true},
	{title: "Compensation Refund", width: 14, money: true},
	{title: "13th Month", width: 14, money: true},
	{title: "PVD", width: 12, money: true},
	{title: "Saving Fund", width: 12, money: true},
	{title: "Employee SSF", width: 12, money: true},
	{title: "Employer SSF", width: 12, money: true},
	{title: "Employee Health Welfare", width: 14, money: true},
	{title: "Employer Health Welfare", width: 14, money: true},
	{title: "Tax", width: 12, money: true},
	{title: "Total Income", width: 14, money: true},
	{title: "Total Deduction", width: 14, money: true},
	{title: "Net Salary", width: 14, money: true},
	{title: "Employer Contribution", width: 14, money: true},
	{title: "Status", width: 10},
}

func (s *exportService) ExportPayrolls(ctx context.Context, req ExportPayrollsRequest) (Export, error) {
	month := strings.TrimSpace(req.Month)
	if !monthPattern.MatchString(month) {
		return Export{}, importexporterrors.ErrInvalidMonth
	}

	list, err := s.payrolls.Export(ctx, payroll.ListPayrollsRequest{
		Params:       query.Params{SortBy: "staff_id", SortOrder: "asc"},
		PayPeriod:    month,
		Organization: req.Organization,
		Status:       req.Status,
	})
	if err != nil {
		return Export{}, err
	}

	rows := make([][]any, len(list))
	for i, p := range list {
		f := p.Figures
		rows[i] = []any{
			p.StaffID, p.EmployeeName, p.Organization, month, p.AllocationType, float64(p.FTE) / 100,
			f.GrossSalary, f.GrossSalaryByFTE, f.CompensationRefund, f.ThirteenthMonthSalary,
			f.PVD, f.SavingFund, f.EmployeeSSF, f.EmployerSSF,
			f.EmployeeHealthWelfare, f.EmployerHealthWelfare, f.Tax,
			f.TotalIncome, f.TotalDeduction, f.NetSalary, f.EmployerContribution,
			p.Status,
		}
	}

	data, err := writeSheet("Payroll "+month, payrollExportColumns, rows)
	if err != nil {
		return Export{}, err
	}
	s.logged(ctx, "payrolls", len(rows))
	return Export{FileName: fmt.Sprintf("payroll_%s.xlsx", month), Data: data}, nil
}

func (s *exportService) logged(ctx context.Context, kind string, rows int) {
	contextutil.GetLogger(ctx, s.logger).Info("export generated",
		zap.String("kind", kind),
		zap.Int("rows", rows),
	)
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func derefInt(v *int) any {
	if v == nil {
		return ""
	}
	return *v
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
