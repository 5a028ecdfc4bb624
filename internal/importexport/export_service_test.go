package importexport_test

import (
	"bytes"
	"context"
	"testing"

	"go-hrms/internal/employee"
	"go-hrms/internal/grant"
	"go-hrms/internal/importexport"
	importexporterrors "go-hrms/internal/importexport/errors"
	importexportMock "go-hrms/internal/importexport/mock"
	"go-hrms/internal/payroll"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

type exportDeps struct {
	service   importexport.ExportService
	employees *importexportMock.MockEmployeeSource
	grants    *importexportMock.MockGrantSource
	payrolls  *importexportMock.MockPayrollSource
}

func setupExportTest(t *testing.T) *exportDeps {
	ctrl := gomock.NewController(t)
	d := &exportDeps{
		employees: importexportMock.NewMockEmployeeSource(ctrl),
		grants:    importexportMock.NewMockGrantSource(ctrl),
		payrolls:  importexportMock.NewMockPayrollSource(ctrl),
	}
	d.service = importexport.NewExportService(d.employees, d.grants, d.payrolls)
	return d
}

func openExport(t *testing.T, out importexport.Export) (*excelize.File, string) {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(out.Data))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f, f.GetSheetList()[0]
}

func TestExportService_ExportEmployees(t *testing.T) {
	d := setupExportTest(t)
	dob := "1990-05-14"

	d.employees.EXPECT().Export(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req employee.ListEmployeesRequest) ([]employee.EmployeeResponse, error) {
			assert.Equal(t, "SMRU", req.Organization)
			assert.Equal(t, "naw", req.Search)
			return []employee.EmployeeResponse{
				{StaffID: "0100", Organization: "SMRU", FirstNameEN: "Naw", DateOfBirth: &dob, EligibleForPVD: true},
			}, nil
		})

	out, err := d.service.ExportEmployees(context.Background(), importexport.ExportEmployeesRequest{Organization: "SMRU", Search: "naw"})

	require.NoError(t, err)
	assert.Equal(t, "employees.xlsx", out.FileName)
	f, sheet := openExport(t, out)
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Staff ID", rows[0][0])
	assert.Equal(t, "0100", rows[1][0])
	assert.Equal(t, "1990-05-14", rows[1][8])
	assert.Equal(t, "yes", rows[1][20])
}

func TestExportService_ExportGrants_RowPerItem(t *testing.T) {
	d := setupExportTest(t)

	d.grants.EXPECT().Export(gomock.Any(), gomock.Any()).Return([]grant.GrantResponse{
		{Code: "G-01", Name: "Malaria", Items: []grant.GrantItemResponse{
			{PositionTitle: "Medic", GrantSalary: 2_000_000},
			{PositionTitle: "Driver", GrantSalary: 1_500_000},
		}},
		{Code: "G-02", Name: "Core"},
	}, nil)

	out, err := d.service.ExportGrants(context.Background(), importexport.ExportGrantsRequest{})

	require.NoError(t, err)
	f, sheet := openExport(t, out)
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Medic", rows[1][6])
	assert.Equal(t, "Driver", rows[2][6])
	assert.Equal(t, "G-02", rows[3][0])

	salary, err := f.GetCellValue(sheet, "I2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "20000", salary)
}

func TestExportService_ExportPayrolls(t *testing.T) {
	t.Run("invalid month", func(t *testing.T) {
		d := setupExportTest(t)

		_, err := d.service.ExportPayrolls(context.Background(), importexport.ExportPayrollsRequest{Month: "2025-13"})

		assert.ErrorIs(t, err, importexporterrors.ErrInvalidMonth)
	})

	t.Run("writes figures in baht", func(t *testing.T) {
		d := setupExportTest(t)
		p := payroll.PayrollResponse{StaffID: "0100", EmployeeName: "Naw Htoo", FTE: 6000, Status: "approved"}
		p.NetSalary = 1_234_567

		d.payrolls.EXPECT().Export(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req payroll.ListPayrollsRequest) ([]payroll.PayrollResponse, error) {
				assert.Equal(t, "2025-03", req.PayPeriod)
				return []payroll.PayrollResponse{p}, nil
			})

		out, err := d.service.ExportPayrolls(context.Background(), importexport.ExportPayrollsRequest{Month: "2025-03"})

		require.NoError(t, err)
		assert.Equal(t, "payroll_2025-03.xlsx", out.FileName)
		f, sheet := openExport(t, out)
		assert.Equal(t, "Payroll 2025-03", sheet)

		fte, err := f.GetCellValue(sheet, "F2", excelize.Options{RawCellValue: true})
		require.NoError(t, err)
		assert.Equal(t, "60", fte)

		net, err := f.GetCellValue(sheet, "T2", excelize.Options{RawCellValue: true})
		require.NoError(t, err)
		assert.Equal(t, "12345.67", net)
	})
}
