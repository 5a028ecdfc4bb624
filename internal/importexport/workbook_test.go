package importexport

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newSheet(t *testing.T, rows ...[]any) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	t.Cleanup(func() { f.Close() })
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}
	return f
}

func TestParseSheetBool(t *testing.T) {
	for _, v := range []string{"yes", "Y", "TRUE", "1"} {
		b, err := parseSheetBool(v)
		require.NoError(t, err, v)
		assert.True(t, b, v)
	}
	for _, v := range []string{"", "no", "False", "0"} {
		b, err := parseSheetBool(v)
		require.NoError(t, err, v)
		assert.False(t, b, v)
	}
	_, err := parseSheetBool("maybe")
	assert.Error(t, err)
}

func TestParseSheetDate(t *testing.T) {
	for _, v := range []string{"1990-05-14", "14/05/1990", "05-14-90"} {
		d, err := parseSheetDate(v)
		require.NoError(t, err, v)
		assert.Equal(t, "1990-05-14", d.Format("2006-01-02"), v)
	}
	_, err := parseSheetDate("May 14")
	assert.Error(t, err)
}

func TestReadRows(t *testing.T) {
	f := newSheet(t,
		[]any{"Staff ID", "Organization", "First Name EN", "gender", "status"},
		[]any{"0100", "SMRU", "Naw", "female", "Local ID"},
		[]any{"", "", "", "", ""},
		[]any{"0101", "BHF", "Saw", "male", "Expats"},
	)

	rows, missing, err := readRows(f, requiredEmployeeColumns)

	require.NoError(t, err)
	assert.Empty(t, missing)
	require.Len(t, rows, 2)
	assert.Equal(t, 2, rows[0].number)
	assert.Equal(t, "0100", rows[0].get("staff_id"))
	assert.Equal(t, "Naw", rows[0].get("first_name_en"))
	assert.Equal(t, 4, rows[1].number)
	assert.Equal(t, "BHF", rows[1].get("organization"))
}

func TestReadRows_MissingColumns(t *testing.T) {
	f := newSheet(t, []any{"staff_id", "organization"}, []any{"0100", "SMRU"})

	_, missing, err := readRows(f, requiredEmployeeColumns)

	require.NoError(t, err)
	assert.Equal(t, []string{"first_name_en", "gender", "status"}, missing)
}

func TestEmployeeFromRow(t *testing.T) {
	row := sheetRow{number: 2, values: map[string]string{
		"staff_id":           " 0100 ",
		"organization":       "SMRU",
		"first_name_en":      "Naw",
		"gender":             "Female",
		"status":             "Local ID",
		"date_of_birth":      "14/05/1990",
		"number_of_children": "2",
		"has_spouse":         "yes",
		"eligible_for_pvd":   "1",
	}}

	req, err := employeeFromRow(row)

	require.NoError(t, err)
	assert.Equal(t, "0100", req.StaffID)
	assert.Equal(t, "female", req.Gender)
	require.NotNil(t, req.DateOfBirth)
	assert.Equal(t, "1990-05-14", *req.DateOfBirth)
	assert.Equal(t, 2, req.NumberOfChildren)
	assert.True(t, req.HasSpouse)
	assert.True(t, req.EligibleForPVD)
	assert.False(t, req.EligibleForSavingFund)
}

func TestEmployeeFromRow_ConversionErrors(t *testing.T) {
	cases := map[string]map[string]string{
		"date":     {"date_of_birth": "someday"},
		"children": {"number_of_children": "two"},
		"flag":     {"has_spouse": "perhaps"},
	}
	for name, values := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := employeeFromRow(sheetRow{number: 2, values: values})
			assert.Error(t, err)
		})
	}
}

func TestEmployeeTemplate(t *testing.T) {
	data, err := EmployeeTemplate()
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Employees", "Instructions"}, f.GetSheetList())

	rows, missing, err := readRows(f, requiredEmployeeColumns)
	require.NoError(t, err)
	assert.Empty(t, missing)
	require.Len(t, rows, 1)

	req, err := employeeFromRow(rows[0])
	require.NoError(t, err)
	assert.Equal(t, "SMRU", req.Organization)

	dvs, err := f.GetDataValidations("Employees")
	require.NoError(t, err)
	assert.Len(t, dvs, len(employeeDropLists))
}

func TestWriteSheet_MoneyColumns(t *testing.T) {
	cols := []column{{title: "Name"}, {title: "Salary", money: true}}

	data, err := writeSheet("Report", cols, [][]any{{"Naw", int64(1_250_050)}})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Report", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Name", header)

	raw, err := f.GetCellValue("Report", "B2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "12500.5", raw)
}
