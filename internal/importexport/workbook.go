package importexport

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go-hrms/internal/employee"
	"go-hrms/internal/shared/dateutil"

	"github.com/xuri/excelize/v2"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	templateRows    = 1000
)

// employeeColumns is the import/template header, in sheet order.
var employeeColumns = []string{
	"staff_id", "organization", "initial_en", "first_name_en", "last_name_en",
	"first_name_th", "last_name_th", "gender", "date_of_birth", "status",
	"nationality", "religion", "identification_type", "identification_number",
	"marital_status", "has_spouse", "spouse_has_income", "number_of_children",
	"mobile_phone", "email", "current_address", "permanent_address",
	"bank_name", "bank_branch", "bank_account_name", "bank_account_number",
	"eligible_for_pvd", "eligible_for_saving_fund",
}

var requiredEmployeeColumns = []string{"organization", "first_name_en", "gender", "status"}

var employeeDropLists = map[string][]string{
	"gender":                   {"male", "female", "other"},
	"status":                   {"Expats", "Local ID", "Local non ID"},
	"marital_status":           {"single", "married", "divorced", "widowed"},
	"has_spouse":               {"yes", "no"},
	"spouse_has_income":        {"yes", "no"},
	"eligible_for_pvd":         {"yes", "no"},
	"eligible_for_saving_fund": {"yes", "no"},
}

// sheetRow is one data row with the header it was read under.
type sheetRow struct {
	number int
	values map[string]string
}

func (r sheetRow) get(col string) string {
	return strings.TrimSpace(r.values[col])
}

func (r sheetRow) blank() bool {
	for _, v := range r.values {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// readRows returns the data rows of the first sheet keyed by the lower-cased
// header, plus the list of required columns that are missing.
func readRows(f *excelize.File, required []string) ([]sheetRow, []string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, required, nil
	}
	raw, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, err
	}
	if len(raw) == 0 {
		return nil, required, nil
	}

	header := make([]string, len(raw[0]))
	seen := make(map[string]bool, len(raw[0]))
	for i, h := range raw[0] {
		key := strings.ToLower(strings.TrimSpace(h))
		key = strings.ReplaceAll(key, " ", "_")
		header[i] = key
		seen[key] = true
	}
	var missing []string
	for _, col := range required {
		if !seen[col] {
			missing = append(missing, col)
		}
	}

	rows := make([]sheetRow, 0, len(raw)-1)
	for i, cells := range raw[1:] {
		row := sheetRow{number: i + 2, values: make(map[string]string, len(header))}
		for j, v := range cells {
			if j < len(header) && header[j] != "" {
				row.values[header[j]] = v
			}
		}
		if row.blank() {
			continue
		}
		rows = append(rows, row)
	}
	return rows, missing, nil
}

// employeeFromRow maps a sheet row onto a create request. Only conversion
// errors are reported here; field rules are checked by the validator.
func employeeFromRow(r sheetRow) (employee.CreateEmployeeRequest, error) {
	req := employee.CreateEmployeeRequest{
		StaffID:              r.get("staff_id"),
		Organization:         r.get("organization"),
		Initial:              r.get("initial_en"),
		FirstNameEN:          r.get("first_name_en"),
		LastNameEN:           r.get("last_name_en"),
		FirstNameTH:          r.get("first_name_th"),
		LastNameTH:           r.get("last_name_th"),
		Gender:               strings.ToLower(r.get("gender")),
		Status:               r.get("status"),
		Nationality:          r.get("nationality"),
		Religion:             r.get("religion"),
		IdentificationType:   r.get("identification_type"),
		IdentificationNumber: r.get("identification_number"),
		MaritalStatus:        strings.ToLower(r.get("marital_status")),
		MobilePhone:          r.get("mobile_phone"),
		Email:                r.get("email"),
		CurrentAddress:       r.get("current_address"),
		PermanentAddress:     r.get("permanent_address"),
		BankName:             r.get("bank_name"),
		BankBranch:           r.get("bank_branch"),
		BankAccountName:      r.get("bank_account_name"),
		BankAccountNumber:    r.get("bank_account_number"),
	}

	if v := r.get("date_of_birth"); v != "" {
		dob, err := parseSheetDate(v)
		if err != nil {
			return req, fmt.Errorf("date_of_birth: %q is not a date", v)
		}
		s := dateutil.Format(dob)
		req.DateOfBirth = &s
	}
	if v := r.get("number_of_children"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return req, fmt.Errorf("number_of_children: %q is not a whole number", v)
		}
		req.NumberOfChildren = n
	}

	flags := []struct {
		col string
		dst *bool
	}{
		{"has_spouse", &req.HasSpouse},
		{"spouse_has_income", &req.SpouseHasIncome},
		{"eligible_for_pvd", &req.EligibleForPVD},
		{"eligible_for_saving_fund", &req.EligibleForSavingFund},
	}
	for _, fl := range flags {
		b, err := parseSheetBool(r.get(fl.col))
		if err != nil {
			return req, fmt.Errorf("%s: %w", fl.col, err)
		}
		*fl.dst = b
	}
	return req, nil
}

var sheetDateLayouts = []string{dateutil.Layout, "02/01/2006", "2/1/2006", "2006/01/02", "01-02-06"}

// parseSheetDate accepts ISO dates, day-first slashed dates and the
// mm-dd-yy rendering excelize uses for date-formatted cells.
func parseSheetDate(v string) (time.Time, error) {
	for _, layout := range sheetDateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, dateutil.ErrInvalidDate
}

func parseSheetBool(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "", "no", "n", "false", "0":
		return false, nil
	case "yes", "y", "true", "1":
		return true, nil
	}
	return false, fmt.Errorf("%q is not yes or no", v)
}

// EmployeeTemplate builds the import template: a header row, one example
// row, drop-down lists for enumerated columns and an instructions sheet.
func EmployeeTemplate() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Employees"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	header := make([]any, len(employeeColumns))
	for i, c := range employeeColumns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}
	example := []any{
		"", "SMRU", "Ms.", "Naw", "Htoo", "", "", "female", "1990-05-14", "Local ID",
		"Thai", "", "ThaiID", "1234567890123", "single", "no", "no", 0,
		"0812345678", "naw.htoo@example.org", "", "", "Bangkok Bank", "Mae Sot",
		"Naw Htoo", "1234567890", "yes", "no",
	}
	if err := f.SetSheetRow(sheet, "A2", &example); err != nil {
		return nil, err
	}

	style, err := headerStyle(f)
	if err != nil {
		return nil, err
	}
	last, _ := excelize.ColumnNumberToName(len(employeeColumns))
	if err := f.SetCellStyle(sheet, "A1", last+"1", style); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheet, "A", last, 18); err != nil {
		return nil, err
	}
	if err := f.SetPanes(sheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return nil, err
	}

	for i, col := range employeeColumns {
		options, ok := employeeDropLists[col]
		if !ok {
			continue
		}
		name, _ := excelize.ColumnNumberToName(i + 1)
		dv := excelize.NewDataValidation(true)
		dv.Sqref = fmt.Sprintf("%s2:%s%d", name, name, templateRows)
		if err := dv.SetDropList(options); err != nil {
			return nil, err
		}
		if err := f.AddDataValidation(sheet, dv); err != nil {
			return nil, err
		}
	}

	if _, err := f.NewSheet("Instructions"); err != nil {
		return nil, err
	}
	notes := []string{
		"Fill one employee per row on the Employees sheet. Do not rename the header row.",
		"Required columns: " + strings.Join(requiredEmployeeColumns, ", ") + ".",
		"Leave staff_id empty to have one generated. Rows whose staff_id already exists are skipped.",
		"Dates use YYYY-MM-DD. Yes/no columns accept yes, no, true, false, 1 or 0.",
	}
	for i, n := range notes {
		if err := f.SetCellValue("Instructions", fmt.Sprintf("A%d", i+1), n); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func headerStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
	})
}

// column describes one exported column.
type column struct {
	title string
	width float64
	money bool
}

// writeSheet streams rows into a single-sheet workbook. Money columns hold
// minor units and are written as decimal currency.
func writeSheet(sheet string, cols []column, rows [][]any) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}
	hdr, err := headerStyle(f)
	if err != nil {
		return nil, err
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return nil, err
	}

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return nil, err
	}
	for i, c := range cols {
		if c.width > 0 {
			if err := sw.SetColWidth(i+1, i+1, c.width); err != nil {
				return nil, err
			}
		}
	}

	header := make([]any, len(cols))
	for i, c := range cols {
		header[i] = excelize.Cell{StyleID: hdr, Value: c.title}
	}
	if err := sw.SetRow("A1", header); err != nil {
		return nil, err
	}

	for r, values := range rows {
		out := make([]any, len(values))
		for i, v := range values {
			if i < len(cols) && cols[i].money {
				if amount, ok := v.(int64); ok {
					out[i] = excelize.Cell{StyleID: moneyStyle, Value: float64(amount) / 100}
					continue
				}
			}
			out[i] = v
		}
		cell, _ := excelize.CoordinatesToCellName(1, r+2)
		if err := sw.SetRow(cell, out); err != nil {
			return nil, err
		}
	}
	if err := sw.Flush(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
