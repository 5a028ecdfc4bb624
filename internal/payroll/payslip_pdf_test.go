package payroll

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "0.00", formatMoney(0))
	assert.Equal(t, "15,000.50", formatMoney(1_500_050))
	assert.Equal(t, "1,234,567.89", formatMoney(123_456_789))
	assert.Equal(t, "-12.05", formatMoney(-1_205))
}

func TestFormatFTE(t *testing.T) {
	assert.Equal(t, "60.00%", formatFTE(6000))
	assert.Equal(t, "33.33%", formatFTE(3333))
}

func TestRenderPayslip(t *testing.T) {
	p := Payroll{
		ID:               uuid.New(),
		PayPeriodDate:    time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		AllocationType:   "grant",
		FTE:              6000,
		GrossSalaryByFTE: 1_800_000,
		Tax:              3_500,
		EmployeeSSF:      45_000,
		TotalIncome:      1_800_000,
		TotalDeduction:   48_500,
		NetSalary:        1_751_500,
		Status:           StatusApproved,
		Employee:         &PayrollEmployee{StaffID: "0001", FirstNameEN: "Somchai", LastNameEN: "Dee"},
	}

	data, err := renderPayslip(p)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}
