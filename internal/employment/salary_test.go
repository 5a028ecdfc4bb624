package employment_test

import (
	"testing"
	"time"

	"go-hrms/internal/employment"

	"github.com/stretchr/testify/assert"
)

func TestActiveSalary(t *testing.T) {
	passDate := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	probation := int64(2_500_000)

	tests := []struct {
		name     string
		emp      employment.Employment
		ref      time.Time
		wantAmt  int64
		wantType string
	}{
		{
			name: "before pass date uses probation salary",
			emp: employment.Employment{
				ProbationSalary:     &probation,
				PassProbationSalary: 3_000_000,
				PassProbationDate:   &passDate,
				ProbationStatus:     employment.ProbationOngoing,
			},
			ref:      passDate.AddDate(0, 0, -1),
			wantAmt:  2_500_000,
			wantType: employment.SalaryTypeProbation,
		},
		{
			name: "on pass date switches to pass salary",
			emp: employment.Employment{
				ProbationSalary:     &probation,
				PassProbationSalary: 3_000_000,
				PassProbationDate:   &passDate,
				ProbationStatus:     employment.ProbationOngoing,
			},
			ref:      passDate.Add(9 * time.Hour),
			wantAmt:  3_000_000,
			wantType: employment.SalaryTypePassProbation,
		},
		{
			name: "passed early uses pass salary",
			emp: employment.Employment{
				ProbationSalary:     &probation,
				PassProbationSalary: 3_000_000,
				PassProbationDate:   &passDate,
				ProbationStatus:     employment.ProbationPassed,
			},
			ref:      passDate.AddDate(0, -1, 0),
			wantAmt:  3_000_000,
			wantType: employment.SalaryTypePassProbation,
		},
		{
			name: "extended probation keeps probation salary",
			emp: employment.Employment{
				ProbationSalary:     &probation,
				PassProbationSalary: 3_000_000,
				PassProbationDate:   &passDate,
				ProbationStatus:     employment.ProbationExtended,
			},
			ref:      passDate.AddDate(0, 0, -10),
			wantAmt:  2_500_000,
			wantType: employment.SalaryTypeProbation,
		},
		{
			name: "no probation salary",
			emp: employment.Employment{
				PassProbationSalary: 3_000_000,
				PassProbationDate:   &passDate,
				ProbationStatus:     employment.ProbationOngoing,
			},
			ref:      passDate.AddDate(0, 0, -10),
			wantAmt:  3_000_000,
			wantType: employment.SalaryTypePassProbation,
		},
		{
			name: "no pass date",
			emp: employment.Employment{
				ProbationSalary:     &probation,
				PassProbationSalary: 3_000_000,
				ProbationStatus:     employment.ProbationOngoing,
			},
			ref:      passDate,
			wantAmt:  3_000_000,
			wantType: employment.SalaryTypePassProbation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amt, typ := employment.ActiveSalary(tt.emp, tt.ref)
			assert.Equal(t, tt.wantAmt, amt)
			assert.Equal(t, tt.wantType, typ)
		})
	}
}
