package employment

import (
	"time"

	"go-hrms/internal/shared/dateutil"
)

const (
	SalaryTypeProbation     = "probation_salary"
	SalaryTypePassProbation = "pass_probation_salary"
)

// ActiveSalary returns the salary in force on ref and which tier it came
// from. The probation salary applies only while it is set, ref is before
// the pass-probation date and probation has not been passed.
func ActiveSalary(e Employment, ref time.Time) (int64, string) {
	if e.ProbationSalary != nil &&
		e.PassProbationDate != nil &&
		e.ProbationStatus != ProbationPassed &&
		dateutil.Truncate(ref).Before(dateutil.Truncate(*e.PassProbationDate)) {
		return *e.ProbationSalary, SalaryTypeProbation
	}
	return e.PassProbationSalary, SalaryTypePassProbation
}

// OnProbation reports whether probation is still undecided.
func (e Employment) OnProbation() bool {
	return e.ProbationStatus == ProbationOngoing || e.ProbationStatus == ProbationExtended
}
