package allocation

// AllocatedAmount is salary * fte / 10000 rounded half up, all in minor units.
func AllocatedAmount(salary int64, fte int) int64 {
	if salary <= 0 || fte <= 0 {
		return 0
	}
	return (salary*int64(fte) + FullFTE/2) / FullFTE
}

// TotalFTE sums the FTE of a proposed set.
func TotalFTE(items []AllocationItemRequest) int {
	total := 0
	for _, it := range items {
		total += it.FTE
	}
	return total
}
