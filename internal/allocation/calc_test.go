package allocation_test

import (
	"testing"

	"go-hrms/internal/allocation"

	"github.com/stretchr/testify/assert"
)

func TestAllocatedAmount(t *testing.T) {
	tests := []struct {
		name   string
		salary int64
		fte    int
		want   int64
	}{
		{"full time", 3_000_000, 10000, 3_000_000},
		{"sixty percent", 3_000_000, 6000, 1_800_000},
		{"rounds half up", 1_000_005, 5000, 500_003},
		{"rounds down below half", 1_000_003, 5000, 500_002},
		{"one basis point", 2_500_000, 1, 250},
		{"zero fte", 3_000_000, 0, 0},
		{"zero salary", 0, 10000, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, allocation.AllocatedAmount(tt.salary, tt.fte))
		})
	}
}

func TestAllocatedAmount_SplitCoversSalary(t *testing.T) {
	salary := int64(2_833_333)
	parts := []int{3333, 3333, 3334}

	var sum int64
	for _, fte := range parts {
		sum += allocation.AllocatedAmount(salary, fte)
	}
	assert.InDelta(t, salary, sum, 1)
}
