package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWorkingDays(t *testing.T) {
	// 2025-03-03 is a Monday.
	mon := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 5, WorkingDays(mon, mon.AddDate(0, 0, 6)))
	assert.Equal(t, 1, WorkingDays(mon, mon))
	assert.Equal(t, 0, WorkingDays(mon.AddDate(0, 0, 5), mon.AddDate(0, 0, 6)))
	assert.Equal(t, 0, WorkingDays(mon, mon.AddDate(0, 0, -1)))
	assert.Equal(t, 10, WorkingDays(mon, mon.AddDate(0, 0, 13)))
}

func TestParse(t *testing.T) {
	d, err := Parse("2025-02-28")
	assert.NoError(t, err)
	assert.Equal(t, "2025-02-28", Format(d))

	_, err = Parse("28/02/2025")
	assert.ErrorIs(t, err, ErrInvalidDate)

	empty := ""
	got, err := ParseOptional(&empty)
	assert.NoError(t, err)
	assert.Nil(t, got)

	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), MonthStart(d))
	assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), MonthEnd(d))
}
