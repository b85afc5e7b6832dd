package membership

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAddMonths(t *testing.T) {
	loc := time.UTC
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, loc)
	}

	tests := []struct {
		name   string
		start  time.Time
		months int
		want   time.Time
	}{
		{name: "plain", start: day(2024, 1, 10), months: 1, want: day(2024, 2, 10)},
		{name: "jan 31 plus 1 clamps to leap feb", start: day(2024, 1, 31), months: 1, want: day(2024, 2, 29)},
		{name: "jan 31 plus 1 clamps to feb 28", start: day(2023, 1, 31), months: 1, want: day(2023, 2, 28)},
		{name: "jan 31 plus 3 clamps to apr 30", start: day(2024, 1, 31), months: 3, want: day(2024, 4, 30)},
		{name: "crosses year end", start: day(2024, 11, 15), months: 3, want: day(2025, 2, 15)},
		{name: "twelve months", start: day(2024, 2, 29), months: 12, want: day(2025, 2, 28)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddMonths(tt.start, tt.months, loc))
		})
	}
}
