package allocation_test

import (
	"testing"
	"time"

	"github.com/hraxis/hr_payroll_app/internal/apperrors"
	"github.com/hraxis/hr_payroll_app/internal/utils/allocation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestInclusiveDays(t *testing.T) {
	assert.Equal(t, int64(1), allocation.InclusiveDays(day("2025-03-01"), day("2025-03-01")))
	assert.Equal(t, int64(3), allocation.InclusiveDays(day("2025-03-01"), day("2025-03-03")))
	assert.Equal(t, int64(31), allocation.InclusiveDays(day("2025-03-01"), day("2025-03-31")))
	// Inverted ranges collapse to a single day rather than going negative.
	assert.Equal(t, int64(1), allocation.InclusiveDays(day("2025-03-05"), day("2025-03-01")))
}

func TestSpreadOverRangeThreeDays(t *testing.T) {
	rows, err := allocation.SpreadOverRange(decimal.RequireFromString("100.00"), day("2025-03-01"), day("2025-03-03"))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.True(t, rows[0].Amount.Equal(decimal.RequireFromString("33.33")), "got %s", rows[0].Amount)
	assert.True(t, rows[1].Amount.Equal(decimal.RequireFromString("33.33")), "got %s", rows[1].Amount)
	assert.True(t, rows[2].Amount.Equal(decimal.RequireFromString("33.34")), "got %s", rows[2].Amount)

	assert.Equal(t, day("2025-03-01"), rows[0].Date)
	assert.Equal(t, day("2025-03-02"), rows[1].Date)
	assert.Equal(t, day("2025-03-03"), rows[2].Date)
}

func TestSpreadOverRangeZeroTotalSingleDay(t *testing.T) {
	rows, err := allocation.SpreadOverRange(decimal.Zero, day("2025-03-01"), day("2025-03-01"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Amount.IsZero())
}

func TestSpreadOverRangeRejectsNegativeTotal(t *testing.T) {
	_, err := allocation.SpreadOverRange(decimal.RequireFromString("-1"), day("2025-03-01"), day("2025-03-02"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestSpreadOverRangeSumsToTotal(t *testing.T) {
	totals := []string{"0", "0.01", "1", "99.99", "100.00", "123.45", "1000", "3333.33", "0.10"}
	ranges := []struct{ from, until string }{
		{"2025-01-01", "2025-01-01"},
		{"2025-01-01", "2025-01-02"},
		{"2025-01-01", "2025-01-07"},
		{"2025-01-01", "2025-01-31"},
		{"2025-02-01", "2025-02-28"},
	}

	for _, total := range totals {
		for _, r := range ranges {
			tot := decimal.RequireFromString(total)
			rows, err := allocation.SpreadOverRange(tot, day(r.from), day(r.until))
			require.NoError(t, err)

			sum := decimal.Zero
			for _, row := range rows {
				sum = sum.Add(row.Amount)
			}
			assert.True(t, sum.Equal(tot.Round(2)),
				"total %s over %s..%s: rows sum to %s", total, r.from, r.until, sum)
		}
	}
}
