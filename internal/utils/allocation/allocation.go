package allocation

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hraxis/hr_payroll_app/internal/apperrors"
)

// DayAmount is one generated daily row: a calendar date and the amount assigned to it.
type DayAmount struct {
	Date   time.Time
	Amount decimal.Decimal
}

// InclusiveDays returns the number of calendar days between from and until,
// counting both endpoints. A zero-length or inverted range counts as one day.
func InclusiveDays(from, until time.Time) int64 {
	fromDay := truncateToDay(from)
	untilDay := truncateToDay(until)
	days := int64(untilDay.Sub(fromDay).Hours()/24) + 1
	if days < 1 {
		days = 1
	}
	return days
}

// SpreadOverRange splits total evenly across the inclusive date range, assigning
// any rounding remainder to the last day. The per-day amount is the total divided
// by the day count, truncated to cents; the generated rows always sum to total
// rounded to cents.
func SpreadOverRange(total decimal.Decimal, from, until time.Time) ([]DayAmount, error) {
	if total.IsNegative() {
		return nil, fmt.Errorf("%w: total must not be negative, got %s", apperrors.ErrValidation, total.String())
	}

	days := InclusiveDays(from, until)
	dayCount := decimal.NewFromInt(days)

	perDay := total.Div(dayCount).RoundDown(2)
	remainder := total.Round(2).Sub(perDay.Mul(dayCount))

	start := truncateToDay(from)
	rows := make([]DayAmount, days)
	for i := int64(0); i < days; i++ {
		rows[i] = DayAmount{
			Date:   start.AddDate(0, 0, int(i)),
			Amount: perDay,
		}
	}
	rows[days-1].Amount = perDay.Add(remainder)

	return rows, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
