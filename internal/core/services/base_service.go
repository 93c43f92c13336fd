package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/hraxis/hr_payroll_app/internal/apperrors"
	"github.com/hraxis/hr_payroll_app/internal/dto"
	"github.com/shopspring/decimal"
)

// parseDate parses a wire-format date, mapping failures to a validation error.
func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dto.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s %q is not a valid date (want %s)", apperrors.ErrValidation, field, value, dto.DateLayout)
	}
	return t, nil
}

// requireNonNegative rejects negative monetary amounts.
func requireNonNegative(field string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: %s must not be negative, got %s", apperrors.ErrValidation, field, amount.String())
	}
	return nil
}

// clientMessage returns the error text safe to echo back to a caller.
// Anything outside the taxonomy is masked, matching the response envelope.
func clientMessage(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrNotFound),
		errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrDuplicate),
		errors.Is(err, apperrors.ErrForbidden):
		return err.Error()
	default:
		return "internal error"
	}
}
