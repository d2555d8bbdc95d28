package planner

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/joseph-ayodele/onboarding-agent/constants"
	"github.com/joseph-ayodele/onboarding-agent/internal/common"
	"github.com/joseph-ayodele/onboarding-agent/internal/entity"
)

// maxOffset bounds due_in_days; anything beyond a century is a model error.
const maxOffset = 36500

// ParseStartDate parses a YYYY-MM-DD plan start date as a calendar date (UTC midnight).
func ParseStartDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(constants.DateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, &common.InvalidDateError{Field: "start_date", Value: s, Reason: "must be YYYY-MM-DD"}
	}
	return t, nil
}

// ResolveDueDate returns start + days in YYYY-MM-DD. No time zone or business-day logic.
func ResolveDueDate(start string, days int) (string, error) {
	t, err := ParseStartDate(start)
	if err != nil {
		return "", err
	}
	if days < 0 {
		return "", &common.InvalidDateError{Field: "due_in_days", Value: strconv.Itoa(days), Reason: "must not be negative"}
	}
	return t.AddDate(0, 0, days).Format(constants.DateLayout), nil
}

// ParseOffset coerces a model-provided due_in_days to a non-negative int.
// Integers, integral decimals ("5.0") and numeric strings are accepted;
// negatives, fractions, non-numbers and missing values are rejected.
func ParseOffset(v entity.Value) (int, error) {
	if v.Kind() != entity.KindString {
		return 0, &common.InvalidDateError{Field: "due_in_days", Value: v.String(), Reason: "missing or not a number"}
	}
	s := strings.TrimSpace(v.Str())
	n, err := strconv.Atoi(s)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, &common.InvalidDateError{Field: "due_in_days", Value: s, Reason: "not a number"}
		}
		if f != math.Trunc(f) {
			return 0, &common.InvalidDateError{Field: "due_in_days", Value: s, Reason: "not a whole number of days"}
		}
		if math.Abs(f) > maxOffset {
			return 0, &common.InvalidDateError{Field: "due_in_days", Value: s, Reason: "out of range"}
		}
		n = int(f)
	}
	if n < 0 {
		return 0, &common.InvalidDateError{Field: "due_in_days", Value: s, Reason: "must not be negative"}
	}
	if n > maxOffset {
		return 0, &common.InvalidDateError{Field: "due_in_days", Value: s, Reason: "out of range"}
	}
	return n, nil
}
