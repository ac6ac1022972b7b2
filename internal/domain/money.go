package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseAmount converts a decimal string like "12.50" into minor
// currency units. Malformed input and amounts <= 0 both fail with
// ErrInvalidAmount.
func ParseAmount(s string) (int64, error) {
	v, err := parseMinorUnits(s)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, ErrInvalidAmount
	}
	return v, nil
}

// ParseBalance is ParseAmount for opening balances: zero and the empty
// string are allowed, negatives are not.
func ParseBalance(s string) (int64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, nil
	}
	v, err := parseMinorUnits(s)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, ErrInvalidAmount
	}
	return v, nil
}

func parseMinorUnits(s string) (int64, error) {
	s = strings.TrimSpace(s)
	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return 0, ErrInvalidAmount
	}
	negative := strings.HasPrefix(whole, "-")
	if whole == "" || whole == "-" {
		whole = "0"
	}
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	cents := units * 100
	if hasFrac {
		if len(frac) == 0 || len(frac) > 2 {
			return 0, ErrInvalidAmount
		}
		if len(frac) == 1 {
			frac += "0"
		}
		f, err := strconv.ParseInt(frac, 10, 64)
		if err != nil || f < 0 {
			return 0, ErrInvalidAmount
		}
		if negative {
			cents -= f
		} else {
			cents += f
		}
	}
	return cents, nil
}

// FormatAmount renders minor units as a decimal string: 12050 -> "120.50".
func FormatAmount(v int64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
