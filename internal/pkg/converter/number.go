package converter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

var (
	ErrMissingValue = errors.New("value is missing")
	ErrEmptyValue   = errors.New("value is empty")
)

// ToFloat coerces a decoded JSON value (number, numeric string or bool) to float64.
func ToFloat(v any) (float64, error) {
	if v == nil {
		return 0, ErrMissingValue
	}
	if s, ok := v.(string); ok {
		return parseDecimal(s)
	}
	return cast.ToFloat64E(v)
}

// parseDecimal reads a decimal literal, "inf" or "nan". Hex literals are
// rejected, underscores are allowed between digits only, and values beyond
// the float64 range become ±Inf.
func parseDecimal(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, ErrEmptyValue
	}

	unsigned := strings.TrimLeft(s, "+-")
	if len(unsigned) > 1 && unsigned[0] == '0' && (unsigned[1] == 'x' || unsigned[1] == 'X') {
		return 0, fmt.Errorf("unable to cast %q to float64: hexadecimal literal", raw)
	}

	if strings.Contains(s, "_") {
		if !digitSeparated(s) {
			return 0, fmt.Errorf("unable to cast %q to float64: misplaced underscore", raw)
		}
		s = strings.ReplaceAll(s, "_", "")
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("unable to cast %q to float64: %w", raw, err)
	}
	return f, nil
}

func digitSeparated(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			continue
		}
		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
