package services

import (
	"encoding/json"
	"math"
	"strings"
)

// CoerceInt converts any decoded input into a column-safe integer. Strings
// contribute their leading base-10 digits, numbers are truncated toward zero,
// and everything else (including values outside the INT column range) is 0.
func CoerceInt(value any) int {
	switch typed := value.(type) {
	case nil:
		return 0
	case string:
		parsed, ok := parseLeadingInt(typed)
		if !ok {
			return 0
		}
		return columnInt(parsed)
	case json.Number:
		parsed, err := typed.Float64()
		if err != nil {
			return CoerceInt(typed.String())
		}
		return coerceFloat(parsed)
	case float64:
		return coerceFloat(typed)
	case float32:
		return coerceFloat(float64(typed))
	case int:
		return columnInt(int64(typed))
	case int32:
		return int(typed)
	case int64:
		return columnInt(typed)
	default:
		return 0
	}
}

func coerceFloat(value float64) int {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	truncated := math.Trunc(value)
	if truncated < math.MinInt32 || truncated > math.MaxInt32 {
		return 0
	}
	return int(truncated)
}

func columnInt(value int64) int {
	if value < math.MinInt32 || value > math.MaxInt32 {
		return 0
	}
	return int(value)
}

// parseLeadingInt reads an optional sign and the leading digits after any
// whitespace. It saturates instead of overflowing and reports false when no
// digit was found.
func parseLeadingInt(text string) (int64, bool) {
	trimmed := strings.TrimLeft(text, " \t\n\r\v\f")
	negative := false
	if trimmed != "" && (trimmed[0] == '+' || trimmed[0] == '-') {
		negative = trimmed[0] == '-'
		trimmed = trimmed[1:]
	}

	var value int64
	digits := 0
	for _, r := range trimmed {
		if r < '0' || r > '9' {
			break
		}
		digits++
		if value > (math.MaxInt64-int64(r-'0'))/10 {
			value = math.MaxInt64
			continue
		}
		value = value*10 + int64(r-'0')
	}
	if digits == 0 {
		return 0, false
	}
	if negative {
		return -value, true
	}
	return value, true
}
