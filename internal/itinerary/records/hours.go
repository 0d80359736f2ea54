package records

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Hours is a non-negative decimal number of hours. In JSON it is written as a
// number and read from either a number or a numeric string.
type Hours float64

// ParseHours reads s; blank, invalid or negative is 0
func ParseHours(s string) Hours {
	h, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(h) || math.IsInf(h, 0) || h < 0 {
		return 0
	}
	return Hours(h)
}

// String renders the shortest decimal form ("1.5", "0")
func (h Hours) String() string {
	return strconv.FormatFloat(float64(h), 'f', -1, 64)
}

func (h *Hours) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch typed := v.(type) {
	case nil:
		*h = 0
	case float64:
		if typed < 0 {
			return fmt.Errorf("hours must not be negative: %v", typed)
		}
		*h = Hours(typed)
	case string:
		if strings.TrimSpace(typed) == "" {
			*h = 0
			return nil
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(typed), 64)
		if err != nil || parsed < 0 {
			return fmt.Errorf("invalid hours value %q", typed)
		}
		*h = Hours(parsed)
	default:
		return fmt.Errorf("invalid hours value %s", string(data))
	}
	return nil
}
