package host

import (
	"fmt"
	"math"
	"strconv"
)

// Stringify casts a raw data-view value to its category-label form.
// nil becomes the empty string.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}

// ToNumber casts a raw data-view value to float64. Values the host did not
// type as numeric come back as NaN; callers are expected to let NaN
// propagate rather than correct it.
func ToNumber(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	case uint:
		return float64(t)
	case uint64:
		return float64(t)
	case bool:
		if t {
			return 1
		}
		return 0
	default:
		return math.NaN()
	}
}

// Truthy reports whether a raw highlight entry counts as set.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	default:
		n := ToNumber(t)
		return n != 0 && !math.IsNaN(n)
	}
}

// FormatNumber renders a measure value for display: integers without a
// decimal point, NaN as "NaN".
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
