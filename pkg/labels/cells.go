package labels

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/agentstation/labelkit/pkg/constants"
)

// FormatCell renders a cell value as text for SQL-like or CSV output.
// The second result is false for a missing value (nil or constants.NullCell).
// Booleans become "1" and "0"; floats without a fractional part are written
// as integers.
func FormatCell(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		if x == constants.NullCell {
			return "", false
		}
		return x, true
	case bool:
		if x {
			return "1", true
		}
		return "0", true
	case float64:
		return formatFloat(x), true
	case float32:
		return formatFloat(float64(x)), true
	default:
		return fmt.Sprint(x), true
	}
}

func formatFloat(f float64) string {
	if !math.IsInf(f, 0) && !math.IsNaN(f) && f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func renderCell(v any) string {
	s, ok := FormatCell(v)
	if !ok {
		return constants.NullCell
	}
	return s
}

// TrimExtension drops everything from the first dot of a file's base name:
// "data.2024.csv" becomes "data". Names without a dot are returned unchanged.
func TrimExtension(name string) string {
	base := filepath.Base(name)
	if i := strings.IndexByte(base, '.'); i >= 0 {
		return base[:i]
	}
	return base
}
