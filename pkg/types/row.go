package types

import (
	"fmt"
	"strconv"
)

// Row holds one record's cells positionally aligned to its relation's column
// sequence. For user relations cell 0 is the identity.
type Row []any

// ID returns the identity held in cell 0. The second result is false when the
// row is empty or cell 0 is not an integer (e.g. rows of the system catalog).
func (r Row) ID() (int64, bool) {
	if len(r) == 0 {
		return 0, false
	}
	id, ok := r[0].(int64)
	return id, ok
}

// Clone returns a copy of the row that does not share cell storage.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	copy(out, r)
	return out
}

// CellText renders a cell the way it appears in an entry field. NULL renders
// as the empty string.
func CellText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}

// Values maps column names to coerced values for the non-identity columns of
// a relation. Insert and Update take Values rather than positional rows so the
// identity column never shifts indexes.
type Values map[string]any
