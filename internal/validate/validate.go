// Package validate converts entry-field text into typed column values. It
// holds the keystroke gate for INTEGER fields and the submit-time coercion
// applied before any row reaches the store.
package validate

import (
	"strconv"

	"github.com/mesh-intelligence/registrar/pkg/types"
)

// AcceptIntegerEdit reports whether result, the full field text after a
// keystroke, may stand in an INTEGER field. Empty text and a lone "-" are the
// only accepted partial states; anything else must be an optional single
// leading minus followed by digits that fits in an int64.
func AcceptIntegerEdit(result string) bool {
	if result == "" || result == "-" {
		return true
	}
	_, ok := parseInteger(result)
	return ok
}

// parseInteger parses s as a base-10 int64 made only of digits with an
// optional single leading minus. strconv alone would also accept a "+" sign.
func parseInteger(s string) (int64, bool) {
	digits := s
	if len(digits) > 0 && digits[0] == '-' {
		digits = digits[1:]
	}
	if digits == "" {
		return 0, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Coerce converts pending field text into store values. pending is aligned to
// columns. The identity column is skipped; its value never comes from text.
// Every other column must be non-empty; INTEGER columns are parsed and range
// checked again, since programmatic population bypasses the keystroke gate.
func Coerce(columns []types.Column, pending []string) (types.Values, error) {
	if len(columns) != len(pending) {
		return nil, &types.ValidationError{
			Message: "field count does not match column count",
		}
	}

	values := make(types.Values, len(columns))
	for i, c := range columns {
		text := pending[i]
		switch c.Kind {
		case types.KindIdentity:
			continue
		case types.KindInteger:
			if text == "" {
				return nil, required(c)
			}
			n, ok := parseInteger(text)
			if !ok {
				return nil, &types.ValidationError{
					Column:  c.Name,
					Value:   text,
					Message: "not an integer in the 64-bit range",
				}
			}
			values[c.Name] = n
		case types.KindText:
			if text == "" {
				return nil, required(c)
			}
			values[c.Name] = text
		}
	}
	return values, nil
}

func required(c types.Column) error {
	return &types.ValidationError{Column: c.Name, Message: "value is required"}
}
