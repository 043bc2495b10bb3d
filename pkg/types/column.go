package types

import "strings"

// ColumnKind classifies a column for validation and coercion. The set is
// closed: callers switch over it exhaustively.
type ColumnKind int

// Column kinds.
const (
	KindText ColumnKind = iota
	KindInteger
	KindIdentity
)

// IdentityColumn is the name of the synthetic primary key every user relation
// carries.
const IdentityColumn = "id"

// String returns the upper-case name used in listings.
func (k ColumnKind) String() string {
	switch k {
	case KindText:
		return "TEXT"
	case KindInteger:
		return "INTEGER"
	case KindIdentity:
		return "IDENTITY"
	default:
		return "UNKNOWN"
	}
}

// KindOf classifies a column from its name and declared type. A column named
// "id" is always KindIdentity. Otherwise SQLite affinity rules apply: a
// declared type containing "INT" is KindInteger and anything else is KindText.
func KindOf(name, declaredType string) ColumnKind {
	if name == IdentityColumn {
		return KindIdentity
	}
	if strings.Contains(strings.ToUpper(declaredType), "INT") {
		return KindInteger
	}
	return KindText
}

// Column describes one column of a relation as reported by the catalog.
type Column struct {
	Name         string     // Column name as declared.
	Kind         ColumnKind // Classification derived from Name and DeclaredType.
	Index        int        // Zero-based position within the relation.
	DeclaredType string     // Type text from the CREATE statement, may be empty.
	NotNull      bool       // Column carries a NOT NULL constraint.
}

// Editable reports whether users may type into the column.
func (c Column) Editable() bool {
	return c.Kind != KindIdentity
}

// ColumnNames returns the names of columns in order.
func ColumnNames(columns []Column) []string {
	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = c.Name
	}
	return names
}
