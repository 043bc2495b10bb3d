package types

// Relations created by the SQLite backend on Attach.
const (
	TableFaculty           = "Faculty"
	TableStudGroup         = "StudGroup"
	TableStudent           = "Student"
	TableBenefit           = "Benefit"
	TableRelative          = "Relative"
	TableStudentToRelative = "StudentToRelative"
)

// SystemCatalog is the read-only pseudo-table listing schema objects. It is
// always the last entry returned by Catalog.ListTables.
const SystemCatalog = "sqlite_master"

// StandardTableNames lists the user relations in dependency order: a table
// only references tables that appear before it.
var StandardTableNames = []string{
	TableFaculty,
	TableStudGroup,
	TableStudent,
	TableBenefit,
	TableRelative,
	TableStudentToRelative,
}

// IsSystemCatalog reports whether name is the read-only pseudo-table.
func IsSystemCatalog(name string) bool {
	return name == SystemCatalog
}
