package types

// Catalog reflects relation and column metadata from the live store. Nothing
// is cached beyond a single call.
type Catalog interface {
	// ListTables returns all base relations in creation order followed by
	// SystemCatalog.
	ListTables() ([]string, error)

	// ListColumns returns the columns of table in declaration order.
	// Returns a *NotFoundError if the table does not exist.
	ListColumns(table string) ([]Column, error)
}

// Store issues generic CRUD statements against a relation using
// catalog-derived column names.
type Store interface {
	// FetchAll returns every row of table in a stable order.
	FetchAll(table string) ([]Row, error)

	// Insert adds a row and returns the identity the store assigned.
	// values must carry every non-identity column.
	Insert(table string, values Values) (int64, error)

	// Update overwrites the non-identity columns of the row with the given id.
	// Returns a *NotFoundError if no such row exists.
	Update(table string, id int64, values Values) error

	// Delete removes the row with the given id. Returns an *IntegrityError
	// when other rows still reference it.
	Delete(table string, id int64) error

	// Count returns the number of rows in table.
	Count(table string) (int64, error)
}

// Repository is the combined surface the editor drives.
type Repository interface {
	Catalog
	Store
}
