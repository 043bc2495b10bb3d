package sqlite

import (
	"fmt"

	"github.com/mesh-intelligence/registrar/pkg/types"
)

// demoRecord is one row inserted by Seed. refs names earlier demo rows whose
// assigned identities fill foreign-key columns.
type demoRecord struct {
	table  string
	values types.Values
	refs   map[string]int // column -> index into the seeded ids
}

// demoRecords lists the demo rows in foreign-key order.
var demoRecords = []demoRecord{
	{
		table:  types.TableFaculty,
		values: types.Values{"name": "Computer Science", "dean": "Ada Smith", "office": int64(101)},
	},
	{
		table:  types.TableStudGroup,
		values: types.Values{"name": int64(1101)},
		refs:   map[string]int{"FacultyId": 0},
	},
	{
		table: types.TableStudent,
		values: types.Values{
			"Name": "Ivan", "Surname": "Petrov", "Patronym": "Sergeevich",
			"DateOfBirth": "2004-03-17", "Sex": "M", "Address": "12 Campus Road",
		},
		refs: map[string]int{"GroupId": 1},
	},
	{
		table: types.TableRelative,
		values: types.Values{
			"Name": "Olga", "Surname": "Petrova", "Patronym": "Ivanovna",
			"DateOfBirth": "1976-08-02", "Address": "12 Campus Road",
		},
	},
	{
		table:  types.TableStudentToRelative,
		values: types.Values{"Relationship": "mother"},
		refs:   map[string]int{"StudentId": 2, "RelativeId": 3},
	},
	{
		table:  types.TableBenefit,
		values: types.Values{"BenefitType": "scholarship", "Document": "ORD-2024-17", "IssueDate": "2024-09-01"},
		refs:   map[string]int{"StudentId": 2},
	},
}

// Seed inserts a small linked demo dataset through the regular insert path.
// It does nothing when Faculty already holds rows. Returns the number of rows
// inserted.
func (b *Backend) Seed() (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.checkAttached(); err != nil {
		return 0, err
	}

	var count int64
	if err := b.db.QueryRow("SELECT COUNT(*) FROM Faculty").Scan(&count); err != nil {
		return 0, classify(types.TableFaculty, "count", err)
	}
	if count > 0 {
		return 0, nil
	}

	ids := make([]int64, 0, len(demoRecords))
	for _, rec := range demoRecords {
		values := make(types.Values, len(rec.values)+len(rec.refs))
		for k, v := range rec.values {
			values[k] = v
		}
		for col, idx := range rec.refs {
			values[col] = ids[idx]
		}
		id, err := b.insertLocked(rec.table, values)
		if err != nil {
			return len(ids), fmt.Errorf("seeding %s: %w", rec.table, err)
		}
		ids = append(ids, id)
	}

	b.logger.Info("seeded demo data", "rows", len(ids))
	return len(ids), nil
}
