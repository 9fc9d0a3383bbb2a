// Package sqlite implements the SQLite backend for the zoo Registry.
// SQLite is the query engine; the JSON document is the source of truth and
// is rewritten wholesale after every mutation.
package sqlite

// Schema DDL. The ordinal columns keep insertion order.
const (
	createAnimals = `CREATE TABLE animals (
    animal_id TEXT PRIMARY KEY,
    ordinal INTEGER NOT NULL UNIQUE,
    kind TEXT NOT NULL,
    name TEXT NOT NULL,
    age INTEGER NOT NULL,
    wing_span REAL,
    fur_color TEXT,
    scale_type TEXT
);`

	createStaff = `CREATE TABLE staff (
    staff_id TEXT PRIMARY KEY,
    ordinal INTEGER NOT NULL UNIQUE,
    kind TEXT NOT NULL,
    name TEXT NOT NULL,
    age INTEGER NOT NULL
);`

	createAnimalsKindIndex = `CREATE INDEX idx_animals_kind ON animals (kind);`
	createAnimalsNameIndex = `CREATE INDEX idx_animals_name ON animals (name);`
	createStaffKindIndex   = `CREATE INDEX idx_staff_kind ON staff (kind);`
	createStaffNameIndex   = `CREATE INDEX idx_staff_name ON staff (name);`
)

// schemaStatements lists the DDL in execution order.
var schemaStatements = []string{
	createAnimals,
	createStaff,
	createAnimalsKindIndex,
	createAnimalsNameIndex,
	createStaffKindIndex,
	createStaffNameIndex,
}
