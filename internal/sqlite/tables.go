package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/zoo/pkg/types"
)

// querier is implemented by both *sql.DB and *sql.Tx so reads work inside
// and outside a transaction.
type querier interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

const (
	selectAnimals = "SELECT kind, name, age, wing_span, fur_color, scale_type FROM animals"
	selectStaff   = "SELECT kind, name, age FROM staff"
)

// nextOrdinal returns the ordinal that places a new row after all others.
func nextOrdinal(q querier, table string) (int, error) {
	var next int
	err := q.QueryRow(fmt.Sprintf("SELECT COALESCE(MAX(ordinal), -1) + 1 FROM %s", table)).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("reading next %s ordinal: %w", table, err)
	}
	return next, nil
}

// insertZoo inserts every entity of zoo after the rows already present.
func insertZoo(q querier, zoo *types.Zoo) error {
	ordinal, err := nextOrdinal(q, "animals")
	if err != nil {
		return err
	}
	for _, a := range zoo.Animals {
		if err := insertAnimal(q, ordinal, a); err != nil {
			return err
		}
		ordinal++
	}

	ordinal, err = nextOrdinal(q, "staff")
	if err != nil {
		return err
	}
	for _, s := range zoo.Staff {
		if err := insertStaff(q, ordinal, s); err != nil {
			return err
		}
		ordinal++
	}
	return nil
}

func insertAnimal(q querier, ordinal int, a types.Animal) error {
	attrs := a.Attributes()
	_, err := q.Exec(
		"INSERT INTO animals (animal_id, ordinal, kind, name, age, wing_span, fur_color, scale_type) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		generateUUID(), ordinal, string(a.Kind()), a.Name(), a.Age(),
		nullFloat(attrs.WingSpan), nullString(attrs.FurColor), nullString(attrs.ScaleType),
	)
	if err != nil {
		return fmt.Errorf("inserting animal %q: %w", a.Name(), err)
	}
	return nil
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

func insertStaff(q querier, ordinal int, s types.Staff) error {
	_, err := q.Exec(
		"INSERT INTO staff (staff_id, ordinal, kind, name, age) VALUES (?, ?, ?, ?, ?)",
		generateUUID(), ordinal, string(s.Kind()), s.Name(), s.Age(),
	)
	if err != nil {
		return fmt.Errorf("inserting staff %q: %w", s.Name(), err)
	}
	return nil
}

// hydrateZoo builds a Zoo from every row, in insertion order.
func hydrateZoo(q querier) (*types.Zoo, error) {
	animals, err := queryAnimals(q, types.AnimalFilter{})
	if err != nil {
		return nil, err
	}
	staff, err := queryStaff(q, types.StaffFilter{})
	if err != nil {
		return nil, err
	}
	return &types.Zoo{Animals: animals, Staff: staff}, nil
}

// Animals returns the animals matching filter in insertion order.
// Returns ErrUnknownKind when filter.Kind names no known kind.
func (b *Backend) Animals(filter types.AnimalFilter) ([]types.Animal, error) {
	if !b.attached {
		return nil, types.ErrRegistryDetached
	}
	if filter.Kind != "" {
		if _, ok := types.ParseAnimalKind(string(filter.Kind)); !ok {
			return nil, fmt.Errorf("%w: %q", types.ErrUnknownKind, string(filter.Kind))
		}
	}
	return queryAnimals(b.db, filter)
}

// StaffMembers returns the staff matching filter in insertion order.
// Returns ErrUnknownKind when filter.Kind names no known kind.
func (b *Backend) StaffMembers(filter types.StaffFilter) ([]types.Staff, error) {
	if !b.attached {
		return nil, types.ErrRegistryDetached
	}
	if filter.Kind != "" {
		if _, ok := types.ParseStaffKind(string(filter.Kind)); !ok {
			return nil, fmt.Errorf("%w: %q", types.ErrUnknownKind, string(filter.Kind))
		}
	}
	return queryStaff(b.db, filter)
}

// whereClause builds a WHERE clause from the non-empty kind and name.
func whereClause(kind, name string) (string, []any) {
	var conds []string
	var args []any
	if kind != "" {
		conds = append(conds, "kind = ?")
		args = append(args, kind)
	}
	if name != "" {
		conds = append(conds, "name = ?")
		args = append(args, name)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func queryAnimals(q querier, filter types.AnimalFilter) ([]types.Animal, error) {
	where, args := whereClause(string(filter.Kind), filter.Name)
	rows, err := q.Query(selectAnimals+where+" ORDER BY ordinal", args...)
	if err != nil {
		return nil, fmt.Errorf("querying animals: %w", err)
	}
	defer rows.Close()

	animals := []types.Animal{}
	for rows.Next() {
		a, err := hydrateAnimal(rows)
		if err != nil {
			return nil, err
		}
		animals = append(animals, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating animals: %w", err)
	}
	return animals, nil
}

func queryStaff(q querier, filter types.StaffFilter) ([]types.Staff, error) {
	where, args := whereClause(string(filter.Kind), filter.Name)
	rows, err := q.Query(selectStaff+where+" ORDER BY ordinal", args...)
	if err != nil {
		return nil, fmt.Errorf("querying staff: %w", err)
	}
	defer rows.Close()

	staff := []types.Staff{}
	for rows.Next() {
		var kind, name string
		var age int
		if err := rows.Scan(&kind, &name, &age); err != nil {
			return nil, fmt.Errorf("scanning staff: %w", err)
		}
		s, err := types.NewStaff(types.StaffKind(kind), name, age)
		if err != nil {
			return nil, fmt.Errorf("hydrating staff %q: %w", name, err)
		}
		staff = append(staff, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating staff: %w", err)
	}
	return staff, nil
}

// hydrateAnimal converts the current row into the variant named by its kind.
func hydrateAnimal(rows *sql.Rows) (types.Animal, error) {
	var (
		kind, name string
		age        int
		wingSpan   sql.NullFloat64
		furColor   sql.NullString
		scaleType  sql.NullString
	)
	if err := rows.Scan(&kind, &name, &age, &wingSpan, &furColor, &scaleType); err != nil {
		return nil, fmt.Errorf("scanning animal: %w", err)
	}

	var attrs types.Attributes
	if wingSpan.Valid {
		attrs.WingSpan = &wingSpan.Float64
	}
	if furColor.Valid {
		attrs.FurColor = &furColor.String
	}
	if scaleType.Valid {
		attrs.ScaleType = &scaleType.String
	}

	a, err := types.NewAnimal(types.AnimalKind(kind), name, age, attrs)
	if err != nil {
		return nil, fmt.Errorf("hydrating animal %q: %w", name, err)
	}
	return a, nil
}
