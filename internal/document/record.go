// Package document converts a Zoo to and from its persisted JSON document.
// Every animal record carries the same field set: the variant's own
// attribute holds a value and the other two are null.
package document

// JSON field names of an animal or staff record.
const (
	fieldType      = "type"
	fieldName      = "name"
	fieldAge       = "age"
	fieldWingSpan  = "wing_span"
	fieldFurColor  = "fur_color"
	fieldScaleType = "scale_type"
)

// Top-level collection names.
const (
	collectionAnimals = "animals"
	collectionStaff   = "staff"
)

// zooJSON is the top-level document.
type zooJSON struct {
	Animals []animalJSON `json:"animals"`
	Staff   []staffJSON  `json:"staff"`
}

// animalJSON represents an animal. The attribute fields have no omitempty:
// absent attributes are written as null.
type animalJSON struct {
	Type      string   `json:"type"`
	Name      string   `json:"name"`
	Age       int      `json:"age"`
	WingSpan  *float64 `json:"wing_span"`
	FurColor  *string  `json:"fur_color"`
	ScaleType *string  `json:"scale_type"`
}

// staffJSON represents a staff member.
type staffJSON struct {
	Type string `json:"type"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}
