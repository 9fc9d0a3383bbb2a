package document

import (
	"bytes"
	"encoding/json"

	"github.com/mesh-intelligence/zoo/pkg/types"
)

// Unmarshal rebuilds a Zoo from a document. Records whose type tag is
// unknown are skipped and returned as UnknownKindErrors; any structural
// problem fails the whole document with a *ParseError and no Zoo.
func Unmarshal(data []byte) (*types.Zoo, []*UnknownKindError, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, nil, &ParseError{Index: -1, Err: err}
	}

	animals, err := collection(top, collectionAnimals)
	if err != nil {
		return nil, nil, err
	}
	staff, err := collection(top, collectionStaff)
	if err != nil {
		return nil, nil, err
	}

	zoo := types.NewZoo()
	var skipped []*UnknownKindError

	for i, raw := range animals {
		rec, tag, err := openRecord(collectionAnimals, i, raw)
		if err != nil {
			return nil, nil, err
		}
		kind, ok := types.ParseAnimalKind(tag)
		if !ok {
			skipped = append(skipped, &UnknownKindError{Collection: collectionAnimals, Index: i, Tag: tag})
			continue
		}
		a, err := rec.animal(kind)
		if err != nil {
			return nil, nil, err
		}
		zoo.AddAnimal(a)
	}

	for i, raw := range staff {
		rec, tag, err := openRecord(collectionStaff, i, raw)
		if err != nil {
			return nil, nil, err
		}
		kind, ok := types.ParseStaffKind(tag)
		if !ok {
			skipped = append(skipped, &UnknownKindError{Collection: collectionStaff, Index: i, Tag: tag})
			continue
		}
		s, err := rec.staff(kind)
		if err != nil {
			return nil, nil, err
		}
		zoo.AddStaff(s)
	}

	return zoo, skipped, nil
}

// collection returns the records of a required top-level array.
func collection(top map[string]json.RawMessage, name string) ([]json.RawMessage, error) {
	raw, ok := top[name]
	if !ok {
		return nil, &ParseError{Collection: name, Index: -1, Err: errMissingField}
	}
	if isNull(raw) {
		return nil, &ParseError{Collection: name, Index: -1, Err: errNullField}
	}
	var records []json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, &ParseError{Collection: name, Index: -1, Err: err}
	}
	return records, nil
}

// record is one object in a collection, split into raw fields.
type record struct {
	collection string
	index      int
	fields     map[string]json.RawMessage
}

// openRecord parses raw as an object and reads its type tag.
func openRecord(collection string, index int, raw json.RawMessage) (record, string, error) {
	rec := record{collection: collection, index: index}
	if isNull(raw) {
		return rec, "", rec.fail("", errNullField)
	}
	if err := json.Unmarshal(raw, &rec.fields); err != nil {
		return rec, "", rec.fail("", err)
	}
	var tag string
	if err := rec.field(fieldType, &tag); err != nil {
		return rec, "", err
	}
	return rec, tag, nil
}

// field decodes a required, non-null field into dst.
func (r record) field(name string, dst any) error {
	raw, ok := r.fields[name]
	if !ok {
		return r.fail(name, errMissingField)
	}
	if isNull(raw) {
		return r.fail(name, errNullField)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return r.fail(name, err)
	}
	return nil
}

func (r record) fail(field string, err error) *ParseError {
	return &ParseError{Collection: r.collection, Index: r.index, Field: field, Err: err}
}

func (r record) being() (string, int, error) {
	var name string
	if err := r.field(fieldName, &name); err != nil {
		return "", 0, err
	}
	var age int
	if err := r.field(fieldAge, &age); err != nil {
		return "", 0, err
	}
	return name, age, nil
}

func (r record) animal(kind types.AnimalKind) (types.Animal, error) {
	name, age, err := r.being()
	if err != nil {
		return nil, err
	}
	var attrs types.Attributes
	if err := ownAttribute[kind](r, &attrs); err != nil {
		return nil, err
	}
	a, err := types.NewAnimal(kind, name, age, attrs)
	if err != nil {
		return nil, r.fail("", err)
	}
	return a, nil
}

func (r record) staff(kind types.StaffKind) (types.Staff, error) {
	name, age, err := r.being()
	if err != nil {
		return nil, err
	}
	s, err := types.NewStaff(kind, name, age)
	if err != nil {
		return nil, r.fail("", err)
	}
	return s, nil
}

// attributeDecoder reads a variant's own attribute from a record.
type attributeDecoder func(r record, attrs *types.Attributes) error

func attribute[T any](field string, set func(*types.Attributes, *T)) attributeDecoder {
	return func(r record, attrs *types.Attributes) error {
		var v T
		if err := r.field(field, &v); err != nil {
			return err
		}
		set(attrs, &v)
		return nil
	}
}

// ownAttribute maps each animal kind to the only attribute field it reads.
// Attribute fields of other variants are not inspected.
var ownAttribute = map[types.AnimalKind]attributeDecoder{
	types.KindBird:    attribute(fieldWingSpan, func(a *types.Attributes, v *float64) { a.WingSpan = v }),
	types.KindMammal:  attribute(fieldFurColor, func(a *types.Attributes, v *string) { a.FurColor = v }),
	types.KindReptile: attribute(fieldScaleType, func(a *types.Attributes, v *string) { a.ScaleType = v }),
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
