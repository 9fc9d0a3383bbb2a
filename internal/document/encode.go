package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/mesh-intelligence/zoo/pkg/types"
)

// indent matches the four-space layout of existing zoo documents.
const indent = "    "

// Marshal renders zoo as an indented UTF-8 document. Non-ASCII text is
// written literally. Empty collections are written as [].
func Marshal(zoo *types.Zoo) ([]byte, error) {
	doc := zooJSON{
		Animals: make([]animalJSON, 0, len(zoo.Animals)),
		Staff:   make([]staffJSON, 0, len(zoo.Staff)),
	}
	for _, a := range zoo.Animals {
		if err := types.ValidateAttributes(a.Attributes()); err != nil {
			return nil, fmt.Errorf("encoding animal %q: %w", a.Name(), err)
		}
		doc.Animals = append(doc.Animals, dehydrateAnimal(a))
	}
	for _, s := range zoo.Staff {
		doc.Staff = append(doc.Staff, dehydrateStaff(s))
	}

	var buf bytes.Buffer
	if err := newEncoder(&buf).Encode(doc); err != nil {
		return nil, fmt.Errorf("encoding zoo: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteAnimals writes animals to w as an array of animal records.
func WriteAnimals(w io.Writer, animals []types.Animal) error {
	records := make([]animalJSON, 0, len(animals))
	for _, a := range animals {
		if err := types.ValidateAttributes(a.Attributes()); err != nil {
			return fmt.Errorf("encoding animal %q: %w", a.Name(), err)
		}
		records = append(records, dehydrateAnimal(a))
	}
	return newEncoder(w).Encode(records)
}

// WriteStaff writes staff to w as an array of staff records.
func WriteStaff(w io.Writer, staff []types.Staff) error {
	records := make([]staffJSON, 0, len(staff))
	for _, s := range staff {
		records = append(records, dehydrateStaff(s))
	}
	return newEncoder(w).Encode(records)
}

func newEncoder(w io.Writer) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	return enc
}

func dehydrateAnimal(a types.Animal) animalJSON {
	attrs := a.Attributes()
	return animalJSON{
		Type:      string(a.Kind()),
		Name:      a.Name(),
		Age:       a.Age(),
		WingSpan:  attrs.WingSpan,
		FurColor:  attrs.FurColor,
		ScaleType: attrs.ScaleType,
	}
}

func dehydrateStaff(s types.Staff) staffJSON {
	return staffJSON{
		Type: string(s.Kind()),
		Name: s.Name(),
		Age:  s.Age(),
	}
}
