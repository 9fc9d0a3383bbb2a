package types

import "fmt"

// AnimalKind is the discriminant of an Animal variant. Its string value is
// the type tag written to persisted documents.
type AnimalKind string

// Animal kinds.
const (
	KindBird    AnimalKind = "Bird"
	KindMammal  AnimalKind = "Mammal"
	KindReptile AnimalKind = "Reptile"
)

// AnimalKinds lists the known animal kinds in a stable order.
var AnimalKinds = []AnimalKind{KindBird, KindMammal, KindReptile}

// ParseAnimalKind returns the kind whose tag equals s exactly.
func ParseAnimalKind(s string) (AnimalKind, bool) {
	k := AnimalKind(s)
	_, ok := animalConstructors[k]
	return k, ok
}

// Attributes holds the variant-specific animal attributes. A variant sets
// only its own field; the others stay nil.
type Attributes struct {
	WingSpan  *float64
	FurColor  *string
	ScaleType *string
}

// Animal is the capability shared by every animal variant.
type Animal interface {
	Name() string
	Age() int
	Kind() AnimalKind
	Attributes() Attributes

	// Sound describes the noise the animal makes.
	Sound() string

	// SoundFile is the relative path of the audio clip for this variant.
	SoundFile() string

	Eat() string
}

// Compile-time interface checks.
var (
	_ Animal = (*Bird)(nil)
	_ Animal = (*Mammal)(nil)
	_ Animal = (*Reptile)(nil)
)

// being carries the fields common to animals and staff.
type being struct {
	name string
	age  int
}

func (b being) Name() string { return b.name }
func (b being) Age() int     { return b.age }

// creature is the part shared by every animal variant.
type creature struct {
	being
}

// Eat describes the animal taking food.
func (c creature) Eat() string { return fmt.Sprintf("%s принимает пищу", c.name) }

// Bird is an animal with a wingspan.
type Bird struct {
	creature
	WingSpan float64
}

// NewBird creates a Bird.
func NewBird(name string, age int, wingSpan float64) *Bird {
	return &Bird{creature: creature{being{name: name, age: age}}, WingSpan: wingSpan}
}

func (b *Bird) Kind() AnimalKind { return KindBird }

func (b *Bird) Attributes() Attributes {
	ws := b.WingSpan
	return Attributes{WingSpan: &ws}
}

func (b *Bird) Sound() string     { return b.name + " орёт 'Попка-дурак'" }
func (b *Bird) SoundFile() string { return "sound/popugai.wav" }

// Mammal is an animal with a fur color.
type Mammal struct {
	creature
	FurColor string
}

// NewMammal creates a Mammal.
func NewMammal(name string, age int, furColor string) *Mammal {
	return &Mammal{creature: creature{being{name: name, age: age}}, FurColor: furColor}
}

func (m *Mammal) Kind() AnimalKind { return KindMammal }

func (m *Mammal) Attributes() Attributes {
	fc := m.FurColor
	return Attributes{FurColor: &fc}
}

func (m *Mammal) Sound() string     { return m.name + " рычит: Р-р-р-р-р" }
func (m *Mammal) SoundFile() string { return "sound/lion.wav" }

// Reptile is an animal with a scale type.
type Reptile struct {
	creature
	ScaleType string
}

// NewReptile creates a Reptile.
func NewReptile(name string, age int, scaleType string) *Reptile {
	return &Reptile{creature: creature{being{name: name, age: age}}, ScaleType: scaleType}
}

func (r *Reptile) Kind() AnimalKind { return KindReptile }

func (r *Reptile) Attributes() Attributes {
	st := r.ScaleType
	return Attributes{ScaleType: &st}
}

func (r *Reptile) Sound() string     { return r.name + " шипит: Ш-ш-ш-ш-ш-ш" }
func (r *Reptile) SoundFile() string { return "sound/snake.wav" }

// animalConstructors maps each discriminant to the constructor that builds
// the variant from its own attribute.
var animalConstructors = map[AnimalKind]func(name string, age int, attrs Attributes) (Animal, error){
	KindBird: func(name string, age int, attrs Attributes) (Animal, error) {
		if attrs.WingSpan == nil {
			return nil, fmt.Errorf("%w: wing_span", ErrMissingAttribute)
		}
		return NewBird(name, age, *attrs.WingSpan), nil
	},
	KindMammal: func(name string, age int, attrs Attributes) (Animal, error) {
		if attrs.FurColor == nil {
			return nil, fmt.Errorf("%w: fur_color", ErrMissingAttribute)
		}
		return NewMammal(name, age, *attrs.FurColor), nil
	},
	KindReptile: func(name string, age int, attrs Attributes) (Animal, error) {
		if attrs.ScaleType == nil {
			return nil, fmt.Errorf("%w: scale_type", ErrMissingAttribute)
		}
		return NewReptile(name, age, *attrs.ScaleType), nil
	},
}

// NewAnimal builds the variant identified by kind. Attributes belonging to
// other variants are ignored.
// Returns ErrUnknownKind for an unrecognized kind and ErrMissingAttribute
// when the variant's own attribute is nil.
func NewAnimal(kind AnimalKind, name string, age int, attrs Attributes) (Animal, error) {
	build, ok := animalConstructors[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
	}
	return build(name, age, attrs)
}

// MakeSound plays the animal's sound clip through p and returns the sound
// description. A nil player plays nothing. The description is returned even
// when playback fails.
func MakeSound(a Animal, p SoundPlayer) (string, error) {
	desc := a.Sound()
	if p == nil {
		return desc, nil
	}
	if err := p.Play(a.SoundFile()); err != nil {
		return desc, fmt.Errorf("playing %s: %w", a.SoundFile(), err)
	}
	return desc, nil
}
