package types

import "fmt"

// StaffKind is the discriminant of a Staff variant. Its string value is the
// type tag written to persisted documents.
type StaffKind string

// Staff kinds.
const (
	KindZooKeeper    StaffKind = "ZooKeeper"
	KindVeterinarian StaffKind = "Veterinarian"
)

// StaffKinds lists the known staff kinds in a stable order.
var StaffKinds = []StaffKind{KindZooKeeper, KindVeterinarian}

// ParseStaffKind returns the kind whose tag equals s exactly.
func ParseStaffKind(s string) (StaffKind, bool) {
	k := StaffKind(s)
	_, ok := staffConstructors[k]
	return k, ok
}

// Staff is the capability shared by every staff variant.
type Staff interface {
	Name() string
	Age() int
	Kind() StaffKind

	// Duty describes the staff member performing their job on a.
	Duty(a Animal) string
}

// Compile-time interface checks.
var (
	_ Staff = (*ZooKeeper)(nil)
	_ Staff = (*Veterinarian)(nil)
)

// ZooKeeper feeds animals.
type ZooKeeper struct {
	being
}

// NewZooKeeper creates a ZooKeeper.
func NewZooKeeper(name string, age int) *ZooKeeper {
	return &ZooKeeper{being: being{name: name, age: age}}
}

func (k *ZooKeeper) Kind() StaffKind { return KindZooKeeper }

// Feed describes the keeper feeding a. The animal's name is put in the
// accusative via Accusative.
func (k *ZooKeeper) Feed(a Animal) string {
	return fmt.Sprintf("%s кормит %s", k.name, Accusative(a.Name()))
}

func (k *ZooKeeper) Duty(a Animal) string { return k.Feed(a) }

// Veterinarian heals animals.
type Veterinarian struct {
	being
}

// NewVeterinarian creates a Veterinarian.
func NewVeterinarian(name string, age int) *Veterinarian {
	return &Veterinarian{being: being{name: name, age: age}}
}

func (v *Veterinarian) Kind() StaffKind { return KindVeterinarian }

// Heal describes the veterinarian healing a.
func (v *Veterinarian) Heal(a Animal) string {
	return fmt.Sprintf("%s лечит %s", v.name, Accusative(a.Name()))
}

func (v *Veterinarian) Duty(a Animal) string { return v.Heal(a) }

var staffConstructors = map[StaffKind]func(name string, age int) Staff{
	KindZooKeeper:    func(name string, age int) Staff { return NewZooKeeper(name, age) },
	KindVeterinarian: func(name string, age int) Staff { return NewVeterinarian(name, age) },
}

// NewStaff builds the variant identified by kind.
// Returns ErrUnknownKind for an unrecognized kind.
func NewStaff(kind StaffKind, name string, age int) (Staff, error) {
	build, ok := staffConstructors[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
	}
	return build(name, age), nil
}
