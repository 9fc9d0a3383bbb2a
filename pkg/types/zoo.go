package types

// Zoo holds animals and staff in insertion order. There are no uniqueness
// constraints and no references between staff and animals.
type Zoo struct {
	Animals []Animal
	Staff   []Staff
}

// NewZoo returns an empty Zoo whose collections are non-nil.
func NewZoo() *Zoo {
	return &Zoo{
		Animals: []Animal{},
		Staff:   []Staff{},
	}
}

// AddAnimal appends a to the zoo.
func (z *Zoo) AddAnimal(a Animal) {
	z.Animals = append(z.Animals, a)
}

// AddStaff appends s to the zoo.
func (z *Zoo) AddStaff(s Staff) {
	z.Staff = append(z.Staff, s)
}

// FindAnimal returns the first animal whose name equals name.
func (z *Zoo) FindAnimal(name string) (Animal, bool) {
	for _, a := range z.Animals {
		if a.Name() == name {
			return a, true
		}
	}
	return nil, false
}

// FindStaff returns the first staff member whose name equals name.
func (z *Zoo) FindStaff(name string) (Staff, bool) {
	for _, s := range z.Staff {
		if s.Name() == name {
			return s, true
		}
	}
	return nil, false
}
