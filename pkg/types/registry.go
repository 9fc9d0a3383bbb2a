package types

import (
	"errors"
	"fmt"
	"math"
)

// AnimalFilter selects animals. Zero-valued fields match everything.
type AnimalFilter struct {
	Kind AnimalKind
	Name string
}

// StaffFilter selects staff members. Zero-valued fields match everything.
type StaffFilter struct {
	Kind StaffKind
	Name string
}

// Registry defines backend-agnostic storage for a zoo. The persisted
// document is the source of truth: every mutation rewrites it wholesale.
type Registry interface {
	// Attach connects the Registry to the storage described by config and
	// loads the persisted document, creating an empty one if none exists.
	// Returns ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent.
	Detach() error

	// Zoo returns a freshly built Zoo holding every stored entity.
	Zoo() (*Zoo, error)

	// Replace discards all stored entities and stores zoo instead.
	Replace(zoo *Zoo) error

	AddAnimal(a Animal) error
	AddStaff(s Staff) error

	// Animals returns the animals matching filter in insertion order.
	Animals(filter AnimalFilter) ([]Animal, error)

	// StaffMembers returns the staff matching filter in insertion order.
	StaffMembers(filter StaffFilter) ([]Staff, error)
}

// Registry lifecycle errors.
var (
	ErrRegistryDetached = errors.New("registry is detached")
	ErrAlreadyAttached  = errors.New("registry is already attached")
)

// Entity errors.
var (
	ErrUnknownKind      = errors.New("unknown kind")
	ErrMissingAttribute = errors.New("missing variant attribute")
	ErrInvalidAttribute = errors.New("invalid variant attribute")
	ErrInvalidName      = errors.New("invalid name")
	ErrInvalidAge       = errors.New("invalid age")
	ErrNotFound         = errors.New("entity not found")
)

// validateBeing checks the fields common to every entity.
func validateBeing(name string, age int) error {
	if name == "" {
		return ErrInvalidName
	}
	if age < 0 {
		return ErrInvalidAge
	}
	return nil
}

// ValidateAnimal reports whether a can be stored. A wing span must be a
// finite number; the document format has no NaN or infinity.
func ValidateAnimal(a Animal) error {
	if err := validateBeing(a.Name(), a.Age()); err != nil {
		return err
	}
	return ValidateAttributes(a.Attributes())
}

// ValidateAttributes returns ErrInvalidAttribute for a non-finite wing span.
func ValidateAttributes(attrs Attributes) error {
	if ws := attrs.WingSpan; ws != nil && (math.IsNaN(*ws) || math.IsInf(*ws, 0)) {
		return fmt.Errorf("%w: wing_span %v is not finite", ErrInvalidAttribute, *ws)
	}
	return nil
}

// ValidateStaff reports whether s can be stored.
func ValidateStaff(s Staff) error {
	return validateBeing(s.Name(), s.Age())
}
