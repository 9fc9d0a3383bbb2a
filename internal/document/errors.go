package document

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/zoo/pkg/types"
)

// ErrMalformed reports a document whose structure does not match the zoo
// schema. A malformed document fails the whole load.
var ErrMalformed = errors.New("malformed zoo document")

var (
	errMissingField = errors.New("missing field")
	errNullField    = errors.New("field is null")
)

// ParseError locates a structural problem in a document. Collection is empty
// for document-level problems and Index is -1 when no record is involved.
// It matches ErrMalformed with errors.Is.
type ParseError struct {
	Collection string
	Index      int
	Field      string
	Err        error
}

func (e *ParseError) Error() string {
	msg := ErrMalformed.Error()
	switch {
	case e.Collection == "":
	case e.Index < 0:
		msg += fmt.Sprintf(": %s", e.Collection)
	default:
		msg += fmt.Sprintf(": %s[%d]", e.Collection, e.Index)
	}
	if e.Field != "" {
		msg += fmt.Sprintf(": field %q", e.Field)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMalformed}
	}
	return []error{ErrMalformed, e.Err}
}

// UnknownKindError reports a record whose type tag names no known variant.
// The record is skipped; the rest of the document still loads. It matches
// types.ErrUnknownKind with errors.Is.
type UnknownKindError struct {
	Collection string
	Index      int
	Tag        string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("%s[%d]: unknown type %q", e.Collection, e.Index, e.Tag)
}

func (e *UnknownKindError) Unwrap() error { return types.ErrUnknownKind }
