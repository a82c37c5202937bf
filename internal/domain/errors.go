package domain

import (
	"errors"
	"fmt"
)

// Domain errors (no external dependencies).
var (
	ErrNotFound         = errors.New("resource not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrMissingReference = errors.New("missing reference")
	ErrMalformedDate    = errors.New("malformed date")
	ErrMalformedField   = errors.New("malformed field")
	ErrMissingColumn    = errors.New("missing column")
)

// MissingReferenceError identifies a row pointing at an identifier that does
// not exist in its source table. Derivation aborts on the first one; a cost
// silently defaulting to 0 would be worse than no cost at all.
type MissingReferenceError struct {
	Table string // table holding the dangling reference, e.g. "matice_vyroby"
	Field string // referencing field, e.g. "ID_komponenty"
	Key   string // the unresolvable identifier
}

func (e *MissingReferenceError) Error() string {
	return fmt.Sprintf("%s: %s %q not found", e.Table, e.Field, e.Key)
}

func (e *MissingReferenceError) Unwrap() error { return ErrMissingReference }

// MalformedDateError reports a date field that does not parse under the
// day-first convention.
type MalformedDateError struct {
	Table string
	Row   int // 1-based data row
	Value string
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("%s row %d: cannot parse date %q (expected day-first DD/MM/YYYY)", e.Table, e.Row, e.Value)
}

func (e *MalformedDateError) Unwrap() error { return ErrMalformedDate }
