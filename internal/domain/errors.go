package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by all layers
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidState    = errors.New("invalid state")
	ErrMalformedRecord = errors.New("malformed record")
	ErrInvalidEntry    = errors.New("invalid entry")
	ErrDuplicatePair   = errors.New("duplicate language pair")
)

// MalformedRecordError describes a persisted line that could not be parsed
type MalformedRecordError struct {
	File string
	Line int
	Text string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("%s:%d: malformed record %q", e.File, e.Line, e.Text)
}

func (e *MalformedRecordError) Unwrap() error { return ErrMalformedRecord }
