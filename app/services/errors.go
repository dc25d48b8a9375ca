package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"
)

// The error taxonomy of the inventory store. Callers branch on these
// three types and nothing else:
//
//	ValidationError — bad or missing input; nothing was persisted
//	NotFoundError   — the referenced id does not exist
//	StorageError    — the database itself failed; writes must surface this
type (
	// ValidationError carries one human-readable reason per violated field.
	ValidationError struct {
		Fields map[string]string
	}

	// NotFoundError identifies the missing record.
	NotFoundError struct {
		Entity string
		ID     uint
	}

	// StorageError wraps an underlying persistence failure.
	StorageError struct {
		Op  string
		Err error
	}
)

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return "validation failed — " + strings.Join(parts, "; ")
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nfe *NotFoundError
	return errors.As(err, &nfe)
}

// wrapLookup translates a repository read error for one entity/id.
func wrapLookup(entity string, id uint, op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Entity: entity, ID: id}
	}
	return &StorageError{Op: op, Err: err}
}
