package field

import (
	"fmt"

	"docfill/markup"
)

// UnsupportedTagError is returned when a parsed value carries a formatting
// tag the dispatcher has no strategy for.
type UnsupportedTagError struct {
	Tag   string
	Span  markup.Format
	Value string
}

func (e *UnsupportedTagError) Error() string {
	return fmt.Sprintf("unsupported tag %q (span %+v) when processing %q", e.Tag, e.Span, e.Value)
}

// UnsupportedFieldTypeError is returned when a field's type has no defined
// write behavior.
type UnsupportedFieldTypeError struct {
	Name string
	Type FieldType
}

func (e *UnsupportedFieldTypeError) Error() string {
	return fmt.Sprintf("%s: unsupported field type %s", e.Name, e.Type)
}

// NoMatchingEntryError is returned when a dropdown value matches none of the
// list entries.
type NoMatchingEntryError struct {
	Name  string
	Value string
}

func (e *NoMatchingEntryError) Error() string {
	return fmt.Sprintf("%s: no matching list entry found for %q", e.Name, e.Value)
}

// InvalidDomainValueError is returned when a value falls outside the fixed
// domain of a special-cased field.
type InvalidDomainValueError struct {
	Name    string
	Value   string
	Allowed []string
}

func (e *InvalidDomainValueError) Error() string {
	return fmt.Sprintf("%s only accepts %v, instead got %q", e.Name, e.Allowed, e.Value)
}

// TypeMismatchError is returned during document scanning when occurrences of
// one field name report different control types.
type TypeMismatchError struct {
	Name string
	Have FieldType
	Got  FieldType
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("field %q reported as both %s and %s", e.Name, e.Have, e.Got)
}
