// Package field models named, typed content-control fields and applies
// values to them. One logical field name may map to several physically
// distinct occurrences in the host document (1:n), all sharing the same
// type; applying a value updates every occurrence.
package field

import (
	"sort"

	"github.com/maruel/natural"
)

// Target is the write surface of one physical content-control occurrence as
// exposed by the host document layer.
type Target interface {
	// Text returns the raw text currently held by the control.
	Text() string
	// SetText replaces the control content with plain text.
	SetText(text string) error
	// DuplicateRange returns a fresh formatting range over the control
	// content as it is after the last SetText.
	DuplicateRange() Range
	// ListEntries returns display texts of the control's list entries in
	// document order, nil when the control has none.
	ListEntries() []string
	// SelectEntry selects the list entry with the given 1-based index.
	SelectEntry(index int) error
}

// Range is a character sub-interval of a target's text that character
// formatting can be applied to. Bounds count characters, not bytes.
type Range interface {
	SetBounds(start, stop int) error
	SetBold(on bool) error
	SetItalic(on bool) error
	SetFontSize(points int) error
}

// Field aggregates every occurrence of one logical field name.
type Field struct {
	Type    FieldType
	Name    string
	Targets []Target
}

// Values returns the raw underlying text of every target, one entry per
// occurrence. Formatting is not reconstructed - reading and writing are not
// inverses with respect to markup.
func (f *Field) Values() []string {
	values := make([]string, 0, len(f.Targets))
	for _, t := range f.Targets {
		values = append(values, t.Text())
	}
	return values
}

// Index maps field names to their aggregated records. It is populated by a
// single scan of the host document before any value is applied.
type Index map[string]*Field

// Add registers one discovered occurrence. Repeated names must report the
// same control type - a mismatch fails immediately instead of silently
// keeping the first-seen type.
func (ix Index) Add(name string, typ FieldType, target Target) error {
	if f, exists := ix[name]; exists {
		if f.Type != typ {
			return &TypeMismatchError{Name: name, Have: f.Type, Got: typ}
		}
		f.Targets = append(f.Targets, target)
		return nil
	}
	ix[name] = &Field{Type: typ, Name: name, Targets: []Target{target}}
	return nil
}

// Names returns field names in natural sort order so that iteration over
// the index is deterministic.
func (ix Index) Names() []string {
	names := make([]string, 0, len(ix))
	for name := range ix {
		names = append(names, name)
	}
	sort.Sort(natural.StringSlice(names))
	return names
}
