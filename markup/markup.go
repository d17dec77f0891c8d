// Package markup implements the inline formatting mini-language used in
// field values. Values may contain tags like
//
//	<b>bold</b>, <i>italic</i> or <font size=12>big</font>
//
// which are stripped from the text and returned as formatting spans over the
// remaining characters. A backslash escapes the immediately following
// character, so "\<", "\>" and "\\" produce literal characters.
package markup

import (
	"fmt"
	"strings"
)

// StopUnset marks a span whose closing tag was never seen. Such spans are
// not an error here - the caller decides how to treat them (the dispatcher
// extends them to the end of the inserted text).
const StopUnset = -1

// Format is a single formatting instruction over the half-open character
// interval [Start, Stop) of the parsed plain text. Offsets count characters
// (runes), not bytes. Attribute values are kept as strings, interpretation
// is up to the consumer.
type Format struct {
	Tag   string
	Start int
	Stop  int
	Attrs map[string]string
}

// Closed reports whether the span was terminated by a matching closing tag.
func (f Format) Closed() bool {
	return f.Stop != StopUnset
}

// UnmatchedTagError is returned when a closing tag has no still-open
// counterpart anywhere on the tag stack.
type UnmatchedTagError struct {
	Tag string
}

func (e *UnmatchedTagError) Error() string {
	return fmt.Sprintf("could not find matching start for closing tag %q", e.Tag)
}

// Parse scans raw left to right in a single pass and returns the plain text
// with all tags and escapes removed, along with formatting spans in the
// order their opening tags appeared. Tag names are case-sensitive and do
// not have to close in strict nesting order relative to siblings - the
// nearest still-open span with the matching name is the one closed.
func Parse(raw string) (string, []Format, error) {
	var (
		text    strings.Builder
		curtag  strings.Builder
		spans   []Format
		index   int
		inTag   bool
		escaped bool
	)

	for _, c := range raw {
		switch {
		case c == '\\' && !escaped:
			escaped = true
		case c == '<' && !escaped:
			curtag.Reset()
			inTag = true
		case c == '>' && inTag && !escaped:
			name, attrs := parseTag(curtag.String())
			if closing, ok := strings.CutPrefix(name, "/"); ok {
				if !closeSpan(spans, closing, index) {
					return "", nil, &UnmatchedTagError{Tag: name}
				}
			} else {
				spans = append(spans, Format{Tag: name, Start: index, Stop: StopUnset, Attrs: attrs})
			}
			inTag = false
		case inTag:
			curtag.WriteRune(c)
			escaped = false
		default:
			text.WriteRune(c)
			index++
			escaped = false
		}
	}

	return text.String(), spans, nil
}

// closeSpan marks the most recently opened still-open span with the given
// tag as ended at stop. Closed spans stay in place so the result keeps
// discovery order.
func closeSpan(spans []Format, tag string, stop int) bool {
	for i := len(spans) - 1; i >= 0; i-- {
		if spans[i].Tag == tag && !spans[i].Closed() {
			spans[i].Stop = stop
			return true
		}
	}
	return false
}

// parseTag splits accumulated tag content into name and attributes. Tokens
// are separated by single spaces, attribute values cannot contain spaces and
// are not quoted. Each attribute token is cut on the first "=", everything
// after it (including further "=") belongs to the value.
func parseTag(tag string) (string, map[string]string) {
	tokens := strings.Split(tag, " ")
	attrs := make(map[string]string, len(tokens)-1)
	for _, t := range tokens[1:] {
		if len(t) == 0 {
			continue
		}
		k, v, _ := strings.Cut(t, "=")
		attrs[k] = v
	}
	return tokens[0], attrs
}
