package field

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"docfill/markup"
)

// genderFieldName is a fixed-domain dropdown carried over from the medical
// report templates this tool was written for: "m" selects the second list
// entry, "w" the first.
const genderFieldName = "Patientengeschlecht"

// Set applies value to every target of the field using the type-appropriate
// strategy. Targets are updated in discovery order and mutations are NOT
// rolled back when a later target fails - the document is left partially
// updated and the error describes the first failure.
func (f *Field) Set(value string, log *zap.Logger) error {
	for _, target := range f.Targets {
		switch f.Type {
		case FieldTypeRichText, FieldTypeText, FieldTypeComboBox:
			if err := setFormatted(target, value, log); err != nil {
				return err
			}
		case FieldTypeDropdownList:
			if err := f.selectEntry(target, value); err != nil {
				return err
			}
		case FieldTypeDate:
			// no markup for dates, value goes in verbatim
			if err := target.SetText(value); err != nil {
				return err
			}
		case FieldTypePicture, FieldTypeBuildingBlock, FieldTypeGroup, FieldTypeCheckbox:
			return &UnsupportedFieldTypeError{Name: f.Name, Type: f.Type}
		default:
			return &UnsupportedFieldTypeError{Name: f.Name, Type: f.Type}
		}
	}
	return nil
}

// setFormatted parses inline markup out of value, sets the resulting plain
// text and applies every formatting span over its character interval.
func setFormatted(target Target, value string, log *zap.Logger) error {
	text, spans, err := markup.Parse(value)
	if err != nil {
		return fmt.Errorf("unable to parse value %q: %w", value, err)
	}

	if err := target.SetText(text); err != nil {
		return err
	}

	length := len([]rune(text))
	for _, span := range spans {
		stop := span.Stop
		if !span.Closed() {
			// tag was never closed - treat the span as running to the end of text
			log.Debug("Unclosed tag in value, extending span to end of text",
				zap.String("tag", span.Tag), zap.String("value", value))
			stop = length
		}

		sub := target.DuplicateRange()
		if err := sub.SetBounds(span.Start, stop); err != nil {
			return err
		}

		switch span.Tag {
		case "b":
			err = sub.SetBold(true)
		case "i":
			err = sub.SetItalic(true)
		case "font":
			var size int
			if size, err = strconv.Atoi(span.Attrs["size"]); err != nil {
				err = fmt.Errorf("invalid font size %q in %q: %w", span.Attrs["size"], value, err)
				break
			}
			err = sub.SetFontSize(size)
		default:
			err = &UnsupportedTagError{Tag: span.Tag, Span: span, Value: value}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// selectEntry picks a dropdown list entry for value.
func (f *Field) selectEntry(target Target, value string) error {
	if f.Name == genderFieldName {
		switch value {
		case "m":
			return target.SelectEntry(2)
		case "w":
			return target.SelectEntry(1)
		default:
			return &InvalidDomainValueError{Name: f.Name, Value: value, Allowed: []string{"m", "w"}}
		}
	}

	for i, entry := range target.ListEntries() {
		if entry == value {
			return target.SelectEntry(i + 1)
		}
	}
	return &NoMatchingEntryError{Name: f.Name, Value: value}
}
