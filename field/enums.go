package field

//go:generate go tool go-enum --marshal --nocomments

// Type of a content control as reported by the host document. Determines
// which update strategy is legal for a field.
// ENUM(richText, text, picture, comboBox, dropdownList, buildingBlock, date, group, checkbox)
type FieldType int

// Formattable reports whether values of this type go through the markup
// parser and may carry inline formatting.
func (t FieldType) Formattable() bool {
	return t == FieldTypeRichText || t == FieldTypeText || t == FieldTypeComboBox
}
