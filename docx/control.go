package docx

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"docfill/field"
)

// Control is a single w:sdt structured document tag occurrence. It
// implements field.Target against the element tree it was discovered in.
type Control struct {
	name    string
	typ     field.FieldType
	sdt     *etree.Element
	props   *etree.Element // w:sdtPr
	content *etree.Element // w:sdtContent
}

// newControl inspects a w:sdt element and returns its target handle, or nil
// when the control carries neither alias nor tag and cannot be addressed by
// name.
func newControl(sdt *etree.Element) *Control {
	props := sdt.SelectElement("w:sdtPr")
	if props == nil {
		return nil
	}

	name := propVal(props, "w:alias")
	if name == "" {
		name = propVal(props, "w:tag")
	}
	if name == "" {
		return nil
	}

	content := sdt.SelectElement("w:sdtContent")
	if content == nil {
		// empty control, still addressable
		content = sdt.CreateElement("w:sdtContent")
	}

	return &Control{
		name:    name,
		typ:     controlType(props),
		sdt:     sdt,
		props:   props,
		content: content,
	}
}

func propVal(props *etree.Element, tag string) string {
	if el := props.SelectElement(tag); el != nil {
		return el.SelectAttrValue("w:val", "")
	}
	return ""
}

// controlType maps the sdtPr marker child onto the field type enumeration.
// A control without any marker is a rich-text control.
func controlType(props *etree.Element) field.FieldType {
	switch {
	case props.SelectElement("w:text") != nil:
		return field.FieldTypeText
	case props.SelectElement("w:comboBox") != nil:
		return field.FieldTypeComboBox
	case props.SelectElement("w:dropDownList") != nil:
		return field.FieldTypeDropdownList
	case props.SelectElement("w:date") != nil:
		return field.FieldTypeDate
	case props.SelectElement("w:picture") != nil:
		return field.FieldTypePicture
	case props.SelectElement("w:docPartObj") != nil, props.SelectElement("w:docPartList") != nil:
		return field.FieldTypeBuildingBlock
	case props.SelectElement("w:group") != nil:
		return field.FieldTypeGroup
	case props.SelectElement("w14:checkbox") != nil:
		return field.FieldTypeCheckbox
	default:
		return field.FieldTypeRichText
	}
}

// Name returns the control's logical field name (alias, falling back to tag).
func (c *Control) Name() string {
	return c.name
}

// Type returns the detected control type.
func (c *Control) Type() field.FieldType {
	return c.typ
}

// Text returns the concatenated text of every run under the control content.
func (c *Control) Text() string {
	var buf strings.Builder
	for _, t := range c.content.FindElements(".//w:t") {
		buf.WriteString(t.Text())
	}
	return buf.String()
}

// SetText replaces the control content with a single run holding text. The
// run formatting of the control's first existing run and the paragraph
// shape (block controls keep their paragraph) are preserved as a base for
// subsequent formatting.
func (c *Control) SetText(text string) error {
	baseRPr := copyOf(firstDescendant(c.content, "w:rPr"))
	basePPr := copyOf(firstDescendant(c.content, "w:pPr"))
	block := c.content.SelectElement("w:p") != nil

	for len(c.content.Child) > 0 {
		c.content.RemoveChildAt(0)
	}

	parent := c.content
	if block {
		parent = c.content.CreateElement("w:p")
		if basePPr != nil {
			parent.AddChild(basePPr)
		}
	}

	run := parent.CreateElement("w:r")
	if baseRPr != nil {
		run.AddChild(baseRPr)
	}
	t := run.CreateElement("w:t")
	t.SetText(text)
	preserveSpace(t)
	return nil
}

// DuplicateRange returns a fresh unbounded formatting range over the
// control content.
func (c *Control) DuplicateRange() field.Range {
	return &Range{content: c.content, start: -1, stop: -1}
}

// ListEntries returns display texts of the control's list items, nil when
// the control is not a dropdown or combo box.
func (c *Control) ListEntries() []string {
	list := c.listElement()
	if list == nil {
		return nil
	}
	var entries []string
	for _, item := range list.SelectElements("w:listItem") {
		display := item.SelectAttrValue("w:displayText", "")
		if display == "" {
			display = item.SelectAttrValue("w:value", "")
		}
		entries = append(entries, display)
	}
	return entries
}

// SelectEntry replaces the displayed content with the text of the 1-based
// list entry, the way selecting it in the host application would.
func (c *Control) SelectEntry(index int) error {
	entries := c.ListEntries()
	if entries == nil {
		return fmt.Errorf("%s: control has no list entries", c.name)
	}
	if index < 1 || index > len(entries) {
		return fmt.Errorf("%s: list entry %d out of range (have %d)", c.name, index, len(entries))
	}
	return c.SetText(entries[index-1])
}

func (c *Control) listElement() *etree.Element {
	if el := c.props.SelectElement("w:dropDownList"); el != nil {
		return el
	}
	return c.props.SelectElement("w:comboBox")
}

// firstDescendant returns the first element with the given tag anywhere
// under parent, nil when absent.
func firstDescendant(parent *etree.Element, tag string) *etree.Element {
	return parent.FindElement(".//" + tag)
}

func copyOf(el *etree.Element) *etree.Element {
	if el == nil {
		return nil
	}
	return el.Copy()
}

// preserveSpace keeps leading and trailing whitespace of run text from being
// dropped by consumers.
func preserveSpace(t *etree.Element) {
	text := t.Text()
	if strings.HasPrefix(text, " ") || strings.HasSuffix(text, " ") {
		t.CreateAttr("xml:space", "preserve")
	}
}
