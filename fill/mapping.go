package fill

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"github.com/maruel/natural"
	yaml "gopkg.in/yaml.v3"
)

// Mapping holds the field values to apply, field name to raw value. Values
// may contain inline markup, interpretation is up to the field dispatcher.
type Mapping struct {
	values map[string]string
}

// LoadMapping reads a YAML file of "name: value" pairs. Nested structures are
// rejected - a mapping entry is always a single string.
func LoadMapping(path string) (*Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read mapping file: %w", err)
	}

	values := make(map[string]string)
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&values); err != nil {
		return nil, fmt.Errorf("unable to decode mapping file (%s): %w", path, err)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("mapping file (%s) has no entries", path)
	}
	return &Mapping{values: values}, nil
}

// Names returns mapping keys in natural order. Fields are applied in this
// order so that the first failure in a document is deterministic.
func (m *Mapping) Names() []string {
	names := make([]string, 0, len(m.values))
	for name := range m.values {
		names = append(names, name)
	}
	sort.Sort(natural.StringSlice(names))
	return names
}

func (m *Mapping) Value(name string) (string, bool) {
	v, ok := m.values[name]
	return v, ok
}

func (m *Mapping) Len() int {
	return len(m.values)
}
