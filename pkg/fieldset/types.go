package fieldset

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// DefaultPlaceholder is the sentinel field name that marks where remaining
// model fields are spliced in during expansion.
const DefaultPlaceholder = "__remaining__"

// FieldRef is a single row within a fieldset: one field name, or several
// names rendered together on the same row. A single name serialises as a
// bare string, a grouped row as a sequence.
type FieldRef []string

// Ref builds a single-field row.
func Ref(name string) FieldRef {
	return FieldRef{name}
}

// Group builds a row holding several fields.
func Group(names ...string) FieldRef {
	return append(FieldRef(nil), names...)
}

// Grouped reports whether the row holds more than one field.
func (r FieldRef) Grouped() bool {
	return len(r) > 1
}

// Names returns a copy of the field names in the row.
func (r FieldRef) Names() []string {
	return append([]string(nil), r...)
}

// Clone returns an independent copy of the row.
func (r FieldRef) Clone() FieldRef {
	if r == nil {
		return nil
	}
	return append(FieldRef(nil), r...)
}

// The sentinel only matches as a scalar entry; a placeholder inside a
// grouped row is treated as an ordinary field name.
func (r FieldRef) isPlaceholder(token string) bool {
	return len(r) == 1 && r[0] == token
}

// MarshalJSON emits a bare string for single-field rows.
func (r FieldRef) MarshalJSON() ([]byte, error) {
	if len(r) == 1 {
		return json.Marshal(r[0])
	}
	return json.Marshal([]string(r))
}

// UnmarshalJSON accepts either a string or a list of strings.
func (r *FieldRef) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*r = FieldRef{single}
		return nil
	}
	var grouped []string
	if err := json.Unmarshal(data, &grouped); err != nil {
		return fmt.Errorf("fieldset: field ref must be a string or a list of strings")
	}
	*r = FieldRef(grouped)
	return nil
}

// MarshalYAML emits a bare scalar for single-field rows.
func (r FieldRef) MarshalYAML() (any, error) {
	if len(r) == 1 {
		return r[0], nil
	}
	return []string(r), nil
}

// UnmarshalYAML accepts either a scalar or a sequence of scalars.
func (r *FieldRef) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var single string
		if err := node.Decode(&single); err != nil {
			return err
		}
		*r = FieldRef{single}
		return nil
	case yaml.SequenceNode:
		var grouped []string
		if err := node.Decode(&grouped); err != nil {
			return err
		}
		*r = FieldRef(grouped)
		return nil
	default:
		return fmt.Errorf("fieldset: field ref must be a scalar or a sequence (line %d)", node.Line)
	}
}

// Options carries the per-group display settings. Fields is the only
// required entry; Classes and Description pass through to renderers.
type Options struct {
	Fields      []FieldRef `json:"fields" yaml:"fields"`
	Classes     []string   `json:"classes,omitempty" yaml:"classes,omitempty"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
}

// Clone returns an independent copy of the options.
func (o Options) Clone() Options {
	out := o
	if o.Fields != nil {
		out.Fields = make([]FieldRef, len(o.Fields))
		for i, ref := range o.Fields {
			out.Fields[i] = ref.Clone()
		}
	}
	if o.Classes != nil {
		out.Classes = append([]string(nil), o.Classes...)
	}
	return out
}

// Fieldset is one named group of rows. An empty Label renders unlabeled.
type Fieldset struct {
	Label   string  `json:"label,omitempty" yaml:"label,omitempty"`
	Options Options `json:"options" yaml:"options"`
}

// Clone returns an independent copy of the group.
func (f Fieldset) Clone() Fieldset {
	return Fieldset{Label: f.Label, Options: f.Options.Clone()}
}

// List is the ordered sequence of groups an admin declares.
type List []Fieldset

// Clone returns an independent copy of the whole structure.
func (l List) Clone() List {
	if l == nil {
		return nil
	}
	out := make(List, len(l))
	for i, set := range l {
		out[i] = set.Clone()
	}
	return out
}

// FieldNames flattens every row into a single ordered name list, grouped
// rows included.
func (l List) FieldNames() []string {
	var names []string
	for _, set := range l {
		for _, ref := range set.Options.Fields {
			names = append(names, ref...)
		}
	}
	return names
}

// Contains reports whether any row mentions the field.
func (l List) Contains(name string) bool {
	for _, set := range l {
		for _, ref := range set.Options.Fields {
			for _, candidate := range ref {
				if candidate == name {
					return true
				}
			}
		}
	}
	return false
}

// HasPlaceholder reports whether any row is the given sentinel. An empty
// token checks for DefaultPlaceholder.
func (l List) HasPlaceholder(token string) bool {
	if token == "" {
		token = DefaultPlaceholder
	}
	for _, set := range l {
		for _, ref := range set.Options.Fields {
			if ref.isPlaceholder(token) {
				return true
			}
		}
	}
	return false
}
