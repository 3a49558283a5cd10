// Package adminschema loads declarative admin definitions from JSON/YAML
// documents: the fieldset layout, exclusions, read-only names, and the
// placeholder token for one or more model admins.
package adminschema

import (
	"sort"

	"github.com/goliatone/go-admin-fieldsets/pkg/admin"
	"github.com/goliatone/go-admin-fieldsets/pkg/fields"
	"github.com/goliatone/go-admin-fieldsets/pkg/fieldset"
)

// Store keeps the parsed admin definitions. It is safe for concurrent
// readers when treated as immutable after construction.
type Store struct {
	admins map[string]Definition
}

// Definition is the declarative configuration for one model admin.
type Definition struct {
	ID          string
	Source      string
	Fieldsets   fieldset.List
	Exclude     []string
	Readonly    []string
	Placeholder string
}

// ModelAdmin binds the definition to a field source.
func (d Definition) ModelAdmin(src fields.Source) *admin.ModelAdmin {
	return &admin.ModelAdmin{
		Source:      src,
		Fieldsets:   d.Fieldsets.Clone(),
		Exclude:     append([]string(nil), d.Exclude...),
		Readonly:    append([]string(nil), d.Readonly...),
		Placeholder: d.Placeholder,
	}
}

// Admin returns the definition registered under the given id.
func (s *Store) Admin(id string) (Definition, bool) {
	if s == nil {
		return Definition{}, false
	}
	def, ok := s.admins[id]
	return def, ok
}

// Empty reports whether the store holds any definitions.
func (s *Store) Empty() bool {
	return s == nil || len(s.admins) == 0
}

// IDs returns the registered admin ids, sorted.
func (s *Store) IDs() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, 0, len(s.admins))
	for id := range s.admins {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
