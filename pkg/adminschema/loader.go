package adminschema

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-admin-fieldsets/pkg/fieldset"
)

// LoadFS walks the provided filesystem and parses every JSON/YAML admin
// document it finds. When fsys is nil or holds no documents, the returned
// store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{admins: make(map[string]Definition)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isSchemaFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("adminschema: read %s: %w", path, err)
		}
		return store.merge(data, path)
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

// LoadPath loads either a single document file or a directory tree.
func LoadPath(path string) (*Store, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("adminschema: stat %s: %w", path, err)
	}
	if info.IsDir() {
		return LoadFS(os.DirFS(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("adminschema: read %s: %w", path, err)
	}
	store := &Store{admins: make(map[string]Definition)}
	if err := store.merge(data, path); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *Store) merge(data []byte, source string) error {
	doc, err := parseDocument(data, source)
	if err != nil {
		return err
	}

	for rawID, raw := range doc.Admins {
		id := strings.TrimSpace(rawID)
		if id == "" {
			return fmt.Errorf("adminschema: file %s defines an empty admin id", source)
		}
		if _, exists := s.admins[id]; exists {
			return fmt.Errorf("adminschema: duplicate admin %q (file %s)", id, source)
		}

		def, err := normaliseDefinition(raw, id, source)
		if err != nil {
			return err
		}
		s.admins[id] = def
	}
	return nil
}

type documentFile struct {
	Admins map[string]definitionFile `json:"admins" yaml:"admins"`
}

type definitionFile struct {
	Placeholder string         `json:"placeholder" yaml:"placeholder"`
	Exclude     []string       `json:"exclude" yaml:"exclude"`
	Readonly    []string       `json:"readonly" yaml:"readonly"`
	Fieldsets   []fieldsetFile `json:"fieldsets" yaml:"fieldsets"`
}

type fieldsetFile struct {
	Label       string              `json:"label" yaml:"label"`
	Fields      []fieldset.FieldRef `json:"fields" yaml:"fields"`
	Classes     []string            `json:"classes" yaml:"classes"`
	Description string              `json:"description" yaml:"description"`
}

func parseDocument(data []byte, source string) (documentFile, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("adminschema: file %s is empty", source)
	}

	var doc documentFile
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	return documentFile{}, fmt.Errorf("adminschema: parse %s: invalid JSON or YAML", source)
}

func normaliseDefinition(raw definitionFile, id, source string) (Definition, error) {
	def := Definition{
		ID:          id,
		Source:      source,
		Placeholder: strings.TrimSpace(raw.Placeholder),
		Exclude:     cleanNames(raw.Exclude),
		Readonly:    cleanNames(raw.Readonly),
	}
	if def.Placeholder == "" {
		def.Placeholder = fieldset.DefaultPlaceholder
	}

	seen := make(map[string]string, 8)
	for idx, group := range raw.Fieldsets {
		if len(group.Fields) == 0 {
			return Definition{}, fmt.Errorf("adminschema: admin %q (file %s) fieldset %d has no fields", id, source, idx)
		}

		rows := make([]fieldset.FieldRef, 0, len(group.Fields))
		for _, ref := range group.Fields {
			for _, name := range ref {
				trimmed := strings.TrimSpace(name)
				if trimmed == "" {
					return Definition{}, fmt.Errorf("adminschema: admin %q (file %s) fieldset %d contains an empty field name", id, source, idx)
				}
				if trimmed == def.Placeholder && !ref.Grouped() {
					continue
				}
				if prior, dup := seen[trimmed]; dup {
					return Definition{}, fmt.Errorf("adminschema: admin %q (file %s) declares field %q twice (first in fieldset %s)", id, source, trimmed, prior)
				}
				seen[trimmed] = fmt.Sprint(idx)
			}
			rows = append(rows, ref.Clone())
		}

		def.Fieldsets = append(def.Fieldsets, fieldset.Fieldset{
			Label: strings.TrimSpace(group.Label),
			Options: fieldset.Options{
				Fields:      rows,
				Classes:     cleanNames(group.Classes),
				Description: strings.TrimSpace(group.Description),
			},
		})
	}

	return def, nil
}

func cleanNames(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func isSchemaFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
