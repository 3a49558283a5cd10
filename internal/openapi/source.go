package openapi

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"
)

// SchemaSource exposes the properties of one OpenAPI component schema as an
// ordered model field list. Properties flagged readOnly are reported
// separately so expansion can keep them out of the remaining pool.
type SchemaSource struct {
	component string
	names     []string
	readonly  []string
}

// LoadFile reads a JSON or YAML OpenAPI document from disk.
func LoadFile(ctx context.Context, path, component string) (*SchemaSource, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("openapi: read %s: %w", path, err)
	}
	return Load(ctx, raw, component)
}

// Load parses the document and resolves the named component schema.
func Load(ctx context.Context, raw []byte, component string) (*SchemaSource, error) {
	if len(raw) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}

	if spec.Components == nil || len(spec.Components.Schemas) == 0 {
		return nil, errors.New("openapi: document defines no component schemas")
	}
	ref, ok := spec.Components.Schemas[component]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("openapi: component schema %q not found", component)
	}
	if len(ref.Value.Properties) == 0 {
		return nil, fmt.Errorf("openapi: component schema %q has no properties", component)
	}

	src := &SchemaSource{component: component}
	for _, name := range orderedPropertyNames(raw, component, ref.Value) {
		prop, ok := ref.Value.Properties[name]
		if !ok || prop == nil || prop.Value == nil {
			continue
		}
		src.names = append(src.names, name)
		if prop.Value.ReadOnly {
			src.readonly = append(src.readonly, name)
		}
	}
	return src, nil
}

// Component returns the schema name the source was built from.
func (s *SchemaSource) Component() string {
	return s.component
}

// FieldNames returns the property names in document declaration order.
func (s *SchemaSource) FieldNames(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]string(nil), s.names...), nil
}

// ReadonlyFields returns the properties flagged readOnly, in order.
func (s *SchemaSource) ReadonlyFields() []string {
	return append([]string(nil), s.readonly...)
}

// kin-openapi stores properties in a map, so declaration order has to come
// from the raw document. A yaml.v3 node walk covers both YAML and JSON
// payloads. When the walk cannot reach the properties mapping (schemas
// behind external refs), sorted names keep the output deterministic.
func orderedPropertyNames(raw []byte, component string, schema *openapi3.Schema) []string {
	if names := propertyKeysFromDocument(raw, component); len(names) > 0 {
		return names
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func propertyKeysFromDocument(raw []byte, component string) []string {
	var root yaml.Node
	if err := yaml.Unmarshal(raw, &root); err != nil {
		return nil
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil
	}

	node := root.Content[0]
	for _, key := range []string{"components", "schemas", component, "properties"} {
		node = mappingValue(node, key)
		if node == nil {
			return nil
		}
	}
	if node.Kind != yaml.MappingNode {
		return nil
	}

	names := make([]string, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		names = append(names, node.Content[i].Value)
	}
	return names
}

func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}
