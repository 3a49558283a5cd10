package fields

import (
	"context"
	"fmt"
	"reflect"
	"strings"
)

// StructSource reads field names off an annotated Go struct in declaration
// order. The `admin` tag controls the mapping: `admin:"-"` skips a field,
// a name segment overrides the derived name, and a `readonly` flag keeps
// the field on the model but out of the remaining pool. Without an admin
// tag the json tag name applies, then the snake_case of the Go name.
// Embedded structs are flattened in place; unexported fields are skipped.
type StructSource struct {
	names    []string
	readonly []string
}

// Struct builds a StructSource from a struct value or pointer to one.
func Struct(model any) (*StructSource, error) {
	t := reflect.TypeOf(model)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("fields: model %T is not a struct", model)
	}

	src := &StructSource{}
	src.collect(t)
	return src, nil
}

// FieldNames returns the editable field names in declaration order,
// read-only fields included.
func (s *StructSource) FieldNames(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]string(nil), s.names...), nil
}

// ReadonlyFields returns the names tagged readonly, in declaration order.
func (s *StructSource) ReadonlyFields() []string {
	return append([]string(nil), s.readonly...)
}

func (s *StructSource) collect(t reflect.Type) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		// Unexported embedded structs still promote their exported fields,
		// mirroring encoding/json.
		if field.Anonymous {
			embedded := field.Type
			for embedded.Kind() == reflect.Pointer {
				embedded = embedded.Elem()
			}
			if embedded.Kind() == reflect.Struct && field.Tag.Get("admin") == "" {
				s.collect(embedded)
				continue
			}
		}
		if field.PkgPath != "" {
			continue
		}

		name, readonly, skip := parseAdminTag(field)
		if skip {
			continue
		}
		s.names = append(s.names, name)
		if readonly {
			s.readonly = append(s.readonly, name)
		}
	}
}

func parseAdminTag(field reflect.StructField) (name string, readonly, skip bool) {
	tag := field.Tag.Get("admin")
	if tag == "-" {
		return "", false, true
	}

	segments := strings.Split(tag, ",")
	name = strings.TrimSpace(segments[0])
	for _, flag := range segments[1:] {
		if strings.TrimSpace(flag) == "readonly" {
			readonly = true
		}
	}

	if name == "" {
		name = jsonName(field)
	}
	if name == "" {
		name = snakeCase(field.Name)
	}
	return name, readonly, false
}

func jsonName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" {
		return ""
	}
	name := strings.TrimSpace(strings.Split(tag, ",")[0])
	if name == "-" {
		return ""
	}
	return name
}

func snakeCase(name string) string {
	var out strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && name[i-1] >= 'a' && name[i-1] <= 'z' {
				out.WriteByte('_')
			}
			out.WriteRune(r - 'A' + 'a')
			continue
		}
		out.WriteRune(r)
	}
	return out.String()
}
