package fields

import "context"

// Source yields the editable field names of a model in declaration order.
type Source interface {
	FieldNames(ctx context.Context) ([]string, error)
}

// ReadonlySource is implemented by sources that can also report which
// fields are read-only. Expansion subtracts those from the remaining pool.
type ReadonlySource interface {
	ReadonlyFields() []string
}

// SourceFunc adapts a function into a Source.
type SourceFunc func(ctx context.Context) ([]string, error)

// FieldNames calls the underlying function.
func (fn SourceFunc) FieldNames(ctx context.Context) ([]string, error) {
	return fn(ctx)
}

type staticSource []string

// Static builds a Source over a fixed, ordered name list.
func Static(names ...string) Source {
	return staticSource(append([]string(nil), names...))
}

func (s staticSource) FieldNames(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]string(nil), s...), nil
}
