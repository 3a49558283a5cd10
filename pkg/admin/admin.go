// Package admin binds a field source to a declared fieldset structure,
// playing the role the ModelAdmin override hook plays in framework admins:
// declare groups with a placeholder, resolve against the model, post-process
// through composable resolvers.
package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-admin-fieldsets/pkg/fields"
	"github.com/goliatone/go-admin-fieldsets/pkg/fieldset"
)

// ModelAdmin holds the declarative admin configuration for one model.
// The zero Placeholder means fieldset.DefaultPlaceholder.
type ModelAdmin struct {
	Source      fields.Source
	Fieldsets   fieldset.List
	Exclude     []string
	Readonly    []string
	Placeholder string
}

// Resolver produces the final fieldset structure for display.
type Resolver interface {
	ResolveFieldsets(ctx context.Context) (fieldset.List, error)
}

// ResolverFunc adapts a function into a Resolver.
type ResolverFunc func(ctx context.Context) (fieldset.List, error)

// ResolveFieldsets calls the underlying function.
func (fn ResolverFunc) ResolveFieldsets(ctx context.Context) (fieldset.List, error) {
	return fn(ctx)
}

// ResolveFieldsets reads the model's field names from the source and
// expands the declared fieldsets. Read-only fields advertised by the source
// are merged with the admin's own Readonly list.
func (a *ModelAdmin) ResolveFieldsets(ctx context.Context) (fieldset.List, error) {
	if a == nil || a.Source == nil {
		return nil, errors.New("admin: model admin requires a field source")
	}

	names, err := a.Source.FieldNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin: resolve model fields: %w", err)
	}

	readonly := append([]string(nil), a.Readonly...)
	if src, ok := a.Source.(fields.ReadonlySource); ok {
		readonly = append(readonly, src.ReadonlyFields()...)
	}

	return fieldset.Expand(names, a.Fieldsets,
		fieldset.WithPlaceholder(a.Placeholder),
		fieldset.WithExclude(a.Exclude...),
		fieldset.WithReadonly(readonly...),
	), nil
}

// RemoveFields resolves the admin and strips the given fields from the
// result.
func (a *ModelAdmin) RemoveFields(ctx context.Context, names ...string) (fieldset.List, error) {
	sets, err := a.ResolveFieldsets(ctx)
	if err != nil {
		return nil, err
	}
	return fieldset.Remove(sets, names...), nil
}

// Chain wraps a resolver with post-processing transforms applied in order,
// the stand-in for stacking get_fieldsets overrides.
func Chain(base Resolver, transforms ...func(fieldset.List) fieldset.List) Resolver {
	return ResolverFunc(func(ctx context.Context) (fieldset.List, error) {
		sets, err := base.ResolveFieldsets(ctx)
		if err != nil {
			return nil, err
		}
		for _, transform := range transforms {
			if transform == nil {
				continue
			}
			sets = transform(sets)
		}
		return sets, nil
	})
}
