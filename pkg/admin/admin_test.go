package admin_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-admin-fieldsets/pkg/admin"
	"github.com/goliatone/go-admin-fieldsets/pkg/fields"
	"github.com/goliatone/go-admin-fieldsets/pkg/fieldset"
)

type post struct {
	Title     string
	Slug      string
	Body      string
	Published bool
	CreatedAt string `admin:"created_at,readonly"`
}

func declaredSets() fieldset.List {
	return fieldset.List{
		{Label: "Basic", Options: fieldset.Options{Fields: []fieldset.FieldRef{
			fieldset.Ref("title"),
			fieldset.Ref("slug"),
		}}},
		{Label: "Extra", Options: fieldset.Options{Fields: []fieldset.FieldRef{
			fieldset.Ref(fieldset.DefaultPlaceholder),
		}}},
	}
}

func TestModelAdmin_ResolveFieldsets(t *testing.T) {
	ma := &admin.ModelAdmin{
		Source:    fields.Static("title", "slug", "body", "published"),
		Fieldsets: declaredSets(),
	}

	sets, err := ma.ResolveFieldsets(context.Background())
	require.NoError(t, err)
	require.Len(t, sets, 2)
	assert.Equal(t, []fieldset.FieldRef{
		fieldset.Ref("body"),
		fieldset.Ref("published"),
	}, sets[1].Options.Fields)
}

func TestModelAdmin_SourceReadonlyMerged(t *testing.T) {
	src, err := fields.Struct(post{})
	require.NoError(t, err)

	ma := &admin.ModelAdmin{
		Source:    src,
		Fieldsets: declaredSets(),
		Exclude:   []string{"published"},
	}

	sets, err := ma.ResolveFieldsets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []fieldset.FieldRef{fieldset.Ref("body")}, sets[1].Options.Fields)
	assert.False(t, sets.Contains("created_at"), "readonly field should stay out of the remaining pool")
}

func TestModelAdmin_CustomPlaceholder(t *testing.T) {
	sets := declaredSets()
	sets[1].Options.Fields = []fieldset.FieldRef{fieldset.Ref("__rest__")}

	ma := &admin.ModelAdmin{
		Source:      fields.Static("title", "slug", "body"),
		Fieldsets:   sets,
		Placeholder: "__rest__",
	}

	resolved, err := ma.ResolveFieldsets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []fieldset.FieldRef{fieldset.Ref("body")}, resolved[1].Options.Fields)
}

func TestModelAdmin_RequiresSource(t *testing.T) {
	ma := &admin.ModelAdmin{Fieldsets: declaredSets()}
	_, err := ma.ResolveFieldsets(context.Background())
	require.Error(t, err)
}

func TestModelAdmin_RemoveFields(t *testing.T) {
	ma := &admin.ModelAdmin{
		Source:    fields.Static("title", "slug", "body"),
		Fieldsets: declaredSets(),
	}

	sets, err := ma.RemoveFields(context.Background(), "slug", "body")
	require.NoError(t, err)
	require.Len(t, sets, 1)
	assert.Equal(t, []fieldset.FieldRef{fieldset.Ref("title")}, sets[0].Options.Fields)
}

func TestChain_AppliesTransformsInOrder(t *testing.T) {
	ma := &admin.ModelAdmin{
		Source:    fields.Static("title", "slug", "body", "secret"),
		Fieldsets: declaredSets(),
	}

	resolver := admin.Chain(ma,
		func(sets fieldset.List) fieldset.List { return fieldset.Remove(sets, "secret") },
		nil,
		func(sets fieldset.List) fieldset.List { return fieldset.Remove(sets, "slug") },
	)

	sets, err := resolver.ResolveFieldsets(context.Background())
	require.NoError(t, err)
	assert.False(t, sets.Contains("secret"))
	assert.False(t, sets.Contains("slug"))
	assert.True(t, sets.Contains("body"))
}
