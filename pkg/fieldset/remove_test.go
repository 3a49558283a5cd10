package fieldset_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-admin-fieldsets/pkg/fieldset"
)

func seoSets() fieldset.List {
	return fieldset.List{
		{Label: "Content", Options: fieldset.Options{Fields: []fieldset.FieldRef{
			fieldset.Ref("title"),
			fieldset.Group("slug", "hide_title"),
		}}},
		{Label: "SEO", Options: fieldset.Options{Fields: []fieldset.FieldRef{
			fieldset.Ref("noindex"),
			fieldset.Ref("canonical_url"),
		}}},
	}
}

func TestRemove_SingleField(t *testing.T) {
	got := fieldset.Remove(seoSets(), "noindex")

	want := fieldset.List{
		{Label: "Content", Options: fieldset.Options{Fields: []fieldset.FieldRef{
			fieldset.Ref("title"),
			fieldset.Group("slug", "hide_title"),
		}}},
		{Label: "SEO", Options: fieldset.Options{Fields: []fieldset.FieldRef{
			fieldset.Ref("canonical_url"),
		}}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("remove mismatch (-want +got):\n%s", diff)
	}
}

func TestRemove_GroupedRowCollapsesToSingle(t *testing.T) {
	got := fieldset.Remove(seoSets(), "hide_title")

	want := []fieldset.FieldRef{fieldset.Ref("title"), fieldset.Ref("slug")}
	if diff := cmp.Diff(want, got[0].Options.Fields); diff != "" {
		t.Fatalf("group did not collapse (-want +got):\n%s", diff)
	}
}

func TestRemove_EmptyGroupDropped(t *testing.T) {
	got := fieldset.Remove(seoSets(), "noindex", "canonical_url")

	if len(got) != 1 || got[0].Label != "Content" {
		t.Fatalf("expected empty SEO group to be dropped, got %#v", got)
	}
}

func TestRemove_EmptyRowDropped(t *testing.T) {
	got := fieldset.Remove(seoSets(), "slug", "hide_title")

	want := []fieldset.FieldRef{fieldset.Ref("title")}
	if diff := cmp.Diff(want, got[0].Options.Fields); diff != "" {
		t.Fatalf("emptied row should vanish (-want +got):\n%s", diff)
	}
}

func TestRemove_AbsentFieldIsNoOp(t *testing.T) {
	once := fieldset.Remove(seoSets(), "noindex")
	twice := fieldset.Remove(once, "noindex")

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Fatalf("removal not idempotent (-once +twice):\n%s", diff)
	}
}

func TestRemove_DoesNotMutateInput(t *testing.T) {
	sets := seoSets()
	snapshot := sets.Clone()

	fieldset.Remove(sets, "title", "noindex")

	if diff := cmp.Diff(snapshot, sets); diff != "" {
		t.Fatalf("input mutated (-before +after):\n%s", diff)
	}
}
