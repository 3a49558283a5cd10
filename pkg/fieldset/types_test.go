package fieldset_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-admin-fieldsets/pkg/fieldset"
)

func TestFieldRef_YAMLAcceptsScalarAndSequence(t *testing.T) {
	var opts fieldset.Options
	doc := "fields:\n  - title\n  - [slug, hide_title]\n"
	if err := yaml.Unmarshal([]byte(doc), &opts); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := []fieldset.FieldRef{fieldset.Ref("title"), fieldset.Group("slug", "hide_title")}
	if diff := cmp.Diff(want, opts.Fields); diff != "" {
		t.Fatalf("decoded rows mismatch (-want +got):\n%s", diff)
	}
}

func TestFieldRef_JSONSingleEmitsBareString(t *testing.T) {
	payload, err := json.Marshal([]fieldset.FieldRef{
		fieldset.Ref("title"),
		fieldset.Group("slug", "hide_title"),
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got, want := string(payload), `["title",["slug","hide_title"]]`; got != want {
		t.Fatalf("payload mismatch: want %s got %s", want, got)
	}
}

func TestList_FieldNamesFlattensGroups(t *testing.T) {
	sets := fieldset.List{
		{Options: fieldset.Options{Fields: []fieldset.FieldRef{
			fieldset.Group("title", "slug"),
			fieldset.Ref("published"),
		}}},
	}

	want := []string{"title", "slug", "published"}
	if diff := cmp.Diff(want, sets.FieldNames()); diff != "" {
		t.Fatalf("flattened names mismatch (-want +got):\n%s", diff)
	}
}
