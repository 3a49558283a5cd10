package fields_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-admin-fieldsets/pkg/fields"
)

type timestamps struct {
	CreatedAt string `admin:"created_at,readonly"`
	UpdatedAt string `admin:"updated_at,readonly"`
}

type article struct {
	ID          int64 `admin:"-"`
	Title       string
	Slug        string `json:"slug"`
	Description string
	Published   bool
	FeaturedAt  string `admin:"featured"`
	timestamps  `admin:"-"`
	Audit       timestamps
	internal    string
}

type auditedArticle struct {
	Title string
	timestamps
}

func TestStruct_DeclarationOrderAndTags(t *testing.T) {
	src, err := fields.Struct(&article{})
	if err != nil {
		t.Fatalf("build source: %v", err)
	}

	got, err := src.FieldNames(context.Background())
	if err != nil {
		t.Fatalf("field names: %v", err)
	}

	want := []string{"title", "slug", "description", "published", "featured", "audit"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestStruct_EmbeddedStructFlattens(t *testing.T) {
	src, err := fields.Struct(auditedArticle{})
	if err != nil {
		t.Fatalf("build source: %v", err)
	}

	got, err := src.FieldNames(context.Background())
	if err != nil {
		t.Fatalf("field names: %v", err)
	}

	want := []string{"title", "created_at", "updated_at"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	readonly := src.ReadonlyFields()
	if diff := cmp.Diff([]string{"created_at", "updated_at"}, readonly); diff != "" {
		t.Fatalf("readonly mismatch (-want +got):\n%s", diff)
	}
}

func TestStruct_RejectsNonStruct(t *testing.T) {
	if _, err := fields.Struct(42); err == nil {
		t.Fatalf("expected error for non-struct model")
	}
}

func TestStatic_CopiesInput(t *testing.T) {
	names := []string{"title", "slug"}
	src := fields.Static(names...)
	names[0] = "mutated"

	got, err := src.FieldNames(context.Background())
	if err != nil {
		t.Fatalf("field names: %v", err)
	}
	if got[0] != "title" {
		t.Fatalf("static source shares backing array: %#v", got)
	}
}
