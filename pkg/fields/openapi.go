package fields

import (
	"context"

	internalopenapi "github.com/goliatone/go-admin-fieldsets/internal/openapi"
)

// SchemaSource re-exports the OpenAPI-backed source implementation.
type SchemaSource = internalopenapi.SchemaSource

// OpenAPIDocument builds a Source from an in-memory OpenAPI document,
// reading field names off the named component schema.
func OpenAPIDocument(ctx context.Context, raw []byte, component string) (*SchemaSource, error) {
	return internalopenapi.Load(ctx, raw, component)
}

// OpenAPIFile builds a Source from an OpenAPI document on disk.
func OpenAPIFile(ctx context.Context, path, component string) (*SchemaSource, error) {
	return internalopenapi.LoadFile(ctx, path, component)
}
