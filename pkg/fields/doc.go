// Package fields supplies ordered model field names to fieldset expansion.
// Sources mirror how an admin reads editable columns off a model: a static
// list, reflection over an annotated Go struct, or an OpenAPI component
// schema.
package fields
