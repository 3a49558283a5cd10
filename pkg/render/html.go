// Package render turns a resolved fieldset structure into semantic HTML:
// one <fieldset> per group, grouped rows sharing a form-row container.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/goliatone/go-admin-fieldsets/pkg/fieldset"
)

// Option configures rendering before it runs.
type Option func(*config)

type config struct {
	labeler func(string) string
}

// WithLabeler overrides how field names become display labels.
func WithLabeler(fn func(string) string) Option {
	return func(cfg *config) {
		if fn == nil {
			return
		}
		cfg.labeler = fn
	}
}

const fieldsetTemplate = `{{range . -}}
<fieldset{{if .Classes}} class="{{.Classes}}"{{end}}>
{{- if .Label}}
  <legend>{{.Label}}</legend>
{{- end}}
{{- if .Description}}
  <p class="description">{{.Description}}</p>
{{- end}}
{{- range .Rows}}
  <div class="form-row">
{{- range .}}
    <label for="field-{{.Name}}">{{.Label}}</label>
    <input id="field-{{.Name}}" name="{{.Name}}">
{{- end}}
  </div>
{{- end}}
</fieldset>
{{end -}}`

var fieldsetTmpl = template.Must(template.New("fieldsets").Parse(fieldsetTemplate))

type fieldsetView struct {
	Label       string
	Classes     string
	Description template.HTML
	Rows        [][]fieldView
}

type fieldView struct {
	Name  string
	Label string
}

// HTML renders the fieldset structure. The input is expected to be fully
// expanded; a surviving placeholder renders as an ordinary field.
func HTML(sets fieldset.List, options ...Option) ([]byte, error) {
	cfg := config{labeler: DefaultLabeler}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	views := make([]fieldsetView, 0, len(sets))
	for _, set := range sets {
		view := fieldsetView{
			Label:       set.Label,
			Classes:     strings.Join(set.Options.Classes, " "),
			Description: template.HTML(sanitizeDescription(set.Options.Description)),
		}
		for _, ref := range set.Options.Fields {
			row := make([]fieldView, 0, len(ref))
			for _, name := range ref {
				row = append(row, fieldView{Name: name, Label: cfg.labeler(name)})
			}
			view.Rows = append(view.Rows, row)
		}
		views = append(views, view)
	}

	var buf bytes.Buffer
	if err := fieldsetTmpl.Execute(&buf, views); err != nil {
		return nil, fmt.Errorf("render: execute fieldset template: %w", err)
	}
	return buf.Bytes(), nil
}
