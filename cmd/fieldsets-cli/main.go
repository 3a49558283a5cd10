package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-admin-fieldsets/pkg/adminschema"
	"github.com/goliatone/go-admin-fieldsets/pkg/fields"
	"github.com/goliatone/go-admin-fieldsets/pkg/fieldset"
	"github.com/goliatone/go-admin-fieldsets/pkg/render"
)

type cliFlags struct {
	config      string
	adminID     string
	schema      string
	component   string
	fieldList   string
	output      string
	format      string
	interactive bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("fieldsets-cli: %v", err)
	}
}

func newRootCmd() *cobra.Command {
	flags := &cliFlags{}

	root := &cobra.Command{
		Use:          "fieldsets-cli",
		Short:        "Expand, strip and render admin fieldset declarations",
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.config, "config", "", "admin definition file or directory")
	pf.StringVar(&flags.adminID, "admin", "", "admin id to operate on (optional when the config declares exactly one)")
	pf.StringVar(&flags.schema, "schema", "", "OpenAPI document supplying model fields")
	pf.StringVar(&flags.component, "component", "", "component schema name inside --schema")
	pf.StringVar(&flags.fieldList, "fields", "", "comma separated model field names (alternative to --schema)")
	pf.StringVarP(&flags.output, "output", "o", "", "output file (stdout if empty)")
	_ = root.MarkPersistentFlagRequired("config")

	root.AddCommand(newExpandCmd(flags), newRemoveCmd(flags), newRenderCmd(flags))
	return root
}

func newExpandCmd(flags *cliFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expand",
		Short: "Fill the placeholder group with unspecified model fields",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sets, err := resolveAdmin(cmd.Context(), flags)
			if err != nil {
				return err
			}
			return writeStructured(sets, flags.format, flags.output)
		},
	}
	cmd.Flags().StringVar(&flags.format, "format", "json", "output format: json or yaml")
	cmd.Flags().BoolVar(&flags.interactive, "interactive", false, "prompt for a target group when no placeholder is declared")
	return cmd
}

func newRemoveCmd(flags *cliFlags) *cobra.Command {
	var strip []string
	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Strip field names from every group of the declared fieldsets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(strip) == 0 {
				return errors.New("--strip requires at least one field name")
			}
			def, err := loadDefinition(flags)
			if err != nil {
				return err
			}
			sets := fieldset.Remove(def.Fieldsets, strip...)
			return writeStructured(sets, flags.format, flags.output)
		},
	}
	cmd.Flags().StringSliceVar(&strip, "strip", nil, "field names to remove")
	cmd.Flags().StringVar(&flags.format, "format", "json", "output format: json or yaml")
	return cmd
}

func newRenderCmd(flags *cliFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the expanded fieldsets as HTML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sets, err := resolveAdmin(cmd.Context(), flags)
			if err != nil {
				return err
			}
			html, err := render.HTML(sets)
			if err != nil {
				return err
			}
			return writeOutput(html, flags.output)
		},
	}
	cmd.Flags().BoolVar(&flags.interactive, "interactive", false, "prompt for a target group when no placeholder is declared")
	return cmd
}

func resolveAdmin(ctx context.Context, flags *cliFlags) (fieldset.List, error) {
	def, err := loadDefinition(flags)
	if err != nil {
		return nil, err
	}
	src, err := buildSource(ctx, flags)
	if err != nil {
		return nil, err
	}
	if err := ensurePlaceholder(&def, flags.interactive); err != nil {
		return nil, err
	}
	return def.ModelAdmin(src).ResolveFieldsets(ctx)
}

func loadDefinition(flags *cliFlags) (adminschema.Definition, error) {
	store, err := adminschema.LoadPath(flags.config)
	if err != nil {
		return adminschema.Definition{}, err
	}
	if store.Empty() {
		return adminschema.Definition{}, fmt.Errorf("no admin definitions found in %s", flags.config)
	}

	id := flags.adminID
	if id == "" {
		ids := store.IDs()
		if len(ids) != 1 {
			return adminschema.Definition{}, fmt.Errorf("pass --admin to pick one of: %s", strings.Join(ids, ", "))
		}
		id = ids[0]
	}

	def, ok := store.Admin(id)
	if !ok {
		return adminschema.Definition{}, fmt.Errorf("admin %q not found, have: %s", id, strings.Join(store.IDs(), ", "))
	}
	return def, nil
}

func buildSource(ctx context.Context, flags *cliFlags) (fields.Source, error) {
	switch {
	case flags.schema != "":
		if flags.component == "" {
			return nil, errors.New("--component is required with --schema")
		}
		return fields.OpenAPIFile(ctx, flags.schema, flags.component)
	case flags.fieldList != "":
		return fields.Static(splitList(flags.fieldList)...), nil
	default:
		return nil, errors.New("model fields required: pass --schema/--component or --fields")
	}
}

// With no placeholder, expansion is a no-op; in interactive mode the user
// picks the group that should receive remaining fields instead.
func ensurePlaceholder(def *adminschema.Definition, interactive bool) error {
	if !interactive || def.Fieldsets.HasPlaceholder(def.Placeholder) {
		return nil
	}
	if len(def.Fieldsets) == 0 {
		return fmt.Errorf("admin %q declares no fieldsets", def.ID)
	}

	labels := make([]string, len(def.Fieldsets))
	for i, set := range def.Fieldsets {
		labels[i] = set.Label
		if labels[i] == "" {
			labels[i] = fmt.Sprintf("group #%d", i+1)
		}
	}

	var choice string
	prompt := &survey.Select{
		Message: "No placeholder declared. Group to receive remaining fields:",
		Options: labels,
	}
	if err := survey.AskOne(prompt, &choice); err != nil {
		return err
	}

	for i, label := range labels {
		if label == choice {
			def.Fieldsets[i].Options.Fields = append(def.Fieldsets[i].Options.Fields, fieldset.Ref(def.Placeholder))
			break
		}
	}
	return nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func writeStructured(sets fieldset.List, format, output string) error {
	var payload []byte
	var err error
	switch strings.ToLower(format) {
	case "", "json":
		payload, err = json.MarshalIndent(sets, "", "  ")
	case "yaml", "yml":
		payload, err = yaml.Marshal(sets)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return fmt.Errorf("encode fieldsets: %w", err)
	}
	if !strings.HasSuffix(string(payload), "\n") {
		payload = append(payload, '\n')
	}
	return writeOutput(payload, output)
}

func writeOutput(payload []byte, output string) error {
	if output == "" {
		_, err := os.Stdout.Write(payload)
		return err
	}
	if err := os.WriteFile(output, payload, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Printf("Fieldsets written to %s\n", output)
	return nil
}
