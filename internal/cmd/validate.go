package cmd

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/onestone/redistjar/internal/project"
	"github.com/onestone/redistjar/internal/ui"
)

//go:embed schemas/redist-project.v1.schema.json
var schemaFS embed.FS

func newValidateCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate redist.yaml",
		Long: `Validates the project descriptor (redist.yaml) against its JSON Schema and
checks the semantic rules applied when the descriptor is loaded.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := root.projectRoot()
			if err != nil {
				return err
			}
			return validateDescriptor(cmd, filepath.Join(dir, project.DescriptorFileName))
		},
	}
}

func validateDescriptor(cmd *cobra.Command, path string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "🔍 Validating %s...\n", project.DescriptorFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", project.DescriptorFileName, err)
	}

	var document interface{}
	if err := yaml.Unmarshal(data, &document); err != nil {
		return fmt.Errorf("failed to parse %s: %w", project.DescriptorFileName, err)
	}

	schemaBytes, err := schemaFS.ReadFile("schemas/redist-project.v1.schema.json")
	if err != nil {
		return fmt.Errorf("failed to load JSON schema: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaBytes),
		gojsonschema.NewGoLoader(document),
	)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if !result.Valid() {
		fmt.Fprintln(out, ui.ErrorStyle.Render("\n❌ Validation failed with the following errors:"))
		for i, desc := range result.Errors() {
			fmt.Fprintf(out, "%d. %s\n", i+1, desc.String())
		}
		return fmt.Errorf("validation failed with %d errors", len(result.Errors()))
	}

	if _, err := project.LoadFrom(path); err != nil {
		return err
	}

	fmt.Fprintf(out, "%s %s is valid!\n", ui.IconSuccess, project.DescriptorFileName)
	return nil
}
