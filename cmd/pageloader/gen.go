package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"pageloader/internal/gen"
)

func newGenCmd(a *app) *cobra.Command {
	cfg := gen.DefaultGeneratorConfig()

	var (
		schemaPath string
		noComments bool
	)

	cmd := &cobra.Command{
		Use:   "gen --schema pages.yaml [flags]",
		Short: "Generate Go page types for a page library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := a.newContext()

			f, diags, err := a.loadSchema(c, schemaPath)
			if err != nil {
				return err
			}

			if err := diags.Error(); err != nil {
				return fmt.Errorf("invalid schema: %w", err)
			}

			cfg.GenerateComments = !noComments

			files, err := gen.NewGenerator(cfg).Generate(f)
			if err != nil {
				return err
			}

			if err := gen.WriteFiles(files, cfg.OutputDir); err != nil {
				return err
			}

			for _, file := range files {
				out := filepath.Join(cfg.OutputDir, file.Filename)
				a.logger.Info("generated", "file", out, "bytes", len(file.Content))
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&schemaPath, "schema", "", "page library file")
	cmd.Flags().StringVar(&cfg.PackageName, "package", cfg.PackageName, "package name when the schema sets none")
	cmd.Flags().StringVarP(&cfg.OutputDir, "out", "o", cfg.OutputDir, "output directory")
	cmd.Flags().StringVar(&cfg.Filename, "file", cfg.Filename, "output file name")
	cmd.Flags().StringVar(&cfg.PageImport, "page-import", cfg.PageImport, "import path of the page package")
	cmd.Flags().BoolVar(&noComments, "no-comments", false, "omit doc comments")

	return cmd
}
