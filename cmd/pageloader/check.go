package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"pageloader/internal/diagnostic"
	"pageloader/internal/schema"
)

var errCheckFailed = errors.New("check failed")

func newCheckCmd(a *app) *cobra.Command {
	opts := &loadOptions{}

	var normalized string

	cmd := &cobra.Command{
		Use:   "check --schema pages.yaml [flags] [doc.xml...]",
		Short: "Validate a page library and the documents that use it",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := a.newContext()

			f, diags, err := a.loadSchema(c, opts.schema)
			if err != nil {
				return err
			}

			if diags.IsValid() {
				ds, err := schema.Build(f)
				if err == nil {
					err = c.RegisterPageTypes(ds...)
				}

				if err != nil {
					diags.AddErr(opts.schema, err)
				}
			}

			if normalized != "" && diags.IsValid() {
				if err := schema.WriteFile(f, normalized); err != nil {
					return err
				}

				a.logger.Info("wrote normalized schema", "file", normalized)
			}

			// Documents are only meaningful against a valid library.
			if diags.IsValid() {
				for _, path := range args {
					pages, err := loadDocument(cmd.Context(), c, path, opts)
					if err != nil {
						diags.AddErr(path, err)
						continue
					}

					diags.Infos = append(diags.Infos, diagnostic.Diagnostic{
						Severity: diagnostic.SeverityInfo,
						Code:     "loaded",
						Message:  fmt.Sprintf("%d page(s) loaded", len(pages)),
						Source:   path,
					})
				}
			}

			printDiagnostics(cmd, diags)

			if diags.HasErrors() {
				return errCheckFailed
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&opts.schema, "schema", "", "page library file")
	cmd.Flags().StringVar(&opts.typeName, "type", "", "page type of each root element (default: its tag)")
	cmd.Flags().StringVar(&opts.required, "require", "", "type each root page must satisfy")
	cmd.Flags().BoolVar(&opts.all, "all", false, "load every child of the root element instead of the root")
	cmd.Flags().StringVar(&normalized, "write-normalized", "",
		"write the valid library with every default spelled out to this file")

	return cmd
}

func printDiagnostics(cmd *cobra.Command, diags *diagnostic.Diagnostics) {
	w := cmd.OutOrStdout()

	for _, d := range diags.All() {
		fmt.Fprintf(w, "%s: %s\n", d.Severity, d)

		if len(d.Suggestions) > 0 {
			fmt.Fprintf(w, "  did you mean: %v\n", d.Suggestions)
		}
	}

	fmt.Fprintf(w, "%d error(s), %d warning(s)\n", len(diags.Errors), len(diags.Warnings))
}
