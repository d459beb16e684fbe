package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"pageloader/internal/loader"
	"pageloader/internal/node"
	"pageloader/internal/page"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

type loadOptions struct {
	schema   string
	typeName string
	required string
	all      bool
}

func newLoadCmd(a *app) *cobra.Command {
	opts := &loadOptions{}

	cmd := &cobra.Command{
		Use:   "load --schema pages.yaml [flags] doc.xml...",
		Short: "Load documents and dump the resulting pages",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := a.setup(opts.schema)
			if err != nil {
				return err
			}

			for _, path := range args {
				pages, err := loadDocument(cmd.Context(), c, path, opts)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}

				dumpPages(cmd.OutOrStdout(), path, pages)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&opts.schema, "schema", "", "page library file")
	cmd.Flags().StringVar(&opts.typeName, "type", "", "page type of the root element (default: its tag)")
	cmd.Flags().StringVar(&opts.required, "require", "", "type the root page must satisfy")
	cmd.Flags().BoolVar(&opts.all, "all", false, "load every child of the root element instead of the root")

	return cmd
}

// loadDocument parses path and loads either its root or, with opts.all,
// every child of the root.
func loadDocument(ctx context.Context, c *loader.Context, path string, opts *loadOptions) ([]page.Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	root, err := node.ParseBytes(data)
	if err != nil {
		return nil, err
	}

	if opts.all {
		return c.LoadAll(ctx, root)
	}

	p, err := c.LoadRequired(ctx, root, opts.typeName, page.TypeID(opts.required))
	if err != nil {
		return nil, err
	}

	return []page.Page{p}, nil
}

func dumpPages(w io.Writer, path string, pages []page.Page) {
	for i, p := range pages {
		fmt.Fprintf(w, "# %s [%d] %s\n", path, i, p.PageType())
		dumper.Fdump(w, p)
	}
}
