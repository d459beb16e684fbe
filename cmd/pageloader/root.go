package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"pageloader/internal/config"
	"pageloader/internal/diagnostic"
	"pageloader/internal/loader"
	"pageloader/internal/page"
	"pageloader/internal/schema"
)

// app carries state shared by every command.
type app struct {
	cfgFile string
	cfg     *config.Config
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "pageloader",
		Short:        "Load XML documents into typed pages",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.cfgFile)
			if err != nil {
				return err
			}

			logger, err := cfg.Log.NewLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			a.cfg = cfg
			a.logger = logger

			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: environment only)")

	root.AddCommand(newLoadCmd(a), newCheckCmd(a), newGenCmd(a))

	return root
}

// newContext returns a loading context configured from a.cfg.
func (a *app) newContext() *loader.Context {
	opts := []loader.Option{
		loader.WithLogger(a.logger),
		loader.WithMaxDepth(a.cfg.Loader.MaxDepth),
	}

	if a.cfg.Loader.CaseInsensitiveNames {
		opts = append(opts, loader.WithResolver(page.NewResolver(page.WithCaseInsensitiveNames())))
	}

	return loader.New(opts...)
}

// loadSchema reads and validates the page library at path against the
// kinds c has marshallers for.
func (a *app) loadSchema(c *loader.Context, path string) (*schema.File, *diagnostic.Diagnostics, error) {
	if path == "" {
		return nil, nil, errors.New("--schema is required")
	}

	f, err := schema.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}

	diags := schema.Validate(f, c.Marshallers().Kinds())
	diags.SetSource(path)

	a.logger.Debug("schema loaded", "path", path, "pages", len(f.Pages), "errors", len(diags.Errors))

	return f, diags, nil
}

// setup builds a context with every page of the library at path registered.
func (a *app) setup(path string) (*loader.Context, *schema.File, error) {
	c := a.newContext()

	f, diags, err := a.loadSchema(c, path)
	if err != nil {
		return nil, nil, err
	}

	if err := diags.Error(); err != nil {
		return nil, nil, fmt.Errorf("invalid schema: %w", err)
	}

	ds, err := schema.Build(f)
	if err != nil {
		return nil, nil, err
	}

	if err := c.RegisterPageTypes(ds...); err != nil {
		return nil, nil, err
	}

	return c, f, nil
}
