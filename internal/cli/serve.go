package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/sgtmarmite/wtfcesko/pkg/config"
	"github.com/sgtmarmite/wtfcesko/pkg/observability"
	"github.com/sgtmarmite/wtfcesko/pkg/server"
)

// serveCommand creates the serve command that previews a built site.
func (c *CLI) serveCommand() *cobra.Command {
	var configPath, dir, addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Preview a built site over HTTP",
		Long: `Preview a built site over HTTP.

The site is mounted under the configured base path, so links behave the same
way they do on the published site. Hashed assets are served as immutable;
index.html is always revalidated. Stop with Ctrl+C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("dir") {
				dir = cfg.Build.OutDir
			}
			if !cmd.Flags().Changed("addr") {
				addr = cfg.Serve.Addr
			}
			return c.runServe(cmd.Context(), server.Options{
				Dir:      dir,
				Addr:     addr,
				BasePath: cfg.Site.BasePath,
			})
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", config.DefaultOutDir, "site directory")
	cmd.Flags().StringVar(&addr, "addr", config.DefaultAddr, "listen address")
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default: ./"+config.DefaultFile+" if present)")

	return cmd
}

// runServe blocks until ctx is cancelled. Cancellation is a clean exit.
func (c *CLI) runServe(ctx context.Context, opts server.Options) error {
	logger := loggerFromContext(ctx)
	opts.Logger = logger

	observability.SetServerHooks(observability.NewLogHooks(logger))
	defer observability.Reset()

	srv, err := server.New(opts)
	if err != nil {
		return err
	}

	printInfo("Serving %s at %s", StyleValue.Render(opts.Dir), StyleLink.Render(srv.URL(opts.Addr)))
	if err := srv.ListenAndServe(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
