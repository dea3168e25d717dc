// Package cli implements the wtfcesko command-line interface.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/sgtmarmite/wtfcesko/pkg/buildinfo"
	"github.com/sgtmarmite/wtfcesko/pkg/cache"
	"github.com/sgtmarmite/wtfcesko/pkg/config"
	"github.com/sgtmarmite/wtfcesko/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "wtfcesko"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// Verbose reports whether debug logging is enabled.
func (c *CLI) Verbose() bool {
	return c.Logger.GetLevel() <= log.DebugLevel
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "wtfcesko builds the WTF Česko chart site",
		Long: `wtfcesko renders a static page of Czech economic and demographic charts.

Chart configurations are built from the bundled JSON fixtures for desktop and
mobile viewports, embedded in a single script, and drawn by Chart.js in the
browser.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.buildCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.chartsCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the cache cfg selects.
func (c *CLI) newRunner(ctx context.Context, cfg *config.Config, noCache bool) (*pipeline.Runner, error) {
	store, err := openCache(ctx, cfg, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, nil, c.Logger), nil
}

// openCache resolves the cache backend. The environment overrides the
// config file's redis_url; --no-cache and cache.disabled win over both.
func openCache(ctx context.Context, cfg *config.Config, noCache bool) (cache.Cache, error) {
	opts := cache.OpenOptionsFromEnv()
	if opts.RedisURL == "" {
		opts.RedisURL = cfg.Cache.RedisURL
	}
	opts.Disabled = noCache || cfg.Cache.Disabled
	return cache.Open(ctx, opts)
}
