package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sgtmarmite/wtfcesko/pkg/buildinfo"
	"github.com/sgtmarmite/wtfcesko/pkg/config"
	"github.com/sgtmarmite/wtfcesko/pkg/observability"
	"github.com/sgtmarmite/wtfcesko/pkg/pipeline"
)

// buildOpts holds the command-line flags for the build command.
type buildOpts struct {
	configPath string
	output     string
	noCache    bool
	refresh    bool
	sitemap    bool
	detailed   bool
}

// buildCommand creates the build command that renders the site.
func (c *CLI) buildCommand() *cobra.Command {
	var opts buildOpts

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render the chart site into an output directory",
		Long: `Render the chart site into an output directory.

The output contains index.html, a content-hashed script bundling every chart
configuration for desktop and mobile, a content-hashed stylesheet and a
build.json manifest. Stale hashed assets from earlier builds are removed.

Rendered artifacts are cached; unchanged fixtures and options reuse the
previous render. Set WTFCESKO_REDIS_URL to share the cache through redis.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			applyBuildFlags(cmd, cfg, &opts)
			return c.runBuild(cmd.Context(), cfg, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", config.DefaultOutDir, "output directory")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default: ./"+config.DefaultFile+" if present)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached artifacts and re-render")
	cmd.Flags().BoolVar(&opts.sitemap, "sitemap", false, "also render "+pipeline.SitemapFile)
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show chart shape and source in the sitemap")

	return cmd
}

// applyBuildFlags merges cfg into opts: explicitly set flags win, unset
// flags take the config file's value.
func applyBuildFlags(cmd *cobra.Command, cfg *config.Config, opts *buildOpts) {
	if !cmd.Flags().Changed("output") {
		opts.output = cfg.Build.OutDir
	}
	if !cmd.Flags().Changed("sitemap") {
		opts.sitemap = cfg.Build.Sitemap
	}
}

// runBuild executes the pipeline and reports the written files.
func (c *CLI) runBuild(ctx context.Context, cfg *config.Config, opts buildOpts) error {
	logger := loggerFromContext(ctx)
	if cfg.Path != "" {
		logger.Debug("loaded config", "path", cfg.Path)
	}

	if c.Verbose() {
		hooks := observability.NewLogHooks(logger)
		observability.SetPipelineHooks(hooks)
		observability.SetCacheHooks(hooks)
		defer observability.Reset()
	}

	runner, err := c.newRunner(ctx, cfg, opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(logger)
	spinner := newSpinner(ctx, "Building site...")
	if !c.Verbose() {
		spinner.Start()
	}

	res, err := runner.Build(ctx, pipeline.Options{
		OutDir:          opts.output,
		Site:            cfg.SiteOptions(buildinfo.Version),
		Sitemap:         opts.sitemap,
		SitemapDetailed: opts.detailed,
		Refresh:         opts.refresh,
		TTL:             cfg.Cache.TTL.Duration,
		Logger:          logger,
	})
	if err != nil {
		spinner.StopWithError("Build failed")
		return err
	}
	spinner.Stop()
	prog.done("built site", "charts", res.Stats.Charts, "cached", res.CacheInfo.SiteHit)

	printBuildResult(opts.output, res)
	return nil
}

// printBuildResult prints the summary of a finished build.
func printBuildResult(dir string, res *pipeline.Result) {
	printSuccess("Built %s", StyleValue.Render(dir))
	printStats(res.Stats, res.CacheInfo.SiteHit)
	printTimings(res.Stats)

	for _, f := range res.Manifest.Files {
		printFile(filepath.Join(dir, f))
	}
	printKeyValue("build", res.Manifest.BuildID)
	printKeyValue("cache", res.CacheInfo.Backend)

	printNewline()
	printNextStep("Preview locally", fmt.Sprintf("%s serve -d %s", appName, dir))
}
