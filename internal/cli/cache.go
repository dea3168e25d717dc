package cli

import (
	"context"
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/sgtmarmite/wtfcesko/pkg/cache"
	"github.com/sgtmarmite/wtfcesko/pkg/config"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the build cache",
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: ./"+config.DefaultFile+" if present)")

	cmd.AddCommand(c.cacheClearCommand(&configPath))
	cmd.AddCommand(c.cachePathCommand(&configPath))

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached build artifacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			return runCacheClear(cmd.Context(), cfg)
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			loc, err := cacheLocation(cfg)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), loc)
			return nil
		},
	}
}

// runCacheClear clears the configured backend even when caching is
// disabled for builds.
func runCacheClear(ctx context.Context, cfg *config.Config) error {
	enabled := *cfg
	enabled.Cache.Disabled = false
	c, err := openCache(ctx, &enabled, false)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer c.Close()

	clearer, ok := c.(cache.Clearer)
	if !ok {
		printWarning("Cache backend %s cannot be cleared", cache.Describe(c))
		return nil
	}
	if err := clearer.Clear(ctx); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	printSuccess("Cache cleared")
	printDetail("Backend: %s", cache.Describe(c))
	return nil
}

// cacheLocation names where cached artifacts live without opening the
// backend: the redis URL (password redacted) when one is configured,
// else the directory.
func cacheLocation(cfg *config.Config) (string, error) {
	opts := cache.OpenOptionsFromEnv()
	if opts.RedisURL == "" {
		opts.RedisURL = cfg.Cache.RedisURL
	}
	if opts.RedisURL != "" {
		u, err := url.Parse(opts.RedisURL)
		if err != nil {
			return "", fmt.Errorf("parse redis url: %w", err)
		}
		return u.Redacted(), nil
	}
	dir, err := cache.DefaultDir()
	if err != nil {
		return "", fmt.Errorf("get cache dir: %w", err)
	}
	return dir, nil
}
