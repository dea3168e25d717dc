package cache

import (
	"context"
	"os"
	"path/filepath"
)

// Environment variables consulted by Open and DefaultDir.
const (
	EnvRedisURL = "WTFCESKO_REDIS_URL"
	EnvXDGCache = "XDG_CACHE_HOME"
)

// appDir is the cache subdirectory name.
const appDir = "wtfcesko"

// DefaultDir returns the file cache location: $XDG_CACHE_HOME/wtfcesko,
// falling back to the OS user cache directory.
func DefaultDir() (string, error) {
	if dir := os.Getenv(EnvXDGCache); dir != "" {
		return filepath.Join(dir, appDir), nil
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDir), nil
}

// OpenOptions select a cache backend.
type OpenOptions struct {
	Disabled bool   // Use NullCache
	RedisURL string // Use RedisCache when set
	Dir      string // FileCache directory; DefaultDir when empty
}

// OpenOptionsFromEnv returns options with RedisURL taken from the
// environment.
func OpenOptionsFromEnv() OpenOptions {
	return OpenOptions{RedisURL: os.Getenv(EnvRedisURL)}
}

// Open returns the backend selected by opts. Redis wins over the file
// cache when both are configured.
func Open(ctx context.Context, opts OpenOptions) (Cache, error) {
	switch {
	case opts.Disabled:
		return NewNullCache(), nil
	case opts.RedisURL != "":
		c, err := NewRedisCache(ctx, opts.RedisURL, DefaultRedisPrefix)
		if err != nil {
			return nil, err
		}
		return c, nil
	}

	dir := opts.Dir
	if dir == "" {
		var err error
		if dir, err = DefaultDir(); err != nil {
			return nil, err
		}
	}
	c, err := NewFileCache(dir)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Describe names the backend of c for log output.
func Describe(c Cache) string {
	switch v := c.(type) {
	case *FileCache:
		return "file:" + v.Dir()
	case *RedisCache:
		return "redis"
	case *NullCache:
		return "disabled"
	default:
		return "custom"
	}
}
