package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes every event to a logger at debug level. Failures are
// logged at warn level so they show up without -v.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that log to l, or to the default logger when
// l is nil.
func NewLogHooks(l *log.Logger) *LogHooks {
	if l == nil {
		l = log.Default()
	}
	return &LogHooks{logger: l}
}

func (h *LogHooks) done(msg string, duration time.Duration, err error, kv ...any) {
	kv = append(kv, "duration", duration)
	if err != nil {
		h.logger.Warn(msg, append(kv, "err", err)...)
		return
	}
	h.logger.Debug(msg, kv...)
}

func (h *LogHooks) OnLoadStart(context.Context) {
	h.logger.Debug("loading fixtures")
}

func (h *LogHooks) OnLoadComplete(_ context.Context, charts int, d time.Duration, err error) {
	h.done("loaded fixtures", d, err, "charts", charts)
}

func (h *LogHooks) OnRenderStart(_ context.Context, charts int) {
	h.logger.Debug("rendering page", "charts", charts)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, size int, d time.Duration, err error) {
	h.done("rendered page", d, err, "bytes", size)
}

func (h *LogHooks) OnWriteComplete(_ context.Context, dir string, files int, d time.Duration, err error) {
	h.done("wrote output", d, err, "dir", dir, "files", files)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, path string) {}

func (h *LogHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	h.logger.Info("request", "method", method, "path", path, "status", status, "duration", d)
}

var (
	_ PipelineHooks = (*LogHooks)(nil)
	_ CacheHooks    = (*LogHooks)(nil)
	_ ServerHooks   = (*LogHooks)(nil)
)
