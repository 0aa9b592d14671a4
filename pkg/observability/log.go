package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogPipelineHooks writes pipeline events to a logger at debug level.
type LogPipelineHooks struct {
	logger *log.Logger
}

// NewLogPipelineHooks returns hooks that log to logger.
func NewLogPipelineHooks(logger *log.Logger) *LogPipelineHooks {
	return &LogPipelineHooks{logger: logger}
}

func (h *LogPipelineHooks) OnBuildStart(_ context.Context, title string, max int) {
	h.logger.Debug("building gauge", "title", title, "max", max)
}

func (h *LogPipelineHooks) OnBuildComplete(_ context.Context, title string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("gauge build failed", "title", title, "error", err)
		return
	}
	h.logger.Debug("gauge built", "title", title, "elapsed", d.Round(time.Microsecond))
}

func (h *LogPipelineHooks) OnRenderStart(_ context.Context, format string) {
	h.logger.Debug("rendering", "format", format)
}

func (h *LogPipelineHooks) OnRenderComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "format", format, "error", err)
		return
	}
	h.logger.Debug("rendered", "format", format, "bytes", size, "elapsed", d.Round(time.Microsecond))
}

func (h *LogPipelineHooks) OnBatchComplete(_ context.Context, total, failed int, d time.Duration) {
	h.logger.Debug("batch complete", "gauges", total, "failed", failed, "elapsed", d.Round(time.Millisecond))
}

// LogCacheHooks writes cache events to a logger. Errors log at warn level,
// everything else at debug.
type LogCacheHooks struct {
	logger *log.Logger
}

// NewLogCacheHooks returns hooks that log to logger.
func NewLogCacheHooks(logger *log.Logger) *LogCacheHooks {
	return &LogCacheHooks{logger: logger}
}

func (h *LogCacheHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *LogCacheHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *LogCacheHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *LogCacheHooks) OnCacheError(_ context.Context, keyType string, err error) {
	h.logger.Warn("cache error", "type", keyType, "error", err)
}

// LogHTTPHooks writes one info line per HTTP response.
type LogHTTPHooks struct {
	logger *log.Logger
}

// NewLogHTTPHooks returns hooks that log to logger.
func NewLogHTTPHooks(logger *log.Logger) *LogHTTPHooks {
	return &LogHTTPHooks{logger: logger}
}

func (h *LogHTTPHooks) OnRequest(_ context.Context, method, path string) {
	h.logger.Debug("request", "method", method, "path", path)
}

func (h *LogHTTPHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	switch {
	case status >= 500:
		h.logger.Error(method+" "+path, "status", status, "elapsed", d.Round(time.Microsecond))
	case status >= 400:
		h.logger.Warn(method+" "+path, "status", status, "elapsed", d.Round(time.Microsecond))
	default:
		h.logger.Info(method+" "+path, "status", status, "elapsed", d.Round(time.Microsecond))
	}
}

var (
	_ PipelineHooks = (*LogPipelineHooks)(nil)
	_ CacheHooks    = (*LogCacheHooks)(nil)
	_ HTTPHooks     = (*LogHTTPHooks)(nil)
)
