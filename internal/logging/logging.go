package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

var (
	globalMu     sync.RWMutex
	globalLogger = log.NewNopLogger()
)

// New returns a logfmt logger writing to w that drops records below lvl.
func New(w io.Writer, lvl string) (log.Logger, error) {
	opt, err := parseLevel(lvl)
	if err != nil {
		return nil, err
	}
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = level.NewFilter(logger, opt)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	return logger, nil
}

// Component tags every record from logger with the subsystem name.
func Component(logger log.Logger, name string) log.Logger {
	if logger == nil {
		logger = GlobalLogger()
	}
	return log.With(logger, "component", name)
}

func SetGlobalLogger(logger log.Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLogger = logger
}

func GlobalLogger() log.Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}

// Stderr is New on os.Stderr, falling back to info for an unknown level.
func Stderr(lvl string) log.Logger {
	logger, err := New(os.Stderr, lvl)
	if err != nil {
		logger, _ = New(os.Stderr, "info")
		level.Warn(logger).Log("msg", "unknown log level, using info", "level", lvl)
	}
	return logger
}

func parseLevel(lvl string) (level.Option, error) {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "debug":
		return level.AllowDebug(), nil
	case "info", "":
		return level.AllowInfo(), nil
	case "warn", "warning":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	case "none", "off":
		return level.AllowNone(), nil
	}
	return nil, fmt.Errorf("unknown log level %q", lvl)
}
