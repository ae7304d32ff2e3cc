package app

import (
	"fmt"
	"os"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"

	"snakebattle/internal/codec"
	"snakebattle/internal/domain"
)

// Recorder appends one frame per tick to a trace file.
type Recorder struct {
	file   *os.File
	writer *codec.Writer
	logger log.Logger

	mu     sync.Mutex
	failed bool
}

func NewRecorder(path string, logger log.Logger) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace file: %w", err)
	}
	return &Recorder{
		file:   f,
		writer: codec.NewWriter(f),
		logger: log.With(logger, "component", "recorder", "path", path),
	}, nil
}

// Record matches node.TickObserver. After the first write error the
// recorder goes quiet instead of failing every tick.
func (r *Recorder) Record(gameID uuid.UUID, result *domain.TickResult, state *domain.SimulationState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failed {
		return
	}
	if err := r.writer.Write(codec.NewFrame(gameID, result, state)); err != nil {
		r.failed = true
		level.Error(r.logger).Log("msg", "trace disabled", "err", err)
	}
}

func (r *Recorder) Frames() int {
	return r.writer.Count()
}

func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.writer.Flush(); err != nil {
		r.file.Close()
		return fmt.Errorf("failed to flush trace: %w", err)
	}
	level.Info(r.logger).Log("msg", "trace closed", "frames", r.writer.Count())
	return r.file.Close()
}
