package analysis

import (
	"time"

	"github.com/interactome/hubrank/pkg/logging"
)

// Observer receives structured progress events from the engine. The engine
// itself performs no console or file I/O; hosts decide whether events go to
// a log, a progress bar, or nowhere.
type Observer interface {
	StageStarted(stage string)
	StageCompleted(stage string, elapsed time.Duration)
	Warning(stage, message string)
}

// NopObserver discards all events.
type NopObserver struct{}

func (NopObserver) StageStarted(stage string)                          {}
func (NopObserver) StageCompleted(stage string, elapsed time.Duration) {}
func (NopObserver) Warning(stage, message string)                      {}

// LogObserver forwards engine events to a structured logger.
type LogObserver struct {
	logger logging.Logger
}

// NewLogObserver creates an observer that logs stage events.
func NewLogObserver(logger logging.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

func (o *LogObserver) StageStarted(stage string) {
	o.logger.Debug("stage started", logging.Stage(stage))
}

func (o *LogObserver) StageCompleted(stage string, elapsed time.Duration) {
	o.logger.Info("stage completed", logging.Stage(stage), logging.Latency(elapsed))
}

func (o *LogObserver) Warning(stage, message string) {
	o.logger.Warn(message, logging.Stage(stage))
}
