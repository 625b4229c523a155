// Package narlog provides a zap-backed implementation of nal.Recorder.
// The core package imports only the standard library; a
// driver that wants structured logging of cycle/concept/task events wires
// this package in instead.
package narlog

import (
	"go.uber.org/zap"

	"github.com/gitrdm/nal-go/pkg/nal"
)

// Recorder logs every nal.Recorder event through a *zap.Logger. It is
// always active once constructed — callers that want to disable logging
// entirely should leave a Memory's recorder at its default nal.NullRecorder
// instead of installing one of these.
type Recorder struct {
	log *zap.Logger
}

// New wraps logger (use zap.NewNop() in tests that want the interface
// satisfied without output).
func New(logger *zap.Logger) *Recorder {
	return &Recorder{log: logger}
}

func (r *Recorder) IsActive() bool { return true }

func (r *Recorder) OnCycleStart(clock int64) {
	r.log.Debug("cycle start", zap.Int64("clock", clock))
}

func (r *Recorder) OnCycleEnd(clock int64) {
	r.log.Debug("cycle end", zap.Int64("clock", clock))
}

func (r *Recorder) OnConceptNew(term *nal.Term) {
	r.log.Info("concept created", zap.String("term", term.String()))
}

func (r *Recorder) OnTaskAdd(task *nal.Task, reason string) {
	r.log.Info("task added",
		zap.String("content", task.Sentence.Content.String()),
		zap.String("reason", reason),
	)
}

func (r *Recorder) OnTaskRemove(task *nal.Task, reason string) {
	r.log.Debug("task removed",
		zap.String("content", task.Sentence.Content.String()),
		zap.String("reason", reason),
	)
}

func (r *Recorder) Append(message string) {
	r.log.Info(message)
}
