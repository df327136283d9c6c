package engine

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/game"
	"github.com/lixenwraith/snake/logger"
	"github.com/lixenwraith/snake/status"
)

// InputSource supplies at most one pending action per call without blocking
type InputSource interface {
	Poll() (game.Action, bool)
}

// FrameSink consumes one read-only frame per tick
type FrameSink interface {
	Render(frame core.Snapshot)
}

// SoundSink plays game event sounds
type SoundSink interface {
	PlayEat()
}

// Loop owns the game state and drives input, step and render on a fixed interval
type Loop struct {
	state    *game.State
	input    InputSource
	frames   FrameSink
	sound    SoundSink
	interval time.Duration
	log      *logrus.Entry

	eaten int

	// Cached metric pointers, nil without WithStatus
	statTicks  *atomic.Int64
	statEaten  *atomic.Int64
	statLength *atomic.Int64
}

// Option customizes a Loop
type Option func(*Loop)

// WithSound plays effects on game events
func WithSound(s SoundSink) Option {
	return func(l *Loop) { l.sound = s }
}

// WithLogger sets the log entry used by the loop
func WithLogger(e *logrus.Entry) Option {
	return func(l *Loop) { l.log = e }
}

// WithInterval overrides the frame interval
func WithInterval(d time.Duration) Option {
	return func(l *Loop) { l.interval = d }
}

// WithStatus publishes run counters to reg after every tick
func WithStatus(reg *status.Registry) Option {
	return func(l *Loop) {
		l.statTicks = reg.Ints.Get(status.Ticks)
		l.statEaten = reg.Ints.Get(status.Eaten)
		l.statLength = reg.Ints.Get(status.Length)
	}
}

// NewLoop creates a loop; the state must already be initialized
func NewLoop(state *game.State, input InputSource, frames FrameSink, opts ...Option) *Loop {
	l := &Loop{
		state:    state,
		input:    input,
		frames:   frames,
		interval: constants.FrameUpdateInterval,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.log == nil {
		l.log = logrus.NewEntry(logger.Log)
	}
	return l
}

// Run ticks until the player quits or ctx is cancelled
// Quit returns nil so the caller proceeds with normal cleanup
func (l *Loop) Run(ctx context.Context) error {
	if l.interval <= 0 {
		return fmt.Errorf("invalid frame interval %v", l.interval)
	}

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		if err := l.Tick(); err != nil {
			if errors.Is(err, game.ErrQuit) {
				l.log.WithFields(logrus.Fields{
					"ticks":  l.state.Tick(),
					"length": l.state.Snake().Len(),
					"eaten":  l.eaten,
				}).Info("Player quit")
				return nil
			}
			return err
		}

		select {
		case <-ctx.Done():
			l.log.WithError(ctx.Err()).Info("Loop cancelled")
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Tick runs one iteration: apply pending input, step, render
// ErrQuit is returned before the step when the quit action is polled
func (l *Loop) Tick() error {
	if action, ok := l.input.Poll(); ok {
		if err := l.state.KeyboardAction(action); err != nil {
			return err
		}
	}

	res := l.state.Step()
	if res.Ate {
		l.eaten++
		if l.sound != nil {
			l.sound.PlayEat()
		}
		l.log.WithFields(logrus.Fields{
			"tick":   res.Tick,
			"fruit":  res.Fruit.String(),
			"length": l.state.Snake().Len(),
		}).Debug("Fruit eaten")
	}

	if l.statTicks != nil {
		l.statTicks.Store(int64(res.Tick))
		l.statEaten.Store(int64(l.eaten))
		l.statLength.Store(int64(l.state.Snake().Len()))
	}

	l.frames.Render(l.state.Frame())
	return nil
}

// Eaten returns the number of fruits consumed so far
func (l *Loop) Eaten() int {
	return l.eaten
}
