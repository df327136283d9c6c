package input

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/game"
)

const eventBufferSize = 256

// EventSource is the blocking event feed of a terminal screen
// tcell.Screen satisfies it; PollEvent returns nil once the screen is finalized
type EventSource interface {
	PollEvent() tcell.Event
}

// Poller reads terminal events on a background goroutine and hands them out
// without blocking, one key action per call
type Poller struct {
	source   EventSource
	keys     *KeyTable
	events   chan tcell.Event
	onResize func()

	done     chan struct{}
	stopOnce sync.Once
}

// NewPoller creates a poller; onResize, if set, runs on the polling caller's goroutine
func NewPoller(source EventSource, keys *KeyTable, onResize func()) *Poller {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &Poller{
		source:   source,
		keys:     keys,
		events:   make(chan tcell.Event, eventBufferSize),
		onResize: onResize,
		done:     make(chan struct{}),
	}
}

// Start launches the reader goroutine with crash recovery
func (p *Poller) Start() {
	core.Go(p.readLoop)
}

// Stop releases the reader; the screen must be finalized to unblock PollEvent
func (p *Poller) Stop() {
	p.stopOnce.Do(func() {
		close(p.done)
	})
}

func (p *Poller) readLoop() {
	for {
		ev := p.source.PollEvent()
		// Clean exit on screen finalization
		if ev == nil {
			return
		}
		select {
		case p.events <- ev:
		case <-p.done:
			return
		}
	}
}

// Poll returns the next pending key action without blocking
// ok is false when no key event is pending; resize events are handled inline
// and never count as the tick's input
func (p *Poller) Poll() (game.Action, bool) {
	for {
		select {
		case ev := <-p.events:
			switch ev.(type) {
			case *tcell.EventKey:
				return p.keys.Translate(ev), true
			case *tcell.EventResize:
				if p.onResize != nil {
					p.onResize()
				}
			}
		default:
			return game.ActionNone, false
		}
	}
}
