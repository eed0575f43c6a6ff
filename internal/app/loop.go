package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/philipparndt/hiddenline/internal/config"
	"github.com/philipparndt/hiddenline/pkg/viewer"
)

// Presenter shows a frame. It is called from the loop goroutine.
type Presenter interface {
	Present(frame viewer.Frame, style viewer.Style)
}

// PresenterFunc adapts a function to Presenter
type PresenterFunc func(frame viewer.Frame, style viewer.Style)

// Present calls f
func (f PresenterFunc) Present(frame viewer.Frame, style viewer.Style) {
	f(frame, style)
}

type event struct {
	key    rune
	reload *config.Config
}

// Loop is the single writer of a Session: every key press and reload goes
// through one channel and is handled on the Run goroutine.
type Loop struct {
	session   *Session
	presenter Presenter
	events    chan event
	log       *zap.Logger
}

// NewLoop creates a loop with room for buffer pending events
func NewLoop(session *Session, presenter Presenter, buffer int, log *zap.Logger) *Loop {
	if log == nil {
		log = zap.NewNop()
	}
	if buffer < 1 {
		buffer = 1
	}
	return &Loop{
		session:   session,
		presenter: presenter,
		events:    make(chan event, buffer),
		log:       log,
	}
}

// Key queues a key press. It never blocks; false means the queue was full
// and the key was dropped.
func (l *Loop) Key(r rune) bool {
	return l.enqueue(event{key: r})
}

// Reload queues a configuration swap
func (l *Loop) Reload(cfg *config.Config) bool {
	return l.enqueue(event{reload: cfg})
}

func (l *Loop) enqueue(ev event) bool {
	select {
	case l.events <- ev:
		return true
	default:
		l.log.Warn("event queue full, dropping event", zap.Int32("key", ev.key))
		return false
	}
}

// Run presents the initial frame, then handles events until ctx is done
func (l *Loop) Run(ctx context.Context) error {
	l.presenter.Present(l.session.Frame(), l.session.Style())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-l.events:
			l.handle(ev)
		}
	}
}

func (l *Loop) handle(ev event) {
	if ev.reload != nil {
		frame, err := l.session.Reload(ev.reload)
		if err != nil {
			l.log.Error("keeping previous configuration", zap.Error(err))
			return
		}
		l.presenter.Present(frame, l.session.Style())
		return
	}

	frame, ok := l.session.HandleKey(ev.key)
	if !ok {
		return
	}
	l.presenter.Present(frame, l.session.Style())
}
