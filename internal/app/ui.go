package app

import (
	"context"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/philipparndt/hiddenline/internal/config"
	"github.com/philipparndt/hiddenline/pkg/viewer"
	"github.com/philipparndt/hiddenline/pkg/watcher"
	"github.com/philipparndt/hiddenline/version"
)

// AppID identifies the application to fyne preferences storage
const AppID = "io.github.philipparndt.hiddenline"

// eventBuffer bounds pending key presses; typing faster than frames render
// drops keys instead of blocking the UI thread
const eventBuffer = 64

// WindowOptions configures RunWindow
type WindowOptions struct {
	// ConfigPath is reloaded on change when Watch is set
	ConfigPath string
	Watch      bool
	// Overrides are reapplied on every reload so CLI flags keep winning
	Overrides config.Overrides
}

// windowPresenter hands frames to the two views on the fyne thread
type windowPresenter struct {
	wireframe  *viewer.View
	hiddenLine *viewer.View
}

func (p *windowPresenter) Present(frame viewer.Frame, style viewer.Style) {
	label := viewer.RotationLabel(frame)
	fyne.Do(func() {
		p.wireframe.SetStyle(style)
		p.hiddenLine.SetStyle(style)
		p.wireframe.SetDrawList(frame.Wireframe, label)
		p.hiddenLine.SetDrawList(frame.HiddenLine, label)
	})
}

// RunWindow opens the two views side by side and blocks until the window is
// closed or ctx is cancelled
func RunWindow(ctx context.Context, session *Session, opts WindowOptions, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a := fyneapp.NewWithID(AppID)
	w := a.NewWindow("Hidden Line " + version.Version)

	proj := session.Projector()
	style := session.Style()
	presenter := &windowPresenter{
		wireframe:  viewer.NewView(viewer.WireframeTitle, proj.Width, proj.Height, style),
		hiddenLine: viewer.NewView(viewer.HiddenLineTitle, proj.Width, proj.Height, style),
	}

	help := widget.NewLabel(strings.Join(session.Keymap().Help(), "    "))
	content := container.NewBorder(nil, help, nil, nil,
		container.NewGridWithColumns(2, presenter.wireframe, presenter.hiddenLine))
	w.SetContent(content)

	loop := NewLoop(session, presenter, eventBuffer, log.Named("loop"))
	w.Canvas().SetOnTypedRune(func(r rune) {
		loop.Key(r)
	})

	if opts.Watch && opts.ConfigPath != "" {
		fw, err := watchConfig(ctx, opts, loop, log.Named("watch"))
		if err != nil {
			log.Warn("config hot reload disabled", zap.Error(err))
		} else {
			defer fw.Close()
		}
	}

	go func() {
		if err := loop.Run(ctx); err != nil && ctx.Err() == nil {
			log.Error("event loop stopped", zap.Error(err))
		}
	}()
	go func() {
		<-ctx.Done()
		fyne.Do(a.Quit)
	}()

	w.SetOnClosed(cancel)
	w.ShowAndRun()
	return nil
}

// watchConfig reloads the config file into the loop whenever it changes.
// Invalid files are logged and ignored.
func watchConfig(ctx context.Context, opts WindowOptions, loop *Loop, log *zap.Logger) (*watcher.FileWatcher, error) {
	fw, err := watcher.NewFileWatcher(200*time.Millisecond, log)
	if err != nil {
		return nil, err
	}

	err = fw.Watch([]string{opts.ConfigPath}, func(changed string) {
		cfg, _, err := config.Load(changed, opts.Overrides)
		if err != nil {
			log.Error("ignoring config change", zap.String("path", changed), zap.Error(err))
			return
		}
		loop.Reload(cfg)
	})
	if err != nil {
		fw.Close()
		return nil, err
	}

	fw.Start(ctx)
	return fw, nil
}
