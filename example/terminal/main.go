// Command terminal runs the scroll box demo in a terminal. Drag with the
// mouse, use a horizontal wheel (or shift+wheel) to scroll, and press q,
// Esc or Ctrl-C to quit.
//
//	go run ./example/terminal/
//	go run ./example/terminal/ -config example/scene.toml -v 2>debug.log
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/go-theft-auto/scrollbox"
	"github.com/go-theft-auto/scrollbox/backend/terminal"
)

const (
	// Pixels per cell. Item sizes in the scene are in pixels.
	cellWidth  = 10
	cellHeight = 20

	frameInterval = 16 * time.Millisecond // ~60 FPS
)

func main() {
	configPath := flag.String("config", "", "TOML scene description (default: built-in demo)")
	verbose := flag.Bool("v", false, "log layout, wrap and inertia events to stderr")
	flag.Parse()

	scrollbox.SetVerbose(*verbose)

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg := scrollbox.DefaultStageConfig()
	if configPath != "" {
		var err error
		if cfg, err = scrollbox.LoadStageConfig(configPath); err != nil {
			return err
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	canvas := terminal.NewCanvas(screen, cellWidth, cellHeight)
	stage, err := scrollbox.NewStageFromConfig(nil, cfg)
	if err != nil {
		return fmt.Errorf("stage: %w", err)
	}
	input := terminal.NewInputAdapter(stage, canvas)
	w, h := canvas.PixelSize()
	stage.Resize(w, h)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return nil
			}
			if quit(ev) {
				return nil
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				screen.Sync()
			}
			input.HandleEvent(ev)

		case now := <-ticker.C:
			stage.Tick(float32(now.Sub(last)) / float32(frameInterval))
			last = now

			canvas.Begin()
			if err := stage.Draw(canvas); err != nil {
				return fmt.Errorf("draw: %w", err)
			}
			canvas.Flush()
		}
	}
}

func quit(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	return key.Key() == tcell.KeyEscape || key.Key() == tcell.KeyCtrlC ||
		(key.Key() == tcell.KeyRune && key.Rune() == 'q')
}
