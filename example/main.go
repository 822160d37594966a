// Example opens a window with two scroll boxes: a plain row of numbered
// items and a looping row that wraps around endlessly.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell                          # Go + OpenGL/X11 headers
//	go run ./example/                     # default scene
//	go run ./example/ -config scene.toml  # scene from a TOML file
//
// Drag with the left button, or scroll horizontally (shift+wheel works
// too). Released drags keep coasting and ease to a stop.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/scrollbox"
	"github.com/go-theft-auto/scrollbox/backend/opengl"
)

// nominalFPS converts wall time into ticks of one frame each.
const nominalFPS = 60

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "TOML scene description (default: built-in demo)")
	verbose := flag.Bool("v", false, "log layout, wrap and inertia events")
	flag.Parse()

	scrollbox.SetVerbose(*verbose)

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig(path string) (scrollbox.StageConfig, error) {
	if path == "" {
		return scrollbox.DefaultStageConfig(), nil
	}
	return scrollbox.LoadStageConfig(path)
}

func run(configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(cfg.Width, cfg.Height)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	stage, err := scrollbox.NewStageFromConfig(renderer, cfg)
	if err != nil {
		return fmt.Errorf("stage: %w", err)
	}
	opengl.NewGLFWInputAdapter(window, stage)

	last := glfw.GetTime()
	for !window.ShouldClose() {
		glfw.PollEvents()

		now := glfw.GetTime()
		stage.Tick(float32((now - last) * nominalFPS))
		last = now

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0, 0, 0, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		if err := stage.Render(); err != nil {
			return fmt.Errorf("render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}
