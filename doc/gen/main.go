// Command gen renders the demo stage in a few scroll states, captures the
// framebuffer and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/scrollbox"
	"github.com/go-theft-auto/scrollbox/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single stage state to capture.
type screenshot struct {
	name  string                       // filename without extension
	setup func(stage *scrollbox.Stage) // input applied before capture
	ticks int                          // inertia frames to advance
}

func run() error {
	cfg := scrollbox.DefaultStageConfig()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(cfg.Width, cfg.Height)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(renderer, cfg, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, cfg.Width, cfg.Height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, cfg scrollbox.StageConfig, s screenshot, outDir string) error {
	// Fresh stage per screenshot so scroll state does not leak.
	stage, err := scrollbox.NewStageFromConfig(renderer, cfg)
	if err != nil {
		return err
	}
	if s.setup != nil {
		s.setup(stage)
	}
	for range s.ticks {
		stage.Tick(1)
	}

	width, height := cfg.Width, cfg.Height
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	if err := stage.Render(); err != nil {
		return err
	}

	pixels := make([]byte, width*height*4)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < height/2; y++ {
		top := y * rowLen
		bot := (height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// drag presses at (x, y), moves by dx in steps of step pixels and releases.
func drag(stage *scrollbox.Stage, x, y, dx, step float32) {
	stage.PointerDown(x, y, false)
	moved := float32(0)
	for moved > dx {
		moved = max(moved-step, dx)
		stage.PointerMove(x+moved, y, false)
	}
	stage.PointerUp(x+moved, y, false)
}

func buildScreenshots() []screenshot {
	return []screenshot{
		{name: "initial"},
		{
			name: "dragged",
			setup: func(stage *scrollbox.Stage) {
				drag(stage, 600, 150, -450, 5)
			},
		},
		{
			name: "coasting", ticks: 20,
			setup: func(stage *scrollbox.Stage) {
				drag(stage, 600, 150, -300, 60)
			},
		},
		{
			name: "loop_wrapped",
			setup: func(stage *scrollbox.Stage) {
				// Two full sets of three 100px items with 10px margins.
				for range 11 {
					stage.Wheel(400, 460, 60)
				}
			},
		},
	}
}
