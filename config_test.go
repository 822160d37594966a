package scrollbox_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-theft-auto/scrollbox"
)

func TestParseStageConfig(t *testing.T) {
	doc := `
title = "two rows"
width = 640
height = 480
background = 0x202020

[[box]]
margin = 4.0
height = 120.0
items = 12
item_width = 80.0
item_height = 80.0
item_color = 0xFF8800

[[box]]
y = 200.0
width = 300.0
height = 120.0
loop = true
cancel_inertia_on_press = true
items = 3
item_width = 80.0
item_height = 80.0
item_color = 0x00FF00
`
	cfg, err := scrollbox.ParseStageConfig([]byte(doc))
	if err != nil {
		t.Fatalf("ParseStageConfig: %v", err)
	}
	if cfg.Title != "two rows" || cfg.Width != 640 || cfg.Height != 480 || cfg.Background != 0x202020 {
		t.Errorf("stage = %+v", cfg)
	}
	if len(cfg.Boxes) != 2 {
		t.Fatalf("boxes = %d, want 2", len(cfg.Boxes))
	}
	loop := cfg.Boxes[1]
	if !loop.Loop || !loop.CancelInertiaOnPress || loop.Width != 300 || loop.Y != 200 || loop.Items != 3 {
		t.Errorf("second box = %+v", loop)
	}
	if cfg.Boxes[0].Margin != 4 || cfg.Boxes[0].ItemColor != 0xFF8800 {
		t.Errorf("first box = %+v", cfg.Boxes[0])
	}

	s, err := scrollbox.NewStageFromConfig(nil, cfg)
	if err != nil {
		t.Fatalf("NewStageFromConfig: %v", err)
	}
	boxes := s.Boxes()
	if len(boxes) != 2 {
		t.Fatalf("stage boxes = %d, want 2", len(boxes))
	}
	if got := boxes[0].ViewportSize(); got != (scrollbox.Vec2{X: 640, Y: 120}) {
		t.Errorf("first viewport = %v, want 640x120", got)
	}
	if got := boxes[1].Bounds(); got != (scrollbox.Rect{Y: 200, W: 300, H: 120}) {
		t.Errorf("second bounds = %v", got)
	}
	if !boxes[1].Loop() || boxes[1].Tiles() < 2 {
		t.Errorf("second box loop=%v tiles=%d", boxes[1].Loop(), boxes[1].Tiles())
	}
}

func TestParseStageConfigDefaults(t *testing.T) {
	cfg, err := scrollbox.ParseStageConfig([]byte(`title = "only a title"`))
	if err != nil {
		t.Fatalf("ParseStageConfig: %v", err)
	}
	def := scrollbox.DefaultStageConfig()
	if cfg.Width != def.Width || cfg.Height != def.Height || len(cfg.Boxes) != len(def.Boxes) {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if cfg.Title != "only a title" {
		t.Errorf("title = %q", cfg.Title)
	}
}

func TestParseStageConfigErrors(t *testing.T) {
	tests := []struct {
		name, doc, want string
	}{
		{"unknown key", "colour = 1\n", "colour"},
		{"unknown box key", "[[box]]\nspeed = 3\n", "speed"},
		{"bad syntax", "width = \n", "decode stage config"},
		{"window size", "width = 0\n", "window size"},
		{"negative items", "[[box]]\nitems = -1\n", "must not be negative"},
		{"item size", "[[box]]\nitems = 2\n", "item size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scrollbox.ParseStageConfig([]byte(tt.doc))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadStageConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	if err := os.WriteFile(path, []byte("width = 320\nheight = 200\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := scrollbox.LoadStageConfig(path)
	if err != nil {
		t.Fatalf("LoadStageConfig: %v", err)
	}
	if cfg.Width != 320 || cfg.Height != 200 {
		t.Errorf("size = %dx%d, want 320x200", cfg.Width, cfg.Height)
	}

	if _, err := scrollbox.LoadStageConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("loading a missing file should fail")
	}
}
