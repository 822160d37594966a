package scrollbox

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config configures a ScrollBox.
type Config struct {
	Margin float32 `toml:"margin"`
	// Width and Height are the viewport size. Zero means "the host
	// viewport" when the box is created through a Stage.
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
	Loop   bool    `toml:"loop"`
	// CancelInertiaOnPress stops a running inertia when a new drag starts.
	// Off by default: a press leaves the decay running.
	CancelInertiaOnPress bool `toml:"cancel_inertia_on_press"`
}

// BoxConfig describes one box of a demo stage and the generated items it
// shows.
type BoxConfig struct {
	Config
	Y          float32 `toml:"y"`
	Items      int     `toml:"items"`
	ItemWidth  float32 `toml:"item_width"`
	ItemHeight float32 `toml:"item_height"`
	ItemColor  uint32  `toml:"item_color"` // 0xRRGGBB
}

// StageConfig describes a window and the boxes placed on it.
type StageConfig struct {
	Title      string      `toml:"title"`
	Width      int         `toml:"width"`
	Height     int         `toml:"height"`
	Background uint32      `toml:"background"` // 0xRRGGBB
	Boxes      []BoxConfig `toml:"box"`
}

// DefaultStageConfig returns the two-box demo: a plain row of 100 items
// and a looping row of 3, each 300px tall, spanning the window width.
func DefaultStageConfig() StageConfig {
	item := BoxConfig{
		Config:     Config{Margin: 10, Height: 300},
		ItemWidth:  100,
		ItemHeight: 100,
		ItemColor:  0x00FF00,
	}
	plain := item
	plain.Items = 100
	looped := item
	looped.Items = 3
	looped.Loop = true
	looped.Y = 310
	return StageConfig{
		Title:      "scrollbox example",
		Width:      800,
		Height:     620,
		Background: 0x1099BB,
		Boxes:      []BoxConfig{plain, looped},
	}
}

// LoadStageConfig reads a TOML stage description from path.
func LoadStageConfig(path string) (StageConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return StageConfig{}, fmt.Errorf("read stage config: %w", err)
	}
	cfg, err := ParseStageConfig(data)
	if err != nil {
		return StageConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseStageConfig decodes a TOML stage description. Unknown keys are
// rejected. Fields absent from the document keep their defaults from
// DefaultStageConfig, except boxes: a document listing boxes replaces
// the default set.
func ParseStageConfig(data []byte) (StageConfig, error) {
	cfg := DefaultStageConfig()
	cfg.Boxes = nil

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return StageConfig{}, fmt.Errorf("decode stage config: %s", strict.String())
		}
		return StageConfig{}, fmt.Errorf("decode stage config: %w", err)
	}
	if cfg.Boxes == nil {
		cfg.Boxes = DefaultStageConfig().Boxes
	}

	if err := cfg.validate(); err != nil {
		return StageConfig{}, err
	}
	return cfg, nil
}

func (c StageConfig) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("stage config: window size %dx%d must be positive", c.Width, c.Height)
	}
	for i, b := range c.Boxes {
		if b.Items < 0 {
			return fmt.Errorf("stage config: box %d: items must not be negative", i)
		}
		if b.Items > 0 && (b.ItemWidth <= 0 || b.ItemHeight <= 0) {
			return fmt.Errorf("stage config: box %d: item size must be positive", i)
		}
	}
	return nil
}
