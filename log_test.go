package scrollbox

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestVerboseLogging(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: boxLogLevel})))
	t.Cleanup(func() {
		SetVerbose(false)
		SetLogger(nil)
	})

	b := New(Config{Margin: 10, Width: 300, Height: 300, Loop: true})
	if err := b.SetChild(NumberedItems(3, 100, 100, ColorGreen)); err != nil {
		t.Fatalf("SetChild: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("debug output while quiet: %q", buf.String())
	}

	SetVerbose(true)
	if !boxVerbose() {
		t.Fatal("boxVerbose() = false after SetVerbose(true)")
	}
	if err := b.SetChild(NumberedItems(3, 100, 100, ColorGreen)); err != nil {
		t.Fatalf("SetChild: %v", err)
	}
	b.scrollBy(-20)

	out := buf.String()
	for _, want := range []string{"scrollbox: layout", "tiles=2", "scrollbox: wrap"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
