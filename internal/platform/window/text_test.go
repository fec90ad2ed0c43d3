package window

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/pong/internal/core"
)

func TestNewTextRendererEmbedded(t *testing.T) {
	r, err := NewTextRenderer("", 20)
	if err != nil {
		t.Fatalf("NewTextRenderer() failed: %v", err)
	}

	w1, h1 := r.Measure("0")
	w2, h2 := r.Measure("10")
	if w1 <= 0 || h1 <= 0 {
		t.Errorf("Measure(\"0\") = %dx%d, expected positive size", w1, h1)
	}
	if w2 <= w1 {
		t.Errorf("two digits (%d) should be wider than one (%d)", w2, w1)
	}
	if h1 != h2 {
		t.Errorf("heights differ: %d vs %d", h1, h2)
	}
}

func TestNewTextRendererErrors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.ttf")
	if err := os.WriteFile(garbage, []byte("not a font"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "missing.ttf")},
		{"invalid font", garbage},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewTextRenderer(tc.path, 20)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !errors.Is(err, core.ErrAssetLoad) {
				t.Errorf("error should wrap ErrAssetLoad: %v", err)
			}
		})
	}
}

func TestWindowSize(t *testing.T) {
	tests := []struct {
		scale float64
		w, h  int
	}{
		{1.0, 1280, 720},
		{0.5, 640, 360},
		{1.5, 1920, 1080},
		{0.0001, 1, 1},
	}
	for _, tc := range tests {
		w, h := windowSize(tc.scale)
		if w != tc.w || h != tc.h {
			t.Errorf("windowSize(%v) = %dx%d, expected %dx%d", tc.scale, w, h, tc.w, tc.h)
		}
	}
}
