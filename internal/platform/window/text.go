package window

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/vovakirdan/pong/internal/core"
)

// TextRenderer rasterizes strings into textures.
type TextRenderer struct {
	face text.Face
}

// NewTextRenderer loads the font at path, or the embedded Go Mono when path
// is empty. Read or parse failures wrap core.ErrAssetLoad.
func NewTextRenderer(path string, size float64) (*TextRenderer, error) {
	data := gomono.TTF
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("window: read font %s: %w: %w", path, core.ErrAssetLoad, err)
		}
		data = b
	}

	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("window: load font: %w: %w", core.ErrAssetLoad, err)
	}

	return &TextRenderer{face: &text.GoTextFace{Source: src, Size: size}}, nil
}

// Measure returns the pixel size of s, rounded up.
func (r *TextRenderer) Measure(s string) (int, int) {
	w, h := text.Measure(s, r.face, 0)
	return max(int(math.Ceil(w)), 1), max(int(math.Ceil(h)), 1)
}

// Render draws s into a new texture and returns it with its size.
func (r *TextRenderer) Render(s string, c color.Color) (*ebiten.Image, int, int) {
	w, h := r.Measure(s)
	img := ebiten.NewImage(w, h)

	op := &text.DrawOptions{}
	op.ColorScale.ScaleWithColor(c)
	text.Draw(img, s, r.face, op)

	return img, w, h
}
