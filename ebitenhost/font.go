package ebitenhost

import (
	"bytes"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFontSize is the pixel size of DefaultFont.
const DefaultFontSize = 13

// Font is a TrueType label font.
type Font struct {
	face   *text.GoTextFace
	ascent float64
	lh     float64 // cached line height
}

// LoadFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadFont(ttfData []byte, size float64) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("ebitenhost: failed to parse TTF data: %w", err)
	}

	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}

	m := face.Metrics()
	return &Font{
		face:   face,
		ascent: m.HAscent,
		lh:     m.HAscent + m.HDescent + m.HLineGap,
	}, nil
}

// DefaultFont returns Go Regular at DefaultFontSize.
func DefaultFont() (*Font, error) {
	return LoadFont(goregular.TTF, DefaultFontSize)
}

// MeasureString returns the advance width of s in whole pixels.
func (f *Font) MeasureString(s string) int {
	return int(math.Ceil(text.Advance(s, f.face)))
}

// LineHeight returns the vertical distance between baselines.
func (f *Font) LineHeight() float64 {
	return f.lh
}

// Ascent returns the distance from the top of a line to its baseline.
func (f *Font) Ascent() float64 {
	return f.ascent
}

// Face returns the underlying GoTextFace for direct text/v2 rendering.
func (f *Font) Face() *text.GoTextFace {
	return f.face
}
