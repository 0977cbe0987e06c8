package ebitenhost

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a labeled screenshot to be captured at the end of the
// next Draw, after the overlays ran. The PNG is written to ScreenshotDir
// with a timestamped filename.
func (h *Host) Screenshot(label string) {
	h.screenshotQueue = append(h.screenshotQueue, label)
}

// flushScreenshots captures the frame for every queued label.
func (h *Host) flushScreenshots(screen *ebiten.Image) {
	if len(h.screenshotQueue) == 0 {
		return
	}
	defer func() { h.screenshotQueue = h.screenshotQueue[:0] }()

	if err := os.MkdirAll(h.ScreenshotDir, 0o755); err != nil {
		h.Logger.Warn("screenshot: mkdir failed", "dir", h.ScreenshotDir, "err", err)
		return
	}

	img := readNRGBA(screen)
	stamp := time.Now().Format("20060102_150405")

	for _, label := range h.screenshotQueue {
		path := filepath.Join(h.ScreenshotDir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
		if err := writePNG(path, img); err != nil {
			h.Logger.Warn("screenshot failed", "err", err)
			continue
		}
		h.Logger.Debug("screenshot written", "path", path)
	}
}

// readNRGBA copies the screen into a straight-alpha image.
func readNRGBA(screen *ebiten.Image) *image.NRGBA {
	b := screen.Bounds()
	img := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	screen.ReadPixels(img.Pix)
	unpremultiply(img.Pix)
	return img
}

// unpremultiply converts premultiplied RGBA pixels to straight alpha in
// place. Opaque and fully transparent pixels are left alone.
func unpremultiply(pix []byte) {
	for px := range slices.Chunk(pix, 4) {
		a := uint16(px[3])
		if a == 0 || a == 0xff {
			continue
		}
		for i, v := range px[:3] {
			px[i] = byte(min(uint16(v)*0xff/a, 0xff))
		}
	}
}

// writePNG encodes img to path, reporting a failed close as well.
func writePNG(path string, img *image.NRGBA) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close %s: %w", path, cerr))
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// sanitizeLabel keeps screenshot labels file-name safe: ASCII letters,
// digits, '-' and '.' pass through and anything else becomes '_'.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(fileNameRune, label)
}

func fileNameRune(r rune) rune {
	if r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '.') {
		return r
	}
	return '_'
}
