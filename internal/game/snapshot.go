package game

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/sound-orbit/internal/config"
)

// SnapshotName names a still after the wall-clock time, e.g.
// soft_error_card_093005.jpg.
func SnapshotName(t time.Time) string {
	return fmt.Sprintf("%s%02d%02d%02d.jpg", config.SnapshotPrefix, t.Hour(), t.Minute(), t.Second())
}

func canvasImage(canvas *ebiten.Image) *image.RGBA {
	b := canvas.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	canvas.ReadPixels(img.Pix)
	return img
}

func writeJPEG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 92})
}

// saveSnapshot writes the current canvas, without the UI overlay, into dir.
func saveSnapshot(canvas *ebiten.Image, dir string, now time.Time) (string, error) {
	path := filepath.Join(dir, SnapshotName(now))
	if err := writeJPEG(path, canvasImage(canvas)); err != nil {
		return "", fmt.Errorf("save snapshot: %w", err)
	}
	return path, nil
}
