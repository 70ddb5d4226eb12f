// Package assets loads the optional fighter sprites and background.
//
// Every image is optional: a missing file yields a nil image and the
// renderer falls back to flat shapes.
package assets

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	_ "golang.org/x/image/webp"
)

// Base names looked up in the asset directory
const (
	PlayerName     = "player"
	OpponentName   = "opponent"
	BackgroundName = "background"
)

// Extensions tried in order for each base name
var Extensions = []string{".png", ".webp", ".jpg", ".jpeg"}

// KeyOutThreshold is the channel value above which a near-white sprite pixel becomes transparent
const KeyOutThreshold = 230

// Images are the decoded source images, nil when absent
type Images struct {
	Player     image.Image
	Opponent   image.Image
	Background image.Image
}

// Set holds GPU-ready images for the renderer
type Set struct {
	Player     *ebiten.Image
	Opponent   *ebiten.Image
	Background *ebiten.Image
}

// Loader reads images from a filesystem
type Loader struct {
	fsys   fs.FS
	logger *zap.Logger
}

// NewLoader creates a loader over a directory. An empty dir loads nothing.
func NewLoader(dir string, logger *zap.Logger) *Loader {
	var fsys fs.FS
	if dir != "" {
		fsys = os.DirFS(dir)
	}
	return NewFSLoader(fsys, logger)
}

// NewFSLoader creates a loader over any fs.FS
func NewFSLoader(fsys fs.FS, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{fsys: fsys, logger: logger}
}

// LoadImages decodes whatever images are present. Sprites are keyed out;
// the background is used as is. Unreadable files are logged and skipped.
func (l *Loader) LoadImages() Images {
	var imgs Images
	if l.fsys == nil {
		return imgs
	}
	if img := l.load(PlayerName); img != nil {
		imgs.Player = KeyOutWhite(img, KeyOutThreshold)
	}
	if img := l.load(OpponentName); img != nil {
		imgs.Opponent = KeyOutWhite(img, KeyOutThreshold)
	}
	imgs.Background = l.load(BackgroundName)
	return imgs
}

// Load decodes the images and uploads them for rendering
func (l *Loader) Load() Set {
	imgs := l.LoadImages()
	return Set{
		Player:     toEbiten(imgs.Player),
		Opponent:   toEbiten(imgs.Opponent),
		Background: toEbiten(imgs.Background),
	}
}

func (l *Loader) load(name string) image.Image {
	img, err := Decode(l.fsys, name)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		l.logger.Debug("no image, using placeholder", zap.String("name", name))
		return nil
	case err != nil:
		l.logger.Warn("failed to load image", zap.String("name", name), zap.Error(err))
		return nil
	}
	l.logger.Info("loaded image", zap.String("name", name), zap.Stringer("bounds", img.Bounds()))
	return img
}

// Decode finds name with any known extension and decodes it.
// It returns an error wrapping fs.ErrNotExist when no candidate exists.
func Decode(fsys fs.FS, name string) (image.Image, error) {
	for _, ext := range Extensions {
		file := path.Clean(name + ext)
		f, err := fsys.Open(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", file, err)
		}
		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", file, err)
		}
		return img, nil
	}
	return nil, fmt.Errorf("image %q: %w", name, fs.ErrNotExist)
}

// KeyOutWhite returns a copy of img with every pixel whose red, green and
// blue all exceed threshold made fully transparent
func KeyOutWhite(img image.Image, threshold uint8) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(b)
	draw.Draw(out, b, img, b.Min, draw.Src)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := out.NRGBAAt(x, y)
			if c.R > threshold && c.G > threshold && c.B > threshold {
				out.SetNRGBA(x, y, color.NRGBA{})
			}
		}
	}
	return out
}

func toEbiten(img image.Image) *ebiten.Image {
	if img == nil {
		return nil
	}
	return ebiten.NewImageFromImage(img)
}
