package framebuffer

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/bmp"
)

// FlipRGBA converts bottom-up GL pixels to a top-down image.
func FlipRGBA(pixels []byte, width, height int) (*image.RGBA, error) {
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	row := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * row
		copy(img.Pix[y*img.Stride:y*img.Stride+row], pixels[src:src+row])
	}
	return img, nil
}

// Screenshots writes timestamped image files into a directory.
type Screenshots struct {
	Dir    string
	Prefix string
	Format string // "png" or "bmp"
	now    func() time.Time
}

// NewScreenshots creates a PNG writer for dir. An empty dir means the
// working directory.
func NewScreenshots(dir, prefix string) *Screenshots {
	return &Screenshots{Dir: dir, Prefix: prefix, Format: "png", now: time.Now}
}

// Filename returns the path the next screenshot would be written to.
func (s *Screenshots) Filename() string {
	name := fmt.Sprintf("%s_%s.%s", s.Prefix, s.now().Format("2006-01-02_15-04-05"), s.Format)
	if s.Dir != "" {
		name = filepath.Join(s.Dir, name)
	}
	return name
}

// Save encodes img into the next timestamped file and returns its path.
func (s *Screenshots) Save(img image.Image) (string, error) {
	if s.Dir != "" {
		if err := os.MkdirAll(s.Dir, 0o755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}
	path := s.Filename()
	return path, WriteImage(path, img)
}

// WriteImage encodes img by file extension: .bmp as BMP, anything else as PNG.
func WriteImage(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".bmp") {
		if err := bmp.Encode(f, img); err != nil {
			return fmt.Errorf("encoding BMP: %w", err)
		}
		return nil
	}
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}
