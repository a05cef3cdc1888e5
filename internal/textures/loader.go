// Package textures fetches and decodes the images the scene and the panel draw.
// Fetching and decoding run on background goroutines; uploading to the GPU
// happens on the render thread (see Store), after the window exists.
package textures

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sync"

	"github.com/anthonynsimon/bild/transform"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"

	"tile-configurator/internal/logger"
)

const (
	// DefaultThumbSize is the edge of the square panel thumbnails, in pixels.
	DefaultThumbSize = 48
	maxParallel      = 4
)

// Decoded is the outcome of loading one URI. Err is set when the image could not be
// fetched or decoded; the renderer then draws the flat tint.
type Decoded struct {
	URI   string
	Image image.Image
	Thumb image.Image
	Err   error
}

// Loader fetches and decodes textures in the background and queues the results
// until the render thread drains them.
type Loader struct {
	fetcher   *Fetcher
	log       *logger.Logger
	thumbSize int

	mu        sync.Mutex
	requested map[string]bool
	pending   []Decoded
}

// NewLoader returns a loader using f. Thumbnails are only made when thumbSize > 0.
func NewLoader(f *Fetcher, log *logger.Logger, thumbSize int) *Loader {
	return &Loader{fetcher: f, log: log, thumbSize: thumbSize, requested: make(map[string]bool)}
}

// Prefetch loads every uri not requested before, at most maxParallel at a time, and
// blocks until all are done. Per-texture failures are queued and logged, not returned;
// the only error is ctx's.
func (l *Loader) Prefetch(ctx context.Context, uris []string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallel)
	for _, uri := range uris {
		if !l.claim(uri) {
			continue
		}
		g.Go(func() error {
			d := l.load(ctx, uri)
			if d.Err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				l.logf("texture %s: %v", uri, d.Err)
			} else {
				b := d.Image.Bounds()
				l.logf("texture %s: loaded %dx%d", uri, b.Dx(), b.Dy())
			}
			l.push(d)
			return nil
		})
	}
	return g.Wait()
}

// claim marks uri as requested and reports whether this call did so.
func (l *Loader) claim(uri string) bool {
	if uri == "" {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.requested[uri] {
		return false
	}
	l.requested[uri] = true
	return true
}

func (l *Loader) push(d Decoded) {
	l.mu.Lock()
	l.pending = append(l.pending, d)
	l.mu.Unlock()
}

// Drain returns and clears the results finished since the last call.
func (l *Loader) Drain() []Decoded {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.pending
	l.pending = nil
	return out
}

func (l *Loader) load(ctx context.Context, uri string) Decoded {
	d := Decoded{URI: uri}
	path, err := l.fetcher.Fetch(ctx, uri)
	if err != nil {
		d.Err = err
		return d
	}
	img, err := decodeFile(path)
	if err != nil {
		d.Err = err
		return d
	}
	d.Image = img
	if l.thumbSize > 0 {
		d.Thumb = Thumbnail(img, l.thumbSize)
	}
	return d
}

func (l *Loader) logf(format string, args ...any) {
	if l.log != nil {
		l.log.Logf(format, args...)
	}
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// Thumbnail crops the centered square of img and scales it to size×size ("object-fit: cover").
func Thumbnail(img image.Image, size int) image.Image {
	b := img.Bounds()
	side := min(b.Dx(), b.Dy())
	x0 := b.Min.X + (b.Dx()-side)/2
	y0 := b.Min.Y + (b.Dy()-side)/2
	square := transform.Crop(img, image.Rect(x0, y0, x0+side, y0+side))
	return transform.Resize(square, size, size, transform.Linear)
}
