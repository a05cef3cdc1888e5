package textures

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"tile-configurator/internal/logger"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func tileServer(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	body := pngBytes(t, 80, 40)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if strings.HasPrefix(r.URL.Path, "/missing") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestPrefetchDownloadsDecodesAndCaches(t *testing.T) {
	var hits atomic.Int32
	srv := tileServer(t, &hits)
	dir := t.TempDir()
	log := logger.New("")
	uri := srv.URL + "/photo-123?w=200"

	l := NewLoader(NewFetcher(dir), log, DefaultThumbSize)
	if err := l.Prefetch(context.Background(), []string{uri, uri}); err != nil {
		t.Fatal(err)
	}
	got := l.Drain()
	if len(got) != 1 {
		t.Fatalf("Drain() = %d results, want 1 (duplicate uri)", len(got))
	}
	d := got[0]
	if d.Err != nil {
		t.Fatal(d.Err)
	}
	if b := d.Image.Bounds(); b.Dx() != 80 || b.Dy() != 40 {
		t.Errorf("image bounds = %v", b)
	}
	if b := d.Thumb.Bounds(); b.Dx() != DefaultThumbSize || b.Dy() != DefaultThumbSize {
		t.Errorf("thumb bounds = %v", b)
	}
	if len(l.Drain()) != 0 {
		t.Error("second Drain() returned results again")
	}

	matches, _ := filepath.Glob(filepath.Join(dir, "photo-123-*.png"))
	if len(matches) != 1 {
		t.Fatalf("cache files = %v", matches)
	}

	// A fresh loader over the same cache must not hit the network.
	l2 := NewLoader(NewFetcher(dir), log, 0)
	if err := l2.Prefetch(context.Background(), []string{uri}); err != nil {
		t.Fatal(err)
	}
	if d := l2.Drain(); len(d) != 1 || d[0].Err != nil || d[0].Thumb != nil {
		t.Fatalf("cached load = %+v", d)
	}
	if n := hits.Load(); n != 1 {
		t.Errorf("server hits = %d, want 1", n)
	}
}

func TestPrefetchFailureIsQueuedNotReturned(t *testing.T) {
	var hits atomic.Int32
	srv := tileServer(t, &hits)
	log := logger.New("")
	l := NewLoader(NewFetcher(t.TempDir()), log, 0)
	uri := srv.URL + "/missing.png"
	if err := l.Prefetch(context.Background(), []string{uri}); err != nil {
		t.Fatalf("Prefetch returned %v; failures should only be queued", err)
	}
	got := l.Drain()
	if len(got) != 1 || got[0].Err == nil || got[0].URI != uri {
		t.Fatalf("Drain() = %+v, want one failure", got)
	}
	lines := log.Lines()
	if len(lines) == 0 || !strings.Contains(lines[len(lines)-1], "HTTP 404") {
		t.Errorf("log = %q", lines)
	}
}

func TestFetchLocalFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tile.png")
	if err := os.WriteFile(path, pngBytes(t, 4, 4), 0644); err != nil {
		t.Fatal(err)
	}
	f := NewFetcher(filepath.Join(dir, "cache"))
	for _, uri := range []string{path, "file://" + path} {
		got, err := f.Fetch(context.Background(), uri)
		if err != nil || got != path {
			t.Errorf("Fetch(%q) = %q, %v", uri, got, err)
		}
	}
	if _, err := f.Fetch(context.Background(), filepath.Join(dir, "nope.png")); err == nil {
		t.Error("Fetch(missing local) returned no error")
	}
	if _, err := f.Fetch(context.Background(), "ftp://example.com/a.png"); err == nil {
		t.Error("Fetch(ftp) returned no error")
	}
}

func TestPrefetchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	l := NewLoader(NewFetcher(t.TempDir()), nil, 0)
	err := l.Prefetch(ctx, []string{"http://127.0.0.1:1/a.png"})
	if err == nil {
		t.Error("Prefetch with cancelled context returned nil")
	}
}

func TestThumbnailCoversSquare(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 50))
	// Left and right quarters red, centre square blue: a cover crop keeps only blue.
	for y := 0; y < 50; y++ {
		for x := 0; x < 100; x++ {
			c := color.RGBA{B: 255, A: 255}
			if x < 25 || x >= 75 {
				c = color.RGBA{R: 255, A: 255}
			}
			img.Set(x, y, c)
		}
	}
	th := Thumbnail(img, 10)
	if b := th.Bounds(); b.Dx() != 10 || b.Dy() != 10 {
		t.Fatalf("bounds = %v", b)
	}
	r, _, b, _ := th.At(th.Bounds().Min.X+5, th.Bounds().Min.Y+5).RGBA()
	if r != 0 || b == 0 {
		t.Errorf("centre pixel r=%d b=%d, want blue", r, b)
	}
}

func TestCacheStem(t *testing.T) {
	a := cacheStem("https://images.example.com/photo-1?w=200")
	b := cacheStem("https://images.example.com/photo-1?w=2000")
	if a == b {
		t.Error("different URLs share a cache stem")
	}
	if !strings.HasPrefix(a, "photo-1-") {
		t.Errorf("stem = %q", a)
	}
	if got := sanitizeFilename("a b/c"); got != "a_b_c" {
		t.Errorf("sanitizeFilename = %q", got)
	}
}
