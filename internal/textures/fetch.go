package textures

import (
	"context"
	"fmt"
	"hash/fnv"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

const (
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; rv:109.0) Gecko/20100101 Firefox/115.0"
	// acceptImages asks image CDNs for a format we can decode.
	acceptImages = "image/webp,image/png,image/jpeg;q=0.9,image/*;q=0.5"
	fetchTimeout = 60 * time.Second
)

// Fetcher resolves texture URIs to files on disk. Remote URIs are downloaded once into Dir;
// file:// URIs and bare paths are used in place.
type Fetcher struct {
	Dir    string
	Client *http.Client
}

// NewFetcher returns a fetcher caching into dir.
func NewFetcher(dir string) *Fetcher {
	return &Fetcher{Dir: dir, Client: &http.Client{Timeout: fetchTimeout}}
}

// Fetch returns the local path holding uri's image, downloading it if it is not cached yet.
func (f *Fetcher) Fetch(ctx context.Context, uri string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", uri, err)
	}
	switch u.Scheme {
	case "", "file":
		path := uri
		if u.Scheme == "file" {
			path = u.Path
		}
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("fetch %s: %w", uri, err)
		}
		return path, nil
	case "http", "https":
	default:
		return "", fmt.Errorf("fetch %s: unsupported scheme %q", uri, u.Scheme)
	}

	stem := cacheStem(uri)
	if hit, ok := f.cached(stem); ok {
		return hit, nil
	}
	return f.download(ctx, uri, stem)
}

func (f *Fetcher) cached(stem string) (string, bool) {
	matches, err := filepath.Glob(filepath.Join(f.Dir, stem+".*"))
	if err != nil || len(matches) == 0 {
		return "", false
	}
	return matches[0], true
}

// download saves uri under Dir as stem plus an extension taken from Content-Type or the URL.
func (f *Fetcher) download(ctx context.Context, uri, stem string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", acceptImages)
	resp, err := f.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download: %s: HTTP %d", uri, resp.StatusCode)
	}
	ext := extensionFromContentType(resp.Header.Get("Content-Type"))
	if ext == "" {
		ext = extensionFromURL(uri)
	}
	if ext == "" {
		ext = ".bin"
	}
	if err := os.MkdirAll(f.Dir, 0755); err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	// Write to a temp name first so a half-written file never looks like a cache hit.
	tmp, err := os.CreateTemp(f.Dir, stem+"-*.part")
	if err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("download: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("download: %w", err)
	}
	saved := filepath.Join(f.Dir, stem+ext)
	if err := os.Rename(tmp.Name(), saved); err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("download: %w", err)
	}
	return saved, nil
}

// cacheStem names a cached file: the URL's base name plus a hash of the whole URL,
// so the same photo requested at two sizes gets two files.
func cacheStem(uri string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(uri))
	return fmt.Sprintf("%s-%08x", sanitizeFilename(filenameFromURL(uri)), h.Sum32())
}

func extensionFromContentType(ct string) string {
	ct = strings.ToLower(strings.TrimSpace(ct))
	if idx := strings.Index(ct, ";"); idx >= 0 {
		ct = ct[:idx]
	}
	switch {
	case strings.Contains(ct, "png"):
		return ".png"
	case strings.Contains(ct, "jpeg"), strings.Contains(ct, "jpg"):
		return ".jpg"
	case strings.Contains(ct, "gif"):
		return ".gif"
	case strings.Contains(ct, "webp"):
		return ".webp"
	}
	return ""
}

func extensionFromURL(uri string) string {
	path := uri
	if idx := strings.Index(path, "?"); idx >= 0 {
		path = path[:idx]
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
		return ext
	}
	return ""
}

func filenameFromURL(uri string) string {
	path := uri
	if idx := strings.Index(path, "?"); idx >= 0 {
		path = path[:idx]
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

var safeNameRe = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

func sanitizeFilename(name string) string {
	name = safeNameRe.ReplaceAllString(name, "_")
	if name == "" || name == "_" {
		return "texture"
	}
	if len(name) > 64 {
		name = name[:64]
	}
	return name
}
