package fonts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// Remote downloads font families from the google/fonts repository on GitHub.
// Only files under RawPrefix are ever downloaded.
type Remote struct {
	APIBase   string
	RawPrefix string
	Client    *http.Client
}

// NewRemote returns a Remote pointed at google/fonts.
func NewRemote() *Remote {
	return &Remote{
		APIBase:   "https://api.github.com/repos/google/fonts/contents/ofl",
		RawPrefix: "https://raw.githubusercontent.com/google/fonts/",
		Client:    &http.Client{Timeout: 15 * time.Second},
	}
}

type githubFile struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	DownloadURL string `json:"download_url"`
}

// familyFolders converts a display name to the folder names used under ofl:
// "Open Sans" -> "opensans", then "open-sans".
func familyFolders(name string) []string {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return nil
	}
	out := []string{strings.ReplaceAll(lower, " ", "")}
	if hy := strings.ReplaceAll(lower, " ", "-"); hy != out[0] {
		out = append(out, hy)
	}
	return out
}

// DownloadURL returns the raw URL of a font file for family, preferring upright styles.
func (r *Remote) DownloadURL(ctx context.Context, family string) (string, error) {
	folders := familyFolders(family)
	if len(folders) == 0 {
		return "", fmt.Errorf("fonts: empty family name")
	}
	var lastErr error
	for _, folder := range folders {
		u, err := r.folderURL(ctx, folder)
		if err == nil {
			return u, nil
		}
		lastErr = err
	}
	return "", lastErr
}

func (r *Remote) folderURL(ctx context.Context, folder string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.APIBase+"/"+url.PathEscape(folder), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	resp, err := r.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fonts: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return "", fmt.Errorf("fonts: %q not found on Google Fonts", folder)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fonts: HTTP %d", resp.StatusCode)
	}
	var files []githubFile
	if err := json.NewDecoder(resp.Body).Decode(&files); err != nil {
		return "", fmt.Errorf("fonts: %w", err)
	}
	var italic string
	for _, f := range files {
		if f.Type != "file" || !isFont(f.Name) || !strings.HasPrefix(f.DownloadURL, r.RawPrefix) {
			continue
		}
		if strings.Contains(strings.ToLower(f.Name), "italic") {
			if italic == "" {
				italic = f.DownloadURL
			}
			continue
		}
		return f.DownloadURL, nil
	}
	if italic != "" {
		return italic, nil
	}
	return "", fmt.Errorf("fonts: no .ttf/.otf file for %q", folder)
}

// Download fetches family into dir and returns the saved file's path.
func (r *Remote) Download(ctx context.Context, family, dir string) (string, error) {
	u, err := r.DownloadURL(ctx, family)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	resp, err := r.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fonts: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fonts: HTTP %d", resp.StatusCode)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("fonts: %w", err)
	}
	name := path.Base(u)
	if i := strings.IndexByte(name, '?'); i >= 0 {
		name = name[:i]
	}
	name, _ = url.PathUnescape(name)
	dest := filepath.Join(dir, filepath.Base(name))
	tmp := dest + ".part"
	f, err := os.Create(tmp)
	if err != nil {
		return "", fmt.Errorf("fonts: %w", err)
	}
	_, err = io.Copy(f, resp.Body)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("fonts: %w", err)
	}
	if err := os.Rename(tmp, dest); err != nil {
		return "", fmt.Errorf("fonts: %w", err)
	}
	return dest, nil
}
