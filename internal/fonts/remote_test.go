package fonts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func fontServer(t *testing.T) *Remote {
	t.Helper()
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	raw := srv.URL + "/raw/"
	mux.HandleFunc("/api/opensans", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]githubFile{
			{Name: "OFL.txt", Type: "file", DownloadURL: raw + "OFL.txt"},
			{Name: "OpenSans-Italic.ttf", Type: "file", DownloadURL: raw + "OpenSans-Italic.ttf"},
			{Name: "Evil.ttf", Type: "file", DownloadURL: "https://elsewhere.example/Evil.ttf"},
			{Name: "OpenSans[wdth,wght].ttf", Type: "file", DownloadURL: raw + "OpenSans%5Bwdth,wght%5D.ttf"},
		})
	})
	mux.HandleFunc("/api/lora", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]githubFile{
			{Name: "Lora-Italic.ttf", Type: "file", DownloadURL: raw + "Lora-Italic.ttf"},
		})
	})
	mux.HandleFunc("/raw/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ttf-bytes"))
	})
	return &Remote{APIBase: srv.URL + "/api", RawPrefix: raw, Client: srv.Client()}
}

func TestDownloadURL(t *testing.T) {
	r := fontServer(t)
	ctx := context.Background()

	u, err := r.DownloadURL(ctx, "Open Sans")
	if err != nil {
		t.Fatal(err)
	}
	if want := r.RawPrefix + "OpenSans%5Bwdth,wght%5D.ttf"; u != want {
		t.Errorf("Open Sans = %q, want upright %q", u, want)
	}
	if u, err = r.DownloadURL(ctx, "Lora"); err != nil || u != r.RawPrefix+"Lora-Italic.ttf" {
		t.Errorf("Lora = %q, %v; want italic fallback", u, err)
	}
	if _, err := r.DownloadURL(ctx, "Nope"); err == nil {
		t.Error("unknown family accepted")
	}
	if _, err := r.DownloadURL(ctx, "  "); err == nil {
		t.Error("empty family accepted")
	}
}

func TestDownload(t *testing.T) {
	r := fontServer(t)
	dir := filepath.Join(t.TempDir(), "fonts")
	got, err := r.Download(context.Background(), "open sans", dir)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "OpenSans[wdth,wght].ttf"); got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
	data, err := os.ReadFile(got)
	if err != nil || string(data) != "ttf-bytes" {
		t.Errorf("content = %q, %v", data, err)
	}
	if found, err := Find("opensans", []string{dir}); err != nil || found != got {
		t.Errorf("Find after download = %q, %v", found, err)
	}
}

func TestFamilyFolders(t *testing.T) {
	got := familyFolders(" Open Sans ")
	if len(got) != 2 || got[0] != "opensans" || got[1] != "open-sans" {
		t.Errorf("familyFolders = %v", got)
	}
	if got := familyFolders("Lora"); len(got) != 1 {
		t.Errorf("familyFolders(Lora) = %v", got)
	}
}
