package fonts

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("font"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestScanDirListsFontsOnly(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Inter", "Inter-Regular.ttf"))
	touch(t, filepath.Join(dir, "Inter", "OFL.txt"))
	touch(t, filepath.Join(dir, "Mono.OTF"))

	got, err := ScanDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Inter/Inter-Regular.ttf", "Mono.OTF"}
	if len(got) != len(want) {
		t.Fatalf("ScanDir = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ScanDir[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestScanDirMissing(t *testing.T) {
	got, err := ScanDir(filepath.Join(t.TempDir(), "nope"))
	if err != nil || len(got) != 0 {
		t.Fatalf("ScanDir(missing) = %v, %v", got, err)
	}
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Open_Sans", "OpenSans-Bold.ttf"))
	touch(t, filepath.Join(dir, "Open_Sans", "OpenSans-Regular.ttf"))
	touch(t, filepath.Join(dir, "Lora.ttf"))
	dirs := []string{filepath.Join(dir, "missing"), dir}

	tests := []struct {
		search string
		want   string
	}{
		{"Open Sans", filepath.Join(dir, "Open_Sans", "OpenSans-Regular.ttf")},
		{"opensans-bold", filepath.Join(dir, "Open_Sans", "OpenSans-Bold.ttf")},
		{"lora", filepath.Join(dir, "Lora.ttf")},
		{"", filepath.Join(dir, "Open_Sans", "OpenSans-Regular.ttf")},
		{filepath.Join(dir, "Lora.ttf"), filepath.Join(dir, "Lora.ttf")},
	}
	for _, tt := range tests {
		got, err := Find(tt.search, dirs)
		if err != nil {
			t.Errorf("Find(%q): %v", tt.search, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Find(%q) = %q, want %q", tt.search, got, tt.want)
		}
	}
	if _, err := Find("Roboto", dirs); !os.IsNotExist(err) {
		t.Errorf("Find(Roboto) err = %v, want not exist", err)
	}
}

func TestCodepoints(t *testing.T) {
	cps := Codepoints("Cerámica", "Visualizador 3D")
	if len(cps) != 95+1 {
		t.Fatalf("len = %d, want 96 (ASCII + á)", len(cps))
	}
	if cps[0] != ' ' || cps[len(cps)-1] != 'á' {
		t.Errorf("range = %q..%q", cps[0], cps[len(cps)-1])
	}
}
