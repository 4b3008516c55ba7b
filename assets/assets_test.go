package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCleanAssetPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "  ", want: ""},
		{in: "audio/background.mp3", want: "audio/background.mp3"},
		{in: "assets/audio/background.mp3", want: "audio/background.mp3"},
		{in: "/srv/site/assets/fonts/title.ttf", want: "fonts/title.ttf"},
		{in: "/tmp/resume.pdf", want: "resume.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := cleanAssetPath(tt.in); got != tt.want {
				t.Fatalf("cleanAssetPath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func useDir(t *testing.T) string {
	t.Helper()
	prev := Dir()
	t.Cleanup(func() { SetDir(prev) })
	d := t.TempDir()
	SetDir(d)
	return d
}

func TestLoadFile(t *testing.T) {
	d := useDir(t)
	if err := os.WriteFile(filepath.Join(d, "hello.txt"), []byte("hi"), 0o644); err != nil {
		t.Fatal(err)
	}

	b, err := LoadFile("assets/hello.txt")
	if err != nil || string(b) != "hi" {
		t.Fatalf("LoadFile = %q, %v", b, err)
	}
	for _, name := range []string{"", "missing.txt"} {
		if _, err := LoadFile(name); !errors.Is(err, ErrAssetNotFound) {
			t.Fatalf("LoadFile(%q) err = %v, want ErrAssetNotFound", name, err)
		}
	}
}

func TestExportResume(t *testing.T) {
	d := useDir(t)
	out := t.TempDir()
	SetDownloadDir(out)
	t.Cleanup(func() { SetDownloadDir("") })

	if _, err := ExportResume("resume.pdf", "cv.pdf"); !errors.Is(err, ErrAssetNotFound) {
		t.Fatalf("missing resume err = %v", err)
	}

	if err := os.WriteFile(filepath.Join(d, "resume.pdf"), []byte("%PDF"), 0o644); err != nil {
		t.Fatal(err)
	}
	dst, err := ExportResume("resume.pdf", "cv.pdf")
	if err != nil {
		t.Fatal(err)
	}
	if dst != filepath.Join(out, "cv.pdf") {
		t.Fatalf("dst = %q", dst)
	}
	if b, _ := os.ReadFile(dst); string(b) != "%PDF" {
		t.Fatalf("exported %q", b)
	}
}

func TestLoadFontSource(t *testing.T) {
	useDir(t)
	if _, err := LoadFontSource(""); err != nil {
		t.Fatalf("default font: %v", err)
	}
	if _, err := LoadFontSource("fonts/missing.ttf"); !errors.Is(err, ErrAssetNotFound) {
		t.Fatalf("missing font err = %v", err)
	}
	r := <-LoadFontAsync("title", "fonts/missing.ttf")
	if r.Key != "title" || r.Err == nil || r.Source != nil {
		t.Fatalf("async result = %+v", r)
	}
}
