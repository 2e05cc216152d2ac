package formatkit

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeTree(t *testing.T, files map[string][]byte) string {
	t.Helper()
	dir := t.TempDir()
	for name, data := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestDetectTree(t *testing.T) {
	dir := writeTree(t, map[string][]byte{
		"doc.bin":        []byte("%PDF-1.4\n"),
		"img.bin":        {0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A},
		"sub/notes.bin":  []byte("plain old text\nsecond line\n"),
		"sub/empty.dat":  nil,
	})

	matches, err := DetectTree(context.Background(), dir, nil)
	if err != nil {
		t.Fatalf("DetectTree() error = %v", err)
	}
	got := make(map[string]Format, len(matches))
	for _, m := range matches {
		rel, err := filepath.Rel(dir, m.Path)
		if err != nil {
			t.Fatal(err)
		}
		got[filepath.ToSlash(rel)] = m.Format
	}
	want := map[string]Format{
		"doc.bin":       Pdf,
		"img.bin":       Png,
		"sub/notes.bin": Text,
		"sub/empty.dat": Empty,
	}
	if len(got) != len(want) {
		t.Fatalf("DetectTree() found %d files, want %d: %v", len(got), len(want), got)
	}
	for rel, f := range want {
		if got[rel] != f {
			t.Errorf("%s = %v, want %v", rel, got[rel], f)
		}
	}
}

func TestDetectTreeGlobSelector(t *testing.T) {
	dir := writeTree(t, map[string][]byte{
		"a.bin": []byte("%PDF-1.4\n"),
		"b.txt": []byte("text\n"),
	})
	sel, err := Glob("*.bin")
	if err != nil {
		t.Fatalf("Glob() error = %v", err)
	}
	matches, err := DetectTree(context.Background(), dir, sel)
	if err != nil {
		t.Fatalf("DetectTree() error = %v", err)
	}
	if len(matches) != 1 || matches[0].Format != Pdf {
		t.Errorf("DetectTree() = %v, want a single PDF match", matches)
	}
}

func TestDetectTreeCanceled(t *testing.T) {
	dir := writeTree(t, map[string][]byte{"a": []byte("x")})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := DetectTree(ctx, dir, nil); err == nil {
		t.Error("DetectTree() with canceled context must fail")
	}
}

func TestSelectorCombinators(t *testing.T) {
	binSel, err := Glob("*.bin")
	if err != nil {
		t.Fatal(err)
	}
	sel := And(binSel, Not(SelectorFunc(func(p string) bool {
		return filepath.Base(p) == "skip.bin"
	})))

	if !sel.Select("keep.bin") {
		t.Error("keep.bin should be selected")
	}
	if sel.Select("skip.bin") {
		t.Error("skip.bin should be excluded")
	}
	if sel.Select("other.txt") {
		t.Error("other.txt should be excluded")
	}
}

func TestGlobInvalidPattern(t *testing.T) {
	if _, err := Glob("[unclosed"); err == nil {
		t.Error("Glob() must reject an invalid pattern")
	}
}
