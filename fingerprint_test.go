package formatkit

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestFingerprint(t *testing.T) {
	data := []byte("some content worth deduplicating")

	sum := Fingerprint(data)
	if sum == 0 {
		t.Fatal("Fingerprint() returned zero")
	}
	if again := Fingerprint(data); again != sum {
		t.Errorf("Fingerprint() not stable: %x then %x", sum, again)
	}
	if other := Fingerprint([]byte("different content")); other == sum {
		t.Error("distinct content produced the same fingerprint")
	}

	fromReader, err := FingerprintReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("FingerprintReader() error = %v", err)
	}
	if fromReader != sum {
		t.Errorf("FingerprintReader() = %x, want %x", fromReader, sum)
	}
}

func TestFingerprintFile(t *testing.T) {
	data := []byte("file content")
	path := filepath.Join(t.TempDir(), "blob")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	sum, err := FingerprintFile(path)
	if err != nil {
		t.Fatalf("FingerprintFile() error = %v", err)
	}
	if sum != Fingerprint(data) {
		t.Errorf("FingerprintFile() = %x, want %x", sum, Fingerprint(data))
	}

	if _, err := FingerprintFile(filepath.Join(t.TempDir(), "missing")); !IsNotExist(err) {
		t.Errorf("expected a not-exist error, got %v", err)
	}
}
