package formatkit

import (
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns a fast 64-bit content hash. It is meant for
// deduplication and cache keys, not for security.
func Fingerprint(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// FingerprintReader hashes the full content of r in a single pass.
func FingerprintReader(r io.Reader) (uint64, error) {
	h := xxhash.New()
	if _, err := io.Copy(h, r); err != nil {
		return 0, fmt.Errorf("failed to fingerprint content: %w", err)
	}
	return h.Sum64(), nil
}

// FingerprintFile hashes the content of the file at path.
func FingerprintFile(path string) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, &DetectError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()
	return FingerprintReader(f)
}
