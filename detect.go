package formatkit

import (
	"bytes"
	"errors"
	"io"
	"os"
)

// DefaultMaxReadSize is the number of leading bytes sampled for signature
// matching. It covers the deepest signature offset in the registry (the
// ISO 9660 descriptor at 0x9001).
const DefaultMaxReadSize = 36870

// DefaultMaxDepth bounds recursion when walking nested box and element
// trees during container refinement.
const DefaultMaxDepth = 8

// Detector identifies file formats from content. The zero value uses the
// default limits. Detectors are stateless and safe for concurrent use.
type Detector struct {
	// MaxReadSize is the size of the leading prefix sampled for
	// signature matching.
	MaxReadSize int

	// DisableRefinement skips container readers entirely: a match
	// resolves to its base container format.
	DisableRefinement bool

	// MaxDepth bounds recursion in container readers. Exceeding it is a
	// structural-parse failure and falls back to the base format.
	MaxDepth int
}

// NewDetector creates a detector with default settings.
func NewDetector() *Detector {
	return &Detector{
		MaxReadSize: DefaultMaxReadSize,
		MaxDepth:    DefaultMaxDepth,
	}
}

var defaultDetector = NewDetector()

// FromBytes identifies the format of in-memory content. It never fails:
// unrecognized content yields Unknown and zero-length content yields
// Empty. The buffer is seekable by construction, so container refinement
// runs as well.
func FromBytes(data []byte) Format {
	return defaultDetector.FromBytes(data)
}

// FromReader identifies the format of content read from r, which must be
// positioned at the start of the content. When r is also an io.Seeker the
// container readers may inspect structural regions beyond the prefix and
// the position is restored afterwards; otherwise refinement is skipped and
// the base container format is returned. Only I/O failures produce errors.
func FromReader(r io.Reader) (Format, error) {
	return defaultDetector.FromReader(r)
}

// FromFile identifies the format of the file at path. An empty file yields
// Empty before any content is read.
func FromFile(path string) (Format, error) {
	return defaultDetector.FromFile(path)
}

// FromBytes identifies the format of in-memory content.
func (d *Detector) FromBytes(data []byte) Format {
	if len(data) == 0 {
		return Empty
	}
	prefix := data
	if len(prefix) > d.maxRead() {
		prefix = prefix[:d.maxRead()]
	}
	base := resolve(matchAll(prefix, int64(len(data))))
	if base == Unknown {
		return classifyText(prefix, Unknown)
	}
	return d.refine(bytes.NewReader(data), int64(len(data)), base)
}

// FromReader identifies the format of content read from r.
func (d *Detector) FromReader(r io.Reader) (Format, error) {
	prefix := make([]byte, d.maxRead())
	n, err := io.ReadFull(r, prefix)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return Unknown, &DetectError{Op: "read", Err: err}
	}
	prefix = prefix[:n]
	if n == 0 {
		return Empty, nil
	}

	rs, seekable := r.(io.ReadSeeker)
	if !seekable {
		base := resolve(matchAll(prefix, -1))
		if base == Unknown {
			return classifyText(prefix, Unknown), nil
		}
		return base, nil
	}

	size, err := rs.Seek(0, io.SeekEnd)
	if err != nil {
		return Unknown, &DetectError{Op: "seek", Err: err}
	}
	base := resolve(matchAll(prefix, size))
	if base == Unknown {
		base = classifyText(prefix, Unknown)
	} else {
		base = d.refine(rs, size, base)
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return Unknown, &DetectError{Op: "seek", Err: err}
	}
	return base, nil
}

// FromFile identifies the format of the file at path.
func (d *Detector) FromFile(path string) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return Unknown, &DetectError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return Unknown, &DetectError{Op: "stat", Path: path, Err: err}
	}
	if info.Size() == 0 {
		return Empty, nil
	}

	format, err := d.FromReader(f)
	if err != nil {
		var de *DetectError
		if errors.As(err, &de) {
			de.Path = path
			return Unknown, de
		}
		return Unknown, err
	}
	return format, nil
}

func (d *Detector) maxRead() int {
	if d.MaxReadSize > 0 {
		return d.MaxReadSize
	}
	return DefaultMaxReadSize
}

func (d *Detector) maxDepth() int {
	if d.MaxDepth > 0 {
		return d.MaxDepth
	}
	return DefaultMaxDepth
}
