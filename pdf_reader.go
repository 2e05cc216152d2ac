package formatkit

import (
	"bytes"
	"io"
)

// pdfScanWindow is how much of the document head is scanned for
// application-specific markers.
const pdfScanWindow = 4096

// aiMarkers identify documents saved by Adobe Illustrator, which wraps its
// native format in a regular PDF shell.
var aiMarkers = [][]byte{
	[]byte("AIPrivateData"),
	[]byte("Adobe Illustrator"),
	[]byte("/Creator (Adobe Illustrator"),
}

// refinePdf scans the leading window of a PDF document for Illustrator
// markers. Everything else, including encrypted documents, stays PDF.
func refinePdf(rs io.ReadSeeker, size int64, base Format) Format {
	window := int64(pdfScanWindow)
	if window > size {
		window = size
	}
	head := make([]byte, window)
	if !readAt(rs, 0, head) {
		return base
	}
	for _, marker := range aiMarkers {
		if bytes.Contains(head, marker) {
			return Ai
		}
	}
	return base
}
