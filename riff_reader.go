package formatkit

import (
	"encoding/binary"
	"io"
)

// refineRiff reads the form type of a RIFF container and selects the wave,
// AVI, or WebP sibling. Unknown form types stay with the generic container.
func refineRiff(rs io.ReadSeeker, size int64, base Format) Format {
	hdr := make([]byte, 12)
	if !readAt(rs, 0, hdr) {
		return base
	}
	if string(hdr[:4]) != "RIFF" {
		return base
	}
	riffSize := int64(binary.LittleEndian.Uint32(hdr[4:8]))
	if riffSize < 4 {
		return base
	}
	switch string(hdr[8:12]) {
	case "WAVE":
		return Wav
	case "AVI ":
		return Avi
	case "WEBP":
		return Webp
	default:
		return base
	}
}
