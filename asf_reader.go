package formatkit

import (
	"bytes"
	"encoding/binary"
	"io"
)

// ASF object GUIDs, serialized in their on-disk little-endian layout.
var (
	asfStreamPropsGUID = []byte{
		0x91, 0x07, 0xDC, 0xB7, 0xB7, 0xA9, 0xCF, 0x11,
		0x8E, 0xE6, 0x00, 0xC0, 0x0C, 0x20, 0x53, 0x65,
	}
	asfAudioMediaGUID = []byte{
		0x40, 0x9E, 0x69, 0xF8, 0x4D, 0x5B, 0xCF, 0x11,
		0xA8, 0xFD, 0x00, 0x80, 0x5F, 0x5C, 0x44, 0x2B,
	}
	asfVideoMediaGUID = []byte{
		0xC0, 0xEF, 0x19, 0xBC, 0x4D, 0x5B, 0xCF, 0x11,
		0xA8, 0xFD, 0x00, 0x80, 0x5F, 0x5C, 0x44, 0x2B,
	}
)

const asfMaxObjects = 32

// refineAsf walks the sub-objects of the GUID-keyed top-level header
// object and selects the audio or video variant from the media-type GUIDs
// of the stream-properties objects. Any video stream wins over audio.
func refineAsf(rs io.ReadSeeker, size int64, base Format) Format {
	hdr := make([]byte, 30)
	if !readAt(rs, 0, hdr) {
		return base
	}
	headerSize := int64(binary.LittleEndian.Uint64(hdr[16:24]))
	numObjects := binary.LittleEndian.Uint32(hdr[24:28])
	if headerSize < 30 || headerSize > size {
		headerSize = size
	}
	if numObjects > asfMaxObjects {
		numObjects = asfMaxObjects
	}

	var hasAudio, hasVideo bool
	offset := int64(30)
	objHdr := make([]byte, 24)
	for i := uint32(0); i < numObjects && offset+24 <= headerSize; i++ {
		if !readAt(rs, offset, objHdr) {
			break
		}
		objSize := int64(binary.LittleEndian.Uint64(objHdr[16:24]))
		if objSize < 24 || offset+objSize > headerSize {
			break
		}
		if bytes.Equal(objHdr[:16], asfStreamPropsGUID) && objSize >= 24+16 {
			streamType := make([]byte, 16)
			if readAt(rs, offset+24, streamType) {
				switch {
				case bytes.Equal(streamType, asfAudioMediaGUID):
					hasAudio = true
				case bytes.Equal(streamType, asfVideoMediaGUID):
					hasVideo = true
				}
			}
		}
		offset += objSize
	}

	switch {
	case hasVideo:
		return Wmv
	case hasAudio:
		return Wma
	default:
		return base
	}
}
