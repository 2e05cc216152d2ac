package formatkit

import "io"

// EBML element IDs relevant to DocType resolution.
const (
	ebmlHeaderID  = 0x1A45DFA3
	ebmlDocTypeID = 0x4282
)

// ebmlMaxElements bounds the number of child elements scanned inside the
// EBML header.
const ebmlMaxElements = 32

// refineEbml parses the variable-length-integer element stream of an EBML
// container and maps the DocType string inside the header element to a
// specific media container variant. An absent or unrecognized DocType
// stays with the generic Matroska sibling.
func refineEbml(rs io.ReadSeeker, size int64, base Format, maxDepth int) Format {
	if maxDepth <= 0 {
		return base
	}
	var offset int64

	id, n, ok := readVint(rs, offset, false)
	if !ok || id != ebmlHeaderID {
		return base
	}
	offset += n
	headerSize, n, ok := readVint(rs, offset, true)
	if !ok {
		return base
	}
	offset += n
	headerEnd := offset + int64(headerSize)
	if headerEnd > size {
		headerEnd = size
	}

	for i := 0; i < ebmlMaxElements && offset < headerEnd; i++ {
		childID, n, ok := readVint(rs, offset, false)
		if !ok {
			return base
		}
		offset += n
		childSize, n, ok := readVint(rs, offset, true)
		if !ok {
			return base
		}
		offset += n
		if childID == ebmlDocTypeID {
			if childSize == 0 || childSize > 32 {
				return base
			}
			docType := make([]byte, childSize)
			if !readAt(rs, offset, docType) {
				return base
			}
			switch string(trimNul(docType)) {
			case "webm":
				return Webm
			case "matroska":
				return Mkv
			default:
				return Mkv
			}
		}
		offset += int64(childSize)
	}
	return base
}

// readVint decodes one EBML variable-length integer at the given offset.
// The leading zero bits of the first byte give the width (1-8 bytes); for
// sizes the marker bit is cleared, for IDs it is kept. Returns the value,
// the number of bytes consumed, and whether decoding succeeded.
func readVint(rs io.ReadSeeker, offset int64, clearMarker bool) (value uint64, width int64, ok bool) {
	first := make([]byte, 1)
	if !readAt(rs, offset, first) {
		return 0, 0, false
	}
	b := first[0]
	if b == 0 {
		return 0, 0, false
	}
	length := 1
	for mask := byte(0x80); mask > 0 && b&mask == 0; mask >>= 1 {
		length++
	}
	if length > 8 {
		return 0, 0, false
	}
	buf := make([]byte, length)
	if !readAt(rs, offset, buf) {
		return 0, 0, false
	}
	if clearMarker {
		buf[0] &^= byte(0x80) >> (length - 1)
	}
	for _, c := range buf {
		value = value<<8 | uint64(c)
	}
	return value, int64(length), true
}

func trimNul(b []byte) []byte {
	for i, c := range b {
		if c == 0 {
			return b[:i]
		}
	}
	return b
}
