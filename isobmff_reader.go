package formatkit

import (
	"encoding/binary"
	"io"
)

// isobmffMaxBoxes bounds the number of box records inspected per nesting
// level while looking for the file-type box.
const isobmffMaxBoxes = 16

// isobmffContainers are the box types worth recursing into when the
// file-type box is not at the top level.
var isobmffContainers = map[string]bool{
	"moov": true, "trak": true, "mdia": true, "meta": true, "udta": true,
}

// refineIsobmff walks the size+type box records of an ISO Base Media File
// Format container and maps the file-type box's major brand (falling back
// to the compatible-brand list) to a specific sub-format.
func refineIsobmff(rs io.ReadSeeker, size int64, base Format, maxDepth int) Format {
	if brand, ok := findFtyp(rs, 0, size, maxDepth); ok {
		if f, ok := formatFromBrand(brand.major); ok {
			return f
		}
		for _, compat := range brand.compatible {
			if f, ok := formatFromBrand(compat); ok {
				return f
			}
		}
		return Mp4
	}
	return base
}

type ftypBrand struct {
	major      string
	compatible []string
}

func findFtyp(rs io.ReadSeeker, start, end int64, depth int) (ftypBrand, bool) {
	if depth <= 0 {
		return ftypBrand{}, false
	}
	offset := start
	hdr := make([]byte, 8)
	for i := 0; i < isobmffMaxBoxes && offset+8 <= end; i++ {
		if !readAt(rs, offset, hdr) {
			return ftypBrand{}, false
		}
		boxSize := int64(binary.BigEndian.Uint32(hdr[:4]))
		boxType := string(hdr[4:8])
		headerLen := int64(8)
		switch boxSize {
		case 0:
			boxSize = end - offset
		case 1:
			large := make([]byte, 8)
			if !readAt(rs, offset+8, large) {
				return ftypBrand{}, false
			}
			boxSize = int64(binary.BigEndian.Uint64(large))
			headerLen = 16
		}
		if boxSize < headerLen || offset+boxSize > end {
			return ftypBrand{}, false
		}

		if boxType == "ftyp" {
			return readFtyp(rs, offset+headerLen, boxSize-headerLen)
		}
		if isobmffContainers[boxType] {
			if brand, ok := findFtyp(rs, offset+headerLen, offset+boxSize, depth-1); ok {
				return brand, true
			}
		}
		offset += boxSize
	}
	return ftypBrand{}, false
}

func readFtyp(rs io.ReadSeeker, offset, length int64) (ftypBrand, bool) {
	if length < 8 {
		return ftypBrand{}, false
	}
	// Major brand + minor version, then up to 16 compatible brands.
	if length > 8+16*4 {
		length = 8 + 16*4
	}
	buf := make([]byte, length)
	if !readAt(rs, offset, buf) {
		return ftypBrand{}, false
	}
	brand := ftypBrand{major: string(buf[:4])}
	for i := 8; i+4 <= len(buf); i += 4 {
		brand.compatible = append(brand.compatible, string(buf[i:i+4]))
	}
	return brand, true
}

func formatFromBrand(brand string) (Format, bool) {
	switch brand {
	case "M4A ", "M4B ":
		return M4a, true
	case "M4V ", "M4VH", "M4VP":
		return M4v, true
	case "qt  ":
		return Mov, true
	case "heic", "heix":
		return Heic, true
	case "mif1", "msf1":
		return Heif, true
	case "avif", "avis":
		return Avif, true
	case "jp2 ":
		return Jp2, true
	case "3gp4", "3gp5", "3gp6", "3gp7", "3gp8", "3gp9":
		return ThreeGp, true
	case "3g2a", "3g2b", "3g2c":
		return ThreeG2, true
	case "isom", "iso2", "iso3", "iso4", "iso5", "iso6",
		"mp41", "mp42", "mp4v", "mp71", "avc1", "dash", "mmp4":
		return Mp4, true
	default:
		return Unknown, false
	}
}
