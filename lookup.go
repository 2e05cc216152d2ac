package formatkit

import "strings"

// Reverse lookup tables, built once from the format catalog. Extensions and
// media types are not unique across formats; the lowest ordinal wins, which
// keeps lookups deterministic.
var (
	byExtension = make(map[string]Format)
	byMediaType = make(map[string]Format)
)

func init() {
	for f := Format(0); f < formatCount; f++ {
		info := f.info()
		if ext := strings.ToLower(info.extension); ext != "" {
			if _, ok := byExtension[ext]; !ok {
				byExtension[ext] = f
			}
		}
		if mt := strings.ToLower(info.mediaType); mt != "" {
			if _, ok := byMediaType[mt]; !ok {
				byMediaType[mt] = f
			}
		}
	}
}

// ByExtension returns the format registered for a file extension. The
// extension is matched without a leading dot and case-insensitively.
// Extension lookup is a hint only; it never inspects content.
func ByExtension(ext string) (Format, bool) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	f, ok := byExtension[ext]
	return f, ok
}

// ByMediaType returns the format registered for a media type. Parameters
// such as charset are ignored.
func ByMediaType(mediaType string) (Format, bool) {
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))
	if i := strings.IndexByte(mediaType, ';'); i >= 0 {
		mediaType = strings.TrimSpace(mediaType[:i])
	}
	f, ok := byMediaType[mediaType]
	return f, ok
}
