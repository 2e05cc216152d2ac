package formatkit

import "io"

// refine hands a base container match to the reader for its container
// class. Readers are strictly best-effort: any structural inconsistency,
// truncation, or depth overflow inside a reader yields the base format
// unchanged, and a reader only ever returns formats of the same container
// class as its input.
func (d *Detector) refine(rs io.ReadSeeker, size int64, base Format) Format {
	if d.DisableRefinement {
		return base
	}
	switch base.class() {
	case classCfb:
		return refineCfb(rs, size, base)
	case classZip:
		return refineZip(rs, size, base)
	case classIsobmff:
		return refineIsobmff(rs, size, base, d.maxDepth())
	case classEbml:
		return refineEbml(rs, size, base, d.maxDepth())
	case classAsf:
		return refineAsf(rs, size, base)
	case classExe:
		return refineExe(rs, size, base)
	case classPdf:
		return refinePdf(rs, size, base)
	case classRiff:
		return refineRiff(rs, size, base)
	case classSqlite:
		return refineSqlite(rs, size, base)
	case classXml:
		return refineXml(rs, size, base)
	case classText:
		return refineText(rs, size, base)
	default:
		return base
	}
}

// readAt reads exactly len(buf) bytes at the given absolute offset,
// reporting false on any failure or short read. Readers use it for the
// small structural regions they inspect; payload data is never loaded.
func readAt(rs io.ReadSeeker, offset int64, buf []byte) bool {
	if offset < 0 {
		return false
	}
	if _, err := rs.Seek(offset, io.SeekStart); err != nil {
		return false
	}
	if _, err := io.ReadFull(rs, buf); err != nil {
		return false
	}
	return true
}
