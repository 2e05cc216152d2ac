package formatkit

import (
	"bytes"
	"sort"
)

// sigPart is one anchored byte pattern of a signature, offset from the
// start of the input.
type sigPart struct {
	offset  int
	pattern []byte
}

// signature is a conjunction of parts: every part must match. Gaps between
// parts express "don't care" byte positions. A format may own several
// alternative signatures (separate table rows, logical OR).
type signature struct {
	parts []sigPart
}

// concrete returns the number of concrete bytes the signature pins down,
// used as the primary specificity measure during resolution.
func (s signature) concrete() int {
	n := 0
	for _, p := range s.parts {
		n += len(p.pattern)
	}
	return n
}

// match reports whether every part of the signature matches. prefix holds
// the leading bytes of the input; total is the input length, or -1 when it
// is unknown (a non-seekable stream). A part whose window is not covered
// by the available bytes is a non-match, never an error.
func (s signature) match(prefix []byte, total int64) bool {
	for _, p := range s.parts {
		end := p.offset + len(p.pattern)
		if end > len(prefix) {
			return false
		}
		if total >= 0 && int64(end) > total {
			return false
		}
		if !bytes.Equal(prefix[p.offset:end], p.pattern) {
			return false
		}
	}
	return true
}

func sig(parts ...sigPart) signature { return signature{parts: parts} }

func at(offset int, pattern string) sigPart {
	return sigPart{offset: offset, pattern: []byte(pattern)}
}

type sigEntry struct {
	format Format
	sig    signature
}

// signatureTable is the process-wide registry of byte-pattern signatures.
// It is populated once at compile time and read-only thereafter. Formats
// reachable only through container refinement (for example Docx or Wma)
// deliberately have no rows here.
var signatureTable = []sigEntry{
	// Archives and compression
	{Zip, sig(at(0, "PK\x03\x04"))},
	{Zip, sig(at(0, "PK\x05\x06"))},
	{Zip, sig(at(0, "PK\x07\x08"))},
	{SevenZip, sig(at(0, "7z\xBC\xAF\x27\x1C"))},
	{Rar, sig(at(0, "Rar!\x1A\x07\x01\x00"))},
	{Rar, sig(at(0, "Rar!\x1A\x07\x00"))},
	{Tar, sig(at(257, "ustar\x0000"))},
	{Tar, sig(at(257, "ustar\x20\x20\x00"))},
	{Gzip, sig(at(0, "\x1F\x8B"))},
	{Bzip2, sig(at(0, "BZh"))},
	{Xz, sig(at(0, "\xFD7zXZ\x00"))},
	{Zstandard, sig(at(0, "\x28\xB5\x2F\xFD"))},
	{Lzip, sig(at(0, "LZIP"))},
	{Lz4, sig(at(0, "\x04\x22\x4D\x18"))},
	{Lzop, sig(at(0, "\x89LZO\x00\x0D\x0A\x1A\x0A"))},
	{UnixCompress, sig(at(0, "\x1F\xA0"))},
	{UnixCompress, sig(at(0, "\x1F\x9D"))},
	{Cabinet, sig(at(0, "MSCF"))},
	{Cabinet, sig(at(0, "ISc("))},
	{Debian, sig(at(0, "!<arch>\x0A"), at(8, "debian-binary"))},
	{UnixArchive, sig(at(0, "!<arch>"))},
	{Rpm, sig(at(0, "\xED\xAB\xEE\xDB"))},
	{Iso9660, sig(at(0x8001, "CD001"))},
	{Iso9660, sig(at(0x8801, "CD001"))},
	{Iso9660, sig(at(0x9001, "CD001"))},
	{Xar, sig(at(0, "xar!"))},

	// Compound File Binary (specific sub-formats come from the reader)
	{Cfb, sig(at(0, "\xD0\xCF\x11\xE0\xA1\xB1\x1A\xE1"))},

	// Executables and bytecode
	{Elf, sig(at(0, "\x7FELF"))},
	{Exe, sig(at(0, "MZ"))},
	{MachO, sig(at(0, "\xCF\xFA\xED\xFE"))},
	{MachO, sig(at(0, "\xCE\xFA\xED\xFE"))},
	{MachO, sig(at(0, "\xFE\xED\xFA\xCE"))},
	{MachO, sig(at(0, "\xFE\xED\xFA\xCF"))},
	{JavaClass, sig(at(0, "\xCA\xFE\xBA\xBE"))},
	{Dex, sig(at(0, "dex\x0A"))},
	{Wasm, sig(at(0, "\x00asm"))},

	// Databases
	{Sqlite3, sig(at(0, "SQLite format 3\x00"))},

	// Documents
	{Pdf, sig(at(0, "%PDF-"))},
	{Rtf, sig(at(0, "{\\rtf"))},
	{PostScript, sig(at(0, "%!PS"))},
	{Mobi, sig(at(60, "BOOKMOBI"))},

	// Miscellaneous application formats
	{Lnk, sig(at(0, "L\x00\x00\x00\x01\x14\x02\x00"))},
	{Pcap, sig(at(0, "\xA1\xB2\xC3\xD4"))},
	{Pcap, sig(at(0, "\xD4\xC3\xB2\xA1"))},
	{Pcapng, sig(at(0, "\x0A\x0D\x0D\x0A"))},
	{Torrent, sig(at(0, "d8:announce"))},
	{Dicom, sig(at(128, "DICM"))},
	{Swf, sig(at(0, "CWS"))},
	{Swf, sig(at(0, "FWS"))},

	// RIFF family (form type confirmed by the reader)
	{Riff, sig(at(0, "RIFF"))},
	{Wav, sig(at(0, "RIFF"), at(8, "WAVE"))},
	{Avi, sig(at(0, "RIFF"), at(8, "AVI\x20"))},
	{Webp, sig(at(0, "RIFF"), at(8, "WEBP"))},

	// ISO-BMFF family (brand resolved by the reader)
	{Mp4, sig(at(4, "ftyp"))},
	{Jp2, sig(at(0, "\x00\x00\x00\x0CjP\x20\x20\x0D\x0A\x87\x0A"))},

	// EBML family (DocType resolved by the reader)
	{Mkv, sig(at(0, "\x1A\x45\xDF\xA3"))},

	// ASF family (stream types resolved by the reader)
	{Asf, sig(at(0, "\x30\x26\xB2\x75\x8E\x66\xCF\x11\xA6\xD9\x00\xAA\x00\x62\xCE\x6C"))},

	// Images
	{Apng, sig(at(0, "\x89PNG\x0D\x0A\x1A\x0A"), at(0x25, "acTL"))},
	{Png, sig(at(0, "\x89PNG\x0D\x0A\x1A\x0A"))},
	{Jpeg, sig(at(0, "\xFF\xD8\xFF"))},
	{Gif, sig(at(0, "GIF87a"))},
	{Gif, sig(at(0, "GIF89a"))},
	{Bmp, sig(at(0, "BM"))},
	{CanonCr2, sig(at(0, "II*\x00"), at(8, "CR"))},
	{Tiff, sig(at(0, "II*\x00"))},
	{Tiff, sig(at(0, "MM\x00*"))},
	{Ico, sig(at(0, "\x00\x00\x01\x00"))},
	{Icns, sig(at(0, "icns"))},
	{Jxl, sig(at(0, "\x00\x00\x00\x0CJXL\x20\x0D\x0A\x87\x0A"))},
	{Jxl, sig(at(0, "\xFF\x0A"))},
	{Jxr, sig(at(0, "II\xBC"))},
	{Ktx, sig(at(0, "\xABKTX 11\xBB\x0D\x0A\x1A\x0A"))},
	{Ktx2, sig(at(0, "\xABKTX 20\xBB\x0D\x0A\x1A\x0A"))},
	{Psd, sig(at(0, "8BPS"))},
	{Xcf, sig(at(0, "gimp xcf"))},
	{Exr, sig(at(0, "\x76\x2F\x31\x01"))},
	{Dpx, sig(at(0, "SDPX"))},
	{Dpx, sig(at(0, "XPDS"))},
	{Flif, sig(at(0, "FLIF"))},
	{Bpg, sig(at(0, "BPG\xFB"))},
	{OlympusOrf, sig(at(0, "IIRO\x08\x00\x00\x00\x18"))},
	{Fits, sig(at(0, "SIMPLE  = "))},

	// Audio
	{Mp3, sig(at(0, "ID3"))},
	{Mp3, sig(at(0, "\xFF\xFB"))},
	{Mp3, sig(at(0, "\xFF\xFA"))},
	{Mp3, sig(at(0, "\xFF\xF3"))},
	{Mp3, sig(at(0, "\xFF\xF2"))},
	{Flac, sig(at(0, "fLaC"))},
	{Opus, sig(at(0, "OggS"), at(28, "OpusHead"))},
	{OggVorbis, sig(at(0, "OggS"), at(29, "vorbis"))},
	{OggTheora, sig(at(0, "OggS"), at(29, "theora"))},
	{OggSpeex, sig(at(0, "OggS"), at(28, "Speex"))},
	{Ogg, sig(at(0, "OggS"))},
	{Aiff, sig(at(0, "FORM"), at(8, "AIFF"))},
	{Aac, sig(at(0, "\xFF\xF1"))},
	{Aac, sig(at(0, "\xFF\xF9"))},
	{Ac3, sig(at(0, "\x0B\x77"))},
	{Midi, sig(at(0, "MThd"))},
	{MonkeysAudio, sig(at(0, "MAC\x20"))},
	{Musepack, sig(at(0, "MPCK"))},
	{Musepack, sig(at(0, "MP+"))},
	{WavPack, sig(at(0, "wvpk"))},
	{Amr, sig(at(0, "#!AMR"))},
	{Au, sig(at(0, ".snd"))},

	// Video
	{Flv, sig(at(0, "FLV\x01"))},
	{Mpeg, sig(at(0, "\x00\x00\x01\xBA"))},
	{Mpeg, sig(at(0, "\x00\x00\x01\xB3"))},
	{MpegTs, sig(at(0, "\x47"), at(188, "\x47"))},
	{MpegTs, sig(at(4, "\x47"), at(196, "\x47"))},

	// Fonts
	{Ttf, sig(at(0, "\x00\x01\x00\x00\x00"))},
	{Otf, sig(at(0, "OTTO\x00"))},
	{Woff, sig(at(0, "wOFF"))},
	{Woff2, sig(at(0, "wOF2"))},
	{Eot, sig(at(8, "\x00\x00\x01"), at(34, "LP"))},
	{Eot, sig(at(8, "\x01\x00\x02"), at(34, "LP"))},
	{Eot, sig(at(8, "\x02\x00\x02"), at(34, "LP"))},

	// Text and markup
	{Xml, sig(at(0, "<?xml"))},
	{Html, sig(at(0, "<!DOCTYPE html"))},
	{Html, sig(at(0, "<!doctype html"))},
	{Html, sig(at(0, "<html"))},
	{Html, sig(at(0, "<HTML"))},
	{ICalendar, sig(at(0, "BEGIN:VCALENDAR"))},
	{VCard, sig(at(0, "BEGIN:VCARD"))},
	{ShellScript, sig(at(0, "#!"))},
	{Text, sig(at(0, "\xEF\xBB\xBF"))},
}

// candidate pairs a matched format with the specificity of the signature
// that matched it.
type candidate struct {
	format   Format
	concrete int
}

// matchAll evaluates every registry signature against the sampled bytes and
// returns the candidate set. prefix holds the leading bytes and total the
// input length (-1 when unknown). For a format matched by several
// alternative signatures, only the most concrete match is kept.
func matchAll(prefix []byte, total int64) []candidate {
	best := make(map[Format]int)
	for _, e := range signatureTable {
		if !e.sig.match(prefix, total) {
			continue
		}
		if c := e.sig.concrete(); c > best[e.format] {
			best[e.format] = c
		}
	}
	cands := make([]candidate, 0, len(best))
	for f, c := range best {
		cands = append(cands, candidate{format: f, concrete: c})
	}
	return cands
}

// resolve picks the single best candidate. The ordering mirrors the
// reference behavior of checking longer signatures before shorter ones:
// most concrete matched bytes first, then the declared specificity rank,
// then the lowest format identifier for determinism.
func resolve(cands []candidate) Format {
	if len(cands) == 0 {
		return Unknown
	}
	sort.Slice(cands, func(i, j int) bool {
		a, b := cands[i], cands[j]
		if a.concrete != b.concrete {
			return a.concrete > b.concrete
		}
		if a.format.rank() != b.format.rank() {
			return a.format.rank() > b.format.rank()
		}
		return a.format < b.format
	})
	return cands[0].format
}
