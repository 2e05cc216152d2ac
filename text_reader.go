package formatkit

import (
	"bytes"
	"io"
	"unicode/utf16"
)

// textScanWindow bounds how much of a document is inspected when
// classifying textual content.
const textScanWindow = 8192

// refineText re-reads the document head and classifies its textual
// dialect. The base text format survives when nothing more specific is
// recognized.
func refineText(rs io.ReadSeeker, size int64, base Format) Format {
	window := int64(textScanWindow)
	if window > size {
		window = size
	}
	head := make([]byte, window)
	if !readAt(rs, 0, head) {
		return base
	}
	return classifyText(head, base)
}

// classifyText inspects a raw byte window and decides whether it is text
// and, if so, which dialect. Binary-looking content falls back to the base
// format, so callers with no prior match pass Unknown and get Unknown back.
func classifyText(buf []byte, base Format) Format {
	buf, wide := stripBom(buf)
	if wide {
		buf = decodeUtf16Window(buf)
	}
	if !looksTextual(buf) {
		return base
	}
	if base == Unknown {
		base = Text
	}

	trimmed := bytes.TrimLeft(buf, " \t\r\n")
	switch {
	case len(trimmed) == 0:
		return base
	case trimmed[0] == '{' || trimmed[0] == '[':
		return Json
	case hasFoldedPrefix(trimmed, "BEGIN:VCALENDAR"):
		return ICalendar
	case hasFoldedPrefix(trimmed, "BEGIN:VCARD"):
		return VCard
	case bytes.HasPrefix(trimmed, []byte("#!")):
		return ShellScript
	}
	if looksLikeSubRip(trimmed) {
		return SubRip
	}
	if looksLikeHtml(trimmed) {
		return Html
	}
	if looksLikeCsv(buf) {
		return Csv
	}
	return base
}

// stripBom removes a Unicode byte-order mark and reports whether the
// remainder is UTF-16 encoded.
func stripBom(buf []byte) (rest []byte, wide bool) {
	switch {
	case bytes.HasPrefix(buf, []byte{0xEF, 0xBB, 0xBF}):
		return buf[3:], false
	case bytes.HasPrefix(buf, []byte{0xFF, 0xFE}), bytes.HasPrefix(buf, []byte{0xFE, 0xFF}):
		return buf, true
	default:
		return buf, false
	}
}

// decodeUtf16Window converts a UTF-16 window (with leading BOM) to UTF-8
// so the dialect heuristics can run on it.
func decodeUtf16Window(buf []byte) []byte {
	bigEndian := buf[0] == 0xFE
	buf = buf[2:]
	units := make([]uint16, 0, len(buf)/2)
	for i := 0; i+1 < len(buf); i += 2 {
		if bigEndian {
			units = append(units, uint16(buf[i])<<8|uint16(buf[i+1]))
		} else {
			units = append(units, uint16(buf[i+1])<<8|uint16(buf[i]))
		}
	}
	return []byte(string(utf16.Decode(units)))
}

// looksTextual reports whether a window contains only characters plausible
// in a text file. A NUL byte or a high share of control characters marks
// the content as binary.
func looksTextual(buf []byte) bool {
	if len(buf) == 0 {
		return true
	}
	var control int
	for _, b := range buf {
		if b == 0 {
			return false
		}
		if b < 0x20 && b != '\t' && b != '\n' && b != '\r' && b != '\f' && b != 0x1B {
			control++
		}
	}
	return control*32 < len(buf)
}

// hasFoldedPrefix matches an ASCII prefix case-insensitively.
func hasFoldedPrefix(buf []byte, prefix string) bool {
	if len(buf) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		b := buf[i]
		if 'a' <= b && b <= 'z' {
			b -= 'a' - 'A'
		}
		p := prefix[i]
		if 'a' <= p && p <= 'z' {
			p -= 'a' - 'A'
		}
		if b != p {
			return false
		}
	}
	return true
}

var htmlOpeners = []string{
	"<!DOCTYPE HTML", "<HTML", "<HEAD", "<BODY", "<SCRIPT", "<TITLE",
}

func looksLikeHtml(buf []byte) bool {
	for _, opener := range htmlOpeners {
		if hasFoldedPrefix(buf, opener) {
			return true
		}
	}
	return false
}

// looksLikeSubRip matches the leading cue of a SubRip subtitle file: a
// bare cue number followed by a timing line containing the arrow.
func looksLikeSubRip(buf []byte) bool {
	lines := bytes.SplitN(buf, []byte("\n"), 3)
	if len(lines) < 2 {
		return false
	}
	first := bytes.TrimRight(lines[0], "\r")
	if len(first) == 0 || len(first) > 9 {
		return false
	}
	for _, b := range first {
		if b < '0' || b > '9' {
			return false
		}
	}
	return bytes.Contains(lines[1], []byte("-->"))
}

// looksLikeCsv requires at least two complete non-empty lines with the
// same nonzero comma count.
func looksLikeCsv(buf []byte) bool {
	lines := bytes.Split(buf, []byte("\n"))
	if len(lines) < 2 {
		return false
	}
	var counts []int
	for _, line := range lines {
		line = bytes.TrimRight(line, "\r")
		if len(line) == 0 {
			continue
		}
		counts = append(counts, bytes.Count(line, []byte(",")))
		if len(counts) == 4 {
			break
		}
	}
	if len(counts) < 2 || counts[0] == 0 {
		return false
	}
	for _, c := range counts[1:] {
		if c != counts[0] {
			return false
		}
	}
	return true
}
