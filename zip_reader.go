package formatkit

import (
	"bytes"
	"encoding/binary"
	"io"
	"strings"
)

// ZIP structural constants. The end-of-central-directory record is located
// by bounded backward search: it sits in the final 22 bytes plus at most a
// 64 KiB archive comment.
const (
	zipEocdMin        = 22
	zipEocdSearchMax  = zipEocdMin + 65535
	zipCentralHdrSize = 46
	zipLocalHdrSize   = 30
	zipMaxEntries     = 4096
	zipMaxNameLen     = 512
)

var (
	zipEocdSig    = []byte("PK\x05\x06")
	zipCentralSig = []byte("PK\x01\x02")
	zipLocalSig   = []byte("PK\x03\x04")
)

// refineZip disambiguates ZIP-based formats by walking the central
// directory and inspecting entry names, plus the content of a stored
// "mimetype" entry for EPUB and OpenDocument archives.
func refineZip(rs io.ReadSeeker, size int64, base Format) Format {
	cdOffset, entries, ok := findEocd(rs, size)
	if !ok {
		return base
	}

	var (
		hasContentTypes bool
		hasManifestMF   bool
		hasMozillaRSA   bool
		docType         Format
	)

	offset := cdOffset
	if entries > zipMaxEntries {
		entries = zipMaxEntries
	}
	hdr := make([]byte, zipCentralHdrSize)
	for i := 0; i < entries; i++ {
		if !readAt(rs, offset, hdr) || !bytes.Equal(hdr[:4], zipCentralSig) {
			break
		}
		nameLen := int(binary.LittleEndian.Uint16(hdr[28:30]))
		extraLen := int(binary.LittleEndian.Uint16(hdr[30:32]))
		commentLen := int(binary.LittleEndian.Uint16(hdr[32:34]))
		localOffset := int64(binary.LittleEndian.Uint32(hdr[42:46]))

		if nameLen > 0 && nameLen <= zipMaxNameLen {
			name := make([]byte, nameLen)
			if !readAt(rs, offset+zipCentralHdrSize, name) {
				break
			}
			switch {
			case string(name) == "mimetype":
				method := binary.LittleEndian.Uint16(hdr[10:12])
				uncompressed := binary.LittleEndian.Uint32(hdr[24:28])
				if f, ok := formatFromMimetypeEntry(rs, localOffset, method, uncompressed); ok {
					return f
				}
			case string(name) == "AndroidManifest.xml":
				return Apk
			case string(name) == "META-INF/MANIFEST.MF":
				hasManifestMF = true
			case string(name) == "META-INF/mozilla.rsa":
				hasMozillaRSA = true
			case string(name) == "[Content_Types].xml":
				hasContentTypes = true
			case docType == Unknown && strings.HasPrefix(string(name), "word/"):
				docType = Docx
			case docType == Unknown && strings.HasPrefix(string(name), "xl/"):
				docType = Xlsx
			case docType == Unknown && strings.HasPrefix(string(name), "ppt/"):
				docType = Pptx
			}
		}
		offset += int64(zipCentralHdrSize + nameLen + extraLen + commentLen)
	}

	switch {
	case hasContentTypes && docType != Unknown:
		return docType
	case hasMozillaRSA:
		return Xpi
	case hasManifestMF:
		return Jar
	default:
		return base
	}
}

// findEocd locates the end-of-central-directory record by searching
// backwards through the trailing window and returns the central directory
// offset and entry count.
func findEocd(rs io.ReadSeeker, size int64) (cdOffset int64, entries int, ok bool) {
	if size < zipEocdMin {
		return 0, 0, false
	}
	window := int64(zipEocdSearchMax)
	if window > size {
		window = size
	}
	buf := make([]byte, window)
	if !readAt(rs, size-window, buf) {
		return 0, 0, false
	}
	i := bytes.LastIndex(buf, zipEocdSig)
	for i >= 0 {
		if len(buf)-i >= zipEocdMin {
			rec := buf[i:]
			entries = int(binary.LittleEndian.Uint16(rec[10:12]))
			cdOffset = int64(binary.LittleEndian.Uint32(rec[16:20]))
			if cdOffset < size {
				return cdOffset, entries, true
			}
		}
		i = bytes.LastIndex(buf[:i], zipEocdSig)
	}
	return 0, 0, false
}

// formatFromMimetypeEntry reads the content of a stored (uncompressed)
// "mimetype" entry via its local file header. Method and size come from
// the central directory record, which stays accurate even for archives
// written in streaming mode where the local header carries zero sizes.
// EPUB and OpenDocument require this entry to be stored first, so a
// compressed entry is treated as inconclusive.
func formatFromMimetypeEntry(rs io.ReadSeeker, localOffset int64, method uint16, uncompressed uint32) (Format, bool) {
	if method != 0 || uncompressed == 0 || uncompressed > 100 {
		return Unknown, false
	}
	hdr := make([]byte, zipLocalHdrSize)
	if !readAt(rs, localOffset, hdr) || !bytes.Equal(hdr[:4], zipLocalSig) {
		return Unknown, false
	}
	nameLen := int(binary.LittleEndian.Uint16(hdr[26:28]))
	extraLen := int(binary.LittleEndian.Uint16(hdr[28:30]))
	content := make([]byte, uncompressed)
	if !readAt(rs, localOffset+int64(zipLocalHdrSize+nameLen+extraLen), content) {
		return Unknown, false
	}
	switch strings.TrimSpace(string(content)) {
	case "application/epub+zip":
		return Epub, true
	case "application/vnd.oasis.opendocument.text":
		return Odt, true
	case "application/vnd.oasis.opendocument.spreadsheet":
		return Ods, true
	case "application/vnd.oasis.opendocument.presentation":
		return Odp, true
	case "application/vnd.oasis.opendocument.graphics":
		return Odg, true
	default:
		return Unknown, false
	}
}
