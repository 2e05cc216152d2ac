package formatkit

import (
	"encoding/binary"
	"io"
	"unicode/utf16"
)

// Compound File Binary structural constants.
const (
	cfbHeaderSize    = 512
	cfbDirEntrySize  = 128
	cfbMaxDirSectors = 64
	cfbEndOfChain    = 0xFFFFFFFE
	cfbFreeSector    = 0xFFFFFFFF
)

// msiRootClsid is the class identifier of a Windows Installer package's
// root storage, serialized in the CLSID's mixed-endian layout.
var msiRootClsid = [16]byte{
	0x84, 0x10, 0x0C, 0x00, 0x00, 0x00, 0x00, 0x00,
	0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46,
}

// refineCfb disambiguates Compound File Binary documents by walking the
// directory sector chain and checking the top-level entry names and the
// root storage class identifier.
func refineCfb(rs io.ReadSeeker, size int64, base Format) Format {
	hdr := make([]byte, cfbHeaderSize)
	if !readAt(rs, 0, hdr) {
		return base
	}
	shift := binary.LittleEndian.Uint16(hdr[30:32])
	if shift != 9 && shift != 12 {
		return base
	}
	sectorSize := 1 << shift
	firstDir := binary.LittleEndian.Uint32(hdr[48:52])

	// The header DIFAT lists the first 109 FAT sectors, which covers the
	// directory chains of any real document's leading sectors.
	difat := make([]uint32, 109)
	for i := range difat {
		difat[i] = binary.LittleEndian.Uint32(hdr[76+i*4 : 80+i*4])
	}
	entriesPerFat := sectorSize / 4

	nextSector := func(s uint32) uint32 {
		fatIdx := int(s) / entriesPerFat
		if fatIdx >= len(difat) || difat[fatIdx] >= 0xFFFFFFFA {
			return cfbEndOfChain
		}
		fatSector := make([]byte, sectorSize)
		if !readAt(rs, sectorOffset(difat[fatIdx], shift), fatSector) {
			return cfbEndOfChain
		}
		within := int(s) % entriesPerFat
		return binary.LittleEndian.Uint32(fatSector[within*4 : within*4+4])
	}

	sector := firstDir
	entry := make([]byte, cfbDirEntrySize)
	for walked := 0; walked < cfbMaxDirSectors && sector < 0xFFFFFFFA; walked++ {
		dirOffset := sectorOffset(sector, shift)
		if dirOffset >= size {
			break
		}
		for e := 0; e < sectorSize/cfbDirEntrySize; e++ {
			if !readAt(rs, dirOffset+int64(e*cfbDirEntrySize), entry) {
				return base
			}
			nameLen := int(binary.LittleEndian.Uint16(entry[64:66]))
			if nameLen < 2 || nameLen > 64 {
				continue
			}
			name := decodeUtf16Name(entry[:nameLen-2])
			objType := entry[66]

			if objType == 5 { // root storage
				var clsid [16]byte
				copy(clsid[:], entry[80:96])
				if clsid == msiRootClsid {
					return Msi
				}
				continue
			}
			switch name {
			case "WordDocument":
				return Doc
			case "Workbook", "Book":
				return Xls
			case "PowerPoint Document":
				return Ppt
			}
		}
		sector = nextSector(sector)
	}
	return base
}

func sectorOffset(sector uint32, shift uint16) int64 {
	return int64(sector+1) << shift
}

func decodeUtf16Name(raw []byte) string {
	units := make([]uint16, 0, len(raw)/2)
	for i := 0; i+1 < len(raw); i += 2 {
		units = append(units, binary.LittleEndian.Uint16(raw[i:i+2]))
	}
	return string(utf16.Decode(units))
}
