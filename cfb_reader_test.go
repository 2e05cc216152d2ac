package formatkit

import (
	"encoding/binary"
	"testing"
	"unicode/utf16"
)

// buildCfb assembles a three-sector Compound File Binary document: header,
// one FAT sector, and one directory sector holding a root entry plus one
// named stream.
func buildCfb(t *testing.T, streamName string, rootClsid [16]byte) []byte {
	t.Helper()
	data := make([]byte, 512*3)

	// Header.
	copy(data, []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1})
	binary.LittleEndian.PutUint16(data[30:32], 9) // 512-byte sectors
	binary.LittleEndian.PutUint32(data[48:52], 1) // directory at sector 1
	binary.LittleEndian.PutUint32(data[76:80], 0) // FAT at sector 0
	for i := 1; i < 109; i++ {
		binary.LittleEndian.PutUint32(data[76+i*4:80+i*4], cfbFreeSector)
	}

	// FAT sector.
	fat := data[512:1024]
	binary.LittleEndian.PutUint32(fat[0:4], 0xFFFFFFFD) // FAT marker
	binary.LittleEndian.PutUint32(fat[4:8], cfbEndOfChain)
	for i := 2; i < 128; i++ {
		binary.LittleEndian.PutUint32(fat[i*4:i*4+4], cfbFreeSector)
	}

	// Directory sector: root storage then the stream.
	writeDirEntry(data[1024:1152], "Root Entry", 5, rootClsid)
	writeDirEntry(data[1152:1280], streamName, 2, [16]byte{})
	return data
}

func writeDirEntry(entry []byte, name string, objType byte, clsid [16]byte) {
	units := utf16.Encode([]rune(name))
	for i, u := range units {
		binary.LittleEndian.PutUint16(entry[i*2:i*2+2], u)
	}
	binary.LittleEndian.PutUint16(entry[64:66], uint16(len(units)*2+2))
	entry[66] = objType
	copy(entry[80:96], clsid[:])
}

func TestRefineCfb(t *testing.T) {
	tests := []struct {
		name       string
		streamName string
		rootClsid  [16]byte
		want       Format
	}{
		{
			name:       "word document stream",
			streamName: "WordDocument",
			want:       Doc,
		},
		{
			name:       "excel workbook stream",
			streamName: "Workbook",
			want:       Xls,
		},
		{
			name:       "legacy excel book stream",
			streamName: "Book",
			want:       Xls,
		},
		{
			name:       "powerpoint stream",
			streamName: "PowerPoint Document",
			want:       Ppt,
		},
		{
			name:       "installer root clsid",
			streamName: "SomeStream",
			rootClsid:  msiRootClsid,
			want:       Msi,
		},
		{
			name:       "unrecognized streams stay generic",
			streamName: "CustomData",
			want:       Cfb,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := buildCfb(t, tt.streamName, tt.rootClsid)
			if got := FromBytes(data); got != tt.want {
				t.Errorf("FromBytes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRefineCfbTruncatedHeader(t *testing.T) {
	// Magic with less than a full header sector behind it.
	data := make([]byte, 64)
	copy(data, []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1})
	if got := FromBytes(data); got != Cfb {
		t.Errorf("FromBytes() = %v, want %v", got, Cfb)
	}
}
