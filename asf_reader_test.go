package formatkit

import (
	"encoding/binary"
	"testing"
)

var asfHeaderGUID = []byte{
	0x30, 0x26, 0xB2, 0x75, 0x8E, 0x66, 0xCF, 0x11,
	0xA6, 0xD9, 0x00, 0xAA, 0x00, 0x62, 0xCE, 0x6C,
}

// buildAsf assembles a header object containing one stream-properties
// object per media-type GUID.
func buildAsf(streamTypes ...[]byte) []byte {
	const objSize = 24 + 16
	headerSize := uint64(30 + objSize*len(streamTypes))

	data := make([]byte, 0, headerSize)
	data = append(data, asfHeaderGUID...)
	data = binary.LittleEndian.AppendUint64(data, headerSize)
	data = binary.LittleEndian.AppendUint32(data, uint32(len(streamTypes)))
	data = append(data, 0x01, 0x02) // reserved

	for _, st := range streamTypes {
		data = append(data, asfStreamPropsGUID...)
		data = binary.LittleEndian.AppendUint64(data, objSize)
		data = append(data, st...)
	}
	return data
}

func TestRefineAsf(t *testing.T) {
	tests := []struct {
		name    string
		streams [][]byte
		want    Format
	}{
		{
			name:    "audio only",
			streams: [][]byte{asfAudioMediaGUID},
			want:    Wma,
		},
		{
			name:    "video only",
			streams: [][]byte{asfVideoMediaGUID},
			want:    Wmv,
		},
		{
			name:    "video wins over audio",
			streams: [][]byte{asfAudioMediaGUID, asfVideoMediaGUID},
			want:    Wmv,
		},
		{
			name:    "no media streams",
			streams: nil,
			want:    Asf,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := buildAsf(tt.streams...)
			if got := FromBytes(data); got != tt.want {
				t.Errorf("FromBytes() = %v, want %v", got, tt.want)
			}
		})
	}
}
