package formatkit

import (
	"encoding/binary"
	"testing"
)

// buildPe assembles a minimal PE32+ image: DOS header, COFF header, and a
// 240-byte optional header.
func buildPe(characteristics, subsystem uint16, managed bool) []byte {
	const optSize = 240
	data := make([]byte, 64+24+optSize)

	copy(data, "MZ")
	binary.LittleEndian.PutUint32(data[60:64], 64) // PE header offset

	copy(data[64:], "PE\x00\x00")
	binary.LittleEndian.PutUint16(data[68:70], 0x8664) // machine
	binary.LittleEndian.PutUint16(data[70:72], 1)      // sections
	binary.LittleEndian.PutUint16(data[84:86], optSize)
	binary.LittleEndian.PutUint16(data[86:88], characteristics)

	opt := data[88:]
	binary.LittleEndian.PutUint16(opt[0:2], peOptMagic64)
	binary.LittleEndian.PutUint16(opt[68:70], subsystem)
	if managed {
		clrDir := 112 + 14*8
		binary.LittleEndian.PutUint32(opt[clrDir:clrDir+4], 0x2000) // RVA
		binary.LittleEndian.PutUint32(opt[clrDir+4:clrDir+8], 72)   // size
	}
	return data
}

func TestRefineExe(t *testing.T) {
	const (
		charExecutable = 0x0002
		charDll        = 0x2000
		subsystemGui   = 2
	)
	tests := []struct {
		name            string
		characteristics uint16
		subsystem       uint16
		managed         bool
		want            Format
	}{
		{
			name:            "plain executable",
			characteristics: charExecutable,
			subsystem:       subsystemGui,
			want:            Exe,
		},
		{
			name:            "dynamic link library",
			characteristics: charExecutable | charDll,
			subsystem:       subsystemGui,
			want:            Dll,
		},
		{
			name:            "native subsystem driver",
			characteristics: charExecutable | charDll,
			subsystem:       peSubsystemNative,
			want:            Sys,
		},
		{
			name:            "managed assembly",
			characteristics: charExecutable,
			subsystem:       subsystemGui,
			managed:         true,
			want:            NetAssembly,
		},
		{
			name:            "managed library is still an assembly",
			characteristics: charExecutable | charDll,
			subsystem:       subsystemGui,
			managed:         true,
			want:            NetAssembly,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := buildPe(tt.characteristics, tt.subsystem, tt.managed)
			if got := FromBytes(data); got != tt.want {
				t.Errorf("FromBytes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRefineExeDosOnly(t *testing.T) {
	// An MZ header pointing past the end of the file stays the base
	// executable format.
	data := make([]byte, 64)
	copy(data, "MZ")
	binary.LittleEndian.PutUint32(data[60:64], 0x4000)
	if got := FromBytes(data); got != Exe {
		t.Errorf("FromBytes() = %v, want %v", got, Exe)
	}
}
