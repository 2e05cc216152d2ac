package formatkit

import (
	"bytes"
	"encoding/binary"
	"io"
)

// PE header constants.
const (
	peDllCharacteristic = 0x2000
	peSubsystemNative   = 1
	peOptMagic32        = 0x10B
	peOptMagic64        = 0x20B
)

// refineExe follows the legacy DOS header to the PE header and selects the
// executable, library, driver, or managed-assembly variant from the COFF
// characteristics, the subsystem field, and the CLR runtime directory.
func refineExe(rs io.ReadSeeker, size int64, base Format) Format {
	dos := make([]byte, 64)
	if !readAt(rs, 0, dos) || dos[0] != 'M' || dos[1] != 'Z' {
		return base
	}
	peOffset := int64(binary.LittleEndian.Uint32(dos[60:64]))
	if peOffset <= 0 || peOffset+24 > size {
		return base
	}

	// PE signature plus 20-byte COFF header.
	coff := make([]byte, 24)
	if !readAt(rs, peOffset, coff) || !bytes.Equal(coff[:4], []byte("PE\x00\x00")) {
		return base
	}
	optSize := binary.LittleEndian.Uint16(coff[20:22])
	characteristics := binary.LittleEndian.Uint16(coff[22:24])
	isDll := characteristics&peDllCharacteristic != 0

	optOffset := peOffset + 24
	if optSize >= 70 {
		opt := make([]byte, optSize)
		if readAt(rs, optOffset, opt) {
			magic := binary.LittleEndian.Uint16(opt[0:2])
			subsystem := binary.LittleEndian.Uint16(opt[68:70])

			// CLR runtime descriptor is data directory 14.
			var clrDir int
			switch magic {
			case peOptMagic32:
				clrDir = 96 + 14*8
			case peOptMagic64:
				clrDir = 112 + 14*8
			}
			if clrDir > 0 && clrDir+8 <= int(optSize) {
				rva := binary.LittleEndian.Uint32(opt[clrDir : clrDir+4])
				dirSize := binary.LittleEndian.Uint32(opt[clrDir+4 : clrDir+8])
				if rva != 0 && dirSize != 0 {
					return NetAssembly
				}
			}
			if subsystem == peSubsystemNative && isDll {
				return Sys
			}
		}
	}
	if isDll {
		return Dll
	}
	return Exe
}
