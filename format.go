package formatkit

// Kind is a coarse grouping of file formats by their dominant content type.
type Kind string

const (
	KindApplication Kind = "application"
	KindAudio       Kind = "audio"
	KindFont        Kind = "font"
	KindImage       Kind = "image"
	KindText        Kind = "text"
	KindVideo       Kind = "video"
)

// containerClass identifies which container reader (if any) can refine a
// base signature match into a more specific sibling format.
type containerClass uint8

const (
	classNone containerClass = iota
	classCfb
	classZip
	classIsobmff
	classEbml
	classAsf
	classExe
	classPdf
	classRiff
	classSqlite
	classXml
	classText
)

// Format identifies a file format from the closed, compile-time-known set.
// The zero value is Unknown. Ordinals are stable across versions: new
// formats are only ever appended.
type Format uint16

const (
	// Unknown is the sentinel for content matching no known signature.
	Unknown Format = iota
	// Empty is the sentinel for zero-length input.
	Empty

	// Archives and compression
	Zip
	SevenZip
	Rar
	Tar
	Gzip
	Bzip2
	Xz
	Zstandard
	Lzip
	Lz4
	Lzop
	UnixCompress
	Cabinet
	UnixArchive
	Debian
	Rpm
	Iso9660
	Xar

	// ZIP-based document and package formats
	Epub
	Jar
	Apk
	Xpi
	Docx
	Xlsx
	Pptx
	Odt
	Ods
	Odp
	Odg

	// Compound File Binary and its document formats
	Cfb
	Doc
	Xls
	Ppt
	Msi

	// Executables and bytecode
	Elf
	Exe
	Dll
	Sys
	NetAssembly
	MachO
	JavaClass
	Dex
	Wasm

	// Databases
	Sqlite3

	// Documents
	Pdf
	Ai
	Rtf
	PostScript
	Mobi

	// Miscellaneous application formats
	Lnk
	Pcap
	Pcapng
	Torrent
	Dicom
	Swf
	Riff

	// Images
	Png
	Apng
	Jpeg
	Gif
	Webp
	Bmp
	Tiff
	Ico
	Icns
	Heic
	Heif
	Avif
	Jp2
	Jxl
	Jxr
	Ktx
	Ktx2
	Psd
	Xcf
	Exr
	Dpx
	Flif
	Bpg
	OlympusOrf
	CanonCr2
	Fits

	// Audio
	Mp3
	Flac
	Ogg
	OggVorbis
	OggTheora
	OggSpeex
	Opus
	Wav
	Aiff
	Aac
	Ac3
	Midi
	MonkeysAudio
	Musepack
	WavPack
	Amr
	Au
	M4a
	Wma

	// Video
	Mp4
	M4v
	Mov
	ThreeGp
	ThreeG2
	Avi
	Mkv
	Webm
	Flv
	Mpeg
	MpegTs
	Wmv
	Asf

	// Fonts
	Ttf
	Otf
	Woff
	Woff2
	Eot

	// Text and markup
	Text
	Json
	Csv
	Html
	ShellScript
	ICalendar
	VCard
	SubRip
	Xml
	Svg
	Rss
	Atom
	Kml
	Gpx
	Xhtml

	formatCount // sentinel, keep last
)

// Name returns the canonical human-readable name of the format.
func (f Format) Name() string {
	return f.info().name
}

// ShortName returns the abbreviated name of the format (often the common
// acronym), or the canonical name when no abbreviation exists.
func (f Format) ShortName() string {
	info := f.info()
	if info.shortName != "" {
		return info.shortName
	}
	return info.name
}

// MediaType returns the IANA media type of the format.
func (f Format) MediaType() string {
	return f.info().mediaType
}

// Extension returns the preferred file extension, without a leading dot.
// The Empty sentinel has no extension.
func (f Format) Extension() string {
	return f.info().extension
}

// Kind returns the coarse grouping of the format.
func (f Format) Kind() Kind {
	return f.info().kind
}

// String implements fmt.Stringer and returns the canonical name.
func (f Format) String() string {
	return f.Name()
}

func (f Format) class() containerClass {
	return f.info().class
}

func (f Format) rank() int {
	return f.info().rank
}

func (f Format) info() formatInfo {
	if f >= formatCount {
		return formatInfos[Unknown]
	}
	return formatInfos[f]
}

// Formats returns every format in the closed set, sentinels included,
// ordered by identifier.
func Formats() []Format {
	out := make([]Format, 0, formatCount)
	for f := Format(0); f < formatCount; f++ {
		out = append(out, f)
	}
	return out
}

// FormatsByKind returns every format of the given kind, ordered by
// identifier.
func FormatsByKind(kind Kind) []Format {
	var out []Format
	for f := Format(0); f < formatCount; f++ {
		if f.Kind() == kind {
			out = append(out, f)
		}
	}
	return out
}
