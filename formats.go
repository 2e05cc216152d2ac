package formatkit

// formatInfo is the constant metadata carried by every format descriptor.
// The table is populated once at compile time and never mutated, so
// concurrent reads from any number of goroutines are safe.
type formatInfo struct {
	name      string
	shortName string
	mediaType string
	extension string
	kind      Kind
	class     containerClass

	// rank breaks ties between signatures matching the same number of
	// concrete bytes: generic container and frame-sync style formats
	// carry rank 0, everything else rank 1. See resolve.
	rank int
}

var formatInfos = [formatCount]formatInfo{
	Unknown: {name: "Arbitrary Binary Data", shortName: "BIN", mediaType: "application/octet-stream", extension: "bin", kind: KindApplication},
	Empty:   {name: "Empty File", mediaType: "application/x-empty", extension: "", kind: KindApplication},

	// Archives and compression
	Zip:          {name: "ZIP", mediaType: "application/zip", extension: "zip", kind: KindApplication, class: classZip},
	SevenZip:     {name: "7-Zip", shortName: "7Z", mediaType: "application/x-7z-compressed", extension: "7z", kind: KindApplication, rank: 1},
	Rar:          {name: "Roshal Archive", shortName: "RAR", mediaType: "application/vnd.rar", extension: "rar", kind: KindApplication, rank: 1},
	Tar:          {name: "Tape Archive", shortName: "TAR", mediaType: "application/x-tar", extension: "tar", kind: KindApplication, rank: 1},
	Gzip:         {name: "Gzip", shortName: "GZ", mediaType: "application/gzip", extension: "gz", kind: KindApplication, rank: 1},
	Bzip2:        {name: "Bzip2", shortName: "BZ2", mediaType: "application/x-bzip2", extension: "bz2", kind: KindApplication, rank: 1},
	Xz:           {name: "XZ", mediaType: "application/x-xz", extension: "xz", kind: KindApplication, rank: 1},
	Zstandard:    {name: "Zstandard", shortName: "ZSTD", mediaType: "application/zstd", extension: "zst", kind: KindApplication, rank: 1},
	Lzip:         {name: "Lzip", shortName: "LZ", mediaType: "application/x-lzip", extension: "lz", kind: KindApplication, rank: 1},
	Lz4:          {name: "LZ4", mediaType: "application/x-lz4", extension: "lz4", kind: KindApplication, rank: 1},
	Lzop:         {name: "Lzop", shortName: "LZO", mediaType: "application/x-lzop", extension: "lzo", kind: KindApplication, rank: 1},
	UnixCompress: {name: "UNIX Compress", shortName: "Z", mediaType: "application/x-compress", extension: "Z", kind: KindApplication, rank: 1},
	Cabinet:      {name: "Cabinet", shortName: "CAB", mediaType: "application/vnd.ms-cab-compressed", extension: "cab", kind: KindApplication, rank: 1},
	UnixArchive:  {name: "UNIX Archive", shortName: "AR", mediaType: "application/x-archive", extension: "ar", kind: KindApplication, rank: 1},
	Debian:       {name: "Debian Binary Package", shortName: "DEB", mediaType: "application/vnd.debian.binary-package", extension: "deb", kind: KindApplication, rank: 1},
	Rpm:          {name: "Red Hat Package Manager Package", shortName: "RPM", mediaType: "application/x-rpm", extension: "rpm", kind: KindApplication, rank: 1},
	Iso9660:      {name: "ISO 9660 Image", shortName: "ISO", mediaType: "application/x-iso9660-image", extension: "iso", kind: KindApplication, rank: 1},
	Xar:          {name: "Extensible Archive", shortName: "XAR", mediaType: "application/x-xar", extension: "xar", kind: KindApplication, rank: 1},

	// ZIP-based document and package formats
	Epub: {name: "Electronic Publication", shortName: "EPUB", mediaType: "application/epub+zip", extension: "epub", kind: KindApplication, class: classZip, rank: 1},
	Jar:  {name: "Java Archive", shortName: "JAR", mediaType: "application/java-archive", extension: "jar", kind: KindApplication, class: classZip, rank: 1},
	Apk:  {name: "Android Package", shortName: "APK", mediaType: "application/vnd.android.package-archive", extension: "apk", kind: KindApplication, class: classZip, rank: 1},
	Xpi:  {name: "Cross-Platform Installer", shortName: "XPI", mediaType: "application/x-xpinstall", extension: "xpi", kind: KindApplication, class: classZip, rank: 1},
	Docx: {name: "Office Open XML Document", shortName: "DOCX", mediaType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document", extension: "docx", kind: KindApplication, class: classZip, rank: 1},
	Xlsx: {name: "Office Open XML Spreadsheet", shortName: "XLSX", mediaType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", extension: "xlsx", kind: KindApplication, class: classZip, rank: 1},
	Pptx: {name: "Office Open XML Presentation", shortName: "PPTX", mediaType: "application/vnd.openxmlformats-officedocument.presentationml.presentation", extension: "pptx", kind: KindApplication, class: classZip, rank: 1},
	Odt:  {name: "OpenDocument Text", shortName: "ODT", mediaType: "application/vnd.oasis.opendocument.text", extension: "odt", kind: KindApplication, class: classZip, rank: 1},
	Ods:  {name: "OpenDocument Spreadsheet", shortName: "ODS", mediaType: "application/vnd.oasis.opendocument.spreadsheet", extension: "ods", kind: KindApplication, class: classZip, rank: 1},
	Odp:  {name: "OpenDocument Presentation", shortName: "ODP", mediaType: "application/vnd.oasis.opendocument.presentation", extension: "odp", kind: KindApplication, class: classZip, rank: 1},
	Odg:  {name: "OpenDocument Graphics", shortName: "ODG", mediaType: "application/vnd.oasis.opendocument.graphics", extension: "odg", kind: KindApplication, class: classZip, rank: 1},

	// Compound File Binary and its document formats
	Cfb: {name: "Compound File Binary", shortName: "CFB", mediaType: "application/x-cfb", extension: "cfb", kind: KindApplication, class: classCfb},
	Doc: {name: "Microsoft Word Document", shortName: "DOC", mediaType: "application/msword", extension: "doc", kind: KindApplication, class: classCfb, rank: 1},
	Xls: {name: "Microsoft Excel Spreadsheet", shortName: "XLS", mediaType: "application/vnd.ms-excel", extension: "xls", kind: KindApplication, class: classCfb, rank: 1},
	Ppt: {name: "Microsoft PowerPoint Presentation", shortName: "PPT", mediaType: "application/vnd.ms-powerpoint", extension: "ppt", kind: KindApplication, class: classCfb, rank: 1},
	Msi: {name: "Microsoft Software Installer", shortName: "MSI", mediaType: "application/x-msi", extension: "msi", kind: KindApplication, class: classCfb, rank: 1},

	// Executables and bytecode
	Elf:         {name: "Executable and Linkable Format", shortName: "ELF", mediaType: "application/x-executable", extension: "elf", kind: KindApplication, rank: 1},
	Exe:         {name: "Portable Executable", shortName: "PE", mediaType: "application/vnd.microsoft.portable-executable", extension: "exe", kind: KindApplication, class: classExe},
	Dll:         {name: "Dynamic Link Library", shortName: "DLL", mediaType: "application/vnd.microsoft.portable-executable", extension: "dll", kind: KindApplication, class: classExe, rank: 1},
	Sys:         {name: "Windows System Driver", shortName: "SYS", mediaType: "application/vnd.microsoft.portable-executable", extension: "sys", kind: KindApplication, class: classExe, rank: 1},
	NetAssembly: {name: "Microsoft .NET Assembly", mediaType: "application/vnd.microsoft.portable-executable", extension: "exe", kind: KindApplication, class: classExe, rank: 1},
	MachO:       {name: "Mach-O", mediaType: "application/x-mach-binary", extension: "macho", kind: KindApplication, rank: 1},
	JavaClass:   {name: "Java Class", mediaType: "application/java-vm", extension: "class", kind: KindApplication, rank: 1},
	Dex:         {name: "Dalvik Executable", shortName: "DEX", mediaType: "application/vnd.android.dex", extension: "dex", kind: KindApplication, rank: 1},
	Wasm:        {name: "WebAssembly Binary", shortName: "WASM", mediaType: "application/wasm", extension: "wasm", kind: KindApplication, rank: 1},

	// Databases
	Sqlite3: {name: "SQLite 3 Database", mediaType: "application/vnd.sqlite3", extension: "sqlite", kind: KindApplication, class: classSqlite, rank: 1},

	// Documents
	Pdf:        {name: "Portable Document Format", shortName: "PDF", mediaType: "application/pdf", extension: "pdf", kind: KindApplication, class: classPdf},
	Ai:         {name: "Adobe Illustrator Artwork", shortName: "AI", mediaType: "application/vnd.adobe.illustrator", extension: "ai", kind: KindApplication, class: classPdf, rank: 1},
	Rtf:        {name: "Rich Text Format", shortName: "RTF", mediaType: "application/rtf", extension: "rtf", kind: KindText, rank: 1},
	PostScript: {name: "PostScript", shortName: "PS", mediaType: "application/postscript", extension: "ps", kind: KindApplication, rank: 1},
	Mobi:       {name: "Mobipocket", shortName: "MOBI", mediaType: "application/x-mobipocket-ebook", extension: "mobi", kind: KindApplication, rank: 1},

	// Miscellaneous application formats
	Lnk:     {name: "Windows Shortcut", shortName: "LNK", mediaType: "application/x-ms-shortcut", extension: "lnk", kind: KindApplication, rank: 1},
	Pcap:    {name: "Packet Capture", shortName: "PCAP", mediaType: "application/vnd.tcpdump.pcap", extension: "pcap", kind: KindApplication, rank: 1},
	Pcapng:  {name: "Packet Capture Next Generation", shortName: "PCAPNG", mediaType: "application/x-pcapng", extension: "pcapng", kind: KindApplication, rank: 1},
	Torrent: {name: "BitTorrent File", mediaType: "application/x-bittorrent", extension: "torrent", kind: KindApplication, rank: 1},
	Dicom:   {name: "Digital Imaging and Communications in Medicine", shortName: "DICOM", mediaType: "application/dicom", extension: "dcm", kind: KindApplication, rank: 1},
	Swf:     {name: "Small Web Format", shortName: "SWF", mediaType: "application/x-shockwave-flash", extension: "swf", kind: KindApplication, rank: 1},
	Riff:    {name: "Resource Interchange File Format", shortName: "RIFF", mediaType: "application/x-riff", extension: "riff", kind: KindApplication, class: classRiff},

	// Images
	Png:        {name: "Portable Network Graphics", shortName: "PNG", mediaType: "image/png", extension: "png", kind: KindImage, rank: 1},
	Apng:       {name: "Animated Portable Network Graphics", shortName: "APNG", mediaType: "image/apng", extension: "apng", kind: KindImage, rank: 1},
	Jpeg:       {name: "Joint Photographic Experts Group", shortName: "JPEG", mediaType: "image/jpeg", extension: "jpg", kind: KindImage, rank: 1},
	Gif:        {name: "Graphics Interchange Format", shortName: "GIF", mediaType: "image/gif", extension: "gif", kind: KindImage, rank: 1},
	Webp:       {name: "WebP", mediaType: "image/webp", extension: "webp", kind: KindImage, class: classRiff, rank: 1},
	Bmp:        {name: "Windows Bitmap", shortName: "BMP", mediaType: "image/bmp", extension: "bmp", kind: KindImage},
	Tiff:       {name: "Tag Image File Format", shortName: "TIFF", mediaType: "image/tiff", extension: "tiff", kind: KindImage, rank: 1},
	Ico:        {name: "Windows Icon", shortName: "ICO", mediaType: "image/x-icon", extension: "ico", kind: KindImage, rank: 1},
	Icns:       {name: "Apple Icon Image", shortName: "ICNS", mediaType: "image/icns", extension: "icns", kind: KindImage, rank: 1},
	Heic:       {name: "High Efficiency Image Coding", shortName: "HEIC", mediaType: "image/heic", extension: "heic", kind: KindImage, class: classIsobmff, rank: 1},
	Heif:       {name: "High Efficiency Image File Format", shortName: "HEIF", mediaType: "image/heif", extension: "heif", kind: KindImage, class: classIsobmff, rank: 1},
	Avif:       {name: "AV1 Image File Format", shortName: "AVIF", mediaType: "image/avif", extension: "avif", kind: KindImage, class: classIsobmff, rank: 1},
	Jp2:        {name: "JPEG 2000", shortName: "JP2", mediaType: "image/jp2", extension: "jp2", kind: KindImage, class: classIsobmff, rank: 1},
	Jxl:        {name: "JPEG XL", shortName: "JXL", mediaType: "image/jxl", extension: "jxl", kind: KindImage, rank: 1},
	Jxr:        {name: "JPEG Extended Range", shortName: "JXR", mediaType: "image/jxr", extension: "jxr", kind: KindImage, rank: 1},
	Ktx:        {name: "Khronos Texture", shortName: "KTX", mediaType: "image/ktx", extension: "ktx", kind: KindImage, rank: 1},
	Ktx2:       {name: "Khronos Texture 2", shortName: "KTX2", mediaType: "image/ktx2", extension: "ktx2", kind: KindImage, rank: 1},
	Psd:        {name: "Adobe Photoshop Document", shortName: "PSD", mediaType: "image/vnd.adobe.photoshop", extension: "psd", kind: KindImage, rank: 1},
	Xcf:        {name: "eXperimental Computing Facility", shortName: "XCF", mediaType: "image/x-xcf", extension: "xcf", kind: KindImage, rank: 1},
	Exr:        {name: "OpenEXR", shortName: "EXR", mediaType: "image/x-exr", extension: "exr", kind: KindImage, rank: 1},
	Dpx:        {name: "Digital Picture Exchange", shortName: "DPX", mediaType: "image/x-dpx", extension: "dpx", kind: KindImage, rank: 1},
	Flif:       {name: "Free Lossless Image Format", shortName: "FLIF", mediaType: "image/flif", extension: "flif", kind: KindImage, rank: 1},
	Bpg:        {name: "Better Portable Graphics", shortName: "BPG", mediaType: "image/bpg", extension: "bpg", kind: KindImage, rank: 1},
	OlympusOrf: {name: "Olympus Raw Format", shortName: "ORF", mediaType: "image/x-olympus-orf", extension: "orf", kind: KindImage, rank: 1},
	CanonCr2:   {name: "Canon Raw 2", shortName: "CR2", mediaType: "image/x-canon-cr2", extension: "cr2", kind: KindImage, rank: 1},
	Fits:       {name: "Flexible Image Transport System", shortName: "FITS", mediaType: "image/fits", extension: "fits", kind: KindImage, rank: 1},

	// Audio
	Mp3:          {name: "MPEG-1/2 Audio Layer 3", shortName: "MP3", mediaType: "audio/mpeg", extension: "mp3", kind: KindAudio},
	Flac:         {name: "Free Lossless Audio Codec", shortName: "FLAC", mediaType: "audio/x-flac", extension: "flac", kind: KindAudio, rank: 1},
	Ogg:          {name: "Ogg Multiplexed Media", shortName: "OGX", mediaType: "application/ogg", extension: "ogx", kind: KindApplication},
	OggVorbis:    {name: "Ogg Vorbis", shortName: "OGG", mediaType: "audio/ogg", extension: "ogg", kind: KindAudio, rank: 1},
	OggTheora:    {name: "Ogg Theora", shortName: "OGV", mediaType: "video/ogg", extension: "ogv", kind: KindVideo, rank: 1},
	OggSpeex:     {name: "Ogg Speex", shortName: "SPX", mediaType: "audio/ogg", extension: "spx", kind: KindAudio, rank: 1},
	Opus:         {name: "Ogg Opus", shortName: "OPUS", mediaType: "audio/opus", extension: "opus", kind: KindAudio, rank: 1},
	Wav:          {name: "Waveform Audio", shortName: "WAV", mediaType: "audio/vnd.wave", extension: "wav", kind: KindAudio, class: classRiff, rank: 1},
	Aiff:         {name: "Audio Interchange File Format", shortName: "AIFF", mediaType: "audio/aiff", extension: "aif", kind: KindAudio, rank: 1},
	Aac:          {name: "Advanced Audio Coding", shortName: "AAC", mediaType: "audio/aac", extension: "aac", kind: KindAudio},
	Ac3:          {name: "Audio Codec 3", shortName: "AC-3", mediaType: "audio/vnd.dolby.dd-raw", extension: "ac3", kind: KindAudio},
	Midi:         {name: "Musical Instrument Digital Interface", shortName: "MIDI", mediaType: "audio/midi", extension: "mid", kind: KindAudio, rank: 1},
	MonkeysAudio: {name: "Monkey's Audio", shortName: "APE", mediaType: "audio/x-ape", extension: "ape", kind: KindAudio, rank: 1},
	Musepack:     {name: "Musepack", shortName: "MPC", mediaType: "audio/x-musepack", extension: "mpc", kind: KindAudio, rank: 1},
	WavPack:      {name: "WavPack", shortName: "WV", mediaType: "audio/wavpack", extension: "wv", kind: KindAudio, rank: 1},
	Amr:          {name: "Adaptive Multi-Rate", shortName: "AMR", mediaType: "audio/amr", extension: "amr", kind: KindAudio, rank: 1},
	Au:           {name: "Basic Audio", shortName: "AU", mediaType: "audio/basic", extension: "au", kind: KindAudio, rank: 1},
	M4a:          {name: "MPEG-4 Audio", shortName: "M4A", mediaType: "audio/x-m4a", extension: "m4a", kind: KindAudio, class: classIsobmff, rank: 1},
	Wma:          {name: "Windows Media Audio", shortName: "WMA", mediaType: "audio/x-ms-wma", extension: "wma", kind: KindAudio, class: classAsf, rank: 1},

	// Video
	Mp4:     {name: "MPEG-4 Part 14", shortName: "MP4", mediaType: "video/mp4", extension: "mp4", kind: KindVideo, class: classIsobmff},
	M4v:     {name: "MPEG-4 Video", shortName: "M4V", mediaType: "video/x-m4v", extension: "m4v", kind: KindVideo, class: classIsobmff, rank: 1},
	Mov:     {name: "QuickTime Movie", shortName: "MOV", mediaType: "video/quicktime", extension: "mov", kind: KindVideo, class: classIsobmff, rank: 1},
	ThreeGp: {name: "3rd Generation Partnership Project", shortName: "3GP", mediaType: "video/3gpp", extension: "3gp", kind: KindVideo, class: classIsobmff, rank: 1},
	ThreeG2: {name: "3rd Generation Partnership Project 2", shortName: "3G2", mediaType: "video/3gpp2", extension: "3g2", kind: KindVideo, class: classIsobmff, rank: 1},
	Avi:     {name: "Audio Video Interleave", shortName: "AVI", mediaType: "video/avi", extension: "avi", kind: KindVideo, class: classRiff, rank: 1},
	Mkv:     {name: "Matroska Video", shortName: "MKV", mediaType: "video/x-matroska", extension: "mkv", kind: KindVideo, class: classEbml},
	Webm:    {name: "WebM", mediaType: "video/webm", extension: "webm", kind: KindVideo, class: classEbml, rank: 1},
	Flv:     {name: "Flash Video", shortName: "FLV", mediaType: "video/x-flv", extension: "flv", kind: KindVideo, rank: 1},
	Mpeg:    {name: "MPEG-1 Video", shortName: "MPG", mediaType: "video/mpeg", extension: "mpg", kind: KindVideo, rank: 1},
	MpegTs:  {name: "MPEG Transport Stream", shortName: "M2TS", mediaType: "video/mp2t", extension: "m2ts", kind: KindVideo},
	Wmv:     {name: "Windows Media Video", shortName: "WMV", mediaType: "video/x-ms-asf", extension: "wmv", kind: KindVideo, class: classAsf, rank: 1},
	Asf:     {name: "Advanced Systems Format", shortName: "ASF", mediaType: "application/vnd.ms-asf", extension: "asf", kind: KindApplication, class: classAsf},

	// Fonts
	Ttf:   {name: "TrueType Font", shortName: "TTF", mediaType: "font/ttf", extension: "ttf", kind: KindFont, rank: 1},
	Otf:   {name: "OpenType Font", shortName: "OTF", mediaType: "font/otf", extension: "otf", kind: KindFont, rank: 1},
	Woff:  {name: "Web Open Font Format", shortName: "WOFF", mediaType: "font/woff", extension: "woff", kind: KindFont, rank: 1},
	Woff2: {name: "Web Open Font Format 2", shortName: "WOFF2", mediaType: "font/woff2", extension: "woff2", kind: KindFont, rank: 1},
	Eot:   {name: "Embedded OpenType", shortName: "EOT", mediaType: "application/vnd.ms-fontobject", extension: "eot", kind: KindFont, rank: 1},

	// Text and markup
	Text:        {name: "Plain Text", shortName: "TXT", mediaType: "text/plain", extension: "txt", kind: KindText, class: classText},
	Json:        {name: "JavaScript Object Notation", shortName: "JSON", mediaType: "application/json", extension: "json", kind: KindText, class: classText, rank: 1},
	Csv:         {name: "Comma-Separated Values", shortName: "CSV", mediaType: "text/csv", extension: "csv", kind: KindText, class: classText, rank: 1},
	Html:        {name: "HyperText Markup Language", shortName: "HTML", mediaType: "text/html", extension: "html", kind: KindText, class: classText, rank: 1},
	ShellScript: {name: "Shell Script", shortName: "SH", mediaType: "text/x-shellscript", extension: "sh", kind: KindText, class: classText, rank: 1},
	ICalendar:   {name: "iCalendar", shortName: "ICS", mediaType: "text/calendar", extension: "ics", kind: KindText, class: classText, rank: 1},
	VCard:       {name: "vCard", shortName: "VCF", mediaType: "text/vcard", extension: "vcf", kind: KindText, class: classText, rank: 1},
	SubRip:      {name: "SubRip Text", shortName: "SRT", mediaType: "application/x-subrip", extension: "srt", kind: KindText, class: classText, rank: 1},
	Xml:         {name: "Extensible Markup Language", shortName: "XML", mediaType: "text/xml", extension: "xml", kind: KindText, class: classXml},
	Svg:         {name: "Scalable Vector Graphics", shortName: "SVG", mediaType: "image/svg+xml", extension: "svg", kind: KindImage, class: classXml, rank: 1},
	Rss:         {name: "Really Simple Syndication", shortName: "RSS", mediaType: "application/rss+xml", extension: "rss", kind: KindApplication, class: classXml, rank: 1},
	Atom:        {name: "Atom Syndication Format", shortName: "Atom", mediaType: "application/atom+xml", extension: "atom", kind: KindApplication, class: classXml, rank: 1},
	Kml:         {name: "Keyhole Markup Language", shortName: "KML", mediaType: "application/vnd.google-earth.kml+xml", extension: "kml", kind: KindApplication, class: classXml, rank: 1},
	Gpx:         {name: "GPS Exchange Format", shortName: "GPX", mediaType: "application/gpx+xml", extension: "gpx", kind: KindApplication, class: classXml, rank: 1},
	Xhtml:       {name: "Extensible HyperText Markup Language", shortName: "XHTML", mediaType: "application/xhtml+xml", extension: "xhtml", kind: KindText, class: classXml, rank: 1},
}
