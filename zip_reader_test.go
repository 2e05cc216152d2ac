package formatkit

import (
	"archive/zip"
	"bytes"
	"testing"
)

type zipEntry struct {
	name   string
	body   string
	stored bool
}

func buildZip(t *testing.T, entries []zipEntry) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, e := range entries {
		hdr := &zip.FileHeader{Name: e.name, Method: zip.Deflate}
		if e.stored {
			hdr.Method = zip.Store
		}
		f, err := w.CreateHeader(hdr)
		if err != nil {
			t.Fatalf("create %s: %v", e.name, err)
		}
		if _, err := f.Write([]byte(e.body)); err != nil {
			t.Fatalf("write %s: %v", e.name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close archive: %v", err)
	}
	return buf.Bytes()
}

func TestRefineZip(t *testing.T) {
	tests := []struct {
		name    string
		entries []zipEntry
		want    Format
	}{
		{
			name: "epub via stored mimetype",
			entries: []zipEntry{
				{name: "mimetype", body: "application/epub+zip", stored: true},
				{name: "OEBPS/content.opf", body: "<package/>"},
			},
			want: Epub,
		},
		{
			name: "opendocument text",
			entries: []zipEntry{
				{name: "mimetype", body: "application/vnd.oasis.opendocument.text", stored: true},
				{name: "content.xml", body: "<office/>"},
			},
			want: Odt,
		},
		{
			name: "compressed mimetype is inconclusive",
			entries: []zipEntry{
				{name: "mimetype", body: "application/epub+zip"},
			},
			want: Zip,
		},
		{
			name: "android package",
			entries: []zipEntry{
				{name: "AndroidManifest.xml", body: "binary xml"},
				{name: "classes.dex", body: "dex"},
			},
			want: Apk,
		},
		{
			name: "java archive",
			entries: []zipEntry{
				{name: "META-INF/MANIFEST.MF", body: "Manifest-Version: 1.0\n"},
				{name: "com/example/Main.class", body: "\xCA\xFE\xBA\xBE"},
			},
			want: Jar,
		},
		{
			name: "browser extension beats jar manifest",
			entries: []zipEntry{
				{name: "META-INF/MANIFEST.MF", body: "Manifest-Version: 1.0\n"},
				{name: "META-INF/mozilla.rsa", body: "sig"},
			},
			want: Xpi,
		},
		{
			name: "word document",
			entries: []zipEntry{
				{name: "[Content_Types].xml", body: "<Types/>"},
				{name: "word/document.xml", body: "<w:document/>"},
			},
			want: Docx,
		},
		{
			name: "spreadsheet",
			entries: []zipEntry{
				{name: "[Content_Types].xml", body: "<Types/>"},
				{name: "xl/workbook.xml", body: "<workbook/>"},
			},
			want: Xlsx,
		},
		{
			name: "presentation",
			entries: []zipEntry{
				{name: "[Content_Types].xml", body: "<Types/>"},
				{name: "ppt/presentation.xml", body: "<presentation/>"},
			},
			want: Pptx,
		},
		{
			name: "plain archive stays zip",
			entries: []zipEntry{
				{name: "readme.txt", body: "hello"},
				{name: "data/blob.bin", body: "xxxx"},
			},
			want: Zip,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := buildZip(t, tt.entries)
			if got := FromBytes(data); got != tt.want {
				t.Errorf("FromBytes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRefineZipTrailingGarbage(t *testing.T) {
	// Archives with bytes appended after the end-of-central-directory
	// record must still refine.
	data := buildZip(t, []zipEntry{
		{name: "mimetype", body: "application/epub+zip", stored: true},
	})
	data = append(data, []byte("trailing junk")...)
	if got := FromBytes(data); got != Epub {
		t.Errorf("FromBytes() = %v, want %v", got, Epub)
	}
}

func TestRefineZipTruncated(t *testing.T) {
	// A ZIP local-header magic with no central directory stays a generic
	// archive.
	data := []byte("PK\x03\x04\x14\x00\x00\x00\x00\x00")
	if got := FromBytes(data); got != Zip {
		t.Errorf("FromBytes() = %v, want %v", got, Zip)
	}
}
