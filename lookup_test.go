package formatkit

import "testing"

func TestByExtension(t *testing.T) {
	tests := []struct {
		ext    string
		want   Format
		wantOk bool
	}{
		{"pdf", Pdf, true},
		{".pdf", Pdf, true},
		{"PNG", Png, true},
		{"docx", Docx, true},
		{"nonsense", Unknown, false},
		{"", Unknown, false},
	}
	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			got, ok := ByExtension(tt.ext)
			if ok != tt.wantOk {
				t.Fatalf("ByExtension(%q) ok = %v, want %v", tt.ext, ok, tt.wantOk)
			}
			if ok && got != tt.want {
				t.Errorf("ByExtension(%q) = %v, want %v", tt.ext, got, tt.want)
			}
		})
	}
}

func TestByMediaType(t *testing.T) {
	tests := []struct {
		mediaType string
		want      Format
		wantOk    bool
	}{
		{"application/pdf", Pdf, true},
		{"application/pdf; charset=binary", Pdf, true},
		{"IMAGE/PNG", Png, true},
		{"application/epub+zip", Epub, true},
		{"application/x-no-such-thing", Unknown, false},
	}
	for _, tt := range tests {
		t.Run(tt.mediaType, func(t *testing.T) {
			got, ok := ByMediaType(tt.mediaType)
			if ok != tt.wantOk {
				t.Fatalf("ByMediaType(%q) ok = %v, want %v", tt.mediaType, ok, tt.wantOk)
			}
			if ok && got != tt.want {
				t.Errorf("ByMediaType(%q) = %v, want %v", tt.mediaType, got, tt.want)
			}
		})
	}
}

func TestLookupRoundTrip(t *testing.T) {
	// Every catalog extension must resolve to a format sharing that
	// extension.
	for f := Format(0); f < formatCount; f++ {
		ext := f.Extension()
		if ext == "" {
			continue
		}
		got, ok := ByExtension(ext)
		if !ok {
			t.Errorf("extension %q of %s does not resolve", ext, f.Name())
			continue
		}
		if got.Extension() != ext {
			t.Errorf("extension %q resolved to %s with extension %q", ext, got.Name(), got.Extension())
		}
	}
}
