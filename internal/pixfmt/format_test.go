package pixfmt

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Format
		wantErr bool
	}{
		{"empty", "", Auto, false},
		{"auto", "auto", Auto, false},
		{"rgba8888", "rgba8888", RGBA8888, false},
		{"rgb888", "rgb888", RGB888, false},
		{"rgb565", "rgb565", RGB565, false},
		{"argb1555 upper case", "ARGB1555", ARGB1555, false},
		{"surrounding space", " rgb565 ", RGB565, false},
		{"unknown", "bgr233", Auto, true},
		{"depth only", "32", Auto, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormat_StringRoundTrip(t *testing.T) {
	for _, f := range append([]Format{Auto}, Formats...) {
		got, err := Parse(f.String())
		if err != nil {
			t.Fatalf("Parse(%q): %v", f.String(), err)
		}
		if got != f {
			t.Errorf("Parse(%q) = %v, want %v", f.String(), got, f)
		}
	}
}

func TestFormat_Sizes(t *testing.T) {
	tests := []struct {
		f     Format
		bytes int
		bits  uint32
	}{
		{RGBA8888, 4, 32},
		{RGB888, 3, 24},
		{RGB565, 2, 16},
		{ARGB1555, 2, 16},
		{Auto, 0, 0},
		{Format(42), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.f.String(), func(t *testing.T) {
			if got := tt.f.BytesPerPixel(); got != tt.bytes {
				t.Errorf("BytesPerPixel() = %d, want %d", got, tt.bytes)
			}
			if got := tt.f.BitsPerPixel(); got != tt.bits {
				t.Errorf("BitsPerPixel() = %d, want %d", got, tt.bits)
			}
			if got := tt.f.Valid(); got != (tt.bytes != 0) {
				t.Errorf("Valid() = %v", got)
			}
		})
	}
}
