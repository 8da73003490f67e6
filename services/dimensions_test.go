package services

import (
	"math"
	"testing"
)

func TestParseDimensions(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantFaces int
		wantSqft  float64
		wantMulti bool
	}{
		{"single face", "40x20", 1, 800, false},
		{"single face spaced", "40 x 20", 1, 800, false},
		{"single face uppercase", "40X20", 1, 800, false},
		{"multiplication sign", "40×20", 1, 800, false},
		{"two faces", "25x5-12x3", 2, 161, true},
		{"two faces spaced", "25x5 - 12x3", 2, 161, true},
		{"en dash separator", "25x5–12x3", 2, 161, true},
		{"decimals", "12.5x8", 1, 100, false},
		{"zero width skipped", "0x20", 0, 0, false},
		{"garbage skipped", "large hoarding", 0, 0, false},
		{"partial garbage", "40x20-frontlit", 1, 800, true},
		{"dash as negative sign", "40x-20", 0, 0, false},
		{"dash as negative width", "-40x20", 0, 0, false},
		{"empty", "", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDimensions(tt.raw)
			if len(got.Faces) != tt.wantFaces {
				t.Errorf("faces = %d, want %d", len(got.Faces), tt.wantFaces)
			}
			if math.Abs(got.TotalSqft-tt.wantSqft) > 0.001 {
				t.Errorf("total sqft = %v, want %v", got.TotalSqft, tt.wantSqft)
			}
			if got.IsMultiFace != tt.wantMulti {
				t.Errorf("is multi face = %v, want %v", got.IsMultiFace, tt.wantMulti)
			}
		})
	}
}

func TestParseDimensionsFaceAreas(t *testing.T) {
	got := ParseDimensions("25x5-12x3")
	if len(got.Faces) != 2 {
		t.Fatalf("expected 2 faces, got %d", len(got.Faces))
	}
	if a := got.Faces[0].Width * got.Faces[0].Height; a != 125 {
		t.Errorf("first face area = %v, want 125", a)
	}
	if a := got.Faces[1].Width * got.Faces[1].Height; a != 36 {
		t.Errorf("second face area = %v, want 36", a)
	}
}

func TestAssetSqft(t *testing.T) {
	tests := []struct {
		name       string
		stored     float64
		dimensions string
		expect     float64
	}{
		{"stored wins", 500, "40x20", 500},
		{"stored zero falls back to parse", 0, "40x20", 800},
		{"stored negative falls back", -1, "25x5-12x3", 161},
		{"nothing parseable", 0, "n/a", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AssetSqft(tt.stored, tt.dimensions)
			if got != tt.expect {
				t.Errorf("AssetSqft(%v, %q) = %v, want %v", tt.stored, tt.dimensions, got, tt.expect)
			}
		})
	}
}

func TestFormatDimensions(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"single face", "40x20", "40 x 20"},
		{"multi face normalized", "25x5 – 12x3", "25x5 - 12x3"},
		{"decimal trimmed", "12.5x8", "12.5 x 8"},
		{"empty", "none", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatDimensions(ParseDimensions(tt.raw))
			if got != tt.want {
				t.Errorf("FormatDimensions(parse(%q)) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
