package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Face is one physical rectangular panel of a (possibly multi-panel) asset.
type Face struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Dimensions is the parsed form of a free-form dimension string such as
// "40x20" or "25x5-12x3".
type Dimensions struct {
	Faces       []Face  `json:"faces"`
	TotalSqft   float64 `json:"total_sqft"`
	IsMultiFace bool    `json:"is_multi_face"`
}

// facePattern matches "<number> x <number>" with optional decimals and
// either a plain or multiplication-sign separator.
var facePattern = regexp.MustCompile(`^\s*(\d+(?:\.\d+)?)\s*[xX×]\s*(\d+(?:\.\d+)?)\s*$`)

// splitFaces splits a multi-face string on dash-like separators (hyphen,
// en-dash, em-dash). A dash counts as a separator only when the last
// non-space character before it is a digit; "40x-20" stays one token so a
// stray negative number is not mistaken for a second face.
func splitFaces(raw string) []string {
	var parts []string
	start := 0
	var prev rune
	for i, r := range raw {
		if r == '-' || r == '–' || r == '—' {
			if prev >= '0' && prev <= '9' {
				parts = append(parts, raw[start:i])
				start = i + utf8.RuneLen(r)
			}
			continue
		}
		if !unicode.IsSpace(r) {
			prev = r
		}
	}
	return append(parts, raw[start:])
}

// ParseDimensions parses a hand-entered dimension string into faces and a
// total area. Substrings that don't look like "W x H" are skipped silently;
// a fully unparseable string yields zero faces and zero area, which is not
// an error (the stored sqft may still be authoritative).
func ParseDimensions(raw string) Dimensions {
	parts := splitFaces(raw)

	d := Dimensions{IsMultiFace: len(parts) > 1}
	for _, part := range parts {
		m := facePattern.FindStringSubmatch(part)
		if m == nil {
			continue
		}
		w, err1 := strconv.ParseFloat(m[1], 64)
		h, err2 := strconv.ParseFloat(m[2], 64)
		if err1 != nil || err2 != nil {
			continue
		}
		if w <= 0 || h <= 0 {
			continue
		}
		d.Faces = append(d.Faces, Face{Width: w, Height: h})
		d.TotalSqft += w * h
	}
	return d
}

// AssetSqft returns the authoritative area for an asset: the stored value
// when present and positive, otherwise the sum of parsed face areas.
func AssetSqft(storedSqft float64, dimensions string) float64 {
	if storedSqft > 0 {
		return storedSqft
	}
	return ParseDimensions(dimensions).TotalSqft
}

// FormatDimensions renders parsed faces back into the canonical display
// form: "W x H" for a single face, "W1xH1 - W2xH2" for multi-face.
func FormatDimensions(d Dimensions) string {
	if len(d.Faces) == 0 {
		return ""
	}
	if len(d.Faces) == 1 {
		f := d.Faces[0]
		return fmt.Sprintf("%s x %s", trimFloat(f.Width), trimFloat(f.Height))
	}
	parts := make([]string, len(d.Faces))
	for i, f := range d.Faces {
		parts[i] = fmt.Sprintf("%sx%s", trimFloat(f.Width), trimFloat(f.Height))
	}
	return strings.Join(parts, " - ")
}

// trimFloat formats a dimension without trailing zeros (40 not 40.00, 12.5 as-is).
func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
