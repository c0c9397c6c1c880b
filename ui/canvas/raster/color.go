package raster

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor reads a css color: a color name, #rgb, #rrggbb, rgb(r, g, b), or rgba(r, g, b, a).
func ParseColor(s string) (color.RGBA, error) {
	spec := strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[spec]; ok {
		return c, nil
	}
	switch {
	case spec == "transparent":
		return color.RGBA{}, nil
	case strings.HasPrefix(spec, "#"):
		return parseHexColor(spec[1:], s)
	case strings.HasPrefix(spec, "rgb(") && strings.HasSuffix(spec, ")"):
		return parseRGBColor(spec[len("rgb("):len(spec)-1], false, s)
	case strings.HasPrefix(spec, "rgba(") && strings.HasSuffix(spec, ")"):
		return parseRGBColor(spec[len("rgba("):len(spec)-1], true, s)
	}
	return color.RGBA{}, fmt.Errorf("invalid color %q", s)
}

// parseHexColor reads the hex digits of a #rgb or #rrggbb color.
func parseHexColor(hex, s string) (color.RGBA, error) {
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	var channels [3]uint8
	for i := range channels {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color %q", s)
		}
		channels[i] = uint8(v)
	}
	return color.RGBA{channels[0], channels[1], channels[2], 0xff}, nil
}

// parseRGBColor reads the comma separated arguments of the rgb() or rgba() functions.
// The colors are premultiplied by the alpha value.
func parseRGBColor(args string, hasAlpha bool, s string) (color.RGBA, error) {
	parts := strings.Split(args, ",")
	want := 3
	if hasAlpha {
		want = 4
	}
	if len(parts) != want {
		return color.RGBA{}, fmt.Errorf("invalid color %q: wanted %d arguments", s, want)
	}
	var channels [3]uint8
	for i := range channels {
		v, err := strconv.ParseUint(strings.TrimSpace(parts[i]), 10, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		channels[i] = uint8(v)
	}
	alpha := 1.0
	if hasAlpha {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return color.RGBA{}, fmt.Errorf("invalid color %q: alpha must be in [0, 1]", s)
		}
		alpha = a
	}
	premultiply := func(c uint8) uint8 {
		return uint8(float64(c)*alpha + 0.5)
	}
	c := color.RGBA{
		R: premultiply(channels[0]),
		G: premultiply(channels[1]),
		B: premultiply(channels[2]),
		A: uint8(alpha*0xff + 0.5),
	}
	return c, nil
}
