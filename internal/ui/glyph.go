package ui

import (
	"strconv"
	"strings"
)

const (
	glyphWidth  = 5
	glyphHeight = 6
	halfHeight  = glyphHeight / 2
)

// Block digits. Each glyph splits evenly into a top and a bottom half, one
// per card leaf.
var glyphs = [10][glyphHeight]string{
	{"█████", "█   █", "█   █", "█   █", "█   █", "█████"},
	{"   █ ", "  ██ ", "   █ ", "   █ ", "   █ ", "  ███"},
	{"█████", "    █", "    █", "█████", "█    ", "█████"},
	{"█████", "    █", " ████", "    █", "    █", "█████"},
	{"█   █", "█   █", "█   █", "█████", "    █", "    █"},
	{"█████", "█    ", "█████", "    █", "    █", "█████"},
	{"█████", "█    ", "█████", "█   █", "█   █", "█████"},
	{"█████", "    █", "   █ ", "  █  ", "  █  ", "  █  "},
	{"█████", "█   █", "█████", "█   █", "█   █", "█████"},
	{"█████", "█   █", "█████", "    █", "    █", "█████"},
}

var blankHalf = func() [halfHeight]string {
	var rows [halfHeight]string
	for i := range rows {
		rows[i] = strings.Repeat(" ", glyphWidth)
	}
	return rows
}()

// topHalf returns the upper rows of the glyph for a card region's text.
// Text that is not a single digit renders blank.
func topHalf(text string) [halfHeight]string {
	g, ok := glyphFor(text)
	if !ok {
		return blankHalf
	}
	var rows [halfHeight]string
	copy(rows[:], g[:halfHeight])
	return rows
}

// bottomHalf returns the lower rows of the glyph for a card region's text.
func bottomHalf(text string) [halfHeight]string {
	g, ok := glyphFor(text)
	if !ok {
		return blankHalf
	}
	var rows [halfHeight]string
	copy(rows[:], g[halfHeight:])
	return rows
}

func glyphFor(text string) ([glyphHeight]string, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < 0 || n > 9 {
		return [glyphHeight]string{}, false
	}
	return glyphs[n], true
}
