// Package terminal reads terminal geometry for the text front end.
package terminal

import (
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetWidth returns the current terminal width.
func GetWidth() int {
	width, _ := GetSize()
	return width
}

// Rule returns a horizontal line of the given width with label centered in
// it. An empty label gives a plain line.
func Rule(label string, width int) string {
	if label == "" {
		return strings.Repeat("─", max(width, 1))
	}
	label = " " + label + " "
	labelLen := utf8.RuneCountInString(label)
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	rightLen := width - sideLen - labelLen
	if rightLen < 1 {
		rightLen = 1
	}
	return strings.Repeat("─", sideLen) + label + strings.Repeat("─", rightLen)
}
