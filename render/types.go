package render

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for rendering.
var (
	// ErrWidthMismatch indicates a row whose length differs from the width
	// the Renderer was created for.
	ErrWidthMismatch = errors.New("render: row width mismatch")

	// ErrUnknownStyle indicates a style name ParseStyle does not know.
	ErrUnknownStyle = errors.New("render: unknown style")
)

// Style selects the text layout of a Renderer.
type Style int

const (
	// StyleSets prints walls and set ids, three lines per row.
	StyleSets Style = iota
	// StyleBox prints a "+---+" grid.
	StyleBox
)

// String returns the name accepted by ParseStyle.
func (s Style) String() string {
	switch s {
	case StyleSets:
		return "sets"
	case StyleBox:
		return "box"
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// ParseStyle maps a style name ("sets" or "box", any case) to a Style.
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sets":
		return StyleSets, nil
	case "box":
		return StyleBox, nil
	}
	return StyleSets, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
}

// Option customizes a Renderer.
type Option func(*Renderer)

// WithStyle selects the layout. Panics on a Style that is not defined.
func WithStyle(s Style) Option {
	if s != StyleSets && s != StyleBox {
		panic(fmt.Sprintf("render: WithStyle(%d): unknown style", int(s)))
	}
	return func(r *Renderer) {
		r.style = s
	}
}

// Digits returns the number of decimal digits of n (1 for n ≤ 9, including 0).
// Negative numbers count their digits without the sign.
func Digits(n int) int {
	d := 1
	for n >= 10 || n <= -10 {
		n /= 10
		d++
	}
	return d
}
