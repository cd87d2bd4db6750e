package dev

import (
	"errors"
	"strconv"
)

// Color is a resistor band colour. Valid colours are the digits 0 to 9.
type Color int8

const (
	Black Color = iota
	Brown
	Red
	Orange
	Yellow
	Green
	Blue
	Violet
	Grey
	White
)

// NoColor marks a band whose digit has no colour in the 0-9 code,
// e.g. the multiplier of anything below 10 ohms.
const NoColor Color = -1

// ColorOf maps a digit to its band colour, NoColor outside 0-9.
func ColorOf(digit int) Color {
	if digit < 0 || digit > 9 {
		return NoColor
	}
	return Color(digit)
}

// Valid reports whether c is one of the ten digit colours.
func (c Color) Valid() bool {
	return c >= Black && c <= White
}

func (c Color) String() string {
	return English.Name(c)
}

// Language holds the band colour names shown to the user.
type Language struct {
	Colors [10]string
	None   string // shown for NoColor
	Open   string // shown instead of a value on ErrOpenCircuit
	Short  string // shown instead of a value on ErrShortCircuit
	Error  string // any other measurement error
}

var (
	English = Language{
		Colors: [10]string{"BLACK", "BROWN", "RED", "ORANGE", "YELLOW", "GREEN", "BLUE", "VIOLET", "GREY", "WHITE"},
		None:   "---",
		Open:   "OPEN",
		Short:  "SHORT",
		Error:  "ERROR",
	}
	Portuguese = Language{
		Colors: [10]string{"PRETO", "MARROM", "VERMELHO", "LARANJA", "AMARELO", "VERDE", "AZUL", "VIOLETA", "CINZA", "BRANCO"},
		None:   "---",
		Open:   "ABERTO",
		Short:  "CURTO",
		Error:  "ERRO",
	}
)

// Name returns the name of c. Values that are neither a digit colour nor
// NoColor are printed as Color(n) so they cannot be mistaken for either.
func (l Language) Name(c Color) string {
	switch {
	case c.Valid():
		return l.Colors[c]
	case c == NoColor:
		return l.None
	default:
		return "Color(" + strconv.Itoa(int(c)) + ")"
	}
}

// Fault returns the word displayed in place of a resistance for err.
func (l Language) Fault(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrOpenCircuit):
		return l.Open
	case errors.Is(err, ErrShortCircuit):
		return l.Short
	default:
		return l.Error
	}
}
