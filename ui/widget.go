// Package ui draws ohmmeter readings on a monochrome display.
package ui

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinydraw"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var white = color.RGBA{255, 255, 255, 255}

// Widget is anything the panel can draw.
type Widget interface {
	Draw(d drivers.Displayer)
}

// Frame is a one pixel rectangle outline.
type Frame struct {
	X, Y, W, H int16
	color      color.RGBA
}

func NewFrame(x, y, w, h int16, c color.RGBA) *Frame {
	return &Frame{X: x, Y: y, W: w, H: h, color: c}
}

// Draw outlines the frame. Empty frames draw nothing.
func (f *Frame) Draw(d drivers.Displayer) {
	tinydraw.Rectangle(d, f.X, f.Y, f.W, f.H, f.color)
}

// Label is a line of text whose top left corner is at X, Y.
type Label struct {
	X, Y  int16
	text  func() string
	color color.RGBA
}

// LineHeight is the height of one line of the label font.
const LineHeight = 8

func NewLabel(x, y int16, text func() string, color color.RGBA) *Label {
	return &Label{
		X:     x,
		Y:     y,
		text:  text,
		color: color,
	}
}

func (l *Label) Draw(d drivers.Displayer) {
	tinyfont.WriteLine(d, &proggy.TinySZ8pt7b, l.X, l.Y+LineHeight, l.text(), l.color)
}

// Static returns a text func for a constant string.
func Static(s string) func() string {
	return func() string { return s }
}
