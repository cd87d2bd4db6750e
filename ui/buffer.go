package ui

import (
	"image/color"
	"strings"
)

// Buffer is an in-memory monochrome display.
type Buffer struct {
	w, h   int16
	pixels []bool
	flush  func(*Buffer) error
}

// NewBuffer creates a w x h buffer. flush, if not nil, is called by Display.
func NewBuffer(w, h int16, flush func(*Buffer) error) *Buffer {
	return &Buffer{
		w:      w,
		h:      h,
		pixels: make([]bool, int(w)*int(h)),
		flush:  flush,
	}
}

func (b *Buffer) Size() (x, y int16) {
	return b.w, b.h
}

// SetPixel lights any pixel with a non-zero colour; off-screen pixels are dropped.
func (b *Buffer) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return
	}
	b.pixels[int(y)*int(b.w)+int(x)] = c.R != 0 || c.G != 0 || c.B != 0
}

func (b *Buffer) Pixel(x, y int16) bool {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return false
	}
	return b.pixels[int(y)*int(b.w)+int(x)]
}

func (b *Buffer) ClearBuffer() {
	for i := range b.pixels {
		b.pixels[i] = false
	}
}

func (b *Buffer) Display() error {
	if b.flush == nil {
		return nil
	}
	return b.flush(b)
}

// String draws the buffer with half block characters, two pixel rows per line.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := int16(0); y < b.h; y += 2 {
		for x := int16(0); x < b.w; x++ {
			top, bottom := b.Pixel(x, y), b.Pixel(x, y+1)
			switch {
			case top && bottom:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
