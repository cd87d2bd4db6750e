package ui

import (
	"tinygo.org/x/drivers"

	"github.com/itohio/ohmmeter/dev"
)

// Display is a frame buffered display such as ssd1306.Device.
type Display interface {
	drivers.Displayer
	ClearBuffer()
}

// Panel lays a reading out on a 128x64 screen:
//
//	+-----------+-----------+
//	| Real:     | E24:      |
//	| 9805Ω     | 9100Ω     |
//	+-----------+-----------+
//	| 1a: WHITE             |
//	| 2a: BROWN             |
//	| Mult: RED             |
//	+-----------------------+
type Panel struct {
	display Display
	lang    dev.Language
	text    Text
	widgets []Widget
}

// NewPanel creates a panel drawing on display with colour names from lang.
func NewPanel(display Display, lang dev.Language) *Panel {
	p := &Panel{display: display, lang: lang}
	p.widgets = []Widget{
		NewFrame(0, 0, 64, 27, white),
		NewLabel(8, 6, Static("Real:"), white),
		NewLabel(8, 16, func() string { return p.text.Real }, white),

		NewFrame(64, 0, 64, 27, white),
		NewLabel(73, 6, Static("E24:"), white),
		NewLabel(73, 16, func() string { return p.text.E24 }, white),

		NewFrame(0, 27, 128, 37, white),
		NewLabel(8, 30, func() string { return p.text.Bands[0] }, white),
		NewLabel(8, 40, func() string { return p.text.Bands[1] }, white),
		NewLabel(8, 50, func() string { return p.text.Bands[2] }, white),
	}
	return p
}

// Text returns what was last shown.
func (p *Panel) Text() Text {
	return p.text
}

// Show redraws the whole screen for r and flushes it.
func (p *Panel) Show(r dev.Reading) error {
	p.text = Format(r, p.lang)

	p.display.ClearBuffer()
	for _, w := range p.widgets {
		w.Draw(p.display)
	}
	return p.display.Display()
}
