package ui

import (
	"fmt"

	"github.com/itohio/ohmmeter/dev"
)

// Text is what the panel shows for one reading.
type Text struct {
	Real  string // measured resistance, or the fault
	E24   string // nearest standard value, or the fault
	Bands [3]string
}

// Format renders r in lang. Invalid readings never show a number.
func Format(r dev.Reading, lang dev.Language) Text {
	var t Text
	first, second, mult := dev.NoColor, dev.NoColor, dev.NoColor
	if r.Valid() {
		t.Real = fmt.Sprintf("%.0fΩ", r.Resistance)
		t.E24 = fmt.Sprintf("%.0fΩ", r.Ohms())
		first, second, mult = r.Bands.Colors()
	} else {
		t.Real = lang.Fault(r.Err)
		t.E24 = t.Real
	}
	t.Bands[0] = "1a: " + lang.Name(first)
	t.Bands[1] = "2a: " + lang.Name(second)
	t.Bands[2] = "Mult: " + lang.Name(mult)
	return t
}
