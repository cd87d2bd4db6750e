//go:build !tinygo

package logging

import (
	"bytes"
	"errors"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/rs/zerolog"
)

func TestZerologFields(t *testing.T) {
	c := qt.New(t)

	var buf bytes.Buffer
	z := NewZerologWithLogger(zerolog.New(&buf))
	z.Warn("reading", Float64("ohms", 470), Err(errors.New("short circuit")), Any("band", band(2)))

	c.Assert(buf.String(), qt.Contains, `"level":"warn"`)
	c.Assert(buf.String(), qt.Contains, `"ohms":470`)
	c.Assert(buf.String(), qt.Contains, `"error":"short circuit"`)
	c.Assert(buf.String(), qt.Contains, `"band":"RED"`)
	c.Assert(buf.String(), qt.Contains, `"message":"reading"`)
}

func TestZerologBool(t *testing.T) {
	c := qt.New(t)

	var buf bytes.Buffer
	z := NewZerologWithLogger(zerolog.New(&buf))
	z.Info("configuration", Bool("render", true), Bool("watch", false), Int("samples", 500))

	c.Assert(buf.String(), qt.Contains, `"render":true`)
	c.Assert(buf.String(), qt.Contains, `"watch":false`)
	c.Assert(buf.String(), qt.Contains, `"samples":500`)
}

func TestZerologLevel(t *testing.T) {
	c := qt.New(t)

	var buf bytes.Buffer
	z := NewZerologWithLogger(zerolog.New(&buf).Level(zerolog.InfoLevel))
	z.Debug("hidden")
	c.Assert(buf.Len(), qt.Equals, 0)
}
