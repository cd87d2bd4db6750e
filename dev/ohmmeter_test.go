package dev

import (
	"context"
	"errors"
	"sync"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/itohio/ohmmeter/logging"
)

type recordLogger struct {
	logging.Noop
	warns, errs []string
	debug       []logging.Field
}

func (l *recordLogger) Debug(msg string, fields ...logging.Field) { l.debug = append(l.debug, fields...) }

func (l *recordLogger) Warn(msg string, fields ...logging.Field)  { l.warns = append(l.warns, msg) }
func (l *recordLogger) Error(msg string, fields ...logging.Field) { l.errs = append(l.errs, msg) }

func newTestOhmmeter(c *qt.C, count uint16, sink Sink) *Ohmmeter {
	s, err := NewSampler(adc12(count), 12, 5, 0)
	c.Assert(err, qt.IsNil)
	m, err := NewOhmmeter(s, testDivider(c), sink, 0)
	c.Assert(err, qt.IsNil)
	return m
}

func TestOhmmeterStep(t *testing.T) {
	c := qt.New(t)

	var shown []Reading
	m := newTestOhmmeter(c, 2048, SinkFunc(func(r Reading) error {
		shown = append(shown, r)
		return nil
	}))

	r := m.Step()
	c.Assert(r.Err, qt.IsNil)
	c.Assert(r.Bands, qt.Equals, Bands{First: 9, Second: 1, Multiplier: 2})
	c.Assert(shown, qt.HasLen, 1)
	c.Assert(shown[0], qt.DeepEquals, r)
}

func TestOhmmeterOpenCircuit(t *testing.T) {
	c := qt.New(t)

	log := &recordLogger{}
	var shown []Reading
	m := newTestOhmmeter(c, 4095, SinkFunc(func(r Reading) error {
		shown = append(shown, r)
		return nil
	}))
	m.SetLogger(log)

	r := m.Step()
	c.Assert(r.Err, qt.Equals, ErrOpenCircuit)
	c.Assert(shown, qt.HasLen, 1)
	c.Assert(log.warns, qt.DeepEquals, []string{"invalid reading"})
}

func TestOhmmeterSinkError(t *testing.T) {
	c := qt.New(t)

	log := &recordLogger{}
	m := newTestOhmmeter(c, 2048, SinkFunc(func(Reading) error {
		return errors.New("i2c nack")
	}))
	m.SetLogger(log)

	m.Step()
	m.Step()
	c.Assert(log.errs, qt.DeepEquals, []string{"display", "display"})
}

func TestOhmmeterRun(t *testing.T) {
	c := qt.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	n := 0
	m := newTestOhmmeter(c, 0, SinkFunc(func(r Reading) error {
		c.Check(r.Err, qt.Equals, ErrShortCircuit)
		n++
		if n == 3 {
			cancel()
		}
		return nil
	}))

	err := m.Run(ctx)
	c.Assert(err, qt.Equals, context.Canceled)
	c.Assert(n, qt.Equals, 3)
}

func TestOhmmeterResolutionMismatch(t *testing.T) {
	c := qt.New(t)

	s, err := NewSampler(adc12(0), 10, 5, 0)
	c.Assert(err, qt.IsNil)
	_, err = NewOhmmeter(s, testDivider(c), nil, 0)
	c.Assert(err, qt.Equals, ErrResolution)

	s, err = NewSampler(adc12(0), 12, 5, 0)
	c.Assert(err, qt.IsNil)
	m, err := NewOhmmeter(s, testDivider(c), nil, 0)
	c.Assert(err, qt.IsNil)
	d, err := NewDivider(1000, 10, 3.3)
	c.Assert(err, qt.IsNil)
	c.Assert(m.SetDivider(d), qt.Equals, ErrResolution)
}

func TestOhmmeterLogsSampleCount(t *testing.T) {
	c := qt.New(t)

	log := &recordLogger{}
	m := newTestOhmmeter(c, 2048, nil)
	m.SetLogger(log)

	m.Step()
	c.Assert(log.debug, qt.Not(qt.HasLen), 0)
	c.Assert(log.debug[0], qt.Equals, logging.Int("n", 5))
}

func TestOhmmeterSetDivider(t *testing.T) {
	c := qt.New(t)

	m := newTestOhmmeter(c, 2048, nil)
	c.Assert(m.Measure().Ohms(), qt.Equals, 9100.0)

	d, err := NewDivider(1000, 12, 3.31)
	c.Assert(err, qt.IsNil)
	c.Assert(m.SetDivider(d), qt.IsNil)
	c.Assert(m.Divider(), qt.Equals, d)
	c.Assert(m.Measure().Ohms(), qt.Equals, 1000.0)
}

func TestOhmmeterSetDividerWhileRunning(t *testing.T) {
	c := qt.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	var last Reading
	m := newTestOhmmeter(c, 2048, SinkFunc(func(r Reading) error {
		mu.Lock()
		last = r
		mu.Unlock()
		return nil
	}))

	done := make(chan error, 1)
	go func() { done <- m.Run(ctx) }()

	d, err := NewDivider(1000, 12, 3.31)
	c.Assert(err, qt.IsNil)
	for i := 0; i < 100; i++ {
		c.Assert(m.SetDivider(d), qt.IsNil)
	}
	// a reading started after the swap uses the new reference
	r := m.Measure()
	c.Assert(r.Ohms(), qt.Equals, 1000.0)

	cancel()
	c.Assert(<-done, qt.Equals, context.Canceled)
	mu.Lock()
	c.Assert(last.Err, qt.IsNil)
	mu.Unlock()
}
