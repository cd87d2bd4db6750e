package dev

import (
	"context"
	"sync"
	"time"

	"github.com/itohio/ohmmeter/logging"
)

// Sink receives every reading, typically a display.
type Sink interface {
	Show(Reading) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Reading) error

func (f SinkFunc) Show(r Reading) error {
	return f(r)
}

// Ohmmeter is the acquisition loop: sample, compute, show, wait.
type Ohmmeter struct {
	sampler *Sampler

	mu      sync.Mutex
	divider Divider

	sink     Sink
	interval time.Duration
	log      logging.Logger
}

// NewOhmmeter wires a sampler and a divider of the same resolution to a sink.
// interval is the pause between readings.
func NewOhmmeter(sampler *Sampler, divider Divider, sink Sink, interval time.Duration) (*Ohmmeter, error) {
	if sampler.FullScale() != divider.FullScale {
		return nil, ErrResolution
	}
	return &Ohmmeter{
		sampler:  sampler,
		divider:  divider,
		sink:     sink,
		interval: interval,
		log:      logging.Noop{},
	}, nil
}

func (m *Ohmmeter) SetLogger(l logging.Logger) {
	if l == nil {
		l = logging.Noop{}
	}
	m.log = l
}

// SetDivider replaces the divider used for the following readings. It is safe
// to call while Run is active.
func (m *Ohmmeter) SetDivider(d Divider) error {
	if m.sampler.FullScale() != d.FullScale {
		return ErrResolution
	}
	m.mu.Lock()
	m.divider = d
	m.mu.Unlock()
	return nil
}

func (m *Ohmmeter) Divider() Divider {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.divider
}

// Measure takes one averaged sample and runs it through the pipeline.
func (m *Ohmmeter) Measure() Reading {
	avg := m.sampler.Average()
	return m.Divider().Measure(avg)
}

// Step measures once and hands the reading to the sink.
// Measurement errors travel inside the reading; sink errors are logged.
func (m *Ohmmeter) Step() Reading {
	r := m.Measure()
	if r.Valid() {
		first, second, mult := r.Bands.Colors()
		m.log.Debug("reading",
			logging.Int("n", m.sampler.Samples()),
			logging.Float64("avg", r.Average),
			logging.Float64("volts", r.Volts),
			logging.Float64("ohms", r.Resistance),
			logging.Float64("e24", r.Ohms()),
			logging.Any("band1", first),
			logging.Any("band2", second),
			logging.Any("mult", mult),
		)
	} else {
		m.log.Warn("invalid reading",
			logging.Float64("avg", r.Average),
			logging.Err(r.Err),
		)
	}

	if m.sink != nil {
		if err := m.sink.Show(r); err != nil {
			m.log.Error("display", logging.Err(err))
		}
	}
	return r
}

// Run steps until ctx is cancelled.
func (m *Ohmmeter) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		m.Step()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(m.interval):
		}
	}
}
