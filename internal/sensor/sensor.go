// Package sensor runs the acquire→encode→send cycle: it samples named
// numeric readings from a data source at a fixed interval and delivers
// them as one JSON line per tick through a Transport.
package sensor

import (
	"context"
	"time"

	"github.com/juju/errors"
	"github.com/temoto/alive/v2"

	"github.com/sensorlab/relay/internal/transport"
	"github.com/sensorlab/relay/log2"
)

// DataSource produces a fresh metric-name→value mapping on demand.
// Hardware may be unavailable; the error propagates through RunOnce.
type DataSource interface {
	ReadAll() (map[string]float64, error)
}

// Sensor is exclusively owned and mutated by one worker goroutine.
// Ticks are strictly sequential: a new acquisition never starts before
// the previous tick's send has completed or failed.
type Sensor struct {
	config    Config
	interval  time.Duration
	log       *log2.Log
	source    DataSource
	transport transport.Transport
	stat      Stat
}

func New(cfg Config, log *log2.Log, src DataSource, trans transport.Transport) (*Sensor, error) {
	if cfg.ID == "" {
		return nil, errors.NotValidf("sensor: empty id")
	}
	if cfg.IntervalSec <= 0 {
		return nil, errors.NotValidf("sensor: interval_sec=%d must be positive", cfg.IntervalSec)
	}
	if cfg.LogDebug {
		log.SetLevel(log2.LDebug)
	}
	return &Sensor{
		config:    cfg,
		interval:  time.Duration(cfg.IntervalSec) * time.Second,
		log:       log,
		source:    src,
		transport: trans,
	}, nil
}

// Connect delegates to the Transport. No retry or backoff at this layer.
func (s *Sensor) Connect(ctx context.Context) error {
	return errors.Annotatef(s.transport.Connect(ctx), "sensor=%s connect", s.config.ID)
}

// RunOnce performs one tick. A failed tick's readings are discarded,
// nothing is buffered or requeued.
func (s *Sensor) RunOnce() error {
	readings, err := s.source.ReadAll()
	if err != nil {
		return errors.Annotatef(err, "sensor=%s acquire", s.config.ID)
	}
	payload, err := s.encodePayload(readings, time.Now())
	if err != nil {
		return errors.Annotatef(err, "sensor=%s", s.config.ID)
	}
	n, err := s.transport.SendString(string(payload))
	if err != nil {
		return errors.Annotatef(err, "sensor=%s send", s.config.ID)
	}
	s.stat.register(n)
	s.log.Debugf("sensor=%s sent %d bytes: %s", s.config.ID, n, payload[:n-1])
	return nil
}

// Run ticks until a.Stop() or the first tick error. The stop signal is
// observed only between ticks, never mid-sleep or mid-send, so shutdown
// latency is bounded by one full interval.
func (s *Sensor) Run(a *alive.Alive) error {
	for a.IsRunning() {
		if err := s.RunOnce(); err != nil {
			return errors.Trace(err)
		}
		time.Sleep(s.interval)
	}
	return nil
}

// Close delegates to the Transport. Safe to call any number of times,
// including after a failed Connect.
func (s *Sensor) Close() error { return s.transport.Close() }

func (s *Sensor) Stat() *Stat { return &s.stat }
