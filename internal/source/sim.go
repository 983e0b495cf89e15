package source

import (
	"math/rand"

	"github.com/juju/errors"

	"github.com/sensorlab/relay/helpers"
	"github.com/sensorlab/relay/log2"
)

// Sim generates readings within configured limits. Each metric is either
// fixed or uniform in [min,max]; with bad_probability a reading lands 10
// beyond a random bound to exercise downstream range checks.
type Sim struct {
	log     *log2.Log
	rnd     *rand.Rand
	metrics map[string]limits
}

type limits struct {
	fixed    *float64
	min, max float64
	hasRange bool
	bad      float64
}

func NewSim(cfg Config, log *log2.Log) (*Sim, error) {
	return newSim(cfg, log, helpers.RandUnix())
}

func newSim(cfg Config, log *log2.Log, rnd *rand.Rand) (*Sim, error) {
	if len(cfg.Metrics) == 0 {
		return nil, errors.NotValidf("sim: no metrics configured")
	}
	s := &Sim{
		log:     log,
		rnd:     rnd,
		metrics: make(map[string]limits, len(cfg.Metrics)),
	}
	for _, m := range cfg.Metrics {
		l := limits{fixed: m.Fixed, bad: m.BadProbability}
		if m.Min != nil && m.Max != nil {
			l.hasRange = true
			l.min, l.max = *m.Min, *m.Max
			if l.min > l.max {
				return nil, errors.NotValidf("sim: metric=%s min=%v > max=%v", m.Name, l.min, l.max)
			}
		}
		if l.fixed == nil && !l.hasRange {
			return nil, errors.NotValidf("sim: metric=%s needs fixed or min+max", m.Name)
		}
		s.metrics[m.Name] = l
	}
	return s, nil
}

func (s *Sim) ReadAll() (map[string]float64, error) {
	result := make(map[string]float64, len(s.metrics))
	for name, l := range s.metrics {
		result[name] = s.generate(l)
	}
	return result, nil
}

func (s *Sim) generate(l limits) float64 {
	if l.fixed != nil {
		return *l.fixed
	}
	if roll := s.rnd.Float64(); roll < l.bad {
		// excursion beyond a random bound
		if s.rnd.Intn(2) == 0 {
			return l.min - 10.0
		}
		return l.max + 10.0
	}
	return l.min + s.rnd.Float64()*(l.max-l.min)
}
