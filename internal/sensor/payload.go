package sensor

import (
	"encoding/json"
	"math"
	"strings"
	"time"

	"github.com/juju/errors"
)

// wire payload: line-delimited JSON, one object per line, UTF-8.
// sensor_id and timestamp_ms are always present; metadata and readings
// are omitted entirely when empty.
type Payload struct {
	SensorID    string             `json:"sensor_id"`
	Metadata    map[string]string  `json:"metadata,omitempty"`
	TimestampMs int64              `json:"timestamp_ms"`
	Readings    map[string]Reading `json:"readings,omitempty"`
}

type Reading struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// values are rounded to a fixed small precision before encoding
const valueDecimals = 3

func roundValue(v float64) float64 {
	scale := math.Pow(10, valueDecimals)
	return math.Round(v*scale) / scale
}

// inferUnit resolves a reading's unit from the configured map first,
// falling back to name heuristics for common image-sensor fields.
func inferUnit(name string, units map[string]string) string {
	if u, ok := units[name]; ok {
		return u
	}
	switch {
	case strings.Contains(name, "width"), strings.Contains(name, "height"):
		return "pixels"
	case strings.Contains(name, "channels"):
		return "count"
	case strings.Contains(name, "bytes"), strings.Contains(name, "size"):
		return "bytes"
	case strings.Contains(name, "brightness"), strings.Contains(name, "luma"):
		return "intensity"
	}
	return "unknown"
}

func (s *Sensor) encodePayload(readings map[string]float64, now time.Time) ([]byte, error) {
	p := Payload{
		SensorID:    s.config.ID,
		TimestampMs: now.UnixNano() / int64(time.Millisecond),
	}
	if len(s.config.Metadata) != 0 {
		p.Metadata = s.config.Metadata
	}
	if len(readings) != 0 {
		p.Readings = make(map[string]Reading, len(readings))
		for name, value := range readings {
			p.Readings[name] = Reading{
				Value: roundValue(value),
				Unit:  inferUnit(name, s.config.Units),
			}
		}
	}
	b, err := json.Marshal(&p)
	if err != nil {
		return nil, errors.Annotate(err, "payload marshal")
	}
	return append(b, '\n'), nil
}
