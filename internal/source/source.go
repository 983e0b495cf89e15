// Package source provides the data sources a sensor samples from:
// a configurable simulation and a camera-frame statistics source.
package source

import (
	"strings"

	"github.com/juju/errors"

	"github.com/sensorlab/relay/internal/sensor"
	"github.com/sensorlab/relay/log2"
)

// New builds the data source selected by cfg.Kind, matched
// case-insensitively like transport kinds.
func New(cfg Config, log *log2.Log) (sensor.DataSource, error) {
	switch strings.ToLower(cfg.Kind) {
	case "sim":
		return NewSim(cfg, log)

	case "frame":
		cam := NewMockCamera()
		if err := cam.Open(0); err != nil {
			return nil, errors.Annotate(err, "source: camera open")
		}
		log.Infof("source: camera backend=%s", cam.Backend())
		return NewFrameSource(cam), nil
	}
	return nil, errors.NotValidf("source: unsupported kind=%q", cfg.Kind)
}
