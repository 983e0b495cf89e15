package transport

import (
	"strings"

	"github.com/juju/errors"
)

// Make builds the Transport matching cfg without connecting it; dialing
// is deferred to the caller. Configuration problems are NotValid errors.
// The port check is defensive: upstream config loading validates it too,
// but Make stays safe when used standalone.
func Make(cfg Config) (Transport, error) {
	if cfg.Kind == "" {
		return nil, errors.NotValidf("transport: empty kind")
	}
	if cfg.Host == "" {
		return nil, errors.NotValidf("transport: empty host")
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, errors.NotValidf("transport: port=%d outside 1..65535", cfg.Port)
	}
	switch strings.ToLower(cfg.Kind) {
	case "tcp":
		return &streamTransport{sock: NewStreamSocket(cfg.Host, cfg.Port)}, nil
	case "udp":
		return &datagramTransport{sock: NewDatagramSocket(cfg.Host, cfg.Port)}, nil
	}
	return nil, errors.NotValidf("transport: unsupported kind=%q", cfg.Kind)
}
