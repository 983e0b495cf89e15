package sensor

// Config is owned by the Sensor for its lifetime, immutable after New.
type Config struct {
	ID          string            `hcl:"id"`
	IntervalSec int               `hcl:"interval_sec"`
	Units       map[string]string `hcl:"units"`
	Metadata    map[string]string `hcl:"metadata"`
	LogDebug    bool              `hcl:"log_debug"`
}
