package transport

// Config selects the delivery transport. Filled by config loading,
// consumed by Make. Kind is matched case-insensitively.
type Config struct {
	Kind string `hcl:"kind"`
	Host string `hcl:"host"`
	Port int    `hcl:"port"`
}
