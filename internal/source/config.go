package source

// Config selects the data source feeding the sensor loop.
//
//	source {
//	  kind = "sim"
//	  metric "temperature" { min = 20 max = 30 bad_probability = 0.05 }
//	  metric "pressure" { fixed = 101.3 }
//	}
type Config struct {
	Kind    string   `hcl:"kind"`
	Metrics []Metric `hcl:"metric"`
}

// Metric declares simulation limits for one reading: either a fixed
// value or a min..max range. Pointers tell a present zero from absent.
type Metric struct {
	Name           string   `hcl:"name,key"`
	Fixed          *float64 `hcl:"fixed"`
	Min            *float64 `hcl:"min"`
	Max            *float64 `hcl:"max"`
	BadProbability float64  `hcl:"bad_probability"`
}
