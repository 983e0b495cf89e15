package sensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferUnit(t *testing.T) {
	t.Parallel()
	units := map[string]string{"frame_width": "px"}
	cases := []struct {
		name   string
		expect string
	}{
		{"frame_width", "px"}, // configured map wins over heuristics
		{"frame_height", "pixels"},
		{"image_width", "pixels"},
		{"frame_channels", "count"},
		{"frame_bytes", "bytes"},
		{"payload_size", "bytes"},
		{"brightness", "intensity"},
		{"mean_luma", "intensity"},
		{"temperature", "unknown"},
		{"", "unknown"},
	}
	for _, c := range cases {
		assert.Equal(t, c.expect, inferUnit(c.name, units), "name=%s", c.name)
	}
}

func TestRoundValue(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in     float64
		expect float64
	}{
		{42.0, 42.0},
		{1.23456, 1.235},
		{1.23444, 1.234},
		{-1.23456, -1.235},
		{0, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.expect, roundValue(c.in), "in=%v", c.in)
	}
}
