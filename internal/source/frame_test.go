package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameSourceReadings(t *testing.T) {
	t.Parallel()
	cam := NewMockCamera()
	require.NoError(t, cam.Open(0))
	fs := NewFrameSource(cam)

	readings, err := fs.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{
		"frame_status":   1,
		"frame_width":    640,
		"frame_height":   480,
		"frame_channels": 3,
		"frame_bytes":    640 * 480 * 3,
		"brightness":     0, // first mock frame is all zeros
	}, readings)

	// second frame has a brighter flat fill
	readings, err = fs.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, float64(20), readings["brightness"])
}

func TestFrameSourceCameraClosed(t *testing.T) {
	t.Parallel()
	fs := NewFrameSource(NewMockCamera())
	readings, err := fs.ReadAll()
	require.Error(t, err)
	assert.Nil(t, readings)
	assert.Contains(t, err.Error(), "not open")
}

func TestMockCameraCycles(t *testing.T) {
	t.Parallel()
	cam := NewMockCamera()
	require.NoError(t, cam.Open(0))
	assert.True(t, cam.Opened())

	first, err := cam.Read()
	require.NoError(t, err)
	for i := 1; i < mockFrameCount; i++ {
		_, err = cam.Read()
		require.NoError(t, err)
	}
	again, err := cam.Read()
	require.NoError(t, err)
	assert.Equal(t, first, again, "mock camera wraps around")

	cam.Release()
	assert.False(t, cam.Opened())
	_, err = cam.Read()
	require.Error(t, err)
}
