package source

import (
	"github.com/juju/errors"
)

// FrameSource derives numeric readings from camera frames. Reading names
// line up with the sensor's unit heuristics (width/height, bytes,
// brightness).
type FrameSource struct {
	cam Camera
}

func NewFrameSource(cam Camera) *FrameSource {
	return &FrameSource{cam: cam}
}

func (fs *FrameSource) ReadAll() (map[string]float64, error) {
	if !fs.cam.Opened() {
		return nil, errors.Errorf("camera %s is not open", fs.cam.Backend())
	}
	frame, err := fs.cam.Read()
	if err != nil {
		return nil, errors.Annotatef(err, "camera %s read", fs.cam.Backend())
	}
	return map[string]float64{
		"frame_status":   1,
		"frame_width":    float64(frame.Width),
		"frame_height":   float64(frame.Height),
		"frame_channels": float64(frame.Channels),
		"frame_bytes":    float64(frame.Bytes()),
		"brightness":     frame.Brightness(),
	}, nil
}
