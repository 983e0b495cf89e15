package source

// Camera abstracts the frame grabber so tests and camera-less hosts run
// against a mock. Real backends (V4L2, GStreamer) satisfy the same shape.
type Camera interface {
	Open(index int) error
	Opened() bool
	Read() (*Frame, error)
	Release()
	Backend() string
}

// Frame is one captured image: interleaved 8-bit samples, Channels per
// pixel, row-major.
type Frame struct {
	Width    int
	Height   int
	Channels int
	Pix      []byte
}

func (f *Frame) Bytes() int { return len(f.Pix) }

// Brightness is the mean sample value, 0..255.
func (f *Frame) Brightness() float64 {
	if len(f.Pix) == 0 {
		return 0
	}
	var sum uint64
	for _, p := range f.Pix {
		sum += uint64(p)
	}
	return float64(sum) / float64(len(f.Pix))
}
