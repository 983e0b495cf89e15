package source

import (
	"github.com/juju/errors"
)

const (
	mockFrameCount    = 10
	mockFrameWidth    = 640
	mockFrameHeight   = 480
	mockFrameChannels = 3
)

// MockCamera serves a fixed set of synthetic frames, cycling forever.
// Deterministic fill values make brightness assertions stable.
type MockCamera struct {
	frames []*Frame
	next   int
	opened bool
}

func NewMockCamera() *MockCamera {
	m := &MockCamera{frames: make([]*Frame, mockFrameCount)}
	for i := range m.frames {
		pix := make([]byte, mockFrameWidth*mockFrameHeight*mockFrameChannels)
		for j := range pix {
			// per-frame flat fill, same spirit as a scalar-color test image
			pix[j] = byte(i * 20)
		}
		m.frames[i] = &Frame{
			Width:    mockFrameWidth,
			Height:   mockFrameHeight,
			Channels: mockFrameChannels,
			Pix:      pix,
		}
	}
	return m
}

func (m *MockCamera) Open(index int) error {
	m.opened = true
	return nil
}

func (m *MockCamera) Opened() bool { return m.opened }

func (m *MockCamera) Read() (*Frame, error) {
	if !m.opened {
		return nil, errors.Errorf("mock camera: read while closed")
	}
	f := m.frames[m.next]
	m.next = (m.next + 1) % len(m.frames)
	return f, nil
}

func (m *MockCamera) Release() { m.opened = false }

func (m *MockCamera) Backend() string { return "mock" }
