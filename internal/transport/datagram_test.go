package transport

import (
	"bytes"
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatagramSendReceive(t *testing.T) {
	t.Parallel()
	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	defer pc.Close()
	port := pc.LocalAddr().(*net.UDPAddr).Port

	sock := NewDatagramSocket("127.0.0.1", port)
	ctx := context.Background()
	require.NoError(t, sock.Connect(ctx))
	assert.True(t, sock.Connected())
	defer sock.Close()

	// connecting again is a no-op, not an error
	require.NoError(t, sock.Connect(ctx))
	assert.True(t, sock.Connected())

	n, err := sock.Send([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	buf := make([]byte, 1024)
	rn, _, err := pc.ReadFrom(buf)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), buf[:rn])
}

func TestDatagramSendNoListener(t *testing.T) {
	t.Parallel()
	// UDP has no delivery acknowledgment at this layer: sending into the
	// void is a success as long as the full datagram left the socket.
	sock := NewDatagramSocket("127.0.0.1", freePort(t))
	require.NoError(t, sock.Connect(context.Background()))
	defer sock.Close()
	n, err := sock.Send([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestDatagramSendOversized(t *testing.T) {
	t.Parallel()
	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	defer pc.Close()
	port := pc.LocalAddr().(*net.UDPAddr).Port

	sock := NewDatagramSocket("127.0.0.1", port)
	require.NoError(t, sock.Connect(context.Background()))
	defer sock.Close()

	oversized := bytes.Repeat([]byte{'x'}, 1<<17) // above any datagram limit
	_, err = sock.Send(oversized)
	require.Error(t, err, "oversized datagram must error, not truncate")
}

func TestDatagramSendNotConnected(t *testing.T) {
	t.Parallel()
	sock := NewDatagramSocket("127.0.0.1", 12345)
	n, err := sock.Send([]byte("x"))
	require.Error(t, err)
	assert.Equal(t, 0, n)
	assert.Contains(t, err.Error(), "not connected")
}

func TestDatagramCloseIdempotent(t *testing.T) {
	t.Parallel()
	sock := NewDatagramSocket("127.0.0.1", 12345)
	for i := 0; i < 3; i++ {
		assert.NoError(t, sock.Close())
		assert.False(t, sock.Connected())
	}

	require.NoError(t, sock.Connect(context.Background()))
	for i := 0; i < 3; i++ {
		assert.NoError(t, sock.Close())
		assert.False(t, sock.Connected())
	}
}
