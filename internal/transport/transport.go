// Package transport owns how bytes leave the process: blocking stream and
// datagram sockets behind one small interface, selected by configuration.
//
// Transport contract:
// - Connect resolves and dials; already-connected is a no-op
// - SendString either delivers the whole payload or returns an error
// - Close is idempotent and never fails
// - no retry, backoff or reconnection here; failures surface to the caller
package transport

import (
	"context"
	"fmt"
)

var ErrNotConnected = fmt.Errorf("not connected")

type Transport interface {
	Connect(ctx context.Context) error
	SendString(s string) (int, error)
	Close() error
	Connected() bool
}

// streamTransport adapts StreamSocket to the Transport shape. No own state.
type streamTransport struct {
	sock *StreamSocket
}

var _ Transport = &streamTransport{}

func (t *streamTransport) Connect(ctx context.Context) error { return t.sock.Connect(ctx) }
func (t *streamTransport) SendString(s string) (int, error)  { return t.sock.Send([]byte(s)) }
func (t *streamTransport) Close() error                      { return t.sock.Close() }
func (t *streamTransport) Connected() bool                   { return t.sock.Connected() }

// datagramTransport adapts DatagramSocket likewise.
type datagramTransport struct {
	sock *DatagramSocket
}

var _ Transport = &datagramTransport{}

func (t *datagramTransport) Connect(ctx context.Context) error { return t.sock.Connect(ctx) }
func (t *datagramTransport) SendString(s string) (int, error)  { return t.sock.Send([]byte(s)) }
func (t *datagramTransport) Close() error                      { return t.sock.Close() }
func (t *datagramTransport) Connected() bool                   { return t.sock.Connected() }
