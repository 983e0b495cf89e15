package transport

import (
	"context"
	"net"
	"strconv"
	"syscall"

	"github.com/juju/errors"
	"github.com/sensorlab/relay/helpers"
)

// StreamSocket is a blocking, connection-oriented socket bound to one
// endpoint. It owns at most one OS handle; pass by pointer, never copy.
type StreamSocket struct {
	host string
	port int
	conn net.Conn
}

func NewStreamSocket(host string, port int) *StreamSocket {
	return &StreamSocket{host: host, port: port}
}

func (s *StreamSocket) Connected() bool { return s.conn != nil }

// Connect resolves the endpoint and dials candidates in resolver order,
// keeping the first handle that completes the handshake. Already
// connected is a no-op. When every candidate fails, the last dial error
// is returned; ECONNREFUSED stands in if none produced one.
func (s *StreamSocket) Connect(ctx context.Context) error {
	if s.conn != nil {
		return nil
	}
	if s.host == "" {
		return errors.NotValidf("stream connect: empty host")
	}
	addrs, err := net.DefaultResolver.LookupIPAddr(ctx, s.host)
	if err != nil {
		return errors.Annotatef(err, "stream resolve host=%s", s.host)
	}
	dialer := net.Dialer{}
	var lastErr error
	for _, ia := range addrs {
		hostport := net.JoinHostPort(ia.IP.String(), strconv.Itoa(s.port))
		conn, err := dialer.DialContext(ctx, "tcp", hostport)
		if err == nil {
			s.conn = conn
			return nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = syscall.ECONNREFUSED
	}
	return errors.Annotatef(lastErr, "stream connect %s:%d", s.host, s.port)
}

// Send blocks until all of b is written. Returns len(b) on success;
// partial progress without an error never reaches the caller. EINTR is
// retried inside the runtime, nothing to handle here.
func (s *StreamSocket) Send(b []byte) (int, error) {
	if s.conn == nil {
		return 0, errors.Annotate(ErrNotConnected, "stream send")
	}
	if err := helpers.WriteAll(s.conn, b); err != nil {
		return 0, errors.Annotate(err, "stream send")
	}
	return len(b), nil
}

// Close is idempotent and never fails. Best-effort graceful shutdown of
// the write side, then the handle is released unconditionally.
func (s *StreamSocket) Close() error {
	if s.conn == nil {
		return nil
	}
	if tcp, ok := s.conn.(*net.TCPConn); ok {
		_ = tcp.CloseWrite()
	}
	_ = s.conn.Close()
	s.conn = nil
	return nil
}
