package transport

import (
	"context"
	"net"
	"strconv"
	"syscall"

	"github.com/juju/errors"
)

// DatagramSocket is a blocking, message-oriented socket bound to one
// endpoint. Connect fixes the default peer address so send failures
// surface deterministically even though UDP is connectionless.
type DatagramSocket struct {
	host string
	port int
	conn net.Conn
}

func NewDatagramSocket(host string, port int) *DatagramSocket {
	return &DatagramSocket{host: host, port: port}
}

func (s *DatagramSocket) Connected() bool { return s.conn != nil }

func (s *DatagramSocket) Connect(ctx context.Context) error {
	if s.conn != nil {
		return nil
	}
	if s.host == "" {
		return errors.NotValidf("datagram connect: empty host")
	}
	addrs, err := net.DefaultResolver.LookupIPAddr(ctx, s.host)
	if err != nil {
		return errors.Annotatef(err, "datagram resolve host=%s", s.host)
	}
	dialer := net.Dialer{}
	var lastErr error
	for _, ia := range addrs {
		hostport := net.JoinHostPort(ia.IP.String(), strconv.Itoa(s.port))
		conn, err := dialer.DialContext(ctx, "udp", hostport)
		if err == nil {
			s.conn = conn
			return nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = syscall.ECONNREFUSED
	}
	return errors.Annotatef(lastErr, "datagram connect %s:%d", s.host, s.port)
}

// Send issues exactly one write. A short count without an error cannot be
// completed by resubmission the way stream writes can, so it is an error,
// not a retry. A full count is success even with nobody listening.
func (s *DatagramSocket) Send(b []byte) (int, error) {
	if s.conn == nil {
		return 0, errors.Annotate(ErrNotConnected, "datagram send")
	}
	n, err := s.conn.Write(b)
	if err != nil {
		return 0, errors.Annotate(err, "datagram send")
	}
	if n != len(b) {
		return 0, errors.Errorf("datagram send: short write %d of %d bytes", n, len(b))
	}
	return n, nil
}

func (s *DatagramSocket) Close() error {
	if s.conn == nil {
		return nil
	}
	_ = s.conn.Close()
	s.conn = nil
	return nil
}
