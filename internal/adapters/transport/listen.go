package transport

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"sync"
	"time"

	"github.com/bft-labs/tinymorse/internal/ports"
)

// ErrNoPeer is returned by Listener.Write when no client is connected.
var ErrNoPeer = errors.New("transport: no client connected")

// Listener accepts TCP clients one at a time and plays what each sends.
// A client disconnecting ends its stream; the listener then waits for the
// next one.
type Listener struct {
	ln          *net.TCPListener
	pollTimeout time.Duration
	welcome     []byte

	mu  sync.Mutex
	cur *Stream
}

// ListenOption configures a Listener.
type ListenOption func(*Listener)

// WithWelcome sends msg to every client as soon as it connects.
func WithWelcome(msg string) ListenOption {
	return func(l *Listener) {
		if msg != "" {
			l.welcome = []byte(msg)
		}
	}
}

// Listen binds addr (host:port).
func Listen(addr string, pollTimeout time.Duration, opts ...ListenOption) (*Listener, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", addr, err)
	}
	if pollTimeout <= 0 {
		pollTimeout = DefaultPollTimeout
	}
	l := &Listener{ln: ln.(*net.TCPListener), pollTimeout: pollTimeout}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Addr returns the bound address.
func (l *Listener) Addr() net.Addr {
	return l.ln.Addr()
}

// Poll accepts a client if none is connected, then reads from it.
func (l *Listener) Poll(ctx context.Context, buf []byte) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	cur, err := l.current()
	if err != nil || cur == nil {
		return 0, err
	}
	n, err := cur.Poll(ctx, buf)
	if errors.Is(err, ports.ErrTransportClosed) {
		l.drop(cur)
		return n, nil
	}
	return n, err
}

func (l *Listener) current() (*Stream, error) {
	l.mu.Lock()
	cur := l.cur
	l.mu.Unlock()
	if cur != nil {
		return cur, nil
	}

	if err := l.ln.SetDeadline(time.Now().Add(l.pollTimeout)); err != nil {
		return nil, fmt.Errorf("set deadline: %w", err)
	}
	conn, err := l.ln.Accept()
	if err != nil {
		if errors.Is(err, os.ErrDeadlineExceeded) {
			return nil, nil
		}
		if errors.Is(err, net.ErrClosed) {
			return nil, ports.ErrTransportClosed
		}
		return nil, fmt.Errorf("accept: %w", err)
	}

	s := NewStream(conn, conn, WithCloser(conn), WithPollTimeout(l.pollTimeout))
	if l.welcome != nil {
		if _, err := s.Write(l.welcome); err != nil {
			_ = s.Close()
			return nil, nil
		}
	}
	l.mu.Lock()
	l.cur = s
	l.mu.Unlock()
	return s, nil
}

func (l *Listener) drop(s *Stream) {
	l.mu.Lock()
	if l.cur == s {
		l.cur = nil
	}
	l.mu.Unlock()
	_ = s.Close()
}

// Write sends p to the connected client.
func (l *Listener) Write(p []byte) (int, error) {
	l.mu.Lock()
	cur := l.cur
	l.mu.Unlock()
	if cur == nil {
		return 0, ErrNoPeer
	}
	return cur.Write(p)
}

// Close disconnects the client and stops listening.
func (l *Listener) Close() error {
	l.mu.Lock()
	cur := l.cur
	l.cur = nil
	l.mu.Unlock()

	var cerr error
	if cur != nil {
		cerr = cur.Close()
	}
	return errors.Join(cerr, l.ln.Close())
}

var _ ports.Transport = (*Listener)(nil)
