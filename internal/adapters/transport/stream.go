// Package transport provides the byte-stream links text can arrive on:
// any reader/writer pair (stdin, a serial device), a followed file, and a
// TCP listener.
package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/bft-labs/tinymorse/internal/ports"
)

// DefaultPollTimeout bounds how long Poll waits for input before reporting
// an empty cycle.
const DefaultPollTimeout = 100 * time.Millisecond

// DefaultChunkSize matches the 64-byte USB CDC packet the firmware reads.
const DefaultChunkSize = 64

// Stream adapts a reader/writer pair to ports.Transport. A pump goroutine
// reads chunks so Poll never blocks longer than its timeout.
type Stream struct {
	r      io.Reader
	w      io.Writer
	closer io.Closer

	pollTimeout time.Duration
	chunkSize   int

	start   sync.Once
	chunks  chan []byte
	done    chan struct{}
	closeMu sync.Once

	mu      sync.Mutex
	readErr error
	pending []byte
}

// StreamOption configures a Stream.
type StreamOption func(*Stream)

// WithPollTimeout sets how long Poll waits for input.
func WithPollTimeout(d time.Duration) StreamOption {
	return func(s *Stream) {
		if d > 0 {
			s.pollTimeout = d
		}
	}
}

// WithChunkSize sets the size of each read from the underlying reader.
func WithChunkSize(n int) StreamOption {
	return func(s *Stream) {
		if n > 0 {
			s.chunkSize = n
		}
	}
}

// WithCloser sets the resource released by Close.
func WithCloser(c io.Closer) StreamOption {
	return func(s *Stream) { s.closer = c }
}

// NewStream wraps r for input and w for output. w may be nil, in which case
// writes are discarded.
func NewStream(r io.Reader, w io.Writer, opts ...StreamOption) *Stream {
	if w == nil {
		w = io.Discard
	}
	s := &Stream{
		r:           r,
		w:           w,
		pollTimeout: DefaultPollTimeout,
		chunkSize:   DefaultChunkSize,
		chunks:      make(chan []byte, 4),
		done:        make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Poll returns the next received chunk, or zero bytes if nothing arrived
// within the poll timeout. Bytes that do not fit in buf are returned by the
// next call.
func (s *Stream) Poll(ctx context.Context, buf []byte) (int, error) {
	s.start.Do(func() { go s.pump() })

	s.mu.Lock()
	if len(s.pending) > 0 {
		n := copy(buf, s.pending)
		s.pending = s.pending[n:]
		s.mu.Unlock()
		return n, nil
	}
	s.mu.Unlock()

	timer := time.NewTimer(s.pollTimeout)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case <-timer.C:
		return 0, nil
	case chunk, ok := <-s.chunks:
		if !ok {
			return 0, s.closedErr()
		}
		n := copy(buf, chunk)
		if n < len(chunk) {
			s.mu.Lock()
			s.pending = append(s.pending, chunk[n:]...)
			s.mu.Unlock()
		}
		return n, nil
	}
}

func (s *Stream) pump() {
	defer close(s.chunks)
	buf := make([]byte, s.chunkSize)
	for {
		n, err := s.r.Read(buf)
		if n > 0 {
			chunk := append([]byte(nil), buf[:n]...)
			select {
			case s.chunks <- chunk:
			case <-s.done:
				return
			}
		}
		if err != nil {
			s.mu.Lock()
			s.readErr = err
			s.mu.Unlock()
			return
		}
	}
}

func (s *Stream) closedErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readErr == nil || errors.Is(s.readErr, io.EOF) {
		return ports.ErrTransportClosed
	}
	return fmt.Errorf("%w: %v", ports.ErrTransportClosed, s.readErr)
}

// Write sends p to the peer.
func (s *Stream) Write(p []byte) (int, error) {
	return s.w.Write(p)
}

// Close stops the pump and releases the closer, if any.
//
// A pump blocked in Read only returns once the reader does. Without a closer
// (stdin) the goroutine stays parked until the next byte or EOF arrives; its
// result is discarded.
func (s *Stream) Close() error {
	var err error
	s.closeMu.Do(func() {
		close(s.done)
		if s.closer != nil {
			err = s.closer.Close()
		}
	})
	return err
}

var _ ports.Transport = (*Stream)(nil)
