package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/tinymorse/internal/ports"
)

// Follow tails a text file and delivers appended bytes, like tail -f.
// fsnotify wakes it on writes; the poll interval is a fallback for
// filesystems that do not report events.
type Follow struct {
	path     string
	f        *os.File
	watcher  *fsnotify.Watcher
	interval time.Duration
	offset   int64
}

// FollowOption configures a Follow.
type FollowOption func(*followOptions)

type followOptions struct {
	interval time.Duration
	fromEnd  bool
}

// FollowInterval sets the fallback poll interval.
func FollowInterval(d time.Duration) FollowOption {
	return func(o *followOptions) {
		if d > 0 {
			o.interval = d
		}
	}
}

// FollowFromEnd skips the existing content and plays only new text.
func FollowFromEnd() FollowOption {
	return func(o *followOptions) { o.fromEnd = true }
}

// NewFollow opens path for tailing.
func NewFollow(path string, opts ...FollowOption) (*Follow, error) {
	o := followOptions{interval: DefaultPollTimeout}
	for _, opt := range opts {
		opt(&o)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	var offset int64
	if o.fromEnd {
		if offset, err = f.Seek(0, io.SeekEnd); err != nil {
			f.Close()
			return nil, fmt.Errorf("seek %s: %w", path, err)
		}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		f.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	return &Follow{
		path:     path,
		f:        f,
		watcher:  watcher,
		interval: o.interval,
		offset:   offset,
	}, nil
}

// Poll reads newly appended bytes. When the file has nothing new it waits
// for a write event or the poll interval and tries once more. Removing or
// renaming the file closes the transport.
func (t *Follow) Poll(ctx context.Context, buf []byte) (int, error) {
	n, err := t.read(buf)
	if n > 0 || err != nil {
		return n, err
	}

	timer := time.NewTimer(t.interval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case ev, ok := <-t.watcher.Events:
		if !ok {
			return 0, ports.ErrTransportClosed
		}
		if ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) || t.gone() {
			return 0, ports.ErrTransportClosed
		}
	case werr, ok := <-t.watcher.Errors:
		if !ok {
			return 0, ports.ErrTransportClosed
		}
		return 0, fmt.Errorf("watch %s: %w", t.path, werr)
	case <-timer.C:
	}
	return t.read(buf)
}

func (t *Follow) read(buf []byte) (int, error) {
	if err := t.rewindIfTruncated(); err != nil {
		return 0, err
	}
	n, err := t.f.Read(buf)
	t.offset += int64(n)
	if errors.Is(err, io.EOF) {
		err = nil
	}
	return n, err
}

// rewindIfTruncated starts over when the file shrank below the read offset.
func (t *Follow) rewindIfTruncated() error {
	fi, err := t.f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", t.path, err)
	}
	if fi.Size() >= t.offset {
		return nil
	}
	if _, err := t.f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("seek %s: %w", t.path, err)
	}
	t.offset = 0
	return nil
}

// gone reports whether path was unlinked. Linux sends Chmod rather than
// Remove while the file is still open.
func (t *Follow) gone() bool {
	_, err := os.Stat(t.path)
	return errors.Is(err, os.ErrNotExist)
}

// Write discards p: a followed file has no peer to greet.
func (t *Follow) Write(p []byte) (int, error) {
	return len(p), nil
}

// Close stops watching and closes the file.
func (t *Follow) Close() error {
	werr := t.watcher.Close()
	ferr := t.f.Close()
	return errors.Join(werr, ferr)
}

var _ ports.Transport = (*Follow)(nil)
