// Package link provides line-oriented transport over byte streams.
package link

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"

	fx "github.com/allenrnemetz/O-Gauge-Command-Control-Bridge-on-Pi/pkg/framework"
)

// pendingLines bounds how many received lines queue up before the
// reader applies backpressure to the peer.
const pendingLines = 64

// Stream reads and writes newline-terminated lines over an
// io.ReadWriter (a serial port, a pty, stdio). A reader goroutine
// started by Run feeds received lines into an internal queue; Poll
// retrieves them without blocking, matching a cooperative loop that
// must never wait on the wire.
type Stream struct {
	ReadWriter io.ReadWriter
	// Notify, if set, is called after each received line is queued.
	Notify func()

	lineCh    chan string
	writeLock sync.Mutex
}

// NewStream creates a Stream over rw.
func NewStream(rw io.ReadWriter) *Stream {
	return &Stream{
		ReadWriter: rw,
		lineCh:     make(chan string, pendingLines),
	}
}

// Run reads lines until the stream ends or the context is canceled.
// If the underlying ReadWriter is an io.Closer it is closed on cancel
// to unblock the pending read.
func (s *Stream) Run(ctx context.Context) error {
	if closer, ok := s.ReadWriter.(io.Closer); ok {
		return fx.RunWithContextCloser(ctx, closer, func() error { return s.readLoop(ctx) })
	}
	return fx.RunWithContext(ctx, func() error { return s.readLoop(ctx) })
}

func (s *Stream) readLoop(ctx context.Context) error {
	scanner := bufio.NewScanner(s.ReadWriter)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		select {
		case s.lineCh <- line:
		case <-ctx.Done():
			return ctx.Err()
		}
		if notify := s.Notify; notify != nil {
			notify()
		}
	}
	return scanner.Err()
}

// Lines exposes the received-line queue for consumers that prefer
// channel select over polling. Lines and Poll consume the same queue;
// a stream has one consumer, not both.
func (s *Stream) Lines() <-chan string {
	return s.lineCh
}

// Poll returns the next received line, if any, without blocking.
func (s *Stream) Poll() (string, bool) {
	select {
	case line := <-s.lineCh:
		return line, true
	default:
		return "", false
	}
}

// WriteLine sends one line with a trailing newline.
func (s *Stream) WriteLine(line string) error {
	s.writeLock.Lock()
	defer s.writeLock.Unlock()
	_, err := io.WriteString(s.ReadWriter, line+"\n")
	return err
}

// Drain discards all received-but-unprocessed lines and returns how
// many were dropped.
func (s *Stream) Drain() (n int) {
	for {
		select {
		case <-s.lineCh:
			n++
		default:
			return
		}
	}
}
