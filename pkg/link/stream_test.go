package link

import (
	"bufio"
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type streamTestCtx struct {
	t        *testing.T
	stream   *Stream
	peerIn   *io.PipeWriter
	peerOut  *io.PipeReader
	notifyCh chan struct{}
}

func newStreamTestCtx(t *testing.T) *streamTestCtx {
	inR, inW := io.Pipe()
	outR, outW := io.Pipe()
	tctx := &streamTestCtx{
		t:        t,
		peerIn:   inW,
		peerOut:  outR,
		notifyCh: make(chan struct{}, pendingLines),
	}
	tctx.stream = NewStream(struct {
		io.Reader
		io.Writer
	}{inR, outW})
	tctx.stream.Notify = func() {
		tctx.notifyCh <- struct{}{}
	}
	ctx, cancel := context.WithCancel(context.TODO())
	t.Cleanup(cancel)
	go tctx.stream.Run(ctx)
	return tctx
}

func (c *streamTestCtx) inject(raw string) *streamTestCtx {
	_, err := io.WriteString(c.peerIn, raw)
	require.NoError(c.t, err)
	return c
}

func (c *streamTestCtx) waitQueued(n int) *streamTestCtx {
	for i := 0; i < n; i++ {
		select {
		case <-c.notifyCh:
		case <-time.After(500 * time.Millisecond):
			c.t.Fatalf("line %d not queued", i)
		}
	}
	return c
}

func (c *streamTestCtx) expectPolled(lines ...string) *streamTestCtx {
	for _, expected := range lines {
		line, ok := c.stream.Poll()
		require.True(c.t, ok, "expected line %q", expected)
		require.Equal(c.t, expected, line)
	}
	return c
}

func TestStreamPoll(t *testing.T) {
	tctx := newStreamTestCtx(t)

	_, ok := tctx.stream.Poll()
	require.False(t, ok, "poll on idle stream must not block or yield")

	tctx.inject("CMD:2:3:25\nSTATUS\r\n").
		waitQueued(2).
		expectPolled("CMD:2:3:25", "STATUS")

	_, ok = tctx.stream.Poll()
	require.False(t, ok)
}

func TestStreamPartialLine(t *testing.T) {
	tctx := newStreamTestCtx(t)
	tctx.inject("CMD:1:")
	_, ok := tctx.stream.Poll()
	require.False(t, ok, "incomplete line must not surface")
	tctx.inject("2:1\n").waitQueued(1).expectPolled("CMD:1:2:1")
}

func TestStreamWriteLine(t *testing.T) {
	tctx := newStreamTestCtx(t)
	scanner := bufio.NewScanner(tctx.peerOut)
	lineCh := make(chan string, 2)
	go func() {
		for scanner.Scan() {
			lineCh <- scanner.Text()
		}
	}()

	require.NoError(t, tctx.stream.WriteLine("ACK:2:3"))
	require.NoError(t, tctx.stream.WriteLine("HEARTBEAT"))
	for _, expected := range []string{"ACK:2:3", "HEARTBEAT"} {
		select {
		case line := <-lineCh:
			require.Equal(t, expected, line)
		case <-time.After(500 * time.Millisecond):
			t.Fatalf("expected %q on the wire", expected)
		}
	}
}

func TestStreamDrain(t *testing.T) {
	tctx := newStreamTestCtx(t)
	tctx.inject("CMD:2:1:1\nCMD:2:2:2\nCMD:2:3:3\n").waitQueued(3)
	require.Equal(t, 3, tctx.stream.Drain())
	_, ok := tctx.stream.Poll()
	require.False(t, ok)
	require.Equal(t, 0, tctx.stream.Drain())
}
