package relay

import (
	"github.com/golang/glog"

	"github.com/allenrnemetz/O-Gauge-Command-Control-Bridge-on-Pi/pkg/protocol"
)

// reset discards anything still buffered on the internal link,
// acknowledges the peer, clears every engine slot and gives a visible
// confirmation. The caller has already re-armed the timeout timer so
// the reset's own quiet period doesn't immediately trip it.
func (s *Session) reset(replyTo Link) {
	if n := s.Link.Drain(); n > 0 {
		glog.V(1).Infof("reset discarded %d buffered lines", n)
	}
	s.writeLine(replyTo, protocol.LineReset)
	s.Store.Reset()
	s.pulse()
	glog.Info("engine state cleared")
}
