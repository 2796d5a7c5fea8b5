package relay

import (
	"time"

	"github.com/golang/glog"

	"github.com/allenrnemetz/O-Gauge-Command-Control-Bridge-on-Pi/pkg/protocol"
)

// checkLiveness drives two independent timers off the iteration clock.
//
// The heartbeat fires unconditionally every HeartbeatInterval.
//
// The timeout is edge-triggered and immediately rearmed: once the
// internal link has been silent past CommandTimeout, one TIMEOUT is
// emitted and the timer restarts from now. There is no latched
// "disconnected" state, the same check simply repeats every idle
// window. The timer is armed only after the first recognized line has
// ever arrived.
func (s *Session) checkLiveness(now time.Time) {
	if now.Sub(s.lastHeartbeat) > s.conf.HeartbeatInterval {
		s.writeLine(s.Link, protocol.LineHeartbeat)
		s.pulse()
		s.lastHeartbeat = now
	}
	if !s.lastCommand.IsZero() && now.Sub(s.lastCommand) > s.conf.CommandTimeout {
		glog.Warningf("no command for %v, peer silent", now.Sub(s.lastCommand))
		s.writeLine(s.Link, protocol.LineTimeout)
		s.lastCommand = now
	}
}
