package relay

import (
	"time"

	"github.com/allenrnemetz/O-Gauge-Command-Control-Bridge-on-Pi/pkg/protocol"
)

// reportStatus serializes the state store for the peer: one line with
// every active engine (or NONE), one line with uptime in whole seconds
// since boot. Output is deterministic for a given store.
func (s *Session) reportStatus(now time.Time, replyTo Link) {
	s.writeLine(replyTo, protocol.StatusEngines(s.Store.Summary()))
	s.writeLine(replyTo, protocol.StatusUptime(int64(now.Sub(s.bootTime)/time.Second)))
}
