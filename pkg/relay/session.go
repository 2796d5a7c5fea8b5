package relay

import (
	"flag"
	"strings"
	"time"

	"github.com/golang/glog"

	"github.com/allenrnemetz/O-Gauge-Command-Control-Bridge-on-Pi/pkg/engine"
	fx "github.com/allenrnemetz/O-Gauge-Command-Control-Bridge-on-Pi/pkg/framework"
	"github.com/allenrnemetz/O-Gauge-Command-Control-Bridge-on-Pi/pkg/protocol"
)

// Config defines the session configuration.
type Config struct {
	// DeviceID identifies the device in the HELLO handshake.
	DeviceID string
	// HeartbeatInterval is how often HEARTBEAT is emitted. Emission is
	// unconditional, it fires whether or not the link is active.
	HeartbeatInterval time.Duration
	// CommandTimeout is how long the internal link may stay silent
	// before TIMEOUT is emitted.
	CommandTimeout time.Duration
	// IndicatorPulse is the duration of one visible indication.
	IndicatorPulse time.Duration
}

var defaultConfig = Config{
	HeartbeatInterval: 5 * time.Second,
	CommandTimeout:    10 * time.Second,
	IndicatorPulse:    50 * time.Millisecond,
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.DurationVar(&defaultConfig.HeartbeatInterval, "heartbeat", defaultConfig.HeartbeatInterval, "Heartbeat emission interval.")
	flag.DurationVar(&defaultConfig.CommandTimeout, "cmd-timeout", defaultConfig.CommandTimeout, "Silence threshold before TIMEOUT is emitted.")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a config with defaults.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// Session owns all mutable relay state: the engine state store and the
// liveness timestamps. All transitions happen synchronously inside one
// loop iteration, so the session needs no locking.
type Session struct {
	// Link is the internal point-to-point link to the host bridge.
	Link Link
	// Debug optionally accepts the same grammar for local testing.
	// Replies go back to the debug channel; debug traffic does not
	// count as host activity for the timeout timer.
	Debug Link
	// Indicator is pulsed on executed commands and heartbeats.
	Indicator Indicator
	// Store is the per-engine control state.
	Store *engine.Store

	conf Config

	bootTime      time.Time
	lastHeartbeat time.Time
	lastCommand   time.Time
}

// NewSession creates a session over the internal link.
func (c *Config) NewSession(lnk Link) *Session {
	return &Session{
		Link:  lnk,
		Store: engine.NewStore(),
		conf:  *c,
	}
}

// AddToLoop implements LoopAdder.
func (s *Session) AddToLoop(loop *fx.Loop) {
	if runner, ok := s.Link.(fx.Runnable); ok {
		loop.AddRunnable(runner)
	}
	if s.Debug != nil {
		if runner, ok := s.Debug.(fx.Runnable); ok {
			loop.AddRunnable(runner)
		}
	}
	loop.AddController(s)
}

// Control implements Controller.
func (s *Session) Control(cc fx.ControlContext) error {
	s.Tick(cc.Time())
	return nil
}

// Tick runs one loop iteration at the given time: drain pending lines
// from both channels in arrival order, then run the liveness checks.
func (s *Session) Tick(now time.Time) {
	if s.bootTime.IsZero() {
		s.boot(now)
	}
	for {
		line, ok := s.Link.Poll()
		if !ok {
			break
		}
		s.handleLine(now, line, s.Link, true)
	}
	if s.Debug != nil {
		for {
			line, ok := s.Debug.Poll()
			if !ok {
				break
			}
			s.handleLine(now, line, s.Debug, false)
		}
	}
	s.checkLiveness(now)
}

// boot marks the first iteration and announces the protocol contract.
func (s *Session) boot(now time.Time) {
	s.bootTime = now
	s.lastHeartbeat = now
	s.writeLine(s.Link, protocol.Hello(s.conf.DeviceID))
	glog.Infof("relay up, protocol version %d, device %q", protocol.Version, s.conf.DeviceID)
}

// handleLine dispatches one received line. internal marks lines from
// the internal link; only those feed the timeout timer.
func (s *Session) handleLine(now time.Time, line string, replyTo Link, internal bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	switch line {
	case protocol.LineStatus:
		s.commandSeen(now, internal)
		s.reportStatus(now, replyTo)
	case protocol.LineReset:
		s.commandSeen(now, internal)
		s.reset(replyTo)
	default:
		pkt, err := protocol.ParseCommand(line)
		if err != nil {
			glog.V(1).Infof("malformed line %q", line)
			s.writeLine(replyTo, protocol.Error(protocol.ReasonInvalidFormat))
			return
		}
		s.commandSeen(now, internal)
		s.execute(now, pkt, replyTo)
	}
}

// commandSeen records inbound activity for any syntactically
// recognized line, not only CMD lines.
func (s *Session) commandSeen(now time.Time, internal bool) {
	if internal {
		s.lastCommand = now
	}
}

func (s *Session) writeLine(lnk Link, line string) {
	if err := lnk.WriteLine(line); err != nil {
		glog.Errorf("write %q: %v", line, err)
	}
}

func (s *Session) pulse() {
	if s.Indicator != nil {
		s.Indicator.Pulse(s.conf.IndicatorPulse)
	}
}
