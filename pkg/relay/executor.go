package relay

import (
	"time"

	"github.com/golang/glog"

	"github.com/allenrnemetz/O-Gauge-Command-Control-Bridge-on-Pi/pkg/engine"
	"github.com/allenrnemetz/O-Gauge-Command-Control-Bridge-on-Pi/pkg/protocol"
)

// execute applies a validated packet: update the state store, perform
// the protocol-visible action, acknowledge, pulse the indicator.
// Physical actuation toward the control surface is delegated to
// collaborators outside this core; here the action is diagnostic echo.
// ACK is unconditional once the line parsed, an unrecognized command
// type is logged but still acknowledged. An out-of-range engine index
// rejects the command before any state mutation.
func (s *Session) execute(now time.Time, pkt protocol.Packet, replyTo Link) {
	if pkt.Engine < 0 || pkt.Engine >= engine.MaxEngines {
		glog.Warningf("engine %d out of range, %s command dropped", pkt.Engine, pkt.Type)
		s.writeLine(replyTo, protocol.Error(protocol.ReasonOutOfRange))
		return
	}
	s.Store.Apply(pkt.Engine, pkt.Type, pkt.Value, pkt.On(), now)
	switch pkt.Type {
	case protocol.TypeFunction:
		s.dispatchFunction(pkt)
	default:
		if pkt.Type.Known() {
			glog.V(1).Infof("exec %s engine=%d value=%d", pkt.Type, pkt.Engine, pkt.Value)
		} else {
			glog.Warningf("unknown command type %d for engine %d", pkt.Type, pkt.Engine)
		}
	}
	s.writeLine(replyTo, protocol.Ack(pkt))
	s.pulse()
}

// dispatchFunction multiplexes the function sub-command on the value
// field. Only the bell sub-codes have a persistent state mapping; the
// rest is actuation delegated to the control surface.
func (s *Session) dispatchFunction(pkt protocol.Packet) {
	switch pkt.Value {
	case protocol.FuncHorn:
		glog.V(1).Infof("engine %d horn", pkt.Engine)
	case protocol.FuncBellOn:
		glog.V(1).Infof("engine %d bell on", pkt.Engine)
	case protocol.FuncBellOff:
		glog.V(1).Infof("engine %d bell off", pkt.Engine)
	default:
		glog.V(1).Infof("engine %d function %d", pkt.Engine, pkt.Value)
	}
}
