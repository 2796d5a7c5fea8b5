package protocol

import (
	"fmt"
	"strconv"
)

// Out-of-band request lines accepted from the peer.
const (
	LineStatus = "STATUS"
	LineReset  = "RESET"
)

// Unsolicited lines emitted by the device.
const (
	LineHeartbeat = "HEARTBEAT"
	LineTimeout   = "TIMEOUT"
)

// Error reasons carried in ERROR lines.
const (
	ReasonInvalidFormat = "Invalid format"
	ReasonOutOfRange    = "OutOfRange"
)

// StatusNone is emitted when no engine carries non-default state.
const StatusNone = "NONE"

// Ack builds the acknowledgement line for an executed command.
func Ack(p Packet) string {
	return fmt.Sprintf("ACK:%d:%d", p.Type, p.Engine)
}

// Error builds an ERROR line with the given reason.
func Error(reason string) string {
	return "ERROR:" + reason
}

// Hello builds the startup handshake line announcing the protocol
// version and the device identity.
func Hello(deviceID string) string {
	return fmt.Sprintf("HELLO:%d:%s", Version, deviceID)
}

// StatusEngines builds the first status line from an engine summary.
func StatusEngines(summary string) string {
	return "STATUS:ENGINES:" + summary
}

// StatusUptime builds the second status line with uptime in whole seconds.
func StatusUptime(seconds int64) string {
	return "STATUS:UPTIME:" + strconv.FormatInt(seconds, 10)
}
