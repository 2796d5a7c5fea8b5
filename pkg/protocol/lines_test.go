package protocol

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLines(t *testing.T) {
	require.Equal(t, "ACK:2:3", Ack(Packet{Type: TypeSpeed, Engine: 3, Value: 25}))
	require.Equal(t, "ERROR:Invalid format", Error(ReasonInvalidFormat))
	require.Equal(t, "ERROR:OutOfRange", Error(ReasonOutOfRange))
	require.Equal(t, "HELLO:1:dev42", Hello("dev42"))
	require.Equal(t, "STATUS:ENGINES:NONE", StatusEngines(StatusNone))
	require.Equal(t, "STATUS:UPTIME:73", StatusUptime(73))
}
