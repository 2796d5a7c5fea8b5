// Package protocol defines the line protocol spoken between the relay
// device and the host-side bridge process.
package protocol

// The protocol is line-oriented ASCII over a point-to-point serial
// channel. The host sends commands (CMD:<type>:<engine>:<value>) and
// out-of-band requests (STATUS, RESET); the device replies with ACK,
// ERROR and STATUS lines and emits unsolicited HEARTBEAT/TIMEOUT
// liveness signals.
//
// Historical firmware revisions disagreed on the command type numbers.
// This package fixes one canonical enumeration and versions it: the
// device announces HELLO:<version>:<device-id> at startup so the peer
// can verify the contract instead of trusting source comments.
//
// Producer: host-side bridge
// Consumer: relay device
