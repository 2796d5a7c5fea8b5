package protocol

// Version is the protocol version announced in the HELLO line.
const Version = 1

// Type identifies the kind of a command.
type Type uint8

// Canonical command type numbers.
const (
	// TypeDirection sets engine direction, value 0 = reverse, >0 = forward.
	TypeDirection Type = 1
	// TypeSpeed sets engine speed, value 0-31.
	TypeSpeed Type = 2
	// TypeFunction triggers a function sub-command selected by value.
	TypeFunction Type = 3
	// TypeSmoke switches the smoke unit, value 0 = off, >0 = on.
	TypeSmoke Type = 4
	// TypeEnginePower switches engine power.
	TypeEnginePower Type = 5
	// TypeEngineSelect selects the engine on the physical control surface.
	TypeEngineSelect Type = 6
	// TypeEngineSelectLegacy is the engine-select number used by an older
	// firmware revision. Accepted as an alias of TypeEngineSelect.
	TypeEngineSelectLegacy Type = 7
	// TypeWhistle is the prototype whistle command.
	TypeWhistle Type = 8
)

// Function sub-command values multiplexed on TypeFunction.
const (
	FuncHorn    uint16 = 1
	FuncBellOn  uint16 = 2
	FuncBellOff uint16 = 4
)

// MaxSpeed is the highest speed step the protocol carries.
const MaxSpeed = 31

// String returns a short name for logging.
func (t Type) String() string {
	switch t {
	case TypeDirection:
		return "direction"
	case TypeSpeed:
		return "speed"
	case TypeFunction:
		return "function"
	case TypeSmoke:
		return "smoke"
	case TypeEnginePower:
		return "engine-power"
	case TypeEngineSelect, TypeEngineSelectLegacy:
		return "engine-select"
	case TypeWhistle:
		return "whistle"
	}
	return "unknown"
}

// Known indicates the type is part of the canonical enumeration.
func (t Type) Known() bool {
	return t >= TypeDirection && t <= TypeWhistle
}

// Packet is one parsed command line.
type Packet struct {
	Type   Type
	Engine int
	Value  uint16
}

// On interprets Value as a boolean.
func (p Packet) On() bool {
	return p.Value > 0
}
