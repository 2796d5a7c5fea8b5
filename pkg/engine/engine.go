// Package engine maintains the authoritative per-engine control state.
package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/allenrnemetz/O-Gauge-Command-Control-Bridge-on-Pi/pkg/protocol"
)

// MaxEngines is the number of addressable engine slots.
const MaxEngines = 20

// State is the control state of one engine slot. The zero slot values
// set by Reset represent "never commanded", there is no unset state.
type State struct {
	Speed      uint8
	Forward    bool
	Bell       bool
	Whistle    bool
	Smoke      bool
	LastUpdate time.Time
}

// Active indicates the slot carries non-default state worth reporting.
func (s State) Active() bool {
	return s.Speed > 0 || s.Bell || s.Whistle || s.Smoke
}

// Store maps engine index to mutable control state. All slots exist
// from creation; mutation happens only through Apply and Reset.
type Store struct {
	slots [MaxEngines]State
}

// NewStore creates a store with every slot at its default state.
func NewStore() *Store {
	st := &Store{}
	st.Reset()
	return st
}

// Reset returns every slot to its default state.
func (st *Store) Reset() {
	for i := range st.slots {
		st.slots[i] = State{Forward: true}
	}
}

// Engine returns a copy of the slot state. num must be within range.
func (st *Store) Engine(num int) State {
	return st.slots[num]
}

// Apply mutates the slot field selected by the command type and stamps
// LastUpdate. It reports false without touching any state when num is
// outside [0, MaxEngines). Command types with no persistent mapping
// leave the slot unchanged, so re-applying any command is idempotent.
func (st *Store) Apply(num int, typ protocol.Type, value uint16, on bool, now time.Time) bool {
	if num < 0 || num >= MaxEngines {
		return false
	}
	s := &st.slots[num]
	switch typ {
	case protocol.TypeSpeed:
		if value > protocol.MaxSpeed {
			value = protocol.MaxSpeed
		}
		s.Speed = uint8(value)
	case protocol.TypeDirection:
		s.Forward = on
	case protocol.TypeFunction:
		switch value {
		case protocol.FuncBellOn:
			s.Bell = true
		case protocol.FuncBellOff:
			s.Bell = false
		default:
			return true
		}
	case protocol.TypeSmoke:
		s.Smoke = on
	default:
		// Engine power, engine select and whistle act on the control
		// surface directly and keep no state here.
		return true
	}
	s.LastUpdate = now
	return true
}

// Summary serializes every active slot in ascending index order as
// index=speed,direction[,B1][,W1][,S1] entries joined by semicolons,
// with direction rendered F or R. It yields StatusNone when no slot
// is active.
func (st *Store) Summary() string {
	var b strings.Builder
	for i := range st.slots {
		s := &st.slots[i]
		if !s.Active() {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(';')
		}
		dir := byte('R')
		if s.Forward {
			dir = 'F'
		}
		fmt.Fprintf(&b, "%d=%d,%c", i, s.Speed, dir)
		if s.Bell {
			b.WriteString(",B1")
		}
		if s.Whistle {
			b.WriteString(",W1")
		}
		if s.Smoke {
			b.WriteString(",S1")
		}
	}
	if b.Len() == 0 {
		return protocol.StatusNone
	}
	return b.String()
}
