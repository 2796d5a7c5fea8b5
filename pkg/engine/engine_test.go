package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/allenrnemetz/O-Gauge-Command-Control-Bridge-on-Pi/pkg/protocol"
)

var t0 = time.Unix(1000, 0)

func TestApplyMapping(t *testing.T) {
	testCases := []struct {
		name   string
		typ    protocol.Type
		value  uint16
		expect func(*testing.T, State)
	}{
		{
			name: "speed", typ: protocol.TypeSpeed, value: 25,
			expect: func(t *testing.T, s State) {
				require.Equal(t, uint8(25), s.Speed)
			},
		},
		{
			name: "speed clamped", typ: protocol.TypeSpeed, value: 100,
			expect: func(t *testing.T, s State) {
				require.Equal(t, uint8(protocol.MaxSpeed), s.Speed)
			},
		},
		{
			name: "direction reverse", typ: protocol.TypeDirection, value: 0,
			expect: func(t *testing.T, s State) {
				require.False(t, s.Forward)
			},
		},
		{
			name: "direction forward", typ: protocol.TypeDirection, value: 1,
			expect: func(t *testing.T, s State) {
				require.True(t, s.Forward)
			},
		},
		{
			name: "bell on", typ: protocol.TypeFunction, value: protocol.FuncBellOn,
			expect: func(t *testing.T, s State) {
				require.True(t, s.Bell)
			},
		},
		{
			name: "smoke on", typ: protocol.TypeSmoke, value: 1,
			expect: func(t *testing.T, s State) {
				require.True(t, s.Smoke)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			st := NewStore()
			require.True(t, st.Apply(3, tc.typ, tc.value, tc.value > 0, t0))
			s := st.Engine(3)
			tc.expect(t, s)
			require.Equal(t, t0, s.LastUpdate)
			// other slots untouched
			require.Equal(t, State{Forward: true}, st.Engine(2))
		})
	}
}

func TestApplyBellOff(t *testing.T) {
	st := NewStore()
	st.Apply(3, protocol.TypeFunction, protocol.FuncBellOn, true, t0)
	st.Apply(3, protocol.TypeFunction, protocol.FuncBellOff, true, t0)
	require.False(t, st.Engine(3).Bell)
}

func TestApplyHornLeavesBell(t *testing.T) {
	st := NewStore()
	st.Apply(3, protocol.TypeFunction, protocol.FuncBellOn, true, t0)
	st.Apply(3, protocol.TypeFunction, protocol.FuncHorn, true, t0.Add(time.Second))
	s := st.Engine(3)
	require.True(t, s.Bell)
	// horn has no persistent mapping, no re-stamp
	require.Equal(t, t0, s.LastUpdate)
}

func TestApplyOutOfRange(t *testing.T) {
	st := NewStore()
	require.False(t, st.Apply(MaxEngines, protocol.TypeSpeed, 10, true, t0))
	require.False(t, st.Apply(-1, protocol.TypeSpeed, 10, true, t0))
	require.Equal(t, protocol.StatusNone, st.Summary())
}

func TestApplyUnmappedTypes(t *testing.T) {
	st := NewStore()
	for _, typ := range []protocol.Type{
		protocol.TypeEnginePower,
		protocol.TypeEngineSelect,
		protocol.TypeEngineSelectLegacy,
		protocol.TypeWhistle,
		protocol.Type(99),
	} {
		require.True(t, st.Apply(0, typ, 1, true, t0), "type %d", typ)
	}
	require.Equal(t, State{Forward: true}, st.Engine(0))
}

func TestApplyIdempotent(t *testing.T) {
	st := NewStore()
	st.Apply(5, protocol.TypeSpeed, 12, true, t0)
	once := st.Engine(5)
	st.Apply(5, protocol.TypeSpeed, 12, true, t0.Add(time.Second))
	twice := st.Engine(5)
	twice.LastUpdate = once.LastUpdate
	require.Equal(t, once, twice)
}

func TestSummary(t *testing.T) {
	st := NewStore()
	require.Equal(t, "NONE", st.Summary())

	st.Apply(3, protocol.TypeSpeed, 25, true, t0)
	require.Equal(t, "3=25,F", st.Summary())

	st.Apply(3, protocol.TypeDirection, 0, false, t0)
	st.Apply(3, protocol.TypeFunction, protocol.FuncBellOn, true, t0)
	require.Equal(t, "3=25,R,B1", st.Summary())

	st.Apply(1, protocol.TypeSmoke, 1, true, t0)
	require.Equal(t, "1=0,F,S1;3=25,R,B1", st.Summary())

	// speed 0 with no accessories drops out of the report
	st.Apply(3, protocol.TypeSpeed, 0, false, t0)
	st.Apply(3, protocol.TypeFunction, protocol.FuncBellOff, true, t0)
	require.Equal(t, "1=0,F,S1", st.Summary())
}

func TestReset(t *testing.T) {
	st := NewStore()
	st.Apply(0, protocol.TypeSpeed, 31, true, t0)
	st.Apply(19, protocol.TypeSmoke, 1, true, t0)
	st.Reset()
	require.Equal(t, protocol.StatusNone, st.Summary())
	for i := 0; i < MaxEngines; i++ {
		require.Equal(t, State{Forward: true}, st.Engine(i), "slot %d", i)
	}
}
