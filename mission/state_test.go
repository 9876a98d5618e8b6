package mission_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourplan/mission"
)

func TestStateSeedsStart(t *testing.T) {
	st := mission.NewState("S", nil)
	require.True(t, st.Visited.Has("S"))
	require.Equal(t, 1, st.Visited.Len())
	require.Empty(t, st.Route)
	require.Empty(t, st.Collected)
}

func TestStateAbsorb(t *testing.T) {
	st := mission.NewState("S", nil)
	st.Absorb([]string{"S", "A", "B"})
	st.Absorb([]string{"B", "C"})
	st.Absorb([]string{"C"})
	require.Equal(t, []string{"S", "A", "B", "C"}, st.Route)
	require.Equal(t, []string{"A", "B", "C", "S"}, st.Visited.Sorted())
}

func TestStateCollect(t *testing.T) {
	st := mission.NewState("S", []string{"R1", "R2"})
	require.True(t, st.Collect("R2"))
	require.False(t, st.Collect("R2"), "already collected")
	require.False(t, st.Collect("X"), "not a resource")
	require.True(t, st.Collect("R1"))
	require.Equal(t, []string{"R2", "R1"}, st.Collected)
}
