package mission_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourplan/core"
	"github.com/katalvlaran/tourplan/mission"
)

func TestPlanLegs(t *testing.T) {
	cases := []struct {
		name      string
		route     []string
		collected []string
		want      [][]string
	}{
		{"empty", nil, nil, nil},
		{"no resources", []string{"S", "A", "B"}, nil, [][]string{{"S", "A", "B"}}},
		{"one split", []string{"S", "A", "R", "B", "C"}, []string{"R"},
			[][]string{{"S", "A", "R"}, {"R", "B", "C"}}},
		{"resource at end", []string{"S", "A", "R"}, []string{"R"},
			[][]string{{"S", "A", "R"}}},
		{"two splits", []string{"S", "R1", "A", "R2", "B"}, []string{"R1", "R2"},
			[][]string{{"S", "R1"}, {"R1", "A", "R2"}, {"R2", "B"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &mission.Plan{Route: tc.route, Collected: tc.collected}
			require.Equal(t, tc.want, p.Legs())
		})
	}
}

func TestPathLength(t *testing.T) {
	coords := core.Coords{"A": {0, 0}, "B": {3, 4}, "C": {3, 10}}
	require.Zero(t, mission.PathLength(nil, coords))
	require.Zero(t, mission.PathLength([]string{"A"}, coords))
	require.InDelta(t, 11.0, mission.PathLength([]string{"A", "B", "C"}, coords), 1e-9)
	require.True(t, math.IsInf(mission.PathLength([]string{"A", "Z"}, coords), 1))
}

func TestPlanErrNilWhenComplete(t *testing.T) {
	p := &mission.Plan{Status: mission.StatusComplete}
	require.NoError(t, p.Err())
	require.False(t, p.Degraded())
}
