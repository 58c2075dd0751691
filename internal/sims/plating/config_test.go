package plating

import (
	"strings"
	"testing"
)

func TestFromMap(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]string
		want Config
	}{
		{
			name: "nil map keeps defaults",
			in:   nil,
			want: DefaultConfig(),
		},
		{
			name: "overrides",
			in:   map[string]string{"w": "64", "h": "16", "seed": "-9", "rule": "BANDS", "neighborhood": "orthogonal"},
			want: Config{Width: 64, Height: 16, Seed: -9, Params: Params{Rule: RuleBands, Neighborhood: NeighborhoodVonNeumann}},
		},
		{
			name: "malformed values ignored",
			in:   map[string]string{"w": "2", "h": "abc", "seed": "1.5", "rule": "conway", "neighborhood": "hex"},
			want: DefaultConfig(),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FromMap(tc.in); got != tc.want {
				t.Fatalf("FromMap(%v) = %+v, expected %+v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParametersSnapshot(t *testing.T) {
	board := New(12, 6)
	board.Reset(4)
	board.Step()
	board.Step()

	lines := board.Parameters().Lines()
	joined := strings.Join(lines, "\n")
	for _, want := range []string{"w=12", "h=6", "rule=reference", "neighborhood=moore", "generation=2"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("snapshot missing %q:\n%s", want, joined)
		}
	}
}
