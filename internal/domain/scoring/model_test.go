package scoring

import "testing"

func TestPlacementForPoints(t *testing.T) {
	t.Parallel()

	cases := []struct {
		points float64
		want   int
	}{
		{points: 150, want: 1},
		{points: 75, want: 1},
		{points: 74.5, want: 2},
		{points: 50, want: 2},
		{points: 25, want: 3},
		{points: 10, want: 4},
		{points: 9.9, want: 5},
		{points: -5, want: 5},
	}

	for _, tc := range cases {
		if got := PlacementForPoints(tc.points); got != tc.want {
			t.Fatalf("PlacementForPoints(%v) = %d, want %d", tc.points, got, tc.want)
		}
	}
}
