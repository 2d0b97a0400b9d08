package internal

import "testing"

func TestPercentageRound(t *testing.T) {
	cases := map[string]struct {
		total   uint
		current uint
		width   uint
		want    uint
	}{
		"t,c,w{100,0,100}":   {100, 0, 100, 0},
		"t,c,w{100,10,100}":  {100, 10, 100, 10},
		"t,c,w{100,100,100}": {100, 100, 100, 100},
		"t,c,w{1000,10,100}": {1000, 10, 100, 1},
		"t,c,w{1000,10,36}":  {1000, 10, 36, 0},
		"t,c,w{1000,15,36}":  {1000, 15, 36, 1},
		"t,c,w{3,1,100}":     {3, 1, 100, 33},
		"t,c,w{3,2,100}":     {3, 2, 100, 67},
		"t,c,w{0,0,100}":     {0, 0, 100, 100},
		"t,c,w{0,5,100}":     {0, 5, 100, 100},
		"t,c,w{5,8,100}":     {5, 8, 100, 100},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := PercentageRound(tc.total, tc.current, tc.width)
			if got != tc.want {
				t.Fatalf("expected: %d, got: %d", tc.want, got)
			}
		})
	}
}
