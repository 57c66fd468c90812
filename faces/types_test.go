package faces

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	a := Descriptor{}
	b := Descriptor{}
	tests := []struct {
		name string
		av   [2]float32
		bv   [2]float32
		want float64
	}{
		{"zero", [2]float32{0, 0}, [2]float32{0, 0}, 0},
		{"3-4-5", [2]float32{3, 4}, [2]float32{0, 0}, 5},
		{"symmetric", [2]float32{0, 0}, [2]float32{3, 4}, 5},
		{"diagonal", [2]float32{1, 0}, [2]float32{0, 1}, math.Sqrt2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a[0], a[1] = tt.av[0], tt.av[1]
			b[0], b[1] = tt.bv[0], tt.bv[1]
			if got := Distance(a, b); math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("Distance() = %v, want %v", got, tt.want)
			}
		})
	}
}
