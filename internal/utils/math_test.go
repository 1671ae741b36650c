package utils

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestRotate(t *testing.T) {
	tests := []struct {
		name         string
		x, y, angle  float64
		wantX, wantY float64
	}{
		{"zero angle", 3, 4, 0, 3, 4},
		{"quarter turn", 1, 0, math.Pi / 2, 0, 1},
		{"half turn", 1, 2, math.Pi, -1, -2},
		{"negative quarter", 0, 1, -math.Pi / 2, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := Rotate(tt.x, tt.y, tt.angle)
			if math.Abs(x-tt.wantX) > eps || math.Abs(y-tt.wantY) > eps {
				t.Errorf("Rotate(%v, %v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, tt.angle, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestRotateInverse(t *testing.T) {
	for _, angle := range []float64{0.3, 1.7, -2.9, 5} {
		x, y := Rotate(7, -3, angle)
		x, y = Rotate(x, y, -angle)
		if math.Abs(x-7) > eps || math.Abs(y+3) > eps {
			t.Errorf("angle %v: round trip gave (%v, %v)", angle, x, y)
		}
	}
}

func TestNormalizeAngle(t *testing.T) {
	for _, in := range []float64{0, 4, -4, 10 * math.Pi, -7.5} {
		got := NormalizeAngle(in)
		if got < -math.Pi-eps || got > math.Pi+eps {
			t.Errorf("NormalizeAngle(%v) = %v, out of range", in, got)
		}
		if math.Abs(math.Sin(got)-math.Sin(in)) > 1e-6 || math.Abs(math.Cos(got)-math.Cos(in)) > 1e-6 {
			t.Errorf("NormalizeAngle(%v) = %v changed direction", in, got)
		}
	}
}

func TestLerpAngleShortestPath(t *testing.T) {
	from := math.Pi - 0.1
	to := -math.Pi + 0.1
	got := LerpAngle(from, to, 0.5)
	if math.Abs(math.Abs(got)-math.Pi) > 1e-6 {
		t.Errorf("LerpAngle across ±π = %v, want ±π", got)
	}
}

func TestNormalizeZero(t *testing.T) {
	if x, y := Normalize(0, 0); x != 0 || y != 0 {
		t.Errorf("Normalize(0,0) = (%v, %v)", x, y)
	}
	x, y := Normalize(3, 4)
	if math.Abs(x-0.6) > eps || math.Abs(y-0.8) > eps {
		t.Errorf("Normalize(3,4) = (%v, %v)", x, y)
	}
}
