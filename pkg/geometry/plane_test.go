package geometry

import (
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

func TestPlane_NormalIsConstant(t *testing.T) {
	p := NewPlane()
	for _, point := range []core.Tuple{core.Point(0, 0, 0), core.Point(10, 0, -10), core.Point(-5, 0, 150)} {
		if n := p.NormalAt(point); !n.Equal(core.Vector(0, 1, 0)) {
			t.Errorf("Normal at %v: expected (0,1,0), got %v", point, n)
		}
	}
}

func TestPlane_Intersect(t *testing.T) {
	tests := []struct {
		name     string
		ray      core.Ray
		expected []float64
	}{
		{"parallel", core.NewRay(core.Point(0, 10, 0), core.Vector(0, 0, 1)), nil},
		{"coplanar", core.NewRay(core.Point(0, 0, 0), core.Vector(0, 0, 1)), nil},
		{"from above", core.NewRay(core.Point(0, 1, 0), core.Vector(0, -1, 0)), []float64{1}},
		{"from below", core.NewRay(core.Point(0, -1, 0), core.Vector(0, 1, 0)), []float64{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlane()
			xs := p.Intersect(tt.ray)
			if len(xs) != len(tt.expected) {
				t.Fatalf("Expected %d intersections, got %d", len(tt.expected), len(xs))
			}
			for i, want := range tt.expected {
				if !core.FloatEqual(xs[i].T, want) || xs[i].Object != p {
					t.Errorf("xs[%d]: expected t=%f on plane, got %+v", i, want, xs[i])
				}
			}
		})
	}
}

func TestPlane_Transformed(t *testing.T) {
	p := NewPlane()
	if err := p.SetTransform(core.Translation(0, -1, 0)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	xs := p.Intersect(core.NewRay(core.Point(0, 1, 0), core.Vector(0, -1, 0)))
	if len(xs) != 1 || !core.FloatEqual(xs[0].T, 2) {
		t.Errorf("Expected single hit at t=2, got %v", xs)
	}
}
