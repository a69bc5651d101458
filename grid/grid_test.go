package grid

import (
	"math"
	"testing"

	"github.com/dockchem/vinacore/kine"
)

func TestUniformBoxContains(t *testing.T) {
	b := UniformBox{Corner1: kine.Vec3{}, Corner2: kine.Vec3{X: 1, Y: 1, Z: 1}}
	if !b.Contains(kine.Vec3{X: 0.5, Y: 0.5, Z: 0.5}) {
		t.Fatal("midpoint should be inside the box")
	}
	if b.Contains(kine.Vec3{X: 2, Y: 0, Z: 0}) {
		t.Fatal("point outside the box should not be contained")
	}
}

func TestArrayGridMapConstantField(t *testing.T) {
	n := 4
	values := make([]float64, n*n*n)
	for i := range values {
		values[i] = 3.0
	}
	g := &ArrayGridMap{Origin: kine.Vec3{}, Spacing: 1, NX: n, NY: n, NZ: n, Values: values}
	v, grad, ok := g.Potential(kine.Vec3{X: 1.5, Y: 1.5, Z: 1.5})
	if !ok {
		t.Fatal("interior point should be in range")
	}
	if math.Abs(v-3) > 1e-9 {
		t.Fatalf("constant field should interpolate to 3, got %v", v)
	}
	if math.Abs(grad.X) > 1e-9 || math.Abs(grad.Y) > 1e-9 || math.Abs(grad.Z) > 1e-9 {
		t.Fatalf("constant field should have zero gradient, got %+v", grad)
	}
}

func TestArrayGridMapOutOfRange(t *testing.T) {
	g := &ArrayGridMap{Origin: kine.Vec3{}, Spacing: 1, NX: 2, NY: 2, NZ: 2, Values: make([]float64, 8)}
	if _, _, ok := g.Potential(kine.Vec3{X: 100, Y: 100, Z: 100}); ok {
		t.Fatal("far outside point should report out of range")
	}
}
