package kine

import (
	"math"
	"testing"
)

func TestAxisAngleToQuatIdentity(t *testing.T) {
	q := AxisAngleToQuat(Vec3{Z: 1}, 0)
	if math.Abs(q.Real-1) > 1e-12 || math.Abs(NormQuat(q)-1) > 1e-9 {
		t.Fatalf("zero-angle rotation should be identity, got %+v", q)
	}
}

func TestQuatToMat3PreservesLength(t *testing.T) {
	q := AxisAngleToQuat(Unit(Vec3{X: 1, Y: 1, Z: 0}), math.Pi/2)
	m := QuatToMat3(q)
	v := m.MulVec(Vec3{X: 1})
	if math.Abs(Norm(v)-1) > 1e-9 {
		t.Fatalf("rotation matrix should preserve length, got norm %v", Norm(v))
	}
}

func TestMulQuatComposesRotations(t *testing.T) {
	q1 := AxisAngleToQuat(Vec3{Z: 1}, math.Pi/2)
	q2 := AxisAngleToQuat(Vec3{Z: 1}, math.Pi/2)
	combined := MulQuat(q1, q2)
	full := AxisAngleToQuat(Vec3{Z: 1}, math.Pi)
	if math.Abs(combined.Real-full.Real) > 1e-9 || math.Abs(combined.Kmag-full.Kmag) > 1e-9 {
		t.Fatalf("composing two 90deg rotations should equal one 180deg rotation, got %+v want %+v", combined, full)
	}
}

func TestDistSqr(t *testing.T) {
	a := Vec3{X: 0, Y: 0, Z: 0}
	b := Vec3{X: 3, Y: 4, Z: 0}
	if got := DistSqr(a, b); math.Abs(got-25) > 1e-12 {
		t.Fatalf("DistSqr(a,b) = %v, want 25", got)
	}
}
