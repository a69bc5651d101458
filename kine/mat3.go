/*
 * mat3.go, part of vinacore.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

package kine

// Mat3 is a row-major 3x3 rotation matrix, materialized once per frame per
// evaluation and reused for every heavy atom the frame owns instead of
// re-deriving it from the quaternion on each atom.
type Mat3 struct {
	rows [3]Vec3
}

// MulVec transforms v by M.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		X: Dot(m.rows[0], v),
		Y: Dot(m.rows[1], v),
		Z: Dot(m.rows[2], v),
	}
}

// QuatToMat3 materializes the rotation matrix represented by unit
// quaternion q, in the same layout as ligand.cpp's quaternion_to_matrix.
func QuatToMat3(q Quat) Mat3 {
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z
	return Mat3{rows: [3]Vec3{
		{X: 1 - 2*(yy+zz), Y: 2 * (xy - wz), Z: 2 * (xz + wy)},
		{X: 2 * (xy + wz), Y: 1 - 2*(xx+zz), Z: 2 * (yz - wx)},
		{X: 2 * (xz - wy), Y: 2 * (yz + wx), Z: 1 - 2*(xx+yy)},
	}}
}

// IdentityMat3 is the identity rotation.
var IdentityMat3 = Mat3{rows: [3]Vec3{{X: 1}, {Y: 1}, {Z: 1}}}
