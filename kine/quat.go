/*
 * quat.go, part of vinacore.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

package kine

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Quat is a unit quaternion representing an orientation. It is quat.Number
// directly, mirroring the way Vec3 is r3.Vec directly.
type Quat = quat.Number

// IdentityQuat is the no-rotation orientation.
var IdentityQuat = Quat{Real: 1}

// AxisAngleToQuat builds the unit quaternion representing a rotation of
// angle radians about axis, which must already be unit length. This is the
// Go equivalent of ligand.cpp's axis_angle_to_quaternion.
func AxisAngleToQuat(axis Vec3, angle float64) Quat {
	half := angle / 2
	s := math.Sin(half)
	return Quat{
		Real: math.Cos(half),
		Imag: axis.X * s,
		Jmag: axis.Y * s,
		Kmag: axis.Z * s,
	}
}

// MulQuat is the Hamilton product a*b. Forward kinematics composes a new
// frame's orientation as MulQuat(axisAngleIncrement, parentOrientation),
// mirroring axis_angle_to_quaternion(...) * pf.orientation_q in the
// tree-walk this module is modeled on.
func MulQuat(a, b Quat) Quat {
	return quat.Mul(a, b)
}

// NormQuat returns the Euclidean norm of q's four components.
func NormQuat(q Quat) float64 {
	return math.Sqrt(q.Real*q.Real + q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag)
}
