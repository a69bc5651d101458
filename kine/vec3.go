/*
 * vec3.go, part of vinacore.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

package kine

import "gonum.org/v1/gonum/spatial/r3"

// Vec3 is a point or displacement in 3-space. It is r3.Vec directly so that
// callers can reach into gonum's spatial/r3 helpers when they need to.
type Vec3 = r3.Vec

// Zero3 is the additive identity.
var Zero3 = Vec3{}

// Add returns a+b.
func Add(a, b Vec3) Vec3 { return r3.Add(a, b) }

// Sub returns a-b.
func Sub(a, b Vec3) Vec3 { return r3.Sub(a, b) }

// Scale returns s*v.
func Scale(s float64, v Vec3) Vec3 { return r3.Scale(s, v) }

// Dot returns the dot product of a and b.
func Dot(a, b Vec3) float64 { return r3.Dot(a, b) }

// Cross returns the cross product a x b.
func Cross(a, b Vec3) Vec3 { return r3.Cross(a, b) }

// Norm returns the Euclidean length of v.
func Norm(v Vec3) float64 { return r3.Norm(v) }

// Norm2 returns the squared Euclidean length of v.
func Norm2(v Vec3) float64 { return r3.Dot(v, v) }

// Unit returns v scaled to unit length. Panics if v is the zero vector.
func Unit(v Vec3) Vec3 { return r3.Unit(v) }

// DistSqr returns the squared distance between a and b.
func DistSqr(a, b Vec3) float64 { return Norm2(Sub(a, b)) }
