/*
 * doc.go, part of vinacore.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 */

// Package kine provides the spatial primitives (3-vectors, 3x3 rotation
// matrices, unit quaternions) used by the rigid-body kinematic chain.
//
// This plays the role gochem's v3 package plays for coordinate matrices,
// but is built for single fixed-size vectors evaluated many times per
// docking run rather than N x 3 coordinate sets, so it sits directly on
// gonum's spatial/r3 and num/quat packages instead of wrapping mat64.Dense.
package kine
