/*
 * grid.go, part of vinacore.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

// Package grid provides the receptor-side potential lookup the evaluator
// samples for every ligand heavy atom: a bounding Box and, per xs type, a
// GridMap of precomputed receptor potential.
package grid

import "github.com/dockchem/vinacore/kine"

// Box tests whether a point lies inside the region the receptor grid maps
// cover. A point outside the box is rejected outright.
type Box interface {
	Contains(p kine.Vec3) bool
}

// GridMap looks up the receptor potential for one xs type at an arbitrary
// point, along with its gradient. Implementations are expected to
// interpolate a discretized grid; ok is false when p falls outside the
// map's own extent (distinct from, and checked after, Box.Contains).
type GridMap interface {
	Potential(p kine.Vec3) (value float64, grad kine.Vec3, ok bool)
}

// UniformBox is an axis-aligned box on a regular lattice, the shape every
// AutoDock-family grid map is defined on.
type UniformBox struct {
	Corner1, Corner2 kine.Vec3
}

// Contains reports whether p lies within the box, corners included.
func (b UniformBox) Contains(p kine.Vec3) bool {
	return p.X >= b.Corner1.X && p.X <= b.Corner2.X &&
		p.Y >= b.Corner1.Y && p.Y <= b.Corner2.Y &&
		p.Z >= b.Corner1.Z && p.Z <= b.Corner2.Z
}

// ArrayGridMap is a GridMap backed by a flat, row-major array of
// NX*NY*NZ samples spaced Spacing apart, starting at Origin. Its gradient
// is estimated by forward finite differences, mirroring the way the system
// this evaluator is modeled on differentiates its receptor grids: the
// energy at a shifted sample minus the energy at the query point, divided
// by the spacing, one axis at a time.
type ArrayGridMap struct {
	Origin  kine.Vec3
	Spacing float64
	NX, NY, NZ int
	Values  []float64 // length NX*NY*NZ, index = (ix*NY+iy)*NZ+iz
}

func (g *ArrayGridMap) index(ix, iy, iz int) (int, bool) {
	if ix < 0 || iy < 0 || iz < 0 || ix >= g.NX || iy >= g.NY || iz >= g.NZ {
		return 0, false
	}
	return (ix*g.NY+iy)*g.NZ + iz, true
}

func (g *ArrayGridMap) at(ix, iy, iz int) (float64, bool) {
	idx, ok := g.index(ix, iy, iz)
	if !ok {
		return 0, false
	}
	return g.Values[idx], true
}

// Potential trilinearly interpolates the grid value at p and estimates its
// gradient by forward differencing the interpolated value one spacing step
// along each axis.
func (g *ArrayGridMap) Potential(p kine.Vec3) (float64, kine.Vec3, bool) {
	v0, ok := g.interpolate(p)
	if !ok {
		return 0, kine.Zero3, false
	}
	h := g.Spacing
	vx, okx := g.interpolate(kine.Vec3{X: p.X + h, Y: p.Y, Z: p.Z})
	vy, oky := g.interpolate(kine.Vec3{X: p.X, Y: p.Y + h, Z: p.Z})
	vz, okz := g.interpolate(kine.Vec3{X: p.X, Y: p.Y, Z: p.Z + h})
	grad := kine.Zero3
	if okx {
		grad.X = (vx - v0) / h
	}
	if oky {
		grad.Y = (vy - v0) / h
	}
	if okz {
		grad.Z = (vz - v0) / h
	}
	return v0, grad, true
}

func (g *ArrayGridMap) interpolate(p kine.Vec3) (float64, bool) {
	fx := (p.X - g.Origin.X) / g.Spacing
	fy := (p.Y - g.Origin.Y) / g.Spacing
	fz := (p.Z - g.Origin.Z) / g.Spacing
	if fx < 0 || fy < 0 || fz < 0 {
		return 0, false
	}
	ix, iy, iz := int(fx), int(fy), int(fz)
	dx, dy, dz := fx-float64(ix), fy-float64(iy), fz-float64(iz)

	var sum float64
	for _, c := range [8]struct {
		dix, diy, diz int
		w             float64
	}{
		{0, 0, 0, (1 - dx) * (1 - dy) * (1 - dz)},
		{1, 0, 0, dx * (1 - dy) * (1 - dz)},
		{0, 1, 0, (1 - dx) * dy * (1 - dz)},
		{0, 0, 1, (1 - dx) * (1 - dy) * dz},
		{1, 1, 0, dx * dy * (1 - dz)},
		{1, 0, 1, dx * (1 - dy) * dz},
		{0, 1, 1, (1 - dx) * dy * dz},
		{1, 1, 1, dx * dy * dz},
	} {
		v, ok := g.at(ix+c.dix, iy+c.diy, iz+c.diz)
		if !ok {
			return 0, false
		}
		sum += c.w * v
	}
	return sum, true
}
