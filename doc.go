// Package flattri is a kernel for flat triangulated surfaces — exact
// half-edge meshes with straight-line geometry, mutation, and tracked
// deformation.
//
// 🚀 What is flattri?
//
//	A pure-Go library for exact computation on translation surfaces:
//		• Mesh primitives: half-edge arenas, flip, collapse, insert, slit
//		• Exact geometry: vectors, orientation predicates, 2x2 maps,
//		  area polynomials over a pluggable scalar ring
//		• Surfaces: meshes with an antisymmetric vector field, Delaunay
//		  classification and reduction, verticals, saddle connections
//		• Deformations: relations that carry paths, connections and
//		  points across flips, shifts, insertions and isomorphisms
//		• Rendering: diagnostic SVG developments of a surface
//
// ✨ Why choose flattri?
//
//   - Exact – every structural decision is made in ring arithmetic,
//     floats appear only as read-only shadows
//   - Tracked mutation – every deformation returns a fresh surface plus
//     a Relation explaining how geometry corresponds
//   - Pure Go – no cgo, minimal dependencies
//
// Under the hood, everything is organized under six subpackages:
//
//	ring/    — scalar ring capability set with int64 and big.Rat backends
//	geom/    — exact planar vectors, predicates, matrices, quadratics
//	mesh/    — combinatorial half-edge structure and surgery
//	surface/ — flat metric on a mesh, Delaunay, verticals, paths
//	deform/  — shift, insert, slit, marked-point elimination, isomorphism
//	render/  — SVG pictures of developed surfaces
//
// Quick ASCII example:
//
//	    ┌───┐
//	    │  ╱│
//	    │ ╱ │
//	    │╱  │
//	    └───┘
//
//	a square torus: two triangles glued along three identified edges.
//
// Dive into each package's doc.go for the full contracts.
//
//	go get github.com/flatgeom/flattri
package flattri
