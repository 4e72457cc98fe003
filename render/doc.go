// Package render draws diagnostic pictures of flat triangulated
// surfaces.
//
// A surface is developed into the plane face by face: a seed face is
// placed at the origin and every neighbour is unfolded across the
// shared edge, using the low-precision float shadows of the exact
// vectors. The development is written as an SVG document. Identified
// edges appear once per adjacent face, so the picture shows the
// polygon fundamental domain of the surface rather than a quotient.
//
// Rendering never decides structure; it exists so that a failing
// surface can be looked at.
package render
