// Package scene holds the display-agnostic renderers for the visualization.
//
// Everything draws onto a [Surface], the small abstraction both frontends
// implement:
//
//   - [RingRenderer]: topographic contour rings blended between two radial
//     envelopes, one translucent closed polyline per layer
//   - [PointRenderer]: the interpolated point cloud, a vertical connector
//     per point capped with a bobbing marker
//   - [Palette]: named color sets shared by both frontends
//
// Ring geometry runs through a precomputed sine table (4096 entries, linear
// interpolation); the ring pass evaluates layers x bins trig terms per frame.
package scene
