// SPDX-License-Identifier: MIT
// Package: qubogrid/hardware
//
// layout.go — drawing positions for a renderer.
//
// Grid: each group is a regular polygon of GroupSize vertices centred at
// (X·XGap, −Y·YGap); vertex i sits at angle Rotation + 2πi/GroupSize.
// Line: group g is a column at x = g·XGap; vertex i sits at
// y = (i − (k−1)/2)·YGap with a horizontal jitter proportional to the same
// offset, so consecutive columns are visually separated.

package hardware

import "math"

// LayoutOptions controls GridPolygonLayout.
type LayoutOptions struct {
	XGap     float64 `json:"x_gap" yaml:"x_gap"`
	YGap     float64 `json:"y_gap" yaml:"y_gap"`
	Radius   float64 `json:"radius" yaml:"radius"`
	Rotation float64 `json:"rotation_deg" yaml:"rotation_deg"` // degrees
}

// DefaultLayoutOptions puts slot 0 at the top of each polygon.
func DefaultLayoutOptions() LayoutOptions {
	return LayoutOptions{XGap: 3.2, YGap: 3.0, Radius: 0.75, Rotation: -90}
}

// LineLayoutOptions controls LineLayout.
type LineLayoutOptions struct {
	XGap   float64 `json:"x_gap" yaml:"x_gap"`
	YGap   float64 `json:"y_gap" yaml:"y_gap"`
	Jitter float64 `json:"jitter" yaml:"jitter"`
}

// DefaultLineLayoutOptions returns the stock column spacing.
func DefaultLineLayoutOptions() LineLayoutOptions {
	return LineLayoutOptions{XGap: 2.6, YGap: 1.2, Jitter: 0.5}
}

// GridPolygonLayout positions every node of a grid topology and returns the
// group centres alongside. A non-grid topology yields empty maps.
func GridPolygonLayout(t *Topology, opt LayoutOptions) (map[string]Point, map[Coord]Point) {
	pos := make(map[string]Point, t.NodeCount())
	centers := make(map[Coord]Point)
	if t.Shape != ShapeGrid || t.GroupSize < 1 {
		return pos, centers
	}
	rot := opt.Rotation * math.Pi / 180
	k := float64(t.GroupSize)
	for _, c := range t.Groups() {
		cx, cy := float64(c.X)*opt.XGap, -float64(c.Y)*opt.YGap
		centers[c] = Point{X: cx, Y: cy}
		for s := 0; s < t.GroupSize; s++ {
			a := rot + 2*math.Pi*float64(s)/k
			pos[t.NodeID(Node{Group: c, Slot: s})] = Point{
				X: cx + opt.Radius*math.Cos(a),
				Y: cy + opt.Radius*math.Sin(a),
			}
		}
	}

	return pos, centers
}

// LineLayout positions every node of a line topology. A non-line topology
// yields an empty map.
func LineLayout(t *Topology, opt LineLayoutOptions) map[string]Point {
	pos := make(map[string]Point, t.NodeCount())
	if t.Shape != ShapeLine {
		return pos
	}
	mid := 0.5 * float64(t.GroupSize-1)
	for _, c := range t.Groups() {
		x := float64(c.X) * opt.XGap
		for s := 0; s < t.GroupSize; s++ {
			off := float64(s) - mid
			pos[t.NodeID(Node{Group: c, Slot: s})] = Point{
				X: x + off*opt.Jitter,
				Y: off * opt.YGap,
			}
		}
	}

	return pos
}

// Layout dispatches on Shape with default options.
func (t *Topology) Layout() map[string]Point {
	if t.Shape == ShapeLine {
		return LineLayout(t, DefaultLineLayoutOptions())
	}
	pos, _ := GridPolygonLayout(t, DefaultLayoutOptions())

	return pos
}
