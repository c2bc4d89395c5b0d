// SPDX-License-Identifier: MIT
// Package: qubogrid/hardware
//
// types.go — shapes, composite node identity and sentinel errors.

package hardware

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for topology construction and node parsing.
var (
	// ErrInvalidSize indicates a group count or group size below 1.
	ErrInvalidSize = errors.New("hardware: size and group size must be ≥ 1")
	// ErrUnknownShape indicates a shape other than grid or line.
	ErrUnknownShape = errors.New("hardware: unknown shape")
	// ErrBadNodeID indicates a vertex ID that does not encode a node of this topology.
	ErrBadNodeID = errors.New("hardware: malformed node id")
)

// Shape selects how groups are arranged.
type Shape string

// Supported shapes.
const (
	// ShapeGrid arranges n×n groups with 4-neighbour adjacency.
	ShapeGrid Shape = "grid"
	// ShapeLine arranges n groups in a row, g adjacent to g+1.
	ShapeLine Shape = "line"
)

// ParseShape accepts "grid" or "line" (case-insensitive).
func ParseShape(s string) (Shape, error) {
	switch sh := Shape(strings.ToLower(strings.TrimSpace(s))); sh {
	case ShapeGrid, ShapeLine:
		return sh, nil
	}

	return "", fmt.Errorf("ParseShape: %q: %w", s, ErrUnknownShape)
}

// Coord locates a group. On a line Y is always 0.
type Coord struct {
	X, Y int
}

// Node is one hardware qubit: a slot inside a group. Node is comparable and
// may be used as a map key.
type Node struct {
	Group Coord
	Slot  int
}

// Point is a 2-D drawing position handed to a renderer.
type Point struct {
	X float64 `json:"x" yaml:"x" msgpack:"x"`
	Y float64 `json:"y" yaml:"y" msgpack:"y"`
}

const idPrefix = "g"

// gridID renders g:X:Y:Slot.
func gridID(c Coord, slot int) string {
	return idPrefix + ":" + strconv.Itoa(c.X) + ":" + strconv.Itoa(c.Y) + ":" + strconv.Itoa(slot)
}

// lineID renders g:X:Slot.
func lineID(c Coord, slot int) string {
	return idPrefix + ":" + strconv.Itoa(c.X) + ":" + strconv.Itoa(slot)
}

// parseFields splits an ID into its integer fields after the prefix.
func parseFields(id string, want int) ([]int, error) {
	parts := strings.Split(id, ":")
	if len(parts) != want+1 || parts[0] != idPrefix {
		return nil, fmt.Errorf("%q: %w", id, ErrBadNodeID)
	}
	out := make([]int, want)
	for i, p := range parts[1:] {
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("%q: %w", id, ErrBadNodeID)
		}
		out[i] = v
	}

	return out, nil
}
