// Package spatial provides a uniform-cell spatial index over level objects,
// used to accelerate hazard and terrain queries.
package spatial

import (
	"math"

	"github.com/corvid-run/pathbot/catalog"
	"github.com/corvid-run/pathbot/geometry"
)

// CellSize is the uniform cell size in world units.
const CellSize = 128

type cellCoord struct{ cx, cy int32 }

// Grid is an immutable-after-construction spatial index: for every object
// whose AABB overlaps a cell, that object's index is in the cell's bucket.
type Grid struct {
	cells map[cellCoord][]int
}

// Build indexes objects into a uniform grid of CellSize cells.
func Build(objects []catalog.GameObject) *Grid {
	g := &Grid{cells: make(map[cellCoord][]int)}

	for idx, obj := range objects {
		minX, minY, maxX, maxY := objectAABB(obj)

		startX := int32(math.Floor(float64(minX) / CellSize))
		endX := int32(math.Floor(float64(maxX) / CellSize))
		startY := int32(math.Floor(float64(minY) / CellSize))
		endY := int32(math.Floor(float64(maxY) / CellSize))

		for cx := startX; cx <= endX; cx++ {
			for cy := startY; cy <= endY; cy++ {
				key := cellCoord{cx, cy}
				g.cells[key] = append(g.cells[key], idx)
			}
		}
	}

	return g
}

func objectAABB(obj catalog.GameObject) (minX, minY, maxX, maxY float32) {
	if obj.OBB != nil {
		return obj.OBB.AABB()
	}
	radius := obj.Width * 0.5
	return obj.Position.X - radius, obj.Position.Y - radius,
		obj.Position.X + radius, obj.Position.Y + radius
}

// Query returns the de-duplicated set of object indices whose cell range
// overlaps the axis-aligned box centered at pos with the given width/height.
// Order is unspecified.
func (g *Grid) Query(pos geometry.Vec2, width, height float32) []int {
	halfW := width * 0.5
	halfH := height * 0.5

	minX := pos.X - halfW
	maxX := pos.X + halfW
	minY := pos.Y - halfH
	maxY := pos.Y + halfH

	startX := int32(math.Floor(float64(minX) / CellSize))
	endX := int32(math.Floor(float64(maxX) / CellSize))
	startY := int32(math.Floor(float64(minY) / CellSize))
	endY := int32(math.Floor(float64(maxY) / CellSize))

	seen := make(map[int]struct{})
	var result []int
	for cx := startX; cx <= endX; cx++ {
		for cy := startY; cy <= endY; cy++ {
			for _, idx := range g.cells[cellCoord{cx, cy}] {
				if _, ok := seen[idx]; !ok {
					seen[idx] = struct{}{}
					result = append(result, idx)
				}
			}
		}
	}
	return result
}
