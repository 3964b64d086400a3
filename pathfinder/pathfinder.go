// Package pathfinder ties together simulation, collision, and search into
// a reusable planner over a fixed set of level objects: build once per
// level, then run repeated searches against it.
package pathfinder

import (
	"sort"

	"github.com/corvid-run/pathbot/catalog"
	"github.com/corvid-run/pathbot/config"
	"github.com/corvid-run/pathbot/spatial"
)

// Pathfinder holds a level's objects (sorted and indexed) plus the config
// every search session against it shares.
type Pathfinder struct {
	objects    []catalog.GameObject
	cfg        *config.Config
	maxObjWidth float32
	grid       *spatial.Grid
}

// New builds a Pathfinder using the embedded default configuration.
func New(objects []catalog.GameObject) (*Pathfinder, error) {
	cfg, err := config.Load("")
	if err != nil {
		return nil, err
	}
	return WithConfig(objects, cfg), nil
}

// WithConfig builds a Pathfinder against an explicit configuration,
// sorting objects by their left edge so portal and landing lookups can
// binary-search into a contiguous x-range instead of scanning every object.
func WithConfig(objects []catalog.GameObject, cfg *config.Config) *Pathfinder {
	sorted := make([]catalog.GameObject, len(objects))
	copy(sorted, objects)

	sort.SliceStable(sorted, func(i, j int) bool {
		minI := sorted[i].Position.X - sorted[i].Width*0.5
		minJ := sorted[j].Position.X - sorted[j].Width*0.5
		return minI < minJ
	})

	var maxObjWidth float32
	for _, obj := range sorted {
		if obj.Width > maxObjWidth {
			maxObjWidth = obj.Width
		}
	}
	maxObjWidth += 10.0

	grid := spatial.Build(sorted)

	return &Pathfinder{
		objects:     sorted,
		cfg:         cfg,
		maxObjWidth: maxObjWidth,
		grid:        grid,
	}
}

// DT returns the fixed simulation tick used by this planner.
func (pf *Pathfinder) DT() float32 {
	return float32(pf.cfg.Physics.DT)
}

// objectsFrom returns the index of the first sorted object whose left edge
// is not strictly less than x, i.e. the start of the contiguous window a
// scan from x rightward needs to consider.
func (pf *Pathfinder) objectsFrom(x float32) int {
	return sort.Search(len(pf.objects), func(i int) bool {
		minX := pf.objects[i].Position.X - pf.objects[i].Width*0.5
		return minX >= x
	})
}
