// Package campus defines the static campus map: named rectangular zones
// laid out on a grid, each with a center anchor that characters walk to.
package campus

import (
	"fmt"

	"github.com/JimenezCarmona8063/MYXITECH/pkg/geom"
)

// Grid layout constants. Zones are equally sized rectangles placed on a
// margin+gap grid, matching the campus floor plan.
const (
	gridMargin = 40.0
	zoneWidth  = 200.0
	zoneHeight = 120.0
	gridGapX   = 20.0
	gridGapY   = 20.0
)

// World bounds for player movement clamping.
const (
	WorldWidth  = 960.0
	WorldHeight = 520.0
)

// gridEntry places a named zone at a grid cell.
type gridEntry struct {
	name string
	col  int
	row  int
}

var layout = []gridEntry{
	{ZoneEntrance, 0, 0},
	{ZoneClassroom, 1, 0},
	{ZoneLibrary, 2, 0},
	{ZoneLab, 3, 0},
	{ZoneOffice, 0, 1},
	{ZoneLounge, 1, 1},
	{ZoneCafeteria, 2, 1},
	{ZoneAdmin, 3, 1},
	{ZoneCorridor, 0, 2},
	{ZoneCourtyard, 1, 2},
	{ZoneGym, 2, 2},
	{ZoneMusicRoom, 3, 2},
}

// palette cycles over zones in layout order.
var palette = []string{"153", "157", "223", "218", "183", "159"}

// Registry holds the immutable set of campus zones. It is built once at
// startup and shared read-only by characters and the story layer.
type Registry struct {
	zones map[string]*Zone
	order []string // layout order, for deterministic iteration and rendering
}

// Build constructs the campus registry from the fixed layout table.
// Duplicate names are a configuration error.
func Build() (*Registry, error) {
	r := &Registry{zones: make(map[string]*Zone, len(layout))}

	for i, e := range layout {
		if _, dup := r.zones[e.name]; dup {
			return nil, fmt.Errorf("duplicate zone name %q", e.name)
		}
		bounds := geom.Rect{
			X: gridMargin + float64(e.col)*(zoneWidth+gridGapX),
			Y: gridMargin + float64(e.row)*(zoneHeight+gridGapY),
			W: zoneWidth,
			H: zoneHeight,
		}
		r.zones[e.name] = &Zone{
			Name:   e.name,
			Bounds: bounds,
			Anchor: bounds.Center(),
			Color:  palette[i%len(palette)],
		}
		r.order = append(r.order, e.name)
	}

	return r, nil
}

// Zone returns the named zone, or an error for unknown names. Unknown
// references are configuration errors, never runtime conditions.
func (r *Registry) Zone(name string) (*Zone, error) {
	z, ok := r.zones[name]
	if !ok {
		return nil, fmt.Errorf("unknown zone %q", name)
	}
	return z, nil
}

// Anchor returns the anchor point of the named zone.
func (r *Registry) Anchor(name string) (geom.Vec, error) {
	z, err := r.Zone(name)
	if err != nil {
		return geom.Vec{}, err
	}
	return z.Anchor, nil
}

// Contains reports whether p lies inside the named zone. Unknown zones
// are never entered.
func (r *Registry) Contains(name string, p geom.Vec) bool {
	z, ok := r.zones[name]
	if !ok {
		return false
	}
	return z.Contains(p)
}

// ZoneAt returns the zone containing p, or nil when p is in open space.
func (r *Registry) ZoneAt(p geom.Vec) *Zone {
	for _, name := range r.order {
		if z := r.zones[name]; z.Contains(p) {
			return z
		}
	}
	return nil
}

// Zones returns all zones in layout order.
func (r *Registry) Zones() []*Zone {
	out := make([]*Zone, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.zones[name])
	}
	return out
}
