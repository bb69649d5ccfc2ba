package campus

import "github.com/JimenezCarmona8063/MYXITECH/pkg/geom"

// Canonical zone names the story rules depend on. The registry is built
// from a fixed table, so these are validated once at startup.
const (
	ZoneEntrance  = "Entrance"
	ZoneClassroom = "Classroom"
	ZoneLibrary   = "Library"
	ZoneLab       = "Lab"
	ZoneOffice    = "Office"
	ZoneLounge    = "Lounge"
	ZoneCafeteria = "Cafeteria"
	ZoneAdmin     = "Admin"
	ZoneCorridor  = "Corridor"
	ZoneCourtyard = "Courtyard"
	ZoneGym       = "Gym"
	ZoneMusicRoom = "Music Room"
)

// Zone is a named rectangular region of the campus with a canonical
// anchor point at its center. Zones are immutable after the registry
// is built.
type Zone struct {
	Name   string    `json:"name"`
	Bounds geom.Rect `json:"bounds"`
	Anchor geom.Vec  `json:"anchor"`
	Color  string    `json:"color"` // terminal color for rendering
}

// Contains reports whether p lies inside the zone's bounds.
func (z *Zone) Contains(p geom.Vec) bool {
	return z.Bounds.Contains(p)
}
