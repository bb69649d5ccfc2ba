package engine

import (
	"fmt"

	"github.com/JimenezCarmona8063/MYXITECH/pkg/campus"
	"github.com/JimenezCarmona8063/MYXITECH/pkg/sim"
)

// characterSpec is one row of the fixed roster table.
type characterSpec struct {
	name      string
	role      sim.Role
	tags      sim.Tags
	color     string
	speed     float64
	startZone string
	cycle     []sim.Activity
}

// roster is the fixed cast of the campus. The first character of each
// playable role doubles as the protagonist when that role is selected.
var roster = []characterSpec{
	{
		name: "Alex", role: sim.RoleStudent, tags: sim.Tags{Classmate: true},
		color: "226", speed: 130, startZone: campus.ZoneCafeteria,
		cycle: []sim.Activity{
			sim.Act("Class", campus.ZoneClassroom, 6, "Attended class"),
			sim.Act("Lunch", campus.ZoneCafeteria, 4, "Ate lunch"),
			sim.Act("Study", campus.ZoneLibrary, 5, "Studied"),
			sim.Act("Sport", campus.ZoneGym, 6, "Played sports"),
			sim.Act("Practice", campus.ZoneMusicRoom, 4, "Practiced music"),
		},
	},
	{
		name: "Prof. Reyes", role: sim.RoleTeacher, tags: sim.Tags{Teacher: true},
		color: "39", speed: 80, startZone: campus.ZoneLounge,
		cycle: []sim.Activity{
			sim.Act("Lecture", campus.ZoneClassroom, 8, "Taught class"),
			sim.Act("Office hours", campus.ZoneOffice, 5, "Held office hours"),
			sim.Act("Lunch", campus.ZoneCafeteria, 4, "Ate lunch"),
			sim.Act("Prep", campus.ZoneLibrary, 6, "Prepared lessons"),
		},
	},
	{
		name: "Marisol", role: sim.RoleStaff, tags: sim.Tags{Staff: true},
		color: "208", speed: 75, startZone: campus.ZoneCafeteria,
		cycle: []sim.Activity{
			sim.Act("Service", campus.ZoneCafeteria, 8, "Served lunch"),
			sim.Act("Stock", campus.ZoneAdmin, 5, "Checked supplies"),
			sim.Act("Break", campus.ZoneLounge, 3, "Took a break"),
		},
	},
	{
		name: "Dani", role: sim.RoleStudent, tags: sim.Tags{Classmate: true},
		color: "81", speed: 110, startZone: campus.ZoneEntrance,
		cycle: []sim.Activity{
			sim.Act("Class", campus.ZoneClassroom, 6, "Attended class"),
			sim.Act("Workout", campus.ZoneGym, 5, "Worked out"),
			sim.Act("Lunch", campus.ZoneCafeteria, 4, "Ate lunch"),
		},
	},
	{
		name: "Ximena", role: sim.RoleStudent, tags: sim.Tags{Classmate: true},
		color: "213", speed: 115, startZone: campus.ZoneLibrary,
		cycle: []sim.Activity{
			sim.Act("Class", campus.ZoneClassroom, 6, "Attended class"),
			sim.Act("Study", campus.ZoneLibrary, 5, "Studied"),
			sim.Act("Walk", campus.ZoneCourtyard, 4, "Got some air"),
		},
	},
	{
		name: "Beto", role: sim.RoleStudent, tags: sim.Tags{Classmate: true},
		color: "120", speed: 105, startZone: campus.ZoneCourtyard,
		cycle: []sim.Activity{
			sim.Act("Class", campus.ZoneClassroom, 6, "Attended class"),
			sim.Act("Band", campus.ZoneMusicRoom, 5, "Rehearsed"),
			sim.Act("Lunch", campus.ZoneCafeteria, 3, "Ate lunch"),
		},
	},
	{
		name: "Principal Ortega", role: sim.RolePrincipal, tags: sim.Tags{},
		color: "160", speed: 90, startZone: campus.ZoneOffice,
		cycle: []sim.Activity{
			sim.Act("Rounds", campus.ZoneEntrance, 6, "Made the rounds"),
			sim.Act("Inspection", campus.ZoneLab, 8, "Inspected the lab"),
			sim.Act("Meetings", campus.ZoneOffice, 6, "Held meetings"),
			sim.Act("Coffee", campus.ZoneLounge, 4, "Had coffee"),
		},
	},
	{
		name: "Raul", role: sim.RoleJanitor, tags: sim.Tags{},
		color: "245", speed: 70, startZone: campus.ZoneCorridor,
		cycle: []sim.Activity{
			sim.Act("Sweep", campus.ZoneCorridor, 6, "Swept the corridor"),
			sim.Act("Gym duty", campus.ZoneGym, 5, "Cleaned the gym"),
			sim.Act("Yard", campus.ZoneCourtyard, 5, "Tidied the courtyard"),
		},
	},
}

// buildRoster constructs the cast against the campus registry and maps
// each playable role to its protagonist. Construction is fail-fast:
// any cycle referencing an unknown zone aborts setup.
func buildRoster(reg *campus.Registry) (map[string]*sim.Character, map[sim.Role]string, error) {
	characters := make(map[string]*sim.Character, len(roster))
	playable := make(map[sim.Role]string, 3)

	for _, spec := range roster {
		if _, dup := characters[spec.name]; dup {
			return nil, nil, fmt.Errorf("duplicate character name %q", spec.name)
		}
		c, err := sim.New(spec.name, spec.role, spec.tags, spec.color, spec.speed, spec.cycle, spec.startZone, reg)
		if err != nil {
			return nil, nil, err
		}
		characters[spec.name] = c

		switch {
		case spec.tags.Classmate && playable[sim.RoleStudent] == "":
			playable[sim.RoleStudent] = spec.name
		case spec.tags.Teacher && playable[sim.RoleTeacher] == "":
			playable[sim.RoleTeacher] = spec.name
		case spec.tags.Staff && playable[sim.RoleStaff] == "":
			playable[sim.RoleStaff] = spec.name
		}
	}

	for _, role := range []sim.Role{sim.RoleStudent, sim.RoleTeacher, sim.RoleStaff} {
		if playable[role] == "" {
			return nil, nil, fmt.Errorf("roster has no character for playable role %q", role)
		}
	}

	return characters, playable, nil
}
