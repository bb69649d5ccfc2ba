package story

import (
	"log/slog"

	"github.com/JimenezCarmona8063/MYXITECH/pkg/campus"
	"github.com/JimenezCarmona8063/MYXITECH/pkg/sim"
)

// Director evaluates the narrative rules once per frame, after story
// time bookkeeping and before character updates. It may override the
// movement target of any non-player character; it never touches a
// character's cycle pointer or completion map.
type Director struct {
	state  *State
	campus *campus.Registry
	logger *slog.Logger
}

// NewDirector wires the director to the session's state and map.
func NewDirector(state *State, reg *campus.Registry, logger *slog.Logger) *Director {
	if logger == nil {
		logger = slog.Default()
	}
	return &Director{state: state, campus: reg, logger: logger}
}

// Apply runs the per-frame rules in order: automatic class start,
// tardiness report, then continuous enforcement over every NPC. A
// character may be redirected more than once in a frame; only the final
// target matters because movement happens afterwards.
func (d *Director) Apply(player *sim.Character, npcs []*sim.Character) {
	s := d.state

	// Track whether the player-student ever made it into class.
	if player != nil && s.PlayerRole == sim.RoleStudent &&
		d.campus.Contains(campus.ZoneClassroom, player.Position) {
		s.StudentEnteredClass = true
	}

	d.autoStartClass(npcs)
	d.reportTardyStudent(npcs)

	for _, c := range npcs {
		d.enforce(c)
	}
}

// autoStartClass starts the class on schedule unless the player is the
// teacher, in which case starting is the player's job.
func (d *Director) autoStartClass(npcs []*sim.Character) {
	s := d.state
	if s.ClassInSession || s.ClassCancelled || s.Elapsed < s.ClassStart {
		return
	}
	if s.PlayerRole == sim.RoleTeacher {
		return
	}
	d.startClass(npcs)
	s.Post("The bell rings. Class is starting in the Classroom.")
	d.logger.Info("class started automatically", "elapsed", s.Elapsed)
}

// startClass marks the class in session and sends every classmate and
// the NPC teacher to the classroom.
func (d *Director) startClass(npcs []*sim.Character) {
	d.state.ClassInSession = true
	for _, c := range npcs {
		if c.Tags.Classmate || c.Tags.Teacher {
			d.redirect(c, campus.ZoneClassroom)
		}
	}
}

// reportTardyStudent fires once when the player-student misses the
// grace period: the flag flips, a message is posted, and the teacher
// leaves to report the absence at the office.
func (d *Director) reportTardyStudent(npcs []*sim.Character) {
	s := d.state
	if s.PlayerRole != sim.RoleStudent || s.StudentReported || s.StudentEnteredClass {
		return
	}
	if s.Elapsed <= s.ClassStart+s.TardyGrace {
		return
	}
	s.StudentReported = true
	s.Post("You missed class. The teacher is reporting you at the Office.")
	d.logger.Info("student reported tardy", "elapsed", s.Elapsed)
	for _, c := range npcs {
		if c.Tags.Teacher {
			d.redirect(c, campus.ZoneOffice)
		}
	}
}

// Interact handles the player's interact trigger at their current
// location. Students have no interact verb; their storyline is driven
// by the schedule.
func (d *Director) Interact(player *sim.Character, npcs []*sim.Character) {
	switch d.state.PlayerRole {
	case sim.RoleTeacher:
		d.teacherInteract(player, npcs)
	case sim.RoleStaff:
		d.staffInteract(player, npcs)
	}
}

// teacherInteract starts the class when the teacher is standing in the
// classroom and no class is running yet.
func (d *Director) teacherInteract(player *sim.Character, npcs []*sim.Character) {
	s := d.state
	if !d.campus.Contains(campus.ZoneClassroom, player.Position) {
		return
	}
	if s.ClassCancelled {
		s.Post("Class was already cancelled for today.")
		return
	}
	if s.ClassInSession {
		s.Post("Class is already in session.")
		return
	}
	d.startClass(npcs)
	s.Post("You start the class. Students are on their way.")
	d.logger.Info("class started by teacher", "elapsed", s.Elapsed)
}

// staffInteract toggles the cafeteria when the staff member is in the
// cafeteria or the admin office. Closing immediately reroutes every NPC
// whose current scheduled activity targets the cafeteria; reopening
// lets characters drift back on their own next advance.
func (d *Director) staffInteract(player *sim.Character, npcs []*sim.Character) {
	s := d.state
	if !d.campus.Contains(campus.ZoneCafeteria, player.Position) &&
		!d.campus.Contains(campus.ZoneAdmin, player.Position) {
		return
	}

	if s.CafeteriaOpen {
		s.CafeteriaOpen = false
		s.Post("The cafeteria is now closed.")
		d.logger.Info("cafeteria closed", "elapsed", s.Elapsed)
		for _, c := range npcs {
			if act := c.CurrentActivity(); act != nil && act.Zone == campus.ZoneCafeteria {
				d.redirect(c, campus.ZoneCorridor)
			}
		}
		return
	}

	s.CafeteriaOpen = true
	s.Post("The cafeteria is open again.")
	d.logger.Info("cafeteria opened", "elapsed", s.Elapsed)
}

// CancelClass handles the teacher's cancel trigger. Anything but a
// teacher standing in the classroom during a session is rejected with a
// message and no state change.
func (d *Director) CancelClass(player *sim.Character, npcs []*sim.Character) {
	s := d.state
	if s.PlayerRole != sim.RoleTeacher {
		s.Post("Only the teacher can cancel class.")
		return
	}
	if !d.campus.Contains(campus.ZoneClassroom, player.Position) {
		s.Post("You need to be in the Classroom to cancel class.")
		return
	}
	if !s.ClassInSession {
		s.Post("There is no class in session to cancel.")
		return
	}

	s.ClassCancelled = true
	s.ClassInSession = false
	s.Post("Class is cancelled. Everyone heads to the Cafeteria.")
	d.logger.Info("class cancelled", "elapsed", s.Elapsed)
	for _, c := range npcs {
		if c.Tags.Classmate {
			d.redirect(c, campus.ZoneCafeteria)
		}
		if c.Tags.Teacher {
			d.redirect(c, campus.ZoneLounge)
		}
	}
}

// enforce applies the continuous rules to one NPC. Classmate and
// teacher rules run before the cafeteria rule, so a character can pick
// up two redirects in one frame; the last one wins.
func (d *Director) enforce(c *sim.Character) {
	s := d.state

	if c.Tags.Classmate {
		if s.ClassCancelled {
			d.redirect(c, campus.ZoneCafeteria)
		} else if s.ClassInSession {
			d.redirect(c, campus.ZoneClassroom)
		}
	}

	if c.Tags.Teacher {
		if s.ClassInSession {
			d.redirect(c, campus.ZoneClassroom)
		} else if s.ClassCancelled {
			d.redirect(c, campus.ZoneLounge)
		}
	}

	if !s.CafeteriaOpen {
		if act := c.CurrentActivity(); act != nil && act.Zone == campus.ZoneCafeteria {
			d.redirect(c, campus.ZoneCorridor)
		}
	}
}

// redirect is a no-op when the character already stands inside the
// destination zone. Without the containment guard, enforcement would
// reassign the target and zero the wait timer every single frame.
func (d *Director) redirect(c *sim.Character, zone string) {
	if d.campus.Contains(zone, c.Position) {
		return
	}
	if err := c.GoTo(zone, d.campus); err != nil {
		// Story zones come from the fixed table validated at startup.
		d.logger.Error("redirect failed", "character", c.Name, "zone", zone, "error", err)
	}
}
