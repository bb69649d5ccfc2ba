// Package engine drives the campus simulation: one Step per rendered
// frame, story rules first, then every non-player character's update.
package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/JimenezCarmona8063/MYXITECH/pkg/campus"
	"github.com/JimenezCarmona8063/MYXITECH/pkg/sim"
	"github.com/JimenezCarmona8063/MYXITECH/pkg/story"
)

// storyZones are the zones the constraint rules redirect characters to.
// They are validated at setup so a redirect can never hit an unknown
// zone at runtime.
var storyZones = []string{
	campus.ZoneClassroom,
	campus.ZoneCafeteria,
	campus.ZoneOffice,
	campus.ZoneLounge,
	campus.ZoneCorridor,
	campus.ZoneAdmin,
}

// Simulation owns the campus registry, the story state, and the cast.
// The player reference is an alias into the character map, bound when a
// role is selected.
type Simulation struct {
	Campus *campus.Registry
	Story  *story.State

	director   *story.Director
	characters map[string]*sim.Character
	order      []string // sorted names; map iteration order is not deterministic
	playable   map[sim.Role]string
	player     *sim.Character
	logger     *slog.Logger
}

// New builds the campus, the cast, and the story state, validating all
// configuration before the loop starts.
func New(logger *slog.Logger) (*Simulation, error) {
	if logger == nil {
		logger = slog.Default()
	}

	reg, err := campus.Build()
	if err != nil {
		return nil, fmt.Errorf("build campus: %w", err)
	}

	var zoneErrs []error
	for _, name := range storyZones {
		if _, err := reg.Zone(name); err != nil {
			zoneErrs = append(zoneErrs, fmt.Errorf("story rule zone: %w", err))
		}
	}
	if len(zoneErrs) > 0 {
		return nil, errors.Join(zoneErrs...)
	}

	characters, playable, err := buildRoster(reg)
	if err != nil {
		return nil, fmt.Errorf("build roster: %w", err)
	}

	order := make([]string, 0, len(characters))
	for name := range characters {
		order = append(order, name)
	}
	sort.Strings(order)

	st := story.NewState()
	return &Simulation{
		Campus:     reg,
		Story:      st,
		director:   story.NewDirector(st, reg, logger),
		characters: characters,
		order:      order,
		playable:   playable,
		logger:     logger,
	}, nil
}

// SelectRole binds the player alias to the protagonist of the given
// role. Only student, teacher, and staff are playable.
func (s *Simulation) SelectRole(role sim.Role) error {
	name, ok := s.playable[role]
	if !ok {
		return fmt.Errorf("role %q is not playable", role)
	}
	s.player = s.characters[name]
	s.Story.PlayerRole = role
	s.logger.Info("role selected", "role", role, "character", name)
	return nil
}

// Player returns the player character, or nil before role selection.
func (s *Simulation) Player() *sim.Character {
	return s.player
}

// Characters returns the cast in stable name order.
func (s *Simulation) Characters() []*sim.Character {
	out := make([]*sim.Character, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.characters[name])
	}
	return out
}

// Character looks up a cast member by name.
func (s *Simulation) Character(name string) *sim.Character {
	return s.characters[name]
}

// npcs returns every character except the player, in stable order.
func (s *Simulation) npcs() []*sim.Character {
	out := make([]*sim.Character, 0, len(s.order))
	for _, name := range s.order {
		if c := s.characters[name]; c != s.player {
			out = append(out, c)
		}
	}
	return out
}

// Step advances the whole simulation by one frame: story time first,
// then constraint enforcement, then each NPC's own update. The clock
// source is trusted to be non-negative but clamped anyway.
func (s *Simulation) Step(dt float64) {
	if dt < 0 {
		dt = 0
	}

	s.Story.Tick(dt)
	s.director.Apply(s.player, s.npcs())

	for _, name := range s.order {
		c := s.characters[name]
		if c == s.player {
			continue
		}
		c.Update(dt, s.Campus)
	}
}

// MovePlayer applies one frame of directional intent to the player.
func (s *Simulation) MovePlayer(dx, dy, dt float64) {
	if s.player == nil {
		return
	}
	s.player.Nudge(dx, dy, dt)
}

// Interact fires the role-specific interact trigger at the player's
// current location.
func (s *Simulation) Interact() {
	if s.player == nil {
		return
	}
	s.director.Interact(s.player, s.npcs())
}

// CancelClass fires the teacher's cancel trigger.
func (s *Simulation) CancelClass() {
	if s.player == nil {
		return
	}
	s.director.CancelClass(s.player, s.npcs())
}

// ResetAll restarts every character's cycle, the global "force everyone
// to continue" action.
func (s *Simulation) ResetAll() {
	for _, name := range s.order {
		s.characters[name].ResetStatus()
	}
	s.Story.Post("Everyone moves on to their next activity.")
	s.logger.Info("all cycles reset", "elapsed", s.Story.Elapsed)
}
