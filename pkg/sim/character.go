// Package sim implements the character agent: a cyclic activity schedule
// driven by a seek/wait state machine that advances once per frame.
package sim

import (
	"errors"
	"fmt"
	"math"

	"github.com/JimenezCarmona8063/MYXITECH/pkg/campus"
	"github.com/JimenezCarmona8063/MYXITECH/pkg/geom"
)

// Phase is the movement state of a character.
type Phase uint8

const (
	// PhaseSeeking means a target is (or is about to be) set and the
	// character is walking toward it.
	PhaseSeeking Phase = iota
	// PhaseWaiting means the character has arrived and is accumulating
	// wait time toward the current activity's duration.
	PhaseWaiting
)

// Character is a person on campus. NPCs run their cycle autonomously;
// the player character is moved by input and never updated by the
// simulation loop. All fields are mutated only by the character's own
// Update, except Target and WaitTimer which the story layer may
// overwrite through GoTo.
type Character struct {
	Name  string  `json:"name"`
	Role  Role    `json:"role"`
	Tags  Tags    `json:"tags"`
	Color string  `json:"color"`
	Speed float64 `json:"speed"`

	Cycle []Activity `json:"cycle"`

	Position     geom.Vec        `json:"position"`
	CurrentIndex int             `json:"current_index"`
	WaitTimer    float64         `json:"wait_timer"`
	Target       *geom.Vec       `json:"target,omitempty"`
	Status       map[string]bool `json:"status"`
	Phase        Phase           `json:"phase"`
}

// New constructs a character at the named zone's anchor and validates
// its cycle. Every zone referenced by the cycle must exist: an unknown
// name is a configuration error and construction fails before the
// simulation loop ever runs.
func New(name string, role Role, tags Tags, color string, speed float64, cycle []Activity, startZone string, reg *campus.Registry) (*Character, error) {
	var errs []error
	if speed <= 0 {
		errs = append(errs, fmt.Errorf("character %q: speed must be positive, got %v", name, speed))
	}
	for i, act := range cycle {
		if _, err := reg.Zone(act.Zone); err != nil {
			errs = append(errs, fmt.Errorf("character %q: activity %d (%s): %w", name, i, act.Label, err))
		}
		if act.Duration < 0 {
			errs = append(errs, fmt.Errorf("character %q: activity %d (%s): negative duration", name, i, act.Label))
		}
	}
	start, err := reg.Anchor(startZone)
	if err != nil {
		errs = append(errs, fmt.Errorf("character %q: start zone: %w", name, err))
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	c := &Character{
		Name:     name,
		Role:     role,
		Tags:     tags,
		Color:    color,
		Speed:    speed,
		Cycle:    cycle,
		Position: start,
		Status:   make(map[string]bool),
	}
	c.ResetStatus()
	return c, nil
}

// CurrentActivity returns the activity at the cycle pointer, or nil for
// an empty cycle.
func (c *Character) CurrentActivity() *Activity {
	if len(c.Cycle) == 0 {
		return nil
	}
	return &c.Cycle[c.CurrentIndex%len(c.Cycle)]
}

// ResetStatus restarts the whole cycle: every distinct status key back
// to false, pointer to the first activity, timer zeroed, target
// cleared. Calling it twice is the same as calling it once.
func (c *Character) ResetStatus() {
	for _, act := range c.Cycle {
		c.Status[act.StatusKey] = false
	}
	c.CurrentIndex = 0
	c.WaitTimer = 0
	c.Target = nil
	c.Phase = PhaseSeeking
}

// GoTo force-redirects the character to the named zone's anchor. The
// cycle pointer and completion map are deliberately untouched: when the
// character later arrives and waits out the current activity's
// duration, that activity is marked complete even though the character
// went somewhere else. Downstream story logic relies on this, so it is
// preserved rather than fixed.
func (c *Character) GoTo(zoneName string, reg *campus.Registry) error {
	anchor, err := reg.Anchor(zoneName)
	if err != nil {
		return fmt.Errorf("redirect %q: %w", c.Name, err)
	}
	c.Target = &anchor
	c.WaitTimer = 0
	c.Phase = PhaseSeeking
	return nil
}

// Update advances the character by one frame. Seeking characters walk
// toward the target and may arrive; waiting characters accumulate wait
// time and may complete the current activity.
func (c *Character) Update(dt float64, reg *campus.Registry) {
	if len(c.Cycle) == 0 {
		return
	}

	switch c.Phase {
	case PhaseSeeking:
		if c.Target == nil {
			c.beginActivity(reg)
		}
		if c.Target == nil {
			return
		}
		c.moveTowardTarget(dt)
		// Arrival uses a one-frame lookahead tolerance, not exact zero.
		// A tighter comparison makes characters overshoot and oscillate
		// around the anchor at low frame rates.
		if geom.Dist(c.Position, *c.Target) <= c.Speed*dt {
			c.Position = *c.Target
			c.Target = nil
			c.Phase = PhaseWaiting
			c.accrueWait(dt)
		}
	case PhaseWaiting:
		c.accrueWait(dt)
	}
}

// beginActivity points the character at the current activity's zone and
// makes sure its status key exists in the completion map.
func (c *Character) beginActivity(reg *campus.Registry) {
	act := c.CurrentActivity()
	anchor, err := reg.Anchor(act.Zone)
	if err != nil {
		// Cycle zones are validated at construction; an unknown zone
		// here means the activity was mutated after setup.
		return
	}
	c.Target = &anchor
	if _, ok := c.Status[act.StatusKey]; !ok {
		c.Status[act.StatusKey] = false
	}
}

// accrueWait adds one frame of wait time and completes the current
// activity once the duration is reached.
func (c *Character) accrueWait(dt float64) {
	c.WaitTimer += dt
	act := c.CurrentActivity()
	if c.WaitTimer >= act.Duration {
		c.Status[act.StatusKey] = true
		c.CurrentIndex = (c.CurrentIndex + 1) % len(c.Cycle)
		c.WaitTimer = 0
		c.Phase = PhaseSeeking
	}
}

// moveTowardTarget steps straight toward the target by at most
// speed*dt, guarding the zero-distance case.
func (c *Character) moveTowardTarget(dt float64) {
	dx := c.Target.X - c.Position.X
	dy := c.Target.Y - c.Position.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return
	}
	step := math.Min(c.Speed*dt, dist)
	c.Position.X += dx / dist * step
	c.Position.Y += dy / dist * step
}

// Nudge moves the character by a normalized directional intent, used
// for player input. The position is clamped to the world bounds.
func (c *Character) Nudge(dx, dy, dt float64) {
	if dx == 0 && dy == 0 {
		return
	}
	length := math.Hypot(dx, dy)
	dx /= length
	dy /= length
	c.Position.X = clamp(c.Position.X+dx*c.Speed*dt, 20, campus.WorldWidth-20)
	c.Position.Y = clamp(c.Position.Y+dy*c.Speed*dt, 20, campus.WorldHeight-20)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
