package sim

import "github.com/JimenezCarmona8063/MYXITECH/pkg/geom"

// Snapshot captures the mutable tuple of a character. Restoring a
// snapshot and replaying the same dt sequence reproduces the original
// trajectory bit for bit; the static fields (cycle, speed, tags) come
// from the roster and are not part of the snapshot.
type Snapshot struct {
	Position     geom.Vec        `json:"position"`
	CurrentIndex int             `json:"current_index"`
	WaitTimer    float64         `json:"wait_timer"`
	Target       *geom.Vec       `json:"target,omitempty"`
	Status       map[string]bool `json:"status"`
	Phase        Phase           `json:"phase"`
}

// Snapshot returns a deep copy of the character's mutable state.
func (c *Character) Snapshot() Snapshot {
	status := make(map[string]bool, len(c.Status))
	for k, v := range c.Status {
		status[k] = v
	}
	var target *geom.Vec
	if c.Target != nil {
		t := *c.Target
		target = &t
	}
	return Snapshot{
		Position:     c.Position,
		CurrentIndex: c.CurrentIndex,
		WaitTimer:    c.WaitTimer,
		Target:       target,
		Status:       status,
		Phase:        c.Phase,
	}
}

// Restore overwrites the character's mutable state from a snapshot.
func (c *Character) Restore(s Snapshot) {
	c.Position = s.Position
	c.CurrentIndex = s.CurrentIndex
	c.WaitTimer = s.WaitTimer
	c.Target = nil
	if s.Target != nil {
		t := *s.Target
		c.Target = &t
	}
	c.Status = make(map[string]bool, len(s.Status))
	for k, v := range s.Status {
		c.Status[k] = v
	}
	c.Phase = s.Phase
}
