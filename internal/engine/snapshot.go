package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/JimenezCarmona8063/MYXITECH/pkg/sim"
	"github.com/JimenezCarmona8063/MYXITECH/pkg/story"
)

// SessionSnapshot is a full capture of a running session: the story
// state plus every character's mutable tuple. Restoring it into a fresh
// simulation and replaying the same dt sequence reproduces the original
// trajectories bit for bit.
type SessionSnapshot struct {
	ID         uuid.UUID               `json:"id"`
	SavedAt    time.Time               `json:"saved_at"`
	PlayerName string                  `json:"player_name,omitempty"`
	Story      story.State             `json:"story"`
	Characters map[string]sim.Snapshot `json:"characters"`
}

// Snapshot captures the session under the given id.
func (s *Simulation) Snapshot(id uuid.UUID) *SessionSnapshot {
	snap := &SessionSnapshot{
		ID:         id,
		SavedAt:    time.Now(),
		Story:      *s.Story,
		Characters: make(map[string]sim.Snapshot, len(s.order)),
	}
	snap.Story.Messages = append([]story.Message(nil), s.Story.Messages...)
	if s.player != nil {
		snap.PlayerName = s.player.Name
	}
	for _, name := range s.order {
		snap.Characters[name] = s.characters[name].Snapshot()
	}
	return snap
}

// RestoreSnapshot overwrites the session from a snapshot. The roster is
// static, so every snapshot character must exist in the current cast.
func (s *Simulation) RestoreSnapshot(snap *SessionSnapshot) error {
	for name := range snap.Characters {
		if _, ok := s.characters[name]; !ok {
			return fmt.Errorf("snapshot character %q not in roster", name)
		}
	}

	*s.Story = snap.Story
	s.Story.Messages = append([]story.Message(nil), snap.Story.Messages...)

	for name, cs := range snap.Characters {
		s.characters[name].Restore(cs)
	}

	s.player = nil
	if snap.PlayerName != "" {
		c, ok := s.characters[snap.PlayerName]
		if !ok {
			return fmt.Errorf("snapshot player %q not in roster", snap.PlayerName)
		}
		s.player = c
	}
	return nil
}
