// Package story holds the narrative state of a session and the
// constraint rules that override NPC destinations based on it.
package story

import "github.com/JimenezCarmona8063/MYXITECH/pkg/sim"

// Schedule constants, in simulated seconds.
const (
	DefaultClassStart = 12.0
	DefaultTardyGrace = 5.0

	// MessageTTL is how long a transient message stays on screen.
	MessageTTL = 4.0
)

// Message is a transient user-facing notification. Seq increases
// monotonically per session so the frontend can tell new messages from
// ones it has already shown.
type Message struct {
	Seq  int     `json:"seq"`
	Text string  `json:"text"`
	TTL  float64 `json:"ttl"`
}

// State is the process-wide narrative state. There is exactly one per
// session, owned by the simulation driver and passed explicitly into
// the director each frame.
type State struct {
	Elapsed    float64 `json:"elapsed"`
	ClassStart float64 `json:"class_start"`
	TardyGrace float64 `json:"tardy_grace"`

	ClassInSession bool `json:"class_in_session"`
	ClassCancelled bool `json:"class_cancelled"`
	CafeteriaOpen  bool `json:"cafeteria_open"`

	// One-shot flags for the player-student storyline.
	StudentEnteredClass bool `json:"student_entered_class"`
	StudentReported     bool `json:"student_reported"`

	PlayerRole sim.Role `json:"player_role"`

	Messages []Message `json:"messages,omitempty"`
	LastSeq  int       `json:"last_seq"`
}

// NewState returns the opening narrative state: nothing has happened
// yet and the cafeteria is open.
func NewState() *State {
	return &State{
		ClassStart:    DefaultClassStart,
		TardyGrace:    DefaultTardyGrace,
		CafeteriaOpen: true,
	}
}

// Tick advances story time by one frame and expires transient messages.
func (s *State) Tick(dt float64) {
	s.Elapsed += dt

	if len(s.Messages) == 0 {
		return
	}
	alive := s.Messages[:0]
	for _, m := range s.Messages {
		m.TTL -= dt
		if m.TTL > 0 {
			alive = append(alive, m)
		}
	}
	s.Messages = alive
}

// Post queues a transient message for display.
func (s *State) Post(text string) {
	s.LastSeq++
	s.Messages = append(s.Messages, Message{Seq: s.LastSeq, Text: text, TTL: MessageTTL})
}
