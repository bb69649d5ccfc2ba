package story

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewState(t *testing.T) {
	s := NewState()
	assert.Equal(t, DefaultClassStart, s.ClassStart)
	assert.Equal(t, DefaultTardyGrace, s.TardyGrace)
	assert.True(t, s.CafeteriaOpen, "cafeteria opens with the day")
	assert.False(t, s.ClassInSession)
	assert.False(t, s.ClassCancelled)
	assert.Zero(t, s.Elapsed)
	assert.Empty(t, s.Messages)
}

func TestTickAdvancesClock(t *testing.T) {
	s := NewState()
	s.Tick(0.25)
	s.Tick(0.25)
	assert.Equal(t, 0.5, s.Elapsed)
}

func TestPostAssignsSequence(t *testing.T) {
	s := NewState()
	s.Post("first")
	s.Post("second")

	require.Len(t, s.Messages, 2)
	assert.Equal(t, 1, s.Messages[0].Seq)
	assert.Equal(t, 2, s.Messages[1].Seq)
	assert.Equal(t, MessageTTL, s.Messages[0].TTL)

	// Sequence numbers survive message expiry.
	s.Tick(MessageTTL + 1)
	require.Empty(t, s.Messages)
	s.Post("third")
	assert.Equal(t, 3, s.Messages[0].Seq)
}

func TestTickExpiresMessages(t *testing.T) {
	s := NewState()
	s.Post("short lived")
	s.Tick(1)
	s.Post("fresh")

	require.Len(t, s.Messages, 2)
	assert.InDelta(t, MessageTTL-1, s.Messages[0].TTL, 1e-9)

	// The older message dies first; the newer one survives.
	s.Tick(MessageTTL - 1)
	require.Len(t, s.Messages, 1)
	assert.Equal(t, "fresh", s.Messages[0].Text)

	s.Tick(10)
	assert.Empty(t, s.Messages)
}
