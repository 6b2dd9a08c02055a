// Package game implements the screen controller's state machine: a linear
// walk through the level catalog that accumulates a score and ends in one
// of two endings.
package game

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-textgame/internal/story"
)

// DeathThreshold is the highest final score that still ends in death.
const DeathThreshold = 2

// Status is the coarse state of a session.
type Status string

const (
	StatusPlaying  Status = "playing"
	StatusFinished Status = "finished"
)

// Ending is one of the two terminal screens.
type Ending string

const (
	EndingNone     Ending = ""
	EndingDied     Ending = "died"
	EndingSurvived Ending = "survived"
)

// EndingFor returns the ending a final score leads to.
func EndingFor(score int) Ending {
	if score <= DeathThreshold {
		return EndingDied
	}
	return EndingSurvived
}

// Session is the mutable state of one play-through.
// It is plain data; Advance is the only function that moves it forward.
type Session struct {
	ID            string         `json:"id"`
	LevelIndex    int            `json:"level_index"`
	Score         int            `json:"score"`
	CursorVisible bool           `json:"cursor_visible"`
	Choices       []story.Choice `json:"choices"`
}

// NewSession returns a fresh session at level 0 with a new ID.
func NewSession() Session {
	return Session{
		ID:            uuid.NewString(),
		CursorVisible: true,
	}
}

// Status returns Playing while a level remains, Finished afterwards.
func (s Session) Status(levelCount int) Status {
	if s.LevelIndex >= levelCount {
		return StatusFinished
	}
	return StatusPlaying
}

// Ending returns the ending for a finished session, EndingNone otherwise.
func (s Session) Ending(levelCount int) Ending {
	if s.Status(levelCount) != StatusFinished {
		return EndingNone
	}
	return EndingFor(s.Score)
}

// Advance applies choice c to the current level and moves to the next one.
// It returns the new session and true, or the unchanged session and false
// when the session is already finished or c is not a valid choice.
// The input session is never modified.
func Advance(s Session, levels story.Catalog, c story.Choice) (Session, bool) {
	if !c.Valid() {
		return s, false
	}
	lvl, ok := levels.Level(s.LevelIndex)
	if !ok {
		return s, false
	}

	next := s
	next.Score += lvl.Option(c).Score
	next.LevelIndex++
	next.Choices = append(append([]story.Choice(nil), s.Choices...), c)
	return next, true
}

// ToggleCursor flips the cosmetic cursor flag.
func (s Session) ToggleCursor() Session {
	s.CursorVisible = !s.CursorVisible
	return s
}
