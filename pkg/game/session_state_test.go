package game

import (
	"testing"
	"time"
)

func TestSessionStateReset(t *testing.T) {
	s := NewSessionState()
	first := s.ID

	if s.HasStarted() {
		t.Error("new session should not be started")
	}

	s.SuccessfulDrops = 4
	s.IsGameActive = true
	s.StartTime = time.Now()
	s.Won = true

	s.Reset()
	if s.SuccessfulDrops != 0 || s.IsGameActive || s.HasStarted() || s.Won {
		t.Errorf("Reset left state behind: %+v", s)
	}
	if s.ID == first {
		t.Error("Reset should assign a new session ID")
	}
}
