package game

import "testing"

func TestTruncName(t *testing.T) {
	if got := truncName("short", 12); got != "short" {
		t.Errorf("truncName(short) = %q", got)
	}
	if got := truncName("averylongsnakename", 12); got != "averylongsna" {
		t.Errorf("truncName = %q, want 12 chars", got)
	}
	if got := truncName("exactlytwelve", 13); got != "exactlytwelve" {
		t.Errorf("truncName at limit = %q", got)
	}
}

func TestTextWidth(t *testing.T) {
	if got := textWidth("abcd"); got != 4*glyphW {
		t.Errorf("textWidth = %d, want %d", got, 4*glyphW)
	}
	if got := textWidth(""); got != 0 {
		t.Errorf("textWidth(empty) = %d", got)
	}
}

func TestHUDCollectsPushes(t *testing.T) {
	h := NewHUD()
	h.PushScore(42)
	h.PushLeaderboard([]LeaderEntry{{Name: "a", Score: 9}, {Name: "b", Score: 3}})
	h.PushGameOver(42)

	if h.Score != 42 {
		t.Errorf("Score = %d", h.Score)
	}
	if len(h.Board) != 2 || h.Board[0].Name != "a" {
		t.Errorf("Board = %v", h.Board)
	}
	if !h.Over || h.Final != 42 {
		t.Errorf("Over = %v Final = %d", h.Over, h.Final)
	}

	// A later shorter board replaces the old one outright.
	h.PushLeaderboard([]LeaderEntry{{Name: "c", Score: 1}})
	if len(h.Board) != 1 || h.Board[0].Name != "c" {
		t.Errorf("Board after replace = %v", h.Board)
	}

	h.Reset()
	if h.Score != 0 || len(h.Board) != 0 || h.Over || h.Final != 0 {
		t.Error("Reset must clear all widget state")
	}
}
