package game

// LeaderEntry is one published leaderboard row.
type LeaderEntry struct {
	Name  string
	Score int
}

// Display receives the engine's outbound pushes. The HUD implements it for
// the shell; tests substitute a recorder. The engine never reads back.
type Display interface {
	// PushScore reports the player's score after it changed.
	PushScore(score int)
	// PushLeaderboard replaces the visible ranking.
	PushLeaderboard(entries []LeaderEntry)
	// PushGameOver signals session end with the final score. Sent at most
	// once per world.
	PushGameOver(finalScore int)
}

// nopDisplay swallows pushes when no shell is attached.
type nopDisplay struct{}

func (nopDisplay) PushScore(int)                 {}
func (nopDisplay) PushLeaderboard([]LeaderEntry) {}
func (nopDisplay) PushGameOver(int)              {}
