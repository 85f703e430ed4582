package game

type GameState int

const (
	StateMenu     GameState = iota
	StatePlaying            // main gameplay
	StateGameOver           // player creature died
)

// GameSession drives the menu → playing → game-over flow. Every run gets a
// fresh world from a per-run mixed seed, so restarting after a game over
// discards all prior entity state.
type GameSession struct {
	State GameState

	seed uint64
	runs uint64
}

func NewGameSession(seed uint64) *GameSession {
	return &GameSession{State: StateMenu, seed: seed}
}

// Start builds a new world and enters gameplay.
func (s *GameSession) Start(playerName string, bots int, disp Display) *World {
	s.runs++
	runSeed := splitmix64(s.seed ^ s.runs*0x9E3779B185EBCA87)
	s.State = StatePlaying
	return NewWorld(runSeed, playerName, bots, disp)
}

// End records the player's death. Entity state stays around for the
// game-over backdrop; the next Start replaces it wholesale.
func (s *GameSession) End() {
	s.State = StateGameOver
}

// Stop returns to the menu without a game-over signal.
func (s *GameSession) Stop() {
	s.State = StateMenu
}
