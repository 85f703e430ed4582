package game

import (
	"math"
	"testing"
)

// displayRecorder captures everything the engine pushes out.
type displayRecorder struct {
	scores []int
	boards [][]LeaderEntry
	overs  []int
}

func (d *displayRecorder) PushScore(score int) { d.scores = append(d.scores, score) }

func (d *displayRecorder) PushLeaderboard(entries []LeaderEntry) {
	d.boards = append(d.boards, append([]LeaderEntry(nil), entries...))
}

func (d *displayRecorder) PushGameOver(finalScore int) { d.overs = append(d.overs, finalScore) }

// newTestWorld builds an empty arena: no creatures, no orbs, fixed seed.
func newTestWorld(seed uint64, disp Display) *World {
	if disp == nil {
		disp = nopDisplay{}
	}
	return &World{
		rng:       NewRand(seed),
		grid:      newOrbGrid(OrbGridCell),
		disp:      disp,
		Particles: NewParticleSystem(MaxParticles, seed),
	}
}

func addTestCreature(w *World, name string, bot bool, at Point, heading float64) *Creature {
	c := NewCreature(name, name, bot, RGB{R: 200, G: 100, B: 50}, at, heading)
	w.Creatures = append(w.Creatures, c)
	return c
}

// fillFarOrbs stocks the arena to its cap with minimal orbs in one corner,
// far from any test creature. With the cap reached the refill roll never
// fires, which keeps orb-sensitive tests deterministic.
func fillFarOrbs(w *World) {
	for len(w.Orbs) < OrbCap {
		w.addOrb(newOrb(w.rng, -ArenaHalf+OrbMargin, -ArenaHalf+OrbMargin, OrbMinValue))
	}
}

// steerInput points the cursor far from the viewport centre along heading.
func steerInput(heading float64, boost bool) PlayerInput {
	return PlayerInput{
		PointerX: float64(WindowWidth)*0.5 + math.Cos(heading)*1000,
		PointerY: float64(WindowHeight)*0.5 + math.Sin(heading)*1000,
		ViewW:    WindowWidth,
		ViewH:    WindowHeight,
		Boost:    boost,
	}
}

func TestNewWorldComposition(t *testing.T) {
	w := NewWorld(42, "alice", 5, nil)
	if len(w.Creatures) != 6 {
		t.Fatalf("creature count = %d, want 6", len(w.Creatures))
	}
	p := w.Player()
	if p.Name != "alice" || p.Bot {
		t.Errorf("player = %q bot=%v, want alice, not a bot", p.Name, p.Bot)
	}
	ids := make(map[string]bool)
	for _, c := range w.Creatures[1:] {
		if !c.Bot {
			t.Errorf("opponent %q not flagged as bot", c.Name)
		}
		if c.Name == "" {
			t.Error("opponent has no name")
		}
	}
	for _, c := range w.Creatures {
		if ids[c.ID] {
			t.Fatalf("duplicate creature ID %q", c.ID)
		}
		ids[c.ID] = true
		h := c.Head()
		if math.Abs(h.X) > ArenaHalf-SpawnMargin || math.Abs(h.Y) > ArenaHalf-SpawnMargin {
			t.Errorf("%q spawned at (%v, %v), outside the spawn margin", c.Name, h.X, h.Y)
		}
		if len(c.Segments) != int(StartLen) {
			t.Errorf("%q spawned with %d segments", c.Name, len(c.Segments))
		}
	}
	if len(w.Orbs) != OrbCap {
		t.Errorf("orb count = %d, want %d", len(w.Orbs), OrbCap)
	}
	if w.grid.Len() != OrbCap {
		t.Errorf("grid count = %d, want %d", w.grid.Len(), OrbCap)
	}
	if w.Cam.X != p.Head().X || w.Cam.Y != p.Head().Y {
		t.Error("camera must start centred on the player")
	}
}

func TestStepWithoutPlayerIsNoop(t *testing.T) {
	w := newTestWorld(1, nil)
	w.Step(steerInput(0, false))
	if w.Tick() != 0 {
		t.Errorf("tick = %d, want 0", w.Tick())
	}
}

func TestStepEatsOrbUnderHead(t *testing.T) {
	rec := &displayRecorder{}
	w := newTestWorld(7, rec)
	p := addTestCreature(w, "p", false, Point{}, 0)
	fillFarOrbs(w)
	o := newOrb(w.rng, 4, 0, 4)
	w.addOrb(o)

	w.Step(steerInput(0, false))

	if o.Alive {
		t.Fatal("orb under the head must be consumed")
	}
	if p.Score != 4 {
		t.Errorf("score = %d, want 4", p.Score)
	}
	if p.TargetLen != StartLen+4/LengthPerValue {
		t.Errorf("TargetLen = %v, want %v", p.TargetLen, StartLen+4/LengthPerValue)
	}
	if len(p.Segments) != int(p.TargetLen) {
		t.Errorf("segments = %d, want %d right after eating", len(p.Segments), int(p.TargetLen))
	}
	if len(rec.scores) != 1 || rec.scores[0] != 4 {
		t.Errorf("pushed scores = %v, want [4]", rec.scores)
	}
	for _, kept := range w.Orbs {
		if kept == o {
			t.Fatal("eaten orb still listed")
		}
	}
	if len(w.Orbs) != OrbCap {
		t.Errorf("orb count = %d, want %d (no refill at cap)", len(w.Orbs), OrbCap)
	}
}

func TestScoresAccumulateAcrossOrbs(t *testing.T) {
	rec := &displayRecorder{}
	w := newTestWorld(7, rec)
	p := addTestCreature(w, "p", false, Point{}, 0)
	fillFarOrbs(w)
	w.addOrb(newOrb(w.rng, 4, 0, 4))
	w.addOrb(newOrb(w.rng, 28, 0, 2))

	for i := 0; i < 10; i++ {
		w.Step(steerInput(0, false))
	}

	if p.Score != 6 {
		t.Errorf("score = %d, want 6", p.Score)
	}
	if len(rec.scores) != 2 || rec.scores[0] != 4 || rec.scores[1] != 6 {
		t.Errorf("pushed scores = %v, want [4 6]", rec.scores)
	}
	if p.TargetLen != StartLen+3 {
		t.Errorf("TargetLen = %v, want %v", p.TargetLen, StartLen+3)
	}
}

func TestBoundaryKillsAndFreezesHead(t *testing.T) {
	rec := &displayRecorder{}
	w := newTestWorld(5, rec)
	p := addTestCreature(w, "p", false, Point{X: ArenaHalf - 10, Y: 0}, 0)
	fillFarOrbs(w)

	// 1990 -> 1994 -> 1998 -> dead (next would be 2002).
	for i := 0; i < 3; i++ {
		w.Step(steerInput(0, false))
	}

	if p.Alive {
		t.Fatal("player must die at the boundary")
	}
	if h := p.Head(); h.X != ArenaHalf-2 || h.Y != 0 {
		t.Errorf("head = (%v, %v), want frozen at (%v, 0)", h.X, h.Y, ArenaHalf-2)
	}
	if len(rec.overs) != 1 || rec.overs[0] != 0 {
		t.Errorf("game-over pushes = %v, want [0]", rec.overs)
	}

	carcass := 0
	for _, o := range w.Orbs {
		if o.Value == CarcassValue {
			carcass++
		}
	}
	// 10 segments sampled every CarcassStep: indices 0, 3, 6, 9.
	if carcass != 4 {
		t.Errorf("carcass orbs = %d, want 4", carcass)
	}

	// Extra ticks change nothing: no second push, camera frozen.
	camX, camY := w.Cam.X, w.Cam.Y
	for i := 0; i < 5; i++ {
		w.Step(steerInput(0, false))
	}
	if len(rec.overs) != 1 {
		t.Errorf("game-over pushed %d times, want once", len(rec.overs))
	}
	if w.Cam.X != camX || w.Cam.Y != camY {
		t.Error("camera moved after the player died")
	}
	if h := p.Head(); h.X != ArenaHalf-2 {
		t.Error("dead head moved")
	}
}

func TestHeadExactlyOnBoundarySurvives(t *testing.T) {
	w := newTestWorld(5, nil)
	p := addTestCreature(w, "p", false, Point{X: ArenaHalf - BaseSpeed, Y: 0}, 0)
	fillFarOrbs(w)

	w.Step(steerInput(0, false))
	if !p.Alive {
		t.Fatal("landing exactly on the boundary must not kill")
	}
	if h := p.Head(); h.X != ArenaHalf {
		t.Errorf("head.X = %v, want %v", h.X, ArenaHalf)
	}

	w.Step(steerInput(0, false))
	if p.Alive {
		t.Error("stepping past the boundary must kill")
	}
}

func TestCoincidentHeadsKillBoth(t *testing.T) {
	rec := &displayRecorder{}
	w := newTestWorld(3, rec)
	a := addTestCreature(w, "a", false, Point{}, 0)
	b := addTestCreature(w, "b", true, Point{X: 10, Y: 0}, math.Pi)

	w.collide()

	if a.Alive || b.Alive {
		t.Errorf("alive = %v/%v, want both dead on a head-to-head", a.Alive, b.Alive)
	}
	if len(rec.overs) != 1 || rec.overs[0] != 0 {
		t.Errorf("game-over pushes = %v, want [0]", rec.overs)
	}
	if len(w.respawns) != 1 {
		t.Errorf("respawn queue = %d, want 1 (the opponent)", len(w.respawns))
	}
	carcass := 0
	for _, o := range w.Orbs {
		if o.Value == CarcassValue {
			carcass++
		}
	}
	if carcass != 8 {
		t.Errorf("carcass orbs = %d, want 8 (two bodies)", carcass)
	}
}

func TestRunningIntoBodyKillsRunnerOnly(t *testing.T) {
	w := newTestWorld(3, nil)
	a := addTestCreature(w, "a", false, Point{}, 0)
	// b's body crosses a's head at x=8: segments run along +y through (8, -20).
	b := addTestCreature(w, "b", true, Point{X: 8, Y: -20}, -math.Pi/2)

	w.collide()

	if a.Alive {
		t.Error("runner must die on another body")
	}
	if !b.Alive {
		t.Error("body owner must survive")
	}
}

func TestSelfCollisionPastSkipWindow(t *testing.T) {
	w := newTestWorld(3, nil)
	c := addTestCreature(w, "c", false, Point{}, 0)
	segs := make([]Point, 10)
	segs[0] = Point{}
	for i := 1; i < 10; i++ {
		segs[i] = Point{X: 1000 + float64(i), Y: 1000}
	}
	segs[8] = Point{X: 5, Y: 0} // sampled: past SelfSkip, even index
	c.Segments = segs
	c.TargetLen = 10

	w.collide()
	if c.Alive {
		t.Error("looped-back tail segment must kill")
	}
}

func TestSelfSkipWindowIsImmune(t *testing.T) {
	w := newTestWorld(3, nil)
	c := addTestCreature(w, "c", false, Point{}, 0)
	segs := make([]Point, 10)
	segs[0] = Point{}
	for i := 1; i < SelfSkip; i++ {
		segs[i] = Point{X: float64(i), Y: 0} // all lethal range, all skipped
	}
	segs[8] = Point{X: 1000, Y: 1000}
	segs[9] = Point{X: 1000, Y: 1000}
	c.Segments = segs
	c.TargetLen = 10

	w.collide()
	if !c.Alive {
		t.Error("segments inside the self-skip window must not kill")
	}
}

func TestCollisionSamplingSkipsOddIndices(t *testing.T) {
	w := newTestWorld(3, nil)
	c := addTestCreature(w, "c", false, Point{}, 0)
	segs := make([]Point, 10)
	segs[0] = Point{}
	for i := 1; i < 10; i++ {
		segs[i] = Point{X: 1000 + float64(i), Y: 1000}
	}
	segs[9] = Point{X: 1, Y: 0} // within lethal range but never sampled
	c.Segments = segs
	c.TargetLen = 10

	w.collide()
	if !c.Alive {
		t.Error("unsampled segment index must not kill")
	}
}

func TestStraightCreatureNeverSelfCollides(t *testing.T) {
	w := newTestWorld(3, nil)
	c := addTestCreature(w, "c", false, Point{}, 0)
	w.collide()
	if !c.Alive {
		t.Error("a straight body must not self-collide")
	}
}

func TestFirstEaterWinsContestedOrb(t *testing.T) {
	w := newTestWorld(13, nil)
	a := addTestCreature(w, "a", false, Point{}, math.Pi/2)
	b := addTestCreature(w, "b", true, Point{X: 12, Y: 0}, math.Pi/2)
	o := newOrb(w.rng, 6, 0, 4)
	w.addOrb(o)

	w.consume()

	if a.Score != 4 || b.Score != 0 {
		t.Errorf("scores = %d/%d, want the earlier creature to eat", a.Score, b.Score)
	}
	if a.TargetLen != StartLen+2 || b.TargetLen != StartLen {
		t.Errorf("lengths = %v/%v", a.TargetLen, b.TargetLen)
	}
	if o.Alive {
		t.Error("contested orb must be gone")
	}
}

func TestBotEatingPushesNoScore(t *testing.T) {
	rec := &displayRecorder{}
	w := newTestWorld(13, rec)
	addTestCreature(w, "p", false, Point{X: 900, Y: 900}, 0)
	bot := addTestCreature(w, "b", true, Point{}, 0)
	w.addOrb(newOrb(w.rng, 0, 0, 4))

	w.consume()

	if bot.Score != 4 {
		t.Errorf("bot score = %d, want 4", bot.Score)
	}
	if len(rec.scores) != 0 {
		t.Errorf("bot consumption pushed scores %v", rec.scores)
	}
}

func TestRefillTopsUpTowardCap(t *testing.T) {
	w := newTestWorld(31, nil)
	addTestCreature(w, "p", false, Point{X: -1600, Y: 0}, 0)

	for i := 0; i < 300; i++ {
		w.Step(steerInput(0, false))
	}
	if len(w.Orbs) == 0 {
		t.Fatal("refill never fired in 300 ticks")
	}
	if len(w.Orbs) > OrbCap {
		t.Errorf("orb count = %d, beyond the cap", len(w.Orbs))
	}
	for _, o := range w.Orbs {
		if math.Abs(o.X) > ArenaHalf-OrbMargin || math.Abs(o.Y) > ArenaHalf-OrbMargin {
			t.Fatalf("refilled orb at (%v, %v) outside the margin", o.X, o.Y)
		}
	}
}

func TestRefillStopsAtCap(t *testing.T) {
	w := newTestWorld(31, nil)
	addTestCreature(w, "p", false, Point{X: -1600, Y: 0}, 0)
	fillFarOrbs(w)

	for i := 0; i < 50; i++ {
		w.Step(steerInput(0, false))
		if len(w.Orbs) != OrbCap {
			t.Fatalf("orb count = %d at tick %d, want steady %d", len(w.Orbs), i+1, OrbCap)
		}
	}
}

func TestBoostMovesDoubleAndBleedsLength(t *testing.T) {
	rec := &displayRecorder{}
	w := newTestWorld(11, rec)
	p := addTestCreature(w, "p", false, Point{}, 0)
	fillFarOrbs(w)
	p.TargetLen = 20
	p.clampLen()

	for i := 0; i < 150; i++ {
		w.Step(steerInput(0, true))
	}

	if h := p.Head(); h.X != 150*BoostSpeed || h.Y != 0 {
		t.Errorf("head = (%v, %v), want (%v, 0)", h.X, h.Y, 150*BoostSpeed)
	}
	want := 20 - 150*BoostShrink
	if math.Abs(p.TargetLen-want) > 1e-9 {
		t.Errorf("TargetLen = %v, want %v", p.TargetLen, want)
	}
	if len(p.Segments) != int(p.TargetLen) {
		t.Errorf("segments = %d, want %d", len(p.Segments), int(p.TargetLen))
	}
	if !p.Boosting {
		t.Error("player should still be boosting above the floor")
	}

	sheds := 0
	for _, o := range w.Orbs {
		if o.Value == ShedOrbValue {
			sheds++
		}
	}
	if sheds == 0 {
		t.Error("boosting for 150 ticks must shed at least one orb")
	}
	if len(w.Orbs) != OrbCap+sheds {
		t.Errorf("orb count = %d, want cap plus %d sheds", len(w.Orbs), sheds)
	}
	if p.Score != 0 || len(rec.scores) != 0 {
		t.Error("shedding must not touch the score")
	}
}

func TestBoostDeniedAtLengthFloor(t *testing.T) {
	w := newTestWorld(11, nil)
	p := addTestCreature(w, "p", false, Point{}, 0)
	fillFarOrbs(w)

	for i := 0; i < 5; i++ {
		w.Step(steerInput(0, true))
	}

	if p.Boosting {
		t.Error("boost must not engage at the starting length")
	}
	if h := p.Head(); h.X != 5*BaseSpeed {
		t.Errorf("head.X = %v, want base speed only", h.X)
	}
	if p.TargetLen != StartLen {
		t.Errorf("TargetLen = %v, want unchanged %v", p.TargetLen, StartLen)
	}
}

func TestBotRespawnKeepsIdentity(t *testing.T) {
	w := newTestWorld(23, nil)
	addTestCreature(w, "p", false, Point{X: -1600, Y: 0}, 0)
	bot := addTestCreature(w, "noodle", true, Point{X: 500, Y: 500}, 0)

	w.kill(bot)
	if bot.Alive {
		t.Fatal("killed bot still alive")
	}
	if len(w.respawns) != 1 {
		t.Fatalf("respawn queue = %d, want 1", len(w.respawns))
	}

	for i := 0; i < RespawnDelayTicks-1; i++ {
		w.Step(steerInput(0, false))
	}
	if w.Creatures[1] != bot || w.Creatures[1].Alive {
		t.Fatal("bot replaced before its delay elapsed")
	}

	w.Step(steerInput(0, false))
	nb := w.Creatures[1]
	if nb == bot {
		t.Fatal("bot not replaced when due")
	}
	if nb.ID != bot.ID || nb.Name != bot.Name || nb.Col != bot.Col {
		t.Error("respawn must keep identity")
	}
	if !nb.Alive || nb.Score != 0 || nb.TargetLen != StartLen {
		t.Errorf("respawn state: alive=%v score=%d len=%v", nb.Alive, nb.Score, nb.TargetLen)
	}
	if len(nb.Segments) != int(StartLen) {
		t.Errorf("respawn segments = %d", len(nb.Segments))
	}
	if len(w.respawns) != 0 {
		t.Error("respawn queue not drained")
	}
}

func TestPlayerNeverRespawns(t *testing.T) {
	rec := &displayRecorder{}
	w := newTestWorld(23, rec)
	p := addTestCreature(w, "p", false, Point{}, 0)

	w.kill(p)
	for i := 0; i < 2*RespawnDelayTicks; i++ {
		w.Step(steerInput(0, false))
	}

	if w.Creatures[0] != p || p.Alive {
		t.Error("player slot must stay dead")
	}
	if len(rec.overs) != 1 {
		t.Errorf("game-over pushed %d times, want once", len(rec.overs))
	}
	if len(w.respawns) != 0 {
		t.Error("player death must not queue a respawn")
	}
}

func TestLeaderboardRanksLivingByScore(t *testing.T) {
	w := newTestWorld(1, nil)
	names := []string{"n0", "n1", "n2", "n3", "n4", "n5", "n6"}
	scores := []int{5, 9, 9, 2, 7, 0, 3}
	for i, n := range names {
		c := addTestCreature(w, n, i > 0, Point{X: float64(i) * 300, Y: 900}, 0)
		c.Score = scores[i]
	}
	w.Creatures[4].Alive = false // the 7-point creature is out

	board := w.Leaderboard()
	wantNames := []string{"n1", "n2", "n0", "n6", "n3"}
	wantScores := []int{9, 9, 5, 3, 2}
	if len(board) != LeaderboardSize {
		t.Fatalf("board size = %d, want %d", len(board), LeaderboardSize)
	}
	for i := range board {
		if board[i].Name != wantNames[i] || board[i].Score != wantScores[i] {
			t.Errorf("board[%d] = %+v, want %s/%d", i, board[i], wantNames[i], wantScores[i])
		}
	}
}

func TestWorldWalkInvariants(t *testing.T) {
	rec := &displayRecorder{}
	w := NewWorld(99, "walker", 6, rec)

	for i := 0; i < 400; i++ {
		w.Step(steerInput(float64(i)*0.05, i%4 == 0))
		if w.Tick() != uint64(i+1) {
			t.Fatalf("tick = %d after %d steps", w.Tick(), i+1)
		}
		for _, c := range w.Creatures {
			if !c.Alive {
				continue
			}
			want := int(c.TargetLen)
			if want < 1 {
				want = 1
			}
			if len(c.Segments) != want {
				t.Fatalf("tick %d: %q has %d segments, want %d", i+1, c.Name, len(c.Segments), want)
			}
			h := c.Head()
			if math.Abs(h.X) > ArenaHalf || math.Abs(h.Y) > ArenaHalf {
				t.Fatalf("tick %d: %q head outside the arena: (%v, %v)", i+1, c.Name, h.X, h.Y)
			}
			if c.Heading <= -math.Pi || c.Heading > math.Pi {
				t.Fatalf("tick %d: %q heading %v out of range", i+1, c.Name, c.Heading)
			}
		}
	}

	if len(rec.boards) == 0 {
		t.Error("leaderboard never published over 400 ticks")
	}
	for _, b := range rec.boards {
		if len(b) > LeaderboardSize {
			t.Errorf("published board has %d rows", len(b))
		}
	}
	if len(rec.overs) > 1 {
		t.Errorf("game-over pushed %d times", len(rec.overs))
	}
	if len(w.Orbs) == 0 {
		t.Error("arena ran out of orbs")
	}
}
