package game

import (
	"math"
	"sort"

	"github.com/google/uuid"
)

// PlayerInput is one tick's sampled control state. The player's head sits
// at the viewport centre, so the desired heading is the angle from the
// centre to the pointer.
type PlayerInput struct {
	PointerX, PointerY float64 // viewport pixels
	ViewW, ViewH       int
	Boost              bool
}

// pendingRespawn re-creates a dead opponent with its old identity once due.
// The queue dies with the world, so a stale entry can never leak into a
// reconstructed session.
type pendingRespawn struct {
	due  uint64
	id   string
	name string
	col  RGB
}

// World owns every entity of one play session and advances them one tick
// at a time. Starting a new session always builds a fresh World.
type World struct {
	Creatures []*Creature // index 0 is the player; order breaks collision ties
	Orbs      []*Orb      // live orbs only, compacted every tick
	Particles *ParticleSystem
	Cam       Camera

	rng      *Rand
	grid     *orbGrid
	disp     Display
	tick     uint64
	respawns []pendingRespawn
	overSent bool

	aliveBuf []bool
	eatBuf   []*Orb
}

// NewWorld seeds a full session: the player, the requested number of
// opponents, and an arena stocked to the orb cap.
func NewWorld(seed uint64, playerName string, bots int, disp Display) *World {
	if disp == nil {
		disp = nopDisplay{}
	}
	w := &World{
		rng:       NewRand(seed),
		grid:      newOrbGrid(OrbGridCell),
		disp:      disp,
		Particles: NewParticleSystem(MaxParticles, splitmix64(seed^0x9A27)),
	}

	p := NewCreature(uuid.New().String(), playerName, false, creaturePalette[0],
		w.randomSpawn(), w.rng.RangeF(-math.Pi, math.Pi))
	w.Creatures = append(w.Creatures, p)

	for i := 0; i < bots; i++ {
		b := NewCreature(uuid.New().String(), botNames[i%len(botNames)], true,
			creaturePalette[(i+1)%len(creaturePalette)],
			w.randomSpawn(), w.rng.RangeF(-math.Pi, math.Pi))
		w.Creatures = append(w.Creatures, b)
	}

	for len(w.Orbs) < OrbCap {
		w.addOrb(randomOrb(w.rng))
	}

	w.Cam.SnapTo(p.Head())
	return w
}

func (w *World) randomSpawn() Point {
	return Point{
		X: w.rng.RangeF(-ArenaHalf+SpawnMargin, ArenaHalf-SpawnMargin),
		Y: w.rng.RangeF(-ArenaHalf+SpawnMargin, ArenaHalf-SpawnMargin),
	}
}

// Player returns the player creature.
func (w *World) Player() *Creature {
	if len(w.Creatures) == 0 {
		return nil
	}
	return w.Creatures[0]
}

// PlayerAlive reports whether the player creature is still in play.
func (w *World) PlayerAlive() bool {
	p := w.Player()
	return p != nil && p.Alive
}

// Tick returns the number of completed simulation steps.
func (w *World) Tick() uint64 { return w.tick }

// Step advances the whole world by one tick. Stage order is fixed:
// steering, motion, consumption, collision, particles, camera, ranking.
func (w *World) Step(in PlayerInput) {
	if w.Player() == nil {
		return
	}
	w.tick++

	w.steerPlayer(in)
	w.steerBots()
	w.integrate()
	w.consume()
	w.collide()
	w.Particles.Update()
	w.followPlayer()
	w.publishLeaderboard()
	w.processRespawns()
}

func (w *World) steerPlayer(in PlayerInput) {
	p := w.Player()
	if !p.Alive {
		return
	}
	desired := math.Atan2(in.PointerY-float64(in.ViewH)*0.5, in.PointerX-float64(in.ViewW)*0.5)
	p.Steer(desired)
	// Boost is allowed only above the length floor; the floor also keeps
	// an active boost from shrinking a creature out of existence.
	p.Boosting = in.Boost && p.TargetLen > StartLen
}

func (w *World) steerBots() {
	for _, c := range w.Creatures {
		if c.Bot && c.Alive {
			steerBot(c, w.rng)
		}
	}
}

// integrate moves every living creature one step along its heading,
// applying boundary death and the boost length bleed.
func (w *World) integrate() {
	for _, c := range w.Creatures {
		if !c.Alive {
			continue
		}
		next := translate(c.Head(), c.Heading, c.Speed())
		if math.Abs(next.X) > ArenaHalf || math.Abs(next.Y) > ArenaHalf {
			w.kill(c)
			continue
		}
		c.pushHead(next)
		if c.Boosting && c.TargetLen > StartLen {
			c.TargetLen -= BoostShrink
			if w.rng.Float64() < BoostDropChance {
				t := c.Tail()
				w.addOrb(newOrb(w.rng,
					t.X+w.rng.RangeF(-ShedJitter, ShedJitter),
					t.Y+w.rng.RangeF(-ShedJitter, ShedJitter),
					ShedOrbValue))
				w.Particles.SpawnBurst(t, c.Col, 2)
			}
		}
		c.clampLen()
	}
}

// consume feeds each living head the orbs within its pickup radius, then
// restocks the arena. When two heads cover the same orb on one tick, the
// earlier creature in slice order eats it and the later one skips it.
func (w *World) consume() {
	for _, c := range w.Creatures {
		if !c.Alive {
			continue
		}
		h := c.Head()
		r := c.PickupRadius()
		w.eatBuf = w.eatBuf[:0]
		w.grid.Nearby(h.X, h.Y, r+OrbBigRadius, func(o *Orb) {
			if o.Alive && circlesOverlap(h, r, Point{X: o.X, Y: o.Y}, o.R) {
				w.eatBuf = append(w.eatBuf, o)
			}
		})
		for _, o := range w.eatBuf {
			if !o.Alive {
				continue
			}
			o.Alive = false
			w.grid.Remove(o)
			c.TargetLen += o.Value / LengthPerValue
			c.Score += int(o.Value)
			w.Particles.SpawnBurst(Point{X: o.X, Y: o.Y}, o.Col, 5)
			if c == w.Creatures[0] {
				w.disp.PushScore(c.Score)
				PlaySound(SoundEat)
			}
		}
		if len(w.eatBuf) > 0 {
			// Growth materializes immediately as stacked tail points that
			// unfold over the following ticks.
			c.clampLen()
		}
	}

	kept := w.Orbs[:0]
	for _, o := range w.Orbs {
		if o.Alive {
			kept = append(kept, o)
		}
	}
	w.Orbs = kept

	if len(w.Orbs) < OrbCap && w.rng.Float64() < OrbRefillChance {
		w.addOrb(randomOrb(w.rng))
	}
}

// collide tests each living head against sampled body segments of every
// creature, own tail included past a self-skip window. Liveness is
// snapshotted at stage entry, so a body stays lethal for the whole sweep
// even if its owner dies mid-stage; coincident heads therefore kill both.
func (w *World) collide() {
	w.aliveBuf = w.aliveBuf[:0]
	for _, c := range w.Creatures {
		w.aliveBuf = append(w.aliveBuf, c.Alive)
	}
	for _, a := range w.Creatures {
		if !a.Alive {
			continue
		}
		h := a.Head()
	sweep:
		for bi, b := range w.Creatures {
			if !w.aliveBuf[bi] {
				continue
			}
			start := 0
			if b == a {
				start = SelfSkip
			}
			for i := start; i < len(b.Segments); i += CollisionStep {
				if dist(h, b.Segments[i]) < LethalRadius {
					w.kill(a)
					break sweep
				}
			}
		}
	}
}

// kill marks c dead, converts a sparse sample of its body into high-value
// orbs, and schedules an opponent replacement. The player gets no
// replacement; the session end is pushed exactly once per world.
func (w *World) kill(c *Creature) {
	if !c.Alive {
		return
	}
	c.Alive = false
	c.Boosting = false

	for i := 0; i < len(c.Segments); i += CarcassStep {
		s := c.Segments[i]
		w.addOrb(newOrb(w.rng, s.X, s.Y, CarcassValue))
	}
	w.Particles.SpawnBurst(c.Head(), c.Col, 18)

	if c.Bot {
		w.respawns = append(w.respawns, pendingRespawn{
			due:  w.tick + RespawnDelayTicks,
			id:   c.ID,
			name: c.Name,
			col:  c.Col,
		})
		return
	}
	PlaySound(SoundCrash)
	if !w.overSent {
		w.overSent = true
		w.disp.PushGameOver(c.Score)
	}
}

// processRespawns re-creates opponents whose delay has elapsed, keeping
// their identity but resetting length and score.
func (w *World) processRespawns() {
	kept := w.respawns[:0]
	for _, r := range w.respawns {
		if r.due > w.tick {
			kept = append(kept, r)
			continue
		}
		nb := NewCreature(r.id, r.name, true, r.col,
			w.randomSpawn(), w.rng.RangeF(-math.Pi, math.Pi))
		for i, c := range w.Creatures {
			if c.ID == r.id {
				w.Creatures[i] = nb
				w.Particles.SpawnBurst(nb.Head(), nb.Col, 10)
				break
			}
		}
	}
	w.respawns = kept
}

func (w *World) followPlayer() {
	p := w.Player()
	if p.Alive {
		w.Cam.Follow(p.Head())
	}
}

// publishLeaderboard occasionally recomputes the ranking and pushes it out.
func (w *World) publishLeaderboard() {
	if w.rng.Float64() >= LeaderboardChance {
		return
	}
	w.disp.PushLeaderboard(w.Leaderboard())
}

// Leaderboard returns the top living creatures by descending score. Equal
// scores keep their slice order.
func (w *World) Leaderboard() []LeaderEntry {
	live := make([]*Creature, 0, len(w.Creatures))
	for _, c := range w.Creatures {
		if c.Alive {
			live = append(live, c)
		}
	}
	sort.SliceStable(live, func(i, j int) bool { return live[i].Score > live[j].Score })
	if len(live) > LeaderboardSize {
		live = live[:LeaderboardSize]
	}
	out := make([]LeaderEntry, len(live))
	for i, c := range live {
		out[i] = LeaderEntry{Name: c.Name, Score: c.Score}
	}
	return out
}

func (w *World) addOrb(o *Orb) {
	w.Orbs = append(w.Orbs, o)
	w.grid.Insert(o)
}
