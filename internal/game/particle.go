package game

import "math"

// Particle is a short-lived cosmetic spark. Particles never feed back into
// the simulation.
type Particle struct {
	X, Y   float64
	VX, VY float64

	Size    float64
	Life    float64 // remaining ticks
	MaxLife float64

	Col RGB
}

// Alpha returns the fade factor in [0,1] as the particle expires.
func (p *Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return clampF(p.Life/p.MaxLife, 0, 1)
}

type ParticleSystem struct {
	Max    int
	P      []Particle
	rng    *Rand
	ovrIdx int // circular overwrite index when full
}

func NewParticleSystem(maxParticles int, seed uint64) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = MaxParticles
	}
	return &ParticleSystem{
		Max: maxParticles,
		P:   make([]Particle, 0, maxParticles),
		rng: NewRand(seed),
	}
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
	ps.ovrIdx = 0
}

func (ps *ParticleSystem) Add(p Particle) {
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		return
	}
	// Circular overwrite.
	if ps.ovrIdx >= ps.Max {
		ps.ovrIdx = 0
	}
	ps.P[ps.ovrIdx] = p
	ps.ovrIdx++
}

// Update integrates one tick of drift and drops expired particles.
func (ps *ParticleSystem) Update() {
	kept := ps.P[:0]
	for i := range ps.P {
		p := ps.P[i]
		p.X += p.VX
		p.Y += p.VY
		p.VX *= ParticleDrag
		p.VY *= ParticleDrag
		p.Life--
		if p.Life > 0 {
			kept = append(kept, p)
		}
	}
	ps.P = kept
	if ps.ovrIdx > len(ps.P) {
		ps.ovrIdx = 0
	}
}

// SpawnBurst sprays n sparks radially from at.
func (ps *ParticleSystem) SpawnBurst(at Point, col RGB, n int) {
	for i := 0; i < n; i++ {
		ang := ps.rng.RangeF(-math.Pi, math.Pi)
		spd := ps.rng.RangeF(0.5, 2.5)
		life := ps.rng.RangeF(18, 40)
		ps.Add(Particle{
			X: at.X, Y: at.Y,
			VX: math.Cos(ang) * spd, VY: math.Sin(ang) * spd,
			Size: ps.rng.RangeF(1.5, 3.0),
			Life: life, MaxLife: life,
			Col: col,
		})
	}
}
